package geometry

import (
	"math"

	"github.com/MeKo-Christian/nest2d/internal/affine"
)

// BoundingBox returns the axis-aligned box enclosing c. An empty
// contour returns an invalid Box (Valid() == false).
func (c Contour) BoundingBox() Box {
	if len(c) == 0 {
		return Box{MinX: 1, MaxX: 0}
	}
	b := Box{MinX: c[0].X, MaxX: c[0].X, MinY: c[0].Y, MaxY: c[0].Y}
	for _, p := range c[1:] {
		b.MinX = minUnit(b.MinX, p.X)
		b.MaxX = maxUnit(b.MaxX, p.X)
		b.MinY = minUnit(b.MinY, p.Y)
		b.MaxY = maxUnit(b.MaxY, p.Y)
	}
	return b
}

// SignedArea returns twice the signed area of c via the shoelace
// formula; positive for counter-clockwise winding, negative for
// clockwise. The factor of two is kept so the computation stays exact
// in integer arithmetic; callers that want the true area divide by
// two themselves.
func (c Contour) SignedArea() float64 {
	n := len(c)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += float64(c[i].X)*float64(c[j].Y) - float64(c[j].X)*float64(c[i].Y)
	}
	return sum
}

// Area returns the unsigned area enclosed by c.
func (c Contour) Area() float64 {
	a := c.SignedArea()
	if a < 0 {
		a = -a
	}
	return a / 2
}

// IsClockwise reports whether c winds clockwise. A degenerate (zero
// area) contour is treated as clockwise.
func (c Contour) IsClockwise() bool {
	return c.SignedArea() <= 0
}

// Reversed returns c with its vertex order reversed, flipping its
// winding direction.
func (c Contour) Reversed() Contour {
	n := len(c)
	out := make(Contour, n)
	for i, p := range c {
		out[n-1-i] = p
	}
	return out
}

// BoundingBox returns the box enclosing the outer contour of p. Holes
// never extend a polygon's bounding box.
func (p Polygon) BoundingBox() Box {
	return p.Contour.BoundingBox()
}

// Area returns the outer contour's area minus the area of every hole.
func (p Polygon) Area() float64 {
	a := p.Contour.Area()
	for _, h := range p.Holes {
		a -= h.Area()
	}
	if a < 0 {
		a = 0
	}
	return a
}

// Validate reports the first structural problem found in p: fewer
// than three vertices in the outer contour, or a hole with fewer than
// three vertices (an explicit closing vertex is not counted). It does
// not check that vertices are distinct, nor orientation or
// self-intersection.
func (p Polygon) Validate() error {
	ring := p.Contour
	if len(ring) > 0 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return NewGeomErr(ErrMerge, "outer contour has %d vertices, need at least 3", len(ring))
	}
	for i, h := range p.Holes {
		hr := h
		if len(hr) > 0 && hr[0] == hr[len(hr)-1] {
			hr = hr[:len(hr)-1]
		}
		if len(hr) < 3 {
			return NewGeomErr(ErrMerge, "hole %d has %d vertices, need at least 3", i, len(hr))
		}
	}
	return nil
}

// Contains reports whether point q lies within the outer contour of p
// and outside every hole, using a ray-casting test.
func (p Polygon) Contains(q Point) bool {
	if !ringContains(p.Contour, q) {
		return false
	}
	for _, h := range p.Holes {
		if ringContains(h, q) {
			return false
		}
	}
	return true
}

func ringContains(ring Contour, q Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := float64(ring[i].X), float64(ring[i].Y)
		xj, yj := float64(ring[j].X), float64(ring[j].Y)
		qx, qy := float64(q.X), float64(q.Y)
		if (yi > qy) != (yj > qy) {
			xcross := xi + (qy-yi)/(yj-yi)*(xj-xi)
			if qx < xcross {
				inside = !inside
			}
		}
	}
	return inside
}

// Transform applies m to every vertex of c, rounding back to the
// integer unit system.
func (c Contour) Transform(m affine.Matrix) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		x, y := m.Transform(float64(p.X), float64(p.Y))
		out[i] = Point{X: Unit(math.Round(x)), Y: Unit(math.Round(y))}
	}
	return out
}

// Transform applies m to the outer contour and every hole of p.
func (p Polygon) Transform(m affine.Matrix) Polygon {
	out := Polygon{Contour: p.Contour.Transform(m)}
	if len(p.Holes) > 0 {
		out.Holes = make([]Contour, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = h.Transform(m)
		}
	}
	return out
}

// Translate shifts every vertex of p by (dx, dy).
func (p Polygon) Translate(dx, dy Unit) Polygon {
	m := affine.Identity()
	m.Translate(float64(dx), float64(dy))
	return p.Transform(m)
}

// Rotate rotates p by angle radians about the origin.
func (p Polygon) Rotate(angle float64) Polygon {
	m := affine.Identity()
	m.Rotate(angle)
	return p.Transform(m)
}
