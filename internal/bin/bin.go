// Package bin implements the three bin shapes the placer packs items
// into - rectangle, circle, and arbitrary polygon - and the
// bin-kind-dispatched predicates (in-bounds test, overfit measure,
// bounding box, area) every placer needs regardless of which kind it
// was configured with.
package bin

import (
	"math"

	"github.com/MeKo-Christian/nest2d/internal/geometry"
)

// Kind discriminates which of the three bin shapes a Bin holds.
type Kind int

const (
	Rectangle Kind = iota
	Circle
	Shape
)

// Bin is one of Rectangle(w,h), Circle(center,r), or
// Shape(contour,holes); the placer dispatches on Kind for in-bounds
// and overfit tests rather than exposing three separate types, since
// the selector and placer never need to do anything kind-specific
// beyond that dispatch.
type Bin struct {
	kind Kind

	// Rectangle
	width, height geometry.Unit

	// Circle
	center geometry.Point
	radius geometry.Unit

	// Shape
	polygon geometry.Polygon
}

// NewRectangle builds a rectangular bin of the given width and height,
// with its bounding box anchored at the origin.
func NewRectangle(width, height geometry.Unit) Bin {
	return Bin{kind: Rectangle, width: width, height: height}
}

// NewCircle builds a circular bin centered at center with radius r.
func NewCircle(center geometry.Point, r geometry.Unit) Bin {
	return Bin{kind: Circle, center: center, radius: r}
}

// NewShape builds a polygonal bin from an arbitrary simple polygon.
func NewShape(p geometry.Polygon) Bin {
	return Bin{kind: Shape, polygon: p}
}

// Kind returns which shape this bin is.
func (b Bin) Kind() Kind { return b.kind }

// BoundingBox returns the bin's axis-aligned bounding box.
func (b Bin) BoundingBox() geometry.Box {
	switch b.kind {
	case Rectangle:
		return geometry.Box{MinX: 0, MinY: 0, MaxX: b.width, MaxY: b.height}
	case Circle:
		return geometry.Box{
			MinX: b.center.X - b.radius, MinY: b.center.Y - b.radius,
			MaxX: b.center.X + b.radius, MaxY: b.center.Y + b.radius,
		}
	default:
		return b.polygon.BoundingBox()
	}
}

// Area returns the bin's area.
func (b Bin) Area() float64 {
	switch b.kind {
	case Rectangle:
		return float64(b.width) * float64(b.height)
	case Circle:
		r := float64(b.radius)
		return math.Pi * r * r
	default:
		return b.polygon.Area()
	}
}

// Polygon returns the polygon backing a Shape bin; for Rectangle and
// Circle bins it returns the bin's outline approximated by its
// bounding box / a regular polygon, built lazily because most callers
// only need BoundingBox or Overfit.
func (b Bin) Polygon() geometry.Polygon {
	switch b.kind {
	case Shape:
		return b.polygon
	case Rectangle:
		box := b.BoundingBox()
		return geometry.Polygon{Contour: geometry.Contour{
			{X: box.MinX, Y: box.MinY}, {X: box.MaxX, Y: box.MinY},
			{X: box.MaxX, Y: box.MaxY}, {X: box.MinX, Y: box.MaxY},
			{X: box.MinX, Y: box.MinY},
		}}
	default: // Circle
		return circleApprox(b.center, b.radius, 64)
	}
}

func circleApprox(center geometry.Point, radius geometry.Unit, segments int) geometry.Polygon {
	contour := make(geometry.Contour, 0, segments+1)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := float64(center.X) + float64(radius)*math.Cos(theta)
		y := float64(center.Y) + float64(radius)*math.Sin(theta)
		contour = append(contour, geometry.Point{X: geometry.Unit(math.Round(x)), Y: geometry.Unit(math.Round(y))})
	}
	return geometry.Polygon{Contour: contour}
}

// Contains reports whether box lies entirely within the bin, used by
// the placer's feasibility check (the union of the item's and the
// pile's bounding boxes must fit within the bin).
func (b Bin) Contains(box geometry.Box) bool {
	switch b.kind {
	case Rectangle:
		bb := b.BoundingBox()
		return box.MinX >= bb.MinX && box.MinY >= bb.MinY && box.MaxX <= bb.MaxX && box.MaxY <= bb.MaxY
	case Circle:
		return boxInCircle(box, b.center, b.radius)
	default:
		return b.Overfit(box) <= 0
	}
}

func boxInCircle(box geometry.Box, center geometry.Point, radius geometry.Unit) bool {
	corners := [4]geometry.Point{
		{X: box.MinX, Y: box.MinY}, {X: box.MaxX, Y: box.MinY},
		{X: box.MaxX, Y: box.MaxY}, {X: box.MinX, Y: box.MaxY},
	}
	r2 := float64(radius) * float64(radius)
	for _, c := range corners {
		dx := float64(c.X - center.X)
		dy := float64(c.Y - center.Y)
		if dx*dx+dy*dy > r2 {
			return false
		}
	}
	return true
}

// Overfit returns a scalar "how badly box misses the bin" measure,
// dispatched on bin kind: non-positive means box fits.
//
//   - Rectangle: the sum of how much box overhangs the bin on each
//     axis.
//   - Circle: half the box's diagonal minus the bin radius.
//   - Shape: -1 if a box-shaped rectangle centered on the bin also
//     lies inside the bin polygon, +1 otherwise. This is a coarse
//     yes/no measure rather than a true scalar miss, matching the
//     informal "translate a same-sized rect to the bin center and
//     test containment" rule the placement algorithm specifies for
//     polygon bins.
func (b Bin) Overfit(box geometry.Box) float64 {
	switch b.kind {
	case Rectangle:
		w := float64(box.Width())
		h := float64(box.Height())
		overW := w - float64(b.width)
		overH := h - float64(b.height)
		return math.Max(0, overW) + math.Max(0, overH)
	case Circle:
		dw := float64(box.Width())
		dh := float64(box.Height())
		diag := math.Hypot(dw, dh)
		return 0.5*diag - float64(b.radius)
	default:
		return b.shapeOverfit(box)
	}
}

func (b Bin) shapeOverfit(box geometry.Box) float64 {
	binCenter := b.polygon.BoundingBox().Center()
	w, h := box.Width(), box.Height()
	half := geometry.Box{
		MinX: binCenter.X - w/2, MinY: binCenter.Y - h/2,
		MaxX: binCenter.X + w/2, MaxY: binCenter.Y + h/2,
	}
	corners := []geometry.Point{
		{X: half.MinX, Y: half.MinY}, {X: half.MaxX, Y: half.MinY},
		{X: half.MaxX, Y: half.MaxY}, {X: half.MinX, Y: half.MaxY},
	}
	for _, c := range corners {
		if !b.polygon.Contains(c) {
			return 1
		}
	}
	return -1
}
