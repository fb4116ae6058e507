// Package geometry implements the geometry kernel adapter: the polygon
// type, affine transforms, bounding boxes, convex hull, containment and
// a General-Polygon-Clipper-backed union, all operating on a single
// fixed-point integer unit system.
//
// This package plays the role AGG's internal/basics and internal/gpc
// packages play for the rendering pipeline: the common vocabulary every
// higher layer (items, NFP kernel, placer, selectors) is built on.
package geometry

// Unit is the fixed-point coordinate type. By convention 1mm equals
// 1,000,000 units; NFP construction and pile merges can double the
// magnitude of input coordinates, so this is int64 rather than int32.
type Unit = int64

// Point is an integer 2-vector in the internal unit system.
type Point struct {
	X, Y Unit
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Contour is an ordered cyclic sequence of points. By invariant the
// outer contour of a Polygon is clockwise, holes are counter-clockwise,
// and the contour is explicitly closed: Contour[0] == Contour[len-1].
type Contour []Point

// Clone returns an independent copy of the contour.
func (c Contour) Clone() Contour {
	out := make(Contour, len(c))
	copy(out, c)
	return out
}

// Polygon is one outer contour plus zero or more hole contours. Holes
// are owned by value - there is no package-level cache keyed by
// polygon identity, unlike the C++ original this module's design notes
// call out.
type Polygon struct {
	Contour Contour
	Holes   []Contour
}

// MultiPolygon is an unordered set of disjoint (or about-to-be-merged)
// polygons, e.g. the result of a pile union or an NFP with holes.
type MultiPolygon []Polygon

// Box is an axis-aligned bounding box in the internal unit system.
type Box struct {
	MinX, MinY, MaxX, MaxY Unit
}

// Valid reports whether the box contains at least one point.
func (b Box) Valid() bool { return b.MinX <= b.MaxX && b.MinY <= b.MaxY }

// Width returns MaxX - MinX.
func (b Box) Width() Unit { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Box) Height() Unit { return b.MaxY - b.MinY }

// Center returns the box's geometric center, rounded toward zero.
func (b Box) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Union returns the smallest box containing both a and b.
func (b Box) Union(o Box) Box {
	if !b.Valid() {
		return o
	}
	if !o.Valid() {
		return b
	}
	return Box{
		MinX: minUnit(b.MinX, o.MinX),
		MinY: minUnit(b.MinY, o.MinY),
		MaxX: maxUnit(b.MaxX, o.MaxX),
		MaxY: maxUnit(b.MaxY, o.MaxY),
	}
}

func minUnit(a, b Unit) Unit {
	if a < b {
		return a
	}
	return b
}

func maxUnit(a, b Unit) Unit {
	if a > b {
		return a
	}
	return b
}
