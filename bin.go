package nest2d

import (
	"github.com/MeKo-Christian/nest2d/internal/bin"
	"github.com/MeKo-Christian/nest2d/internal/geometry"
)

// Bin is the container items are packed into: a rectangle, a circle,
// or an arbitrary simple polygon.
type Bin = bin.Bin

// NewRectangleBin builds a rectangular bin of the given width and
// height, anchored at the origin.
func NewRectangleBin(width, height Unit) Bin {
	return bin.NewRectangle(width, height)
}

// NewCircleBin builds a circular bin centered at center with radius r.
func NewCircleBin(center Point, r Unit) Bin {
	return bin.NewCircle(center, r)
}

// NewShapeBin builds a polygonal bin from an arbitrary simple polygon.
func NewShapeBin(p geometry.Polygon) Bin {
	return bin.NewShape(p)
}
