package nest2d

import (
	"github.com/MeKo-Christian/nest2d/internal/geometry"
	"github.com/MeKo-Christian/nest2d/internal/item"
)

// Unit is the fixed-point coordinate type every polygon, pose, and bin
// dimension is expressed in. By convention 1mm equals 1,000,000
// units; use MM to convert.
type Unit = geometry.Unit

// MM converts a millimetre measurement into the internal unit system.
func MM(x float64) Unit {
	return Unit(x * 1_000_000)
}

// Point is an integer 2-vector in the internal unit system.
type Point = geometry.Point

// Contour is an ordered, explicitly-closed cyclic sequence of points.
// By convention an outer contour winds clockwise and a hole winds
// counter-clockwise.
type Contour = geometry.Contour

// Item is one shape to be packed, carrying its own pose (translation
// and rotation) once placed. Construct with NewItem; query its
// resulting placement with Translation, Rotation, and BinID after a
// Nest call.
type Item struct {
	inner *item.Item
}

// NewItem constructs an item from a raw polygon (its own outer
// contour plus optional holes), with identity pose and no bin
// assignment.
func NewItem(contour Contour, holes ...Contour) *Item {
	poly := geometry.Polygon{Contour: contour, Holes: holes}
	return &Item{inner: item.New(poly)}
}

// Translation returns the item's current translation.
func (it *Item) Translation() Point { return it.inner.Translation() }

// Rotation returns the item's current rotation, in radians, normalized
// to [0, 2*pi).
func (it *Item) Rotation() float64 { return it.inner.Rotation() }

// BinID returns the index of the bin this item was placed into within
// its PackGroup, or -1 if it was never placed.
func (it *Item) BinID() int { return int(it.inner.BinID()) }

// Area returns the item's pose-invariant area.
func (it *Item) Area() float64 { return it.inner.Area() }

// TransformedShape returns the item's polygon under its current pose.
func (it *Item) TransformedShape() geometry.Polygon { return it.inner.TransformedShape() }

// BoundingBox returns the transformed shape's axis-aligned bounding
// box.
func (it *Item) BoundingBox() geometry.Box { return it.inner.BoundingBox() }

// setPose and setBinID let Nest write back the placement computed
// against a distance-margined stand-in onto the caller's own Item,
// since an affine pose applies identically regardless of which
// polygon it was solved against.
func (it *Item) setPose(translation Point, rotation float64) { it.inner.SetPose(translation, rotation) }
func (it *Item) setBinID(id int)                             { it.inner.SetBinID(item.BinID(id)) }
