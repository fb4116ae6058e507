// Package item implements the placeable unit of the nesting engine: a
// raw polygon plus an affine pose (translation + rotation), with a
// lazily recomputed cache of the transformed shape and its three
// distinguished vertices. It plays the role AGG's agg2d.go facade
// plays for a drawable shape - pose plus derived, cache-invalidated
// geometry - narrowed to the nesting domain.
package item

import (
	"math"

	"github.com/MeKo-Christian/nest2d/internal/affine"
	"github.com/MeKo-Christian/nest2d/internal/geometry"
)

// BinID identifies which bin an item has been assigned to. The value
// Unassigned (-1) means the item has not yet been placed.
type BinID int

// Unassigned is the BinID -1, meaning "not yet placed".
const Unassigned BinID = -1

// Item is one polygon to be packed, together with its current pose
// and placement state.
type Item struct {
	raw geometry.Polygon

	translation geometry.Point
	rotation    float64 // radians, normalized to [0, 2*pi)

	bin BinID

	cacheValid bool
	shape      geometry.Polygon
	refVertex  geometry.Point
	leftBottom geometry.Point
	rightTop   geometry.Point
	bbox       geometry.Box

	area float64 // pose-invariant, computed once at construction
}

// New constructs an item with identity pose (no translation, no
// rotation) and no bin assignment.
func New(polygon geometry.Polygon) *Item {
	return &Item{
		raw: polygon,
		bin: Unassigned,
		area: polygon.Area(),
	}
}

// Translate adds delta to the item's current translation, invalidating
// the transform cache.
func (it *Item) Translate(delta geometry.Point) {
	it.translation = it.translation.Add(delta)
	it.cacheValid = false
}

// Rotate adds angle radians to the item's current rotation (normalized
// modulo 2*pi), invalidating the transform cache.
func (it *Item) Rotate(angle float64) {
	it.rotation = normalizeAngle(it.rotation + angle)
	it.cacheValid = false
}

// SetPose overwrites the item's translation and rotation outright.
func (it *Item) SetPose(translation geometry.Point, rotation float64) {
	it.translation = translation
	it.rotation = normalizeAngle(rotation)
	it.cacheValid = false
}

// Translation returns the item's current translation.
func (it *Item) Translation() geometry.Point { return it.translation }

// Rotation returns the item's current rotation in radians, in
// [0, 2*pi).
func (it *Item) Rotation() float64 { return it.rotation }

// BinID returns the item's assigned bin, or Unassigned.
func (it *Item) BinID() BinID { return it.bin }

// SetBinID assigns the item to a bin.
func (it *Item) SetBinID(id BinID) { it.bin = id }

// Area returns the item's area; pose-invariant, computed once.
func (it *Item) Area() float64 { return it.area }

// RawPolygon returns the item's untransformed polygon.
func (it *Item) RawPolygon() geometry.Polygon { return it.raw }

// pose returns the affine matrix for the item's current translation
// and rotation.
func (it *Item) pose() affine.Matrix {
	return affine.NewPoseMatrix(float64(it.translation.X), float64(it.translation.Y), it.rotation)
}

// ensureCache recomputes the transformed shape and its three
// distinguished vertices together: nothing derived from the pose is
// ever read half-updated.
func (it *Item) ensureCache() {
	if it.cacheValid {
		return
	}
	it.shape = it.raw.Transform(it.pose())
	it.bbox = it.shape.BoundingBox()
	it.refVertex = rightmostTop(it.shape.Contour)
	it.leftBottom = leftmostBottom(it.shape.Contour)
	it.rightTop = it.refVertex
	it.cacheValid = true
}

// TransformedShape returns the item's polygon under its current pose.
// The result is cached until the next pose mutation.
func (it *Item) TransformedShape() geometry.Polygon {
	it.ensureCache()
	return it.shape
}

// ReferenceVertex returns the rightmost-top vertex of the transformed
// shape, the anchor NFP construction and correction use throughout.
func (it *Item) ReferenceVertex() geometry.Point {
	it.ensureCache()
	return it.refVertex
}

// LeftmostBottom returns the leftmost-bottom vertex of the transformed
// shape, used for initial NFP alignment.
func (it *Item) LeftmostBottom() geometry.Point {
	it.ensureCache()
	return it.leftBottom
}

// RightmostTop returns the rightmost-top vertex of the transformed
// shape. Identical to ReferenceVertex by convention; kept as a
// distinct accessor to match the three-vertex cache contract.
func (it *Item) RightmostTop() geometry.Point {
	it.ensureCache()
	return it.rightTop
}

// BoundingBox returns the transformed shape's axis-aligned bounding
// box.
func (it *Item) BoundingBox() geometry.Box {
	it.ensureCache()
	return it.bbox
}

func rightmostTop(c geometry.Contour) geometry.Point {
	if len(c) == 0 {
		return geometry.Point{}
	}
	best := c[0]
	for _, p := range c[1:] {
		if p.Y > best.Y || (p.Y == best.Y && p.X > best.X) {
			best = p
		}
	}
	return best
}

func leftmostBottom(c geometry.Contour) geometry.Point {
	if len(c) == 0 {
		return geometry.Point{}
	}
	best := c[0]
	for _, p := range c[1:] {
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}
	return best
}

func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
