package item

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeKo-Christian/nest2d/internal/geometry"
)

func square(side geometry.Unit) geometry.Polygon {
	return geometry.Polygon{Contour: geometry.Contour{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}, {X: 0, Y: 0},
	}}
}

func TestNewItemIdentityPose(t *testing.T) {
	it := New(square(10))
	assert.Equal(t, geometry.Point{}, it.Translation())
	assert.Equal(t, 0.0, it.Rotation())
	assert.Equal(t, Unassigned, it.BinID())
	assert.Equal(t, 100.0, it.Area())
}

func TestTranslateMovesTransformedShape(t *testing.T) {
	it := New(square(10))
	it.Translate(geometry.Point{X: 5, Y: 7})
	box := it.BoundingBox()
	assert.Equal(t, geometry.Unit(5), box.MinX)
	assert.Equal(t, geometry.Unit(7), box.MinY)
}

func TestRotateNormalizesAngle(t *testing.T) {
	it := New(square(10))
	it.Rotate(2*math.Pi + 0.5)
	assert.InDelta(t, 0.5, it.Rotation(), 1e-9)
}

func TestSetPoseOverwritesRatherThanAccumulates(t *testing.T) {
	it := New(square(10))
	it.Translate(geometry.Point{X: 1, Y: 1})
	it.Rotate(1.0)
	it.SetPose(geometry.Point{X: 3, Y: 4}, 0.25)
	assert.Equal(t, geometry.Point{X: 3, Y: 4}, it.Translation())
	assert.InDelta(t, 0.25, it.Rotation(), 1e-9)
}

func TestAreaIsPoseInvariant(t *testing.T) {
	it := New(square(10))
	before := it.Area()
	it.Translate(geometry.Point{X: 100, Y: 200})
	it.Rotate(1.2)
	assert.Equal(t, before, it.Area())
}

func TestCacheInvalidatedOnPoseChange(t *testing.T) {
	it := New(square(10))
	first := it.TransformedShape()
	it.Translate(geometry.Point{X: 1, Y: 0})
	second := it.TransformedShape()
	assert.NotEqual(t, first.Contour[0], second.Contour[0])
}

func TestBinIDRoundTrips(t *testing.T) {
	it := New(square(10))
	it.SetBinID(BinID(2))
	assert.Equal(t, BinID(2), it.BinID())
}
