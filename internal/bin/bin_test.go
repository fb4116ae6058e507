package bin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeKo-Christian/nest2d/internal/geometry"
)

func TestRectangleBinAreaAndBounds(t *testing.T) {
	b := NewRectangle(100, 50)
	assert.Equal(t, Rectangle, b.Kind())
	assert.Equal(t, 5000.0, b.Area())

	box := b.BoundingBox()
	assert.Equal(t, geometry.Box{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}, box)
}

func TestRectangleBinContains(t *testing.T) {
	b := NewRectangle(100, 50)
	assert.True(t, b.Contains(geometry.Box{MinX: 10, MinY: 10, MaxX: 90, MaxY: 40}))
	assert.False(t, b.Contains(geometry.Box{MinX: -1, MinY: 0, MaxX: 90, MaxY: 40}))
	assert.False(t, b.Contains(geometry.Box{MinX: 0, MinY: 0, MaxX: 200, MaxY: 40}))
}

func TestRectangleBinOverfit(t *testing.T) {
	b := NewRectangle(100, 50)
	assert.LessOrEqual(t, b.Overfit(geometry.Box{MinX: 0, MinY: 0, MaxX: 100, MaxY: 50}), 0.0)
	assert.Greater(t, b.Overfit(geometry.Box{MinX: 0, MinY: 0, MaxX: 150, MaxY: 50}), 0.0)
}

func TestCircleBinAreaAndContains(t *testing.T) {
	b := NewCircle(geometry.Point{X: 0, Y: 0}, 10)
	assert.InDelta(t, 314.159, b.Area(), 0.01)
	assert.True(t, b.Contains(geometry.Box{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}))
	assert.False(t, b.Contains(geometry.Box{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}))
}

func TestShapeBinUsesPolygonDirectly(t *testing.T) {
	p := geometry.Polygon{Contour: geometry.Contour{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 0},
	}}
	b := NewShape(p)
	assert.Equal(t, Shape, b.Kind())
	assert.Equal(t, p, b.Polygon())
	assert.Equal(t, 10000.0, b.Area())
}

func TestRectangleBinPolygonIsItsBoundingBox(t *testing.T) {
	b := NewRectangle(20, 10)
	p := b.Polygon()
	assert.Equal(t, 200.0, p.Area())
}
