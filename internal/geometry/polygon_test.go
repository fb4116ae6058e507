package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side Unit) Contour {
	return Contour{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}, {X: 0, Y: 0},
	}
}

func TestContourAreaAndWinding(t *testing.T) {
	c := square(10)
	assert.InDelta(t, 100, c.Area(), 1e-9)
	assert.False(t, c.IsClockwise())

	r := c.Reversed()
	assert.InDelta(t, 100, r.Area(), 1e-9)
	assert.True(t, r.IsClockwise())
}

func TestPolygonAreaSubtractsHoles(t *testing.T) {
	p := Polygon{
		Contour: square(10),
		Holes:   []Contour{square(4)},
	}
	assert.InDelta(t, 84, p.Area(), 1e-9)
}

func TestPolygonAreaNeverNegative(t *testing.T) {
	p := Polygon{
		Contour: square(2),
		Holes:   []Contour{square(10)},
	}
	assert.Equal(t, 0.0, p.Area())
}

func TestPolygonValidateRejectsShortRings(t *testing.T) {
	p := Polygon{Contour: Contour{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	require.Error(t, p.Validate())

	p = Polygon{Contour: square(10)}
	require.NoError(t, p.Validate())

	p.Holes = []Contour{{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	require.Error(t, p.Validate())
}

func TestPolygonContains(t *testing.T) {
	p := Polygon{Contour: square(10)}
	assert.True(t, p.Contains(Point{X: 5, Y: 5}))
	assert.False(t, p.Contains(Point{X: 50, Y: 50}))

	p.Holes = []Contour{square(4)}
	assert.False(t, p.Contains(Point{X: 2, Y: 2}))
	assert.True(t, p.Contains(Point{X: 8, Y: 8}))
}

func TestPolygonTranslate(t *testing.T) {
	p := Polygon{Contour: square(10)}
	moved := p.Translate(5, 7)
	box := moved.BoundingBox()
	assert.Equal(t, Unit(5), box.MinX)
	assert.Equal(t, Unit(7), box.MinY)
	assert.Equal(t, Unit(15), box.MaxX)
	assert.Equal(t, Unit(17), box.MaxY)
}

func TestPolygonRotateQuarterTurn(t *testing.T) {
	p := Polygon{Contour: Contour{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}}
	rotated := p.Rotate(math.Pi / 2)
	box := rotated.BoundingBox()
	assert.InDelta(t, 100, (box.Width())*(box.Height()), 2)
}

func TestBoxUnion(t *testing.T) {
	a := Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	b := Box{MinX: -5, MinY: 5, MaxX: 5, MaxY: 20}
	u := a.Union(b)
	assert.Equal(t, Box{MinX: -5, MinY: 0, MaxX: 10, MaxY: 20}, u)
}

func TestBoxUnionWithInvalidBox(t *testing.T) {
	valid := Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	invalid := Box{MinX: 1, MaxX: 0}
	assert.Equal(t, valid, invalid.Union(valid))
	assert.Equal(t, valid, valid.Union(invalid))
}
