package affine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityTransformIsNoOp(t *testing.T) {
	m := Identity()
	x, y := m.Transform(3, 4)
	assert.InDelta(t, 3, x, 1e-9)
	assert.InDelta(t, 4, y, 1e-9)
	assert.True(t, m.IsIdentity())
}

func TestTranslateShiftsPoint(t *testing.T) {
	m := Identity()
	m.Translate(5, -2)
	x, y := m.Transform(1, 1)
	assert.InDelta(t, 6, x, 1e-9)
	assert.InDelta(t, -1, y, 1e-9)
}

func TestRotateQuarterTurn(t *testing.T) {
	m := Identity()
	m.Rotate(math.Pi / 2)
	x, y := m.Transform(1, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
}

func TestNewPoseMatrixRotatesThenTranslates(t *testing.T) {
	m := NewPoseMatrix(10, 20, math.Pi/2)
	x, y := m.Transform(1, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 21, y, 1e-9)
}

func TestResetReturnsToIdentity(t *testing.T) {
	m := Identity()
	m.Translate(5, 5)
	m.Rotate(1.0)
	m.Reset()
	assert.True(t, m.IsIdentity())
}
