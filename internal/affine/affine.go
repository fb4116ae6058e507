// Package affine provides the 2x3 affine transform matrix used for an
// Item's pose (translation + rotation). It is a direct port of AGG's
// trans_affine, narrowed to the operations the pose model needs
// (Reset/Translate/Rotate/Transform) and adapted to apply to the
// geometry package's integer Point rather than a float64 vertex
// stream.
package affine

import "math"

// Epsilon is the default tolerance for comparisons against identity.
const Epsilon = 1e-14

// Matrix is a 2x3 affine transformation:
//
//	sx  shx tx
//	shy sy  ty
//	0   0   1
type Matrix struct {
	SX, SHY, SHX, SY, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{SX: 1, SY: 1}
}

// Reset sets the matrix back to identity.
func (m *Matrix) Reset() {
	*m = Identity()
}

// Translate adds a translation to the current matrix.
func (m *Matrix) Translate(x, y float64) {
	m.TX += x
	m.TY += y
}

// Rotate applies a rotation (radians) to the current matrix, composing
// with any translation already present, matching AGG's trans_affine
// rotate semantics.
func (m *Matrix) Rotate(angle float64) {
	ca := math.Cos(angle)
	sa := math.Sin(angle)

	t0 := m.SX*ca - m.SHY*sa
	t2 := m.SHX*ca - m.SY*sa
	t4 := m.TX*ca - m.TY*sa

	m.SHY = m.SX*sa + m.SHY*ca
	m.SY = m.SHX*sa + m.SY*ca
	m.TY = m.TX*sa + m.TY*ca

	m.SX = t0
	m.SHX = t2
	m.TX = t4
}

// Transform applies the matrix to a floating-point coordinate pair.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return x*m.SX + y*m.SHX + m.TX, x*m.SHY + y*m.SY + m.TY
}

// IsIdentity reports whether m is the identity transform within
// Epsilon.
func (m Matrix) IsIdentity() bool {
	return nearlyEqual(m.SX, 1) && nearlyEqual(m.SHY, 0) &&
		nearlyEqual(m.SHX, 0) && nearlyEqual(m.SY, 1) &&
		nearlyEqual(m.TX, 0) && nearlyEqual(m.TY, 0)
}

func nearlyEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= Epsilon
}

// NewPoseMatrix builds the matrix for an item pose: rotate about the
// origin by angle radians, then translate by (tx, ty). Rotation is
// normalized modulo 2*pi by the caller (see item.Item.SetPose).
func NewPoseMatrix(tx, ty float64, angle float64) Matrix {
	m := Identity()
	m.Rotate(angle)
	m.Translate(tx, ty)
	return m
}
