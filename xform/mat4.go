// Package xform: Mat4 is a row-major 4x4 affine transform, the "4x4 matrix
// with transformPoint and transformNormal plus invert" the collaborator
// contract in spec.md §6 asks for.
package xform

import (
	"errors"
	"math"
)

// ErrSingularMatrix indicates Invert was asked to invert a matrix whose
// determinant is (numerically) zero.
var ErrSingularMatrix = errors.New("xform: matrix is singular")

// Mat4 holds 16 row-major float64 entries. M[row][col].
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the 4x4 identity matrix.
// Complexity: O(1).
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}

	return m
}

// Translation returns an affine matrix that translates by t.
// Complexity: O(1).
func Translation(t Vec3) Mat4 {
	m := Identity()
	m.M[0][3] = t.X
	m.M[1][3] = t.Y
	m.M[2][3] = t.Z

	return m
}

// Scaling returns an affine matrix that scales each axis independently.
// Complexity: O(1).
func Scaling(s Vec3) Mat4 {
	m := Identity()
	m.M[0][0] = s.X
	m.M[1][1] = s.Y
	m.M[2][2] = s.Z

	return m
}

// TransformPoint applies m to p as a position (includes translation).
// Complexity: O(1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3],
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3],
		Z: m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3],
	}
}

// TransformNormal applies the linear part of m to a direction vector n
// (translation column is ignored).
// Complexity: O(1).
func (m Mat4) TransformNormal(n Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*n.X + m.M[0][1]*n.Y + m.M[0][2]*n.Z,
		Y: m.M[1][0]*n.X + m.M[1][1]*n.Y + m.M[1][2]*n.Z,
		Z: m.M[2][0]*n.X + m.M[2][1]*n.Y + m.M[2][2]*n.Z,
	}
}

// RowScale returns the Euclidean length of the given row (0..2) of the
// linear 3x3 part of m — used by Sphere.Transform to pick the max scale
// factor per spec.md §4.3.
// Complexity: O(1).
func (m Mat4) RowScale(row int) float64 {
	return math.Sqrt(m.M[row][0]*m.M[row][0] + m.M[row][1]*m.M[row][1] + m.M[row][2]*m.M[row][2])
}

// MaxRowScale returns the maximum RowScale across the three linear rows.
// Complexity: O(1).
func (m Mat4) MaxRowScale() float64 {
	s := m.RowScale(0)
	if r := m.RowScale(1); r > s {
		s = r
	}
	if r := m.RowScale(2); r > s {
		s = r
	}

	return s
}

// Mul returns m*o (matrix product, m applied after o).
// Complexity: O(1) (fixed 4x4).
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.M[i][k] * o.M[k][j]
			}
			out.M[i][j] = sum
		}
	}

	return out
}

// Invert returns the inverse of m, or ErrSingularMatrix if m's determinant
// is numerically zero.
//
// Stage 1 (Validate): compute the determinant via cofactor expansion.
// Stage 2 (Execute): build the adjugate and scale by 1/det.
// Complexity: O(1) (fixed 4x4), but the constant is nontrivial (4x4 cofactors).
func (m Mat4) Invert() (Mat4, error) {
	a := m.M
	// Stage 1: 2x2 sub-determinants reused across cofactors.
	s0 := a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s1 := a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s2 := a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s3 := a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s4 := a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s5 := a[0][2]*a[1][3] - a[1][2]*a[0][3]

	c5 := a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c4 := a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c3 := a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c2 := a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c1 := a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c0 := a[2][0]*a[3][1] - a[3][0]*a[2][1]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if math.Abs(det) < 1e-12 {
		return Mat4{}, ErrSingularMatrix
	}
	invDet := 1 / det

	var out Mat4
	out.M[0][0] = (a[1][1]*c5 - a[1][2]*c4 + a[1][3]*c3) * invDet
	out.M[0][1] = (-a[0][1]*c5 + a[0][2]*c4 - a[0][3]*c3) * invDet
	out.M[0][2] = (a[3][1]*s5 - a[3][2]*s4 + a[3][3]*s3) * invDet
	out.M[0][3] = (-a[2][1]*s5 + a[2][2]*s4 - a[2][3]*s3) * invDet

	out.M[1][0] = (-a[1][0]*c5 + a[1][2]*c2 - a[1][3]*c1) * invDet
	out.M[1][1] = (a[0][0]*c5 - a[0][2]*c2 + a[0][3]*c1) * invDet
	out.M[1][2] = (-a[3][0]*s5 + a[3][2]*s2 - a[3][3]*s1) * invDet
	out.M[1][3] = (a[2][0]*s5 - a[2][2]*s2 + a[2][3]*s1) * invDet

	out.M[2][0] = (a[1][0]*c4 - a[1][1]*c2 + a[1][3]*c0) * invDet
	out.M[2][1] = (-a[0][0]*c4 + a[0][1]*c2 - a[0][3]*c0) * invDet
	out.M[2][2] = (a[3][0]*s4 - a[3][1]*s2 + a[3][3]*s0) * invDet
	out.M[2][3] = (-a[2][0]*s4 + a[2][1]*s2 - a[2][3]*s0) * invDet

	out.M[3][0] = (-a[1][0]*c3 + a[1][1]*c1 - a[1][2]*c0) * invDet
	out.M[3][1] = (a[0][0]*c3 - a[0][1]*c1 + a[0][2]*c0) * invDet
	out.M[3][2] = (-a[3][0]*s3 + a[3][1]*s1 - a[3][2]*s0) * invDet
	out.M[3][3] = (a[2][0]*s3 - a[2][1]*s1 + a[2][2]*s0) * invDet

	return out, nil
}
