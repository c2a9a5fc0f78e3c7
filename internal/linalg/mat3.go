// Package linalg holds the small fixed-size 3x3 kernels geometry needs:
// determinant and the cofactor/adjugate inverse-transpose used by every
// built-in geometry's Jit default path.
//
// Notes:
//   - These are deliberately NOT general-purpose: a forest-of-octrees
//     reference geometry only ever needs one 3x3 per evaluation, so a
//     fixed [3][3]float64 avoids allocating through the general Matrix
//     interface for a kernel on the hot evaluation path.
package linalg

import "math"

// Mat3 is a row-major 3x3 matrix, J[i][j] = ∂X_i/∂abc_j.
type Mat3 [3][3]float64

// Det3 returns the determinant via the standard cofactor expansion along
// the first row.
//
// Complexity: O(1).
func Det3(m Mat3) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// InverseTranspose computes detJ and the inverse-transpose of m by the
// classical adjugate: every entry of the adjugate is a 2x2 cofactor,
// each divided by detJ, the whole thing already transposed relative to
// the cofactor matrix — so Jit[i][j] is the cofactor of m at [i][j]
// (not [j][i]) divided by detJ (spec.md §4.F "Jacobian-inverse
// default").
//
// Complexity: O(1). Callers must check detJ before trusting jit; a
// near-zero or negative detJ means the geometry is degenerate at this
// point (spec.md §7 GeometryDegenerate).
func InverseTranspose(m Mat3) (jit Mat3, detJ float64) {
	detJ = Det3(m)
	cof := func(r0, r1, c0, c1 int) float64 {
		return m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]
	}
	jit[0][0] = cof(1, 2, 1, 2)
	jit[0][1] = -cof(1, 2, 0, 2)
	jit[0][2] = cof(1, 2, 0, 1)
	jit[1][0] = -cof(0, 2, 1, 2)
	jit[1][1] = cof(0, 2, 0, 2)
	jit[1][2] = -cof(0, 2, 0, 1)
	jit[2][0] = cof(0, 1, 1, 2)
	jit[2][1] = -cof(0, 1, 0, 2)
	jit[2][2] = cof(0, 1, 0, 1)

	if detJ == 0 {
		return jit, detJ
	}
	inv := 1.0 / detJ
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			jit[i][j] *= inv
		}
	}
	return jit, detJ
}

// IsPositiveDeterminant reports detJ > 0 within no tolerance —
// geometry.go decides what tolerance, if any, applies at call sites;
// this kernel only evaluates the raw sign used by the Jacobian
// positivity testable property (spec.md §8 property 6).
func IsPositiveDeterminant(detJ float64) bool {
	return detJ > 0 && !math.IsNaN(detJ) && !math.IsInf(detJ, 0)
}
