package geometry

import "github.com/ivanredbread/p8est/internal/linalg"

// Geometry is the capability set every reference-geometry variant
// implements: a forward map, its Jacobian, a fast determinant-only
// path, and the inverse-transpose Jacobian (spec.md §4.F).
type Geometry interface {
	// NumTrees is the number of trees this geometry is defined over.
	NumTrees() int

	// X maps abc in the reference cube (or [1,2] on the radial axis for
	// shell/sphere patches) to Cartesian coordinates.
	X(tree int, abc [3]float64) (xyz [3]float64, err error)

	// J returns the Jacobian of X at abc and its determinant.
	J(tree int, abc [3]float64) (j linalg.Mat3, detJ float64, err error)

	// D is the fast determinant-only path; must agree with J's detJ.
	D(tree int, abc [3]float64) (detJ float64, err error)

	// Jit returns the inverse-transpose Jacobian and detJ.
	Jit(tree int, abc [3]float64) (jit linalg.Mat3, detJ float64, err error)
}

// jitViaCofactors is the shared Jit default every built-in geometry but
// Identity reuses: compute J, then invert by cofactors (spec.md §4.F
// "Jacobian-inverse default").
func jitViaCofactors(g Geometry, tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	j, detJ, err := g.J(tree, abc)
	if err != nil {
		return linalg.Mat3{}, 0, err
	}
	jit, detJ2 := linalg.InverseTranspose(j)
	_ = detJ2 // identical to detJ by construction; detJ is authoritative
	if !linalg.IsPositiveDeterminant(detJ) {
		return jit, detJ, ErrGeometryDegenerate
	}
	return jit, detJ, nil
}
