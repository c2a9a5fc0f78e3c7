package geometry

import "github.com/ivanredbread/p8est/internal/linalg"

// UserSupplied adapts caller-provided closures into a Geometry, the
// "UserSupplied" variant spec.md §9's polymorphic-geometry note calls
// for. JitFn may be left nil to fall back to the shared cofactor
// default every built-in variant uses.
type UserSupplied struct {
	Trees int
	XFn   func(tree int, abc [3]float64) ([3]float64, error)
	JFn   func(tree int, abc [3]float64) (linalg.Mat3, float64, error)
	DFn   func(tree int, abc [3]float64) (float64, error)
	JitFn func(tree int, abc [3]float64) (linalg.Mat3, float64, error)
}

func (g UserSupplied) NumTrees() int { return g.Trees }

func (g UserSupplied) X(tree int, abc [3]float64) ([3]float64, error) {
	return g.XFn(tree, abc)
}

func (g UserSupplied) J(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	return g.JFn(tree, abc)
}

func (g UserSupplied) D(tree int, abc [3]float64) (float64, error) {
	if g.DFn != nil {
		return g.DFn(tree, abc)
	}
	_, detJ, err := g.JFn(tree, abc)
	return detJ, err
}

func (g UserSupplied) Jit(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	if g.JitFn != nil {
		return g.JitFn(tree, abc)
	}
	return jitViaCofactors(g, tree, abc)
}
