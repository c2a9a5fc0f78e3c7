package geometry

import "github.com/ivanredbread/p8est/internal/linalg"

// Identity is the trivial geometry: X = abc, J = I, detJ = 1. Jit
// reuses J directly since the identity matrix is its own
// inverse-transpose.
type Identity struct {
	// Trees is the number of trees this identity geometry covers; a
	// connectivity's NumTrees, typically.
	Trees int
}

var identityJ = linalg.Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func (g Identity) NumTrees() int { return g.Trees }

func (g Identity) X(tree int, abc [3]float64) ([3]float64, error) {
	if err := g.checkTree(tree); err != nil {
		return [3]float64{}, err
	}
	return abc, nil
}

func (g Identity) J(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	if err := g.checkTree(tree); err != nil {
		return linalg.Mat3{}, 0, err
	}
	return identityJ, 1, nil
}

func (g Identity) D(tree int, abc [3]float64) (float64, error) {
	if err := g.checkTree(tree); err != nil {
		return 0, err
	}
	return 1, nil
}

func (g Identity) Jit(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	if err := g.checkTree(tree); err != nil {
		return linalg.Mat3{}, 0, err
	}
	return identityJ, 1, nil
}

func (g Identity) checkTree(tree int) error {
	if tree < 0 || tree >= g.Trees {
		return ErrTreeOutOfRange
	}
	return nil
}
