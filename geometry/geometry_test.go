package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanredbread/p8est/geometry"
	"github.com/ivanredbread/p8est/internal/linalg"
)

func TestIdentity_IsLiteral(t *testing.T) {
	g := geometry.Identity{Trees: 1}
	xyz, err := g.X(0, [3]float64{0.3, -0.4, 0.9})
	require.NoError(t, err)
	require.Equal(t, [3]float64{0.3, -0.4, 0.9}, xyz)

	_, detJ, err := g.J(0, [3]float64{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 1.0, detJ)
}

// TestShell_S5ForwardMap is literal scenario S5.
func TestShell_S5ForwardMap(t *testing.T) {
	g := geometry.NewShell(1, 2)
	xyz, err := g.X(0, [3]float64{0, 0, 1.5})
	require.NoError(t, err)
	want := 0.5 * math.Pow(2, 1.5)
	require.InDelta(t, want, xyz[0], 1e-9)
	require.InDelta(t, 0, xyz[1], 1e-9)
	require.InDelta(t, 0, xyz[2], 1e-9)
}

func TestShell_JacobianPositiveOnGrid(t *testing.T) {
	g := geometry.NewShell(1, 2)
	for tree := 0; tree < 24; tree++ {
		for _, u := range []float64{-0.8, -0.3, 0, 0.4, 0.9} {
			for _, v := range []float64{-0.8, 0, 0.7} {
				for _, w := range []float64{1.05, 1.5, 1.95} {
					detJ, err := g.D(tree, [3]float64{u, v, w})
					require.NoError(t, err)
					require.Greaterf(t, detJ, 0.0, "tree=%d abc=(%v,%v,%v)", tree, u, v, w)

					_, detJfromJ, err := g.J(tree, [3]float64{u, v, w})
					require.NoError(t, err)
					require.InDelta(t, detJ, detJfromJ, 1e-9)
				}
			}
		}
	}
}

func TestShell_JitIsInverseOfJ(t *testing.T) {
	g := geometry.NewShell(1, 2)
	j, detJ, err := g.J(3, [3]float64{0.2, -0.1, 1.3})
	require.NoError(t, err)
	jit, detJ2, err := g.Jit(3, [3]float64{0.2, -0.1, 1.3})
	require.NoError(t, err)
	require.InDelta(t, detJ, detJ2, 1e-9)

	// J · Jit^T should be close to I since Jit = (J^-1)^T.
	var prod [3][3]float64
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			sum := 0.0
			for m := 0; m < 3; m++ {
				sum += j[i][m] * jit[k][m]
			}
			prod[i][k] = sum
		}
	}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			want := 0.0
			if i == k {
				want = 1.0
			}
			require.InDelta(t, want, prod[i][k], 1e-6)
		}
	}
}

// TestSphere_S6CenterCube is literal scenario S6.
func TestSphere_S6CenterCube(t *testing.T) {
	g := geometry.NewSphere(0.5, 1, 2)
	xyz, err := g.X(12, [3]float64{1, 1, 1})
	require.NoError(t, err)
	want := 0.5 / math.Sqrt(3)
	require.InDelta(t, want, xyz[0], 1e-12)
	require.InDelta(t, want, xyz[1], 1e-12)
	require.InDelta(t, want, xyz[2], 1e-12)

	detJ, err := g.D(12, [3]float64{1, 1, 1})
	require.NoError(t, err)
	require.InDelta(t, want*want*want, detJ, 1e-12)
}

func TestSphere_JacobianPositiveAcrossShells(t *testing.T) {
	g := geometry.NewSphere(0.5, 1, 2)
	pts := [][3]float64{{0, 0, 1.2}, {0.5, -0.5, 1.7}, {-0.3, 0.2, 1.9}}
	for tree := 0; tree < 6; tree++ {
		for _, p := range pts {
			d, err := g.D(tree, p)
			require.NoError(t, err)
			require.Greater(t, d, 0.0)
		}
	}
	for tree := 6; tree < 12; tree++ {
		for _, p := range pts {
			d, err := g.D(tree, p)
			require.NoError(t, err)
			require.Greater(t, d, 0.0)
		}
	}
}

func TestGeometry_TreeOutOfRange(t *testing.T) {
	g := geometry.Identity{Trees: 1}
	_, err := g.X(1, [3]float64{0, 0, 0})
	require.ErrorIs(t, err, geometry.ErrTreeOutOfRange)
}

func TestUserSupplied_FallsBackToCofactorJit(t *testing.T) {
	g := geometry.UserSupplied{
		Trees: 1,
		XFn: func(tree int, abc [3]float64) ([3]float64, error) {
			return [3]float64{2 * abc[0], 3 * abc[1], 4 * abc[2]}, nil
		},
		JFn: func(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
			j := linalg.Mat3{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
			return j, 24, nil
		},
	}
	jit, detJ, err := g.Jit(0, [3]float64{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 24.0, detJ)
	require.InDelta(t, 0.5, jit[0][0], 1e-12)
	require.InDelta(t, 1.0/3, jit[1][1], 1e-12)
	require.InDelta(t, 0.25, jit[2][2], 1e-12)
}
