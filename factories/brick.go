package factories

import (
	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

// Brick builds an m x n x p grid of trees (spec.md §4.E), tree
// (i,j,k) at index i+m*(j+n*k), glued to its axis-aligned neighbors at
// zero orientation. px, py, pz request periodic wraparound along each
// axis; without it, a grid edge is a boundary face. Vertices are laid
// out on the (m+1)x(n+1)x(p+1) lattice (wrapped modulo m/n/p on a
// periodic axis), so Complete can identify the shared corners/edges a
// non-periodic brick's interior faces expose.
func Brick(m, n, p int, px, py, pz bool) (*connectivity.Connectivity, error) {
	if m < 1 || n < 1 || p < 1 {
		return nil, ErrInvalidDimensions
	}
	numTrees := m * n * p
	vm, vn, vp := m, n, p
	if !px {
		vm++
	}
	if !py {
		vn++
	}
	if !pz {
		vp++
	}
	numVertices := vm * vn * vp

	c := connectivity.Allocate(numVertices, numTrees, 0, 0, 0, 0)
	treeIdx := func(i, j, k int) int { return i + m*(j+n*k) }

	for iz := 0; iz < vp; iz++ {
		for iy := 0; iy < vn; iy++ {
			for ix := 0; ix < vm; ix++ {
				id := ix + vm*(iy+vn*iz)
				c.Vertices[3*id+0] = float64(ix)
				c.Vertices[3*id+1] = float64(iy)
				c.Vertices[3*id+2] = float64(iz)
			}
		}
	}
	vertexIdx := func(ix, iy, iz int) int {
		if px {
			ix %= vm
		}
		if py {
			iy %= vn
		}
		if pz {
			iz %= vp
		}
		return ix + vm*(iy+vn*iz)
	}

	for k := 0; k < p; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				tree := treeIdx(i, j, k)
				boundaryFaces(c, tree)
				for local := 0; local < ctables.Children; local++ {
					xb := ctables.CornerBit(local, 0)
					yb := ctables.CornerBit(local, 1)
					zb := ctables.CornerBit(local, 2)
					c.TreeToVertex[tree*ctables.Children+local] = vertexIdx(i+xb, j+yb, k+zb)
				}
			}
		}
	}

	// Glue each tree's +axis face to its +axis neighbor's -axis face, so
	// every interior (or periodic-wrap) pair is only visited once.
	for k := 0; k < p; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				tree := treeIdx(i, j, k)
				if ni := i + 1; ni < m || px {
					glueFaces(c, tree, ctables.FacePosX, treeIdx(wrap(ni, m), j, k), ctables.FaceNegX, 0)
				}
				if nj := j + 1; nj < n || py {
					glueFaces(c, tree, ctables.FacePosY, treeIdx(i, wrap(nj, n), k), ctables.FaceNegY, 0)
				}
				if nk := k + 1; nk < p || pz {
					glueFaces(c, tree, ctables.FacePosZ, treeIdx(i, j, wrap(nk, p)), ctables.FaceNegZ, 0)
				}
			}
		}
	}
	return c, nil
}

func wrap(i, n int) int {
	if i >= n {
		return i - n
	}
	return i
}
