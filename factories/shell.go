package factories

import (
	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
	"github.com/ivanredbread/p8est/geometry"
)

// Shell builds the 24-tree spherical-shell connectivity geometry.Shell
// expects: 6 cubed-sphere patches (geometry.ShellOrder), 4 trees per
// patch arranged in a 2x2 angular grid, tree index
// patch*4 + (a + 2*b) for a,b in {0,1}. The radial faces
// (FaceNegZ/FacePosZ) are the shell's inner/outer boundary and stay
// unglued; the four angular faces wrap onto the neighboring patches
// using the exact cube-edge adjacency geometry.PatchAxis/PatchSign
// implies (cubeAdjacency), so the factory's topology and geometry.Shell's
// coordinate chart share one derivation. No vertex array: spec.md §4.E
// calls shell/sphere "unsuited to complete" because they reuse vertices
// in a way the generic vertex-identity completer can't be handed
// safely — omitting Vertices/TreeToVertex entirely reaches the same
// end (Complete is a no-op on NumVertices==0) without constructing an
// index scheme this package has no authoritative source for.
//
// Which of a patch's 2 boundary subtrees pairs with which of its
// neighbor's 2 boundary subtrees is resolved by matching index along
// the shared edge (see boundarySubtrees) rather than by working out the
// true corner-by-corner rotation alignment around each of the cube's 8
// corners; see DESIGN.md.
func Shell() *connectivity.Connectivity {
	c := connectivity.Allocate(0, 24, 0, 0, 0, 0)
	for t := 0; t < 24; t++ {
		boundaryFaces(c, t)
	}
	for p := 0; p < 6; p++ {
		base := p * 4
		glueFaces(c, base+localIdx(0, 0), ctables.FacePosX, base+localIdx(1, 0), ctables.FaceNegX, 0)
		glueFaces(c, base+localIdx(0, 1), ctables.FacePosX, base+localIdx(1, 1), ctables.FaceNegX, 0)
		glueFaces(c, base+localIdx(0, 0), ctables.FacePosY, base+localIdx(0, 1), ctables.FaceNegY, 0)
		glueFaces(c, base+localIdx(1, 0), ctables.FacePosY, base+localIdx(1, 1), ctables.FaceNegY, 0)
	}

	adj := cubeAdjacency()
	for p := geometry.ShellPatch(0); int(p) < 6; p++ {
		for _, face := range angularFaces {
			q := adj[p].neighbor(face)
			if q < p {
				continue
			}
			fq := faceTowards(adj, q, p)
			pSub := boundarySubtrees(int(p)*4, face)
			qSub := boundarySubtrees(int(q)*4, fq)
			glueFaces(c, pSub[0], face, qSub[0], fq, 0)
			glueFaces(c, pSub[1], face, qSub[1], fq, 0)
		}
	}
	return c
}

func localIdx(a, b int) int { return a + 2*b }

// boundarySubtrees returns, for a patch's 2x2 grid rooted at base, the
// two subtrees lying on the given angular face, ordered by the other
// in-plane coordinate (b for an X face, a for a Y face).
func boundarySubtrees(base, face int) [2]int {
	switch face {
	case ctables.FaceNegX:
		return [2]int{base + localIdx(0, 0), base + localIdx(0, 1)}
	case ctables.FacePosX:
		return [2]int{base + localIdx(1, 0), base + localIdx(1, 1)}
	case ctables.FaceNegY:
		return [2]int{base + localIdx(0, 0), base + localIdx(1, 0)}
	case ctables.FacePosY:
		return [2]int{base + localIdx(0, 1), base + localIdx(1, 1)}
	default:
		panic("factories: radial face has no boundary subtrees")
	}
}
