package ctables_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanredbread/p8est/ctables"
)

// TestFaceDual_Involution verifies every face's dual is itself a proper
// involution: dual(dual(f)) == f and dual(f) != f.
func TestFaceDual_Involution(t *testing.T) {
	for f := 0; f < ctables.Faces; f++ {
		dual := ctables.FaceDual[f]
		require.NotEqual(t, f, dual, "face %d must not be its own dual", f)
		require.Equal(t, f, ctables.FaceDual[dual], "dual must be an involution")
	}
}

// TestFaceCorners_CoverAllCorners verifies every corner appears on
// exactly 3 faces (one per axis), matching CornerFaces.
func TestFaceCorners_CoverAllCorners(t *testing.T) {
	count := map[int]int{}
	for f := 0; f < ctables.Faces; f++ {
		require.Len(t, ctables.FaceCorners[f], 4)
		for _, c := range ctables.FaceCorners[f] {
			count[c]++
		}
	}
	for c := 0; c < ctables.Children; c++ {
		require.Equal(t, 3, count[c], "corner %d should touch exactly 3 faces", c)
	}
}

// TestCornerFaces_MatchFaceCorners cross-checks CornerFaces against
// FaceCorners: every face listed for a corner must actually contain it.
func TestCornerFaces_MatchFaceCorners(t *testing.T) {
	for c := 0; c < ctables.Children; c++ {
		for _, f := range ctables.CornerFaces[c] {
			require.Contains(t, ctables.FaceCorners[f][:], c)
		}
	}
}

// TestEdgeCorners_MatchCornerEdges cross-checks that every edge recorded
// for a corner actually has that corner as an endpoint.
func TestEdgeCorners_MatchCornerEdges(t *testing.T) {
	for c := 0; c < ctables.Children; c++ {
		for _, e := range ctables.CornerEdges[c] {
			ends := ctables.EdgeCorners[e]
			require.True(t, ends[0] == c || ends[1] == c, "edge %d should touch corner %d", e, c)
		}
	}
}

// TestEdgeFaces_ConsistentWithFaceEdges verifies every edge's two
// recorded faces actually list that edge in FaceEdges.
func TestEdgeFaces_ConsistentWithFaceEdges(t *testing.T) {
	for e := 0; e < ctables.Edges; e++ {
		for _, f := range ctables.EdgeFaces[e] {
			require.Contains(t, ctables.FaceEdges[f][:], e)
		}
	}
}

// TestFacePermutations_AreBijections verifies every one of the 8
// realisable permutations is a genuine bijection on {0,1,2,3}.
func TestFacePermutations_AreBijections(t *testing.T) {
	for i, perm := range ctables.FacePermutations {
		seen := map[int]bool{}
		for _, v := range perm {
			require.False(t, seen[v], "permutation %d is not a bijection: %v", i, perm)
			seen[v] = true
		}
	}
}

// TestFacePermutations_IdentityIsFirst verifies orientation 0 of the
// dual-pair set is the identity permutation (needed for S4: an unrotated
// side-by-side gluing must not introduce any corner relabeling).
func TestFacePermutations_IdentityIsFirst(t *testing.T) {
	dualSet := ctables.FacePermutationSets[0]
	identity := ctables.FacePermutations[dualSet[0]]
	require.Equal(t, [4]int{0, 1, 2, 3}, identity)
}

// TestFacePermutationRefs_SelfConsistent checks the ref table picks set 0
// for dual pairs, set 1 for same-face pairs, and set 2 otherwise.
func TestFacePermutationRefs_SelfConsistent(t *testing.T) {
	for f := 0; f < ctables.Faces; f++ {
		for fp := 0; fp < ctables.Faces; fp++ {
			got := ctables.FacePermutationRefs[f][fp]
			switch {
			case fp == ctables.FaceDual[f]:
				require.Equal(t, 0, got)
			case fp == f:
				require.Equal(t, 1, got)
			default:
				require.Equal(t, 2, got)
			}
		}
	}
}

// TestCornerFaceCorners_RoundTrip verifies CornerFaceCorners agrees with a
// direct search of FaceCorners.
func TestCornerFaceCorners_RoundTrip(t *testing.T) {
	for c := 0; c < ctables.Children; c++ {
		for f := 0; f < ctables.Faces; f++ {
			idx := ctables.CornerFaceCorners[c][f]
			if idx < 0 {
				require.NotContains(t, ctables.FaceCorners[f][:], c)
			} else {
				require.Equal(t, c, ctables.FaceCorners[f][idx])
			}
		}
	}
}

// TestChildCornerFaces_OnlyHammingTwo verifies -1 appears everywhere the
// Hamming distance between child and corner bit patterns isn't exactly 2,
// per the documented contract.
func TestChildCornerFaces_OnlyHammingTwo(t *testing.T) {
	for c := 0; c < ctables.Children; c++ {
		for j := 0; j < ctables.Children; j++ {
			dist := hamming(c, j)
			got := ctables.ChildCornerFaces[c][j]
			if dist != 2 {
				require.Equal(t, -1, got, "child=%d corner=%d dist=%d", c, j, dist)
			} else {
				require.GreaterOrEqual(t, got, 0)
				require.Less(t, got, ctables.Faces)
			}
		}
	}
}

func hamming(a, b int) int {
	n := 0
	for axis := 0; axis < 3; axis++ {
		if ctables.CornerBit(a, axis) != ctables.CornerBit(b, axis) {
			n++
		}
	}
	return n
}
