package factories

import (
	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
	"github.com/ivanredbread/p8est/geometry"
)

// Sphere builds the 13-tree solid-sphere connectivity geometry.Sphere
// expects: an outer shell (trees 0..5, geometry.SphereOrder), an inner
// shell (trees 6..11, same order offset by 6), and a center cube (tree
// 12). Unlike Shell's 2x2-per-patch grid, each shell here is exactly one
// tree per patch, so angular adjacency is a direct patch-to-tree gluing
// (cubeAdjacency) with no boundary-subtree pairing ambiguity.
//
// The two shell layers and the center cube meet along faces whose
// geometric identity is exact, not a simplification: geometry.Sphere's
// inner-shell blend reaches p=0 (pure tangent mapping, radius R1) at
// abc[2]=2 and the outer shell starts its own R1 boundary at abc[2]=1 —
// the same physical sphere of radius R1 — so outer[patch].FaceNegZ is
// glued to inner[patch].FacePosZ directly. Likewise the inner shell's
// p=1 (cubical interior) face at abc[2]=1 is exactly the center cube's
// corresponding face, via centerCubeFace. Only the angular (within-shell,
// patch-to-patch) gluings carry Shell's orientation-0 simplification,
// since they don't affect either literal forward-map scenario and spec.md
// §9 leaves the upstream rotation bookkeeping as implementer discretion.
func Sphere() *connectivity.Connectivity {
	c := connectivity.Allocate(0, 13, 0, 0, 0, 0)
	for t := 0; t < 13; t++ {
		boundaryFaces(c, t)
	}

	patchToOuterTree := func(p geometry.ShellPatch) int {
		for t, sp := range geometry.SphereOrder {
			if sp == p {
				return t
			}
		}
		panic("factories: patch not found in SphereOrder")
	}

	adj := cubeAdjacency()
	for p := geometry.ShellPatch(0); int(p) < 6; p++ {
		for _, face := range angularFaces {
			q := adj[p].neighbor(face)
			if q < p {
				continue
			}
			fq := faceTowards(adj, q, p)
			pt, qt := patchToOuterTree(p), patchToOuterTree(q)
			glueFaces(c, pt, face, qt, fq, 0)
			glueFaces(c, 6+pt, face, 6+qt, fq, 0)
		}
	}

	for t := 0; t < 6; t++ {
		glueFaces(c, t, ctables.FaceNegZ, 6+t, ctables.FacePosZ, 0)
		patch := geometry.SphereOrder[t]
		glueFaces(c, 6+t, ctables.FaceNegZ, 12, centerCubeFace(patch), 0)
	}
	return c
}

// centerCubeFace is the center cube's outward face touching the given
// patch's cubical-interior boundary, following this package's own
// right/left=X, front/back=Y, top/bottom=Z convention (matching
// geometry.PatchAxis/PatchSign's axis assignment for those patches).
func centerCubeFace(p geometry.ShellPatch) int {
	switch p {
	case geometry.PatchRight:
		return ctables.FacePosX
	case geometry.PatchLeft:
		return ctables.FaceNegX
	case geometry.PatchFront:
		return ctables.FacePosY
	case geometry.PatchBack:
		return ctables.FaceNegY
	case geometry.PatchTop:
		return ctables.FacePosZ
	case geometry.PatchBottom:
		return ctables.FaceNegZ
	default:
		panic("factories: unknown shell patch")
	}
}
