package factories

import (
	"github.com/ivanredbread/p8est/ctables"
	"github.com/ivanredbread/p8est/geometry"
)

// patchEdges describes, for one cubed-sphere patch, which neighboring
// patch borders it at each of its four angular edges (the tree-local
// faces FaceNegX/FacePosX/FaceNegY/FacePosY; the radial faces
// FaceNegZ/FacePosZ connect inward/outward between shells instead, see
// shell.go/sphere.go).
type patchEdges struct {
	negX, posX, negY, posY geometry.ShellPatch
}

// patchInDirection returns whichever patch's own radial axis (component
// 0 of geometry.PatchAxis/PatchSign — the one that receives q, the
// outward radial coordinate) points along the given physical axis and
// sign. Every patch's outward direction is distinct, so exactly one
// matches.
func patchInDirection(axis int, sign float64) geometry.ShellPatch {
	for p := geometry.ShellPatch(0); int(p) < 6; p++ {
		if geometry.PatchAxis[p][0] == axis && geometry.PatchSign[p][0] == sign {
			return p
		}
	}
	panic("factories: no patch faces the requested direction")
}

// cubeAdjacency derives, for every patch, its four angular neighbors
// directly from geometry.PatchAxis/PatchSign — the same convention
// geometry.Shell/geometry.Sphere use for their forward maps and
// Jacobians, so the factory's face gluing and the geometry package's
// coordinate chart are guaranteed consistent rather than hand-matched.
//
// abc[0] (tree-local x, FaceNegX/FacePosX) carries the patch's u
// coordinate (assemblePatch's output component 1); abc[1] (FaceNegY/
// FacePosY) carries v (component 2). A patch's -u edge lies in the
// physical direction -PatchSign[p][1] along axis PatchAxis[p][1], and
// so on for +u, -v, +v.
func cubeAdjacency() [6]patchEdges {
	var adj [6]patchEdges
	for p := geometry.ShellPatch(0); int(p) < 6; p++ {
		axis, sign := geometry.PatchAxis[p], geometry.PatchSign[p]
		adj[p] = patchEdges{
			negX: patchInDirection(axis[1], -sign[1]),
			posX: patchInDirection(axis[1], sign[1]),
			negY: patchInDirection(axis[2], -sign[2]),
			posY: patchInDirection(axis[2], sign[2]),
		}
	}
	return adj
}

// angularFaces are the four tree-local faces a patch borders its
// angular neighbors on (the radial faces FaceNegZ/FacePosZ connect
// shells instead).
var angularFaces = [4]int{ctables.FaceNegX, ctables.FacePosX, ctables.FaceNegY, ctables.FacePosY}

// neighbor returns the patchEdges field for the given tree-local face
// (must be one of angularFaces).
func (e patchEdges) neighbor(face int) geometry.ShellPatch {
	switch face {
	case ctables.FaceNegX:
		return e.negX
	case ctables.FacePosX:
		return e.posX
	case ctables.FaceNegY:
		return e.negY
	case ctables.FacePosY:
		return e.posY
	default:
		panic("factories: radial face has no angular neighbor")
	}
}

// faceTowards returns the angular face of patch p (per adj) that
// borders patch target — the reverse direction of some other patch's
// edge into p.
func faceTowards(adj [6]patchEdges, p, target geometry.ShellPatch) int {
	for _, f := range angularFaces {
		if adj[p].neighbor(f) == target {
			return f
		}
	}
	panic("factories: patches are not angularly adjacent")
}
