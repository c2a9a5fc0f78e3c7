package factories

import (
	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

// Twocubes builds two trees glued face-to-face along x at zero
// orientation (spec.md §4.E): tree 0's +x meets tree 1's -x, every other
// face left as boundary. The two trees share the 4 vertices on the
// glued face, laid out on a 3x2x2 lattice (global x index 0,1 for
// tree0, 1,2 for tree1) so Complete can later identify the shared
// corners/edges.
func Twocubes() *connectivity.Connectivity {
	c := connectivity.Allocate(12, 2, 0, 0, 0, 0)
	for iz := 0; iz < 2; iz++ {
		for iy := 0; iy < 2; iy++ {
			for ix := 0; ix < 3; ix++ {
				id := ix + 3*(iy+2*iz)
				c.Vertices[3*id+0] = float64(ix)
				c.Vertices[3*id+1] = float64(iy)
				c.Vertices[3*id+2] = float64(iz)
			}
		}
	}
	for tree := 0; tree < 2; tree++ {
		for local := 0; local < ctables.Children; local++ {
			xb := ctables.CornerBit(local, 0)
			yb := ctables.CornerBit(local, 1)
			zb := ctables.CornerBit(local, 2)
			ix := xb + tree
			c.TreeToVertex[tree*ctables.Children+local] = ix + 3*(yb+2*zb)
		}
	}

	boundaryFaces(c, 0)
	boundaryFaces(c, 1)
	glueFaces(c, 0, ctables.FacePosX, 1, ctables.FaceNegX, 0)
	return c
}

// Twowrap builds the same two-tree x-glued pair as Twocubes but also
// identifies the pair's two remaining outward x-faces through
// periodicity (spec.md §4.E), closing tree0/tree1 into a 2-tree ring
// along x; the y and z faces stay boundary.
func Twowrap() *connectivity.Connectivity {
	c := connectivity.Allocate(0, 2, 0, 0, 0, 0)
	boundaryFaces(c, 0)
	boundaryFaces(c, 1)
	glueFaces(c, 0, ctables.FacePosX, 1, ctables.FaceNegX, 0)
	glueFaces(c, 1, ctables.FacePosX, 0, ctables.FaceNegX, 0)
	return c
}
