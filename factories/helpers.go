package factories

import (
	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

// boundaryFaces sets every one of tree's 6 faces to the self-connected
// boundary entry (spec.md §3): neighborTree==tree, neighborFace==f,
// orientation==0. Allocate leaves every TreeToTree/TreeToFace entry
// zeroed, which reads as "glued to tree 0's face 0" unless overwritten —
// every face of every tree must go through SetFaceEntry once, glued or
// not.
func boundaryFaces(c *connectivity.Connectivity, tree int) {
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(tree, f, tree, f, 0)
	}
}

// glueFaces joins treeA's face fA to treeB's face fB with the given
// orientation, setting both sides (face gluing is always reciprocal,
// spec.md §3 invariant 3).
func glueFaces(c *connectivity.Connectivity, treeA, fA, treeB, fB, orientation int) {
	c.SetFaceEntry(treeA, fA, treeB, fB, orientation)
	c.SetFaceEntry(treeB, fB, treeA, fA, orientation)
}

// cubeVertices returns the 8 Cartesian corners of a unit cube anchored at
// origin, in ctables' zyx corner order (CornerFromBits(x,y,z)).
func cubeVertices(origin [3]float64, size float64) [24]float64 {
	var v [24]float64
	for c := 0; c < ctables.Children; c++ {
		x := ctables.CornerBit(c, 0)
		y := ctables.CornerBit(c, 1)
		z := ctables.CornerBit(c, 2)
		v[3*c+0] = origin[0] + float64(x)*size
		v[3*c+1] = origin[1] + float64(y)*size
		v[3*c+2] = origin[2] + float64(z)*size
	}
	return v
}
