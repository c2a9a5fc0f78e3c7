package factories

import (
	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

// Rotcubes builds a 4-tree ring glued along x, one dual-face gluing per
// orientation code (0,1,2,3 in turn), so every FindFaceTransform
// orientation branch gets exercised against a real connectivity rather
// than a hand-built test fixture. No vertex array: the ring's geometric
// embedding isn't the point, only that every orientation code appears
// on a reciprocal pair.
func Rotcubes() *connectivity.Connectivity {
	const n = 4
	c := connectivity.Allocate(0, n, 0, 0, 0, 0)
	for t := 0; t < n; t++ {
		boundaryFaces(c, t)
	}
	for t := 0; t < n; t++ {
		next := (t + 1) % n
		glueFaces(c, t, ctables.FacePosX, next, ctables.FaceNegX, t)
	}
	return c
}
