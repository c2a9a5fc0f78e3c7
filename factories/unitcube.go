package factories

import (
	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

// Unitcube builds the single-tree connectivity with all six faces left
// as boundary (spec.md §4.E, literal scenario S1).
func Unitcube() *connectivity.Connectivity {
	c := connectivity.Allocate(8, 1, 0, 0, 0, 0)
	v := cubeVertices([3]float64{0, 0, 0}, 1)
	copy(c.Vertices, v[:])
	for i := 0; i < ctables.Children; i++ {
		c.TreeToVertex[i] = i
	}
	boundaryFaces(c, 0)
	return c
}

// Periodic builds the single-tree connectivity with all three face
// pairs identified at zero orientation (spec.md §4.E): every point in
// the tree wraps back onto itself along x, y, and z.
func Periodic() *connectivity.Connectivity {
	c := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	boundaryFaces(c, 0)
	glueFaces(c, 0, ctables.FaceNegX, 0, ctables.FacePosX, 0)
	glueFaces(c, 0, ctables.FaceNegY, 0, ctables.FacePosY, 0)
	glueFaces(c, 0, ctables.FaceNegZ, 0, ctables.FacePosZ, 0)
	return c
}

// Rotwrap builds the single-tree connectivity literal scenario S3 needs:
// ±x identified at orientation 0, ±y identified with a quarter-turn
// (orientation code 3), ±z left as boundary.
func Rotwrap() *connectivity.Connectivity {
	c := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	boundaryFaces(c, 0)
	glueFaces(c, 0, ctables.FaceNegX, 0, ctables.FacePosX, 0)
	glueFaces(c, 0, ctables.FaceNegY, 0, ctables.FacePosY, 3)
	return c
}
