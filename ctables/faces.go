package ctables

// FaceCorners lists, for each face, its 4 corners in the canonical order
// (free-axis0, free-axis1) = (0,0), (1,0), (0,1), (1,1) — i.e. the same
// row-major order a Dense matrix backing slice would use for a 2x2 block.
// Corner 0 of the list is, by definition, the face's "first face corner".
var FaceCorners = [Faces][4]int{
	FaceNegX: {0, 2, 4, 6},
	FacePosX: {1, 3, 5, 7},
	FaceNegY: {0, 1, 4, 5},
	FacePosY: {2, 3, 6, 7},
	FaceNegZ: {0, 1, 2, 3},
	FacePosZ: {4, 5, 6, 7},
}

// FaceEdges lists, for each face, its 4 bounding edges: first the two
// edges parallel to the face's first in-face axis (FaceInAxes axis0), at
// second in-face coordinate 0 then 1, then the two edges parallel to its
// second in-face axis, at first in-face coordinate 0 then 1.
var FaceEdges = [Faces][4]int{
	FaceNegX: {4, 6, 8, 10},
	FacePosX: {5, 7, 9, 11},
	FaceNegY: {0, 2, 8, 9},
	FacePosY: {1, 3, 10, 11},
	FaceNegZ: {0, 1, 4, 5},
	FacePosZ: {2, 3, 6, 7},
}

// FaceDual is the opposite face of each face: axis-aligned pairs
// (-x,+x), (-y,+y), (-z,+z).
var FaceDual = [Faces]int{1, 0, 3, 2, 5, 4}

// faceNormalAxis[f] is the cube axis (0=x,1=y,2=z) that face f is normal
// to; faceInAxes[f] are the two axes spanning the face, in the order used
// as ftransform[0],ftransform[1] (so axis0,axis1 match the (free-axis0,
// free-axis1) order FaceCorners was built from).
var faceNormalAxis = [Faces]int{0, 0, 1, 1, 2, 2}
var faceInAxes = [Faces][2]int{
	FaceNegX: {1, 2},
	FacePosX: {1, 2},
	FaceNegY: {0, 2},
	FacePosY: {0, 2},
	FaceNegZ: {0, 1},
	FacePosZ: {0, 1},
}

// FaceNormalAxis returns the axis (0=x,1=y,2=z) that face f's outward
// normal points along.
func FaceNormalAxis(f int) int { return faceNormalAxis[f] }

// FaceInAxes returns the two axes spanning face f, in the canonical order
// matching FaceCorners' (free-axis0, free-axis1) layout.
func FaceInAxes(f int) (axis0, axis1 int) {
	a := faceInAxes[f]
	return a[0], a[1]
}

// FaceSide returns 0 for a "-" face and 1 for a "+" face (f%2).
func FaceSide(f int) int { return f % 2 }
