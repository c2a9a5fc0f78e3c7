package ctables

// Fixed cube constants (spec.md §3). These never vary: the whole package
// exists to give 3D cube combinatorics a single, compile-time home.
const (
	Faces      = 6  // number of faces of a cube
	Children   = 8  // number of child octants / corners of a cube
	Half       = 4  // children per face, half of Children
	Edges      = 12 // number of edges of a cube
	Insul      = 27 // 3x3x3 insulation layer (self + 26 neighbors)
	FTransform = 9  // length of a face-transform descriptor
)

// Faces, in canonical order: -x, +x, -y, +y, -z, +z.
const (
	FaceNegX = 0
	FacePosX = 1
	FaceNegY = 2
	FacePosY = 3
	FaceNegZ = 4
	FacePosZ = 5
)
