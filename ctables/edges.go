package ctables

// EdgeCorners lists the 2 endpoint corners of each edge. Edges 0-3 run
// parallel to x (grouped by y then z), 4-7 parallel to y (grouped by x
// then z), 8-11 parallel to z (grouped by x then y).
var EdgeCorners = [Edges][2]int{
	0: {0, 1}, 1: {2, 3}, 2: {4, 5}, 3: {6, 7},
	4: {0, 2}, 5: {1, 3}, 6: {4, 6}, 7: {5, 7},
	8: {0, 4}, 9: {1, 5}, 10: {2, 6}, 11: {3, 7},
}

// EdgeFaces lists the 2 faces each edge lies on.
var EdgeFaces = [Edges][2]int{
	0: {2, 4}, 1: {3, 4}, 2: {2, 5}, 3: {3, 5},
	4: {0, 4}, 5: {1, 4}, 6: {0, 5}, 7: {1, 5},
	8: {0, 2}, 9: {1, 2}, 10: {0, 3}, 11: {1, 3},
}

// edgeAxis[e] is the axis (0=x,1=y,2=z) edge e runs parallel to.
var edgeAxis = [Edges]int{
	0: 0, 1: 0, 2: 0, 3: 0,
	4: 1, 5: 1, 6: 1, 7: 1,
	8: 2, 9: 2, 10: 2, 11: 2,
}

// EdgeAxis returns the axis (0=x,1=y,2=z) that edge e runs parallel to.
func EdgeAxis(e int) int { return edgeAxis[e] }

// EdgeOfAxis returns the local edge number for the edge running parallel
// to axis a, whose other two axes (in ascending axis order) hold the
// given fixed bit values. It is the inverse of the construction used to
// build EdgeCorners/EdgeFaces from the canonical corner numbering.
func EdgeOfAxis(axis, fixed0, fixed1 int) int {
	switch axis {
	case 0: // x-parallel, fixed (y,z)
		return fixed0 + 2*fixed1
	case 1: // y-parallel, fixed (x,z)
		return 4 + fixed0 + 2*fixed1
	default: // z-parallel, fixed (x,y)
		return 8 + fixed0 + 2*fixed1
	}
}
