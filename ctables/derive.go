package ctables

// CornerFaceCorners[c][f] is the local index (0..3) of corner c within
// FaceCorners[f], or -1 if corner c does not lie on face f.
var CornerFaceCorners [Children][Faces]int

// EdgeFaceCorners[e][f] is the pair of local indices (0..3) within
// FaceCorners[f] of edge e's two endpoint corners, in the same order as
// EdgeCorners[e], or {-1,-1} if edge e does not lie on face f.
var EdgeFaceCorners [Edges][Faces][2]int

// ChildCornerFaces[c][j] is the parent face shared between child octant c
// and corner j when exactly one of the 3 axes agrees between their zyx
// bit patterns (Hamming distance 2); -1 otherwise (0 agreeing axes: child
// c's fully-interior corner; 2 or 3 agreeing axes: the shared boundary is
// an edge or all 3 faces, not a single face — ambiguous for this table's
// shape, so recorded as -1 exactly as spec.md §4.A allows).
var ChildCornerFaces [Children][Children]int

// ChildCornerEdges[c][j] is the parent edge shared between child octant c
// and corner j when exactly one axis differs (Hamming distance 1); -1
// otherwise.
var ChildCornerEdges [Children][Children]int

// ChildEdgeFaces[c][e] is the parent face adjacent to edge e that child
// octant c touches, when exactly one of edge e's two fixed axes agrees
// with c's corresponding bit; -1 if zero or both agree (no single
// unambiguous face for this child/edge pair).
var ChildEdgeFaces [Children][Edges]int

func init() {
	for c := 0; c < Children; c++ {
		for f := 0; f < Faces; f++ {
			CornerFaceCorners[c][f] = indexOf(FaceCorners[f][:], c)
		}
	}

	for e := 0; e < Edges; e++ {
		for f := 0; f < Faces; f++ {
			a := indexOf(FaceCorners[f][:], EdgeCorners[e][0])
			b := indexOf(FaceCorners[f][:], EdgeCorners[e][1])
			if a < 0 || b < 0 {
				EdgeFaceCorners[e][f] = [2]int{-1, -1}
			} else {
				EdgeFaceCorners[e][f] = [2]int{a, b}
			}
		}
	}

	for c := 0; c < Children; c++ {
		for j := 0; j < Children; j++ {
			ChildCornerFaces[c][j] = -1
			ChildCornerEdges[c][j] = -1

			agree := [3]bool{}
			nAgree := 0
			for axis := 0; axis < 3; axis++ {
				if CornerBit(c, axis) == CornerBit(j, axis) {
					agree[axis] = true
					nAgree++
				}
			}
			switch nAgree {
			case 1:
				// exactly one matching axis -> unique shared face
				for axis := 0; axis < 3; axis++ {
					if agree[axis] {
						ChildCornerFaces[c][j] = 2*axis + CornerBit(c, axis)
					}
				}
			case 2:
				// exactly one differing axis -> unique shared edge along it
				for axis := 0; axis < 3; axis++ {
					if !agree[axis] {
						o1, o2 := otherAxes(axis)
						ChildCornerEdges[c][j] = EdgeOfAxis(axis, CornerBit(c, o1), CornerBit(c, o2))
					}
				}
			}
		}
	}

	for c := 0; c < Children; c++ {
		for e := 0; e < Edges; e++ {
			ChildEdgeFaces[c][e] = -1
			axis := EdgeAxis(e)
			o1, o2 := otherAxes(axis)
			fixed0, fixed1 := edgeFixedBits(e, axis)
			m1 := CornerBit(c, o1) == fixed0
			m2 := CornerBit(c, o2) == fixed1
			switch {
			case m1 && !m2:
				ChildEdgeFaces[c][e] = 2*o1 + fixed0
			case m2 && !m1:
				ChildEdgeFaces[c][e] = 2*o2 + fixed1
			}
		}
	}
}

// indexOf returns the position of v in s, or -1 if absent.
func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// otherAxes returns the two axes other than axis, in ascending order.
func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// edgeFixedBits returns the fixed bit values of edge e's two non-parallel
// axes (in ascending axis order), recovered from either endpoint corner.
func edgeFixedBits(e, axis int) (int, int) {
	c := EdgeCorners[e][0]
	o1, o2 := otherAxes(axis)
	return CornerBit(c, o1), CornerBit(c, o2)
}
