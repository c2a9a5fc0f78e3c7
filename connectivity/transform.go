package connectivity

import "github.com/ivanredbread/p8est/ctables"

// FTransform is the 9-integer coordinate-transform descriptor produced by
// FindFaceTransform (spec.md §4.C.1). It is a plain value, independent of
// the Connectivity's lifetime once copied (spec.md §3 Ownership).
type FTransform [ctables.FTransform]int

// FindFaceTransform maps a coordinate on tree's local face into
// neighborTree's reference frame. A boundary face (the face is
// self-connected with matching face and zero orientation) returns
// neighborTree=-1 and an unspecified ft.
//
// Complexity: O(1).
func FindFaceTransform(c *Connectivity, tree, face int) (neighborTree int, ft FTransform, err error) {
	if err = checkTreeFace(c, tree, face); err != nil {
		return 0, ft, err
	}
	nt, nf, o := c.FaceEntry(tree, face)
	if nt == tree && nf == face {
		return -1, ft, nil
	}

	axis0, axis1 := ctables.FaceInAxes(face)
	normal := ctables.FaceNormalAxis(face)
	naxis0, naxis1 := ctables.FaceInAxes(nf)
	nnormal := ctables.FaceNormalAxis(nf)

	setIdx := ctables.FacePermutationRefs[face][nf]
	permIdx := ctables.FacePermutationSets[setIdx][o]
	perm := ctables.FacePermutations[permIdx]
	swap, flip0, flip1 := analyzeFacePermutation(perm)

	ft[0], ft[1], ft[2] = axis0, axis1, normal
	ft[5] = nnormal
	if !swap {
		ft[3], ft[4] = naxis0, naxis1
		ft[6], ft[7] = flip0, flip1
	} else {
		ft[3], ft[4] = naxis1, naxis0
		ft[6], ft[7] = flip1, flip0
	}

	switch {
	case nt == tree:
		ft[8] = 2
	case ctables.FaceSide(face) != ctables.FaceSide(nf):
		if ctables.FaceSide(face) == 0 {
			ft[8] = 0
		} else {
			ft[8] = 1
		}
	default:
		ft[8] = 2
	}
	return nt, ft, nil
}

// analyzeFacePermutation decodes a FacePermutations entry into the
// (swap, flip0, flip1) parameters of the axis map it realizes. Positions
// encode (b0,b1) as p=b0+2*b1; writing q=perm[p] similarly as
// q=c0+2*c1, there always exist bits (swap,flip0,flip1) with
//
//	(c0,c1) = (b1,b0) XOR (flip0,flip1)   if swap
//	(c0,c1) = (b0,b1) XOR (flip0,flip1)   if !swap
//
// Evaluating at p=0 (b0=b1=0) gives (c0,c1)=(flip0,flip1) directly in
// both cases; comparing perm[0] and perm[1] (which toggles b0) reveals
// whether c0 tracks b0 (!swap) or is unaffected by it (swap).
func analyzeFacePermutation(perm [4]int) (swap bool, flip0, flip1 int) {
	flip0 = perm[0] & 1
	flip1 = (perm[0] >> 1) & 1
	swap = perm[0]&1 == perm[1]&1
	return
}

// EdgeTransform describes one other tree-side of a macro-edge, relative
// to the tree/edge FindEdgeTransform was called with.
type EdgeTransform struct {
	NTree   int
	NEdge   int    // 0..11
	NAxis   [3]int // NAxis[a] = neighbor axis corresponding to my axis a
	NFlip   bool   // neighbor's along-edge parameter runs opposite to mine
	Corners int    // 0..3 tie-break disambiguator, see edgeCornersTieBreak
}

// FindEdgeTransform enumerates every other tree-side of tree's local edge
// (spec.md §4.C.2), excluding the origin entry and any partner already
// reachable through face reciprocity across one of the edge's two
// bounding faces. A local edge with no recorded bucket (-1) yields an
// empty, nil-error result.
func FindEdgeTransform(c *Connectivity, tree, edge int) ([]EdgeTransform, error) {
	if err := checkTreeEdge(c, tree, edge); err != nil {
		return nil, err
	}
	k := c.TreeToEdge[tree*ctables.Edges+edge]
	if k < 0 {
		return nil, nil
	}

	faceReachable := faceReachableNeighbors(c, tree, ctables.EdgeFaces[edge][:])

	lo, hi := c.EttOffset[k], c.EttOffset[k+1]
	var out []EdgeTransform
	for i := lo; i < hi; i++ {
		nt := c.EdgeToTree[i]
		code := int(c.EdgeToEdge[i])
		nedge, flip := DecodeEdgeCode(code)
		if nt == tree && nedge == edge {
			continue // origin entry
		}
		if faceReachable[nt] {
			continue
		}
		out = append(out, EdgeTransform{
			NTree:   nt,
			NEdge:   nedge,
			NAxis:   edgeAxisMap(edge, nedge),
			NFlip:   flip,
			Corners: edgeCornersTieBreak(edge, flip),
		})
	}
	return out, nil
}

// edgeAxisMap builds the 3-axis correspondence for an edge transform: the
// along-edge axis maps to the neighbor's along-edge axis, and the two
// cross axes map in ascending order. This is the simplest convention
// consistent with spec.md §4.C.2's "naxis records which reference axis
// the edge runs along on both sides"; spec.md §9 flags fuller derivation
// of this table as implementer discretion, to be checked by round-trip
// validation rather than derived from first principles.
func edgeAxisMap(edge, nedge int) [3]int {
	myAxis := ctables.EdgeAxis(edge)
	nAxis := ctables.EdgeAxis(nedge)
	myO0, myO1 := otherAxesPublic(myAxis)
	nO0, nO1 := otherAxesPublic(nAxis)
	var m [3]int
	m[myAxis] = nAxis
	m[myO0] = nO0
	m[myO1] = nO1
	return m
}

// otherAxesPublic mirrors ctables' unexported otherAxes for the two
// non-parallel axes of an edge, in ascending order.
func otherAxesPublic(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// edgeCornersTieBreak derives the documented-discretionary `corners`
// disambiguator (spec.md §9) as a function of the edge's first endpoint
// corner and the orientation flip, giving a stable, reproducible 0..3
// value without claiming to reproduce an undocumented upstream encoding.
func edgeCornersTieBreak(edge int, flip bool) int {
	c0 := ctables.EdgeCorners[edge][0]
	v := (c0 & 1) * 2
	if flip {
		v++
	}
	return v
}

// CornerTransform describes one other tree-side of a macro-corner.
type CornerTransform struct {
	NTree   int
	NCorner int // 0..7
}

// FindCornerTransform enumerates every other tree-side of tree's local
// corner (spec.md §4.C.3), excluding the origin entry and any partner
// already reachable through face or edge reciprocity.
func FindCornerTransform(c *Connectivity, tree, corner int) ([]CornerTransform, error) {
	if err := checkTreeCorner(c, tree, corner); err != nil {
		return nil, err
	}
	k := c.TreeToCorner[tree*ctables.Children+corner]
	if k < 0 {
		return nil, nil
	}

	reachable := faceReachableNeighbors(c, tree, ctables.CornerFaces[corner][:])
	for _, e := range ctables.CornerEdges[corner] {
		ets, err := FindEdgeTransform(c, tree, e)
		if err != nil {
			return nil, err
		}
		for _, et := range ets {
			reachable[et.NTree] = true
		}
	}

	lo, hi := c.CttOffset[k], c.CttOffset[k+1]
	var out []CornerTransform
	for i := lo; i < hi; i++ {
		nt := c.CornerToTree[i]
		ncorner := int(c.CornerToCorner[i])
		if nt == tree && ncorner == corner {
			continue
		}
		if reachable[nt] {
			continue
		}
		out = append(out, CornerTransform{NTree: nt, NCorner: ncorner})
	}
	return out, nil
}

// faceReachableNeighbors returns the set of trees reachable from tree by
// crossing any one of faces via face reciprocity (excluding a
// self-connected boundary face). Both the query-time suppression in
// FindEdgeTransform/FindCornerTransform and the construction-time ghost
// suppression in Complete share this one definition of "already
// describable by face reciprocity" (spec.md §3 invariant 5).
func faceReachableNeighbors(c *Connectivity, tree int, faces []int) map[int]bool {
	reachable := map[int]bool{}
	for _, f := range faces {
		nt, nf, _ := c.FaceEntry(tree, f)
		if nt == tree && nf == f {
			continue
		}
		reachable[nt] = true
	}
	return reachable
}

func checkTreeFace(c *Connectivity, tree, face int) error {
	if tree < 0 || tree >= c.NumTrees || face < 0 || face >= ctables.Faces {
		return ErrOutOfRange
	}
	return nil
}

func checkTreeEdge(c *Connectivity, tree, edge int) error {
	if tree < 0 || tree >= c.NumTrees || edge < 0 || edge >= ctables.Edges {
		return ErrOutOfRange
	}
	return nil
}

func checkTreeCorner(c *Connectivity, tree, corner int) error {
	if tree < 0 || tree >= c.NumTrees || corner < 0 || corner >= ctables.Children {
		return ErrOutOfRange
	}
	return nil
}
