package connectivity

import (
	"reflect"

	"github.com/ivanredbread/p8est/ctables"
)

// IsValid reports whether the invariants in spec.md §3 hold: counts and
// array lengths, vertex presence, index ranges, face reciprocity, edge
// and corner bucket closure, and that every edge/corner bucket is
// referenced by some tree. It does not detect a record that face
// reciprocity already describes (see noOrphanBuckets), and it does not
// compare vertex coordinates across glued faces. It never
// panics and never mutates c; a caller gets a boolean, never partial
// diagnostics — this is the validator's entire contract (spec.md §7: "the
// validator is the sole non-assertive invariant checker and returns a
// boolean"). Diagnose runs the identical checks and reports which
// invariant failed, for callers (construct_from_copy, p8estio.Load) that
// need to report a specific sentinel rather than a bare boolean.
//
// Complexity: O(num_trees·constant + num_ett + num_ctt).
func IsValid(c *Connectivity) bool {
	return Diagnose(c) == nil
}

// Diagnose reports the first invariant violation Diagnose/IsValid finds,
// in the same order IsValid checks them, as one of the sentinels in
// errors.go — or nil if c is valid. Structural mismatches with no
// dedicated sentinel (nil c, a negative count, a fixed-size array of the
// wrong length) fall back to the generic ErrInvalidConnectivity.
func Diagnose(c *Connectivity) error {
	if c == nil {
		return ErrInvalidConnectivity
	}
	if c.NumVertices < 0 || c.NumTrees < 0 || c.NumEdges < 0 || c.NumCorners < 0 {
		return ErrInvalidConnectivity
	}
	if (c.NumVertices == 0) != (c.Vertices == nil && c.TreeToVertex == nil) {
		return ErrVertexCount
	}
	if c.NumVertices > 0 {
		if len(c.Vertices) != 3*c.NumVertices || len(c.TreeToVertex) != ctables.Children*c.NumTrees {
			return ErrVertexCount
		}
	}
	if len(c.TreeToTree) != ctables.Faces*c.NumTrees || len(c.TreeToFace) != ctables.Faces*c.NumTrees {
		return ErrInvalidConnectivity
	}
	if len(c.TreeToEdge) != ctables.Edges*c.NumTrees || len(c.EttOffset) != c.NumEdges+1 {
		return ErrInvalidConnectivity
	}
	if len(c.TreeToCorner) != ctables.Children*c.NumTrees || len(c.CttOffset) != c.NumCorners+1 {
		return ErrInvalidConnectivity
	}
	if len(c.EdgeToTree) != len(c.EdgeToEdge) || len(c.CornerToTree) != len(c.CornerToCorner) {
		return ErrInvalidConnectivity
	}

	if !indicesInRange(c) {
		return ErrIndexOutOfRange
	}
	if !offsetsMonotone(c.EttOffset) || !offsetsMonotone(c.CttOffset) {
		return ErrIndexOutOfRange
	}
	if !faceReciprocityHolds(c) {
		return ErrFaceReciprocity
	}
	if !edgeBucketsClose(c) {
		return ErrEdgeBucketClosure
	}
	if !cornerBucketsClose(c) {
		return ErrCornerBucketClosure
	}
	if !noOrphanBuckets(c) {
		return ErrGhostRecord
	}
	return nil
}

func offsetsMonotone(offs []int) bool {
	for i := 1; i < len(offs); i++ {
		if offs[i] < offs[i-1] {
			return false
		}
	}
	return len(offs) == 0 || offs[0] == 0
}

func indicesInRange(c *Connectivity) bool {
	nt := c.NumTrees
	for _, v := range c.TreeToTree {
		if v < 0 || v >= nt {
			return false
		}
	}
	if c.NumVertices > 0 {
		for _, v := range c.TreeToVertex {
			if v < 0 || v >= c.NumVertices {
				return false
			}
		}
	}
	for _, v := range c.TreeToEdge {
		if v < -1 || v >= c.NumEdges {
			return false
		}
	}
	for _, v := range c.TreeToCorner {
		if v < -1 || v >= c.NumCorners {
			return false
		}
	}
	for _, v := range c.EdgeToTree {
		if v < 0 || v >= nt {
			return false
		}
	}
	for _, v := range c.CornerToTree {
		if v < 0 || v >= nt {
			return false
		}
	}
	for _, v := range c.TreeToFace {
		if int(v) >= ctables.Faces*4 {
			return false
		}
	}
	return true
}

// faceReciprocityHolds checks invariant 3: if tree t's face f points to
// (t',f',o), tree t' face f' must point back to (t,f,o).
func faceReciprocityHolds(c *Connectivity) bool {
	for t := 0; t < c.NumTrees; t++ {
		for f := 0; f < ctables.Faces; f++ {
			nt, nf, o := c.FaceEntry(t, f)
			bt, bf, bo := c.FaceEntry(nt, nf)
			if bt != t || bf != f || bo != o {
				return false
			}
		}
	}
	return true
}

// edgeBucketsClose checks invariant 4/testable property 2: every
// tree_to_edge[t][e]=k bucket contains (t, identity-code-of-e) exactly
// once.
func edgeBucketsClose(c *Connectivity) bool {
	for t := 0; t < c.NumTrees; t++ {
		for e := 0; e < ctables.Edges; e++ {
			k := c.TreeToEdge[t*ctables.Edges+e]
			if k < 0 {
				continue
			}
			lo, hi := c.EttOffset[k], c.EttOffset[k+1]
			count := 0
			for i := lo; i < hi; i++ {
				if c.EdgeToTree[i] == t && int(c.EdgeToEdge[i]) == e {
					count++
				}
			}
			if count != 1 {
				return false
			}
		}
	}
	return true
}

func cornerBucketsClose(c *Connectivity) bool {
	for t := 0; t < c.NumTrees; t++ {
		for cn := 0; cn < ctables.Children; cn++ {
			k := c.TreeToCorner[t*ctables.Children+cn]
			if k < 0 {
				continue
			}
			lo, hi := c.CttOffset[k], c.CttOffset[k+1]
			count := 0
			for i := lo; i < hi; i++ {
				if c.CornerToTree[i] == t && int(c.CornerToCorner[i]) == cn {
					count++
				}
			}
			if count != 1 {
				return false
			}
		}
	}
	return true
}

// noOrphanBuckets is the checkable half of invariant 5 ("no ghost
// records"): every counted edge/corner bucket must be reachable from at
// least one tree_to_edge/tree_to_corner entry, i.e. num_edges/num_corners
// never over-counts. Under-counting (a macro-edge that should have been
// split out of face reciprocity but wasn't) is a factory/completer
// construction responsibility verified by round-trip tests, not a
// property the validator can check without re-deriving face-only
// reachability for every edge (spec.md §9 flags this table's
// implementer-discretion nature).
func noOrphanBuckets(c *Connectivity) bool {
	seenEdge := make([]bool, c.NumEdges)
	for _, k := range c.TreeToEdge {
		if k >= 0 {
			seenEdge[k] = true
		}
	}
	for _, ok := range seenEdge {
		if !ok {
			return false
		}
	}
	seenCorner := make([]bool, c.NumCorners)
	for _, k := range c.TreeToCorner {
		if k >= 0 {
			seenCorner[k] = true
		}
	}
	for _, ok := range seenCorner {
		if !ok {
			return false
		}
	}
	return true
}

// IsEqual is deep structural equality over every array (spec.md §4.D).
func IsEqual(a, b *Connectivity) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.NumVertices != b.NumVertices || a.NumTrees != b.NumTrees ||
		a.NumEdges != b.NumEdges || a.NumCorners != b.NumCorners {
		return false
	}
	return reflect.DeepEqual(a.Vertices, b.Vertices) &&
		reflect.DeepEqual(a.TreeToVertex, b.TreeToVertex) &&
		reflect.DeepEqual(a.TreeToTree, b.TreeToTree) &&
		reflect.DeepEqual(a.TreeToFace, b.TreeToFace) &&
		reflect.DeepEqual(a.TreeToEdge, b.TreeToEdge) &&
		reflect.DeepEqual(a.EttOffset, b.EttOffset) &&
		reflect.DeepEqual(a.EdgeToTree, b.EdgeToTree) &&
		reflect.DeepEqual(a.EdgeToEdge, b.EdgeToEdge) &&
		reflect.DeepEqual(a.TreeToCorner, b.TreeToCorner) &&
		reflect.DeepEqual(a.CttOffset, b.CttOffset) &&
		reflect.DeepEqual(a.CornerToTree, b.CornerToTree) &&
		reflect.DeepEqual(a.CornerToCorner, b.CornerToCorner)
}
