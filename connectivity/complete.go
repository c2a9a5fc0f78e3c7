package connectivity

import "github.com/ivanredbread/p8est/ctables"

// Complete derives tree_to_edge/tree_to_corner and their bucket tables
// from tree_to_vertex identity alone (spec.md §4.D): two tree-local
// corners sharing a vertex index belong to the same macro-corner, and
// two tree-local edges whose endpoint vertex pairs match (in either
// order) belong to the same macro-edge. A tree-local corner/edge whose
// entire vertex-identity group is already reachable through face
// reciprocity (spec.md §3 invariant 5: interior-to-a-face records must
// not appear) is left at -1 rather than given a bucket entry — see
// faceReachableNeighbors in transform.go, the same definition
// FindEdgeTransform/FindCornerTransform use at query time. It overwrites
// NumEdges/NumCorners and every edge/corner array on c.
//
// Complete mirrors the iterative, stack-free component-grouping idiom of
// a DFS-style adjacency-map walk, repurposed here to group
// at most 8 corner "lives" or 12 edge "lives" per tree rather than an
// arbitrary graph: grouping is a single pass over a map keyed by shared
// vertex identity rather than a graph traversal, since vertex identity
// already is the equivalence relation.
//
// A Connectivity with NumVertices==0 (no vertex array at all) has no
// identity to derive from; Complete is then a documented no-op, per
// spec.md §9's resolution of the num_vertices=0 open question.
func Complete(c *Connectivity) error {
	if c == nil {
		return ErrInvalidConnectivity
	}
	if c.NumVertices == 0 || c.Vertices == nil || c.TreeToVertex == nil {
		return nil
	}
	completeCorners(c)
	completeEdges(c)
	return nil
}

type cornerNode struct {
	tree, corner int
}

func completeCorners(c *Connectivity) {
	groups := map[int][]cornerNode{}
	var order []int
	for t := 0; t < c.NumTrees; t++ {
		for cn := 0; cn < ctables.Children; cn++ {
			v := c.TreeToVertex[t*ctables.Children+cn]
			if _, ok := groups[v]; !ok {
				order = append(order, v)
			}
			groups[v] = append(groups[v], cornerNode{t, cn})
		}
	}

	treeToCorner := make([]int, ctables.Children*c.NumTrees)
	for i := range treeToCorner {
		treeToCorner[i] = -1
	}
	cttOffset := []int{0}
	// Allocate's own bucket arrays are always non-nil, even when a count
	// is zero; build these the same way so IsEqual's reflect.DeepEqual
	// never sees a nil-vs-empty mismatch against a round-tripped value.
	cornerToTree := make([]int, 0)
	cornerToCorner := make([]int, 0)

	k := 0
	for _, v := range order {
		members := groups[v]
		if len(members) < 2 {
			continue
		}
		kept := keepNonGhostCorners(c, members)
		if len(kept) < 2 {
			continue
		}
		for _, m := range kept {
			treeToCorner[m.tree*ctables.Children+m.corner] = k
			cornerToTree = append(cornerToTree, m.tree)
			cornerToCorner = append(cornerToCorner, m.corner)
		}
		cttOffset = append(cttOffset, len(cornerToTree))
		k++
	}

	c.NumCorners = k
	c.TreeToCorner = treeToCorner
	c.CttOffset = cttOffset
	c.CornerToTree = cornerToTree
	c.CornerToCorner = make([]uint8, len(cornerToCorner))
	for i, v := range cornerToCorner {
		c.CornerToCorner[i] = uint8(v)
	}
}

type edgeNode struct {
	tree, edge int
	va, vb     int // endpoint vertex indices in this tree's own corner order
}

func completeEdges(c *Connectivity) {
	type key struct{ lo, hi int }
	groups := map[key][]edgeNode{}
	var order []key

	for t := 0; t < c.NumTrees; t++ {
		for e := 0; e < ctables.Edges; e++ {
			ca, cb := ctables.EdgeCorners[e][0], ctables.EdgeCorners[e][1]
			va := c.TreeToVertex[t*ctables.Children+ca]
			vb := c.TreeToVertex[t*ctables.Children+cb]
			lo, hi := va, vb
			if lo > hi {
				lo, hi = hi, lo
			}
			kk := key{lo, hi}
			if _, ok := groups[kk]; !ok {
				order = append(order, kk)
			}
			groups[kk] = append(groups[kk], edgeNode{t, e, va, vb})
		}
	}

	treeToEdge := make([]int, ctables.Edges*c.NumTrees)
	for i := range treeToEdge {
		treeToEdge[i] = -1
	}
	ettOffset := []int{0}
	edgeToTree := make([]int, 0)
	edgeToEdge := make([]uint8, 0)

	k := 0
	for _, kk := range order {
		members := groups[kk]
		if len(members) < 2 {
			continue
		}
		kept := keepNonGhostEdges(c, members)
		if len(kept) < 2 {
			continue
		}
		ref := members[0]
		for _, m := range kept {
			flip := m.va != ref.va
			treeToEdge[m.tree*ctables.Edges+m.edge] = k
			edgeToTree = append(edgeToTree, m.tree)
			edgeToEdge = append(edgeToEdge, uint8(EncodeEdgeCode(m.edge, flip)))
		}
		ettOffset = append(ettOffset, len(edgeToTree))
		k++
	}

	c.NumEdges = k
	c.TreeToEdge = treeToEdge
	c.EttOffset = ettOffset
	c.EdgeToTree = edgeToTree
	c.EdgeToEdge = edgeToEdge
}

// keepNonGhostCorners drops every member whose entire group is already
// reachable from it via face reciprocity, leaving only the members that
// carry genuine, not-otherwise-derivable corner identity. Face
// reachability is symmetric (face reciprocity is), so a pair that is
// mutually explained by a shared glued face is dropped on both sides.
func keepNonGhostCorners(c *Connectivity, members []cornerNode) []cornerNode {
	kept := make([]cornerNode, 0, len(members))
	for i, m := range members {
		reachable := faceReachableNeighbors(c, m.tree, ctables.CornerFaces[m.corner][:])
		extra := false
		for j, m2 := range members {
			if j != i && !reachable[m2.tree] {
				extra = true
				break
			}
		}
		if extra {
			kept = append(kept, m)
		}
	}
	return kept
}

// keepNonGhostEdges is keepNonGhostCorners's edge analogue.
func keepNonGhostEdges(c *Connectivity, members []edgeNode) []edgeNode {
	kept := make([]edgeNode, 0, len(members))
	for i, m := range members {
		reachable := faceReachableNeighbors(c, m.tree, ctables.EdgeFaces[m.edge][:])
		extra := false
		for j, m2 := range members {
			if j != i && !reachable[m2.tree] {
				extra = true
				break
			}
		}
		if extra {
			kept = append(kept, m)
		}
	}
	return kept
}
