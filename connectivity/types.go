package connectivity

import "github.com/ivanredbread/p8est/ctables"

// Connectivity is the macro-mesh graph: vertices, trees, and the
// face/edge/corner gluings between them (spec.md §3). It owns every
// array it references; once built it is read-only from the outside
// (spec.md §5). The zero value is not a valid Connectivity — build one
// with Allocate or ConstructFromCopy.
type Connectivity struct {
	// NumVertices, NumTrees, NumEdges, NumCorners are the four topology
	// counts. NumVertices may be 0, in which case Vertices and
	// TreeToVertex are both nil (spec.md §3 invariant 1).
	NumVertices int
	NumTrees    int
	NumEdges    int
	NumCorners  int

	// Vertices holds 3*NumVertices Cartesian coordinates, or nil.
	Vertices []float64
	// TreeToVertex holds 8*NumTrees corner-vertex indices, or nil.
	TreeToVertex []int

	// TreeToTree holds 6*NumTrees neighbor tree indices.
	TreeToTree []int
	// TreeToFace holds 6*NumTrees packed ttf codes (face%6, orientation/6).
	TreeToFace []uint8

	// TreeToEdge holds 12*NumTrees entries: -1, or an index into the
	// edge table's EttOffset/EdgeToTree/EdgeToEdge arrays.
	TreeToEdge []int
	// EttOffset has NumEdges+1 entries; bucket k spans
	// [EttOffset[k], EttOffset[k+1]) in EdgeToTree/EdgeToEdge.
	EttOffset  []int
	EdgeToTree []int
	EdgeToEdge []uint8

	// TreeToCorner holds 8*NumTrees entries: -1, or an index into the
	// corner table.
	TreeToCorner []int
	// CttOffset has NumCorners+1 entries.
	CttOffset      []int
	CornerToTree   []int
	CornerToCorner []uint8

	// TreeAttr, when non-nil, holds one attribute byte per tree.
	TreeAttr []int8
}

// FaceEntry decodes tree t's local face f into (neighborTree, neighborFace,
// orientation). A boundary face is self-connected: neighborTree==t,
// neighborFace==f, orientation==0.
func (c *Connectivity) FaceEntry(t, f int) (neighborTree, neighborFace, orientation int) {
	neighborTree = c.TreeToTree[t*ctables.Faces+f]
	ttf := int(c.TreeToFace[t*ctables.Faces+f])
	neighborFace = ttf % ctables.Faces
	orientation = ttf / ctables.Faces
	return
}

// SetFaceEntry encodes (neighborTree, neighborFace, orientation) into
// tree t's local face f.
func (c *Connectivity) SetFaceEntry(t, f, neighborTree, neighborFace, orientation int) {
	c.TreeToTree[t*ctables.Faces+f] = neighborTree
	c.TreeToFace[t*ctables.Faces+f] = uint8(orientation*ctables.Faces + neighborFace)
}

// EdgeBucket returns the [tree,code] pairs describing every tree-side of
// edge bucket k. trees is a borrowed subslice of EdgeToTree; codes is a
// newly allocated int copy of the matching EdgeToEdge entries.
func (c *Connectivity) EdgeBucket(k int) (trees, codes []int) {
	lo, hi := c.EttOffset[k], c.EttOffset[k+1]
	trees = c.EdgeToTree[lo:hi]
	codes = make([]int, hi-lo)
	for i, code := range c.EdgeToEdge[lo:hi] {
		codes[i] = int(code)
	}
	return
}

// CornerBucket returns the [tree,local-corner] pairs describing every
// tree-side of corner bucket k. trees is a borrowed subslice of
// CornerToTree; corners is a newly allocated int copy of the matching
// CornerToCorner entries.
func (c *Connectivity) CornerBucket(k int) (trees []int, corners []int) {
	lo, hi := c.CttOffset[k], c.CttOffset[k+1]
	trees = c.CornerToTree[lo:hi]
	corners = make([]int, hi-lo)
	for i, code := range c.CornerToCorner[lo:hi] {
		corners[i] = int(code)
	}
	return
}

// DecodeEdgeCode splits a packed 0..23 edge code into (localEdge, flip).
func DecodeEdgeCode(code int) (localEdge int, flip bool) {
	return code % ctables.Edges, code >= ctables.Edges
}

// EncodeEdgeCode packs a local edge number and an orientation flip.
func EncodeEdgeCode(localEdge int, flip bool) int {
	if flip {
		return localEdge + ctables.Edges
	}
	return localEdge
}
