package connectivity

import (
	"fmt"
	"unsafe"

	"github.com/ivanredbread/p8est/ctables"
)

// Allocate returns a Connectivity with every array sized for the given
// counts; contents are indeterminate (zeroed by Go, but callers must not
// rely on that — fill every entry before calling IsValid). numEtt and
// numCtt are the total lengths of the edge/corner bucket tables
// (Σ bucket sizes), distinct from numEdges/numCorners (the bucket
// counts).
//
// Complexity: O(num_trees + num_ett + num_ctt).
func Allocate(numVertices, numTrees, numEdges, numEtt, numCorners, numCtt int) *Connectivity {
	c := &Connectivity{
		NumVertices: numVertices,
		NumTrees:    numTrees,
		NumEdges:    numEdges,
		NumCorners:  numCorners,

		TreeToTree: make([]int, ctables.Faces*numTrees),
		TreeToFace: make([]uint8, ctables.Faces*numTrees),

		TreeToEdge: make([]int, ctables.Edges*numTrees),
		EttOffset:  make([]int, numEdges+1),
		EdgeToTree: make([]int, numEtt),
		EdgeToEdge: make([]uint8, numEtt),

		TreeToCorner:   make([]int, ctables.Children*numTrees),
		CttOffset:      make([]int, numCorners+1),
		CornerToTree:   make([]int, numCtt),
		CornerToCorner: make([]uint8, numCtt),
	}
	if numVertices > 0 {
		c.Vertices = make([]float64, 3*numVertices)
		c.TreeToVertex = make([]int, ctables.Children*numTrees)
	}
	for i := range c.TreeToEdge {
		c.TreeToEdge[i] = -1
	}
	for i := range c.TreeToCorner {
		c.TreeToCorner[i] = -1
	}
	return c
}

// ConstructFromCopy deep-copies every caller-provided array into a fresh
// Connectivity and requires IsValid to hold before returning it; on
// failure it returns no partially built value and whichever sentinel
// Diagnose identifies (ErrInvalidConnectivity for a structural mismatch
// with no dedicated sentinel) (spec.md §4.B, §7).
func ConstructFromCopy(
	numVertices, numTrees, numEdges, numCorners int,
	vertices []float64, treeToVertex []int,
	treeToTree []int, treeToFace []uint8,
	treeToEdge []int, ettOffset []int, edgeToTree []int, edgeToEdge []uint8,
	treeToCorner []int, cttOffset []int, cornerToTree []int, cornerToCorner []uint8,
) (*Connectivity, error) {
	c := &Connectivity{
		NumVertices:    numVertices,
		NumTrees:       numTrees,
		NumEdges:       numEdges,
		NumCorners:     numCorners,
		Vertices:       cloneF64(vertices),
		TreeToVertex:   cloneInt(treeToVertex),
		TreeToTree:     cloneInt(treeToTree),
		TreeToFace:     cloneU8(treeToFace),
		TreeToEdge:     cloneInt(treeToEdge),
		EttOffset:      cloneInt(ettOffset),
		EdgeToTree:     cloneInt(edgeToTree),
		EdgeToEdge:     cloneU8(edgeToEdge),
		TreeToCorner:   cloneInt(treeToCorner),
		CttOffset:      cloneInt(cttOffset),
		CornerToTree:   cloneInt(cornerToTree),
		CornerToCorner: cloneU8(cornerToCorner),
	}
	if err := Diagnose(c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetTreeAttr idempotently allocates (enable=true) or releases
// (enable=false) the per-tree attribute byte array.
func (c *Connectivity) SetTreeAttr(enable bool) {
	switch {
	case enable && c.TreeAttr == nil:
		c.TreeAttr = make([]int8, c.NumTrees)
	case !enable:
		c.TreeAttr = nil
	}
}

// MemoryUsed returns the sum of the struct's own size plus every
// allocated buffer (spec.md §4.B).
func (c *Connectivity) MemoryUsed() uintptr {
	size := unsafe.Sizeof(*c)
	size += uintptr(len(c.Vertices)) * unsafe.Sizeof(float64(0))
	size += uintptr(len(c.TreeToVertex)) * unsafe.Sizeof(int(0))
	size += uintptr(len(c.TreeToTree)) * unsafe.Sizeof(int(0))
	size += uintptr(len(c.TreeToFace)) * unsafe.Sizeof(uint8(0))
	size += uintptr(len(c.TreeToEdge)) * unsafe.Sizeof(int(0))
	size += uintptr(len(c.EttOffset)) * unsafe.Sizeof(int(0))
	size += uintptr(len(c.EdgeToTree)) * unsafe.Sizeof(int(0))
	size += uintptr(len(c.EdgeToEdge)) * unsafe.Sizeof(uint8(0))
	size += uintptr(len(c.TreeToCorner)) * unsafe.Sizeof(int(0))
	size += uintptr(len(c.CttOffset)) * unsafe.Sizeof(int(0))
	size += uintptr(len(c.CornerToTree)) * unsafe.Sizeof(int(0))
	size += uintptr(len(c.CornerToCorner)) * unsafe.Sizeof(uint8(0))
	size += uintptr(len(c.TreeAttr)) * unsafe.Sizeof(int8(0))
	return size
}

// Destroy releases every owned buffer. Go's garbage collector reclaims
// them once c is unreachable; Destroy exists so call sites that mirror
// the C API's explicit lifecycle (spec.md §3 "Destruction releases every
// owned buffer exactly once") have an explicit point to drop references,
// and so a caller cannot accidentally keep using c afterwards.
func (c *Connectivity) Destroy() {
	*c = Connectivity{}
}

func cloneF64(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func cloneInt(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func cloneU8(s []uint8) []uint8 {
	if s == nil {
		return nil
	}
	out := make([]uint8, len(s))
	copy(out, s)
	return out
}

// String implements fmt.Stringer with a compact summary, in the idiom of
// lvlath's small diagnostic String() methods.
func (c *Connectivity) String() string {
	return fmt.Sprintf("Connectivity{trees=%d vertices=%d edges=%d corners=%d}",
		c.NumTrees, c.NumVertices, c.NumEdges, c.NumCorners)
}
