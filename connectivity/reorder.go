package connectivity

// Reorderer renumbers a Connectivity's trees in place, for callers that
// want a tree order matching some external partitioning or space-filling
// curve. spec.md scopes this out as a Non-goal for the core library: no
// built-in reordering heuristic ships here, but the seam is kept open so
// a caller can supply one.
type Reorderer interface {
	// Reorder returns the new index each old tree index 0..NumTrees-1
	// should move to; it must be a permutation of 0..NumTrees-1.
	Reorder(c *Connectivity) ([]int, error)
}

// Reorder applies r to c, renumbering every tree-indexed array in place.
// The default library ships no Reorderer implementation (spec.md
// Non-goals), so a nil r always yields ErrReorderUnavailable; this keeps
// the method present on the package's public surface for callers who
// bring their own policy without committing this package to one.
func Reorder(c *Connectivity, r Reorderer) error {
	if r == nil {
		return ErrReorderUnavailable
	}
	perm, err := r.Reorder(c)
	if err != nil {
		return err
	}
	if len(perm) != c.NumTrees {
		return ErrInvalidConnectivity
	}
	seen := make([]bool, c.NumTrees)
	for _, p := range perm {
		if p < 0 || p >= c.NumTrees || seen[p] {
			return ErrInvalidConnectivity
		}
		seen[p] = true
	}
	applyTreePermutation(c, perm)
	return nil
}

func applyTreePermutation(c *Connectivity, perm []int) {
	n := c.NumTrees
	remapTree := func(old int) int { return perm[old] }

	newTreeToTree := make([]int, len(c.TreeToTree))
	newTreeToFace := make([]uint8, len(c.TreeToFace))
	newTreeToEdge := make([]int, len(c.TreeToEdge))
	newTreeToCorner := make([]int, len(c.TreeToCorner))
	var newTreeToVertex []int
	if c.TreeToVertex != nil {
		newTreeToVertex = make([]int, len(c.TreeToVertex))
	}
	var newTreeAttr []int8
	if c.TreeAttr != nil {
		newTreeAttr = make([]int8, len(c.TreeAttr))
	}

	facesPerTree := len(c.TreeToTree) / n
	edgesPerTree := len(c.TreeToEdge) / n
	cornersPerTree := len(c.TreeToCorner) / n

	for old := 0; old < n; old++ {
		nw := remapTree(old)
		for f := 0; f < facesPerTree; f++ {
			newTreeToTree[nw*facesPerTree+f] = remapTree(c.TreeToTree[old*facesPerTree+f])
			newTreeToFace[nw*facesPerTree+f] = c.TreeToFace[old*facesPerTree+f]
		}
		for e := 0; e < edgesPerTree; e++ {
			newTreeToEdge[nw*edgesPerTree+e] = c.TreeToEdge[old*edgesPerTree+e]
		}
		for cn := 0; cn < cornersPerTree; cn++ {
			newTreeToCorner[nw*cornersPerTree+cn] = c.TreeToCorner[old*cornersPerTree+cn]
		}
		if newTreeToVertex != nil {
			for v := 0; v < cornersPerTree; v++ {
				newTreeToVertex[nw*cornersPerTree+v] = c.TreeToVertex[old*cornersPerTree+v]
			}
		}
		if newTreeAttr != nil {
			newTreeAttr[nw] = c.TreeAttr[old]
		}
	}

	for i, t := range c.EdgeToTree {
		c.EdgeToTree[i] = remapTree(t)
	}
	for i, t := range c.CornerToTree {
		c.CornerToTree[i] = remapTree(t)
	}

	c.TreeToTree = newTreeToTree
	c.TreeToFace = newTreeToFace
	c.TreeToEdge = newTreeToEdge
	c.TreeToCorner = newTreeToCorner
	c.TreeToVertex = newTreeToVertex
	c.TreeAttr = newTreeAttr
}
