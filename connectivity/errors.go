// Package connectivity: sentinel error set.
//
// Error policy, in the idiom of lvlath/matrix/errors.go and
// lvlath/builder/errors.go: every condition gets its own sentinel,
// callers branch with errors.Is, and construction-time failures are
// reported (never panicked) while post-construction discoveries of a
// broken invariant are assertion-grade (spec.md §7) — this package
// reports them as errors too since Go has no separate debug/release
// build split, but documents them as indicating a caller bug, not a
// recoverable condition.
package connectivity

import "errors"

var (
	// ErrInvalidConnectivity is returned by Diagnose (and so by
	// ConstructFromCopy) for a structural mismatch that has no more
	// specific sentinel below, by Complete for a nil connectivity, and
	// by Reorder for a result that is not a permutation.
	ErrInvalidConnectivity = errors.New("connectivity: invariants violated")

	// ErrOutOfRange is returned by a query given a tree/face/edge/corner
	// index outside its documented range. Assertion-grade: a caller
	// passing an out-of-range index has a bug.
	ErrOutOfRange = errors.New("connectivity: index out of range")

	// ErrIndexOutOfRange flags a stored array entry (not a call
	// argument) pointing outside its owning array's bounds.
	ErrIndexOutOfRange = errors.New("connectivity: stored index out of range")

	// ErrFaceReciprocity flags a tree_to_face entry whose neighbor does
	// not point back with the same orientation code.
	ErrFaceReciprocity = errors.New("connectivity: face reciprocity violated")

	// ErrEdgeBucketClosure flags an edge_to_tree bucket that does not
	// transitively agree with every tree_to_edge entry pointing at it.
	ErrEdgeBucketClosure = errors.New("connectivity: edge bucket closure violated")

	// ErrCornerBucketClosure is the corner analogue of
	// ErrEdgeBucketClosure.
	ErrCornerBucketClosure = errors.New("connectivity: corner bucket closure violated")

	// ErrGhostRecord flags an edge/corner bucket that no
	// tree_to_edge/tree_to_corner entry refers to (spec.md §3 invariant
	// 5). A referenced bucket whose members face reciprocity already
	// connects is not flagged.
	ErrGhostRecord = errors.New("connectivity: ghost edge/corner record")

	// ErrVertexCount flags num_vertices inconsistent with the presence
	// or absence of the vertex and tree_to_vertex arrays.
	ErrVertexCount = errors.New("connectivity: inconsistent vertex count")

	// ErrReorderUnavailable is returned by Reorder: the graph-partitioning
	// reorder hook is a narrow interface point only (spec.md §6); no
	// partitioning implementation ships with this module.
	ErrReorderUnavailable = errors.New("connectivity: no Reorderer configured")
)
