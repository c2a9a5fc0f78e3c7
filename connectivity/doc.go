// Package connectivity owns the macro-mesh graph a forest of octrees is
// built on: vertices, trees, and the face/edge/corner gluings between
// them, plus the three pure topology queries, the validator, and the
// vertex-driven completer.
//
// What:
//
//   - Connectivity is a flat, array-of-structs-free container: every
//     per-tree and per-bucket relation lives in one contiguous slice, in
//     the compressed-ragged-array idiom lvlath/matrix uses for its Dense
//     backing slice (impl_dense.go). EdgeBucket/CornerBucket return the
//     tree list as a borrowed subslice; the per-entry codes come back as
//     a newly allocated []int copy.
//   - FindFaceTransform, FindEdgeTransform, FindCornerTransform decode a
//     tree's neighbor relations into reusable coordinate-transform
//     descriptors, consulting only ctables and the container's own
//     arrays.
//   - IsValid checks the structural invariants of spec.md §3 (see its
//     doc comment for what it does not detect); IsEqual is deep
//     structural equality; Complete derives tree_to_edge/tree_to_corner
//     from tree_to_vertex identity.
//
// Why this deviates from lvlath/core's Graph:
//
//   - lvlath/core.Graph is mutable and thread-safe via sync.RWMutex
//     because callers build it up edge-by-edge across goroutines.
//     Connectivity has the opposite lifecycle (spec.md §5): it is
//     allocated once, populated by a factory or ConstructFromCopy, and
//     is immutable from then on, so any number of readers may call its
//     query methods concurrently with no internal locking at all.
//     Mutating operations (Allocate, Complete, SetTreeAttr) are the
//     caller's responsibility to serialize against readers.
//
// Errors: see errors.go. Complexity: IsValid is
// O(num_trees·constant + num_ett + num_ctt); every query is O(bucket
// size) for its tree/edge/corner.
package connectivity
