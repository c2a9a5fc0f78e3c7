// Package ctables holds the static combinatorial tables that encode the
// symmetry group of the reference cube: which corners/edges bound which
// face, which faces/edges meet at a corner, and the permutations that
// align two glued cube faces under each of the four orientation codes.
//
// What:
//
//   - Canonical cube numbering: corners 0..7 in zyx bit order (bit0=x,
//     bit1=y, bit2=z); faces 0..5 in the order -x,+x,-y,+y,-z,+z; edges
//     0..11 parallel to x first (by y then z), then y, then z.
//   - Primitive tables (FaceCorners, FaceEdges, FaceDual, EdgeCorners,
//     EdgeFaces, CornerFaces, CornerEdges) are literal, hand-verified
//     constants matching that numbering.
//   - Composite tables (CornerFaceCorners, EdgeFaceCorners,
//     FacePermutations/-Sets/-Refs, ChildCornerFaces, ChildCornerEdges,
//     ChildEdgeFaces) are derived once, deterministically, at package
//     init time from the primitive tables — mirroring the
//     init()-time-dataset idiom used for Platonic-solid shells elsewhere
//     in this codebase — rather than hand-transcribed, to remove a class
//     of transcription error from tables nothing ever re-derives again.
//
// Why:
//
//   - connectivity.FindFaceTransform/FindEdgeTransform/FindCornerTransform
//     are pure lookups into these tables; they never re-derive cube
//     symmetry from first principles.
//   - factories callers only ever need FACES/CHILDREN/EDGES-shaped
//     indices; the package is the single source of truth for what those
//     indices mean geometrically.
//
// Complexity: every table is O(1) to query; init() does O(1) work (all
// loop bounds are the fixed cube constants below).
package ctables
