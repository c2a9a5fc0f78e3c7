// Package p8est is the connectivity and reference-geometry core of a
// forest-of-octrees library.
//
// What is p8est?
//
//	A pure-Go, dependency-light library answering the two questions every
//	higher-level octree algorithm depends on:
//
//	  • Topology  — how cubic "trees" glue into a macro-mesh at faces,
//	    edges, and corners (including periodic wrap-around), and how to
//	    walk from one tree across a face/edge/corner into its neighbors.
//	  • Geometry  — given a point in a tree's reference cube, its
//	    Cartesian coordinates under a built-in curvilinear mapping
//	    (identity, spherical shell, solid sphere), and the Jacobian of
//	    that mapping.
//
// Why p8est?
//
//   - Combinatorially exact — the 48-element cube symmetry group is
//     encoded once as static tables (package ctables) and never
//     re-derived at runtime.
//   - Structurally verified — every connectivity, built-in or
//     caller-supplied, is checked against the full invariant set before
//     it is trusted (connectivity.IsValid).
//   - Numerically honest — every built-in geometry guarantees a positive
//     Jacobian determinant everywhere in the reference cube's interior.
//
// Under the hood, everything is organized under five subpackages:
//
//	ctables/      — static cube-symmetry lookup tables
//	connectivity/ — the macro-mesh container, topology queries, validator, completer
//	factories/    — built-in connectivity constructors (unit cube, shell, sphere, brick, ...)
//	geometry/     — the reference-geometry mapping abstraction and its built-ins
//	p8estio/      — the on-disk binary connectivity format
//
// Out of scope, by design: adaptive refinement, MPI partitioning, any 2D
// analogue, and user geometry plug-ins beyond the three built-ins (a narrow
// seam for a fourth is exposed via geometry.UserSupplied, but none ships).
//
//	go get github.com/ivanredbread/p8est
package p8est
