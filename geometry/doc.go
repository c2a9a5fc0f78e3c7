// Package geometry implements the reference-geometry half of the core:
// curvilinear mappings from a tree's reference cube to Cartesian space,
// plus their Jacobians.
//
// What:
//
//   - Geometry is a capability-set interface {X, J, D, Jit} implemented
//     by Identity, Shell, Sphere, and a UserSupplied adapter wrapping
//     caller-provided closures (spec.md §9 "polymorphic geometry").
//   - Jit has one shared default implementation (internal/linalg's
//     cofactor inverse-transpose) that every built-in variant reuses;
//     Identity overrides it since its own inverse is trivial.
//
// Why an interface instead of a tagged struct: Go has no discriminated
// union, and dispatch via interface satisfies spec.md §9's "closures
// or trait/interface dispatch are both acceptable" note while staying
// idiomatic — callers needing the C source's function-pointer-record
// shape would store a Geometry value exactly as they would store that
// record.
//
// Errors: ErrGeometryDegenerate flags a non-positive detJ (spec.md §7,
// assertion-grade — a caller probing outside the documented reference
// cube has a bug). Complexity: every operation is O(1).
package geometry
