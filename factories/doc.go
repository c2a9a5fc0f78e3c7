// Package factories builds the canonical connectivities spec.md §4.E
// names: unitcube, periodic, rotwrap, twocubes, twowrap, rotcubes,
// brick(m,n,p,px,py,pz), shell, sphere.
//
// What: every factory returns a *connectivity.Connectivity that passes
// connectivity.IsValid — the package's own contract test suite checks
// this for every factory (spec.md §8 testable property 4).
//
// Why these are plain functions calling connectivity.Allocate rather than
// lvlath/builder's Constructor-over-shared-config pattern: builder's
// Constructor closures exist because many shapes share one
// BuildGraph(cfg) entry point threading idFn/weightFn/rng through a
// single core.Graph. Every factory here instead fully determines its
// own tree count and gluing up front with no shared knobs besides its
// own parameters, so each is simply a function returning a finished
// value — the closure-over-config machinery would be ceremony with
// nothing to configure.
package factories
