package geometry

import "errors"

var (
	// ErrGeometryDegenerate flags a non-positive detJ discovered at a
	// point a caller asked to evaluate. Assertion-grade (spec.md §7):
	// every built-in geometry guarantees detJ > 0 over its documented
	// reference cube, so seeing this means a caller queried outside that
	// domain.
	ErrGeometryDegenerate = errors.New("geometry: non-positive Jacobian determinant")

	// ErrTreeOutOfRange flags a tree id outside a geometry's patch count.
	ErrTreeOutOfRange = errors.New("geometry: tree id out of range")
)
