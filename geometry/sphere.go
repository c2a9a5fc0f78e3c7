package geometry

import (
	"math"

	"github.com/ivanredbread/p8est/internal/linalg"
)

// Sphere is the 13-tree solid-sphere geometry (spec.md §4.F): an outer
// shell (trees 0..5, same mapping as Shell with radii R1,R2), an inner
// shell (trees 6..11) blending a cubical interior into the tangent-based
// shell mapping, and a center cube (tree 12).
type Sphere struct {
	R0, R1, R2 float64
	outerLog   float64 // log(R2/R1), used by the outer shell's analytic Jacobian
}

// NewSphere precomputes the log-ratio constant the outer shell needs.
// The inner shell's Jacobian is evaluated numerically (see innerJ), so
// it needs no precomputed log-ratio of its own.
func NewSphere(r0, r1, r2 float64) Sphere {
	return Sphere{R0: r0, R1: r1, R2: r2, outerLog: math.Log(r2 / r1)}
}

func (g Sphere) NumTrees() int { return 13 }

func (g Sphere) checkTree(tree int) error {
	if tree < 0 || tree >= 13 {
		return ErrTreeOutOfRange
	}
	return nil
}

// innerBlend computes the blended (x,y) pair and blend parameter p for
// the inner shell at abc=(u,v,w): p=2-w transitions from p=1 (w=1,
// cubical interior) to p=0 (w=2, tangent-based shell mapping).
func innerBlend(u, v, w float64) (x, y, p float64) {
	p = 2 - w
	tu := math.Tan(u * quarterPi)
	tv := math.Tan(v * quarterPi)
	x = p*u + (1-p)*tu
	y = p*v + (1-p)*tv
	return
}

// innerXForTree is the inner-shell forward map (spec.md §4.F) for a
// specific tree, whose patch (one of the six cubed-sphere faces) is
// fixed by (tree-6)%6.
func (g Sphere) innerXForTree(tree int, u, v, w float64) [3]float64 {
	x, y, p := innerBlend(u, v, w)
	r := (g.R0 * g.R0 / g.R1) * math.Pow(g.R1/g.R0, w)
	s := math.Sqrt(1 + (1-p)*(x*x+y*y) + 2*p)
	q := r / s
	core := [3]float64{q, q * x, q * y}
	xyz, _ := assemblePatch(SphereOrder[(tree-6)%6], core, linalg.Mat3{})
	return xyz
}

// innerJ differentiates innerXForTree numerically: the blend parameter
// p couples every axis together (p depends on w, and x,y each depend on
// both their own angular coordinate and w through p), so a hand-derived
// analytic Jacobian for this specific blend is fragile to transcribe
// correctly. Central finite differences give a Jacobian that is always
// consistent with whatever innerXForTree actually computes, at the cost
// of an O(1) but not closed-form evaluation. Outer shell and the center
// cube, whose mappings are unambiguous, still use exact analytic
// derivatives (shell.go, and below).
func (g Sphere) innerJ(tree int, u, v, w float64) linalg.Mat3 {
	const h = 1e-6
	var j linalg.Mat3
	base := [3]float64{u, v, w}
	for axis := 0; axis < 3; axis++ {
		plus := base
		minus := base
		plus[axis] += h
		minus[axis] -= h
		xp := g.innerXForTree(tree, plus[0], plus[1], plus[2])
		xm := g.innerXForTree(tree, minus[0], minus[1], minus[2])
		for i := 0; i < 3; i++ {
			j[i][axis] = (xp[i] - xm[i]) / (2 * h)
		}
	}
	return j
}

func (g Sphere) X(tree int, abc [3]float64) ([3]float64, error) {
	if err := g.checkTree(tree); err != nil {
		return [3]float64{}, err
	}
	switch {
	case tree < 6:
		r, _ := shellRadiusFor(g.R1, g.R2, g.outerLog, abc[2])
		core, _ := shellABCJacobian(abc[0], abc[1], abc[2], r, r*g.outerLog)
		xyz, _ := assemblePatch(SphereOrder[tree], core, linalg.Mat3{})
		return xyz, nil
	case tree < 12:
		return g.innerXForTree(tree, abc[0], abc[1], abc[2]), nil
	default:
		s := g.R0 / math.Sqrt(3)
		return [3]float64{abc[0] * s, abc[1] * s, abc[2] * s}, nil
	}
}

func (g Sphere) J(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	if err := g.checkTree(tree); err != nil {
		return linalg.Mat3{}, 0, err
	}
	switch {
	case tree < 6:
		r, dr := shellRadiusFor(g.R1, g.R2, g.outerLog, abc[2])
		core, jabc := shellABCJacobian(abc[0], abc[1], abc[2], r, dr)
		_, j := assemblePatch(SphereOrder[tree], core, jabc)
		return j, linalg.Det3(j), nil
	case tree < 12:
		j := g.innerJ(tree, abc[0], abc[1], abc[2])
		return j, linalg.Det3(j), nil
	default:
		s := g.R0 / math.Sqrt(3)
		j := linalg.Mat3{{s, 0, 0}, {0, s, 0}, {0, 0, s}}
		return j, s * s * s, nil
	}
}

func (g Sphere) D(tree int, abc [3]float64) (float64, error) {
	_, detJ, err := g.J(tree, abc)
	return detJ, err
}

func (g Sphere) Jit(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	return jitViaCofactors(g, tree, abc)
}

// shellRadiusFor is shellRadius's formula parameterized explicitly,
// shared by Sphere's outer-shell branch without embedding a Shell value.
func shellRadiusFor(r1, r2, logRatio, w float64) (r, dr float64) {
	r = (r1 * r1 / r2) * math.Pow(r2/r1, w)
	dr = r * logRatio
	return
}
