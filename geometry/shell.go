package geometry

import (
	"math"

	"github.com/ivanredbread/p8est/internal/linalg"
)

// shellPatch names the six faces of a cubed sphere in the canonical
// numbering spec.md §4.F calls for. Both Shell (tree/4) and Sphere
// (tree%6) index into PatchAxis/PatchSign by one of these orders.
//
// Exported as ShellPatch (and the order/axis/sign tables below) so
// factories.Shell/factories.Sphere can derive which patch borders which
// at its angular edges from the very same axis convention this package
// uses for the forward map and Jacobian — one table, not two that could
// drift apart.
type shellPatch = ShellPatch

// ShellPatch names one of the six cubed-sphere patches.
type ShellPatch int

const (
	PatchRight ShellPatch = iota
	PatchBottom
	PatchLeft
	PatchTop
	PatchBack
	PatchFront

	patchRight  = PatchRight
	patchBottom = PatchBottom
	patchLeft   = PatchLeft
	patchTop    = PatchTop
	patchBack   = PatchBack
	patchFront  = PatchFront
)

// ShellOrder is Shell's tree/4 order: right, bottom, left, top, back,
// front (spec.md §4.F).
var ShellOrder = [6]ShellPatch{patchRight, patchBottom, patchLeft, patchTop, patchBack, patchFront}

// SphereOrder is Sphere's tree%6 order: front, top, back, right, bottom,
// left (spec.md §4.F).
var SphereOrder = [6]ShellPatch{patchFront, patchTop, patchBack, patchRight, patchBottom, patchLeft}

// PatchAxis[p] says which output axis (0=X,1=Y,2=Z) receives the (q,
// q*x, q*y) triple's component 0,1,2; PatchSign[p] is the matching
// sign. Chosen so that, for every patch, the permutation parity times
// the sign product is +1 — which keeps detJ's sign equal to the shared
// radial/angular factor's sign (always positive) regardless of which
// patch a point lands on. spec.md
// gives no literal numeric table to reproduce (original_source/ carried
// none), so this table is this package's own consistent construction.
//
// Exported (along with ShellOrder/SphereOrder above) so
// factories.Shell/factories.Sphere can derive, from this same
// convention, which patch borders which at its angular edges.
var PatchAxis = [6][3]int{
	patchRight:  {0, 1, 2},
	patchLeft:   {0, 1, 2},
	patchBottom: {2, 0, 1},
	patchTop:    {2, 0, 1},
	patchBack:   {1, 0, 2},
	patchFront:  {1, 0, 2},
}

var PatchSign = [6][3]float64{
	patchRight:  {+1, +1, +1},
	patchLeft:   {-1, -1, +1},
	patchBottom: {-1, -1, +1},
	patchTop:    {+1, +1, +1},
	patchBack:   {-1, +1, +1},
	patchFront:  {+1, -1, +1},
}

const quarterPi = math.Pi / 4

// Shell is the six-patch spherical-shell geometry (spec.md §4.F),
// R1 < R2 the inner/outer radii, 24 trees grouped 4 per patch.
type Shell struct {
	R1, R2   float64
	logRatio float64 // log(R2/R1), precomputed
}

// NewShell precomputes the ratio constants spec.md §4.F calls for.
func NewShell(r1, r2 float64) Shell {
	return Shell{R1: r1, R2: r2, logRatio: math.Log(r2 / r1)}
}

func (g Shell) NumTrees() int { return 24 }

func (g Shell) checkTree(tree int) error {
	if tree < 0 || tree >= 24 {
		return ErrTreeOutOfRange
	}
	return nil
}

// shellRadius returns R(w) = (R1²/R2)·(R2/R1)^w and its derivative
// wrt w, R(w)·ln(R2/R1).
func (g Shell) shellRadius(w float64) (r, dr float64) {
	r = (g.R1 * g.R1 / g.R2) * math.Pow(g.R2/g.R1, w)
	dr = r * g.logRatio
	return
}

// shellABCJacobian computes the (A,B,C)=(q,q·x,q·y) triple, its Jacobian
// wrt (u,v,w), for a shell point at angular/radial coordinates
// (u,v,w) with the given radius function.
func shellABCJacobian(u, v, w, r, dr float64) (abc [3]float64, jabc linalg.Mat3) {
	x := math.Tan(u * quarterPi)
	y := math.Tan(v * quarterPi)
	dxdu := quarterPi * (1 + x*x)
	dydv := quarterPi * (1 + y*y)

	s2 := x*x + y*y + 1
	s := math.Sqrt(s2)
	q := r / s

	dqdu := -q * x * dxdu / s2
	dqdv := -q * y * dydv / s2
	dqdw := q * dr / r // = q*ln(R2/R1) when r,dr come from shellRadius

	abc[0] = q
	abc[1] = q * x
	abc[2] = q * y

	jabc[0][0] = dqdu
	jabc[0][1] = dqdv
	jabc[0][2] = dqdw

	jabc[1][0] = dqdu*x + q*dxdu
	jabc[1][1] = dqdv * x
	jabc[1][2] = dqdw * x

	jabc[2][0] = dqdu * y
	jabc[2][1] = dqdv*y + q*dydv
	jabc[2][2] = dqdw * y
	return
}

func assemblePatch(patch shellPatch, abc [3]float64, jabc linalg.Mat3) ([3]float64, linalg.Mat3) {
	axis, sign := PatchAxis[patch], PatchSign[patch]
	var xyz [3]float64
	var j linalg.Mat3
	for k := 0; k < 3; k++ {
		xyz[axis[k]] = sign[k] * abc[k]
		j[axis[k]] = [3]float64{sign[k] * jabc[k][0], sign[k] * jabc[k][1], sign[k] * jabc[k][2]}
	}
	return xyz, j
}

func (g Shell) X(tree int, abc [3]float64) ([3]float64, error) {
	if err := g.checkTree(tree); err != nil {
		return [3]float64{}, err
	}
	r, _ := g.shellRadius(abc[2])
	core, _ := shellABCJacobian(abc[0], abc[1], abc[2], r, r*g.logRatio)
	xyz, _ := assemblePatch(ShellOrder[tree/4], core, linalg.Mat3{})
	return xyz, nil
}

func (g Shell) J(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	if err := g.checkTree(tree); err != nil {
		return linalg.Mat3{}, 0, err
	}
	r, dr := g.shellRadius(abc[2])
	core, jabc := shellABCJacobian(abc[0], abc[1], abc[2], r, dr)
	_, j := assemblePatch(ShellOrder[tree/4], core, jabc)
	detJ := linalg.Det3(j)
	return j, detJ, nil
}

func (g Shell) D(tree int, abc [3]float64) (float64, error) {
	_, detJ, err := g.J(tree, abc)
	return detJ, err
}

func (g Shell) Jit(tree int, abc [3]float64) (linalg.Mat3, float64, error) {
	return jitViaCofactors(g, tree, abc)
}
