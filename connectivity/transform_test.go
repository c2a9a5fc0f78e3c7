package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

// TestFindFaceTransform_BrickIdentityGluing is literal scenario S4: an
// unrotated face-to-face gluing between two bricks must map through the
// identity permutation (no swap, no flips), with ftransform[8]=1 since
// the "+" side of tree0 meets the "-" side of tree1.
func TestFindFaceTransform_BrickIdentityGluing(t *testing.T) {
	c := connectivity.Allocate(0, 2, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
		c.SetFaceEntry(1, f, 1, f, 0)
	}
	c.SetFaceEntry(0, ctables.FacePosX, 1, ctables.FaceNegX, 0)
	c.SetFaceEntry(1, ctables.FaceNegX, 0, ctables.FacePosX, 0)
	require.True(t, connectivity.IsValid(c))

	nt, ft, err := connectivity.FindFaceTransform(c, 0, ctables.FacePosX)
	require.NoError(t, err)
	require.Equal(t, 1, nt)
	require.Equal(t, ft[0], ft[3])
	require.Equal(t, ft[1], ft[4])
	require.Equal(t, 0, ft[6])
	require.Equal(t, 0, ft[7])
	require.Equal(t, 1, ft[8])
}

// TestFindFaceTransform_PeriodicSelfWrap is literal scenario S2: a
// periodic self-wrap through the same tree reports neighbor_tree equal
// to the origin tree and ftransform[8]=2.
func TestFindFaceTransform_PeriodicSelfWrap(t *testing.T) {
	c := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
	}
	c.SetFaceEntry(0, ctables.FaceNegX, 0, ctables.FacePosX, 0)
	c.SetFaceEntry(0, ctables.FacePosX, 0, ctables.FaceNegX, 0)
	require.True(t, connectivity.IsValid(c))

	nt, ft, err := connectivity.FindFaceTransform(c, 0, ctables.FaceNegX)
	require.NoError(t, err)
	require.Equal(t, 0, nt)
	require.Equal(t, 2, ft[8])
}

// TestFindFaceTransform_RotwrapOrientationSwapsAxes is literal scenario
// S3: a rotated wrap at orientation 3 swaps the in-face axis
// correspondence relative to the unrotated (orientation 0) case.
func TestFindFaceTransform_RotwrapOrientationSwapsAxes(t *testing.T) {
	base := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		base.SetFaceEntry(0, f, 0, f, 0)
	}
	base.SetFaceEntry(0, ctables.FaceNegX, 0, ctables.FacePosX, 0)
	base.SetFaceEntry(0, ctables.FacePosX, 0, ctables.FaceNegX, 0)
	_, ftIdentity, err := connectivity.FindFaceTransform(base, 0, ctables.FaceNegX)
	require.NoError(t, err)

	rot := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		rot.SetFaceEntry(0, f, 0, f, 0)
	}
	rot.SetFaceEntry(0, ctables.FaceNegX, 0, ctables.FacePosX, 3)
	rot.SetFaceEntry(0, ctables.FacePosX, 0, ctables.FaceNegX, 3)
	_, ftRot, err := connectivity.FindFaceTransform(rot, 0, ctables.FaceNegX)
	require.NoError(t, err)

	require.NotEqual(t, ftIdentity[3], ftRot[3])
}

func TestFindFaceTransform_OutOfRange(t *testing.T) {
	c := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	_, _, err := connectivity.FindFaceTransform(c, 5, 0)
	require.ErrorIs(t, err, connectivity.ErrOutOfRange)
}

func TestFindEdgeTransform_SuppressesFaceReachablePartners(t *testing.T) {
	c := twoCubesByVertex(t)
	require.NoError(t, connectivity.Complete(c))

	ets, err := connectivity.FindEdgeTransform(c, 0, 5) // one of FacePosX's bounding edges
	require.NoError(t, err)
	require.Empty(t, ets, "edge partner reachable via face reciprocity must be suppressed")
}

func TestFindCornerTransform_SuppressesFaceReachablePartners(t *testing.T) {
	c := twoCubesByVertex(t)
	require.NoError(t, connectivity.Complete(c))

	cts, err := connectivity.FindCornerTransform(c, 0, 1)
	require.NoError(t, err)
	require.Empty(t, cts, "corner partner reachable via face reciprocity must be suppressed")
}

func TestFindEdgeTransform_NoBucketIsEmpty(t *testing.T) {
	c := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
	}
	ets, err := connectivity.FindEdgeTransform(c, 0, 0)
	require.NoError(t, err)
	require.Empty(t, ets)
}
