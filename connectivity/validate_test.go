package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

func TestIsValid_NilIsFalse(t *testing.T) {
	require.False(t, connectivity.IsValid(nil))
}

func TestIsValid_RejectsBrokenReciprocity(t *testing.T) {
	c := connectivity.Allocate(0, 2, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
		c.SetFaceEntry(1, f, 1, f, 0)
	}
	c.SetFaceEntry(0, ctables.FacePosX, 1, ctables.FaceNegX, 0)
	// deliberately do NOT set tree 1's reciprocal entry
	require.False(t, connectivity.IsValid(c))
}

func TestIsValid_TwoCubesFaceGlued(t *testing.T) {
	c := connectivity.Allocate(0, 2, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
		c.SetFaceEntry(1, f, 1, f, 0)
	}
	c.SetFaceEntry(0, ctables.FacePosX, 1, ctables.FaceNegX, 0)
	c.SetFaceEntry(1, ctables.FaceNegX, 0, ctables.FacePosX, 0)
	require.True(t, connectivity.IsValid(c))
}

func TestDiagnose_ValidIsNil(t *testing.T) {
	c := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
	}
	require.NoError(t, connectivity.Diagnose(c))
}

func TestDiagnose_ReportsFaceReciprocity(t *testing.T) {
	c := connectivity.Allocate(0, 2, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
		c.SetFaceEntry(1, f, 1, f, 0)
	}
	c.SetFaceEntry(0, ctables.FacePosX, 1, ctables.FaceNegX, 0)
	// deliberately do NOT set tree 1's reciprocal entry
	require.ErrorIs(t, connectivity.Diagnose(c), connectivity.ErrFaceReciprocity)
}

func TestDiagnose_ReportsIndexOutOfRange(t *testing.T) {
	c := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
	}
	c.TreeToTree[0] = 99
	require.ErrorIs(t, connectivity.Diagnose(c), connectivity.ErrIndexOutOfRange)
}

func TestConstructFromCopy_ReturnsSpecificSentinel(t *testing.T) {
	base := connectivity.Allocate(0, 2, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		base.SetFaceEntry(0, f, 0, f, 0)
		base.SetFaceEntry(1, f, 1, f, 0)
	}
	base.SetFaceEntry(0, ctables.FacePosX, 1, ctables.FaceNegX, 0)
	// deliberately leave tree 1's reciprocal entry as a self-boundary

	_, err := connectivity.ConstructFromCopy(
		0, 2, 0, 0,
		nil, nil,
		base.TreeToTree, base.TreeToFace,
		base.TreeToEdge, base.EttOffset, base.EdgeToTree, base.EdgeToEdge,
		base.TreeToCorner, base.CttOffset, base.CornerToTree, base.CornerToCorner,
	)
	require.ErrorIs(t, err, connectivity.ErrFaceReciprocity)
}

func TestIsEqual_SameAndDifferent(t *testing.T) {
	a := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		a.SetFaceEntry(0, f, 0, f, 0)
	}
	b := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		b.SetFaceEntry(0, f, 0, f, 0)
	}
	require.True(t, connectivity.IsEqual(a, b))

	b.SetFaceEntry(0, ctables.FacePosX, 0, ctables.FaceNegX, 1)
	require.False(t, connectivity.IsEqual(a, b))
}

func TestIsEqual_NilHandling(t *testing.T) {
	require.True(t, connectivity.IsEqual(nil, nil))
	a := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	require.False(t, connectivity.IsEqual(a, nil))
	require.False(t, connectivity.IsEqual(nil, a))
}
