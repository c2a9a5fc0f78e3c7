package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/ctables"
)

func unitCube(t *testing.T) *connectivity.Connectivity {
	t.Helper()
	c := connectivity.Allocate(8, 1, 0, 0, 0, 0)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
	}
	for i := 0; i < 8; i++ {
		c.Vertices[3*i+0] = float64(i & 1)
		c.Vertices[3*i+1] = float64((i >> 1) & 1)
		c.Vertices[3*i+2] = float64((i >> 2) & 1)
		c.TreeToVertex[i] = i
	}
	require.True(t, connectivity.IsValid(c))
	return c
}

func TestFaceEntry_RoundTrip(t *testing.T) {
	c := connectivity.Allocate(0, 2, 0, 0, 0, 0)
	c.SetFaceEntry(0, ctables.FacePosX, 1, ctables.FaceNegX, 2)
	nt, nf, o := c.FaceEntry(0, ctables.FacePosX)
	require.Equal(t, 1, nt)
	require.Equal(t, ctables.FaceNegX, nf)
	require.Equal(t, 2, o)
}

func TestEncodeDecodeEdgeCode_RoundTrip(t *testing.T) {
	for e := 0; e < ctables.Edges; e++ {
		for _, flip := range []bool{false, true} {
			code := connectivity.EncodeEdgeCode(e, flip)
			gotE, gotFlip := connectivity.DecodeEdgeCode(code)
			require.Equal(t, e, gotE)
			require.Equal(t, flip, gotFlip)
		}
	}
}

func TestUnitCube_IsValid(t *testing.T) {
	unitCube(t)
}

func TestAllocate_ZeroVertices(t *testing.T) {
	c := connectivity.Allocate(0, 1, 0, 0, 0, 0)
	require.Nil(t, c.Vertices)
	require.Nil(t, c.TreeToVertex)
	for f := 0; f < ctables.Faces; f++ {
		c.SetFaceEntry(0, f, 0, f, 0)
	}
	require.True(t, connectivity.IsValid(c))
}

func TestMemoryUsed_Positive(t *testing.T) {
	c := unitCube(t)
	require.Greater(t, c.MemoryUsed(), uintptr(0))
}

func TestDestroy_Zeroes(t *testing.T) {
	c := unitCube(t)
	c.Destroy()
	require.Equal(t, 0, c.NumTrees)
	require.Nil(t, c.TreeToTree)
}

func TestSetTreeAttr_Toggle(t *testing.T) {
	c := unitCube(t)
	c.SetTreeAttr(true)
	require.Len(t, c.TreeAttr, 1)
	c.SetTreeAttr(false)
	require.Nil(t, c.TreeAttr)
}
