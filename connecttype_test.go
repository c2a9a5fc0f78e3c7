package p8est_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	p8est "github.com/ivanredbread/p8est"
)

// TestConnectType_IntAndString verifies the ABI-facing int conversion and
// the name conversion for every defined connect type, plus the DEFAULT/FULL
// aliases.
func TestConnectType_IntAndString(t *testing.T) {
	cases := []struct {
		name string
		ct   p8est.ConnectType
		ival int
		sval string
	}{
		{"FACE", p8est.ConnectFace, 1, "FACE"},
		{"EDGE", p8est.ConnectEdge, 2, "EDGE"},
		{"CORNER", p8est.ConnectCorner, 3, "CORNER"},
		{"DEFAULT aliases EDGE", p8est.ConnectDefault, 2, "EDGE"},
		{"FULL aliases CORNER", p8est.ConnectFull, 3, "CORNER"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.ival, tc.ct.Int())
			require.Equal(t, tc.sval, tc.ct.String())
			require.True(t, tc.ct.Valid())
		})
	}
}

// TestConnectType_ABIValues pins the raw integer values to the documented
// ABI contract; these must never change.
func TestConnectType_ABIValues(t *testing.T) {
	require.EqualValues(t, 31, p8est.ConnectFace)
	require.EqualValues(t, 32, p8est.ConnectEdge)
	require.EqualValues(t, 33, p8est.ConnectCorner)
}

func TestConnectType_Invalid(t *testing.T) {
	ct := p8est.ConnectType(0)
	require.False(t, ct.Valid())
	require.Equal(t, 0, ct.Int())
	require.Contains(t, ct.String(), "ConnectType")
}
