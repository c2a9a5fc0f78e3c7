package p8estio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanredbread/p8est/connectivity"
	"github.com/ivanredbread/p8est/factories"
	"github.com/ivanredbread/p8est/p8estio"
)

// TestRoundTrip_EveryFactory is testable property 5: load(save(c)) ≡ c
// under is_equal, for every built-in connectivity.
func TestRoundTrip_EveryFactory(t *testing.T) {
	brick, err := factories.Brick(2, 2, 1, false, true, false)
	require.NoError(t, err)

	cases := map[string]*connectivity.Connectivity{
		"unitcube": factories.Unitcube(),
		"periodic": factories.Periodic(),
		"rotwrap":  factories.Rotwrap(),
		"twocubes": factories.Twocubes(),
		"twowrap":  factories.Twowrap(),
		"rotcubes": factories.Rotcubes(),
		"brick":    brick,
		"shell":    factories.Shell(),
		"sphere":   factories.Sphere(),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, p8estio.Save(&buf, c))
			loaded, err := p8estio.Load(&buf)
			require.NoError(t, err)
			require.True(t, connectivity.IsEqual(c, loaded))
		})
	}
}

func TestRoundTrip_AfterComplete(t *testing.T) {
	c := factories.Twocubes()
	require.NoError(t, connectivity.Complete(c))

	var buf bytes.Buffer
	require.NoError(t, p8estio.Save(&buf, c))
	loaded, err := p8estio.Load(&buf)
	require.NoError(t, err)
	require.True(t, connectivity.IsEqual(c, loaded))
}

func TestLoad_BadMagic(t *testing.T) {
	_, err := p8estio.Load(bytes.NewReader([]byte("nope!")))
	require.ErrorIs(t, err, p8estio.ErrBadMagic)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(p8estio.Magic)
	buf.Write([]byte{0, 0, 0, 0})
	_, err := p8estio.Load(&buf)
	require.ErrorIs(t, err, p8estio.ErrUnsupportedVersion)
}

func TestLoad_TruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, p8estio.Save(&buf, factories.Unitcube()))
	truncated := buf.Bytes()[:buf.Len()-4]
	_, err := p8estio.Load(bytes.NewReader(truncated))
	require.ErrorIs(t, err, p8estio.ErrCorruptFile)
}
