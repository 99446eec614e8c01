package dtf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veldane/dted/angle"
	"github.com/veldane/dted/dtf"
	"github.com/veldane/dted/wire"
)

// TestDecodeHeader_RoundTrip decodes a synthetically built UHL with known
// field values: origin (42°N, 15°E), intervals of 10 tenths (1 arc-second),
// 3601×3601 samples, accuracy not available.
func TestDecodeHeader_RoundTrip(t *testing.T) {
	buf := buildUHL("0150000E", "0420000N", 10, 10, "NA", 3601, 3601)
	require.Len(t, buf, dtf.UHLLength)

	h, err := dtf.DecodeHeader(buf)
	require.NoError(t, err)

	require.Equal(t, uint16(42), h.Origin.Lat.Deg())
	require.Equal(t, uint8(0), h.Origin.Lat.Min())
	require.Equal(t, 0.0, h.Origin.Lat.Sec())
	require.False(t, h.Origin.Lat.IsNegative())
	require.Equal(t, uint16(15), h.Origin.Lon.Deg())
	require.False(t, h.Origin.Lon.IsNegative())

	require.Equal(t, angle.NewAxis[uint16](10, 10), h.Interval)
	require.Equal(t, angle.NewAxis[uint16](3601, 3601), h.Count)
	require.False(t, h.HasAccuracy)
}

func TestDecodeHeader_Accuracy(t *testing.T) {
	h, err := dtf.DecodeHeader(buildUHL("0150000E", "0420000N", 10, 10, "0026", 121, 121))
	require.NoError(t, err)
	require.True(t, h.HasAccuracy)
	require.Equal(t, uint16(26), h.Accuracy)
}

// TestDecodeHeader_Hemispheres checks the four sign combinations of the
// origin fields.
func TestDecodeHeader_Hemispheres(t *testing.T) {
	h, err := dtf.DecodeHeader(buildUHL("0721530W", "0334512S", 10, 10, "NA", 121, 121))
	require.NoError(t, err)

	require.True(t, h.Origin.Lon.IsNegative())
	require.Equal(t, uint16(72), h.Origin.Lon.Deg())
	require.Equal(t, uint8(15), h.Origin.Lon.Min())
	require.Equal(t, 30.0, h.Origin.Lon.Sec())

	require.True(t, h.Origin.Lat.IsNegative())
	require.Equal(t, uint16(33), h.Origin.Lat.Deg())
	require.Equal(t, uint8(45), h.Origin.Lat.Min())
	require.Equal(t, 12.0, h.Origin.Lat.Sec())
}

func TestDecodeHeader_Errors(t *testing.T) {
	good := buildUHL("0150000E", "0420000N", 10, 10, "NA", 3601, 3601)

	t.Run("NotAHeader", func(t *testing.T) {
		bad := append([]byte("DSIU"), good[4:]...)
		_, err := dtf.DecodeHeader(bad)
		require.ErrorIs(t, err, wire.ErrTagMismatch)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := dtf.DecodeHeader(good[:40])
		require.ErrorIs(t, err, wire.ErrIncomplete)
	})

	t.Run("NonDigitInterval", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[20] = 'x' // first interval byte
		_, err := dtf.DecodeHeader(bad)
		require.ErrorIs(t, err, wire.ErrNotDigit)
	})

	t.Run("BadHemisphere", func(t *testing.T) {
		bad := append([]byte(nil), good...)
		bad[11] = '?' // longitude hemisphere slot
		_, err := dtf.DecodeHeader(bad)
		require.ErrorIs(t, err, wire.ErrHemisphere)
	})

	t.Run("MinutesOutOfRange", func(t *testing.T) {
		_, err := dtf.DecodeHeader(buildUHL("0157200E", "0420000N", 10, 10, "NA", 121, 121))
		require.ErrorIs(t, err, angle.ErrMinutesRange)
	})

	t.Run("SecondsOutOfRange", func(t *testing.T) {
		_, err := dtf.DecodeHeader(buildUHL("0150061E", "0420000N", 10, 10, "NA", 121, 121))
		require.ErrorIs(t, err, angle.ErrSecondsRange)
	})
}
