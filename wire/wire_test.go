package wire_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veldane/dted/wire"
)

func TestTag(t *testing.T) {
	rest, err := wire.Tag([]byte("UHL1rest"), []byte("UHL1"))
	require.NoError(t, err)
	require.Equal(t, []byte("rest"), rest)

	_, err = wire.Tag([]byte("DSIU"), []byte("UHL1"))
	require.ErrorIs(t, err, wire.ErrTagMismatch)

	_, err = wire.Tag([]byte("UH"), []byte("UHL1"))
	require.ErrorIs(t, err, wire.ErrIncomplete)
}

func TestUint(t *testing.T) {
	rest, v, err := wire.Uint([]byte("0420X"), 4)
	require.NoError(t, err)
	require.Equal(t, uint32(420), v)
	require.Equal(t, []byte("X"), rest)

	_, _, err = wire.Uint([]byte("12a4"), 4)
	require.ErrorIs(t, err, wire.ErrNotDigit)

	_, _, err = wire.Uint([]byte("12"), 4)
	require.ErrorIs(t, err, wire.ErrIncomplete)
}

func TestUintDefault_ZeroWidth(t *testing.T) {
	in := []byte("123")
	rest, v, err := wire.UintDefault(in, 0, 7)
	require.NoError(t, err)
	require.Equal(t, uint32(7), v)
	require.Equal(t, in, rest, "zero width must not consume input")
}

func TestOptionalUint(t *testing.T) {
	rest, v, ok, err := wire.OptionalUint([]byte("NA$$"), 4)
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, v)
	require.Empty(t, rest)

	rest, v, ok, err = wire.OptionalUint([]byte("1234"), 4)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(1234), v)
	require.Empty(t, rest)

	_, _, _, err = wire.OptionalUint([]byte("12e4"), 4)
	require.ErrorIs(t, err, wire.ErrNotDigit)

	_, _, _, err = wire.OptionalUint([]byte("NA"), 4)
	require.ErrorIs(t, err, wire.ErrIncomplete)
}

// TestSignedMag16 pins the wire encoding: bit 15 is a sign flag, not a
// two's-complement high bit.
func TestSignedMag16(t *testing.T) {
	cases := []struct {
		in   []byte
		want int16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x00, 0x03}, 3},
		{[]byte{0x80, 0x03}, -3},
		{[]byte{0x7F, 0xFF}, 32767},
		{[]byte{0xFF, 0xFF}, -32767},
		{[]byte{0x80, 0x00}, 0}, // negative zero equals positive zero
	}
	for _, tc := range cases {
		rest, v, err := wire.SignedMag16(tc.in)
		if err != nil {
			t.Fatalf("SignedMag16(% X): %v", tc.in, err)
		}
		if v != tc.want {
			t.Errorf("SignedMag16(% X) = %d; want %d", tc.in, v, tc.want)
		}
		if len(rest) != 0 {
			t.Errorf("SignedMag16(% X) left %d bytes", tc.in, len(rest))
		}
	}

	if _, _, err := wire.SignedMag16([]byte{0x01}); !errors.Is(err, wire.ErrIncomplete) {
		t.Errorf("short input error = %v; want ErrIncomplete", err)
	}
}

func TestUint16BE(t *testing.T) {
	rest, v, err := wire.Uint16BE([]byte{0x0E, 0x11, 0xAA})
	require.NoError(t, err)
	require.Equal(t, uint16(0x0E11), v)
	require.Len(t, rest, 1)
}

func TestHemisphere(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"N", 1},
		{"E", 1},
		{"S", -1},
		{"W", -1},
	}
	for _, tc := range cases {
		rest, sign, err := wire.Hemisphere([]byte(tc.in))
		require.NoError(t, err, "in=%q", tc.in)
		require.Equal(t, tc.want, sign, "in=%q", tc.in)
		require.Empty(t, rest)
	}

	// Zero-width slot defaults to positive and consumes nothing.
	rest, sign, err := wire.Hemisphere(nil)
	require.NoError(t, err)
	require.Equal(t, 1, sign)
	require.Empty(t, rest)

	_, _, err = wire.Hemisphere([]byte("Q"))
	require.ErrorIs(t, err, wire.ErrHemisphere)
}

func TestSkip(t *testing.T) {
	rest, err := wire.Skip([]byte("abcdef"), 4)
	require.NoError(t, err)
	require.Equal(t, []byte("ef"), rest)

	_, err = wire.Skip([]byte("ab"), 4)
	require.ErrorIs(t, err, wire.ErrIncomplete)
}
