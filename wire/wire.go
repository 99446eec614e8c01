package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Sentinel errors for primitive field decoding.
var (
	// ErrIncomplete indicates the input ends before the field does.
	ErrIncomplete = errors.New("wire: incomplete input")
	// ErrTagMismatch indicates the next bytes do not match the expected literal.
	ErrTagMismatch = errors.New("wire: tag mismatch")
	// ErrNotDigit indicates a non-digit byte inside a numeric-ASCII field.
	ErrNotDigit = errors.New("wire: non-digit byte in numeric field")
	// ErrHemisphere indicates a hemisphere slot outside {'N','S','E','W'}.
	ErrHemisphere = errors.New("wire: unrecognized hemisphere byte")
)

// naSentinel marks an absent value in an optional numeric field.
var naSentinel = []byte("NA")

// Tag consumes and verifies the literal byte sequence tag.
func Tag(b, tag []byte) ([]byte, error) {
	if len(b) < len(tag) {
		return b, fmt.Errorf("%w: need %d bytes for tag %q, have %d", ErrIncomplete, len(tag), tag, len(b))
	}
	for i := range tag {
		if b[i] != tag[i] {
			return b, fmt.Errorf("%w: want %q, got %q", ErrTagMismatch, tag, b[:len(tag)])
		}
	}

	return b[len(tag):], nil
}

// Skip consumes n bytes without decoding them.
func Skip(b []byte, n int) ([]byte, error) {
	if len(b) < n {
		return b, fmt.Errorf("%w: need %d bytes to skip, have %d", ErrIncomplete, n, len(b))
	}

	return b[n:], nil
}

// Uint consumes exactly width bytes of unsigned decimal ASCII and
// accumulates them as value = value*10 + digit. A non-digit byte is
// ErrNotDigit. width must be at least 1; use UintDefault for optional
// zero-width sub-fields.
func Uint(b []byte, width int) ([]byte, uint32, error) {
	if len(b) < width {
		return b, 0, fmt.Errorf("%w: need %d digit bytes, have %d", ErrIncomplete, width, len(b))
	}

	var v uint32
	for _, c := range b[:width] {
		if c < '0' || c > '9' {
			return b, 0, fmt.Errorf("%w: %q in %q", ErrNotDigit, c, b[:width])
		}
		v = v*10 + uint32(c-'0')
	}

	return b[width:], v, nil
}

// UintDefault is Uint with optional-width semantics: a width of 0 yields
// def without consuming any input.
func UintDefault(b []byte, width int, def uint32) ([]byte, uint32, error) {
	if width == 0 {
		return b, def, nil
	}

	return Uint(b, width)
}

// OptionalUint consumes exactly width bytes. When they begin with the "NA"
// sentinel the value is absent (ok=false) and the rest of the slot is
// skipped; otherwise all width bytes decode as a fixed-width unsigned
// decimal. width must be at least len("NA").
func OptionalUint(b []byte, width int) (rest []byte, v uint32, ok bool, err error) {
	if len(b) < width {
		return b, 0, false, fmt.Errorf("%w: need %d bytes, have %d", ErrIncomplete, width, len(b))
	}
	if rest, err = Tag(b, naSentinel); err == nil {
		rest, err = Skip(rest, width-len(naSentinel))

		return rest, 0, false, err
	}

	rest, v, err = Uint(b, width)

	return rest, v, err == nil, err
}

// Uint16BE consumes 2 bytes as a big-endian unsigned 16-bit integer.
func Uint16BE(b []byte) ([]byte, uint16, error) {
	if len(b) < 2 {
		return b, 0, fmt.Errorf("%w: need 2 bytes for uint16, have %d", ErrIncomplete, len(b))
	}

	return b[2:], binary.BigEndian.Uint16(b), nil
}

// SignedMag16 consumes 2 bytes as a big-endian signed-magnitude 16-bit
// integer: bit 15 is the sign flag, bits 0–14 the magnitude. This is not
// two's complement — 0xFFFF is −32767, and 0x8000 equals positive zero.
func SignedMag16(b []byte) ([]byte, int16, error) {
	rest, word, err := Uint16BE(b)
	if err != nil {
		return b, 0, err
	}

	mag := int16(word & 0x7FFF)
	if word&0x8000 != 0 {
		mag = -mag
	}

	return rest, mag, nil
}

// Hemisphere consumes one byte among {'N','E'} → +1 or {'S','W'} → −1.
// An empty input is a zero-width hemisphere slot and defaults to +1 without
// consuming anything; any other byte is ErrHemisphere.
func Hemisphere(b []byte) ([]byte, int, error) {
	if len(b) == 0 {
		return b, 1, nil
	}
	switch b[0] {
	case 'N', 'E':
		return b[1:], 1, nil
	case 'S', 'W':
		return b[1:], -1, nil
	default:
		return b, 0, fmt.Errorf("%w: %q", ErrHemisphere, b[0])
	}
}
