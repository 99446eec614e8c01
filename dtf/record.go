package dtf

import (
	"encoding/binary"
	"fmt"

	"github.com/veldane/dted/wire"
)

// DecodeRecord decodes one elevation data record from the front of b and
// returns the remaining bytes. lineLen is the header's latitude count; a
// record does not describe its own length.
//
// The trailing 4-byte checksum is skipped unverified; Decode with
// WithChecksum verifies it at the file level.
func DecodeRecord(b []byte, lineLen int) ([]byte, Record, error) {
	return decodeRecord(b, lineLen, false)
}

func decodeRecord(b []byte, lineLen int, verify bool) ([]byte, Record, error) {
	body := b // retained for the checksum byte-sum

	b, err := wire.Tag(b, SentinelRecord)
	if err != nil {
		return b, Record{}, fmt.Errorf("dtf: record sentinel: %w", err)
	}

	// The next byte is the block index's high part, documented as always
	// zero in practice. It scales by 2^16 onto the 16-bit low word.
	if len(b) < 1 {
		return b, Record{}, fmt.Errorf("dtf: record block: %w", wire.ErrIncomplete)
	}
	blockHigh := uint32(b[0])
	b = b[1:]

	b, blockLow, err := wire.Uint16BE(b)
	if err != nil {
		return b, Record{}, fmt.Errorf("dtf: record block: %w", err)
	}
	b, lonCount, err := wire.Uint16BE(b)
	if err != nil {
		return b, Record{}, fmt.Errorf("dtf: record longitude count: %w", err)
	}
	b, latCount, err := wire.Uint16BE(b)
	if err != nil {
		return b, Record{}, fmt.Errorf("dtf: record latitude count: %w", err)
	}

	elevations := make([]int16, lineLen)
	for i := range elevations {
		if b, elevations[i], err = wire.SignedMag16(b); err != nil {
			return b, Record{}, fmt.Errorf("dtf: elevation %d: %w", i, err)
		}
	}

	if verify {
		if len(b) < 4 {
			return b, Record{}, fmt.Errorf("dtf: record checksum: %w", wire.ErrIncomplete)
		}
		var sum uint32
		for _, c := range body[:8+2*lineLen] {
			sum += uint32(c)
		}
		if want := binary.BigEndian.Uint32(b); sum != want {
			return b, Record{}, fmt.Errorf("%w: computed %d, stored %d", ErrChecksum, sum, want)
		}
	}
	if b, err = wire.Skip(b, 4); err != nil {
		return b, Record{}, fmt.Errorf("dtf: record checksum: %w", err)
	}

	return b, Record{
		Block:      blockHigh*0x10000 + uint32(blockLow),
		LonCount:   lonCount,
		LatCount:   latCount,
		Elevations: elevations,
	}, nil
}
