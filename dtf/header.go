package dtf

import (
	"fmt"

	"github.com/veldane/dted/angle"
	"github.com/veldane/dted/wire"
)

// UHL field widths: 3-digit degrees, 2-digit minutes, 2-digit seconds,
// followed by a 1-byte hemisphere.
const (
	uhlDegWidth = 3
	uhlMinWidth = 2
	uhlSecWidth = 2
)

// decodeAngle reads a fixed-width DDDMMSSH angle field. The hemisphere byte
// carries the sign for the whole angle.
func decodeAngle(b []byte) ([]byte, angle.Angle, error) {
	b, deg, err := wire.UintDefault(b, uhlDegWidth, 0)
	if err != nil {
		return b, angle.Angle{}, fmt.Errorf("degrees: %w", err)
	}
	b, min, err := wire.UintDefault(b, uhlMinWidth, 0)
	if err != nil {
		return b, angle.Angle{}, fmt.Errorf("minutes: %w", err)
	}
	b, sec, err := wire.UintDefault(b, uhlSecWidth, 0)
	if err != nil {
		return b, angle.Angle{}, fmt.Errorf("seconds: %w", err)
	}
	b, sign, err := wire.Hemisphere(b)
	if err != nil {
		return b, angle.Angle{}, err
	}

	a, err := angle.New(uint16(deg), uint8(min), float64(sec), sign < 0)
	if err != nil {
		return b, angle.Angle{}, err
	}

	return b, a, nil
}

// DecodeHeader decodes the 80-byte User Header Label at the start of b.
//
// The layout is strictly sequential at fixed offsets: the "UHL1" sentinel,
// longitude then latitude origin angles, per-axis intervals in tenths of an
// arc-second, the NA-aware accuracy field, and the per-axis counts, with
// two reserved regions skipped. Exactly UHLLength bytes are consumed.
func DecodeHeader(b []byte) (Header, error) {
	b, err := wire.Tag(b, SentinelUHL)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: header sentinel: %w", err)
	}

	b, lonOrigin, err := decodeAngle(b)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: origin longitude: %w", err)
	}
	b, latOrigin, err := decodeAngle(b)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: origin latitude: %w", err)
	}

	b, lonInterval, err := wire.Uint(b, 4)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: longitude interval: %w", err)
	}
	b, latInterval, err := wire.Uint(b, 4)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: latitude interval: %w", err)
	}

	b, accuracy, hasAccuracy, err := wire.OptionalUint(b, 4)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: accuracy: %w", err)
	}

	b, err = wire.Skip(b, 15) // security code + unique reference (unparsed)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: header reserved: %w", err)
	}

	b, lonCount, err := wire.Uint(b, 4)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: longitude count: %w", err)
	}
	b, latCount, err := wire.Uint(b, 4)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: latitude count: %w", err)
	}

	if _, err = wire.Skip(b, 25); err != nil { // multiple accuracy + reserved (unparsed)
		return Header{}, fmt.Errorf("dtf: header reserved: %w", err)
	}

	return Header{
		Origin:      angle.NewAxis(latOrigin, lonOrigin),
		Interval:    angle.NewAxis(uint16(latInterval), uint16(lonInterval)),
		Accuracy:    uint16(accuracy),
		HasAccuracy: hasAccuracy,
		Count:       angle.NewAxis(uint16(latCount), uint16(lonCount)),
	}, nil
}
