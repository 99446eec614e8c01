package angle

import (
	"errors"
	"fmt"
)

// Unit conversion factors.
const (
	// SecPerDeg is the number of arc-seconds in one degree.
	SecPerDeg = 3600.0
	// SecPerMin is the number of arc-seconds in one arc-minute.
	SecPerMin = 60.0
	// MinPerDeg is the number of arc-minutes in one degree.
	MinPerDeg = 60.0
)

// maxTotalSeconds is the largest total-seconds magnitude an Angle can hold:
// the degree field is 16 bits wide, so 65535° × 3600.
const maxTotalSeconds = 65535 * SecPerDeg

// Sentinel errors for Angle construction and normalization.
var (
	// ErrMinutesRange indicates a minutes value of 60 or more.
	ErrMinutesRange = errors.New("angle: minutes must be less than 60")
	// ErrSecondsRange indicates a seconds value below 0 or of 60 or more.
	ErrSecondsRange = errors.New("angle: seconds must be in [0, 60)")
	// ErrTooLarge indicates a total-seconds magnitude beyond 65535 degrees.
	ErrTooLarge = errors.New("angle: magnitude too large")
)

// Angle is a geographic angle in degrees, minutes, and seconds.
//
// Deg, Min and Sec are always non-negative; the sign is carried once, on
// the whole angle, by the negative flag. The fields are unexported so every
// Angle in circulation satisfies the range invariants; construct one with
// New or FromSeconds.
//
// Angle is an immutable value type: arithmetic returns a new Angle and
// never mutates in place.
type Angle struct {
	deg      uint16
	min      uint8
	sec      float64
	negative bool
}

// New builds an Angle from its raw fields.
//
// deg is the unsigned degree magnitude; negative applies the sign to the
// whole angle. Returns ErrMinutesRange when min ≥ 60 and ErrSecondsRange
// when sec < 0 or sec ≥ 60.
func New(deg uint16, min uint8, sec float64, negative bool) (Angle, error) {
	if min >= 60 {
		return Angle{}, fmt.Errorf("%w: got %d", ErrMinutesRange, min)
	}
	if sec < 0 || sec >= 60 {
		return Angle{}, fmt.Errorf("%w: got %g", ErrSecondsRange, sec)
	}

	return Angle{deg: deg, min: min, sec: sec, negative: negative}, nil
}

// FromSeconds normalizes a signed total arc-seconds value into an Angle.
//
// Returns ErrTooLarge when |total| exceeds the representable range
// (≈ 65535 degrees). NaN and ±Inf inputs are rejected the same way.
func FromSeconds(total float64) (Angle, error) {
	abs := total
	if abs < 0 {
		abs = -abs
	}
	// The negated comparison also rejects NaN, which compares false to everything.
	if !(abs <= maxTotalSeconds) {
		return Angle{}, fmt.Errorf("%w: %g arc-seconds", ErrTooLarge, total)
	}

	whole := uint32(abs)
	deg := whole / 3600
	min := (whole % 3600) / 60
	sec := abs - float64(deg*3600+min*60)

	return Angle{
		deg:      uint16(deg),
		min:      uint8(min),
		sec:      sec,
		negative: total < 0,
	}, nil
}

// Deg returns the unsigned degree magnitude.
func (a Angle) Deg() uint16 { return a.deg }

// Min returns the minutes component, always in [0, 60).
func (a Angle) Min() uint8 { return a.min }

// Sec returns the seconds component, always in [0, 60).
func (a Angle) Sec() float64 { return a.sec }

// IsNegative reports whether the whole angle is negative.
func (a Angle) IsNegative() bool { return a.negative }

// Seconds returns the signed total arc-seconds of the angle.
func (a Angle) Seconds() float64 {
	abs := float64(uint32(a.deg)*3600+uint32(a.min)*60) + a.sec
	if a.negative {
		return -abs
	}

	return abs
}

// Degrees returns the angle as signed decimal degrees.
func (a Angle) Degrees() float64 {
	abs := float64(a.deg) + float64(a.min)/MinPerDeg + a.sec/SecPerDeg
	if a.negative {
		return -abs
	}

	return abs
}

// IsZero reports whether every field of the angle is zero, regardless of sign.
func (a Angle) IsZero() bool {
	return a.deg == 0 && a.min == 0 && a.sec == 0
}

// Equal reports whether two angles are the same.
//
// Angles compare by their normalized (deg, min, sec, sign) tuples, with one
// carve-out: +0 and −0 (all fields zero) are equal regardless of sign. The
// zero case is handled by explicit normalization here rather than inside
// each field comparison, so the contract stays visible.
func (a Angle) Equal(b Angle) bool {
	if a.IsZero() && b.IsZero() {
		return true
	}

	return a.negative == b.negative && a.deg == b.deg && a.min == b.min && a.sec == b.sec
}

// Add returns a+b, re-normalized. Returns ErrTooLarge on overflow.
func (a Angle) Add(b Angle) (Angle, error) {
	return FromSeconds(a.Seconds() + b.Seconds())
}

// Sub returns a−b, re-normalized. Returns ErrTooLarge on overflow.
func (a Angle) Sub(b Angle) (Angle, error) {
	return FromSeconds(a.Seconds() - b.Seconds())
}

// Mul returns the angle scaled by k, re-normalized.
// Returns ErrTooLarge on overflow.
func (a Angle) Mul(k float64) (Angle, error) {
	return FromSeconds(a.Seconds() * k)
}

// Div returns the angle divided by k, re-normalized.
// Division by zero surfaces as ErrTooLarge (the quotient is not representable).
func (a Angle) Div(k float64) (Angle, error) {
	return FromSeconds(a.Seconds() / k)
}

// String renders the angle as D°M'S" with a leading sign when negative.
func (a Angle) String() string {
	sign := ""
	if a.negative {
		sign = "-"
	}

	return fmt.Sprintf("%s%d°%d'%g\"", sign, a.deg, a.min, a.sec)
}
