package elevation

import (
	"fmt"

	"github.com/veldane/dted/angle"
	"github.com/veldane/dted/dtf"
)

// tenthsPerDeg converts an interval in tenths of an arc-second to degrees.
const tenthsPerDeg = 36000.0

// Grid is the derived, queryable form of a decoded DTED file.
// It is immutable once built and safe for concurrent reads.
type Grid struct {
	// OriginAngle is the lower-left corner in the header's fixed-point form.
	OriginAngle angle.AxisElement[angle.Angle]

	// Origin is the lower-left corner in decimal degrees; it is also the
	// per-axis minimum coverage bound.
	Origin angle.AxisElement[float64]

	// Interval is the grid spacing in decimal degrees per axis.
	Interval angle.AxisElement[float64]

	// IntervalSeconds is the grid spacing in arc-seconds per axis.
	IntervalSeconds angle.AxisElement[float64]

	// Max is the per-axis maximum coverage bound in decimal degrees:
	// Origin + Interval × (Count − 1).
	Max angle.AxisElement[float64]

	// Count holds the number of longitude lines (Lon) and latitude samples
	// per line (Lat).
	Count angle.AxisElement[uint16]

	// Accuracy is the absolute vertical accuracy in meters, meaningful only
	// when HasAccuracy is true.
	Accuracy    uint16
	HasAccuracy bool

	// records are the decoded elevation lines, west→east. Kept unexported so
	// nothing can mutate the grid after construction.
	records []dtf.Record
}

// New derives a Grid from a decoded header and its record sequence.
//
// The records must line up with the header: one record per longitude line
// and one sample per latitude point. Both axes need at least two entries
// and a positive interval for the four-corner interpolation to be defined.
func New(h dtf.Header, records []dtf.Record) (*Grid, error) {
	if len(records) != int(h.Count.Lon) {
		return nil, fmt.Errorf("%w: %d records for %d lines", ErrRecordCount, len(records), h.Count.Lon)
	}
	for i, rec := range records {
		if len(rec.Elevations) != int(h.Count.Lat) {
			return nil, fmt.Errorf("%w: line %d has %d samples, want %d",
				ErrLineLength, i, len(rec.Elevations), h.Count.Lat)
		}
	}
	if h.Count.Lat < 2 || h.Count.Lon < 2 {
		return nil, fmt.Errorf("%w: %d×%d", ErrGridSize, h.Count.Lon, h.Count.Lat)
	}
	if h.Interval.Lat == 0 || h.Interval.Lon == 0 {
		return nil, ErrInterval
	}

	origin := angle.Degrees(h.Origin)
	tenths := angle.ToFloat64(h.Interval)
	interval := angle.DivScalar(tenths, tenthsPerDeg)
	steps := angle.SubScalar(angle.ToFloat64(h.Count), 1)

	return &Grid{
		OriginAngle:     h.Origin,
		Origin:          origin,
		Interval:        interval,
		IntervalSeconds: angle.DivScalar(tenths, 10.0),
		Max:             angle.Add(origin, angle.Mul(interval, steps)),
		Count:           h.Count,
		Accuracy:        h.Accuracy,
		HasAccuracy:     h.HasAccuracy,
		records:         records,
	}, nil
}

// Decode decodes a whole DTED file from an in-memory buffer and derives its
// Grid. Decode options pass through to the file decoder.
func Decode(b []byte, opts ...dtf.Option) (*Grid, error) {
	f, err := dtf.Decode(b, opts...)
	if err != nil {
		return nil, err
	}

	return New(f.Header, f.Records)
}

// Load reads, decodes, and derives the Grid of the DTED file at path.
func Load(path string, opts ...dtf.Option) (*Grid, error) {
	f, err := dtf.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}

	return New(f.Header, f.Records)
}
