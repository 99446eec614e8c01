package dtf

import (
	"errors"

	"github.com/veldane/dted/angle"
)

// Recognition sentinels used to locate DTED structures.
var (
	// SentinelUHL opens the User Header Label.
	SentinelUHL = []byte("UHL1")
	// SentinelDSI opens the Data Set Identification record.
	SentinelDSI = []byte("DSIU")
	// SentinelACC opens the Accuracy Description record.
	SentinelACC = []byte("ACC")
	// SentinelRecord opens every elevation data record.
	SentinelRecord = []byte{0xAA}
)

// Fixed-layout lengths, in bytes.
const (
	// UHLLength is the size of the User Header Label.
	UHLLength = 80
	// DSILength is the size of the Data Set Identification block (opaque).
	DSILength = 648
	// ACCLength is the size of the Accuracy Description block (opaque).
	ACCLength = 2700
	// RecordOverhead is the fixed portion of a record: sentinel, reserved
	// byte, block low word, two count echoes, and the trailing checksum.
	RecordOverhead = 12
)

// VoidElevation is the conventional "no data" elevation sample. The decoder
// passes it through untouched; consumers that care about voids filter on it.
const VoidElevation int16 = -32767

// Sentinel errors for file-level decoding.
var (
	// ErrChecksum indicates a record checksum mismatch under WithChecksum.
	ErrChecksum = errors.New("dtf: record checksum mismatch")
	// ErrTrailingBytes indicates data beyond the final record.
	ErrTrailingBytes = errors.New("dtf: trailing bytes after last record")
)

// Header is the decoded User Header Label.
type Header struct {
	// Origin is the lower-left corner of the grid.
	Origin angle.AxisElement[angle.Angle]

	// Interval is the grid spacing per axis, in tenths of an arc-second.
	Interval angle.AxisElement[uint16]

	// Accuracy is the absolute vertical accuracy in meters. It is only
	// meaningful when HasAccuracy is true; files may declare it "NA".
	Accuracy uint16

	// HasAccuracy reports whether the file declared a vertical accuracy.
	HasAccuracy bool

	// Count holds the number of longitude lines (Lon) and the number of
	// latitude points per line (Lat).
	Count angle.AxisElement[uint16]
}

// Record is one decoded elevation line (one longitude column).
//
// Elevations run south→north within the record; records themselves run
// west→east within a file.
type Record struct {
	// Block is the 24-bit block index, reconstructed from the record's
	// 1-byte high part and 16-bit low part.
	Block uint32

	// LonCount and LatCount echo the header counts.
	LonCount uint16
	LatCount uint16

	// Elevations are the signed elevation samples in meters.
	Elevations []int16
}

// File is a fully decoded DTED file: the header plus one Record per
// longitude line, ordered west→east.
type File struct {
	Header  Header
	Records []Record
}

// Option configures decoding behavior. Options are applied left-to-right.
type Option func(*config)

type config struct {
	verifyChecksum bool
}

// WithChecksum enables verification of each record's trailing checksum.
// A mismatch fails the whole load with ErrChecksum.
func WithChecksum() Option {
	return func(c *config) { c.verifyChecksum = true }
}
