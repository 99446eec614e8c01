package dtf

import (
	"fmt"
	"io"
	"os"

	"github.com/veldane/dted/wire"
)

// Decode decodes a complete DTED file from an in-memory byte buffer.
//
// Layout: the 80-byte header, the opaque Data Set Identification and
// Accuracy Description blocks (skipped), then exactly Header.Count.Lon
// records back-to-back, each Header.Count.Lat samples long. Any failure is
// fatal for the whole file; there is no partial result.
func Decode(b []byte, opts ...Option) (*File, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	header, err := DecodeHeader(b)
	if err != nil {
		return nil, err
	}
	b = b[UHLLength:]

	if b, err = wire.Skip(b, DSILength); err != nil {
		return nil, fmt.Errorf("dtf: data set identification: %w", err)
	}
	if b, err = wire.Skip(b, ACCLength); err != nil {
		return nil, fmt.Errorf("dtf: accuracy description: %w", err)
	}

	lineLen := int(header.Count.Lat)
	records := make([]Record, header.Count.Lon)
	for i := range records {
		if b, records[i], err = decodeRecord(b, lineLen, cfg.verifyChecksum); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
	}
	if len(b) != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(b))
	}

	return &File{Header: header, Records: records}, nil
}

// ReadFile reads and decodes a whole DTED file from disk.
// The underlying read error, if any, is surfaced to the caller unretried.
func ReadFile(path string, opts ...Option) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dtf: %w", err)
	}

	return Decode(content, opts...)
}

// ReadHeader reads and decodes only the 80-byte User Header Label of the
// file at path, without loading the elevation data.
func ReadHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("dtf: %w", err)
	}
	defer f.Close()

	buf := make([]byte, UHLLength)
	if _, err = io.ReadFull(f, buf); err != nil {
		return Header{}, fmt.Errorf("dtf: read header of %s: %w", path, err)
	}

	return DecodeHeader(buf)
}
