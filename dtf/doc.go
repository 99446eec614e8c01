// Package dtf decodes the DTED transmission format: the 80-byte User
// Header Label, the per-longitude-line data records, and whole files.
//
// What:
//
//   - DecodeHeader reads the fixed-offset UHL fields into a Header:
//     origin angles, grid intervals in tenths of arc-seconds, optional
//     vertical accuracy, and the longitude/latitude counts.
//   - DecodeRecord reads one elevation line. A record is not
//     self-describing: its length is the header's latitude count and is
//     threaded in explicitly by the caller.
//   - Decode reads a complete file: header, the two opaque metadata blocks
//     (Data Set Identification, Accuracy Description — skipped, not
//     parsed), then exactly Count.Lon records back-to-back.
//
// Why:
//
//   - The format mixes numeric ASCII sub-fields with big-endian binary
//     integers and a non-standard signed-magnitude elevation encoding;
//     centralizing the layout here keeps consumers on decoded values only.
//
// A file decodes atomically: any sentinel mismatch, truncation, or
// out-of-range field fails the whole load. Out-of-coverage queries are the
// grid's concern, not an error here.
//
// Options:
//
//   - WithChecksum: verify each record's trailing 4-byte checksum against
//     the byte-sum of the record body. Off by default, matching fielded
//     decoders that treat the field as present but unverified.
//
// Errors:
//
//   - ErrChecksum: a record checksum did not match (WithChecksum only).
//   - ErrTrailingBytes: data remains after the final record.
//   - wire.ErrIncomplete / wire.ErrTagMismatch / wire.ErrNotDigit and the
//     angle range errors pass through wrapped with field context.
package dtf
