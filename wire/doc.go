// Package wire provides the primitive field decoders for DTED's fixed-layout
// byte stream: literal tag matching, fixed-width unsigned decimal ASCII,
// the NA-sentinel optional field, the signed-magnitude 16-bit integer, and
// the hemisphere sign byte.
//
// Every decoder is a pure function over a byte cursor: it takes the input
// slice and returns the remaining slice plus the decoded value, or an
// error. Nothing is consumed on failure paths other than by the caller
// discarding the cursor, so decode failures are always fatal for the
// enclosing structure — matching the format's atomic-load policy.
//
// Errors:
//
//   - ErrIncomplete: fewer bytes available than the field requires.
//   - ErrTagMismatch: the next bytes do not equal the expected literal.
//   - ErrNotDigit: a byte in a numeric-ASCII field is not '0'–'9'.
//   - ErrHemisphere: a hemisphere slot holds a byte outside N/S/E/W.
package wire
