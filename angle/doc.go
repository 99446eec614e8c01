// Package angle provides the fixed-point geographic angle model and the
// generic per-axis pair container used throughout the dted module.
//
// What:
//
//   - Angle stores a geographic angle as whole degrees, minutes (0–59) and
//     fractional seconds (0 ≤ sec < 60), with the sign carried once on the
//     whole angle. Arithmetic goes through total arc-seconds and always
//     re-normalizes, so an Angle is never left with minutes or seconds out
//     of range.
//   - AxisElement[T] is a {Lat, Lon} pair for any "one value per axis"
//     quantity (origin, interval, count, bounds). All operations apply to
//     latitude and longitude independently; the axes never interact.
//
// Why:
//
//   - DTED headers encode positions as fixed-width degree/minute/second
//     fields; keeping the decoded representation fixed-point avoids losing
//     precision before the caller asks for decimal degrees.
//   - Nearly every header quantity comes in latitude/longitude pairs; one
//     generic container keeps the per-axis arithmetic in a single place.
//
// Conversions between differently-typed pairs go through float64
// explicitly (ToFloat64), so a cross-type operation is visible at the call
// site rather than hidden behind implicit numeric coercion.
//
// Errors:
//
//   - ErrMinutesRange: minutes ≥ 60 passed to New.
//   - ErrSecondsRange: seconds < 0 or ≥ 60 passed to New.
//   - ErrTooLarge: a total-seconds magnitude beyond the representable
//     range (≈ 65535 degrees), from FromSeconds or from arithmetic that
//     overflows on re-normalization.
package angle
