// Package elevation derives a queryable grid from a decoded DTED file and
// answers point elevation lookups by bilinear interpolation.
//
// What:
//
//   - Grid wraps the decoded header and records with decimal-degree
//     origin, spacing, and per-axis min/max bounds
//     (max = origin + spacing × (count − 1)). It is immutable once built.
//   - Elevation(lat, lon) bounds-checks the query, derives the continuous
//     grid coordinate, splits it into index and fraction per axis, clamps
//     at the far edge, and interpolates over the four surrounding corners.
//   - Load and Decode compose the dtf decoders with New for one-call use.
//
// Why:
//
//   - Terrain and mapping applications want "elevation at (lat, lon)" in
//     meters, not record indices; the grid owns that arithmetic.
//
// An out-of-coverage query is a normal outcome, not an error: Elevation
// returns ok=false. Longitude selects the record line (west→east),
// latitude selects the sample within it (south→north).
//
// Concurrency: a Grid never mutates after New, holds no per-query state,
// and is safe for concurrent reads without locking.
//
// Complexity: Elevation is O(1) time and allocation-free; New is O(lines)
// validation over the decoded records.
//
// Errors:
//
//   - ErrRecordCount: record count differs from the header longitude count.
//   - ErrLineLength: a record's sample count differs from the header
//     latitude count.
//   - ErrGridSize: fewer than two lines or samples per axis.
//   - ErrInterval: a zero grid interval on either axis.
//   - ErrSampleIndex: Sample index outside the grid.
package elevation
