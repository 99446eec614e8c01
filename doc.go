// Package dted decodes DTED (Digital Terrain Elevation Data) files into
// an in-memory elevation grid and answers point elevation queries with
// bilinear interpolation.
//
// 🗺 What is dted?
//
//	A small, allocation-conscious library that brings together:
//		• Angle primitives: fixed-point degree/minute/second arithmetic
//		• Wire primitives: the format's fixed-width ASCII and signed-magnitude fields
//		• Format decoding: User Header Label, data records, whole files
//		• Elevation queries: bounds-checked bilinear interpolation in meters
//
// ✨ Why choose dted?
//
//   - Byte-exact – every header field decoded at its fixed offset, no guessing
//   - Atomic loads – a file decodes completely or not at all, never partially
//   - Pure Go – no cgo, no hidden deps
//   - Query-safe – a decoded grid is immutable and safe for concurrent reads
//
// Under the hood, everything is organized under four subpackages:
//
//	angle/     — Angle (deg/min/sec) and AxisElement pair arithmetic
//	wire/      — primitive byte-cursor field decoders
//	dtf/       — sentinels, header/record/file decoding, decode options
//	elevation/ — the derived query grid and the interpolation engine
//
// Quick sketch of a file:
//
//	UHL (80 B) │ DSI (648 B) │ ACC (2700 B) │ record × lon count
//
//	each record: 0xAA ▸ block ▸ counts ▸ lat count × elevation ▸ checksum
//
// Loading and querying:
//
//	grid, err := elevation.Load("n42_e015.dt2")
//	if err != nil { ... }
//	if m, ok := grid.Elevation(42.5, 15.25); ok {
//	    fmt.Printf("%.1f m\n", m)
//	}
//
//	go get github.com/veldane/dted
package dted
