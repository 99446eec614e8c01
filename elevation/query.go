package elevation

import "fmt"

// Contains reports whether (lat, lon) lies inside the grid's coverage,
// bounds inclusive.
func (g *Grid) Contains(lat, lon float64) bool {
	return lat >= g.Origin.Lat && lat <= g.Max.Lat &&
		lon >= g.Origin.Lon && lon <= g.Max.Lon
}

// Elevation returns the bilinearly interpolated elevation in meters at
// (lat, lon), both in decimal degrees. ok is false when the point lies
// outside the grid's coverage — a normal outcome for out-of-coverage
// queries, not an error.
func (g *Grid) Elevation(lat, lon float64) (meters float64, ok bool) {
	if !g.Contains(lat, lon) {
		return 0, false
	}

	// Continuous grid coordinate, then integer index + fractional remainder
	// per axis.
	latPos := (lat - g.Origin.Lat) / g.Interval.Lat
	lonPos := (lon - g.Origin.Lon) / g.Interval.Lon
	latIdx, lonIdx := int(latPos), int(lonPos)
	latFrac := latPos - float64(latIdx)
	lonFrac := lonPos - float64(lonIdx)

	// At the exact axis maximum the index lands on the last sample; step
	// back one cell and carry the step into the fraction so the four-corner
	// lookup stays in bounds while fraction 1.0 still selects the far corner.
	if latIdx == int(g.Count.Lat)-1 {
		latIdx--
		latFrac += 1.0
	}
	if lonIdx == int(g.Count.Lon)-1 {
		lonIdx--
		lonFrac += 1.0
	}

	// Longitude selects the record line, latitude the sample within it.
	e00 := float64(g.records[lonIdx].Elevations[latIdx])
	e01 := float64(g.records[lonIdx].Elevations[latIdx+1])
	e10 := float64(g.records[lonIdx+1].Elevations[latIdx])
	e11 := float64(g.records[lonIdx+1].Elevations[latIdx+1])

	meters = e00*(1-lonFrac)*(1-latFrac) +
		e01*(1-lonFrac)*latFrac +
		e10*lonFrac*(1-latFrac) +
		e11*lonFrac*latFrac

	return meters, true
}

// Sample returns the raw decoded sample at (lonIdx, latIdx): lonIdx selects
// the line west→east, latIdx the sample south→north. Void samples come back
// as dtf.VoidElevation untouched.
func (g *Grid) Sample(lonIdx, latIdx int) (int16, error) {
	if lonIdx < 0 || lonIdx >= int(g.Count.Lon) || latIdx < 0 || latIdx >= int(g.Count.Lat) {
		return 0, fmt.Errorf("%w: (%d, %d) in %d×%d", ErrSampleIndex, lonIdx, latIdx, g.Count.Lon, g.Count.Lat)
	}

	return g.records[lonIdx].Elevations[latIdx], nil
}
