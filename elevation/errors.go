package elevation

import "errors"

var (
	// ErrRecordCount indicates the record count does not match the header's
	// longitude count.
	ErrRecordCount = errors.New("elevation: record count does not match header longitude count")
	// ErrLineLength indicates a record whose elevation line length does not
	// match the header's latitude count.
	ErrLineLength = errors.New("elevation: record line length does not match header latitude count")
	// ErrGridSize indicates a grid with fewer than two lines or samples per axis.
	ErrGridSize = errors.New("elevation: grid needs at least two lines and two samples per line")
	// ErrInterval indicates a zero grid interval on one of the axes.
	ErrInterval = errors.New("elevation: grid interval must be positive")
	// ErrSampleIndex indicates a raw sample index outside the grid.
	ErrSampleIndex = errors.New("elevation: sample index out of range")
)
