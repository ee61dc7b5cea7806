package compare

import "errors"

var (
	// ErrGridMismatch indicates two trajectories do not share a time grid.
	ErrGridMismatch = errors.New("compare: time grids differ")

	// ErrNoReference indicates the reference trajectory was not loaded.
	ErrNoReference = errors.New("compare: reference trajectory not loaded")
)
