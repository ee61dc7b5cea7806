package trajectory

import (
	"errors"
	"fmt"
)

// Domain errors for loading trajectory data.
var (
	// ErrDataLoad matches every failure to turn a file into a Table.
	ErrDataLoad = errors.New("trajectory: data load failed")

	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("trajectory: required column missing")

	// ErrNonFinite indicates a NaN or infinite cell.
	ErrNonFinite = errors.New("trajectory: non-finite value")

	// ErrEmpty indicates a file without a header or without samples.
	ErrEmpty = errors.New("trajectory: no samples")

	// ErrUnknownMethod indicates an integration method label that is not FE, ME or RK4.
	ErrUnknownMethod = errors.New("trajectory: unknown integration method")
)

// LoadError wraps a load failure with the file and position it came from.
// It matches both ErrDataLoad and the wrapped cause.
type LoadError struct {
	Path    string
	Line    int
	Column  string
	Wrapped error
}

func (e *LoadError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("load %s: line %d, column %q: %v", e.Path, e.Line, e.Column, e.Wrapped)
	case e.Column != "":
		return fmt.Sprintf("load %s: column %q: %v", e.Path, e.Column, e.Wrapped)
	case e.Line > 0:
		return fmt.Sprintf("load %s: line %d: %v", e.Path, e.Line, e.Wrapped)
	default:
		return fmt.Sprintf("load %s: %v", e.Path, e.Wrapped)
	}
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrDataLoad, e.Wrapped}
}
