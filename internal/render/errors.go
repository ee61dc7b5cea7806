package render

import (
	"errors"
	"fmt"
)

var (
	// ErrRender matches every failure to draw or write a figure.
	ErrRender = errors.New("render: figure could not be drawn")

	// ErrShape indicates a series whose X and Y lengths differ.
	ErrShape = errors.New("render: series x and y lengths differ")

	// ErrNonFinite indicates a NaN or infinite point.
	ErrNonFinite = errors.New("render: non-finite data point")

	// ErrFormat indicates an output format no backend supports.
	ErrFormat = errors.New("render: unsupported output format")
)

type RenderError struct {
	Figure  string
	Backend string
	Wrapped error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s (%s): %v", e.Figure, e.Backend, e.Wrapped)
}

func (e *RenderError) Unwrap() []error {
	return []error{ErrRender, e.Wrapped}
}
