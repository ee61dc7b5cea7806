package render

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/pendplot/internal/figure"
)

// Renderer draws one figure. Calls are sequential; a Renderer returns only
// once the figure is fully written or dismissed.
type Renderer interface {
	Render(ctx context.Context, fig *figure.Figure) error
}

// FileFormats lists the formats the file backend accepts.
var FileFormats = []string{"png", "svg", "pdf", "eps", "jpg", "tif"}

func IsFileFormat(format string) bool {
	for _, f := range FileFormats {
		if f == format {
			return true
		}
	}
	return false
}

func validate(fig *figure.Figure) error {
	for _, p := range fig.Panels {
		for _, s := range p.Series {
			if len(s.X) != len(s.Y) {
				return fmt.Errorf("%w: %q has %d x and %d y values", ErrShape, s.Label, len(s.X), len(s.Y))
			}
			for i := range s.X {
				if !finite(s.X[i]) || !finite(s.Y[i]) {
					return fmt.Errorf("%w: %q point %d is (%g, %g)", ErrNonFinite, s.Label, i, s.X[i], s.Y[i])
				}
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
