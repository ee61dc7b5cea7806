// Package figure describes plots independently of the backend that draws them.
package figure

import (
	"strings"
	"unicode"
)

type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
)

// Series is one plotted line. X and Y have equal length and keep input order.
type Series struct {
	Label string
	X     []float64
	Y     []float64
	Color int
	Line  LineStyle
}

func (s Series) Len() int { return len(s.Y) }

type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
	Legend bool
	Grid   bool
	// Parametric panels plot Y against an arbitrary X (phase portraits)
	// rather than against a monotonic time axis.
	Parametric bool
}

// Figure is a row of panels shown or saved together. Name is file-safe.
type Figure struct {
	Name   string
	Title  string
	Panels []Panel
}

// Slug turns a title into a file-safe name.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
