package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pendplot/internal/figure"
)

// Presenter shows a drawn figure and returns once it has been dismissed.
type Presenter interface {
	Present(ctx context.Context, title, body string) error
}

// WriterPresenter prints figures without waiting, for piped output.
type WriterPresenter struct {
	W io.Writer
}

func (p WriterPresenter) Present(ctx context.Context, title, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.W, "%s\n\n%s\n", title, body)
	return err
}

var palette = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

// Terminal draws panels as text: time series with asciigraph, parametric
// panels on a braille canvas. Width and Height are in character cells.
type Terminal struct {
	Width     int
	Height    int
	Presenter Presenter
}

func NewTerminal(width, height int, p Presenter) *Terminal {
	return &Terminal{Width: width, Height: height, Presenter: p}
}

func (r *Terminal) Render(ctx context.Context, fig *figure.Figure) error {
	if err := validate(fig); err != nil {
		return r.fail(fig, err)
	}
	if err := r.Presenter.Present(ctx, fig.Title, r.Draw(fig)); err != nil {
		return r.fail(fig, err)
	}
	return nil
}

func (r *Terminal) fail(fig *figure.Figure, err error) error {
	return &RenderError{Figure: fig.Name, Backend: "term", Wrapped: err}
}

// Draw returns the text of every panel, separated by blank lines.
func (r *Terminal) Draw(fig *figure.Figure) string {
	parts := make([]string, 0, len(fig.Panels))
	for _, panel := range fig.Panels {
		if panel.Parametric {
			parts = append(parts, r.drawParametric(panel))
		} else {
			parts = append(parts, r.drawTimeSeries(panel))
		}
	}
	return strings.Join(parts, "\n\n")
}

func (r *Terminal) drawTimeSeries(panel figure.Panel) string {
	data := make([][]float64, 0, len(panel.Series))
	colors := make([]asciigraph.AnsiColor, 0, len(panel.Series))
	legends := make([]string, 0, len(panel.Series))
	longest := 0
	var xs []float64

	for _, s := range panel.Series {
		if s.Len() == 0 {
			continue
		}
		data = append(data, s.Y)
		colors = append(colors, palette[s.Color%len(palette)])
		label := s.Label
		if s.Line == figure.Dashed {
			label += " (dashed)"
		}
		legends = append(legends, label)
		if s.Len() > longest {
			longest = s.Len()
			xs = s.X
		}
	}
	if len(data) == 0 {
		return panel.Title + "\n(no data)"
	}

	caption := panel.Title
	if panel.YLabel != "" {
		caption = fmt.Sprintf("%s [%s]", panel.Title, panel.YLabel)
	}
	opts := []asciigraph.Option{
		asciigraph.Height(r.Height),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	}
	if longest > 1 {
		opts = append(opts, asciigraph.Width(r.Width))
	}
	if panel.Legend {
		opts = append(opts, asciigraph.SeriesLegends(legends...))
	}

	graph := asciigraph.PlotMany(data, opts...)
	return graph + "\n" + axisLine(panel.XLabel, xs[0], xs[len(xs)-1])
}

func (r *Terminal) drawParametric(panel figure.Panel) string {
	view, ok := fitViewport(panel.Series, 0.1)
	if !ok {
		return panel.Title + "\n(no data)"
	}
	c := newBrailleCanvas(r.Width, r.Height, view)
	for _, s := range panel.Series {
		c.polyline(s.X, s.Y)
	}

	yLabels := []string{fmt.Sprintf("%.3f", view.maxY), fmt.Sprintf("%.3f", (view.maxY+view.minY)/2), fmt.Sprintf("%.3f", view.minY)}
	pad := 0
	for _, l := range yLabels {
		pad = max(pad, len(l))
	}

	var sb strings.Builder
	sb.WriteString(panel.Title)
	if panel.YLabel != "" {
		fmt.Fprintf(&sb, " [%s]", panel.YLabel)
	}
	sb.WriteString("\n")
	for i, row := range c.lines() {
		label := ""
		switch i {
		case 0:
			label = yLabels[0]
		case r.Height / 2:
			label = yLabels[1]
		case r.Height - 1:
			label = yLabels[2]
		}
		fmt.Fprintf(&sb, "%*s │%s\n", pad, label, row)
	}
	sb.WriteString(axisLine(panel.XLabel, view.minX, view.maxX))
	return sb.String()
}

func axisLine(label string, lo, hi float64) string {
	if label == "" {
		label = "x"
	}
	return fmt.Sprintf("%s: %.3f .. %.3f", label, lo, hi)
}
