package render

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/pendplot/internal/figure"
)

// File writes every figure to Dir/<name>.<Format> with gonum/plot.
// Width and Height are in inches for the whole figure.
type File struct {
	Dir    string
	Format string
	Width  float64
	Height float64
}

func NewFile(dir, format string, width, height float64) *File {
	return &File{Dir: dir, Format: format, Width: width, Height: height}
}

// Path returns where fig is written.
func (r *File) Path(fig *figure.Figure) string {
	return filepath.Join(r.Dir, fig.Name+"."+r.Format)
}

func (r *File) Render(ctx context.Context, fig *figure.Figure) error {
	if err := ctx.Err(); err != nil {
		return r.fail(fig, err)
	}
	if !IsFileFormat(r.Format) {
		return r.fail(fig, fmt.Errorf("%w: %q", ErrFormat, r.Format))
	}
	if err := validate(fig); err != nil {
		return r.fail(fig, err)
	}

	plots := make([]*plot.Plot, 0, len(fig.Panels))
	for _, panel := range fig.Panels {
		p, err := buildPlot(panel)
		if err != nil {
			return r.fail(fig, err)
		}
		plots = append(plots, p)
	}

	c, err := draw.NewFormattedCanvas(vg.Length(r.Width)*vg.Inch, vg.Length(r.Height)*vg.Inch, r.Format)
	if err != nil {
		return r.fail(fig, err)
	}
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, draw.New(c))
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return r.fail(fig, err)
	}
	path := r.Path(fig)
	f, err := os.Create(path)
	if err != nil {
		return r.fail(fig, err)
	}
	bw := bufio.NewWriter(f)
	if _, err := c.WriteTo(bw); err != nil {
		f.Close()
		return r.fail(fig, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return r.fail(fig, err)
	}
	if err := f.Close(); err != nil {
		return r.fail(fig, err)
	}

	zap.L().Info("figure written", zap.String("figure", fig.Name), zap.String("path", path))
	return nil
}

func (r *File) fail(fig *figure.Figure, err error) error {
	return &RenderError{Figure: fig.Name, Backend: r.Format, Wrapped: err}
}

func buildPlot(panel figure.Panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel
	p.Legend.Top = true

	if panel.Grid {
		p.Add(plotter.NewGrid())
	}

	for _, s := range panel.Series {
		pts := make(plotter.XYs, len(s.X))
		for i := range s.X {
			pts[i].X = s.X[i]
			pts[i].Y = s.Y[i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Label, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(s.Color)
		if s.Line == figure.Dashed {
			line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)

		if len(s.X) == 1 {
			// a lone sample draws no segment; mark it
			dot, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.Label, err)
			}
			dot.GlyphStyle.Color = line.LineStyle.Color
			p.Add(dot)
		}

		if panel.Legend && s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}
	return p, nil
}
