package render

import (
	"math"

	"github.com/san-kum/pendplot/internal/figure"
)

// dotBits maps a sub-pixel inside a braille cell (4 rows x 2 columns) to its
// bit in the U+2800 block.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// viewport is the data-space rectangle shown on a canvas.
type viewport struct {
	minX, maxX float64
	minY, maxY float64
}

// fitViewport bounds every point of series and pads each side by frac of the
// range. A zero range is widened to 1.
func fitViewport(series []figure.Series, frac float64) (viewport, bool) {
	v := viewport{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, s := range series {
		for i := range s.X {
			v.minX, v.maxX = math.Min(v.minX, s.X[i]), math.Max(v.maxX, s.X[i])
			v.minY, v.maxY = math.Min(v.minY, s.Y[i]), math.Max(v.maxY, s.Y[i])
		}
	}
	if math.IsInf(v.minX, 1) {
		return v, false
	}
	padX := spanOrOne(v.maxX-v.minX) * frac
	padY := spanOrOne(v.maxY-v.minY) * frac
	v.minX, v.maxX = v.minX-padX, v.maxX+padX
	v.minY, v.maxY = v.minY-padY, v.maxY+padY
	return v, true
}

func spanOrOne(d float64) float64 {
	if d == 0 {
		return 1
	}
	return d
}

// brailleCanvas holds one byte of dots per character cell.
type brailleCanvas struct {
	cols, rows int
	cells      []uint8
	view       viewport
}

func newBrailleCanvas(cols, rows int, view viewport) *brailleCanvas {
	return &brailleCanvas{
		cols:  cols,
		rows:  rows,
		cells: make([]uint8, cols*rows),
		view:  view,
	}
}

func (c *brailleCanvas) dot(px, py int) {
	if px < 0 || py < 0 || px >= c.cols*2 || py >= c.rows*4 {
		return
	}
	c.cells[(py/4)*c.cols+px/2] |= dotBits[py%4][px%2]
}

// line draws between two sub-pixels with Bresenham's algorithm.
func (c *brailleCanvas) line(x0, y0, x1, y1 int) {
	dx, sx := stepOf(x1 - x0)
	dy, sy := stepOf(y1 - y0)
	err := dx - dy
	for {
		c.dot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func stepOf(d int) (abs, step int) {
	if d < 0 {
		return -d, -1
	}
	return d, 1
}

// project maps a data point to a sub-pixel. y grows downwards on screen.
func (c *brailleCanvas) project(x, y float64) (int, int) {
	w := float64(c.cols*2 - 1)
	h := float64(c.rows*4 - 1)
	px := (x - c.view.minX) / (c.view.maxX - c.view.minX) * w
	py := (y - c.view.minY) / (c.view.maxY - c.view.minY) * h
	return int(px), int(h) - int(py)
}

// polyline connects consecutive points. A single point is drawn as a dot.
func (c *brailleCanvas) polyline(xs, ys []float64) {
	for i := range xs {
		x1, y1 := c.project(xs[i], ys[i])
		if i == 0 {
			c.dot(x1, y1)
			continue
		}
		x0, y0 := c.project(xs[i-1], ys[i-1])
		c.line(x0, y0, x1, y1)
	}
}

func (c *brailleCanvas) lines() []string {
	out := make([]string, c.rows)
	row := make([]rune, c.cols)
	for r := range out {
		for col := range row {
			row[col] = brailleBlank + rune(c.cells[r*c.cols+col])
		}
		out[r] = string(row)
	}
	return out
}
