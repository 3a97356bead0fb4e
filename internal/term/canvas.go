package term

import (
	"image/color"
	"io"
	"math"
	"strings"
)

// Canvas is a render.Surface whose pixels are terminal character cells. Pixel
// coordinates are divided by cellSize, so a grid drawn at cellSize maps each
// grid cell onto one character.
type Canvas struct {
	cols, rows int
	cellSize   float64
	cells      []color.Color
	fill       color.Color
}

// NewCanvas allocates a cols x rows character canvas.
func NewCanvas(cols, rows int, cellSize float64) *Canvas {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Canvas{cols: cols, rows: rows, cellSize: cellSize, cells: make([]color.Color, cols*rows)}
}

// SetFillColor selects the color used by the next clear or fill.
func (c *Canvas) SetFillColor(col color.Color) { c.fill = col }

// ClearRect paints the covered characters with the current fill color.
func (c *Canvas) ClearRect(x, y, w, h float64) { c.paint(x, y, w, h) }

// FillRect paints the covered characters with the current fill color.
func (c *Canvas) FillRect(x, y, w, h float64) { c.paint(x, y, w, h) }

func (c *Canvas) paint(x, y, w, h float64) {
	c0 := clamp(int(math.Floor(x/c.cellSize)), c.cols)
	r0 := clamp(int(math.Floor(y/c.cellSize)), c.rows)
	c1 := clamp(int(math.Ceil((x+w)/c.cellSize)), c.cols)
	r1 := clamp(int(math.Ceil((y+h)/c.cellSize)), c.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.cells[row*c.cols+col] = c.fill
		}
	}
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

// At returns the color of the character at (col, row), or nil if unpainted.
func (c *Canvas) At(col, row int) color.Color {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return nil
	}
	return c.cells[row*c.cols+col]
}

// Write prints the canvas row by row, mapping each color to a string with
// glyph. Output is cropped to maxCols x maxRows; the return value reports
// whether anything was cut off.
func (c *Canvas) Write(w io.Writer, glyph func(color.Color) string, maxCols, maxRows int) (cropped bool, err error) {
	cols, rows := c.cols, c.rows
	if cols > maxCols {
		cols, cropped = maxCols, true
	}
	if rows > maxRows {
		rows, cropped = maxRows, true
	}
	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			b.WriteString(glyph(c.cells[row*c.cols+col]))
		}
	}
	_, err = io.WriteString(w, b.String())
	return cropped, err
}

// SameColor reports whether a and b resolve to the same RGBA value.
func SameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
