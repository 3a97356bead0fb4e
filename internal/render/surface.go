package render

import (
	"image/color"

	"lifecanvas/pkg/core"
	"lifecanvas/pkg/life"
)

// Surface is the minimal 2D drawing API the adapter needs.
type Surface interface {
	SetFillColor(c color.Color)
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
}

// Palette holds the two colors a grid is painted with.
type Palette struct {
	Background color.Color
	Foreground color.Color
}

// DefaultPalette paints live cells black on white.
func DefaultPalette() Palette {
	return Palette{Background: color.White, Foreground: color.Black}
}

// Draw clears the canvas covered by g and fills one square per live cell, in
// ascending index order.
func Draw(s Surface, g *life.Grid, cellSize float64, p Palette) {
	w, h := CanvasSize(g.Size(), cellSize)
	s.SetFillColor(p.Background)
	s.ClearRect(0, 0, w, h)

	s.SetFillColor(p.Foreground)
	width := g.Width()
	for i, c := range g.Cells() {
		if c != life.Alive {
			continue
		}
		col := i % width
		row := i / width
		s.FillRect(float64(col)*cellSize, float64(row)*cellSize, cellSize, cellSize)
	}
}

// CanvasSize returns the pixel dimensions of a grid drawn at cellSize.
func CanvasSize(size core.Size, cellSize float64) (w, h float64) {
	return float64(size.W) * cellSize, float64(size.H) * cellSize
}
