package render

import (
	"image/png"
	"io"

	"lifecanvas/pkg/life"
)

// EncodePNG draws g at cellSize and writes the result as a PNG image.
func EncodePNG(w io.Writer, g *life.Grid, cellSize float64, p Palette) error {
	cw, ch := CanvasSize(g.Size(), cellSize)
	s := NewPixelSurface(int(cw), int(ch))
	Draw(s, g, cellSize, p)
	return png.Encode(w, s.Image())
}
