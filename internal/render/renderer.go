//go:build ebiten

package render

import (
	"image/color"

	"lifecanvas/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter rasterises a grid on the CPU and uploads it as one image.
type GridPainter struct {
	w, h     int
	cellSize float64
	img      *ebiten.Image
	surface  *PixelSurface
}

// NewGridPainter allocates a painter for a grid of size w*h cells.
func NewGridPainter(w, h int, cellSize float64) *GridPainter {
	cw, ch := int(float64(w)*cellSize), int(float64(h)*cellSize)
	return &GridPainter{
		w:        w,
		h:        h,
		cellSize: cellSize,
		img:      ebiten.NewImage(cw, ch),
		surface:  NewPixelSurface(cw, ch),
	}
}

// Blit draws g into the painter image and copies it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, p Palette) {
	if !gp.Fits(g.Width(), g.Height()) {
		return
	}
	Draw(gp.surface, g, gp.cellSize, p)
	gp.img.WritePixels(gp.surface.Pix())
	dst.DrawImage(gp.img, nil)
}

// Fits reports whether the painter was allocated for a w*h grid.
func (gp *GridPainter) Fits(w, h int) bool { return gp.w == w && gp.h == h }

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.img.Bounds().Dx(), gp.img.Bounds().Dy() }

// ImageSurface issues draw calls straight onto an ebiten image.
type ImageSurface struct {
	dst  *ebiten.Image
	fill color.Color
}

// NewImageSurface wraps dst.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{dst: dst, fill: color.Black}
}

// SetFillColor selects the color used by the next clear or fill.
func (s *ImageSurface) SetFillColor(c color.Color) { s.fill = c }

// ClearRect paints the rectangle with the current fill color.
func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}

// FillRect paints the rectangle with the current fill color.
func (s *ImageSurface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}
