package render

import (
	"image"
	"image/color"
	"math"
)

// PixelSurface rasterises draw calls into an RGBA buffer. Rectangles are
// clipped to the buffer bounds.
type PixelSurface struct {
	img  *image.RGBA
	fill [4]byte
}

// NewPixelSurface allocates a w x h pixel buffer.
func NewPixelSurface(w, h int) *PixelSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (p *PixelSurface) Image() *image.RGBA { return p.img }

// Pix exposes the raw RGBA bytes, row-major, four bytes per pixel.
func (p *PixelSurface) Pix() []byte { return p.img.Pix }

// SetFillColor selects the color used by the next clear or fill.
func (p *PixelSurface) SetFillColor(c color.Color) { p.fill = rgba(c) }

// ClearRect paints the rectangle with the current fill color.
func (p *PixelSurface) ClearRect(x, y, w, h float64) { p.paint(x, y, w, h) }

// FillRect paints the rectangle with the current fill color.
func (p *PixelSurface) FillRect(x, y, w, h float64) { p.paint(x, y, w, h) }

func (p *PixelSurface) paint(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Floor(x+w)), int(math.Floor(y+h)),
	).Intersect(p.img.Rect)
	if r.Empty() {
		return
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		base := p.img.PixOffset(r.Min.X, py)
		for px := r.Min.X; px < r.Max.X; px++ {
			copy(p.img.Pix[base:base+4], p.fill[:])
			base += 4
		}
	}
}

func rgba(c color.Color) [4]byte {
	if c == nil {
		return [4]byte{}
	}
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
