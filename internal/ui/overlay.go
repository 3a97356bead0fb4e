//go:build ebiten

package ui

import (
	"image/color"

	"lifecanvas/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional visual aids on top of the grid.
type Overlay struct {
	size      core.Size
	cellSize  float64
	showLines bool
	lines     *ebiten.Image
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, cellSize float64) *Overlay {
	return &Overlay{size: size, cellSize: cellSize}
}

// Resize drops the cached lines when the grid dimensions change.
func (o *Overlay) Resize(size core.Size) {
	if size == o.size {
		return
	}
	o.size = size
	o.lines = nil
}

// Update toggles grid lines with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	// Lines would cover the whole cell below 3px.
	if !o.showLines || o.cellSize < 3 {
		return
	}
	if o.lines == nil {
		o.lines = o.buildLines()
	}
	screen.DrawImage(o.lines, nil)
}

func (o *Overlay) buildLines() *ebiten.Image {
	w := float32(float64(o.size.W) * o.cellSize)
	h := float32(float64(o.size.H) * o.cellSize)
	img := ebiten.NewImage(int(w), int(h))
	c := color.RGBA{R: 120, G: 120, B: 140, A: 90}
	cs := float32(o.cellSize)
	for col := 1; col < o.size.W; col++ {
		x := float32(col) * cs
		vector.StrokeLine(img, x, 0, x, h, 1, c, false)
	}
	for row := 1; row < o.size.H; row++ {
		y := float32(row) * cs
		vector.StrokeLine(img, 0, y, w, y, 1, c, false)
	}
	return img
}
