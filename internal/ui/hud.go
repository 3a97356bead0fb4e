//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 4
	hudLineHeight = 13
)

// HUD draws the status bar and the adjustable parameters over the top-left
// corner of the grid.
type HUD struct {
	panel          *ebiten.Image
	lastW, lastH   int
	ShowParameters bool
}

// NewHUD constructs a HUD.
func NewHUD() *HUD { return &HUD{ShowParameters: true} }

// Draw paints s and, when enabled, the parameter lines onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status, params []string) {
	if h == nil {
		return
	}
	lines := []string{s.String()}
	if h.ShowParameters {
		lines = append(lines, params...)
	}
	width := 0
	for _, l := range lines {
		if w := text.BoundString(basicfont.Face7x13, l).Dx(); w > width {
			width = w
		}
	}
	width += 2 * hudPadding
	height := len(lines)*hudLineHeight + 2*hudPadding
	if h.panel == nil || h.lastW != width || h.lastH != height {
		h.panel = ebiten.NewImage(width, height)
		h.lastW, h.lastH = width, height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, l := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(h.panel, l, basicfont.Face7x13, hudPadding, y, color.White)
	}
	screen.DrawImage(h.panel, nil)
}
