//go:build ebiten

package app

import (
	"log"
	"time"

	icore "lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette
	vector  bool

	selected int
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	size := s.Universe().Size()
	cellSize := s.Universe().CellSize()
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.W, size.H, cellSize),
		overlay: ui.NewOverlay(size, cellSize),
		hud:     ui.NewHUD(),
		palette: render.DefaultPalette(),
		vector:  s.Config().Renderer == RendererVector,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.SetRunning(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	g.updateParameters()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if err := g.session.Click(float64(mx), float64(my)); err != nil {
			log.Printf("click (%d,%d): %v", mx, my, err)
		}
	}

	g.overlay.Update()
	g.session.Advance(time.Now())
	return nil
}

// updateParameters cycles the selected control with Tab, adjusts it with the
// arrow keys and toggles the parameter panel with H.
func (g *Game) updateParameters() {
	controls := g.session.ParameterControls()
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selected = (g.selected + 1) % len(controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.ShowParameters = !g.hud.ShowParameters
	}
	steps := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		steps++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		steps--
	}
	if steps == 0 || !icore.Adjust(g.session, controls[g.selected].Key, steps) {
		return
	}
	size := g.session.Universe().Size()
	if g.painter.Fits(size.W, size.H) {
		return
	}
	cellSize := g.session.Universe().CellSize()
	g.painter = render.NewGridPainter(size.W, size.H, cellSize)
	g.overlay.Resize(size)
	ebiten.SetWindowSize(g.painter.Size())
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	u := g.session.Universe()
	if g.vector {
		render.Draw(render.NewImageSurface(screen), u.Grid(), u.CellSize(), g.palette)
	} else {
		g.painter.Blit(screen, u.Grid(), g.palette)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, ui.Status{
		Generation: u.Generation(),
		Population: u.Grid().Population(),
		Running:    g.session.Running(),
	}, ui.ParamLines(g.session.ParameterControls(), g.selected))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
