package term

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"lifecanvas/internal/app"
	icore "lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/ui"
	"lifecanvas/pkg/life"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	viewHeader = "header"
	viewConfig = "configuration"
	viewStatus = "status"
	viewField  = "field"
	viewHelp   = "help"

	leftColumnWidth = 28
	minWindowHeight = 14

	// The interval can change at runtime, so the pump polls at a fixed
	// rate and leaves pacing to the session.
	pumpPeriod = 20 * time.Millisecond

	cropWarning = "The universe is larger than the viewing area"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is an interactive terminal frontend for a Session. Every mutation of
// the session happens on gocui's main loop.
type Console struct {
	s       *app.Session
	g       *gocui.Gui
	canvas  *Canvas
	palette render.Palette
	keys    []keyBinding
	// index into s.ParameterControls()
	selected int

	liveFiller string
	deadFiller string
}

// NewConsole initialises the terminal and key bindings.
func NewConsole(s *app.Session) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: init gui: %w", err)
	}
	size := s.Universe().Size()
	c := &Console{
		s:          s,
		g:          g,
		canvas:     NewCanvas(size.W, size.H, s.Universe().CellSize()),
		palette:    render.DefaultPalette(),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	g.Mouse = true
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{'n', "N", "Next step", c.cmdStep, ""},
		{'r', "R", "Run", c.cmdRun, ""},
		{'s', "S", "Stop", c.cmdStop, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'w', "W", "Reseed", c.cmdReseed, ""},
		{gocui.KeyTab, "TAB", "Select setting", c.cmdSelect, ""},
		{'+', "+", "Increase", c.cmdIncrease, ""},
		{'-', "-", "Decrease", c.cmdDecrease, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdClick, viewField},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("term: bind %s: %w", kb.name, err)
		}
	}
	return c, nil
}

// Run drives the console until the user quits or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	defer c.g.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.pump(ctx)

	if err := c.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// pump wakes the main loop so a running session can advance. It never touches
// the session itself.
func (c *Console) pump(ctx context.Context) {
	t := time.NewTicker(pumpPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			c.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case now := <-t.C:
			c.g.Update(func(*gocui.Gui) error {
				c.s.Advance(now)
				return nil
			})
		}
	}
}

func (c *Console) glyph(col color.Color) string {
	if SameColor(col, c.palette.Foreground) {
		return c.liveFiller
	}
	return c.deadFiller
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxY < minWindowHeight {
		if err := c.header(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		for _, name := range []string{viewConfig, viewStatus, viewField, viewHelp} {
			_ = g.DeleteView(name)
		}
		return nil
	}
	if err := c.header(g, 2, "Game of Life on a torus"); err != nil {
		return err
	}

	split := 3 + (maxY-5-3)/2
	if v, err := g.SetView(viewConfig, 0, 3, leftColumnWidth, split); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Configuration"
	}
	if v, err := g.SetView(viewStatus, 0, split+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(viewField, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Universe"
	}
	if v, err := g.SetView(viewHelp, -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		c.renderHelp(v)
	}

	if v, err := g.View(viewConfig); err == nil {
		c.renderConfig(v)
	}
	if v, err := g.View(viewStatus); err == nil {
		c.renderStatus(v)
	}
	if v, err := g.View(viewField); err == nil {
		c.renderField(v)
	}
	return nil
}

func (c *Console) header(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(viewHeader, -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := (maxX - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	_, _ = fmt.Fprintf(v, "\n%*s%s", pad, "", text)
	return nil
}

func (c *Console) renderField(v *gocui.View) {
	v.Clear()
	u := c.s.Universe()
	size := u.Size()
	if c.canvas.cols != size.W || c.canvas.rows != size.H {
		c.canvas = NewCanvas(size.W, size.H, u.CellSize())
	}
	render.Draw(c.canvas, u.Grid(), u.CellSize(), c.palette)

	maxW, maxH := v.Size()
	_, _ = io.WriteString(v, fieldText(c.canvas, c.glyph, maxW, maxH))
}

// fieldText renders the canvas into a maxW x maxH view. When the canvas does
// not fit, the last visible row is given up for a warning.
func fieldText(canvas *Canvas, glyph func(color.Color) string, maxW, maxH int) string {
	rows := maxH
	if canvas.cols > maxW || canvas.rows > maxH {
		rows = min(canvas.rows, maxH-1)
	}
	var b bytes.Buffer
	cropped, _ := canvas.Write(&b, glyph, maxW, rows)
	if cropped {
		if rows > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(aurora.Red(cropWarning).BgBlack().String())
	}
	return b.String()
}

func (c *Console) renderStatus(v *gocui.View) {
	v.Clear()
	u := c.s.Universe()
	st := ui.Status{Generation: u.Generation(), Population: u.Grid().Population(), Running: c.s.Running()}
	for _, f := range st.Fields() {
		value := f.Value
		if f.Label == "Mode" && st.Running {
			value = aurora.Cyan(value).String()
		}
		_, _ = fmt.Fprintln(v, prop(f.Label, value))
	}
}

func (c *Console) renderConfig(v *gocui.View) {
	v.Clear()
	for i, ctl := range c.s.ParameterControls() {
		label := ctl.Label
		if i == c.selected {
			label = "> " + label
		}
		_, _ = fmt.Fprintln(v, prop(label, ui.FormatValue(ctl)))
	}
	if p := c.s.Config().Pattern; p != "" {
		_, _ = fmt.Fprintln(v, prop("Pattern", p))
	}
}

func (c *Console) renderHelp(v *gocui.View) {
	var b bytes.Buffer
	b.WriteString("KEYBINDINGS: ")
	for i, k := range c.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	_, _ = fmt.Fprintln(v, b.String())
}

func prop(name, value string) string {
	return " " + aurora.Colorize(name, aurora.GreenFg).String() + ": " + value
}

func (c *Console) cmdQuit(_ *gocui.View) error { return gocui.ErrQuit }

func (c *Console) cmdStep(_ *gocui.View) error {
	c.s.Step()
	return nil
}

func (c *Console) cmdRun(_ *gocui.View) error {
	c.s.SetRunning(true)
	return nil
}

func (c *Console) cmdStop(_ *gocui.View) error {
	c.s.SetRunning(false)
	return nil
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.s.Clear()
	return nil
}

func (c *Console) cmdReseed(_ *gocui.View) error {
	return c.s.Reset()
}

func (c *Console) cmdSelect(_ *gocui.View) error {
	c.selected = (c.selected + 1) % len(c.s.ParameterControls())
	return nil
}

func (c *Console) cmdIncrease(_ *gocui.View) error { return c.adjust(1) }

func (c *Console) cmdDecrease(_ *gocui.View) error { return c.adjust(-1) }

func (c *Console) adjust(steps int) error {
	icore.Adjust(c.s, c.s.ParameterControls()[c.selected].Key, steps)
	return nil
}

func (c *Console) cmdClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	if err := c.s.Toggle(cx, cy); err != nil && !errors.Is(err, life.ErrOutOfBounds) {
		return err
	}
	return nil
}
