package term

import (
	"image/color"
	"strings"
	"testing"

	"lifecanvas/internal/render"
	"lifecanvas/pkg/life"
)

func TestCanvasMapsCellsToCharacters(t *testing.T) {
	g, _ := life.NewGrid(4, 3)
	g.Set(0, 0, life.Alive)
	g.Set(1, 2, life.Alive)
	g.Set(2, 3, life.Alive)

	p := render.DefaultPalette()
	c := NewCanvas(4, 3, life.CellSize)
	render.Draw(c, g, life.CellSize, p)

	glyph := func(col color.Color) string {
		if SameColor(col, p.Foreground) {
			return "#"
		}
		return "."
	}
	var b strings.Builder
	cropped, err := c.Write(&b, glyph, 80, 24)
	if err != nil {
		t.Fatal(err)
	}
	if cropped {
		t.Fatal("4x3 canvas must fit an 80x24 view")
	}
	want := "#...\n..#.\n...#"
	if b.String() != want {
		t.Fatalf("canvas:\n%s\nexpected:\n%s", b.String(), want)
	}
}

func TestCanvasCrops(t *testing.T) {
	c := NewCanvas(5, 5, 1)
	c.SetFillColor(color.Black)
	c.FillRect(0, 0, 5, 5)

	var b strings.Builder
	cropped, _ := c.Write(&b, func(color.Color) string { return "x" }, 2, 3)
	if !cropped {
		t.Fatal("expected crop")
	}
	if b.String() != "xx\nxx\nxx" {
		t.Fatalf("unexpected cropped output %q", b.String())
	}
}

func TestCanvasAtAndClipping(t *testing.T) {
	c := NewCanvas(2, 2, 10)
	c.SetFillColor(color.White)
	c.FillRect(-30, -30, 40, 40)
	if !SameColor(c.At(0, 0), color.White) {
		t.Fatal("partially visible rect must paint (0,0)")
	}
	if c.At(1, 1) != nil {
		t.Fatal("(1,1) must stay unpainted")
	}
	if c.At(5, 0) != nil {
		t.Fatal("out of range At must return nil")
	}
	if SameColor(color.White, nil) || !SameColor(nil, nil) {
		t.Fatal("SameColor nil handling")
	}
}

func TestFieldTextKeepsWarningVisible(t *testing.T) {
	g, _ := life.NewGrid(3, 5)
	p := render.DefaultPalette()
	c := NewCanvas(3, 5, life.CellSize)
	render.Draw(c, g, life.CellSize, p)
	glyph := func(color.Color) string { return "." }

	lines := strings.Split(fieldText(c, glyph, 10, 3), "\n")
	if len(lines) != 3 {
		t.Fatalf("cropped field has %d lines, want 3", len(lines))
	}
	if lines[0] != "..." || lines[1] != "..." {
		t.Fatalf("unexpected field rows %q", lines[:2])
	}
	if !strings.Contains(lines[2], cropWarning) {
		t.Fatalf("last visible line %q must carry the crop warning", lines[2])
	}

	lines = strings.Split(fieldText(c, glyph, 10, 6), "\n")
	if len(lines) != 5 {
		t.Fatalf("uncropped field has %d lines, want 5", len(lines))
	}
}
