package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"lifecanvas/pkg/life"
)

func TestPixelSurfacePaintsGrid(t *testing.T) {
	g, _ := life.NewGrid(2, 2)
	g.Set(0, 1, life.Alive)

	s := NewPixelSurface(4, 4)
	Draw(s, g, 2, DefaultPalette())

	img := s.Image()
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := white
			if x >= 2 && y < 2 {
				want = black
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d)=%v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestPixelSurfaceClipsRects(t *testing.T) {
	s := NewPixelSurface(3, 3)
	s.SetFillColor(color.RGBA{R: 9, A: 255})
	s.FillRect(2, 2, 10, 10)
	s.FillRect(-5, -5, 2, 2)

	if got := s.Image().RGBAAt(2, 2); got.R != 9 {
		t.Fatalf("pixel inside clipped rect not painted: %v", got)
	}
	if got := s.Image().RGBAAt(0, 0); got.A != 0 {
		t.Fatalf("rect fully outside the buffer painted (0,0): %v", got)
	}
	if len(s.Pix()) != 3*3*4 {
		t.Fatalf("unexpected buffer length %d", len(s.Pix()))
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	g, _ := life.NewGrid(3, 2)
	g.Set(1, 1, life.Alive)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, g, 4, DefaultPalette()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("image bounds %v, expected 12x8", b)
	}
	if r, _, _, _ := img.At(5, 5).RGBA(); r != 0 {
		t.Fatal("live cell must be painted black")
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xffff {
		t.Fatal("dead cell must be painted white")
	}
}
