package life

import (
	"errors"
	"math"
	"testing"

	"lifecanvas/pkg/core"
)

func emptyUniverse(t *testing.T, w, h int) *Universe {
	t.Helper()
	u, err := New(w, h, 0, core.NewRNG(1))
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	return u
}

func TestNewFullProbability(t *testing.T) {
	u, err := New(10, 10, 1.0, core.NewRNG(99))
	if err != nil {
		t.Fatal(err)
	}
	if u.Grid().Population() != 100 {
		t.Fatalf("probability 1.0 must seed every cell, got %d", u.Grid().Population())
	}
	if u.Generation() != 0 {
		t.Fatal("fresh universe must be at generation 0")
	}
}

func TestNewSeedsInIndexOrder(t *testing.T) {
	u, err := New(2, 2, 0.5, core.NewSequence(0.1, 0.9, 0.5, 0.49))
	if err != nil {
		t.Fatal(err)
	}
	want := []Cell{Alive, Dead, Dead, Alive}
	for i, c := range u.Grid().Cells() {
		if c != want[i] {
			t.Fatalf("cell %d = %v, expected %v", i, c, want[i])
		}
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	if _, err := New(0, 5, 0.5, nil); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("zero width err=%v", err)
	}
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		if _, err := New(5, 5, p, nil); !errors.Is(err, ErrInvalidProbability) {
			t.Fatalf("probability %v err=%v", p, err)
		}
	}
}

func TestSameSeedSameUniverse(t *testing.T) {
	a, _ := New(20, 15, 0.3, core.NewRNG(42))
	b, _ := New(20, 15, 0.3, core.NewRNG(42))
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("identical seeds must produce identical grids")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	u, _ := New(8, 6, 0.4, core.NewRNG(5))
	before := u.Grid().Clone()

	if err := u.Toggle(7, 2); err != nil {
		t.Fatal(err)
	}
	if u.Grid().Get(2, 7) == before.Get(2, 7) {
		t.Fatal("toggle must flip column 7, row 2")
	}
	diff := 0
	for i, c := range u.Grid().Cells() {
		if c != before.Cells()[i] {
			diff++
		}
	}
	if diff != 1 {
		t.Fatalf("toggle changed %d cells", diff)
	}

	if err := u.Toggle(7, 2); err != nil {
		t.Fatal(err)
	}
	if !u.Grid().Equal(before) {
		t.Fatal("second toggle must restore the grid")
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	u, _ := New(8, 6, 0.4, core.NewRNG(5))
	before := u.Grid().Clone()
	for _, xy := range [][2]int{{8, 0}, {0, 6}, {-1, 0}, {0, -1}} {
		if err := u.Toggle(xy[0], xy[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) err=%v", xy[0], xy[1], err)
		}
	}
	if !u.Grid().Equal(before) {
		t.Fatal("rejected toggles must leave the grid unchanged")
	}
}

func TestGliderTranslates(t *testing.T) {
	u := emptyUniverse(t, 10, 10)
	u.Stamp(Glider, 1, 1)

	want := emptyUniverse(t, 10, 10)
	want.Stamp(Glider, 2, 2)

	for i := 0; i < 4; i++ {
		u.Tick()
	}
	if !u.Grid().Equal(want.Grid()) {
		t.Fatalf("glider after 4 ticks: %v, expected %v", aliveSet(u.Grid()), aliveSet(want.Grid()))
	}
	if u.Generation() != 4 {
		t.Fatalf("generation=%d, expected 4", u.Generation())
	}
}

func TestGliderCrossesEdge(t *testing.T) {
	u := emptyUniverse(t, 8, 8)
	u.Stamp(Glider, 0, 0)
	for i := 0; i < 32; i++ {
		u.Tick()
	}
	want := emptyUniverse(t, 8, 8)
	want.Stamp(Glider, 0, 0)
	if !u.Grid().Equal(want.Grid()) {
		t.Fatal("glider must return to its origin after circling an 8x8 torus")
	}
}

func TestBlinkerPeriodTwo(t *testing.T) {
	u := emptyUniverse(t, 7, 7)
	u.Stamp(Blinker, 3, 2)
	start := u.Grid().Clone()

	u.Tick()
	if u.Grid().Equal(start) {
		t.Fatal("blinker must change after one tick")
	}
	u.Tick()
	if !u.Grid().Equal(start) {
		t.Fatal("blinker must repeat after two ticks")
	}
}

func TestGridBufferReusedAfterTwoTicks(t *testing.T) {
	u := emptyUniverse(t, 8, 8)
	u.Stamp(Glider, 1, 1)
	held := u.Grid()
	snap := held.Clone()

	u.Tick()
	u.Tick()
	if u.Grid() != held {
		t.Fatal("the second tick must write into the first generation's buffer")
	}
	if held.Equal(snap) {
		t.Fatal("a held grid pointer must not keep the old generation")
	}
	want := emptyUniverse(t, 8, 8)
	want.Stamp(Glider, 1, 1)
	if !snap.Equal(want.Grid()) {
		t.Fatal("a clone must keep the generation it was taken from")
	}
}

func TestStampWrapsAndClear(t *testing.T) {
	u := emptyUniverse(t, 4, 4)
	u.Stamp(Block, 3, 3)
	expectAlive(t, u.Grid(), map[[2]int]bool{
		{3, 3}: true, {3, 0}: true, {0, 3}: true, {0, 0}: true,
	}, "wrapped block")

	u.Clear()
	if u.Grid().Population() != 0 {
		t.Fatal("Clear must kill every cell")
	}
}

func TestReseedResetsGeneration(t *testing.T) {
	u, _ := New(5, 5, 0.5, core.NewRNG(8))
	u.Tick()
	u.Tick()
	if err := u.Reseed(1); err != nil {
		t.Fatal(err)
	}
	if u.Generation() != 0 || u.Grid().Population() != 25 {
		t.Fatalf("reseed: generation=%d population=%d", u.Generation(), u.Grid().Population())
	}
	if err := u.Reseed(2); !errors.Is(err, ErrInvalidProbability) {
		t.Fatalf("Reseed(2) err=%v", err)
	}
}

func TestCellSize(t *testing.T) {
	u := emptyUniverse(t, 3, 3)
	if u.CellSize() != 10 {
		t.Fatalf("CellSize=%v", u.CellSize())
	}
}

func TestPatternRegistry(t *testing.T) {
	for _, name := range []string{"block", "blinker", "glider"} {
		if _, ok := LookupPattern(name); !ok {
			t.Fatalf("pattern %q not registered", name)
		}
	}
	if names := PatternNames(); len(names) < 3 || names[0] != "blinker" {
		t.Fatalf("unexpected pattern names %v", names)
	}
	if rows, cols := Glider.Bounds(); rows != 3 || cols != 3 {
		t.Fatalf("glider bounds %dx%d", rows, cols)
	}
}
