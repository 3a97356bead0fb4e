package life

import (
	"fmt"
	"math"

	"lifecanvas/pkg/core"
)

// CellSize is the edge length of one cell on a drawing surface, in pixels.
const CellSize = 10.0

// Universe owns a grid and advances it one generation at a time. It is not
// safe for concurrent use; drivers call it from a single goroutine.
type Universe struct {
	cur, nxt   *Grid
	src        core.Entropy
	generation int
}

// New returns a universe of the given size whose cells are each alive with
// probability aliveProbability. A nil src seeds a generator from the wall clock.
func New(width, height int, aliveProbability float64, src core.Entropy) (*Universe, error) {
	cur, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewRNG(core.TimeSeed())
	}
	u := &Universe{cur: cur, nxt: cur.Clone(), src: src}
	if err := u.Reseed(aliveProbability); err != nil {
		return nil, err
	}
	return u, nil
}

// Reseed redraws every cell from the entropy source and resets the
// generation counter.
func (u *Universe) Reseed(aliveProbability float64) error {
	if math.IsNaN(aliveProbability) || aliveProbability < 0 || aliveProbability > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, aliveProbability)
	}
	for i := range u.cur.cells {
		if u.src.Float64() < aliveProbability {
			u.cur.cells[i] = Alive
			continue
		}
		u.cur.cells[i] = Dead
	}
	u.generation = 0
	return nil
}

// Tick advances the universe by one generation.
func (u *Universe) Tick() {
	NextGenerationInto(u.nxt, u.cur)
	u.cur, u.nxt = u.nxt, u.cur
	u.generation++
}

// Toggle flips the cell in column x, row y.
func (u *Universe) Toggle(x, y int) error {
	if !u.cur.InBounds(y, x) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, u.cur.w, u.cur.h)
	}
	idx := u.cur.Index(y, x)
	u.cur.cells[idx] = u.cur.cells[idx].Flip()
	return nil
}

// Clear kills every cell.
func (u *Universe) Clear() {
	u.cur.Fill(Dead)
}

// Stamp sets the live cells of p alive with its top-left corner at (row, col).
// Placement wraps around the edges.
func (u *Universe) Stamp(p Pattern, row, col int) {
	w, h := u.cur.w, u.cur.h
	for _, rc := range p.Cells {
		r := ((row+rc[0])%h + h) % h
		c := ((col+rc[1])%w + w) % w
		u.cur.cells[r*w+c] = Alive
	}
}

// CellSize returns the pixel size of one cell.
func (u *Universe) CellSize() float64 { return CellSize }

// Grid exposes the current generation. Callers must not modify it, and the
// pointer is only valid until the next Tick, which reuses the previous
// generation's buffer. Holders that outlive a Tick should keep a Clone.
func (u *Universe) Grid() *Grid { return u.cur }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return u.cur.Size() }

// Generation returns the number of ticks since the last seeding.
func (u *Universe) Generation() int { return u.generation }
