package life

import (
	"fmt"

	"lifecanvas/pkg/core"
)

// Grid stores a width x height universe of cells in row-major order.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Grid{w: width, h: height, cells: make([]Cell, width*height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the backing slice. Callers must treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.w + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Get returns the cell at (row, col). It panics when the coordinates are
// outside the grid.
func (g *Grid) Get(row, col int) Cell {
	g.mustContain(row, col)
	return g.cells[g.Index(row, col)]
}

// Set stores c at (row, col). It panics when the coordinates are outside the
// grid.
func (g *Grid) Set(row, col int, c Cell) {
	g.mustContain(row, col)
	g.cells[g.Index(row, col)] = c
}

func (g *Grid) mustContain(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("life: cell (row %d, col %d) outside %dx%d grid", row, col, g.w, g.h))
	}
}

// NeighborCount counts the live cells around (row, col), wrapping at the
// edges. Offsets are applied as h-1/0/+1 (and w-1/0/+1) modulo the axis
// length, so axes of length one or two visit some neighbours more than once.
func (g *Grid) NeighborCount(row, col int) uint8 {
	g.mustContain(row, col)
	w, h := g.w, g.h
	var count uint8
	for _, dr := range [3]int{h - 1, 0, 1} {
		for _, dc := range [3]int{w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr) % h
			nc := (col + dc) % w
			count += g.cells[nr*w+nc].Bit()
		}
	}
	return count
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c.Bit())
	}
	return n
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether o has the same dimensions and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}
