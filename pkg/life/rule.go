package life

// NextGeneration applies Conway's rule to every cell of g and returns the
// result as a new grid. g is not modified.
func NextGeneration(g *Grid) *Grid {
	next := &Grid{w: g.w, h: g.h, cells: make([]Cell, len(g.cells))}
	NextGenerationInto(next, g)
	return next
}

// NextGenerationInto writes the generation after src into dst. Neighbour counts
// are read from src only, so dst must be a distinct grid of the same size.
func NextGenerationInto(dst, src *Grid) {
	if dst == src {
		panic("life: next generation must be computed into a separate grid")
	}
	if dst.w != src.w || dst.h != src.h {
		panic("life: next generation grid size mismatch")
	}
	for row := 0; row < src.h; row++ {
		for col := 0; col < src.w; col++ {
			idx := row*src.w + col
			dst.cells[idx] = nextState(src.cells[idx], src.NeighborCount(row, col))
		}
	}
}

func nextState(c Cell, neighbors uint8) Cell {
	switch {
	case c == Alive && neighbors < 2:
		return Dead
	case c == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case c == Alive:
		return Dead
	case neighbors == 3:
		return Alive
	default:
		return c
	}
}
