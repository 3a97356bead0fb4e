package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero state of a fresh grid.
	Dead Cell = iota
	// Alive marks a live cell.
	Alive
)

// Bit converts the cell to 0 or 1 for neighbour arithmetic.
func (c Cell) Bit() uint8 {
	if c == Alive {
		return 1
	}
	return 0
}

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
