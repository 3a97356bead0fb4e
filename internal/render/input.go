package render

import "math"

// CellAt maps a pixel position to the column and row of the cell under it.
// Positions left of or above the canvas map to negative coordinates.
func CellAt(px, py, cellSize float64) (x, y int) {
	if cellSize <= 0 {
		return -1, -1
	}
	return int(math.Floor(px / cellSize)), int(math.Floor(py / cellSize))
}
