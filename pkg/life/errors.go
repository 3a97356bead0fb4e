package life

import "errors"

var (
	// ErrInvalidDimension reports a zero or negative grid width or height.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrOutOfBounds reports toggle coordinates outside the grid.
	ErrOutOfBounds = errors.New("life: coordinates out of bounds")
	// ErrInvalidProbability reports a seeding probability outside [0, 1].
	ErrInvalidProbability = errors.New("life: alive probability outside [0, 1]")
)
