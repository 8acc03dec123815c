package board

import "errors"

var (
	// ErrOutOfBounds is returned when a pointer or cell falls outside the grid.
	ErrOutOfBounds = errors.New("board: out of bounds")
	// ErrAlreadyOccupied is returned when a placement targets a non-empty cell.
	// It is a normal outcome; the board is left untouched.
	ErrAlreadyOccupied = errors.New("board: cell already occupied")
	// ErrDegenerateLayout marks a viewport too small to hold a board.
	ErrDegenerateLayout = errors.New("board: degenerate layout")
)
