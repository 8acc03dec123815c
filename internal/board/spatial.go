package board

import (
	"fmt"
	"math"
)

// Cell is a zero-indexed (column, row) grid coordinate. Row 0 is the bottom row.
type Cell struct {
	Col int
	Row int
}

func (c Cell) String() string {
	return Notation(c)
}

// Notation renders a cell as a column letter and a 1-based row, e.g. "d5".
func Notation(c Cell) string {
	if c.Col >= 0 && c.Col < 26 {
		return fmt.Sprintf("%c%d", 'a'+rune(c.Col), c.Row+1)
	}
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// InBounds reports whether the pointer lies strictly inside the board.
// Points exactly on the edge are outside.
func InBounds(x, y float64, l Layout) bool {
	return l.X < x && x < l.X+l.Size && l.Y < y && y < l.Y+l.Size
}

// Locate maps a pointer position to the cell under it. It must be called
// with the current layout on every pointer event; results are never cached.
func Locate(x, y float64, l Layout) (Cell, error) {
	if !l.Drawable() || !InBounds(x, y, l) {
		return Cell{}, ErrOutOfBounds
	}
	c := Cell{
		Col: int(math.Floor((x - l.X) / l.Pitch)),
		Row: int(math.Floor((y - l.Y) / l.Pitch)),
	}
	// Floating error can land a point a hair inside the far edge on index N.
	last := l.Cells - 1
	if c.Col > last {
		c.Col = last
	}
	if c.Row > last {
		c.Row = last
	}
	return c, nil
}
