package board

import (
	"fmt"
	"math"
)

const (
	borderFrac = 0.05 // fraction of viewport height left empty above and below the board
	gapFrac    = 0.01 // fraction of board size reserved between cells
	pieceFill  = 0.8  // piece height relative to cell pitch
	minRadius  = 2.0  // smallest corner radius for a cell shape
)

// Layout is the on-screen geometry of the board. Coordinates are y-up with
// the origin at the board's bottom-left corner. A Layout is recomputed
// wholesale on every resize and never mutated in place.
type Layout struct {
	X, Y  float64 // bottom-left corner in viewport units
	Size  float64 // edge length of the square board
	Cells int     // cells per side
	Pitch float64 // Size / Cells
	Gap   float64 // spacing between cell shapes
}

// Rect is an axis-aligned rectangle in viewport units.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
}

// Recompute derives the board layout from the viewport size. The board is
// a square centred horizontally with a border of 5% of the height above and
// below it.
func Recompute(viewportW, viewportH float64, cellCount int) Layout {
	border := viewportH * borderFrac
	size := viewportH - border*2
	l := Layout{
		X:     viewportW/2 - size/2,
		Y:     border,
		Size:  size,
		Cells: cellCount,
		Gap:   size * gapFrac,
	}
	if cellCount > 0 {
		l.Pitch = size / float64(cellCount)
	}
	return l
}

// Drawable reports whether the layout has room for at least one cell.
func (l Layout) Drawable() bool {
	return l.Size > 0 && l.Cells > 0 && l.Pitch > 0
}

// Validate returns ErrDegenerateLayout when the layout cannot be drawn.
func (l Layout) Validate() error {
	if !l.Drawable() {
		return fmt.Errorf("%w: size=%.2f cells=%d", ErrDegenerateLayout, l.Size, l.Cells)
	}
	return nil
}

// Contains reports whether c addresses a cell of this grid.
func (l Layout) Contains(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < l.Cells && c.Row < l.Cells
}

// Background returns the board's background rectangle.
func (l Layout) Background() Rect {
	return Rect{X: l.X, Y: l.Y, W: l.Size, H: l.Size, Radius: 8}
}

// CellRect returns the drawn rectangle of a cell. Cells are inset so that a
// gap of l.Gap separates neighbours and the board edge.
func (l Layout) CellRect(c Cell) Rect {
	n := float64(l.Cells)
	side := (l.Size - l.Gap*(n+1)) / n
	return Rect{
		X:      l.X + l.Gap + float64(c.Col)*(side+l.Gap),
		Y:      l.Y + l.Gap + float64(c.Row)*(side+l.Gap),
		W:      side,
		H:      side,
		Radius: math.Max(minRadius, l.Gap),
	}
}

// CellCenter returns the centre of a cell's pitch square, where pieces go.
func (l Layout) CellCenter(c Cell) (x, y float64) {
	x = l.X + float64(c.Col)*l.Pitch + l.Pitch/2
	y = l.Y + float64(c.Row)*l.Pitch + l.Pitch/2
	return x, y
}

// PieceScale returns the scale factor for a face image of the given height
// so that the piece fills 80% of the cell pitch.
func (l Layout) PieceScale(faceHeight float64) float64 {
	if faceHeight <= 0 {
		return 0
	}
	return l.Pitch / faceHeight * pieceFill
}

// PieceSize is the on-screen height of a piece.
func (l Layout) PieceSize() float64 {
	return l.Pitch * pieceFill
}
