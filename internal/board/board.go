package board

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCells is the side length of a standard Reversi board.
const DefaultCells = 8

// Number of face variants shipped per color.
const (
	whiteFaceCount = 20
	blackFaceCount = 16
)

// DefaultFaces lists the stock face identifiers for a color.
func DefaultFaces(c Color) []FaceID {
	n := whiteFaceCount
	if c == Black {
		n = blackFaceCount
	}
	out := make([]FaceID, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, FaceID(fmt.Sprintf("%s%d.png", c, i)))
	}
	return out
}

// Context carries the collaborators a Board is built with. Nothing here is
// global; each board gets its own surface, randomness and logger.
type Context struct {
	Surface Surface
	Rand    *rand.Rand
	Log     logrus.FieldLogger
	// Faces overrides the face population per color. Missing entries fall
	// back to DefaultFaces.
	Faces map[Color][]FaceID
}

// Option configures a Board.
type Option func(*Board)

// WithCells sets the number of cells per side.
func WithCells(n int) Option {
	return func(b *Board) { b.cells = n }
}

// WithJournal records every placement attempt into j.
func WithJournal(j *Journal) Option {
	return func(b *Board) { b.journal = j }
}

// Placement describes an accepted move.
type Placement struct {
	Move  int // 1-based count of accepted placements
	Cell  Cell
	Color Color
	Face  FaceID
}

// Board owns cell occupancy, the turn and the hovered cell. It is not safe
// for concurrent use; all mutations must come from one goroutine.
type Board struct {
	ctx     Context
	log     logrus.FieldLogger
	cells   int
	layout  Layout
	journal *Journal

	occupancy map[Cell]Color
	faces     map[Cell]FaceID
	turn      Color
	hovered   *Cell
	moves     int

	pools [colorCount]*Pool

	// Visual handles, owned by the surface.
	background Handle
	cellShapes map[Cell]Handle
	pieces     map[Cell]Handle
}

// New creates an empty board. White moves first.
func New(ctx Context, opts ...Option) *Board {
	if ctx.Surface == nil {
		ctx.Surface = nopSurface{}
	}
	if ctx.Rand == nil {
		ctx.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- cosmetic only
	}
	if ctx.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		ctx.Log = l
	}
	b := &Board{
		ctx:        ctx,
		log:        ctx.Log.WithField("component", "board"),
		cells:      DefaultCells,
		occupancy:  make(map[Cell]Color),
		faces:      make(map[Cell]FaceID),
		cellShapes: make(map[Cell]Handle),
		pieces:     make(map[Cell]Handle),
		turn:       First,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.cells <= 0 {
		b.cells = DefaultCells
	}
	for c := Color(0); c < colorCount; c++ {
		faces, ok := ctx.Faces[c]
		if !ok {
			faces = DefaultFaces(c)
		}
		b.pools[c] = NewPool(faces, ctx.Rand)
	}
	b.layout = Layout{Cells: b.cells}
	return b
}

// Cells returns the number of cells per side.
func (b *Board) Cells() int { return b.cells }

// Layout returns the layout last applied with Relayout.
func (b *Board) Layout() Layout { return b.layout }

// Turn returns the color that places next.
func (b *Board) Turn() Color { return b.turn }

// Moves returns the number of accepted placements.
func (b *Board) Moves() int { return b.moves }

// Pool exposes the rotation pool of a color.
func (b *Board) Pool(c Color) *Pool { return b.pools[c] }

// Journal returns the attached journal, or nil.
func (b *Board) Journal() *Journal { return b.journal }

// Occupant returns the color on a cell; ok is false for an empty cell.
func (b *Board) Occupant(c Cell) (col Color, ok bool) {
	col, ok = b.occupancy[c]
	return col, ok
}

// Face returns the face drawn for the piece on c.
func (b *Board) Face(c Cell) (FaceID, bool) {
	f, ok := b.faces[c]
	return f, ok
}

// Hovered returns the highlighted cell, if any.
func (b *Board) Hovered() (Cell, bool) {
	if b.hovered == nil {
		return Cell{}, false
	}
	return *b.hovered, true
}

// Counts returns how many pieces each color has on the board.
func (b *Board) Counts() (white, black int) {
	for _, col := range b.occupancy {
		if col == White {
			white++
		} else {
			black++
		}
	}
	return white, black
}

// Place puts a piece of the current turn's color on c. An occupied cell
// yields ErrAlreadyOccupied and leaves the board, turn and pools untouched.
func (b *Board) Place(c Cell) (Placement, error) {
	if !b.contains(c) {
		return Placement{}, fmt.Errorf("place %v: %w", c, ErrOutOfBounds)
	}
	if owner, ok := b.occupancy[c]; ok {
		b.log.WithFields(logrus.Fields{"cell": c, "owner": owner}).Debug("placement rejected")
		if b.journal != nil {
			b.journal.reject(c, b.turn, owner)
		}
		return Placement{}, ErrAlreadyOccupied
	}

	face := b.pools[b.turn].Draw()
	b.occupancy[c] = b.turn
	b.faces[c] = face
	b.moves++
	p := Placement{Move: b.moves, Cell: c, Color: b.turn, Face: face}

	if b.layout.Drawable() {
		b.pieces[c] = b.ctx.Surface.DrawPiece(c, b.layout, face, b.turn)
	}
	b.log.WithFields(logrus.Fields{"cell": c, "color": b.turn, "face": face, "move": b.moves}).Debug("piece placed")
	if b.journal != nil {
		b.journal.accept(p)
	}

	b.turn = Opponent(b.turn)
	return p, nil
}

// SetHover highlights c and restores the previously hovered cell.
func (b *Board) SetHover(c Cell) error {
	if !b.contains(c) {
		return fmt.Errorf("hover %v: %w", c, ErrOutOfBounds)
	}
	if b.hovered != nil && *b.hovered != c {
		b.recolor(*b.hovered, TintNormal)
	}
	b.recolor(c, TintHighlight)
	b.hovered = &c
	return nil
}

// ClearHover restores the hovered cell, if any, to its normal color.
func (b *Board) ClearHover() {
	if b.hovered == nil {
		return
	}
	b.recolor(*b.hovered, TintNormal)
	b.hovered = nil
}

// Relayout tears every visual down and rebuilds it for l. Hover does not
// survive. A layout that cannot be drawn leaves the surface empty until the
// next drawable one arrives.
func (b *Board) Relayout(l Layout) {
	l.Cells = b.cells
	b.layout = l
	b.hovered = nil

	surface := b.ctx.Surface
	if b.background != 0 {
		surface.Remove(b.background)
		b.background = 0
	}
	for c, h := range b.cellShapes {
		surface.Remove(h)
		delete(b.cellShapes, c)
	}

	if err := l.Validate(); err != nil {
		b.log.WithError(err).Debug("skipping board visuals")
		for c, h := range b.pieces {
			surface.Remove(h)
			delete(b.pieces, c)
		}
		return
	}

	b.background = surface.DrawBackground(l)
	for row := 0; row < b.cells; row++ {
		for col := 0; col < b.cells; col++ {
			c := Cell{Col: col, Row: row}
			b.cellShapes[c] = surface.DrawCell(c, l)
		}
	}
	for c, col := range b.occupancy {
		if h, ok := b.pieces[c]; ok {
			surface.RepositionPiece(h, c, l)
			continue
		}
		b.pieces[c] = surface.DrawPiece(c, l, b.faces[c], col)
	}
}

// Resize recomputes the layout for a viewport and applies it.
func (b *Board) Resize(width, height float64) Layout {
	l := Recompute(width, height, b.cells)
	b.Relayout(l)
	b.log.WithFields(logrus.Fields{"width": width, "height": height, "size": l.Size}).Debug("board resized")
	return l
}

// Reset empties the board and hands the first turn back to White. Face
// pools keep their rotation.
func (b *Board) Reset() {
	b.ClearHover()
	for c, h := range b.pieces {
		b.ctx.Surface.Remove(h)
		delete(b.pieces, c)
	}
	b.occupancy = make(map[Cell]Color)
	b.faces = make(map[Cell]FaceID)
	b.turn = First
	b.moves = 0
	if b.journal != nil {
		b.journal.Clear()
	}
	b.log.Info("board reset")
}

func (b *Board) contains(c Cell) bool {
	return b.layout.Contains(c)
}

func (b *Board) recolor(c Cell, t Tint) {
	if h, ok := b.cellShapes[c]; ok {
		b.ctx.Surface.Recolor(h, t)
	}
}
