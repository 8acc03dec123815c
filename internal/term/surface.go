// Package term hosts the board in a terminal. One viewport unit is two
// character columns wide and one row tall, which keeps cells roughly square.
package term

import (
	"math"
	"sort"
	"strconv"

	"github.com/Garsondee/Reversi-Board/internal/assets"
	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/gdamore/tcell/v2"
)

// columnsPerUnit is how many terminal columns make one viewport unit.
const columnsPerUnit = 2

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(200, 200, 200))
	styleCell       = tcell.StyleDefault.Background(tcell.NewRGBColor(50, 50, 50))
	styleHighlight  = tcell.StyleDefault.Background(tcell.NewRGBColor(80, 80, 80))
	whitePiece      = tcell.NewRGBColor(236, 232, 220)
	blackPiece      = tcell.NewRGBColor(20, 20, 24)
)

type visual struct {
	kind   board.VisualKind
	cell   board.Cell
	layout board.Layout
	face   board.FaceID
	color  board.Color
	tint   board.Tint
}

// Surface renders board visuals onto character cells.
type Surface struct {
	visuals map[board.Handle]*visual
	next    board.Handle
}

// NewSurface creates an empty terminal surface.
func NewSurface() *Surface {
	return &Surface{visuals: make(map[board.Handle]*visual)}
}

func (s *Surface) add(v *visual) board.Handle {
	s.next++
	s.visuals[s.next] = v
	return s.next
}

func (s *Surface) DrawBackground(l board.Layout) board.Handle {
	return s.add(&visual{kind: board.VisualBackground, layout: l})
}

func (s *Surface) DrawCell(c board.Cell, l board.Layout) board.Handle {
	return s.add(&visual{kind: board.VisualCell, cell: c, layout: l})
}

func (s *Surface) Recolor(h board.Handle, t board.Tint) {
	if v, ok := s.visuals[h]; ok {
		v.tint = t
	}
}

func (s *Surface) Remove(h board.Handle) {
	delete(s.visuals, h)
}

func (s *Surface) DrawPiece(c board.Cell, l board.Layout, face board.FaceID, col board.Color) board.Handle {
	return s.add(&visual{kind: board.VisualPiece, cell: c, layout: l, face: face, color: col})
}

func (s *Surface) RepositionPiece(h board.Handle, c board.Cell, l board.Layout) {
	if v, ok := s.visuals[h]; ok {
		v.cell = c
		v.layout = l
	}
}

// Draw rasterises every live visual. A character cell is painted when its
// centre lies inside the shape.
func (s *Surface) Draw(screen tcell.Screen) {
	cols, rows := screen.Size()
	handles := make([]board.Handle, 0, len(s.visuals))
	for h := range s.visuals {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		a, b := s.visuals[handles[i]], s.visuals[handles[j]]
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return handles[i] < handles[j]
	})

	for _, h := range handles {
		v := s.visuals[h]
		switch v.kind {
		case board.VisualBackground:
			fillRect(screen, cols, rows, v.layout.Background(), styleBackground)
		case board.VisualCell:
			style := styleCell
			if v.tint == board.TintHighlight {
				style = styleHighlight
			}
			fillRect(screen, cols, rows, v.layout.CellRect(v.cell), style)
		case board.VisualPiece:
			drawPiece(screen, cols, rows, v)
		}
	}
}

// ToViewport maps the centre of a character cell to y-up viewport units.
func ToViewport(col, row, rows int) (x, y float64) {
	return (float64(col) + 0.5) / columnsPerUnit, float64(rows-row) - 0.5
}

// span returns the character range whose centres may fall in [lo, hi).
func span(lo, hi float64, scale float64, limit int) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi * scale))
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	return a, b
}

func fillRect(screen tcell.Screen, cols, rows int, r board.Rect, style tcell.Style) {
	c0, c1 := span(r.X, r.X+r.W, columnsPerUnit, cols)
	for row := 0; row < rows; row++ {
		for col := c0; col < c1; col++ {
			x, y := ToViewport(col, row, rows)
			if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
				screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

func drawPiece(screen tcell.Screen, cols, rows int, v *visual) {
	cx, cy := v.layout.CellCenter(v.cell)
	radius := v.layout.PieceSize() / 2
	fg := whitePiece
	if v.color == board.Black {
		fg = blackPiece
	}
	c0, c1 := span(cx-radius, cx+radius, columnsPerUnit, cols)
	for row := 0; row < rows; row++ {
		for col := c0; col < c1; col++ {
			x, y := ToViewport(col, row, rows)
			if math.Hypot(x-cx, y-cy) > radius {
				continue
			}
			_, _, style, _ := screen.GetContent(col, row)
			screen.SetContent(col, row, '█', nil, style.Foreground(fg))
		}
	}
	// Variant number in the middle so faces stay distinguishable.
	label := []rune(glyph(v.face))
	col := int(cx*columnsPerUnit) - len(label)/2
	row := rows - 1 - int(math.Floor(cy))
	ink := blackPiece
	if v.color == board.Black {
		ink = whitePiece
	}
	for i, r := range label {
		if col+i < 0 || col+i >= cols || row < 0 || row >= rows {
			continue
		}
		screen.SetContent(col+i, row, r, nil, tcell.StyleDefault.Foreground(ink).Background(fg))
	}
}

func glyph(face board.FaceID) string {
	n := assets.Variant(face)
	if n <= 0 {
		return "●"
	}
	return strconv.Itoa(n)
}
