package term

import (
	"io"
	"testing"

	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/Garsondee/Reversi-Board/internal/config"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

type countingSounds struct {
	placed, rejected int
}

func (c *countingSounds) Place(board.Color) { c.placed++ }
func (c *countingSounds) Reject()           { c.rejected++ }
func (c *countingSounds) Close()            {}

func newTestApp(t *testing.T, cols, rows int) (*App, tcell.SimulationScreen, *countingSounds) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	cfg := config.Default()
	cfg.Seed = 3
	log := logrus.New()
	log.SetOutput(io.Discard)
	snd := &countingSounds{}
	app := NewApp(screen, cfg, log, snd)
	app.HandleEvent(tcell.NewEventResize(cols, rows))
	return app, screen, snd
}

// screenCell returns the terminal position at the centre of a board cell.
func screenCell(a *App, rows int, c board.Cell) (int, int) {
	x, y := a.board.Layout().CellCenter(c)
	return int(x * columnsPerUnit), rows - 1 - int(y)
}

func TestApp_ResizeUsesHalfWidthUnits(t *testing.T) {
	app, _, _ := newTestApp(t, 160, 40)
	l := app.board.Layout()
	if l.Size != 36 {
		t.Fatalf("expected 36-unit board, got %.2f", l.Size)
	}
	if l.X != 80/2-18 {
		t.Fatalf("expected board centred at x=22, got %.2f", l.X)
	}
}

func TestApp_ClickPlacesPiece(t *testing.T) {
	app, screen, snd := newTestApp(t, 160, 40)
	target := board.Cell{Col: 3, Row: 4}
	col, row := screenCell(app, 40, target)

	app.HandleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
	if c, ok := app.board.Occupant(target); !ok || c != board.White {
		t.Fatalf("expected white on %s, got %s ok=%v", target, c, ok)
	}

	// Holding the button across events is one press, not many.
	app.HandleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(col+1, row, tcell.Button1, tcell.ModNone))
	if snd.placed != 1 || snd.rejected != 1 {
		t.Fatalf("expected 1 placement and 1 rejection, got %d/%d", snd.placed, snd.rejected)
	}

	app.Draw()
	if r, _, _, _ := screen.GetContent(col, row); r == ' ' || r == 0 {
		t.Fatalf("expected a piece glyph at %d,%d, got %q", col, row, r)
	}
}

func TestApp_HoverHighlightsCell(t *testing.T) {
	app, _, _ := newTestApp(t, 160, 40)
	target := board.Cell{Col: 6, Row: 1}
	col, row := screenCell(app, 40, target)
	app.HandleEvent(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone))
	if c, ok := app.board.Hovered(); !ok || c != target {
		t.Fatalf("expected hover on %s, got %s ok=%v", target, c, ok)
	}
	app.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if _, ok := app.board.Hovered(); ok {
		t.Fatal("expected hover cleared outside the board")
	}
}

func TestApp_Keys(t *testing.T) {
	app, _, _ := newTestApp(t, 160, 40)
	col, row := screenCell(app, 40, board.Cell{Col: 0, Row: 0})
	app.HandleEvent(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone))
	if !app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Fatal("reset should not quit")
	}
	if app.board.Moves() != 0 {
		t.Fatal("expected empty board after reset")
	}
	if app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if app.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestSurface_FillsCellsInsideBoard(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 20)

	s := NewSurface()
	l := board.Recompute(20, 20, 4)
	s.DrawBackground(l)
	s.Draw(screen)

	_, _, style, _ := screen.GetContent(20, 10)
	if style != styleBackground {
		t.Fatal("expected background style in the middle of the board")
	}
	_, _, style, _ = screen.GetContent(0, 10)
	if style == styleBackground {
		t.Fatal("expected no background left of the board")
	}
}

func TestGlyph(t *testing.T) {
	if g := glyph("white12.png"); g != "12" {
		t.Fatalf("expected 12, got %s", g)
	}
	if g := glyph("mystery"); g != "●" {
		t.Fatalf("expected fallback glyph, got %s", g)
	}
}
