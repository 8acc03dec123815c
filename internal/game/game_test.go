package game

import (
	"errors"
	"io"
	"testing"

	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/Garsondee/Reversi-Board/internal/config"
	"github.com/sirupsen/logrus"
)

type fakeSounds struct {
	placed   []board.Color
	rejected int
}

func (f *fakeSounds) Place(c board.Color) { f.placed = append(f.placed, c) }
func (f *fakeSounds) Reject()             { f.rejected++ }
func (f *fakeSounds) Close()              {}

func newTestGame(t *testing.T) (*Game, *fakeSounds) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	log := logrus.New()
	log.SetOutput(io.Discard)
	snd := &fakeSounds{}
	g := New(cfg, log, nil, snd)
	g.Layout(800, 900)
	g.applyResize()
	return g, snd
}

// screenPoint returns the window pixel at the centre of a cell.
func screenPoint(g *Game, c board.Cell) (int, int) {
	x, y := g.board.Layout().CellCenter(c)
	return int(x), g.height - int(y)
}

func TestGame_LayoutTriggersResize(t *testing.T) {
	g, _ := newTestGame(t)
	l := g.board.Layout()
	if !l.Drawable() || l.Size != 810 {
		t.Fatalf("expected drawable 810px board, got %+v", l)
	}
	// 1 background + 64 cells.
	if n := g.scene.Len(); n != 65 {
		t.Fatalf("expected 65 visuals, got %d", n)
	}

	g.Layout(1000, 500)
	if g.board.Layout().Size != 810 {
		t.Fatal("layout should not change until the next update")
	}
	g.applyResize()
	if g.board.Layout().Size != 450 {
		t.Fatalf("expected 450px board, got %.1f", g.board.Layout().Size)
	}
}

func TestGame_PressPlacesAndRejects(t *testing.T) {
	g, snd := newTestGame(t)
	mx, my := screenPoint(g, board.Cell{Col: 3, Row: 4})

	g.pointer(mx, my, board.ButtonLeft, board.ButtonLeft)
	if col, ok := g.board.Occupant(board.Cell{Col: 3, Row: 4}); !ok || col != board.White {
		t.Fatalf("expected white on d5, got %s ok=%v", col, ok)
	}
	if len(snd.placed) != 1 || snd.placed[0] != board.White {
		t.Fatalf("expected one white click, got %v", snd.placed)
	}

	g.pointer(mx, my, board.ButtonLeft, board.ButtonLeft)
	if snd.rejected != 1 {
		t.Fatalf("expected one reject buzz, got %d", snd.rejected)
	}
	if g.board.Turn() != board.Black {
		t.Fatalf("expected black to move, got %s", g.board.Turn())
	}
	recent := g.moveLog.Recent()
	if len(recent) != 2 || !recent[1].Rejected {
		t.Fatalf("expected accepted then rejected in move log, got %+v", recent)
	}
	if g.status == "" {
		t.Fatal("expected a status message after rejection")
	}
}

func TestGame_PointerHoverFlipsY(t *testing.T) {
	g, _ := newTestGame(t)
	target := board.Cell{Col: 0, Row: 7} // top-left on screen
	mx, my := screenPoint(g, target)
	if my > g.height/2 {
		t.Fatalf("top row should be near the top of the window, got y=%d", my)
	}
	g.pointer(mx, my, 0, 0)
	if c, ok := g.board.Hovered(); !ok || c != target {
		t.Fatalf("expected hover on %s, got %s ok=%v", target, c, ok)
	}
	g.pointer(5, 5, 0, 0)
	if _, ok := g.board.Hovered(); ok {
		t.Fatal("expected hover cleared off-board")
	}
}

func TestGame_MuteSilencesEffects(t *testing.T) {
	g, snd := newTestGame(t)
	g.toggleMute()
	mx, my := screenPoint(g, board.Cell{Col: 1, Row: 1})
	g.pointer(mx, my, board.ButtonLeft, board.ButtonLeft)
	if len(snd.placed) != 0 {
		t.Fatalf("expected no sound while muted, got %v", snd.placed)
	}
}

func TestGame_CopyTranscript(t *testing.T) {
	g, _ := newTestGame(t)
	var copied string
	g.copyToClipboard = func(s string) error { copied = s; return nil }

	g.copyTranscript()
	if copied != "" || g.status != "no moves to copy" {
		t.Fatalf("expected nothing copied, got %q status=%q", copied, g.status)
	}

	for _, c := range []board.Cell{{Col: 3, Row: 4}, {Col: 4, Row: 4}} {
		mx, my := screenPoint(g, c)
		g.pointer(mx, my, board.ButtonLeft, board.ButtonLeft)
	}
	g.copyTranscript()
	if copied != "1. d5 e5\n" {
		t.Fatalf("unexpected transcript %q", copied)
	}

	g.copyToClipboard = func(string) error { return errors.New("no display") }
	g.copyTranscript()
	if g.status != "clipboard unavailable" {
		t.Fatalf("expected failure status, got %q", g.status)
	}
}

func TestGame_ResetClearsBoard(t *testing.T) {
	g, _ := newTestGame(t)
	mx, my := screenPoint(g, board.Cell{Col: 2, Row: 2})
	g.pointer(mx, my, board.ButtonLeft, board.ButtonLeft)
	g.reset()
	if g.board.Moves() != 0 || len(g.moveLog.Recent()) != 0 {
		t.Fatal("expected empty board and move log after reset")
	}
	if g.pointerSeen {
		t.Fatal("expected pointer to be re-resolved after reset")
	}
}

func TestGame_StatusExpires(t *testing.T) {
	g, _ := newTestGame(t)
	g.flash("hello")
	for i := 0; i < statusTicks; i++ {
		if g.statusLeft > 0 {
			g.statusLeft--
			if g.statusLeft == 0 {
				g.status = ""
			}
		}
	}
	if g.status != "" {
		t.Fatalf("expected status cleared, got %q", g.status)
	}
}
