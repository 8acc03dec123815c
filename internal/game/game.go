// Package game is the desktop front-end: it hosts the board in an ebiten
// window, feeds it pointer and resize events, and draws the scene.
package game

import (
	"errors"
	"image/color"
	"math/rand"

	"github.com/Garsondee/Reversi-Board/internal/audio"
	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/Garsondee/Reversi-Board/internal/config"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

var clearColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Game implements ebiten.Game around a single board.
type Game struct {
	cfg     config.Config
	log     logrus.FieldLogger
	board   *board.Board
	journal *board.Journal
	scene   *Scene
	moveLog *MoveLog
	sounds  audio.Player
	muted   bool

	// Current and pending viewport size; Layout records, Update applies.
	width, height   int
	pendingW        int
	pendingH        int
	pointerX        int
	pointerY        int
	pointerSeen     bool
	showHUD         bool
	status          string
	statusLeft      int
	copyToClipboard func(string) error
}

// New builds a game from cfg. faces resolves piece images; sounds may be nil.
func New(cfg config.Config, log logrus.FieldLogger, faces FaceSource, sounds audio.Player) *Game {
	if sounds == nil {
		sounds = audio.Silent{}
	}
	scene := NewScene(faces)
	journal := board.NewJournal()
	b := board.New(board.Context{
		Surface: scene,
		Rand:    rand.New(rand.NewSource(cfg.SeedOrNow())), // #nosec G404 -- cosmetic only
		Log:     log,
	}, board.WithCells(cfg.Cells), board.WithJournal(journal))

	return &Game{
		cfg:             cfg,
		log:             log.WithField("component", "game"),
		board:           b,
		journal:         journal,
		scene:           scene,
		moveLog:         NewMoveLog(),
		sounds:          sounds,
		muted:           cfg.Mute,
		pendingW:        cfg.Width,
		pendingH:        cfg.Height,
		showHUD:         true,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Board exposes the hosted board.
func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Update() error {
	g.applyResize()
	if g.statusLeft > 0 {
		g.statusLeft--
		if g.statusLeft == 0 {
			g.status = ""
		}
	}
	return g.handleInput()
}

// handleInput polls ebiten and translates keys and pointer state.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyTranscript()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	var held, pressed board.MouseButton
	for btn, mask := range mouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			held |= mask
		}
		if inpututil.IsMouseButtonJustPressed(btn) {
			pressed |= mask
		}
	}
	mx, my := ebiten.CursorPosition()
	g.pointer(mx, my, held, pressed)
	return nil
}

var mouseButtons = map[ebiten.MouseButton]board.MouseButton{
	ebiten.MouseButtonLeft:   board.ButtonLeft,
	ebiten.MouseButtonRight:  board.ButtonRight,
	ebiten.MouseButtonMiddle: board.ButtonMiddle,
}

// pointer turns one frame of pointer state into board events: motion (or
// drag while a button is held) when the position changed, then a press.
// Screen y grows downward; the board's grows upward.
func (g *Game) pointer(mx, my int, held, pressed board.MouseButton) {
	x := float64(mx)
	y := float64(g.height - my)
	if !g.pointerSeen || mx != g.pointerX || my != g.pointerY {
		g.pointerX, g.pointerY, g.pointerSeen = mx, my, true
		if held != 0 {
			g.apply(board.PointerDrag(x, y, held))
		} else {
			g.apply(board.PointerMove(x, y))
		}
	}
	if pressed != 0 {
		g.apply(board.PointerPress(x, y, pressed))
	}
}

// apply feeds an event to the board and reacts to press outcomes.
func (g *Game) apply(ev board.Event) {
	p, err := g.board.Apply(ev)
	if ev.Kind != board.EventPointerPress {
		return
	}
	switch {
	case err == nil:
		g.moveLog.Add(board.JournalEntry{Move: p.Move, Cell: p.Cell, Color: p.Color, Face: p.Face})
		g.sound().Place(p.Color)
	case errors.Is(err, board.ErrAlreadyOccupied):
		last := g.journal.Last(1)
		if len(last) == 1 {
			g.moveLog.Add(last[0])
		}
		g.sound().Reject()
		g.flash("cell already occupied")
	case errors.Is(err, board.ErrOutOfBounds):
		// Not on the board; nothing to do.
	default:
		g.log.WithError(err).Warn("unexpected placement error")
	}
}

func (g *Game) sound() audio.Player {
	if g.muted {
		return audio.Silent{}
	}
	return g.sounds
}

func (g *Game) applyResize() {
	if g.pendingW == g.width && g.pendingH == g.height {
		return
	}
	g.width, g.height = g.pendingW, g.pendingH
	g.board.Apply(board.Resize(float64(g.width), float64(g.height)))
	g.log.WithFields(logrus.Fields{"width": g.width, "height": g.height}).Debug("viewport resized")
}

func (g *Game) reset() {
	g.board.Reset()
	g.moveLog.Clear()
	// Hover was cleared; force the next frame to re-resolve the pointer.
	g.pointerSeen = false
	g.flash("board reset")
}

func (g *Game) copyTranscript() {
	transcript := g.journal.Transcript()
	if transcript == "" {
		g.flash("no moves to copy")
		return
	}
	if err := g.copyToClipboard(transcript); err != nil {
		g.log.WithError(err).Warn("clipboard unavailable")
		g.flash("clipboard unavailable")
		return
	}
	g.flash("moves copied to clipboard")
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	if g.muted {
		g.flash("sound off")
	} else {
		g.flash("sound on")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	g.scene.Draw(screen, float64(g.height))
	if g.showHUD {
		g.moveLog.Draw(screen, g.height)
		g.drawHUD(screen)
	}
}

// Layout tracks the window size; the board is relaid out on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
