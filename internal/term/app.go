package term

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/Garsondee/Reversi-Board/internal/audio"
	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/Garsondee/Reversi-Board/internal/config"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

var mouseButtons = map[tcell.ButtonMask]board.MouseButton{
	tcell.Button1: board.ButtonLeft,
	tcell.Button2: board.ButtonRight,
	tcell.Button3: board.ButtonMiddle,
}

// App owns the board and the terminal screen. Every board mutation happens
// on the goroutine running Run.
type App struct {
	screen      tcell.Screen
	board       *board.Board
	surface     *Surface
	journal     *board.Journal
	sounds      audio.Player
	log         logrus.FieldLogger
	prevButtons board.MouseButton
	status      string
}

// NewApp wires a board to an initialised screen.
func NewApp(screen tcell.Screen, cfg config.Config, log logrus.FieldLogger, sounds audio.Player) *App {
	if sounds == nil || cfg.Mute {
		sounds = audio.Silent{}
	}
	surface := NewSurface()
	journal := board.NewJournal()
	b := board.New(board.Context{
		Surface: surface,
		Rand:    rand.New(rand.NewSource(cfg.SeedOrNow())), // #nosec G404 -- cosmetic only
		Log:     log,
	}, board.WithCells(cfg.Cells), board.WithJournal(journal))
	return &App{
		screen:  screen,
		board:   b,
		surface: surface,
		journal: journal,
		sounds:  sounds,
		log:     log.WithField("component", "term"),
	}
}

// Board exposes the hosted board.
func (a *App) Board() *board.Board {
	return a.board
}

// Run processes terminal events until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.resize()
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == 'r':
			a.board.Reset()
			a.status = "board reset"
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		a.mouse(col, row, ev.Buttons())
	}
	return true
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	a.board.Apply(board.Resize(float64(cols)/columnsPerUnit, float64(rows)))
	a.log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Debug("terminal resized")
}

// mouse converts tcell's held-button state into motion, drag and press
// events. A press is a button that is held now but was not last time.
func (a *App) mouse(col, row int, mask tcell.ButtonMask) {
	_, rows := a.screen.Size()
	x, y := ToViewport(col, row, rows)

	var held board.MouseButton
	for tb, b := range mouseButtons {
		if mask&tb != 0 {
			held |= b
		}
	}
	pressed := held &^ a.prevButtons
	a.prevButtons = held

	if held != 0 {
		a.board.Apply(board.PointerDrag(x, y, held))
	} else {
		a.board.Apply(board.PointerMove(x, y))
	}
	if pressed == 0 {
		return
	}
	p, err := a.board.Apply(board.PointerPress(x, y, pressed))
	switch {
	case err == nil:
		a.sounds.Place(p.Color)
		a.status = fmt.Sprintf("%s played %s", p.Color, p.Cell)
	case errors.Is(err, board.ErrAlreadyOccupied):
		a.sounds.Reject()
		a.status = "cell already occupied"
	}
}

// Draw repaints the board and the status lines.
func (a *App) Draw() {
	a.screen.Clear()
	a.surface.Draw(a.screen)
	_, rows := a.screen.Size()
	w, b := a.board.Counts()
	drawText(a.screen, 0, 0, styleHelp, fmt.Sprintf("%s to move  white %d  black %d   [r] reset  [q] quit", a.board.Turn(), w, b))
	if a.status != "" {
		drawText(a.screen, 0, rows-1, styleStatus, a.status)
	}
	a.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
