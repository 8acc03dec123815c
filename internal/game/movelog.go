package game

import (
	"image/color"

	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	logPanelWidth = 190
	logMaxEntries = 24
	logLineHeight = 15
)

// MoveLog is a ring buffer of recent placement attempts shown on-screen.
type MoveLog struct {
	entries []board.JournalEntry
	head    int
	count   int
}

// NewMoveLog creates a move log with a fixed capacity.
func NewMoveLog() *MoveLog {
	return &MoveLog{
		entries: make([]board.JournalEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (ml *MoveLog) Add(e board.JournalEntry) {
	ml.entries[ml.head] = e
	ml.head = (ml.head + 1) % logMaxEntries
	if ml.count < logMaxEntries {
		ml.count++
	}
}

// Clear empties the log.
func (ml *MoveLog) Clear() {
	ml.head = 0
	ml.count = 0
}

// Recent returns entries in chronological order (oldest first).
func (ml *MoveLog) Recent() []board.JournalEntry {
	result := make([]board.JournalEntry, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + logMaxEntries) % logMaxEntries
		result[i] = ml.entries[idx]
	}
	return result
}

// Draw renders the panel in the top-left corner, newest entry at the bottom.
func (ml *MoveLog) Draw(screen *ebiten.Image, panelH int) {
	vector.FillRect(screen, 0, 0, logPanelWidth, float32(panelH), color.RGBA{R: 20, G: 20, B: 24, A: 200}, false)
	vector.StrokeLine(screen, logPanelWidth, 0, logPanelWidth, float32(panelH), 1, color.RGBA{R: 90, G: 90, B: 100, A: 255}, false)
	text.Draw(screen, "MOVES", basicfont.Face7x13, 8, 16, color.White)

	entries := ml.Recent()
	maxVisible := (panelH - 28) / logLineHeight
	if maxVisible < 0 {
		maxVisible = 0
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 36
	for _, e := range entries {
		c := color.RGBA{R: 235, G: 235, B: 225, A: 255}
		switch {
		case e.Rejected:
			c = color.RGBA{R: 220, G: 90, B: 80, A: 255}
		case e.Color == board.Black:
			c = color.RGBA{R: 150, G: 150, B: 160, A: 255}
		}
		text.Draw(screen, e.String(), basicfont.Face7x13, 8, y, c)
		y += logLineHeight
	}
}
