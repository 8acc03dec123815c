package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// statusTicks is how long a transient status message stays up (1s at 60 TPS).
const statusTicks = 60

var hudTextColor = color.RGBA{R: 240, G: 240, B: 230, A: 255}

// statusLine summarises the turn and piece counts.
func (g *Game) statusLine() string {
	w, b := g.board.Counts()
	return fmt.Sprintf("%s to move   white %d   black %d", g.board.Turn(), w, b)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	x := logPanelWidth + 10
	text.Draw(screen, g.statusLine(), basicfont.Face7x13, x, 18, hudTextColor)
	text.Draw(screen, "[R] reset  [C] copy moves  [M] mute  [H] hud  [Esc] quit", basicfont.Face7x13, x, 34, hudTextColor)
	if g.status != "" {
		text.Draw(screen, g.status, basicfont.Face7x13, x, g.height-10, color.RGBA{R: 255, G: 200, B: 90, A: 255})
	}
}

// flash shows a transient status message.
func (g *Game) flash(msg string) {
	g.status = msg
	g.statusLeft = statusTicks
}
