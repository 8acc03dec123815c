package board

// Color identifies which player owns a piece.
type Color uint8

const (
	White      Color = iota // moves first
	Black                   // moves second
	colorCount              // sentinel
)

// First and Second name the turn order independently of the palette.
const (
	First  = White
	Second = Black
)

// Opponent returns the other color. It is total over both values.
func Opponent(c Color) Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the two player colors.
func (c Color) Valid() bool {
	return c < colorCount
}
