package board

// Handle is an opaque reference to a visual owned by a Surface.
// The zero Handle refers to nothing.
type Handle uint64

// Tint selects how a cell shape is colored.
type Tint uint8

const (
	TintNormal Tint = iota
	TintHighlight
)

// Surface is the rendering sink the board drives. Implementations own every
// visual; the board only keeps handles to recolor, move or remove them.
type Surface interface {
	DrawBackground(l Layout) Handle
	DrawCell(c Cell, l Layout) Handle
	Recolor(h Handle, t Tint)
	Remove(h Handle)
	DrawPiece(c Cell, l Layout, face FaceID, col Color) Handle
	RepositionPiece(h Handle, c Cell, l Layout)
}

// nopSurface is used when a board is built without a surface.
type nopSurface struct{}

func (nopSurface) DrawBackground(Layout) Handle                 { return 0 }
func (nopSurface) DrawCell(Cell, Layout) Handle                 { return 0 }
func (nopSurface) Recolor(Handle, Tint)                         {}
func (nopSurface) Remove(Handle)                                {}
func (nopSurface) DrawPiece(Cell, Layout, FaceID, Color) Handle { return 0 }
func (nopSurface) RepositionPiece(Handle, Cell, Layout)         {}
