package game

import (
	"image"
	"image/color"
	"sort"

	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Board palette.
var (
	backgroundColor    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	cellColor          = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	cellHighlightColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
)

// FaceSource resolves a face identifier to a decoded image.
type FaceSource interface {
	Image(id board.FaceID, col board.Color) image.Image
}

// visual is one retained shape or sprite.
type visual struct {
	kind   board.VisualKind
	cell   board.Cell
	layout board.Layout
	face   board.FaceID
	color  board.Color
	tint   board.Tint
}

// Scene is the ebiten rendering surface. The board issues retained-mode
// commands; Draw replays the live set every frame, background first, then
// cells, then pieces.
type Scene struct {
	visuals map[board.Handle]*visual
	next    board.Handle
	faces   FaceSource
	sprites map[board.FaceID]*ebiten.Image
}

// NewScene creates an empty scene drawing faces from src.
func NewScene(src FaceSource) *Scene {
	return &Scene{
		visuals: make(map[board.Handle]*visual),
		faces:   src,
		sprites: make(map[board.FaceID]*ebiten.Image),
	}
}

func (s *Scene) add(v *visual) board.Handle {
	s.next++
	s.visuals[s.next] = v
	return s.next
}

func (s *Scene) DrawBackground(l board.Layout) board.Handle {
	return s.add(&visual{kind: board.VisualBackground, layout: l})
}

func (s *Scene) DrawCell(c board.Cell, l board.Layout) board.Handle {
	return s.add(&visual{kind: board.VisualCell, cell: c, layout: l})
}

func (s *Scene) Recolor(h board.Handle, t board.Tint) {
	if v, ok := s.visuals[h]; ok {
		v.tint = t
	}
}

func (s *Scene) Remove(h board.Handle) {
	delete(s.visuals, h)
}

func (s *Scene) DrawPiece(c board.Cell, l board.Layout, face board.FaceID, col board.Color) board.Handle {
	return s.add(&visual{kind: board.VisualPiece, cell: c, layout: l, face: face, color: col})
}

func (s *Scene) RepositionPiece(h board.Handle, c board.Cell, l board.Layout) {
	if v, ok := s.visuals[h]; ok {
		v.cell = c
		v.layout = l
	}
}

// Len returns the number of live visuals.
func (s *Scene) Len() int {
	return len(s.visuals)
}

// ordered returns live visuals sorted into paint order.
func (s *Scene) ordered() []*visual {
	out := make([]*visual, 0, len(s.visuals))
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
		out = append(out, s.visuals[h])
	}
	return out
}

// toScreen flips a y-up rectangle into ebiten's y-down space.
func toScreen(r board.Rect, viewportH float64) board.Rect {
	r.Y = viewportH - r.Y - r.H
	return r
}

// Draw paints the scene. viewportH is needed to flip the board's y-up
// coordinates.
func (s *Scene) Draw(screen *ebiten.Image, viewportH float64) {
	for _, v := range s.ordered() {
		switch v.kind {
		case board.VisualBackground:
			fillRoundedRect(screen, toScreen(v.layout.Background(), viewportH), backgroundColor)
		case board.VisualCell:
			c := cellColor
			if v.tint == board.TintHighlight {
				c = cellHighlightColor
			}
			fillRoundedRect(screen, toScreen(v.layout.CellRect(v.cell), viewportH), c)
		case board.VisualPiece:
			s.drawPiece(screen, v, viewportH)
		}
	}
}

func (s *Scene) drawPiece(screen *ebiten.Image, v *visual, viewportH float64) {
	img := s.sprite(v.face, v.color)
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cx, cy := v.layout.CellCenter(v.cell)
	scale := v.layout.PieceScale(float64(h))

	var op ebiten.DrawImageOptions
	// Anchor at the image centre.
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, viewportH-cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}

func (s *Scene) sprite(id board.FaceID, col board.Color) *ebiten.Image {
	if img, ok := s.sprites[id]; ok {
		return img
	}
	if s.faces == nil {
		return nil
	}
	src := s.faces.Image(id, col)
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	s.sprites[id] = img
	return img
}

// fillRoundedRect fills r with circular corners of radius r.Radius.
func fillRoundedRect(dst *ebiten.Image, r board.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	rad := float32(r.Radius)
	if rad*2 > w {
		rad = w / 2
	}
	if rad*2 > h {
		rad = h / 2
	}
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(dst, x+rad, y, w-2*rad, h, c, false)
	vector.FillRect(dst, x, y+rad, rad, h-2*rad, c, false)
	vector.FillRect(dst, x+w-rad, y+rad, rad, h-2*rad, c, false)
	vector.FillCircle(dst, x+rad, y+rad, rad, c, true)
	vector.FillCircle(dst, x+w-rad, y+rad, rad, c, true)
	vector.FillCircle(dst, x+rad, y+h-rad, rad, c, true)
	vector.FillCircle(dst, x+w-rad, y+h-rad, rad, c, true)
}
