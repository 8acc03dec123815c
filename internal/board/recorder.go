package board

import "fmt"

// VisualKind identifies what a recorded visual represents.
type VisualKind uint8

const (
	VisualBackground VisualKind = iota
	VisualCell
	VisualPiece
)

func (k VisualKind) String() string {
	switch k {
	case VisualBackground:
		return "background"
	case VisualCell:
		return "cell"
	case VisualPiece:
		return "piece"
	default:
		return "unknown"
	}
}

// Visual is one live entry held by a Recorder.
type Visual struct {
	Kind   VisualKind
	Cell   Cell
	Face   FaceID
	Color  Color
	Tint   Tint
	Layout Layout
}

// Recorder is an in-memory Surface. It keeps the live visual set and a
// textual log of every call, which makes it usable both in tests and in the
// headless report.
type Recorder struct {
	live   map[Handle]*Visual
	next   Handle
	Calls  []string
	Counts map[string]int
}

// NewRecorder returns an empty recording surface.
func NewRecorder() *Recorder {
	return &Recorder{
		live:   make(map[Handle]*Visual),
		Counts: make(map[string]int),
	}
}

func (r *Recorder) add(v *Visual) Handle {
	r.next++
	r.live[r.next] = v
	return r.next
}

func (r *Recorder) record(op string, format string, args ...any) {
	r.Counts[op]++
	r.Calls = append(r.Calls, op+" "+fmt.Sprintf(format, args...))
}

func (r *Recorder) DrawBackground(l Layout) Handle {
	r.record("background", "%.1f", l.Size)
	return r.add(&Visual{Kind: VisualBackground, Layout: l})
}

func (r *Recorder) DrawCell(c Cell, l Layout) Handle {
	r.record("cell", "%s", c)
	return r.add(&Visual{Kind: VisualCell, Cell: c, Layout: l})
}

func (r *Recorder) Recolor(h Handle, t Tint) {
	r.record("recolor", "%d %d", h, t)
	if v, ok := r.live[h]; ok {
		v.Tint = t
	}
}

func (r *Recorder) Remove(h Handle) {
	r.record("remove", "%d", h)
	delete(r.live, h)
}

func (r *Recorder) DrawPiece(c Cell, l Layout, face FaceID, col Color) Handle {
	r.record("piece", "%s %s %s", c, col, face)
	return r.add(&Visual{Kind: VisualPiece, Cell: c, Face: face, Color: col, Layout: l})
}

func (r *Recorder) RepositionPiece(h Handle, c Cell, l Layout) {
	r.record("reposition", "%d %s", h, c)
	if v, ok := r.live[h]; ok {
		v.Cell = c
		v.Layout = l
	}
}

// Visual returns the live visual behind h.
func (r *Recorder) Visual(h Handle) (Visual, bool) {
	v, ok := r.live[h]
	if !ok {
		return Visual{}, false
	}
	return *v, true
}

// Live counts live visuals of the given kind.
func (r *Recorder) Live(kind VisualKind) int {
	n := 0
	for _, v := range r.live {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Highlighted returns every cell currently drawn with the highlight tint.
func (r *Recorder) Highlighted() []Cell {
	var out []Cell
	for _, v := range r.live {
		if v.Kind == VisualCell && v.Tint == TintHighlight {
			out = append(out, v.Cell)
		}
	}
	return out
}

// Pieces returns the live piece visuals keyed by cell.
func (r *Recorder) Pieces() map[Cell]Visual {
	out := make(map[Cell]Visual)
	for _, v := range r.live {
		if v.Kind == VisualPiece {
			out[v.Cell] = *v
		}
	}
	return out
}

// Reset clears the call log but keeps live visuals.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Counts = make(map[string]int)
}
