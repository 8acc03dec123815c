package board

import "errors"

// EventKind enumerates the input events the board reacts to.
type EventKind uint8

const (
	EventResize EventKind = iota
	EventPointerMove
	EventPointerDrag
	EventPointerPress
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventPointerMove:
		return "move"
	case EventPointerDrag:
		return "drag"
	case EventPointerPress:
		return "press"
	default:
		return "unknown"
	}
}

// MouseButton is a bit set of pointer buttons.
type MouseButton uint8

const (
	ButtonLeft MouseButton = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Event is one host input event in viewport units, y-up. For EventResize
// X and Y carry the new width and height.
type Event struct {
	Kind    EventKind
	X, Y    float64
	Buttons MouseButton
}

// Resize builds a resize event.
func Resize(width, height float64) Event {
	return Event{Kind: EventResize, X: width, Y: height}
}

// PointerMove builds a pointer motion event.
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// PointerDrag builds a motion event with buttons held.
func PointerDrag(x, y float64, buttons MouseButton) Event {
	return Event{Kind: EventPointerDrag, X: x, Y: y, Buttons: buttons}
}

// PointerPress builds a button press event.
func PointerPress(x, y float64, button MouseButton) Event {
	return Event{Kind: EventPointerPress, X: x, Y: y, Buttons: button}
}

// Apply feeds one event to the board. Only presses produce a result: the
// accepted Placement, or ErrAlreadyOccupied / ErrOutOfBounds. Callers treat
// ErrOutOfBounds as "no cell".
func (b *Board) Apply(ev Event) (Placement, error) {
	switch ev.Kind {
	case EventResize:
		b.Resize(ev.X, ev.Y)
	case EventPointerMove, EventPointerDrag:
		b.pointerAt(ev.X, ev.Y)
	case EventPointerPress:
		c, err := Locate(ev.X, ev.Y, b.layout)
		if err != nil {
			return Placement{}, err
		}
		return b.Place(c)
	}
	return Placement{}, nil
}

// ApplyAll feeds events in order and returns the accepted placements.
// Rejections and misses are skipped.
func (b *Board) ApplyAll(events []Event) []Placement {
	var out []Placement
	for _, ev := range events {
		p, err := b.Apply(ev)
		if err == nil && ev.Kind == EventPointerPress {
			out = append(out, p)
		}
	}
	return out
}

func (b *Board) pointerAt(x, y float64) {
	c, err := Locate(x, y, b.layout)
	if errors.Is(err, ErrOutOfBounds) {
		b.ClearHover()
		return
	}
	_ = b.SetHover(c)
}
