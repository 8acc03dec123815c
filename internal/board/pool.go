package board

import "math/rand"

// FaceID is an opaque token naming a visual variant of a piece. The asset
// loader resolves it; the board never interprets it.
type FaceID string

// Pool hands out face identifiers for one color while avoiding immediate
// repeats. Only the stalest half of the sequence is eligible on each draw.
// The population never changes: items are reordered, not added or dropped.
type Pool struct {
	items []FaceID
	rng   *rand.Rand
}

// NewPool creates a pool over a private copy of items.
func NewPool(items []FaceID, rng *rand.Rand) *Pool {
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) // #nosec G404 -- cosmetic only
	}
	p := &Pool{
		items: make([]FaceID, len(items)),
		rng:   rng,
	}
	copy(p.items, items)
	return p
}

// Len returns the pool population.
func (p *Pool) Len() int {
	return len(p.items)
}

// Items returns a copy of the current order, front first.
func (p *Pool) Items() []FaceID {
	out := make([]FaceID, len(p.items))
	copy(out, p.items)
	return out
}

// Draw picks a face uniformly from index range [(P-1)/2, P-1], moves it to
// the front, then rotates the whole sequence one step to the right. An
// empty pool yields the zero FaceID.
func (p *Pool) Draw() FaceID {
	n := len(p.items)
	if n == 0 {
		return ""
	}
	last := n - 1
	lo := last / 2
	idx := lo + p.rng.Intn(last-lo+1)
	choice := p.items[idx]

	// Move to front: shift [0, idx) right by one.
	copy(p.items[1:idx+1], p.items[:idx])
	p.items[0] = choice

	// Rotate right by one: the tail element wraps to the front.
	tail := p.items[last]
	copy(p.items[1:], p.items[:last])
	p.items[0] = tail
	return choice
}
