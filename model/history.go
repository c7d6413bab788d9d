package model

// DefaultHistorySize keeps enough states to spot still lifes and short oscillators.
const DefaultHistorySize = 5

// History stores recent grid hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history holding at most size hashes
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Push adds the grid's current state and drops the oldest entry when full
func (h *History) Push(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Repeats reports whether g matches a recorded state. period is the distance back to the
// most recent match: 1 for a still life, 2 for a blinker.
func (h *History) Repeats(g *Grid) (period int, ok bool) {
	current := g.Hash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == current {
			return len(h.hashes) - i, true
		}
	}
	return 0, false
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
