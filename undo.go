package main

// History keeps whole-grid snapshots taken before each mutation. It holds at
// most limit entries; the oldest is dropped first. There is no redo.
type History struct {
	stack []*Grid
	limit int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = historyLimit
	}
	return &History{limit: limit}
}

// Push records a deep copy of g.
func (h *History) Push(g *Grid) {
	h.stack = append(h.stack, g.Clone())
	if len(h.stack) > h.limit {
		excess := len(h.stack) - h.limit
		clear(h.stack[:excess])
		h.stack = h.stack[excess:]
	}
}

// Undo restores g to the most recent snapshot. With nothing recorded it
// reports false and leaves g alone.
func (h *History) Undo(g *Grid) bool {
	if len(h.stack) == 0 {
		return false
	}
	lastIndex := len(h.stack) - 1
	snap := h.stack[lastIndex]
	h.stack[lastIndex] = nil
	h.stack = h.stack[:lastIndex]

	g.restore(snap)
	return true
}

func (h *History) Len() int {
	return len(h.stack)
}
