package model

// DefaultHistorySize is how many generation hashes a History keeps
const DefaultHistorySize = 5

// stagnationWindow covers still lifes and oscillators up to period 3
const stagnationWindow = 3

// History stores recent board hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

func NewHistory(size int) *History {
	if size < stagnationWindow {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Record adds the board's state and drops the oldest beyond the history size
func (h *History) Record(b *Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether b repeats one of the last three recorded generations
func (h *History) IsStagnant(b *Board) bool {
	current := b.Hash()
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-stagnationWindow; i-- {
		if h.hashes[i] == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
