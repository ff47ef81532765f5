// This file maintains the bounded recent-question list.
package session

// DefaultHistorySize bounds the recent-question list.
const DefaultHistorySize = 5

// History is a deduplicated, most-recent-first, length-bounded list of
// previously asked questions. Questions are compared exactly as typed.
type History struct {
	max   int
	items []string
}

// NewHistory creates a History bounded to max entries.
// A non-positive max falls back to DefaultHistorySize.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// Record prepends question unless it is already present. Re-recording an
// existing question leaves the list untouched; it is not promoted to front.
func (h *History) Record(question string) {
	for _, item := range h.items {
		if item == question {
			return
		}
	}

	h.items = append([]string{question}, h.items...)
	if len(h.items) > h.max {
		h.items = h.items[:h.max]
	}
}

// Items returns a copy of the current list, most recent first.
func (h *History) Items() []string {
	out := make([]string, len(h.items))
	copy(out, h.items)
	return out
}
