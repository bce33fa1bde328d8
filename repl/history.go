package repl

import (
	"slices"
)

// History is the list of lines entered into a shell, oldest first.
type History struct {
	Limit int // Maximum lines kept; 0 is unlimited.

	lines []string
}

// Add appends a line, dropping the oldest lines past the limit.
func (h *History) Add(line string) {
	h.lines = append(h.lines, line)
	if h.Limit > 0 && len(h.lines) > h.Limit {
		h.lines = slices.Delete(h.lines, 0, len(h.lines)-h.Limit)
	}
}

// Lines returns a copy of the history.
func (h *History) Lines() []string {
	return slices.Clone(h.lines)
}

// Len returns the number of lines in the history.
func (h *History) Len() int {
	return len(h.lines)
}
