package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	assert := assert.New(t)

	h := &History{}
	assert.Equal(0, h.Len())
	assert.Empty(h.Lines())

	h.Add("a")
	h.Add("b")
	h.Add("c")
	assert.Equal([]string{"a", "b", "c"}, h.Lines())

	// Lines is a copy.
	lines := h.Lines()
	lines[0] = "z"
	assert.Equal("a", h.Lines()[0])
}

func TestHistory_Limit(t *testing.T) {
	assert := assert.New(t)

	h := &History{Limit: 2}
	h.Add("a")
	h.Add("b")
	h.Add("c")
	assert.Equal([]string{"b", "c"}, h.Lines())
	assert.Equal(2, h.Len())
}
