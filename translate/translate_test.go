package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("register out of range", From("register out of range"))
	assert.Equal("fault at 0x0004 div", From("fault at 0x%04x %v", uint32(4), "div"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "loaded %d bytes\n", 12)
	assert.NoError(err)
	assert.Equal("loaded 12 bytes\n", buf.String())
	assert.Equal(buf.Len(), n)
}
