package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("variable x is not defined", From("variable %v is not defined", "x"))
	assert.Equal("line 3", From("line %d", 3))
}

func TestFprintln(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	assert.NoError(Fprintln(out, "ybf: %v", "oops"))
	assert.Equal("ybf: oops\n", out.String())
}
