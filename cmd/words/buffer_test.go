package words

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestLineBuffer_Write(t *testing.T) {
	var b LineBuffer
	b.Write("seventeen")
	assert.Equal(t, "seventeen", b.String())
	assert.Equal(t, 9, b.Len())

	// shorter text must not leave the tail of the old one
	b.Write("six")
	assert.Equal(t, "six", b.String())
	assert.Zero(t, b.Bytes()[3])

	b.Write("")
	assert.True(t, b.Empty())
}

func TestLineBuffer_Truncates(t *testing.T) {
	var b LineBuffer
	b.Write(strings.Repeat("x", 100))
	assert.Equal(t, Capacity-1, b.Len())
	assert.Zero(t, b.Bytes()[Capacity-1])
}

func TestLineBuffer_TruncatesOnRuneBoundary(t *testing.T) {
	var b LineBuffer
	b.Write(strings.Repeat("ș", 30)) // 60 bytes
	assert.LessOrEqual(t, b.Len(), Capacity-1)
	assert.Equal(t, 42, b.Len())
	assert.True(t, utf8.ValidString(b.String()))
}
