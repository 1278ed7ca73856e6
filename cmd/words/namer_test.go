package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_AllValuesNonEmpty(t *testing.T) {
	for _, loc := range []Locale{English, Romanian} {
		voc := loc.Rules().Vocabulary()
		for n := 0; n < 60; n++ {
			tokens := voc.Name(n)
			if assert.NotEmpty(t, tokens, "%s %d", loc, n) {
				for _, tok := range tokens {
					assert.NotEmpty(t, tok, "%s %d", loc, n)
				}
			}
		}
	}
}

func TestName_TeensAreIrregular(t *testing.T) {
	for _, loc := range []Locale{English, Romanian} {
		voc := loc.Rules().Vocabulary()
		for n := 11; n <= 19; n++ {
			assert.Equal(t, []string{voc.Teens[n-10]}, voc.Name(n), "%s %d", loc, n)
		}
	}
}

func TestName_English(t *testing.T) {
	voc := English.Rules().Vocabulary()
	tests := []struct {
		n        int
		expected []string
	}{
		{0, []string{"o'clock"}},
		{7, []string{"seven"}},
		{10, []string{"ten"}},
		{12, []string{"twelve"}},
		{20, []string{"twenty"}},
		{21, []string{"twenty", "one"}},
		{59, []string{"fifty", "nine"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, voc.Name(tt.n), "n=%d", tt.n)
	}
}

func TestName_Romanian(t *testing.T) {
	voc := Romanian.Rules().Vocabulary()
	assert.Equal(t, []string{"fix"}, voc.Name(0))
	assert.Equal(t, []string{"zece"}, voc.Name(10))
	assert.Equal(t, []string{"șaptesprezece"}, voc.Name(17))
	assert.Equal(t, []string{"douăzeci", "două"}, voc.Name(22))
}

func TestName_OutOfRangePanics(t *testing.T) {
	voc := English.Rules().Vocabulary()
	assert.Panics(t, func() { voc.Name(-1) })
	assert.Panics(t, func() { voc.Name(60) })
}
