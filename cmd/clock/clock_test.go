package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeValue_NextPrev(t *testing.T) {
	tests := []struct {
		name string
		in   TimeValue
		next TimeValue
		prev TimeValue
	}{
		{"midday", New(12, 30), New(12, 31), New(12, 29)},
		{"hour boundary", New(9, 59), New(10, 0), New(9, 58)},
		{"midnight", New(0, 0), New(0, 1), New(23, 59)},
		{"end of day", New(23, 59), New(0, 0), New(23, 58)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, tt.in.Next())
			assert.Equal(t, tt.prev, tt.in.Prev())
			assert.Equal(t, tt.in, tt.in.Next().Prev())
		})
	}
}

func TestTimeValue_FullDayCycle(t *testing.T) {
	tv := New(0, 0)
	for i := 0; i < 24*60; i++ {
		tv = tv.Next()
		require.True(t, tv.Valid())
	}
	assert.Equal(t, New(0, 0), tv)
}

func TestNew_Panics(t *testing.T) {
	assert.Panics(t, func() { New(24, 0) })
	assert.Panics(t, func() { New(0, 60) })
	assert.Panics(t, func() { New(-1, 0) })
}

func TestParse(t *testing.T) {
	tv, err := Parse("15:04")
	require.NoError(t, err)
	assert.Equal(t, New(15, 4), tv)
	assert.Equal(t, "15:04", tv.String())

	tv, err = Parse("3:04PM")
	require.NoError(t, err)
	assert.Equal(t, New(15, 4), tv)

	_, err = Parse("25:00")
	assert.Error(t, err)
}

func TestUntilNextMinute(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 15, 45, 0, time.UTC)
	assert.Equal(t, 15*time.Second, UntilNextMinute(now))

	onBoundary := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Minute, UntilNextMinute(onBoundary))
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 5, 1, 7, 42, 0, 0, time.UTC)
	assert.Equal(t, New(7, 42), FromTime(Fixed{T: at}.Now()))
}
