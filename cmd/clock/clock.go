// Package clock is the time source of the watch face: the captured
// hour/minute of a render pass and the schedule of minute ticks.
package clock

import (
	"fmt"
	"time"
)

// Clock provides the current time. Tests inject Fixed.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns T.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// TimeValue is the hour and minute shown by one render pass.
type TimeValue struct {
	Hour   int
	Minute int
}

// New returns the time value for hour:minute. Out of range values are a
// programming error and panic.
func New(hour, minute int) TimeValue {
	tv := TimeValue{Hour: hour, Minute: minute}
	if !tv.Valid() {
		panic(fmt.Sprintf("clock: invalid time %d:%d", hour, minute))
	}
	return tv
}

// FromTime captures the local hour and minute of t.
func FromTime(t time.Time) TimeValue {
	return TimeValue{Hour: t.Hour(), Minute: t.Minute()}
}

// Parse reads "15:04" or "3:04PM".
func Parse(s string) (TimeValue, error) {
	for _, layout := range []string{"15:04", "3:04PM", "3:04pm", time.Kitchen} {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return TimeValue{}, fmt.Errorf("parse time %q: want HH:MM", s)
}

func (tv TimeValue) Valid() bool {
	return tv.Hour >= 0 && tv.Hour < 24 && tv.Minute >= 0 && tv.Minute < 60
}

// Next is one minute later, wrapping 23:59 to 00:00.
func (tv TimeValue) Next() TimeValue {
	tv.Minute++
	if tv.Minute >= 60 {
		tv.Minute = 0
		tv.Hour = (tv.Hour + 1) % 24
	}
	return tv
}

// Prev is one minute earlier, wrapping 00:00 to 23:59.
func (tv TimeValue) Prev() TimeValue {
	tv.Minute--
	if tv.Minute < 0 {
		tv.Minute = 59
		tv.Hour = (tv.Hour + 23) % 24
	}
	return tv
}

func (tv TimeValue) String() string {
	return fmt.Sprintf("%02d:%02d", tv.Hour, tv.Minute)
}

// UntilNextMinute returns the wait until the next minute boundary after now.
func UntilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}
