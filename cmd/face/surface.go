package face

import "time"

// DefaultDuration is the length of a slide transition.
const DefaultDuration = 400 * time.Millisecond

// Ease names the timing curve of a transition.
type Ease int

const (
	EaseOut Ease = iota
	Linear
)

func (e Ease) String() string {
	if e == Linear {
		return "linear"
	}
	return "ease-out"
}

// Transition asks the surface to slide buffer To into view while buffer From
// slides out.
type Transition struct {
	ID       string
	Line     Line
	From     BufferID
	To       BufferID
	Duration time.Duration
	Ease     Ease
}

// Surface draws the lines. It reports the end of every transition it was
// given by calling Face.Complete (or Manager.Complete) with the transition
// id, from the same goroutine that drives the face.
type Surface interface {
	SetText(line Line, buf BufferID, text string)
	BeginSlide(tr Transition)
}
