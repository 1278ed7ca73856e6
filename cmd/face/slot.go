// Package face keeps the three text lines of the watch face and swaps each
// of them through a pair of buffers, so the surface can slide new text in
// while the old text is still on screen.
package face

import (
	"fmt"

	"github.com/sumwatshade/textwatch/cmd/words"
)

// Line identifies one of the three display lines.
type Line int

const (
	Top Line = iota
	Middle
	Bottom
)

// NumLines is the number of lines on the face.
const NumLines = 3

func (l Line) String() string {
	switch l {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("Line(%d)", int(l))
	}
}

// BufferID names one buffer of a slot's pair.
type BufferID int

const (
	BufferA BufferID = iota
	BufferB
)

// Other returns the other buffer of the pair.
func (b BufferID) Other() BufferID { return 1 - b }

func (b BufferID) String() string {
	if b == BufferB {
		return "B"
	}
	return "A"
}

// State is the transition state of a slot.
//
//	         Commit
//	Idle ──────────────► Transitioning
//	  ▲                        │
//	  └────────────────────────┘
//	          Complete
type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// LineSlot is one display line: two buffers, the one on screen, and the
// transition currently moving between them.
type LineSlot struct {
	Line    Line
	buffers [2]words.LineBuffer
	active  BufferID
	state   State
	// id of the in-flight transition
	inflight string
	pending  *string
}

// Active returns the buffer currently on screen.
func (s *LineSlot) Active() BufferID { return s.active }

// Inactive returns the buffer that the next commit writes into.
func (s *LineSlot) Inactive() BufferID { return s.active.Other() }

func (s *LineSlot) State() State { return s.state }

// Text returns the content of buffer b.
func (s *LineSlot) Text(b BufferID) string { return s.buffers[b].String() }

// ActiveText returns the text currently on screen.
func (s *LineSlot) ActiveText() string { return s.Text(s.active) }

// Pending returns the text queued behind the in-flight transition.
func (s *LineSlot) Pending() (string, bool) {
	if s.pending == nil {
		return "", false
	}
	return *s.pending, true
}

func (s *LineSlot) buffer(b BufferID) *words.LineBuffer { return &s.buffers[b] }
