package face

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoTransition    = errors.New("no transition in flight")
	ErrStaleTransition = errors.New("stale transition")
)

// EventKind classifies manager events.
type EventKind int

const (
	// EventCommit means new text started sliding in.
	EventCommit EventKind = iota
	// EventQueued means text was held back behind a running transition.
	EventQueued
	// EventComplete means a transition finished and the buffers flipped.
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventQueued:
		return "queued"
	case EventComplete:
		return "complete"
	default:
		return "commit"
	}
}

// Event describes one step of a slot's life.
type Event struct {
	Kind         EventKind
	TransitionID string
	Line         Line
	From, To     string
	At           time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDuration sets the slide duration handed to the surface.
func WithDuration(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.duration = d
		}
	}
}

// WithEase sets the slide curve handed to the surface.
func WithEase(e Ease) ManagerOption {
	return func(m *Manager) { m.ease = e }
}

func WithLogger(log *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithObserver registers fn to receive every Event.
func WithObserver(fn func(Event)) ManagerOption {
	return func(m *Manager) { m.observers = append(m.observers, fn) }
}

// WithIDs replaces the transition id generator.
func WithIDs(next func() string) ManagerOption {
	return func(m *Manager) { m.newID = next }
}

// Manager owns the three line slots. Only the inactive buffer of a slot is
// ever written; the active one stays untouched until the surface reports the
// end of the transition.
//
// A commit on a slot that is still transitioning is queued: the newest text
// replaces any earlier queued text and is applied when the running
// transition completes.
type Manager struct {
	slots     [NumLines]LineSlot
	surface   Surface
	duration  time.Duration
	ease      Ease
	log       *zap.Logger
	observers []func(Event)
	newID     func() string
	now       func() time.Time
}

func NewManager(surface Surface, opts ...ManagerOption) *Manager {
	m := &Manager{
		surface:  surface,
		duration: DefaultDuration,
		ease:     EaseOut,
		log:      zap.NewNop(),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for i := range m.slots {
		m.slots[i].Line = Line(i)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Slot returns the slot of line.
func (m *Manager) Slot(line Line) *LineSlot {
	return &m.slots[line]
}

// Show writes lines straight into the active buffers without animating.
// It is used once, for the first display at startup.
func (m *Manager) Show(lines [NumLines]string) {
	for i, text := range lines {
		s := &m.slots[i]
		s.buffer(s.active).Write(text)
		m.surface.SetText(s.Line, s.active, s.ActiveText())
	}
	m.log.Debug("initial display", zap.Strings("lines", lines[:]))
}

// Commit hands text to the slot of line. On an idle slot the text goes into
// the inactive buffer and a slide transition starts. On a transitioning slot
// the text is queued. It reports whether a slide started.
func (m *Manager) Commit(line Line, text string) bool {
	s := &m.slots[line]
	if s.state == Transitioning {
		m.queue(s, text)
		return false
	}

	target := s.Inactive()
	buf := s.buffer(target)
	buf.Write(text)

	s.state = Transitioning
	s.inflight = m.newID()

	m.surface.SetText(line, target, buf.String())
	m.surface.BeginSlide(Transition{
		ID:       s.inflight,
		Line:     line,
		From:     s.active,
		To:       target,
		Duration: m.duration,
		Ease:     m.ease,
	})

	m.log.Debug("commit",
		zap.Stringer("line", line),
		zap.String("transition", s.inflight),
		zap.String("from", s.ActiveText()),
		zap.String("to", buf.String()),
	)
	m.emit(Event{Kind: EventCommit, TransitionID: s.inflight, Line: line, From: s.ActiveText(), To: buf.String()})
	return true
}

func (m *Manager) queue(s *LineSlot, text string) {
	if matches(s.buffer(s.Inactive()), text) {
		// already sliding in
		s.pending = nil
		return
	}
	s.pending = &text
	m.log.Debug("queued behind transition",
		zap.Stringer("line", s.Line),
		zap.String("transition", s.inflight),
		zap.String("text", text),
	)
	m.emit(Event{Kind: EventQueued, TransitionID: s.inflight, Line: s.Line, From: s.Text(s.Inactive()), To: text})
}

// Complete ends the transition id on line: the buffer that slid in becomes
// the active one. A text queued meanwhile is committed right away if it
// differs from what is now on screen.
func (m *Manager) Complete(line Line, id string) error {
	s := &m.slots[line]
	if s.state != Transitioning {
		return fmt.Errorf("complete %s line: %w", line, ErrNoTransition)
	}
	if id != s.inflight {
		return fmt.Errorf("complete %s line (%s, want %s): %w", line, id, s.inflight, ErrStaleTransition)
	}

	from := s.ActiveText()
	s.active = s.active.Other()
	s.state = Idle
	s.inflight = ""
	m.emit(Event{Kind: EventComplete, TransitionID: id, Line: line, From: from, To: s.ActiveText()})

	if s.pending != nil {
		text := *s.pending
		s.pending = nil
		if NeedsUpdate(s, text) {
			m.Commit(line, text)
		}
	}
	return nil
}

// Busy reports whether any slot is transitioning.
func (m *Manager) Busy() bool {
	for i := range m.slots {
		if m.slots[i].state == Transitioning {
			return true
		}
	}
	return false
}

func (m *Manager) emit(ev Event) {
	if len(m.observers) == 0 {
		return
	}
	ev.At = m.now()
	for _, fn := range m.observers {
		fn(ev)
	}
}
