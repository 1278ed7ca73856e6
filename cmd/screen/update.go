package screen

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sumwatshade/textwatch/cmd/clock"
)

const frameInterval = time.Second / 60

// minuteMsg is delivered at every minute boundary.
type minuteMsg time.Time

// frameMsg advances the running slides.
type frameMsg time.Time

func (s *Screen) tickCmd() tea.Cmd {
	return tea.Tick(clock.UntilNextMinute(s.clock.Now()), func(t time.Time) tea.Msg {
		return minuteMsg(t)
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init shows the current time without animation and schedules the first
// minute tick.
func (s *Screen) Init() tea.Cmd {
	now := s.clock.Now()
	s.face.Show(clock.FromTime(now))
	s.lastFrame = now
	return s.tickCmd()
}

// Update handles minute ticks and animation frames. Every face mutation
// happens here, on the program's event loop.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case minuteMsg:
		tv := clock.FromTime(time.Time(msg))
		s.face.Display(tv)
		return tea.Batch(s.tickCmd(), s.frames())
	case frameMsg:
		s.animating = false
		s.advance(time.Time(msg))
		return s.frames()
	}
	return nil
}

// Step moves the displayed time by delta minutes. It only works in debug
// mode; the next minute tick returns to the wall clock.
func (s *Screen) Step(delta int) tea.Cmd {
	if !s.debug {
		return nil
	}
	tv := s.face.Current()
	for ; delta > 0; delta-- {
		tv = tv.Next()
	}
	for ; delta < 0; delta++ {
		tv = tv.Prev()
	}
	s.face.Display(tv)
	return s.frames()
}

// advance finishes the slides whose duration has elapsed at now.
func (s *Screen) advance(now time.Time) {
	s.lastFrame = now
	for i := range s.slides {
		sl := s.slides[i]
		if sl == nil || sl.progress(now) < 1 {
			continue
		}
		// cleared first: completing may start the queued slide on this line
		s.slides[i] = nil
		if err := s.face.Complete(sl.tr.Line, sl.tr.ID); err != nil {
			s.log.Warn("transition completion rejected",
				zap.Stringer("line", sl.tr.Line),
				zap.String("transition", sl.tr.ID),
				zap.Error(err),
			)
		}
	}
}

// frames schedules the next frame while slides are playing.
func (s *Screen) frames() tea.Cmd {
	if s.animating || !s.Animating() {
		return nil
	}
	s.animating = true
	return frameCmd()
}
