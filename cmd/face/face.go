package face

import (
	"go.uber.org/zap"

	"github.com/sumwatshade/textwatch/cmd/clock"
	"github.com/sumwatshade/textwatch/cmd/words"
)

// Face runs one render pass per time value: render the three lines, diff
// each against the screen and commit the ones that changed.
//
// Face is not safe for concurrent use. Ticks, debug input and transition
// completions must all arrive on the same goroutine.
type Face struct {
	renderer *words.Renderer
	manager  *Manager
	shown    bool
	current  clock.TimeValue
}

func New(renderer *words.Renderer, surface Surface, opts ...ManagerOption) *Face {
	return &Face{
		renderer: renderer,
		manager:  NewManager(surface, opts...),
	}
}

// Manager exposes the swap manager, mostly for inspection.
func (f *Face) Manager() *Manager { return f.manager }

// Current returns the last displayed time.
func (f *Face) Current() clock.TimeValue { return f.current }

// Show displays tv without animation.
func (f *Face) Show(tv clock.TimeValue) {
	lines := f.renderer.Render(tv.Hour, tv.Minute)
	f.manager.Show(lines.Strings())
	f.shown = true
	f.current = tv
}

// Display renders tv and starts transitions for the lines whose text
// changed. The first call falls back to Show. It returns the lines whose
// slide started; text queued behind a running slide is not reported.
func (f *Face) Display(tv clock.TimeValue) []Line {
	if !f.shown {
		f.Show(tv)
		return nil
	}
	f.current = tv

	lines := f.renderer.Render(tv.Hour, tv.Minute)
	texts := lines.Strings()
	var changed []Line
	for i, text := range texts {
		line := Line(i)
		slot := f.manager.Slot(line)
		// a transitioning slot decides itself whether to queue the text
		if slot.State() == Transitioning || NeedsUpdate(slot, text) {
			if f.manager.Commit(line, text) {
				changed = append(changed, line)
			}
		}
	}
	f.manager.log.Debug("display",
		zap.Stringer("time", tv),
		zap.Strings("lines", texts[:]),
		zap.Int("changed", len(changed)),
	)
	return changed
}

// Complete forwards a finished transition to the manager.
func (f *Face) Complete(line Line, id string) error {
	return f.manager.Complete(line, id)
}
