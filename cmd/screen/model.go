// Package screen is the terminal surface of the watch face. It keeps the
// text of both buffers of every line, plays slide transitions frame by frame
// and reports their end back to the face.
package screen

import (
	"time"

	"go.uber.org/zap"

	"github.com/sumwatshade/textwatch/cmd/clock"
	"github.com/sumwatshade/textwatch/cmd/face"
	"github.com/sumwatshade/textwatch/cmd/words"
)

// DefaultWidth is the face width in terminal cells.
const DefaultWidth = 24

// Option configures a Screen.
type Option func(*Screen)

func WithClock(c clock.Clock) Option {
	return func(s *Screen) { s.clock = c }
}

// WithWidth sets the width of the face. Words longer than the width are cut.
func WithWidth(w int) Option {
	return func(s *Screen) {
		if w > 0 {
			s.width = w
		}
	}
}

// WithDebug enables manual minute stepping.
func WithDebug(on bool) Option {
	return func(s *Screen) { s.debug = on }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Screen) {
		if log != nil {
			s.log = log
		}
	}
}

// WithFaceOptions passes options through to the swap manager.
func WithFaceOptions(opts ...face.ManagerOption) Option {
	return func(s *Screen) { s.faceOpts = append(s.faceOpts, opts...) }
}

// slide is a transition being played.
type slide struct {
	tr    face.Transition
	start time.Time
}

// progress returns the linear progress of the slide at now, in [0, 1].
func (sl *slide) progress(now time.Time) float64 {
	if sl.tr.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(sl.start)) / float64(sl.tr.Duration)
	return clampUnit(p)
}

// Screen implements face.Surface on top of Bubble Tea.
type Screen struct {
	face  *face.Face
	texts [face.NumLines][2]string
	// one slide per line at most; the manager queues the rest
	slides    [face.NumLines]*slide
	clock     clock.Clock
	width     int
	debug     bool
	log       *zap.Logger
	faceOpts  []face.ManagerOption
	animating bool
	lastFrame time.Time
}

var _ face.Surface = (*Screen)(nil)

// New builds the surface and the face it drives.
func New(renderer *words.Renderer, opts ...Option) *Screen {
	s := &Screen{
		clock: clock.System{},
		width: DefaultWidth,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	faceOpts := append([]face.ManagerOption{face.WithLogger(s.log)}, s.faceOpts...)
	s.face = face.New(renderer, s, faceOpts...)
	return s
}

// Face returns the face driven by this screen.
func (s *Screen) Face() *face.Face { return s.face }

// SetText stores the text of one buffer.
func (s *Screen) SetText(line face.Line, buf face.BufferID, text string) {
	s.texts[line][buf] = text
}

// BeginSlide starts playing tr. Frames are scheduled by the next Update.
func (s *Screen) BeginSlide(tr face.Transition) {
	s.slides[tr.Line] = &slide{tr: tr, start: s.clock.Now()}
	s.log.Debug("slide started",
		zap.Stringer("line", tr.Line),
		zap.String("transition", tr.ID),
		zap.Duration("duration", tr.Duration),
	)
}

// Animating reports whether any slide is playing.
func (s *Screen) Animating() bool {
	for _, sl := range s.slides {
		if sl != nil {
			return true
		}
	}
	return false
}
