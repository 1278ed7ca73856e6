package face

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumwatshade/textwatch/cmd/clock"
	"github.com/sumwatshade/textwatch/cmd/words"
)

type setTextCall struct {
	line Line
	buf  BufferID
	text string
}

// recordingSurface captures surface calls for assertions.
type recordingSurface struct {
	texts  []setTextCall
	slides []Transition
}

func (s *recordingSurface) SetText(line Line, buf BufferID, text string) {
	s.texts = append(s.texts, setTextCall{line, buf, text})
}

func (s *recordingSurface) BeginSlide(tr Transition) {
	s.slides = append(s.slides, tr)
}

func (s *recordingSurface) lastSlide(line Line) Transition {
	for i := len(s.slides) - 1; i >= 0; i-- {
		if s.slides[i].Line == line {
			return s.slides[i]
		}
	}
	return Transition{}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tr-%d", n)
	}
}

func newTestFace(t *testing.T, opts ...ManagerOption) (*Face, *recordingSurface) {
	t.Helper()
	surface := &recordingSurface{}
	opts = append([]ManagerOption{WithIDs(sequentialIDs())}, opts...)
	f := New(words.NewRenderer(words.English.Rules()), surface, opts...)
	return f, surface
}

func TestFace_ShowIsNotAnimated(t *testing.T) {
	f, surface := newTestFace(t)
	f.Show(clock.New(3, 15))

	assert.Empty(t, surface.slides)
	assert.Equal(t, []setTextCall{
		{Top, BufferA, "three"},
		{Middle, BufferA, "fifteen"},
		{Bottom, BufferA, ""},
	}, surface.texts)
	assert.Equal(t, "fifteen", f.Manager().Slot(Middle).ActiveText())
	assert.False(t, f.Manager().Busy())
}

func TestFace_FirstDisplayFallsBackToShow(t *testing.T) {
	f, surface := newTestFace(t)
	changed := f.Display(clock.New(3, 15))
	assert.Nil(t, changed)
	assert.Empty(t, surface.slides)
	assert.Equal(t, clock.New(3, 15), f.Current())
}

func TestFace_DisplayCommitsChangedLinesOnly(t *testing.T) {
	f, surface := newTestFace(t)
	f.Show(clock.New(3, 15))

	changed := f.Display(clock.New(3, 16))
	assert.Equal(t, []Line{Middle}, changed)
	require.Len(t, surface.slides, 1)

	tr := surface.slides[0]
	assert.Equal(t, Transition{ID: "tr-1", Line: Middle, From: BufferA, To: BufferB, Duration: DefaultDuration, Ease: EaseOut}, tr)
	assert.Equal(t, setTextCall{Middle, BufferB, "sixteen"}, surface.texts[len(surface.texts)-1])

	slot := f.Manager().Slot(Middle)
	assert.Equal(t, Transitioning, slot.State())
	// the visible buffer is untouched until the slide completes
	assert.Equal(t, "fifteen", slot.ActiveText())
	assert.Equal(t, "sixteen", slot.Text(BufferB))
}

func TestFace_CompleteFlipsAndDifferSettles(t *testing.T) {
	f, surface := newTestFace(t)
	f.Show(clock.New(3, 15))
	f.Display(clock.New(3, 16))

	require.NoError(t, f.Complete(Middle, "tr-1"))
	slot := f.Manager().Slot(Middle)
	assert.Equal(t, Idle, slot.State())
	assert.Equal(t, BufferB, slot.Active())
	assert.Equal(t, "sixteen", slot.ActiveText())

	assert.False(t, NeedsUpdate(slot, "sixteen"))
	assert.Empty(t, f.Display(clock.New(3, 16)))
	assert.Len(t, surface.slides, 1)

	// next change writes the other buffer again
	f.Display(clock.New(3, 20))
	assert.Equal(t, Transition{ID: "tr-2", Line: Middle, From: BufferB, To: BufferA, Duration: DefaultDuration, Ease: EaseOut}, surface.lastSlide(Middle))
}

func TestFace_CompleteErrors(t *testing.T) {
	f, _ := newTestFace(t)
	f.Show(clock.New(3, 15))

	assert.ErrorIs(t, f.Complete(Top, "tr-1"), ErrNoTransition)

	f.Display(clock.New(3, 16))
	assert.ErrorIs(t, f.Complete(Middle, "tr-9"), ErrStaleTransition)
	assert.Equal(t, Transitioning, f.Manager().Slot(Middle).State())
	assert.Equal(t, BufferA, f.Manager().Slot(Middle).Active())
}

func TestFace_CommitDuringTransitionIsQueued(t *testing.T) {
	f, surface := newTestFace(t)
	f.Show(clock.New(3, 15))
	f.Display(clock.New(3, 16)) // tr-1 on middle

	changed := f.Display(clock.New(3, 17)) // seven / teen
	assert.Equal(t, []Line{Bottom}, changed, "queued middle text did not start a slide")

	middle := f.Manager().Slot(Middle)
	pending, ok := middle.Pending()
	require.True(t, ok)
	assert.Equal(t, "seven", pending)
	// the in-flight target is left alone
	assert.Equal(t, "sixteen", middle.Text(BufferB))
	assert.Len(t, surface.slides, 2) // tr-1 middle, tr-2 bottom

	require.NoError(t, f.Complete(Middle, "tr-1"))
	_, ok = middle.Pending()
	assert.False(t, ok)
	assert.Equal(t, Transitioning, middle.State())
	assert.Equal(t, Transition{ID: "tr-3", Line: Middle, From: BufferB, To: BufferA, Duration: DefaultDuration, Ease: EaseOut}, surface.lastSlide(Middle))
	assert.Equal(t, "seven", middle.Text(BufferA))
}

func TestFace_QueuedTextMatchingTargetIsDropped(t *testing.T) {
	f, surface := newTestFace(t)
	f.Show(clock.New(3, 15))
	f.Display(clock.New(3, 16))
	assert.Empty(t, f.Display(clock.New(3, 20))) // queue "twenty"
	assert.Empty(t, f.Display(clock.New(3, 16))) // back to the in-flight text

	_, ok := f.Manager().Slot(Middle).Pending()
	assert.False(t, ok)

	require.NoError(t, f.Complete(Middle, "tr-1"))
	assert.Equal(t, Idle, f.Manager().Slot(Middle).State())
	assert.Len(t, surface.slides, 1)
}

func TestFace_QueuedRevertIsApplied(t *testing.T) {
	f, _ := newTestFace(t)
	f.Show(clock.New(3, 15))
	f.Display(clock.New(3, 16))
	f.Display(clock.New(3, 15)) // back to what is on screen

	require.NoError(t, f.Complete(Middle, "tr-1"))
	middle := f.Manager().Slot(Middle)
	assert.Equal(t, Transitioning, middle.State())
	assert.Equal(t, "fifteen", middle.Text(middle.Inactive()))
}

func TestFace_ClearingALineIsAChange(t *testing.T) {
	f, surface := newTestFace(t)
	f.Show(clock.New(3, 21))
	assert.Equal(t, "one", f.Manager().Slot(Bottom).ActiveText())

	changed := f.Display(clock.New(3, 30))
	assert.ElementsMatch(t, []Line{Middle, Bottom}, changed)
	assert.Equal(t, setTextCall{Bottom, BufferB, ""}, surface.texts[len(surface.texts)-1])
}

func TestManager_Options(t *testing.T) {
	var events []Event
	surface := &recordingSurface{}
	m := NewManager(surface,
		WithIDs(sequentialIDs()),
		WithDuration(0), // ignored
		WithEase(Linear),
		WithObserver(func(ev Event) { events = append(events, ev) }),
	)
	m.Show([NumLines]string{"four", "", ""})
	m.Commit(Middle, "five")
	m.Commit(Middle, "six")
	require.NoError(t, m.Complete(Middle, "tr-1"))

	assert.Equal(t, DefaultDuration, surface.slides[0].Duration)
	assert.Equal(t, Linear, surface.slides[0].Ease)

	kinds := make([]EventKind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
		assert.False(t, ev.At.IsZero())
	}
	assert.Equal(t, []EventKind{EventCommit, EventQueued, EventComplete, EventCommit}, kinds)
	assert.Equal(t, "five", events[2].To)
	assert.Equal(t, "six", events[3].To)
}

func TestNeedsUpdate(t *testing.T) {
	slot := &LineSlot{}
	assert.False(t, NeedsUpdate(slot, ""))
	assert.True(t, NeedsUpdate(slot, "one"))

	slot.buffer(BufferA).Write("seventeen")
	assert.False(t, NeedsUpdate(slot, "seventeen"))
	assert.True(t, NeedsUpdate(slot, "seven"))
	assert.True(t, NeedsUpdate(slot, "seventeens"))
	assert.True(t, NeedsUpdate(slot, ""))

	// only the active buffer counts
	slot.buffer(BufferB).Write("eight")
	assert.True(t, NeedsUpdate(slot, "eight"))
}
