package history

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/sumwatshade/textwatch/cmd/face"
)

func event(to string) face.Event {
	return face.Event{
		Kind:         face.EventCommit,
		TransitionID: "0f8fad5b-d9cb-469f-a165-70867728950e",
		Line:         face.Middle,
		From:         "fifteen",
		To:           to,
		At:           time.Date(2024, 3, 9, 10, 16, 0, 0, time.UTC),
	}
}

func TestHistory_Limit(t *testing.T) {
	h := New(2)
	h.Add(event("sixteen"))
	h.Add(event("seven"))
	h.Add(event("eigh"))

	assert.Len(t, h.Events, 2)
	assert.Equal(t, "seven", h.Events[0].To)
	assert.Equal(t, "eigh", h.Events[1].To)
}

func TestHistory_ListKeepsNewestFirst(t *testing.T) {
	h := New(2)
	h.Add(event("sixteen"))
	h.Update(tea.WindowSizeMsg{Width: 60, Height: 12}, 60, 12)
	h.Add(event("seven"))
	h.Add(event("eigh"))

	items := h.list.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "eigh", items[0].(eventItem).To)
	assert.Equal(t, "seven", items[1].(eventItem).To)
}

func TestHistory_View(t *testing.T) {
	h := New(0)
	assert.Contains(t, h.View(), "No transitions yet.")

	h.Add(event("sixteen"))
	h.Update(nil, 60, 12)
	assert.Contains(t, h.View(), "Transitions")
	assert.False(t, h.Filtering())
}

func TestEventItem(t *testing.T) {
	it := eventItem{event("")}
	assert.Equal(t, "middle commit", it.Title())
	assert.Equal(t, `"fifteen" → ∅ | 10:16:00.000 | 0f8fad5b`, it.Description())
	assert.Contains(t, it.FilterValue(), "fifteen")
}
