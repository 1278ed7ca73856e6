// Package history lists the most recent line transitions of the face.
package history

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/textwatch/cmd/face"
)

// DefaultLimit is the number of events kept.
const DefaultLimit = 100

var (
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	titleBarStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	emptyStyle     = lipgloss.NewStyle().Faint(true)
)

// History holds the recorded events plus the interactive list model.
type History struct {
	Events []face.Event
	limit  int
	list   list.Model
	ready  bool
}

func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Add records ev, dropping the oldest event beyond the limit. It has the
// signature of a face observer.
func (h *History) Add(ev face.Event) {
	h.Events = append(h.Events, ev)
	if len(h.Events) > h.limit {
		h.Events = h.Events[len(h.Events)-h.limit:]
	}
	if h.ready {
		h.list.InsertItem(0, eventItem{ev}) // newest first
		if n := len(h.list.Items()); n > h.limit {
			h.list.RemoveItem(n - 1)
		}
	}
}

// ensureList creates or resizes the list model.
func (h *History) ensureList(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	listHeight := max(4, height)
	if !h.ready {
		items := make([]list.Item, 0, len(h.Events))
		for i := len(h.Events) - 1; i >= 0; i-- {
			items = append(items, eventItem{h.Events[i]})
		}
		l := list.New(items, itemDelegate{}, width, listHeight)
		l.Title = "Transitions"
		l.SetShowStatusBar(true)
		l.SetShowPagination(true)
		l.SetFilteringEnabled(true)
		l.SetShowHelp(false)
		l.Styles.Title = titleBarStyle
		l.Styles.StatusBar = statusBarStyle
		h.list = l
		h.ready = true
		return
	}
	h.list.SetSize(width, listHeight)
}

// Update handles list navigation.
func (h *History) Update(msg tea.Msg, width, height int) tea.Cmd {
	h.ensureList(width, height)
	if !h.ready {
		return nil
	}
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return cmd
}

// Filtering reports whether the list is capturing keys for its filter.
func (h *History) Filtering() bool {
	return h.ready && h.list.FilterState() == list.Filtering
}

func (h *History) View() string {
	if len(h.Events) == 0 {
		return titleBarStyle.Render("Transitions") + "\n" + emptyStyle.Render("No transitions yet.")
	}
	if !h.ready {
		return titleBarStyle.Render("Transitions") + "\n" + "Loading..."
	}
	return h.list.View()
}
