package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/textwatch/cmd/face"
)

var (
	itemTitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	itemDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedTitleStyle = itemTitleStyle.Foreground(lipgloss.Color("51"))
	selectedDescStyle  = itemDescStyle.Foreground(lipgloss.Color("245"))
	queuedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type eventItem struct{ face.Event }

func (i eventItem) Title() string {
	return fmt.Sprintf("%s %s", i.Line, i.Kind)
}

func (i eventItem) Description() string {
	from, to := quote(i.From), quote(i.To)
	return fmt.Sprintf("%s → %s | %s | %s", from, to, i.At.Format("15:04:05.000"), shortID(i.TransitionID))
}

func (i eventItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{i.Line.String(), i.Kind.String(), i.From, i.To}, " "))
}

func quote(s string) string {
	if s == "" {
		return "∅"
	}
	return `"` + s + `"`
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(eventItem)
	if !ok {
		io.WriteString(w, "?")
		return
	}
	title := itemTitleStyle.Render(it.Title())
	desc := itemDescStyle.Render(it.Description())
	if index == m.Index() {
		title = selectedTitleStyle.Render(it.Title())
		desc = selectedDescStyle.Render(it.Description())
	}
	if it.Kind == face.EventQueued {
		title = queuedStyle.Render(it.Title())
	}
	io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, title, desc))
}
