package cmd

import (
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sumwatshade/textwatch/cmd/face"
	"github.com/sumwatshade/textwatch/cmd/history"
	"github.com/sumwatshade/textwatch/cmd/screen"
)

type model struct {
	screen      *screen.Screen
	history     *history.History
	showHistory bool
	locale      string
	debug       bool
	faceWidth   int
	width       int
	height      int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel(s Settings, log *zap.Logger, opts ...screen.Option) (model, error) {
	r, err := s.renderer()
	if err != nil {
		return model{}, err
	}
	h := history.New(history.DefaultLimit)
	base := []screen.Option{
		screen.WithWidth(s.Display.Width),
		screen.WithDebug(s.Debug),
		screen.WithLogger(log),
		screen.WithFaceOptions(
			face.WithDuration(s.Transition.Duration),
			face.WithObserver(h.Add),
		),
	}
	return model{
		screen:    screen.New(r, append(base, opts...)...),
		history:   h,
		locale:    s.Locale,
		debug:     s.Debug,
		faceWidth: s.Display.Width,
		keys:      newKeyMap(s.Debug),
		help:      bhelp.New(),
	}, nil
}

func (m model) Init() tea.Cmd {
	return m.screen.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		// the filter input owns the keyboard while it is open
		if m.showHistory && m.history.Filtering() {
			return m, m.history.Update(msg, m.historyWidth(), historyHeight(m.height))
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.History):
			m.showHistory = !m.showHistory
			return m, nil
		case m.showHistory:
			// arrows scroll the log while it is open
			return m, m.history.Update(msg, m.historyWidth(), historyHeight(m.height))
		case key.Matches(msg, m.keys.Earlier):
			return m, m.screen.Step(-1)
		case key.Matches(msg, m.keys.Later):
			return m, m.screen.Step(1)
		}
		return m, nil
	}

	if cmd := m.screen.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.showHistory {
		if cmd := m.history.Update(msg, m.historyWidth(), historyHeight(m.height)); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	faceView := contentStyle.Render(m.screen.View())
	body := faceView
	if m.showHistory {
		pane := lipgloss.NewStyle().Width(m.historyWidth()).Render(contentStyle.Render(m.history.View()))
		body = lipgloss.JoinHorizontal(lipgloss.Top, faceView, dividerStyle.Render("│"), pane)
	}

	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	foot := footerStyle.Render(m.help.View(m.keys))
	layout := lipgloss.JoinVertical(lipgloss.Left, header(m.locale, m.debug, m.width), sep, body, sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().MaxWidth(m.width).Render(layout)
	}
	return layout
}

// historyWidth is what is left of the terminal next to the face.
func (m model) historyWidth() int {
	return max(20, m.width-m.faceWidth-8)
}

// historyHeight leaves room for the header, separators and help line.
func historyHeight(total int) int {
	return max(4, total-8)
}
