package cmd

import "github.com/charmbracelet/lipgloss"

// Centralized styles for consistent UX across views.
var (
	appTitle     = "textwatch"
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Background(lipgloss.Color("57")).Padding(0, 1)
	localeStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("247"))
	contentStyle = lipgloss.NewStyle().Padding(1, 2)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	reportStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// header renders the title bar, cut to width.
func header(locale string, debug bool, width int) string {
	tag := locale
	if debug {
		tag += " · debug"
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, headerStyle.Render(appTitle), localeStyle.Render(tag))
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
