package screen

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/textwatch/cmd/face"
)

var (
	boldLineStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	lightLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	faceStyle      = lipgloss.NewStyle().Background(lipgloss.Color("0")).Padding(1, 2)
	debugStyle     = lipgloss.NewStyle().Faint(true)
)

// View renders the three lines inside the face.
func (s *Screen) View() string {
	rows := make([]string, 0, face.NumLines+1)
	for i := 0; i < face.NumLines; i++ {
		line := face.Line(i)
		style := lightLineStyle
		if line == face.Top {
			style = boldLineStyle
		}
		rows = append(rows, style.Render(s.Row(line)))
	}
	if s.debug {
		rows = append(rows, debugStyle.Render(s.face.Current().String()))
	}
	return faceStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Row returns the visible cells of line, exactly width runes long. During
// a slide the outgoing text moves left while the incoming text follows it
// in from the right edge.
func (s *Screen) Row(line face.Line) string {
	slot := s.face.Manager().Slot(line)
	sl := s.slides[line]
	if sl == nil {
		return fit(s.texts[line][slot.Active()], s.width)
	}

	p := curve(sl.tr.Ease)(sl.progress(s.lastFrame))
	offset := int(math.Round(p * float64(s.width)))
	strip := []rune(fit(s.texts[line][sl.tr.From], s.width) + fit(s.texts[line][sl.tr.To], s.width))
	return string(strip[offset : offset+s.width])
}

// fit pads or cuts text to exactly width runes.
func fit(text string, width int) string {
	r := []rune(text)
	if len(r) >= width {
		return string(r[:width])
	}
	return text + strings.Repeat(" ", width-len(r))
}
