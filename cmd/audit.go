package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumwatshade/textwatch/cmd/clock"
	"github.com/sumwatshade/textwatch/cmd/face"
	"github.com/sumwatshade/textwatch/cmd/words"
)

const minutesPerDay = 24 * 60

var auditCmd = newAuditCmd(viper.GetViper())

// lineRecord is the widest text seen on one line.
type lineRecord struct {
	At    clock.TimeValue
	Text  string
	Width int
}

// auditReport summarizes the rendering of every minute of a day.
type auditReport struct {
	Longest [face.NumLines]lineRecord
	// Truncated lists the minutes with a text that did not fit a line
	// buffer, once per minute.
	Truncated []clock.TimeValue
	// TooWide lists the minutes with a line wider than the face.
	TooWide []clock.TimeValue
	// PhraseWidth is the width of the whole phrase, indexed by minute of day.
	PhraseWidth [minutesPerDay]int
}

// auditDay renders all minutes of a day with r and checks them against a
// face width cells wide.
func auditDay(r *words.Renderer, width int) auditReport {
	var rep auditReport
	for m := 0; m < minutesPerDay; m++ {
		tv := clock.New(m/60, m%60)
		texts := r.Texts(tv.Hour, tv.Minute)
		lines := r.Render(tv.Hour, tv.Minute)
		stored := lines.Strings()

		wide, cut := false, false
		for i, text := range texts {
			w := lipgloss.Width(text)
			if w > rep.Longest[i].Width {
				rep.Longest[i] = lineRecord{At: tv, Text: text, Width: w}
			}
			if w > width {
				wide = true
			}
			if stored[i] != text {
				cut = true
			}
		}
		if cut {
			rep.Truncated = append(rep.Truncated, tv)
		}
		if wide {
			rep.TooWide = append(rep.TooWide, tv)
		}
		rep.PhraseWidth[m] = lipgloss.Width(r.Phrase(tv.Hour, tv.Minute))
	}
	return rep
}

// widest returns the minute of day with the longest phrase.
func (rep auditReport) widest() int {
	best := 0
	for m, w := range rep.PhraseWidth {
		if w > rep.PhraseWidth[best] {
			best = m
		}
	}
	return best
}

func (rep auditReport) write(w io.Writer, width int) error {
	b := &strings.Builder{}
	b.WriteString(headerStyle.Render("audit"))
	b.WriteString("\n")
	for i, rec := range rep.Longest {
		fmt.Fprintf(b, "%-6s longest %-12q %2d cells at %s\n", face.Line(i), rec.Text, rec.Width, rec.At)
	}
	if len(rep.Truncated) == 0 {
		b.WriteString(reportStyle.Render("no line was truncated"))
	} else {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d minutes truncated, first at %s", len(rep.Truncated), rep.Truncated[0])))
	}
	b.WriteString("\n")
	if len(rep.TooWide) == 0 {
		b.WriteString(reportStyle.Render(fmt.Sprintf("every line fits %d cells", width)))
	} else {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d minutes wider than %d cells, first at %s", len(rep.TooWide), width, rep.TooWide[0])))
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// chart draws the phrase width across the day, marking the widest minute.
func (rep auditReport) chart(width, height int) string {
	day := time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)
	end := day.Add((minutesPerDay - 1) * time.Minute)

	minV, maxV := rep.PhraseWidth[0], rep.PhraseWidth[0]
	for _, v := range rep.PhraseWidth[1:] {
		minV = min(minV, v)
		maxV = max(maxV, v)
	}
	if minV == maxV {
		maxV++
	}

	lc := timeserieslinechart.New(width, height)
	lc.SetTimeRange(day, end)
	lc.SetViewTimeAndYRange(day, end, float64(minV), float64(maxV))
	// one label every three hours
	lc.SetXStep(max(1, lc.GraphWidth()/8))
	lc.Model.XLabelFormatter = func(i int, v float64) string {
		return time.Unix(int64(v), 0).In(time.Local).Format("15:04")
	}
	for m, v := range rep.PhraseWidth {
		lc.Push(timeserieslinechart.TimePoint{Time: day.Add(time.Duration(m) * time.Minute), Value: float64(v)})
	}
	lc.DrawBraille()

	// vertical marker on the widest minute
	viewMin, viewMax := lc.Model.ViewMinX(), lc.Model.ViewMaxX()
	if viewMax > viewMin {
		at := day.Add(time.Duration(rep.widest()) * time.Minute)
		xRel := clampRatio((float64(at.Unix()) - viewMin) / (viewMax - viewMin))
		col := int(math.Round(xRel*float64(lc.GraphWidth()-1))) + lc.Model.Origin().X
		if lc.Model.YStep() > 0 {
			col++
		}
		if col >= 0 && col < lc.Canvas.Width() {
			mark := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
			for y := 0; y < lc.Model.Origin().Y; y++ {
				p := canvas.Point{X: col, Y: y}
				if lc.Canvas.Cell(p).Rune == ' ' || lc.Canvas.Cell(p).Rune == 0 {
					lc.Canvas.SetCell(p, canvas.NewCellWithStyle('│', mark))
				}
			}
		}
	}
	return lc.View()
}

func clampRatio(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func newAuditCmd(v *viper.Viper) *cobra.Command {
	var (
		noChart     bool
		chartWidth  int
		chartHeight int
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Render every minute of a day and report the longest lines",
		Long: `Renders all 1440 minutes with the configured locale, reports the
longest text of each line, any text cut to fit a line buffer, and minutes
wider than the face. A chart shows the phrase width across the day.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			r, err := s.renderer()
			if err != nil {
				return err
			}
			rep := auditDay(r, s.Display.Width)
			out := cmd.OutOrStdout()
			if err := rep.write(out, s.Display.Width); err != nil {
				return err
			}
			if noChart {
				return nil
			}
			_, err = fmt.Fprintln(out, rep.chart(chartWidth, chartHeight))
			return err
		},
	}
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the phrase width chart")
	cmd.Flags().IntVar(&chartWidth, "chart-width", 60, "chart width in cells")
	cmd.Flags().IntVar(&chartHeight, "chart-height", 12, "chart height in cells")
	return cmd
}
