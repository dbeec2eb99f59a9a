package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/blazemetrics/bmdocs/pkg/chart"
)

// RenderChart draws the performance comparison as horizontal bars, one
// block per library with a bar per metric.
func RenderChart(t Theme, d chart.Dataset, width int) string {
	r := t.Renderer
	if width < MinBoxWidth*2 {
		width = MinBoxWidth * 2
	}
	inner := width - 4

	var b strings.Builder
	b.WriteString(r.NewStyle().Bold(true).Foreground(t.Primary).Render(chart.Title))
	b.WriteString("\n")
	b.WriteString(r.NewStyle().Foreground(t.Subtext).Render(chart.Caption))
	b.WriteString("\n")

	valueWidth := 8
	barWidth := inner - ChartLabelWidth - valueWidth - 2
	if barWidth < 4 {
		barWidth = 4
	}

	for _, s := range d.Series {
		b.WriteString("\n")
		color := lipgloss.Color(s.Color)
		badgeColor := t.Secondary
		if s.Winner() {
			badgeColor = t.Success
		}
		head := r.NewStyle().Bold(true).Render(s.Library) + " " + RenderBadge(t, s.Badge(), badgeColor)
		if !s.Winner() {
			if label := d.SpeedupLabel(s.Library); label != "" {
				head += " " + r.NewStyle().Faint(true).Render(label)
			}
		}
		b.WriteString(head + "\n")

		for i, metric := range chart.Metrics {
			m := chart.Measurement{}
			if i < len(s.Values) {
				m = s.Values[i]
			}
			label := runewidth.FillRight("  "+metric, ChartLabelWidth)
			value := runewidth.FillLeft(m.Label(), valueWidth)
			bar := RenderMiniBar(d.BarFraction(m), barWidth, color, t)
			b.WriteString(fmt.Sprintf("%s%s %s\n", label, bar, value))
		}
		if s.Winner() {
			b.WriteString(r.NewStyle().Foreground(t.Primary).Render("  10-50x faster with Rust core + SIMD optimizations") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(r.NewStyle().Faint(true).Render(chart.Footer))

	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width - 2).
		Render(b.String())
}
