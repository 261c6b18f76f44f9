package components

import (
	"strconv"
	"strings"

	"tmanina/internal/progress"
	"tmanina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a compact one-line sparkline for a series of values.
func Sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	var b strings.Builder
	for _, v := range values {
		if max == 0 || v <= 0 {
			b.WriteRune(sparkRunes[0])
			continue
		}
		idx := (v*len(sparkRunes) - 1) / max
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// WeekBarChart renders a horizontal bar per day for the trailing week.
// points are oldest first; width is the total available text width.
func WeekBarChart(points []progress.DayPoint, width int) string {
	t := theme.Active

	max := 0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	todayStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// "Sun " prefix + value suffix
	barWidth := width - 4 - 6
	if barWidth < 8 {
		barWidth = 8
	}

	var lines []string
	for i, p := range points {
		label := p.Weekday.String()[:3]
		styled := labelStyle.Render(label)
		if i == len(points)-1 {
			styled = todayStyle.Render(label)
		}

		filled := 0
		if max > 0 {
			filled = p.Value * barWidth / max
		}
		if p.Value > 0 && filled == 0 {
			filled = 1
		}

		bar := barStyle.Render(strings.Repeat("█", filled)) +
			valueStyle.Render(strings.Repeat("░", barWidth-filled))

		line := styled + " " + bar
		if p.Value > 0 {
			line += " " + valueStyle.Render(FormatCount(p.Value))
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// FormatCount formats a count with thousands separators.
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
