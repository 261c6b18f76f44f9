package components

import (
	"fmt"
	"strings"

	"tmanina/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// TargetBar renders a labeled progress bar toward a recitation target.
func TargetBar(label string, done, target, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if target > 0 {
		pct = float64(done) / float64(target)
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(colorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorForPct(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(pct) +
		" " +
		countStyle.Render(fmt.Sprintf("%d/%d", done, target))
}

// ProgressBar renders a plain bar with percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	barColor := t.Accent
	if pct >= 1 {
		barColor = t.Green
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + " " + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

func colorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Accent)
	default:
		return string(t.Blue)
	}
}
