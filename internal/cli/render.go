package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if w := lipgloss.Width(h); w > widths[i] {
				widths[i] = w
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i >= numCols {
					break
				}
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	pad := func(s string, w int) string {
		gap := w - lipgloss.Width(s)
		if gap < 0 {
			gap = 0
		}
		return s + strings.Repeat(" ", gap)
	}

	if len(t.Headers) > 0 {
		b.WriteString("  ")
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(pad(h, widths[i])))
			if i < numCols-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")

		b.WriteString("  ")
		for i := range t.Headers {
			b.WriteString(dimStyle.Render(strings.Repeat("─", widths[i])))
			if i < numCols-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	for _, row := range t.Rows {
		b.WriteString("  ")
		for i, cell := range row {
			if i >= numCols {
				break
			}
			b.WriteString(valueStyle.Render(pad(cell, widths[i])))
			if i < numCols-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderKeyValues renders aligned label/value pairs, one per line.
func RenderKeyValues(pairs [][2]string) string {
	labelW := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p[0]); w > labelW {
			labelW = w
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		gap := labelW - lipgloss.Width(p[0])
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(p[0]))
		b.WriteString(strings.Repeat(" ", gap+2))
		b.WriteString(valueStyle.Render(p[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderBar renders a simple horizontal bar scaled to width.
func RenderBar(value, maxValue, width int) string {
	if maxValue <= 0 || width <= 0 {
		return ""
	}
	filled := value * width / maxValue
	if filled > width {
		filled = width
	}
	if value > 0 && filled == 0 {
		filled = 1
	}

	bar := lipgloss.NewStyle().Foreground(ColorAccent).
		Render(strings.Repeat("█", filled))
	rest := dimStyle.Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// Warn renders a muted warning line.
func Warn(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorOrange).Render(fmt.Sprintf("  %s", msg))
}
