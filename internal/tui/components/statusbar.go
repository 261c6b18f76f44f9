package components

import (
	"fmt"
	"strings"

	"tmanina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, streak int, nextPrayer string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if streak > 0 {
		right = fmt.Sprintf("Streak: %dd ", streak)
	}
	if nextPrayer != "" {
		right = fmt.Sprintf("Next: %s  ", nextPrayer) + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
