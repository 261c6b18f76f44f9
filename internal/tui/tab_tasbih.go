package tui

import (
	"fmt"
	"strings"
	"time"

	"tmanina/internal/adhkar"
	"tmanina/internal/tui/components"
	"tmanina/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tasbihState tracks the counter tab: which dhikr is selected and how many
// taps were made on it this sitting. The persistent day count lives in the
// progress store; session counts reset when the selection changes.
type tasbihState struct {
	cursor  int
	session int
}

func (a App) updateTasbihKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.tasbih.cursor < len(adhkar.Options)-1 {
			a.tasbih.cursor++
			a.tasbih.session = 0
		}
		return true, a, nil
	case "k", "up":
		if a.tasbih.cursor > 0 {
			a.tasbih.cursor--
			a.tasbih.session = 0
		}
		return true, a, nil
	case " ", "enter":
		a.tasbih.session++
		a.store.Record(1, time.Now())
		return true, a, nil
	case "r":
		a.tasbih.session = 0
		return true, a, nil
	}
	return false, a, nil
}

func (a App) renderTasbihTab(cw int) string {
	t := theme.Active
	d := adhkar.Options[a.tasbih.cursor]

	// Selector list
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var list strings.Builder
	for i, opt := range adhkar.Options {
		label := truncStr(opt.Text, components.CardInnerWidth(cw)-8)
		if i == a.tasbih.cursor {
			list.WriteString(markStyle.Render("▸ "))
			list.WriteString(selStyle.Render(label))
		} else {
			list.WriteString("  ")
			list.WriteString(rowStyle.Render(label))
		}
		list.WriteString("\n")
	}

	// Counter card: big session count plus target progress
	bigStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	barW := components.CardInnerWidth(cw) - 16
	if barW < 10 {
		barW = 10
	}

	var counter strings.Builder
	counter.WriteString(textStyle.Render(d.Text))
	counter.WriteString("\n\n")
	counter.WriteString(bigStyle.Render(fmt.Sprintf("  %d", a.tasbih.session)))
	counter.WriteString(hintStyle.Render(fmt.Sprintf("  / %d", d.Target)))
	counter.WriteString("\n\n")
	counter.WriteString(components.TargetBar(d.Label, a.tasbih.session, d.Target, 8, barW))
	counter.WriteString("\n\n")
	counter.WriteString(hintStyle.Render(fmt.Sprintf("Today: %s recitations", components.FormatCount(a.snap.Today))))
	counter.WriteString("\n")
	counter.WriteString(hintStyle.Render("[Space] count  [r] reset sitting  [j/k] choose dhikr"))

	var b strings.Builder
	b.WriteString(components.ContentCard("السبحة", counter.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Dhikr", list.String(), cw))

	return b.String()
}
