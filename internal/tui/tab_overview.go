package tui

import (
	"fmt"
	"strings"
	"time"

	"tmanina/internal/cli"
	"tmanina/internal/tui/components"
	"tmanina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.snap

	avg := 0
	for _, p := range s.Series {
		avg += p.Value
	}
	avg /= len(s.Series)

	cards := []struct{ Label, Value, Hint string }{
		{"Today", components.FormatCount(s.Today), "recitations"},
		{"This Week", components.FormatCount(s.Week), fmt.Sprintf("avg %s/day", components.FormatCount(avg))},
		{"This Month", components.FormatCount(s.Month), time.Now().Format("January")},
		{"Streak", cli.FormatStreak(s.Streak), streakHint(s.Streak)},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	chartW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Last 7 Days", components.WeekBarChart(s.Series[:], chartW), cw))

	if a.prayerData != nil && a.prayerData.Err == nil {
		hijri := a.prayerData.Hijri
		dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		arStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		b.WriteString("\n")
		b.WriteString(dateStyle.Render(fmt.Sprintf(" %d %s %d AH", hijri.Day, hijri.MonthEn, hijri.Year)))
		b.WriteString(dateStyle.Render("  ·  "))
		b.WriteString(arStyle.Render(fmt.Sprintf("%d %s %d هـ", hijri.Day, hijri.MonthAr, hijri.Year)))
	}

	return b.String()
}

func streakHint(days int) string {
	switch {
	case days == 0:
		return "start today"
	case days < 7:
		return "keep going"
	default:
		return "ما شاء الله"
	}
}
