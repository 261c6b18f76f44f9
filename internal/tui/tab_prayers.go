package tui

import (
	"fmt"
	"strings"
	"time"

	"tmanina/internal/aladhan"
	"tmanina/internal/cli"
	"tmanina/internal/tui/components"
	"tmanina/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPrayersTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if a.prayerData == nil {
		body := a.spinner.View() + dimStyle.Render(" Fetching prayer times for "+a.cfg.General.City+"...")
		return components.ContentCard("Prayer Times", body, cw)
	}

	if a.prayerData.Err != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		body := warnStyle.Render("Could not fetch prayer times:") + "\n" +
			dimStyle.Render(a.prayerData.Err.Error())
		return components.ContentCard("Prayer Times", body, cw)
	}

	now := time.Now()
	nowHM := now.Format("15:04")
	next := nextPrayerName(a.prayerData.Timings, now)

	arStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	nextStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nextMarkStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	pastStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var table strings.Builder
	for _, p := range a.prayerData.Timings.Ordered() {
		name := fmt.Sprintf("%-8s", p.Name)
		ar := fmt.Sprintf("%-8s", p.Arabic)
		clock := cli.FormatClock(p.Time)

		switch {
		case p.Name == next:
			table.WriteString(nextMarkStyle.Render("▸ "))
			table.WriteString(nextStyle.Render(name))
			table.WriteString(arStyle.Render(ar))
			table.WriteString(nextStyle.Render(clock))
		case p.Time < nowHM:
			table.WriteString("  ")
			table.WriteString(pastStyle.Render(name + ar + clock))
		default:
			table.WriteString("  ")
			table.WriteString(valueStyle.Render(name))
			table.WriteString(arStyle.Render(ar))
			table.WriteString(valueStyle.Render(clock))
		}
		table.WriteString("\n")
	}

	var info strings.Builder
	hijri := a.prayerData.Hijri
	info.WriteString(labelStyle.Render("Location:    "))
	info.WriteString(valueStyle.Render(fmt.Sprintf("%s, %s", a.cfg.General.City, a.cfg.General.Country)))
	info.WriteString("\n")
	info.WriteString(labelStyle.Render("Hijri date:  "))
	info.WriteString(valueStyle.Render(fmt.Sprintf("%d %s %d AH", hijri.Day, hijri.MonthEn, hijri.Year)))
	if a.prayerData.Qibla > 0 {
		info.WriteString("\n")
		info.WriteString(labelStyle.Render("Qibla:       "))
		info.WriteString(valueStyle.Render(fmt.Sprintf("%.1f° from north", a.prayerData.Qibla)))
	}
	info.WriteString("\n")
	info.WriteString(dimStyle.Render(fmt.Sprintf("Fetched %s", a.prayerData.FetchedAt.Format("15:04"))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Prayer Times", table.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Today", info.String(), cw))

	return b.String()
}

// nextPrayerName returns the name of the next prayer after now, or "" when
// Isha has passed. Sunrise is skipped; it is not a prayer.
func nextPrayerName(tm aladhan.Timings, now time.Time) string {
	nowHM := now.Format("15:04")
	for _, p := range tm.Ordered() {
		if p.Name == "Sunrise" {
			continue
		}
		if p.Time > nowHM {
			return p.Name
		}
	}
	return ""
}

// nextPrayerLabel formats the next prayer with its time for the status bar.
func nextPrayerLabel(tm aladhan.Timings, now time.Time) string {
	name := nextPrayerName(tm, now)
	if name == "" {
		return ""
	}
	for _, p := range tm.Ordered() {
		if p.Name == name {
			return fmt.Sprintf("%s %s", p.Name, cli.FormatClock(p.Time))
		}
	}
	return ""
}
