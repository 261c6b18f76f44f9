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

// adhkarState tracks the adhkar tab: the collection list, and once a
// collection is opened, the current item and how many of its repeats are
// done. Each completed repeat is recorded in the progress store.
type adhkarState struct {
	inDetail bool
	cursor   int // collection list cursor
	item     int // current item inside the open collection
	reps     int // completed repeats of the current item
	finished bool
}

func (a App) updateAdhkarKeys(key string) (bool, tea.Model, tea.Cmd) {
	if !a.adhkar.inDetail {
		switch key {
		case "j", "down":
			if a.adhkar.cursor < len(adhkar.Collections)-1 {
				a.adhkar.cursor++
			}
			return true, a, nil
		case "k", "up":
			if a.adhkar.cursor > 0 {
				a.adhkar.cursor--
			}
			return true, a, nil
		case "enter", " ":
			a.adhkar.inDetail = true
			a.adhkar.item = 0
			a.adhkar.reps = 0
			a.adhkar.finished = false
			return true, a, nil
		}
		return false, a, nil
	}

	col := adhkar.Collections[a.adhkar.cursor]

	switch key {
	case "esc", "q":
		a.adhkar.inDetail = false
		return true, a, nil
	case " ", "enter":
		if a.adhkar.finished {
			a.adhkar.inDetail = false
			return true, a, nil
		}
		a.store.Record(1, time.Now())
		a.adhkar.reps++
		if a.adhkar.reps >= col.Items[a.adhkar.item].Repeats {
			if a.adhkar.item+1 < len(col.Items) {
				a.adhkar.item++
				a.adhkar.reps = 0
			} else {
				a.adhkar.finished = true
			}
		}
		return true, a, nil
	case "j", "down":
		if a.adhkar.item < len(col.Items)-1 {
			a.adhkar.item++
			a.adhkar.reps = 0
			a.adhkar.finished = false
		}
		return true, a, nil
	case "k", "up":
		if a.adhkar.item > 0 {
			a.adhkar.item--
			a.adhkar.reps = 0
			a.adhkar.finished = false
		}
		return true, a, nil
	}
	return false, a, nil
}

func (a App) renderAdhkarTab(cw, contentH int) string {
	if a.adhkar.inDetail {
		return a.renderAdhkarDetail(cw, contentH)
	}
	return a.renderAdhkarList(cw)
}

func (a App) renderAdhkarList(cw int) string {
	t := theme.Active

	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	markStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	countStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var list strings.Builder
	for i, col := range adhkar.Collections {
		line := fmt.Sprintf("%s  ", col.Title)
		count := countStyle.Render(fmt.Sprintf("(%d items, %d repeats)", len(col.Items), col.TotalRepeats()))
		if i == a.adhkar.cursor {
			list.WriteString(markStyle.Render("▸ "))
			list.WriteString(selStyle.Render(line))
		} else {
			list.WriteString("  ")
			list.WriteString(rowStyle.Render(line))
		}
		list.WriteString(count)
		list.WriteString("\n")
	}
	list.WriteString("\n")
	list.WriteString(countStyle.Render("[Enter] open  [j/k] choose"))

	return components.ContentCard("الأذكار", list.String(), cw)
}

func (a App) renderAdhkarDetail(cw, contentH int) string {
	t := theme.Active
	col := adhkar.Collections[a.adhkar.cursor]
	item := col.Items[a.adhkar.item]

	textStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Width(components.CardInnerWidth(cw))
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	barW := components.CardInnerWidth(cw) - 16
	if barW < 10 {
		barW = 10
	}

	var body strings.Builder
	if a.adhkar.finished {
		body.WriteString(doneStyle.Render("تَقَبَّلَ اللَّهُ"))
		body.WriteString("\n\n")
		body.WriteString(hintStyle.Render("Collection complete. [Enter] back to list"))
	} else {
		body.WriteString(textStyle.Render(item.Text))
		body.WriteString("\n")
		if item.Note != "" {
			body.WriteString(noteStyle.Render(item.Note))
			body.WriteString("\n")
		}
		body.WriteString("\n")
		body.WriteString(components.TargetBar("تكرار", a.adhkar.reps, item.Repeats, 6, barW))
		body.WriteString("\n\n")
		body.WriteString(components.ProgressBar(
			float64(a.adhkar.item)/float64(len(col.Items)),
			barW,
		))
		body.WriteString(hintStyle.Render(fmt.Sprintf("  item %d/%d", a.adhkar.item+1, len(col.Items))))
		body.WriteString("\n")
		body.WriteString(hintStyle.Render("[Space] count  [j/k] skip  [Esc] back"))
	}

	return components.ContentCard(col.Title, body.String(), cw)
}
