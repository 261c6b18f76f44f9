package tui

import (
	"fmt"
	"strconv"
	"strings"

	"tmanina/internal/config"
	"tmanina/internal/tui/components"
	"tmanina/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldCity = iota
	settingsFieldCountry
	settingsFieldMethod
	settingsFieldTheme
	settingsFieldStore
	settingsFieldReminders
	settingsFieldMorning
	settingsFieldEvening
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40
	return ti
}

func (a App) updateSettingsKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return true, a, nil
	case "enter":
		m, cmd := a.settingsStartEdit()
		return true, m, cmd
	}
	return false, a, nil
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldCity:
		ti.Placeholder = "Cairo"
		ti.SetValue(a.cfg.General.City)
	case settingsFieldCountry:
		ti.Placeholder = "Egypt"
		ti.SetValue(a.cfg.General.Country)
	case settingsFieldMethod:
		ti.Placeholder = "5 (Egyptian General Authority)"
		ti.SetValue(strconv.Itoa(a.cfg.General.Method))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, terminal"
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldStore:
		ti.Placeholder = "file or sqlite (takes effect on restart)"
		ti.SetValue(a.cfg.General.Store)
	case settingsFieldReminders:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.cfg.Reminders.Enabled))
	case settingsFieldMorning:
		ti.Placeholder = "05:30"
		ti.SetValue(a.cfg.Reminders.Morning)
	case settingsFieldEvening:
		ti.Placeholder = "17:00"
		ti.SetValue(a.cfg.Reminders.Evening)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() tea.Cmd {
	val := strings.TrimSpace(a.settings.input.Value())
	var refetch bool

	switch a.settings.cursor {
	case settingsFieldCity:
		if val != "" && val != a.cfg.General.City {
			a.cfg.General.City = val
			refetch = true
		}
	case settingsFieldCountry:
		if val != "" && val != a.cfg.General.Country {
			a.cfg.General.Country = val
			refetch = true
		}
	case settingsFieldMethod:
		if m, err := strconv.Atoi(val); err == nil && m >= 0 {
			if m != a.cfg.General.Method {
				a.cfg.General.Method = m
				refetch = true
			}
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.Select(val)
				break
			}
		}
	case settingsFieldStore:
		if val == "file" || val == "sqlite" {
			a.cfg.General.Store = val
		}
	case settingsFieldReminders:
		a.cfg.Reminders.Enabled = val == "true" || val == "1" || val == "yes"
	case settingsFieldMorning:
		if validClock(val) {
			a.cfg.Reminders.Morning = val
		}
	case settingsFieldEvening:
		if validClock(val) {
			a.cfg.Reminders.Evening = val
		}
	}

	a.settings.saveErr = config.Save(a.cfg)

	if refetch {
		a.prayerData = nil
		a.prayerFetching = true
		return tea.Batch(fetchPrayerCmd(a.cfg), a.spinner.Tick)
	}
	return nil
}

func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	h, err1 := strconv.Atoi(s[:2])
	m, err2 := strconv.Atoi(s[3:])
	return err1 == nil && err2 == nil && h >= 0 && h < 24 && m >= 0 && m < 60
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"City", a.cfg.General.City},
		{"Country", a.cfg.General.Country},
		{"Method", strconv.Itoa(a.cfg.General.Method)},
		{"Theme", a.cfg.Appearance.Theme},
		{"Store", a.cfg.General.Store},
		{"Reminders", strconv.FormatBool(a.cfg.Reminders.Enabled)},
		{"Morning", a.cfg.Reminders.Morning},
		{"Evening", a.cfg.Reminders.Evening},
	}

	var body strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(accentStyle.Render(fmt.Sprintf("%-12s ", f.label)))
			body.WriteString(a.settings.input.View())
			body.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-12s ", f.label+":")))
			body.WriteString(selectedStyle.Render(f.value))
		} else {
			body.WriteString("  ")
			body.WriteString(labelStyle.Render(fmt.Sprintf("%-12s ", f.label+":")))
			body.WriteString(valueStyle.Render(f.value))
		}
		body.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		body.WriteString("\n")
		body.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		body.WriteString("\n")
		body.WriteString(greenStyle.Render("Saved!"))
	}

	body.WriteString("\n")
	body.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", body.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", info.String(), cw))

	return b.String()
}
