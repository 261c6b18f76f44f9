package tui

import (
	"strings"

	"tmanina/internal/config"
	"tmanina/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	city    string
	country string
	method  int
	theme   string
}

var methodOptions = []huh.Option[int]{
	huh.NewOption("Egyptian General Authority of Survey", 5),
	huh.NewOption("Muslim World League", 3),
	huh.NewOption("Islamic Society of North America", 2),
	huh.NewOption("Umm Al-Qura University, Makkah", 4),
	huh.NewOption("University of Islamic Sciences, Karachi", 1),
}

// newSetupForm builds the first-run wizard.
func newSetupForm(vals *setupValues, cfg config.Config) *huh.Form {
	vals.city = cfg.General.City
	vals.country = cfg.General.Country
	vals.method = cfg.General.Method
	vals.theme = cfg.Appearance.Theme

	var themeOpts []huh.Option[string]
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("tmanina · طمأنينة").
				Description("A couple of questions to set up prayer times and appearance."),
			huh.NewInput().
				Title("City").
				Placeholder("Cairo").
				Value(&vals.city),
			huh.NewInput().
				Title("Country").
				Placeholder("Egypt").
				Value(&vals.country),
			huh.NewSelect[int]().
				Title("Calculation method").
				Options(methodOptions...).
				Value(&vals.method),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

// saveSetupConfig persists the wizard answers and returns the new config.
func (a *App) saveSetupConfig() config.Config {
	cfg := a.cfg

	if city := strings.TrimSpace(a.setupVals.city); city != "" {
		cfg.General.City = city
	}
	if country := strings.TrimSpace(a.setupVals.country); country != "" {
		cfg.General.Country = country
	}
	cfg.General.Method = a.setupVals.method
	cfg.Appearance.Theme = a.setupVals.theme
	theme.Select(cfg.Appearance.Theme)

	_ = config.Save(cfg)
	return cfg
}
