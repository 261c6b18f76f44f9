// Package tui provides the interactive Bubble Tea dashboard for tmanina.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tmanina/internal/aladhan"
	"tmanina/internal/config"
	"tmanina/internal/progress"
	"tmanina/internal/tui/components"
	"tmanina/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ProgressChangedMsg is sent whenever the progress store records a count
// or an external process writes the log.
type ProgressChangedMsg struct{}

// PrayerDataMsg is sent when the prayer times fetch completes.
type PrayerDataMsg struct {
	Data *aladhan.DayData
}

// App is the root Bubble Tea model.
type App struct {
	store *progress.Store
	cfg   config.Config

	// Current projection, recomputed on every change notification
	snap progress.Snapshot

	// Prayer times for today
	prayerData     *aladhan.DayData
	prayerFetching bool
	spinner        spinner.Model

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	tasbih   tasbihState
	adhkar   adhkarState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Change notifications from the store flow through this channel so
	// external writes (daemon, CLI) refresh the dashboard too.
	changeSub   chan tea.Msg
	unsubscribe func()
	watchCancel context.CancelFunc
}

const (
	minTerminalWidth = 64
	maxContentWidth  = 120
	minContentHeight = 5
)

// NewApp creates the root TUI model over an already-opened store.
func NewApp(st *progress.Store, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		store:          st,
		cfg:            cfg,
		snap:           st.Snapshot(time.Now()),
		needSetup:      !config.Exists(),
		prayerFetching: config.Exists(),
		spinner:        sp,
		changeSub:      make(chan tea.Msg, 8),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		waitForChangeMsg(a.changeSub),
		a.spinner.Tick,
		tickCmd(),
	}

	if !a.needSetup {
		cmds = append(cmds, fetchPrayerCmd(a.cfg))
	}

	return tea.Batch(cmds...)
}

// Start wires the store's change feed into the program and must be called
// once before Program.Run. It returns a teardown func.
func (a *App) Start() func() {
	sub := a.changeSub
	a.unsubscribe = a.store.Subscribe(func() {
		select {
		case sub <- ProgressChangedMsg{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	a.watchCancel = cancel
	go a.store.Watch(ctx, 2*time.Second)

	return func() {
		cancel()
		if a.unsubscribe != nil {
			a.unsubscribe()
		}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y <= 1 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case ProgressChangedMsg:
		a.snap = a.store.Snapshot(time.Now())
		return a, waitForChangeMsg(a.changeSub)

	case PrayerDataMsg:
		a.prayerData = msg.Data
		a.prayerFetching = false
		return a, nil

	case spinner.TickMsg:
		if a.prayerFetching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		// Roll the snapshot over midnight and refresh prayer data daily
		cmds := []tea.Cmd{tickCmd()}
		a.snap = a.store.Snapshot(time.Now())
		if a.prayerData != nil && !a.prayerFetching &&
			time.Since(a.prayerData.FetchedAt) > 6*time.Hour {
			a.prayerFetching = true
			cmds = append(cmds, fetchPrayerCmd(a.cfg), a.spinner.Tick)
		}
		return a, tea.Batch(cmds...)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup {
		if a.setupForm == nil {
			a.setupForm = newSetupForm(&a.setupVals, a.cfg)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a.updateSetupForm(msg)
	}

	// Settings text input intercepts keys while editing
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Per-tab bindings come before global tab letters so that, e.g., the
	// adhkar tab can use plain navigation keys.
	switch a.activeTab {
	case tabTasbih:
		if handled, m, cmd := a.updateTasbihKeys(key); handled {
			return m, cmd
		}
	case tabAdhkar:
		if handled, m, cmd := a.updateAdhkarKeys(key); handled {
			return m, cmd
		}
	case tabSettings:
		if handled, m, cmd := a.updateSettingsKeys(key); handled {
			return m, cmd
		}
	}

	if key == "q" {
		return a, tea.Quit
	}

	switch key {
	case "left", "h":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			if idx == tabPrayers && a.prayerData == nil && !a.prayerFetching {
				a.prayerFetching = true
				return a, tea.Batch(fetchPrayerCmd(a.cfg), a.spinner.Tick)
			}
		}
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.cfg = a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		a.prayerFetching = true
		return a, tea.Batch(fetchPrayerCmd(a.cfg), a.spinner.Tick)
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, fetchPrayerCmd(a.cfg)
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup {
		if a.setupForm != nil {
			return a.setupForm.View()
		}
		return a.viewWelcome()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tmanina needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewWelcome() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ tmanina"))
	b.WriteString(subStyle.Render(" · طمأنينة"))
	b.WriteString("\n\n")
	b.WriteString(subStyle.Render("Daily dhikr, adhkar, and prayer times."))
	b.WriteString("\n\n")
	b.WriteString(accentStyle.Render("Press any key to set up"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"o t a p x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"Space", "Count one recitation"},
		{"Enter", "Open / Confirm"},
		{"Esc", "Back / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	next := ""
	if a.prayerData != nil && a.prayerData.Err == nil {
		next = nextPrayerLabel(a.prayerData.Timings, time.Now())
	}
	statusBar := components.RenderStatusBar(w, a.snap.Streak, next)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabTasbih:
		content = a.renderTasbihTab(cw)
	case tabAdhkar:
		content = a.renderAdhkarTab(cw, contentH)
	case tabPrayers:
		content = a.renderPrayersTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabTasbih
	tabAdhkar
	tabPrayers
	tabSettings
)

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// waitForChangeMsg blocks until the next change notification arrives.
func waitForChangeMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// fetchPrayerCmd fetches today's prayer data in a background goroutine.
func fetchPrayerCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		client := aladhan.NewClient()
		return PrayerDataMsg{
			Data: client.FetchDay(ctx, cfg.General.City, cfg.General.Country, cfg.General.Method),
		}
	}
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space before the first tab
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		if i < len(components.Tabs)-1 {
			pos += 2 // separator between tabs
		}
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
