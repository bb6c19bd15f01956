// Package tui provides the interactive Bubble Tea form for pricecalc.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/cli"
	"github.com/theirongolddev/pricecalc/internal/config"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui/components"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options configures NewApp.
type Options struct {
	// ConfigPath is where settings and setup answers are saved.
	ConfigPath string
	// NeedSetup shows the first-run wizard before the form.
	NeedSetup bool
	Logger    *zap.SugaredLogger
}

// App is the root Bubble Tea model.
type App struct {
	// Calculator state. The scenario is replaced, never mutated in place.
	scenario projection.Scenario
	report   projection.Report
	currency string

	configPath string
	log        *zap.SugaredLogger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab row cursor and the shared text input
	cursors [components.TabSettings + 1]int
	edit    editState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5 // minimum content area height
)

// NewApp creates the TUI model from cfg's starting scenario.
func NewApp(cfg config.Config, opts Options) App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	a := App{
		scenario:   cfg.Scenario(),
		currency:   cfg.General.Currency,
		configPath: opts.ConfigPath,
		log:        log,
		needSetup:  opts.NeedSetup,
	}
	if a.configPath == "" {
		a.configPath = config.Path()
	}
	a.recompute()

	if a.needSetup {
		a.setupVals = SetupValuesFrom(cfg)
		tiers := make([]string, 0, len(a.scenario.Tiers))
		for _, k := range projection.OrderedTiers(a.scenario.Tiers) {
			tiers = append(tiers, string(k))
		}
		a.setupForm = NewSetupForm(tiers, &a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Report returns the figures for the current scenario.
func (a App) Report() projection.Report {
	return a.report
}

// Scenario returns a copy of the current scenario.
func (a App) Scenario() projection.Scenario {
	return a.scenario.Clone()
}

// recompute runs the engine on the current scenario. Called after every edit.
func (a *App) recompute() {
	a.report = projection.Recompute(a.scenario)
	r := a.report.Result
	a.log.Debugw("recomputed",
		"months", a.scenario.Params.Months,
		"annual", a.scenario.Params.Annual,
		"model", a.scenario.Params.Model,
		"reference", a.scenario.ReferenceTier,
		"monthly_fixed_cost", r.MonthlyFixedCost,
		"total_revenue", r.TotalRevenue,
		"profit", r.Profit,
		"breakeven_months", r.BreakevenMonths,
	)
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
		if a.showHelp || a.edit.active || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		case tea.MouseButtonLeft:
			// Tab bar is the first line.
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
					a.edit.err = nil
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.edit.active {
			return a.updateEditInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "j", "down":
			a.moveCursor(1)
			return a, nil
		case "k", "up":
			a.moveCursor(-1)
			return a, nil
		case "enter":
			return a.activateRow(false)
		case " ":
			return a.activateRow(true)
		case "esc":
			a.edit.err = nil
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			a.edit.err = nil
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			a.edit.err = nil
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				a.edit.err = nil
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blink for the edit input
	if a.edit.active {
		var cmd tea.Cmd
		a.edit.input, cmd = a.edit.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  pricecalc needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	section := func(b *strings.Builder, title string, binds [][2]string) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, bind := range binds {
			fmt.Fprintf(b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	section(&b, "Navigation", [][2]string{
		{"o c t p x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move between fields"},
	})
	b.WriteString("\n")
	section(&b, "Editing", [][2]string{
		{"Enter", "Edit field / Confirm"},
		{"Space", "Toggle billing / Cycle option"},
		{"Esc", "Cancel edit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	})
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Empty input counts as 0. Edits are not saved."))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	p := a.scenario.Params
	info := fmt.Sprintf("%s · %s · %s · ref %s",
		cli.FormatMonths(float64(p.Months)),
		cli.FormatBilling(p.Annual),
		projection.ParseRevenueModel(string(p.Model)),
		a.scenario.ReferenceTier)
	hints := "[?]help  [q]uit"
	if a.edit.active {
		hints = "[Enter]apply  [Esc]cancel"
	}
	statusBar := components.RenderStatusBar(w, hints, info)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case components.TabOverview:
		content = a.renderOverviewTab(cw)
	case components.TabCosts:
		content = a.renderCostsTab(cw)
	case components.TabTiers:
		content = a.renderTiersTab(cw)
	case components.TabProjection:
		content = a.renderProjectionTab(cw)
	case components.TabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

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

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
