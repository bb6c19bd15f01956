package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/config"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui/components"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) settingsRows() []formRow {
	return []formRow{
		{
			label: "Theme",
			value: theme.Active.Name,
			kind:  rowChoice,
			cycle: func(a *App) {
				name := nextOf(theme.Names(), theme.Active.Name)
				theme.SetActive(name)
				a.savePreferences(func(cfg *config.Config) {
					cfg.Appearance.Theme = name
				})
			},
		},
		{
			label: "Reference tier",
			value: string(a.scenario.ReferenceTier),
			kind:  rowChoice,
			cycle: func(a *App) {
				ref := nextOf(projection.OrderedTiers(a.scenario.Tiers), a.scenario.ReferenceTier)
				a.updateScenario(func(s *projection.Scenario) {
					s.ReferenceTier = ref
				})
				a.savePreferences(func(cfg *config.Config) {
					cfg.General.ReferenceTier = string(ref)
				})
			},
		},
		{
			label: "Revenue model",
			value: string(projection.ParseRevenueModel(string(a.scenario.Params.Model))),
			kind:  rowChoice,
			cycle: func(a *App) {
				cur := projection.ParseRevenueModel(string(a.scenario.Params.Model))
				m := nextOf(projection.RevenueModels, cur)
				a.updateScenario(func(s *projection.Scenario) {
					s.Params.Model = m
				})
				a.savePreferences(func(cfg *config.Config) {
					cfg.General.RevenueModel = string(m)
				})
			},
		},
		{
			label: "Currency",
			value: a.currency,
			raw:   a.currency,
			apply: func(a *App, input string) error {
				a.currency = strings.TrimSpace(input)
				a.savePreferences(func(cfg *config.Config) {
					cfg.General.Currency = a.currency
				})
				return nil
			},
		},
	}
}

// savePreferences writes a display preference to the config file. Only the
// fields fn touches change; scenario values on disk are left alone.
func (a *App) savePreferences(fn func(cfg *config.Config)) {
	a.edit.saved = false
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		a.edit.saveErr = err
		return
	}
	fn(&cfg)
	a.edit.saveErr = config.SaveFile(a.configPath, cfg)
	a.edit.saved = a.edit.saveErr == nil
	if a.edit.saveErr != nil {
		a.log.Warnw("saving preferences", "path", a.configPath, "error", a.edit.saveErr)
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	var formBody strings.Builder
	formBody.WriteString(a.renderRows(a.settingsRows(), cw))

	if a.edit.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.edit.saveErr)))
	} else if a.edit.saved {
		formBody.WriteString("\n\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] change  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(a.configPath) + "\n")
	infoBody.WriteString(labelStyle.Render("Saved here:   ") + valueStyle.Render("theme, reference tier, revenue model, currency") + "\n")
	infoBody.WriteString(labelStyle.Render("Not saved:    ") + valueStyle.Render("cost, price and projection edits"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}
