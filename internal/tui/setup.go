package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/config"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the first-run wizard.
type SetupValues struct {
	Currency      string
	Theme         string
	ReferenceTier string
	RevenueModel  string
	Annual        bool
	Months        string
}

// SetupValuesFrom seeds the wizard with cfg's current settings.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Currency:      cfg.General.Currency,
		Theme:         cfg.Appearance.Theme,
		ReferenceTier: cfg.General.ReferenceTier,
		RevenueModel:  cfg.General.RevenueModel,
		Annual:        cfg.Projection.Annual,
		Months:        strconv.Itoa(cfg.Projection.Months),
	}
}

// Apply copies the answers into cfg. Months is clamped like the TUI field.
func (v SetupValues) Apply(cfg *config.Config) {
	if c := strings.TrimSpace(v.Currency); c != "" {
		cfg.General.Currency = c
	}
	cfg.Appearance.Theme = v.Theme
	cfg.General.ReferenceTier = v.ReferenceTier
	cfg.General.RevenueModel = string(projection.ParseRevenueModel(v.RevenueModel))
	cfg.Projection.Annual = v.Annual
	if m, err := parseMonths(v.Months); err == nil {
		cfg.Projection.Months = m
	}
}

// NewSetupForm builds the first-run wizard. tiers are the reference tier
// choices. Answers are written to vals as the user moves through the form.
func NewSetupForm(tiers []string, vals *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pricecalc").
				Description("A few preferences for the projection. Run `pricecalc setup` anytime to change them."),
			huh.NewInput().
				Title("Currency symbol").
				Value(&vals.Currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Reference tier").
				Description("Price ratios are shown relative to this tier.").
				Options(huh.NewOptions(tiers...)...).
				Value(&vals.ReferenceTier),
			huh.NewSelect[string]().
				Title("Revenue model").
				Options(
					huh.NewOption("legacy: monthly price / 12, horizon applied twice", string(projection.RevenueLegacy)),
					huh.NewOption("normalized: true monthly revenue, horizon applied once", string(projection.RevenueNormalized)),
				).
				Value(&vals.RevenueModel),
			huh.NewConfirm().
				Title("Billing").
				Affirmative("Annual").
				Negative("Monthly").
				Value(&vals.Annual),
			huh.NewInput().
				Title("Projection horizon (months)").
				Description(fmt.Sprintf("1 to %d", config.MaxMonths)).
				Value(&vals.Months).
				Validate(func(s string) error {
					_, err := parseMonths(s)
					return err
				}),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig persists the wizard answers and applies them to the
// running scenario.
func (a *App) saveSetupConfig() {
	cfg, loadErr := config.LoadFile(a.configPath)
	a.setupVals.Apply(&cfg)

	theme.SetActive(cfg.Appearance.Theme)
	a.currency = cfg.General.Currency
	a.scenario = cfg.Scenario()
	a.recompute()

	// Never overwrite a file we could not read.
	if loadErr != nil {
		a.edit.saveErr = loadErr
		a.log.Warnw("loading config for setup", "path", a.configPath, "error", loadErr)
		return
	}
	if err := config.SaveFile(a.configPath, cfg); err != nil {
		a.edit.saveErr = err
		a.log.Warnw("saving setup", "path", a.configPath, "error", err)
	}
}
