package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/cli"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui/components"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) tierRows() []formRow {
	keys := projection.OrderedTiers(a.scenario.Tiers)
	rows := make([]formRow, 0, 2*len(keys))
	for _, key := range keys {
		tier := a.scenario.Tiers[key]
		rows = append(rows,
			formRow{
				label: titleCase(string(key)) + " monthly",
				value: cli.FormatMoney(a.currency, tier.MonthlyPrice),
				raw:   formatRaw(tier.MonthlyPrice),
				apply: tierPriceSetter(key, false),
			},
			formRow{
				label: titleCase(string(key)) + " annual",
				value: cli.FormatMoney(a.currency, tier.AnnualPrice),
				raw:   formatRaw(tier.AnnualPrice),
				apply: tierPriceSetter(key, true),
			},
		)
	}
	return rows
}

func tierPriceSetter(key projection.TierKey, annual bool) func(a *App, input string) error {
	return func(a *App, input string) error {
		v, err := parseAmount(input)
		if err != nil {
			return err
		}
		a.updateScenario(func(s *projection.Scenario) {
			tier := s.Tiers[key]
			if annual {
				tier.AnnualPrice = v
			} else {
				tier.MonthlyPrice = v
			}
			s.Tiers[key] = tier
		})
		return nil
	}
}

func (a App) renderTiersTab(cw int) string {
	t := theme.Active

	var b strings.Builder
	b.WriteString(components.ContentCard("Prices", a.renderRows(a.tierRows(), cw), cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	labelW := 0
	for _, tr := range a.report.Tiers {
		labelW = max(labelW, len(tr.Key))
	}
	barW := max(innerW-labelW-8, 10)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	for i, tr := range a.report.Tiers {
		if i > 0 {
			body.WriteString("\n")
		}
		cov := tr.Coverage
		body.WriteString(components.CoverageBar(string(tr.Key), cov.Percent, cli.FormatCoverage(cov.Percent), labelW, barW))
		body.WriteString("\n")
		body.WriteString(mutedStyle.Render(strings.Repeat(" ", labelW+1)))
		body.WriteString(mutedStyle.Render("needed ") + valueStyle.Render(cli.FormatCount(cov.CustomersNeeded)))
		body.WriteString(mutedStyle.Render("  ratio ") + valueStyle.Render(cli.FormatRatio(cov.PriceRatio)))
		body.WriteString(mutedStyle.Render("  annual discount ") + valueStyle.Render(cli.FormatDiscount(tr.DiscountPercent)))
		if len(tr.Tier.Features) > 0 {
			body.WriteString("\n")
			body.WriteString(mutedStyle.Render(strings.Repeat(" ", labelW+1)))
			body.WriteString(dimStyle.Render(truncStr(strings.Join(tr.Tier.Features, " · "), innerW-labelW-1)))
		}
	}

	title := fmt.Sprintf("Coverage of %s/mo fixed cost  (ratio vs %s)",
		cli.FormatMoney(a.currency, a.report.Result.MonthlyFixedCost), a.scenario.ReferenceTier)
	b.WriteString(components.ContentCard(title, body.String(), cw))

	return b.String()
}
