package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/cli"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui/components"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"
)

func (a App) costRows() []formRow {
	cats := projection.OrderedCategories(a.scenario.FixedCosts)
	rows := make([]formRow, 0, len(cats))
	for _, cat := range cats {
		amount := a.scenario.FixedCosts[cat]
		rows = append(rows, formRow{
			label: titleCase(string(cat)),
			value: cli.FormatMoney(a.currency, amount),
			raw:   formatRaw(amount),
			apply: func(a *App, input string) error {
				v, err := parseAmount(input)
				if err != nil {
					return err
				}
				a.updateScenario(func(s *projection.Scenario) {
					s.FixedCosts[cat] = v
				})
				return nil
			},
		})
	}
	return rows
}

func (a App) renderCostsTab(cw int) string {
	t := theme.Active
	r := a.report.Result

	var b strings.Builder
	b.WriteString(components.ContentCard("Monthly Fixed Costs", a.renderRows(a.costRows(), cw), cw))
	b.WriteString("\n")

	// Share of the monthly total per category.
	cats := projection.OrderedCategories(a.scenario.FixedCosts)
	bars := make([]components.Bar, 0, len(cats))
	for _, cat := range cats {
		v := a.scenario.FixedCosts[cat]
		share := cli.NotAvailable
		if r.MonthlyFixedCost > 0 {
			share = fmt.Sprintf("%.1f%%", v/r.MonthlyFixedCost*100)
		}
		bars = append(bars, components.Bar{
			Label: titleCase(string(cat)),
			Value: v,
			Text:  share,
			Color: t.Orange,
		})
	}

	title := fmt.Sprintf("Breakdown  %s/mo  %s over %s",
		cli.FormatMoney(a.currency, r.MonthlyFixedCost),
		cli.FormatMoney(a.currency, r.TotalFixedCost),
		cli.FormatMonths(float64(a.scenario.Params.Months)))
	b.WriteString(components.ContentCard(title, components.HorizontalBars(bars, components.CardInnerWidth(cw)), cw))

	return b.String()
}
