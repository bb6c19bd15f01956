package tui

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/cli"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui/components"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"
)

func (a App) projectionRows() []formRow {
	p := a.scenario.Params
	keys := projection.OrderedTiers(a.scenario.Tiers)

	rows := make([]formRow, 0, len(keys)+2)
	for _, key := range keys {
		n := p.Customers[key]
		rows = append(rows, formRow{
			label: titleCase(string(key)) + " customers",
			value: cli.FormatNumber(int64(n)),
			raw:   strconv.Itoa(n),
			apply: func(a *App, input string) error {
				v, err := parseCount(input)
				if err != nil {
					return err
				}
				a.updateScenario(func(s *projection.Scenario) {
					if s.Params.Customers == nil {
						s.Params.Customers = make(map[projection.TierKey]int)
					}
					s.Params.Customers[key] = v
				})
				return nil
			},
		})
	}

	rows = append(rows,
		formRow{
			label: "Months",
			value: strconv.Itoa(p.Months),
			raw:   strconv.Itoa(p.Months),
			apply: func(a *App, input string) error {
				v, err := parseMonths(input)
				if err != nil {
					return err
				}
				a.updateScenario(func(s *projection.Scenario) {
					s.Params.Months = v
				})
				return nil
			},
		},
		formRow{
			label: "Billing",
			value: cli.FormatBilling(p.Annual) + "  [space] toggle",
			kind:  rowChoice,
			cycle: func(a *App) {
				a.updateScenario(func(s *projection.Scenario) {
					s.Params.Annual = !s.Params.Annual
				})
			},
		},
	)
	return rows
}

func (a App) renderProjectionTab(cw int) string {
	t := theme.Active
	r := a.report.Result

	var b strings.Builder
	b.WriteString(components.ContentCard("Projection", a.renderRows(a.projectionRows(), cw), cw))
	b.WriteString("\n")

	bars := make([]components.Bar, 0, len(r.TierRevenue))
	for _, tr := range r.TierRevenue {
		bars = append(bars, components.Bar{
			Label: string(tr.Tier),
			Value: tr.Revenue,
			Text:  cli.FormatMoney(a.currency, tr.Revenue),
			Color: t.Blue,
		})
	}
	title := "Revenue by tier  " + cli.FormatMoney(a.currency, r.TotalRevenue) + " total"
	b.WriteString(components.ContentCard(title, components.HorizontalBars(bars, components.CardInnerWidth(cw)), cw))

	return b.String()
}
