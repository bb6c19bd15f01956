package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/cli"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui/components"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	r := a.report.Result
	p := a.scenario.Params
	var b strings.Builder

	// Row 1: headline figures
	profitColor := t.Green
	if r.Profit < 0 {
		profitColor = t.Red
	}
	breakevenColor := t.TextPrimary
	if !projection.IsFinite(r.BreakevenMonths) {
		breakevenColor = t.Red
	}

	customers := 0
	for _, tr := range a.report.Tiers {
		customers += tr.Customers
	}

	metrics := []components.Metric{
		{
			Label: "Fixed cost",
			Value: cli.FormatMoney(a.currency, r.TotalFixedCost),
			Delta: cli.FormatMoney(a.currency, r.MonthlyFixedCost) + "/mo",
		},
		{
			Label: "Revenue",
			Value: cli.FormatMoney(a.currency, r.TotalRevenue),
			Delta: fmt.Sprintf("%s customers, %s", cli.FormatNumber(int64(customers)), cli.FormatBilling(p.Annual)),
		},
		{
			Label: "Profit",
			Value: cli.FormatMoney(a.currency, r.Profit),
			Delta: "over " + cli.FormatMonths(float64(p.Months)),
			Color: profitColor,
		},
		{
			Label: "Breakeven",
			Value: cli.FormatMonths(r.BreakevenMonths),
			Delta: cli.FormatMoney(a.currency, r.MonthlyRevenue) + "/mo revenue",
			Color: breakevenColor,
		},
	}
	if a.isCompactLayout() {
		b.WriteString(components.MetricCardRow(metrics[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[2:], cw))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	// Row 2: cumulative schedule
	sched := a.report.Schedule
	if len(sched) > 0 {
		revenue := make([]float64, len(sched))
		cost := make([]float64, len(sched))
		net := make([]float64, len(sched))
		labels := make([]string, len(sched))
		lowest := 0.0
		for i, m := range sched {
			revenue[i] = m.CumulativeRevenue
			cost[i] = m.CumulativeCost
			net[i] = m.Net()
			labels[i] = strconv.Itoa(m.Month)
			if projection.IsFinite(net[i]) {
				lowest = min(lowest, net[i])
			}
		}
		// Shift so losses still show a slope.
		for i := range net {
			net[i] -= lowest
		}

		chartH := 8
		if a.isCompactLayout() {
			chartH = 6
		}
		halves := components.LayoutRow(cw, 2)
		revCard := components.ContentCard("Cumulative revenue",
			components.BarChart(revenue, labels, t.Blue, components.CardInnerWidth(halves[0]), chartH), halves[0])
		costCard := components.ContentCard("Cumulative cost",
			components.BarChart(cost, labels, t.Orange, components.CardInnerWidth(halves[1]), chartH), halves[1])
		b.WriteString(components.CardRow([]string{revCard, costCard}))
		b.WriteString("\n")

		mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
		last := sched[len(sched)-1]
		netBody := components.Sparkline(net, t.Green) + "\n" +
			mutedStyle.Render(fmt.Sprintf("month %d net ", last.Month)) +
			valueStyle.Render(cli.FormatMoney(a.currency, last.Net())) +
			mutedStyle.Render("   model ") + valueStyle.Render(string(projection.ParseRevenueModel(string(p.Model))))
		b.WriteString(components.ContentCard("Net position", netBody, cw))
	}

	return b.String()
}
