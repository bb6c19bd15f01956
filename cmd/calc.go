package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/pricecalc/internal/cli"
	"github.com/theirongolddev/pricecalc/internal/projection"

	"github.com/spf13/cobra"
)

var flagSchedule bool

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Projection report: costs, revenue, profit and breakeven",
	RunE:  runCalc,
}

func init() {
	calcCmd.Flags().BoolVarP(&flagSchedule, "schedule", "s", false, "Show the month-by-month cumulative schedule")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, _ []string) error {
	if err := validateFlags(cmd); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	scenario := cfg.Scenario()
	report := projection.Recompute(scenario)
	r := report.Result
	sym := cfg.General.Currency
	p := scenario.Params

	log.Debugw("projection computed",
		"config", configPath(),
		"months", p.Months,
		"annual", p.Annual,
		"model", p.Model,
		"breakeven_months", r.BreakevenMonths,
	)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PRICING PROJECTION  %s · %s",
		cli.FormatMonths(float64(p.Months)), cli.FormatBilling(p.Annual))))
	fmt.Println()

	// Fixed costs
	costRows := make([][]string, 0, len(scenario.FixedCosts)+2)
	for _, cat := range projection.OrderedCategories(scenario.FixedCosts) {
		costRows = append(costRows, []string{string(cat), cli.FormatMoney(sym, scenario.FixedCosts[cat])})
	}
	costRows = append(costRows,
		[]string{"Monthly total", cli.FormatMoney(sym, r.MonthlyFixedCost)},
		[]string{"Total over " + cli.FormatMonths(float64(p.Months)), cli.FormatMoney(sym, r.TotalFixedCost)},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Fixed Costs",
		Headers: []string{"Category", "Amount"},
		Rows:    costRows,
		Totals:  []int{len(costRows) - 2, len(costRows) - 1},
	}))
	fmt.Println()

	// Revenue by tier
	revRows := make([][]string, 0, len(report.Tiers)+1)
	for _, tr := range report.Tiers {
		price := tr.Tier.MonthlyPrice
		if p.Annual {
			price = tr.Tier.AnnualPrice
		}
		revRows = append(revRows, []string{
			string(tr.Key),
			cli.FormatNumber(int64(tr.Customers)),
			cli.FormatMoney(sym, price),
			cli.FormatMoney(sym, tr.Revenue),
		})
	}
	revRows = append(revRows, []string{"Total revenue", "", "", cli.FormatMoney(sym, r.TotalRevenue)})
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Revenue (%s model)", projection.ParseRevenueModel(string(p.Model))),
		Headers: []string{"Tier", "Customers", "Price", "Contribution"},
		Rows:    revRows,
		Totals:  []int{len(revRows) - 1},
	}))
	fmt.Println()

	// Summary
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total fixed cost", cli.FormatMoney(sym, r.TotalFixedCost)},
			{"Total revenue", cli.FormatMoney(sym, r.TotalRevenue)},
			{"Monthly revenue", cli.FormatMoney(sym, r.MonthlyRevenue)},
			{"Profit", cli.FormatMoney(sym, r.Profit)},
			{"Breakeven", cli.FormatMonths(r.BreakevenMonths)},
		},
		Totals: []int{3, 4},
	}))

	if flagSchedule && len(report.Schedule) > 0 {
		fmt.Println()
		printSchedule(report.Schedule, sym)
	}
	return nil
}

func printSchedule(sched []projection.MonthPoint, sym string) {
	peak := 0.0
	for _, m := range sched {
		peak = max(peak, m.CumulativeRevenue, m.CumulativeCost)
	}

	rows := make([][]string, 0, len(sched))
	for _, m := range sched {
		rows = append(rows, []string{
			strconv.Itoa(m.Month),
			cli.FormatMoney(sym, m.CumulativeCost),
			cli.FormatMoney(sym, m.CumulativeRevenue),
			cli.FormatMoney(sym, m.Net()),
			cli.RenderHorizontalBar(cli.FormatCompact(m.CumulativeRevenue), m.CumulativeRevenue, peak, 20),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cumulative Schedule",
		Headers: []string{"Month", "Cost", "Revenue", "Net", "Revenue vs peak"},
		Rows:    rows,
	}))
}
