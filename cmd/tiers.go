package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/cli"
	"github.com/theirongolddev/pricecalc/internal/projection"

	"github.com/spf13/cobra"
)

var flagFeatures bool

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Per-tier coverage, price ratio and annual discount",
	RunE:  runTiers,
}

func init() {
	tiersCmd.Flags().BoolVarP(&flagFeatures, "features", "f", false, "List tier features")
	rootCmd.AddCommand(tiersCmd)
}

func runTiers(cmd *cobra.Command, _ []string) error {
	if err := validateFlags(cmd); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	scenario := cfg.Scenario()
	report := projection.Recompute(scenario)
	sym := cfg.General.Currency

	if _, ok := scenario.Tiers[scenario.ReferenceTier]; !ok {
		fmt.Printf("\n  Reference tier %q not found; price ratios are n/a.\n", scenario.ReferenceTier)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TIERS  vs %s/mo fixed cost",
		cli.FormatMoney(sym, report.Result.MonthlyFixedCost))))
	fmt.Println()

	rows := make([][]string, 0, len(report.Tiers))
	for _, tr := range report.Tiers {
		rows = append(rows, []string{
			string(tr.Key),
			cli.FormatMoney(sym, tr.Tier.MonthlyPrice),
			cli.FormatMoney(sym, tr.Tier.AnnualPrice),
			cli.FormatDiscount(tr.DiscountPercent),
			cli.FormatCoverage(tr.Coverage.Percent),
			cli.FormatCount(tr.Coverage.CustomersNeeded),
			cli.FormatRatio(tr.Coverage.PriceRatio),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Coverage (reference: " + string(scenario.ReferenceTier) + ")",
		Headers: []string{"Tier", "Monthly", "Annual", "Discount", "Coverage", "Needed", "Ratio"},
		Rows:    rows,
	}))

	if flagFeatures {
		fmt.Println()
		for _, tr := range report.Tiers {
			fmt.Printf("  %s\n", tr.Key)
			if len(tr.Tier.Features) == 0 {
				fmt.Println("    (no features listed)")
				continue
			}
			fmt.Printf("    - %s\n", strings.Join(tr.Tier.Features, "\n    - "))
		}
	}
	return nil
}
