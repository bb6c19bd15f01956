package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/cli"
	"github.com/theirongolddev/pricecalc/internal/config"
	"github.com/theirongolddev/pricecalc/internal/projection"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenario := cfg.Scenario()
	sym := cfg.General.Currency

	path := configPath()
	fmt.Printf("  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	fmt.Printf("    Reference tier: %s\n", cfg.General.ReferenceTier)
	fmt.Printf("    Revenue model:  %s\n", projection.ParseRevenueModel(cfg.General.RevenueModel))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	if cfg.Logging.Level == "" {
		fmt.Println("    Level: off")
	} else {
		fmt.Printf("    Level: %s\n", cfg.Logging.Level)
	}
	if cfg.Logging.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Logging.File)
	}
	fmt.Println()

	fmt.Println("  [Fixed costs]")
	for _, cat := range projection.OrderedCategories(scenario.FixedCosts) {
		fmt.Printf("    %-14s %s\n", cat+":", cli.FormatMoney(sym, scenario.FixedCosts[cat]))
	}
	fmt.Println()

	fmt.Println("  [Tiers]")
	for _, key := range projection.OrderedTiers(scenario.Tiers) {
		t := scenario.Tiers[key]
		fmt.Printf("    %-11s %s/mo  %s/yr  %s customers\n", key+":",
			cli.FormatMoney(sym, t.MonthlyPrice),
			cli.FormatMoney(sym, t.AnnualPrice),
			cli.FormatNumber(int64(scenario.Params.Customers[key])))
		if len(t.Features) > 0 {
			fmt.Printf("                %s\n", strings.Join(t.Features, ", "))
		}
	}
	fmt.Println()

	fmt.Println("  [Projection]")
	fmt.Printf("    Months:  %d\n", scenario.Params.Months)
	fmt.Printf("    Billing: %s\n", cli.FormatBilling(scenario.Params.Annual))
	fmt.Println()

	fmt.Println("  Run `pricecalc setup` to reconfigure.")
	return nil
}
