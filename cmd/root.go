// Package cmd implements the pricecalc CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/pricecalc/internal/config"
	"github.com/theirongolddev/pricecalc/internal/logging"
	"github.com/theirongolddev/pricecalc/internal/projection"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	flagConfig       string
	flagMonths       int
	flagAnnual       bool
	flagReference    string
	flagRevenueModel string
	flagCurrency     string
	flagDebug        bool
)

var rootCmd = &cobra.Command{
	Use:   "pricecalc",
	Short: "Subscription pricing calculator",
	Long:  "Project fixed costs, subscription revenue, profit and breakeven for a tiered pricing plan.",
	RunE:  runCalc,
	// Usage is noise for calculation errors.
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	addScenarioFlags(rootCmd.PersistentFlags())
}

// addScenarioFlags registers the flags shared by every command.
func addScenarioFlags(pf *pflag.FlagSet) {
	pf.StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/pricecalc/config.toml)")
	pf.IntVarP(&flagMonths, "months", "m", 0, "Projection horizon in months (overrides config)")
	pf.BoolVarP(&flagAnnual, "annual", "a", false, "Use annual billing (overrides config)")
	pf.StringVarP(&flagReference, "reference", "r", "", "Reference tier for price ratios (overrides config)")
	pf.StringVar(&flagRevenueModel, "revenue-model", "", "Revenue model: legacy or normalized (overrides config)")
	pf.StringVar(&flagCurrency, "currency", "", "Currency symbol (overrides config)")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// configPath returns --config or the default location.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// loadConfig reads the config and applies flag overrides. Flags only change
// the in-memory copy, never the file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFile(configPath())
	if err != nil {
		return cfg, err
	}
	applyFlags(cmd, &cfg)
	return cfg, nil
}

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFile(configPath())
	applyFlags(cmd, &cfg)
	return cfg, err
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("months") {
		cfg.Projection.Months = flagMonths
	}
	if flags.Changed("annual") {
		cfg.Projection.Annual = flagAnnual
	}
	if flags.Changed("reference") {
		cfg.General.ReferenceTier = flagReference
	}
	if flags.Changed("revenue-model") {
		cfg.General.RevenueModel = flagRevenueModel
	}
	if flags.Changed("currency") {
		cfg.General.Currency = flagCurrency
	}
	if flagDebug {
		cfg.Logging.Level = "debug"
	}
}

// validateFlags rejects override values the engine cannot use.
func validateFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("months") && flagMonths < 0 {
		return fmt.Errorf("--months must not be negative, got %d", flagMonths)
	}
	if flags.Changed("revenue-model") &&
		projection.ParseRevenueModel(flagRevenueModel) != projection.RevenueModel(flagRevenueModel) {
		return fmt.Errorf("unknown revenue model %q (want %s or %s)",
			flagRevenueModel, projection.RevenueLegacy, projection.RevenueNormalized)
	}
	return nil
}

// newLogger builds the command logger. interactive keeps stderr clean for
// the TUI.
func newLogger(cfg config.Config, interactive bool) (*zap.SugaredLogger, error) {
	log, err := logging.New(cfg.Logging, interactive)
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}
	return log, nil
}
