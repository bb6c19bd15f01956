package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/pricecalc/internal/config"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	path := configPath()

	// Load existing config or defaults
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	tiers := make([]string, 0, len(cfg.Tiers))
	for _, k := range projection.OrderedTiers(cfg.Scenario().Tiers) {
		tiers = append(tiers, string(k))
	}

	vals := tui.SetupValuesFrom(cfg)
	if err := tui.NewSetupForm(tiers, &vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup form: %w", err)
	}
	vals.Apply(&cfg)

	if err := config.SaveFile(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `pricecalc setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
