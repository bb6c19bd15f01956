package cmd

import (
	"testing"

	"github.com/theirongolddev/pricecalc/internal/config"

	"github.com/spf13/cobra"
)

// newFlagCmd returns a command carrying fresh scenario flags parsed from args.
func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addScenarioFlags(c.Flags())
	if err := c.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return c
}

func TestApplyFlags_OverridesOnlyChangedFlags(t *testing.T) {
	c := newFlagCmd(t, "--months", "24", "--annual", "--reference", "growth")

	cfg := config.DefaultConfig()
	applyFlags(c, &cfg)

	if cfg.Projection.Months != 24 {
		t.Errorf("Months = %d, want 24", cfg.Projection.Months)
	}
	if !cfg.Projection.Annual {
		t.Error("Annual should be set")
	}
	if cfg.General.ReferenceTier != "growth" {
		t.Errorf("ReferenceTier = %q, want growth", cfg.General.ReferenceTier)
	}
	if cfg.General.Currency != config.DefaultCurrency {
		t.Errorf("Currency = %q, unchanged flag must not override", cfg.General.Currency)
	}
	if cfg.Logging.Level != "" {
		t.Errorf("Logging.Level = %q, want off", cfg.Logging.Level)
	}
}

func TestApplyFlags_Debug(t *testing.T) {
	c := newFlagCmd(t, "--debug")

	cfg := config.DefaultConfig()
	applyFlags(c, &cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{nil, false},
		{[]string{"--revenue-model", "normalized"}, false},
		{[]string{"--revenue-model", "legacy"}, false},
		{[]string{"--revenue-model", "quarterly"}, true},
		{[]string{"--months", "0"}, false},
		{[]string{"--months", "-1"}, true},
	}
	for _, tt := range tests {
		err := validateFlags(newFlagCmd(t, tt.args...))
		if (err != nil) != tt.wantErr {
			t.Errorf("validateFlags(%v) = %v, wantErr %v", tt.args, err, tt.wantErr)
		}
	}
}

func TestLoadConfig_UsesConfigFlag(t *testing.T) {
	path := t.TempDir() + "/custom.toml"
	cfg := config.DefaultConfig()
	cfg.General.Currency = "$"
	if err := config.SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	c := newFlagCmd(t, "--config", path, "--months", "6")
	t.Cleanup(func() { flagConfig = "" })

	got, err := loadConfig(c)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got.General.Currency != "$" {
		t.Errorf("Currency = %q, want $ from --config file", got.General.Currency)
	}
	if got.Projection.Months != 6 {
		t.Errorf("Months = %d, want 6", got.Projection.Months)
	}
}
