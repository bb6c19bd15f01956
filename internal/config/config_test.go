package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/pricecalc/internal/projection"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PRICECALC_CONFIG", "")
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	useTempConfigDir(t)

	if Exists(Path()) {
		t.Fatal("Exists = true for empty config dir")
	}
	cfg, err := LoadFile(Path())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Projection.Months != DefaultMonths {
		t.Fatalf("Months = %d, want %d", cfg.Projection.Months, DefaultMonths)
	}
	if cfg.FixedCosts["salary"] != 20_000_000 {
		t.Fatalf("salary = %v, want 20000000", cfg.FixedCosts["salary"])
	}
}

func TestPath_HonoursEnvironment(t *testing.T) {
	dir := useTempConfigDir(t)
	if got, want := Path(), filepath.Join(dir, "pricecalc", "config.toml"); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}

	custom := filepath.Join(dir, "elsewhere.toml")
	t.Setenv("PRICECALC_CONFIG", custom)
	if got := Path(); got != custom {
		t.Fatalf("Path() = %q, want %q", got, custom)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.ReferenceTier = "starter"
	cfg.General.RevenueModel = "normalized"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.FixedCosts["rent"] = 42
	cfg.Projection.Annual = true
	cfg.Projection.Months = 24

	if err := SaveFile(Path(), cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if !Exists(Path()) {
		t.Fatal("Exists = false after SaveFile")
	}

	got, err := LoadFile(Path())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.General.ReferenceTier != "starter" || got.General.RevenueModel != "normalized" {
		t.Fatalf("General = %+v", got.General)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Fatalf("Theme = %q", got.Appearance.Theme)
	}
	if got.FixedCosts["rent"] != 42 {
		t.Fatalf("rent = %v, want 42", got.FixedCosts["rent"])
	}
	if !got.Projection.Annual || got.Projection.Months != 24 {
		t.Fatalf("Projection = %+v", got.Projection)
	}
	if len(got.Tiers["growth"].Features) != 5 {
		t.Fatalf("growth features = %v", got.Tiers["growth"].Features)
	}
}

func TestLoadFile_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[fixed_costs]
rent = 1000
payroll = 2000

[projection]
annual = true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cfg.FixedCosts) != 2 {
		t.Fatalf("FixedCosts = %v, want only the two file entries", cfg.FixedCosts)
	}
	if len(cfg.Tiers) != 4 {
		t.Fatalf("Tiers len = %d, want default 4", len(cfg.Tiers))
	}
	if cfg.Projection.Months != DefaultMonths {
		t.Fatalf("Months = %d, want default", cfg.Projection.Months)
	}
	if cfg.General.Currency != DefaultCurrency {
		t.Fatalf("Currency = %q, want default", cfg.General.Currency)
	}

	report := projection.Recompute(cfg.Scenario())
	if report.Result.MonthlyFixedCost != 3000 {
		t.Fatalf("MonthlyFixedCost = %v, want 3000", report.Result.MonthlyFixedCost)
	}
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\ncurrency = "), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("error = %v, want parsing context", err)
	}
	if cfg.Projection.Months != DefaultMonths {
		t.Fatal("defaults not returned alongside parse error")
	}
}

func TestScenario_Conversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.RevenueModel = "normalized"
	s := cfg.Scenario()

	if s.ReferenceTier != projection.TierRetail {
		t.Fatalf("ReferenceTier = %q", s.ReferenceTier)
	}
	if s.Params.Model != projection.RevenueNormalized {
		t.Fatalf("Model = %q", s.Params.Model)
	}
	if s.Params.Customers[projection.TierStarter] != 10 {
		t.Fatalf("starter customers = %d", s.Params.Customers[projection.TierStarter])
	}
	if s.FixedCosts.MonthlyTotal() != 22_700_000 {
		t.Fatalf("MonthlyTotal = %v, want 22700000", s.FixedCosts.MonthlyTotal())
	}

	s.FixedCosts[projection.CategorySalary] = 0
	if cfg.FixedCosts["salary"] != 20_000_000 {
		t.Fatal("Scenario shares FixedCosts map with Config")
	}
}

func TestDefaultConfig_FreshMaps(t *testing.T) {
	a := DefaultConfig()
	a.FixedCosts["salary"] = 1
	b := DefaultConfig()
	if b.FixedCosts["salary"] != 20_000_000 {
		t.Fatal("DefaultConfig returned a shared map")
	}
}
