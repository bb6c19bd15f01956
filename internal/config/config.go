// Package config loads and saves the pricecalc TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/pricecalc/internal/projection"

	"github.com/BurntSushi/toml"
)

// Config holds all pricecalc configuration.
type Config struct {
	General    GeneralConfig         `toml:"general"`
	Appearance AppearanceConfig      `toml:"appearance"`
	Logging    LoggingConfig         `toml:"logging"`
	FixedCosts map[string]float64    `toml:"fixed_costs"`
	Tiers      map[string]TierConfig `toml:"tiers"`
	Projection ProjectionConfig      `toml:"projection"`
}

// GeneralConfig holds calculation and display preferences.
type GeneralConfig struct {
	Currency      string `toml:"currency"`
	ReferenceTier string `toml:"reference_tier"`
	RevenueModel  string `toml:"revenue_model"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls the debug log. An empty Level or "off" disables it.
type LoggingConfig struct {
	Level string `toml:"level,omitempty"`
	File  string `toml:"file,omitempty"`
}

// TierConfig is one [tiers.<key>] table.
type TierConfig struct {
	MonthlyPrice float64  `toml:"monthly_price"`
	AnnualPrice  float64  `toml:"annual_price"`
	Features     []string `toml:"features,omitempty"`
}

// ProjectionConfig holds the starting projection parameters.
type ProjectionConfig struct {
	Customers map[string]int `toml:"customers"`
	Annual    bool           `toml:"annual"`
	Months    int            `toml:"months"`
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pricecalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pricecalc")
}

// Path returns the full path to the config file. PRICECALC_CONFIG wins over
// the XDG location.
func Path() string {
	if p := os.Getenv("PRICECALC_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadFile reads the config at path. Sections missing from the file are
// filled from DefaultConfig.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// SaveFile writes the config to path, creating parent directories.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.General.Currency == "" {
		c.General.Currency = def.General.Currency
	}
	if c.General.ReferenceTier == "" {
		c.General.ReferenceTier = def.General.ReferenceTier
	}
	if c.General.RevenueModel == "" {
		c.General.RevenueModel = def.General.RevenueModel
	}
	if c.Appearance.Theme == "" {
		c.Appearance.Theme = def.Appearance.Theme
	}
	if c.FixedCosts == nil {
		c.FixedCosts = def.FixedCosts
	}
	if c.Tiers == nil {
		c.Tiers = def.Tiers
	}
	if c.Projection.Customers == nil {
		c.Projection.Customers = def.Projection.Customers
	}
	if c.Projection.Months <= 0 {
		c.Projection.Months = def.Projection.Months
	}
}

// Scenario converts the config into an engine snapshot. The returned maps
// are fresh; editing them does not touch c.
func (c Config) Scenario() projection.Scenario {
	costs := make(projection.FixedCostSet, len(c.FixedCosts))
	for k, v := range c.FixedCosts {
		costs[projection.CostCategory(k)] = v
	}

	tiers := make(map[projection.TierKey]projection.PricingTier, len(c.Tiers))
	for k, t := range c.Tiers {
		tiers[projection.TierKey(k)] = projection.PricingTier{
			MonthlyPrice: t.MonthlyPrice,
			AnnualPrice:  t.AnnualPrice,
			Features:     append([]string(nil), t.Features...),
		}
	}

	customers := make(map[projection.TierKey]int, len(c.Projection.Customers))
	for k, n := range c.Projection.Customers {
		customers[projection.TierKey(k)] = n
	}

	return projection.Scenario{
		FixedCosts: costs,
		Tiers:      tiers,
		Params: projection.Params{
			Customers: customers,
			Annual:    c.Projection.Annual,
			Months:    c.Projection.Months,
			Model:     projection.ParseRevenueModel(c.General.RevenueModel),
		},
		ReferenceTier: projection.TierKey(c.General.ReferenceTier),
	}
}
