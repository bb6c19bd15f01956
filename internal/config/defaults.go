package config

import "github.com/theirongolddev/pricecalc/internal/projection"

// Default display and calculation settings.
const (
	DefaultCurrency = "₮"
	DefaultTheme    = "flexoki-dark"
	DefaultMonths   = 12
	MaxMonths       = 60
)

// DefaultConfig returns the default configuration. Every call returns fresh
// maps so callers may mutate the result.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:      DefaultCurrency,
			ReferenceTier: string(projection.TierRetail),
			RevenueModel:  string(projection.RevenueLegacy),
		},
		Appearance: AppearanceConfig{
			Theme: DefaultTheme,
		},
		FixedCosts: map[string]float64{
			string(projection.CategorySalary):        20_000_000,
			string(projection.CategoryServer):        1_000_000,
			string(projection.CategoryMarketing):     500_000,
			string(projection.CategoryOffice):        0,
			string(projection.CategorySoftware):      700_000,
			string(projection.CategoryMiscellaneous): 500_000,
		},
		Tiers: map[string]TierConfig{
			string(projection.TierRetail): {
				MonthlyPrice: 5_000,
				AnnualPrice:  0,
				Features: []string{
					"Basic financial reports",
					"1 user",
					"Email support",
					"2 reports",
				},
			},
			string(projection.TierStarter): {
				MonthlyPrice: 696_500,
				AnnualPrice:  6_965_000,
				Features: []string{
					"Basic financial analysis",
					"Up to 3 users",
					"Standard support",
					"5 reports",
				},
			},
			string(projection.TierGrowth): {
				MonthlyPrice: 1_396_500,
				AnnualPrice:  13_965_000,
				Features: []string{
					"In-depth financial analysis",
					"Up to 10 users",
					"Priority support",
					"20 reports",
					"API access",
				},
			},
			string(projection.TierEnterprise): {
				MonthlyPrice: 3_496_500,
				AnnualPrice:  34_965_000,
				Features: []string{
					"Full financial analysis",
					"Unlimited users",
					"24/7 premium support",
					"Unlimited reports",
					"API access",
					"Custom features",
				},
			},
		},
		Projection: ProjectionConfig{
			Customers: map[string]int{
				string(projection.TierRetail):     0,
				string(projection.TierStarter):    10,
				string(projection.TierGrowth):     0,
				string(projection.TierEnterprise): 0,
			},
			Annual: false,
			Months: DefaultMonths,
		},
	}
}
