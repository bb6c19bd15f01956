// Package projection implements the pricing calculator's financial projection
// engine: pure functions that turn fixed costs, pricing tiers and projection
// parameters into totals, breakeven and per-tier coverage figures.
//
// Nothing in this package returns an error. Undefined results (division by a
// zero denominator) come back as non-finite values; use IsFinite to tell them
// apart before rendering.
package projection

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// CostCategory identifies one fixed-cost line item.
type CostCategory string

// Default cost categories, in display order.
const (
	CategorySalary        CostCategory = "salary"
	CategoryServer        CostCategory = "server"
	CategoryMarketing     CostCategory = "marketing"
	CategoryOffice        CostCategory = "office"
	CategorySoftware      CostCategory = "software"
	CategoryMiscellaneous CostCategory = "miscellaneous"
)

// DefaultCategories lists the built-in cost categories in display order.
var DefaultCategories = []CostCategory{
	CategorySalary,
	CategoryServer,
	CategoryMarketing,
	CategoryOffice,
	CategorySoftware,
	CategoryMiscellaneous,
}

// TierKey identifies a subscription plan.
type TierKey string

// Default tiers, lowest price first.
const (
	TierRetail     TierKey = "retail"
	TierStarter    TierKey = "starter"
	TierGrowth     TierKey = "growth"
	TierEnterprise TierKey = "enterprise"
)

// DefaultTiers lists the built-in tiers in display order.
var DefaultTiers = []TierKey{TierRetail, TierStarter, TierGrowth, TierEnterprise}

// FixedCostSet maps a cost category to its monthly amount.
type FixedCostSet map[CostCategory]float64

// PricingTier is one subscription plan. AnnualPrice is independent of
// MonthlyPrice so arbitrary annual discounts can be modelled.
type PricingTier struct {
	MonthlyPrice float64
	AnnualPrice  float64
	Features     []string
}

// RevenueModel selects how per-tier revenue is derived from prices.
type RevenueModel string

const (
	// RevenueLegacy is the historical calculation: monthly billing
	// divides the monthly price by 12, annual billing uses the annual price
	// as-is, and the horizon is applied twice.
	RevenueLegacy RevenueModel = "legacy"
	// RevenueNormalized treats every tier term as a true monthly amount and
	// applies the horizon once.
	RevenueNormalized RevenueModel = "normalized"
)

// RevenueModels lists the accepted models.
var RevenueModels = []RevenueModel{RevenueLegacy, RevenueNormalized}

// ParseRevenueModel maps a config string to a model. Unknown or empty
// strings fall back to RevenueLegacy.
func ParseRevenueModel(s string) RevenueModel {
	if m := RevenueModel(s); slices.Contains(RevenueModels, m) {
		return m
	}
	return RevenueLegacy
}

// Params holds the projection inputs that are not prices or costs.
type Params struct {
	Customers map[TierKey]int
	Annual    bool
	Months    int
	// Model defaults to RevenueLegacy when empty.
	Model RevenueModel
}

// TierRevenue is one tier's contribution to total revenue.
type TierRevenue struct {
	Tier    TierKey
	Revenue float64
}

// Result holds the horizon-level totals.
type Result struct {
	MonthlyFixedCost float64
	TotalFixedCost   float64
	TotalRevenue     float64
	MonthlyRevenue   float64
	Profit           float64
	// BreakevenMonths is +Inf when revenue never covers cost.
	BreakevenMonths float64
	TierRevenue     []TierRevenue
}

// Coverage describes how much of the monthly fixed cost one subscription of
// a tier pays for.
type Coverage struct {
	Percent         float64
	CustomersNeeded float64
	PriceRatio      float64
}

// OrderedCategories returns the keys of costs with default categories first
// (in DefaultCategories order) followed by any custom ones sorted by name.
func OrderedCategories(costs FixedCostSet) []CostCategory {
	return orderKeys(DefaultCategories, slices.Collect(maps.Keys(costs)))
}

// OrderedTiers returns the keys of tiers with default tiers first followed by
// any custom ones sorted by name.
func OrderedTiers(tiers map[TierKey]PricingTier) []TierKey {
	return orderKeys(DefaultTiers, slices.Collect(maps.Keys(tiers)))
}

func orderKeys[K ~string](known, present []K) []K {
	ordered := lo.Filter(known, func(k K, _ int) bool {
		return slices.Contains(present, k)
	})
	extra := lo.Without(present, known...)
	slices.Sort(extra)
	return append(ordered, extra...)
}
