package projection

import (
	"math"

	"github.com/samber/lo"
)

// MonthlyTotal sums all category amounts for a single month. Categories are
// summed in OrderedCategories order so repeated calls are bit-identical.
func (s FixedCostSet) MonthlyTotal() float64 {
	return lo.SumBy(OrderedCategories(s), func(c CostCategory) float64 {
		return s[c]
	})
}

// ComputeTotals derives cost, revenue, profit and breakeven over the
// projection horizon.
//
// Under RevenueLegacy (the default) each tier contributes
// price / divider * customers * months, where the price is the annual price
// with divider 1 in annual mode and the monthly price with divider 12 in
// monthly mode, and the sum of contributions is multiplied by months again.
func ComputeTotals(costs FixedCostSet, tiers map[TierKey]PricingTier, p Params) Result {
	months := float64(p.Months)
	monthlyFixed := costs.MonthlyTotal()
	totalFixed := monthlyFixed * months

	keys := OrderedTiers(tiers)
	contributions := make([]TierRevenue, 0, len(keys))
	for _, k := range keys {
		contributions = append(contributions, TierRevenue{
			Tier:    k,
			Revenue: tierRevenue(tiers[k], p.Customers[k], p, months),
		})
	}

	sum := lo.SumBy(contributions, func(tr TierRevenue) float64 { return tr.Revenue })
	revenue := sum
	if p.Model != RevenueNormalized {
		revenue = sum * months
	}

	monthlyRevenue := revenue / months

	return Result{
		MonthlyFixedCost: monthlyFixed,
		TotalFixedCost:   totalFixed,
		TotalRevenue:     revenue,
		MonthlyRevenue:   monthlyRevenue,
		Profit:           revenue - totalFixed,
		BreakevenMonths:  breakeven(totalFixed, monthlyRevenue),
		TierRevenue:      contributions,
	}
}

func tierRevenue(t PricingTier, customers int, p Params, months float64) float64 {
	n := float64(customers)
	if p.Model == RevenueNormalized {
		perMonth := t.MonthlyPrice
		if p.Annual {
			perMonth = t.AnnualPrice / 12
		}
		return perMonth * n * months
	}

	price, divider := t.MonthlyPrice, 12.0
	if p.Annual {
		price, divider = t.AnnualPrice, 1
	}
	return price * n / divider * months
}

// breakeven returns the whole number of months needed for monthly revenue to
// cover totalFixed. The comparison is written so NaN also lands on +Inf.
func breakeven(totalFixed, monthlyRevenue float64) float64 {
	if !(monthlyRevenue > 0) {
		return math.Inf(1)
	}
	return math.Ceil(totalFixed / monthlyRevenue)
}

// ComputeCoverage reports how far one subscription of tier goes towards the
// monthly fixed cost, and its price relative to reference.
func ComputeCoverage(costs FixedCostSet, tier, reference PricingTier) Coverage {
	monthlyFixed := costs.MonthlyTotal()
	price := tier.MonthlyPrice

	return Coverage{
		Percent:         roundTo(price/monthlyFixed*100, 1),
		CustomersNeeded: math.Ceil(monthlyFixed / price),
		PriceRatio:      price / reference.MonthlyPrice,
	}
}

// DiscountPercent is the saving of the annual price against twelve monthly
// payments, rounded to a whole percent.
func DiscountPercent(tier PricingTier) float64 {
	return roundHalfUp((1 - tier.AnnualPrice/(tier.MonthlyPrice*12)) * 100)
}

// IsFinite reports whether v is a usable number rather than a sentinel.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundHalfUp rounds .5 towards +Inf, which is how the figures were shown to
// users historically (-2.5 becomes -2, not -3).
func roundHalfUp(v float64) float64 {
	if !IsFinite(v) {
		return v
	}
	return math.Floor(v + 0.5)
}

func roundTo(v float64, places int) float64 {
	if !IsFinite(v) {
		return v
	}
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
