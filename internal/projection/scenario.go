package projection

import (
	"maps"
	"slices"
)

// Scenario is a caller-owned snapshot of every calculator input.
type Scenario struct {
	FixedCosts FixedCostSet
	Tiers      map[TierKey]PricingTier
	Params     Params
	// ReferenceTier is the baseline for price ratios. A key that is not in
	// Tiers behaves like a zero-priced reference.
	ReferenceTier TierKey
}

// Clone returns a deep copy so edits to the copy never leak into s.
func (s Scenario) Clone() Scenario {
	out := s
	out.FixedCosts = maps.Clone(s.FixedCosts)
	out.Params.Customers = maps.Clone(s.Params.Customers)
	out.Tiers = make(map[TierKey]PricingTier, len(s.Tiers))
	for k, t := range s.Tiers {
		t.Features = slices.Clone(t.Features)
		out.Tiers[k] = t
	}
	return out
}

// TierReport bundles every per-tier figure the presentation layer shows.
type TierReport struct {
	Key             TierKey
	Tier            PricingTier
	Customers       int
	Revenue         float64
	Coverage        Coverage
	DiscountPercent float64
}

// MonthPoint is one month of the flat cumulative schedule.
type MonthPoint struct {
	Month             int
	CumulativeCost    float64
	CumulativeRevenue float64
}

// Net is cumulative revenue minus cumulative cost at this month.
func (m MonthPoint) Net() float64 {
	return m.CumulativeRevenue - m.CumulativeCost
}

// Report is the complete output of one recomputation.
type Report struct {
	Result   Result
	Tiers    []TierReport
	Schedule []MonthPoint
}

// Recompute runs every engine operation against s. Callers invoke it after
// each edit; identical scenarios always produce identical reports.
func Recompute(s Scenario) Report {
	result := ComputeTotals(s.FixedCosts, s.Tiers, s.Params)
	reference := s.Tiers[s.ReferenceTier]

	tiers := make([]TierReport, 0, len(result.TierRevenue))
	for _, tr := range result.TierRevenue {
		tier := s.Tiers[tr.Tier]
		tiers = append(tiers, TierReport{
			Key:             tr.Tier,
			Tier:            tier,
			Customers:       s.Params.Customers[tr.Tier],
			Revenue:         tr.Revenue,
			Coverage:        ComputeCoverage(s.FixedCosts, tier, reference),
			DiscountPercent: DiscountPercent(tier),
		})
	}

	return Report{
		Result:   result,
		Tiers:    tiers,
		Schedule: Schedule(result, s.Params.Months),
	}
}

// Schedule spreads a result over months 1..months as flat cumulative cost
// and revenue. It returns nil for a non-positive horizon.
func Schedule(r Result, months int) []MonthPoint {
	if months <= 0 {
		return nil
	}
	points := make([]MonthPoint, months)
	for i := range points {
		m := float64(i + 1)
		points[i] = MonthPoint{
			Month:             i + 1,
			CumulativeCost:    r.MonthlyFixedCost * m,
			CumulativeRevenue: r.MonthlyRevenue * m,
		}
	}
	return points
}
