package projection

import (
	"math"
	"reflect"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	tol := 1e-9 * math.Max(1, math.Abs(want))
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func defaultCosts() FixedCostSet {
	return FixedCostSet{
		CategorySalary:        20_000_000,
		CategoryServer:        1_000_000,
		CategoryMarketing:     500_000,
		CategoryOffice:        0,
		CategorySoftware:      700_000,
		CategoryMiscellaneous: 500_000,
	}
}

func defaultTiers() map[TierKey]PricingTier {
	return map[TierKey]PricingTier{
		TierRetail:     {MonthlyPrice: 5_000, AnnualPrice: 0},
		TierStarter:    {MonthlyPrice: 696_500, AnnualPrice: 6_965_000},
		TierGrowth:     {MonthlyPrice: 1_396_500, AnnualPrice: 13_965_000},
		TierEnterprise: {MonthlyPrice: 3_496_500, AnnualPrice: 34_965_000},
	}
}

func TestComputeTotals_FixedCostScalesWithHorizon(t *testing.T) {
	costs := FixedCostSet{"a": 1000, "b": 2000}

	for _, months := range []int{1, 6, 12, 60} {
		r := ComputeTotals(costs, nil, Params{Months: months})
		if r.MonthlyFixedCost != 3000 {
			t.Fatalf("months=%d MonthlyFixedCost = %v, want 3000", months, r.MonthlyFixedCost)
		}
		if want := 3000 * float64(months); r.TotalFixedCost != want {
			t.Fatalf("months=%d TotalFixedCost = %v, want %v", months, r.TotalFixedCost, want)
		}
	}

	r := ComputeTotals(costs, nil, Params{Months: 12})
	if r.TotalFixedCost != 36000 {
		t.Fatalf("TotalFixedCost = %v, want 36000", r.TotalFixedCost)
	}
}

func TestComputeTotals_NoCustomersIsUnreachable(t *testing.T) {
	r := ComputeTotals(defaultCosts(), defaultTiers(), Params{
		Customers: map[TierKey]int{},
		Months:    12,
	})

	if r.TotalRevenue != 0 {
		t.Fatalf("TotalRevenue = %v, want 0", r.TotalRevenue)
	}
	if r.Profit != -r.TotalFixedCost {
		t.Fatalf("Profit = %v, want %v", r.Profit, -r.TotalFixedCost)
	}
	if !math.IsInf(r.BreakevenMonths, 1) {
		t.Fatalf("BreakevenMonths = %v, want +Inf", r.BreakevenMonths)
	}
	if IsFinite(r.BreakevenMonths) {
		t.Fatal("IsFinite reported the unreachable sentinel as finite")
	}
}

func TestComputeTotals_LegacyMonthly(t *testing.T) {
	r := ComputeTotals(defaultCosts(), defaultTiers(), Params{
		Customers: map[TierKey]int{TierStarter: 10},
		Months:    12,
	})

	// 696,500 * 10 / 12 * 12 for the tier, then * 12 again across tiers.
	nearlyEqual(t, "starter revenue", r.TierRevenue[1].Revenue, 6_965_000)
	nearlyEqual(t, "TotalRevenue", r.TotalRevenue, 83_580_000)
	nearlyEqual(t, "MonthlyRevenue", r.MonthlyRevenue, 6_965_000)
	nearlyEqual(t, "TotalFixedCost", r.TotalFixedCost, 272_400_000)
	nearlyEqual(t, "Profit", r.Profit, 83_580_000-272_400_000)
	if r.BreakevenMonths != 40 {
		t.Fatalf("BreakevenMonths = %v, want 40", r.BreakevenMonths)
	}
}

func TestComputeTotals_LegacyAnnual(t *testing.T) {
	r := ComputeTotals(defaultCosts(), defaultTiers(), Params{
		Customers: map[TierKey]int{TierStarter: 10},
		Annual:    true,
		Months:    12,
	})

	nearlyEqual(t, "TotalRevenue", r.TotalRevenue, 6_965_000*10*12*12)
	if r.BreakevenMonths != 1 {
		t.Fatalf("BreakevenMonths = %v, want 1", r.BreakevenMonths)
	}
}

func TestComputeTotals_Normalized(t *testing.T) {
	monthly := ComputeTotals(defaultCosts(), defaultTiers(), Params{
		Customers: map[TierKey]int{TierStarter: 10},
		Months:    12,
		Model:     RevenueNormalized,
	})
	nearlyEqual(t, "monthly TotalRevenue", monthly.TotalRevenue, 696_500*10*12)
	nearlyEqual(t, "monthly MonthlyRevenue", monthly.MonthlyRevenue, 6_965_000)

	annual := ComputeTotals(defaultCosts(), defaultTiers(), Params{
		Customers: map[TierKey]int{TierStarter: 10},
		Annual:    true,
		Months:    12,
		Model:     RevenueNormalized,
	})
	nearlyEqual(t, "annual TotalRevenue", annual.TotalRevenue, 69_650_000)
}

func TestComputeTotals_TierOrderAndUnknownCustomers(t *testing.T) {
	tiers := defaultTiers()
	tiers["custom"] = PricingTier{MonthlyPrice: 12}

	r := ComputeTotals(nil, tiers, Params{
		Customers: map[TierKey]int{"custom": 12, "ghost": 99},
		Months:    1,
	})

	want := []TierKey{TierRetail, TierStarter, TierGrowth, TierEnterprise, "custom"}
	if len(r.TierRevenue) != len(want) {
		t.Fatalf("TierRevenue len = %d, want %d", len(r.TierRevenue), len(want))
	}
	for i, k := range want {
		if r.TierRevenue[i].Tier != k {
			t.Fatalf("TierRevenue[%d] = %q, want %q", i, r.TierRevenue[i].Tier, k)
		}
	}
	// 12 * 12 / 12 * 1, then * 1
	if r.TotalRevenue != 12 {
		t.Fatalf("TotalRevenue = %v, want 12", r.TotalRevenue)
	}
}

func TestComputeTotals_ZeroHorizonDoesNotPanic(t *testing.T) {
	r := ComputeTotals(defaultCosts(), defaultTiers(), Params{
		Customers: map[TierKey]int{TierStarter: 10},
		Months:    0,
	})
	if r.TotalFixedCost != 0 {
		t.Fatalf("TotalFixedCost = %v, want 0", r.TotalFixedCost)
	}
	if !math.IsInf(r.BreakevenMonths, 1) {
		t.Fatalf("BreakevenMonths = %v, want +Inf", r.BreakevenMonths)
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	costs := defaultCosts()
	costs["rent"] = 123.456
	costs["insurance"] = 0.1
	p := Params{
		Customers: map[TierKey]int{TierRetail: 7, TierStarter: 3, TierGrowth: 2, TierEnterprise: 1},
		Months:    7,
	}

	first := ComputeTotals(costs, defaultTiers(), p)
	for i := 0; i < 50; i++ {
		again := ComputeTotals(costs, defaultTiers(), p)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, first, again)
		}
		if math.Float64bits(first.TotalRevenue) != math.Float64bits(again.TotalRevenue) {
			t.Fatalf("run %d TotalRevenue bits differ", i)
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name    string
		monthly float64
		annual  float64
		want    float64
	}{
		{"ten months for twelve", 500_000, 5_000_000, 17},
		{"no annual price", 5_000, 0, 100},
		{"no discount", 100, 1200, 0},
		{"premium annual", 100, 1500, -25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountPercent(PricingTier{MonthlyPrice: tt.monthly, AnnualPrice: tt.annual})
			if got != tt.want {
				t.Fatalf("DiscountPercent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiscountPercent_ScaleInvariant(t *testing.T) {
	base := PricingTier{MonthlyPrice: 1_000, AnnualPrice: 10_000}
	want := DiscountPercent(base)

	for _, k := range []float64{2, 3, 10, 1000} {
		scaled := PricingTier{MonthlyPrice: base.MonthlyPrice * k, AnnualPrice: base.AnnualPrice * k}
		if got := DiscountPercent(scaled); got != want {
			t.Fatalf("scale %v: DiscountPercent = %v, want %v", k, got, want)
		}
	}
}

func TestDiscountPercent_ZeroMonthlyIsSentinel(t *testing.T) {
	if IsFinite(DiscountPercent(PricingTier{MonthlyPrice: 0, AnnualPrice: 100})) {
		t.Fatal("expected non-finite discount for zero monthly price")
	}
	if IsFinite(DiscountPercent(PricingTier{})) {
		t.Fatal("expected non-finite discount for zero prices")
	}
}

func TestParseRevenueModel(t *testing.T) {
	if got := ParseRevenueModel("normalized"); got != RevenueNormalized {
		t.Fatalf("ParseRevenueModel(normalized) = %q", got)
	}
	for _, s := range []string{"", "legacy", "bogus"} {
		if got := ParseRevenueModel(s); got != RevenueLegacy {
			t.Fatalf("ParseRevenueModel(%q) = %q, want legacy", s, got)
		}
	}
}

func TestOrderedCategories(t *testing.T) {
	costs := FixedCostSet{
		"zeta":            1,
		CategorySoftware:  1,
		"alpha":           1,
		CategorySalary:    1,
		CategoryMarketing: 1,
	}
	got := OrderedCategories(costs)
	want := []CostCategory{CategorySalary, CategoryMarketing, CategorySoftware, "alpha", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("OrderedCategories = %v, want %v", got, want)
	}
}
