package cli

import (
	"math"
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{22_700_000, "₮22,700,000"},
		{0, "₮0"},
		{-0.3, "₮0"},
		{999.5, "₮1,000"},
		{-188_820_000, "-₮188,820,000"},
		{math.Inf(1), NotAvailable},
		{math.NaN(), NotAvailable},
	}
	for _, tt := range tests {
		if got := FormatMoney("₮", tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(40); got != "40 months" {
		t.Errorf("FormatMonths(40) = %q", got)
	}
	if got := FormatMonths(1); got != "1 month" {
		t.Errorf("FormatMonths(1) = %q", got)
	}
	if got := FormatMonths(math.Inf(1)); got != Unreachable {
		t.Errorf("FormatMonths(+Inf) = %q, want %q", got, Unreachable)
	}
}

func TestFormatRatiosAndPercents(t *testing.T) {
	if got := FormatRatio(139.3); got != "139.3x" {
		t.Errorf("FormatRatio(139.3) = %q", got)
	}
	if got := FormatRatio(1); got != "1x" {
		t.Errorf("FormatRatio(1) = %q", got)
	}
	if got := FormatRatio(math.Inf(1)); got != NotAvailable {
		t.Errorf("FormatRatio(+Inf) = %q", got)
	}
	if got := FormatCoverage(3.1); got != "3.1%" {
		t.Errorf("FormatCoverage(3.1) = %q", got)
	}
	if got := FormatCoverage(math.NaN()); got != NotAvailable {
		t.Errorf("FormatCoverage(NaN) = %q", got)
	}
	if got := FormatDiscount(17); got != "17%" {
		t.Errorf("FormatDiscount(17) = %q", got)
	}
	if got := FormatCount(33); got != "33" {
		t.Errorf("FormatCount(33) = %q", got)
	}
	if got := FormatCount(math.Inf(1)); got != NotAvailable {
		t.Errorf("FormatCount(+Inf) = %q", got)
	}
}

func TestFormatCompact(t *testing.T) {
	tests := map[float64]string{
		22_700_000:    "22.7M",
		1_500:         "1.5K",
		42:            "42",
		-3_000_000:    "-3.0M",
		2_500_000_000: "2.5B",
	}
	for in, want := range tests {
		if got := FormatCompact(in); got != want {
			t.Errorf("FormatCompact(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Totals",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Revenue", "₮83,580,000"},
			{"Profit", "-₮188,820,000"},
		},
		Totals: []int{1},
	})

	for _, want := range []string{"Totals", "Metric", "Revenue", "-₮188,820,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if RenderTable(Table{}) != "" {
		t.Error("empty table should render as empty string")
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	full := RenderHorizontalBar("x", 10, 10, 8)
	if strings.Count(full, "█") != 8 {
		t.Errorf("full bar = %q, want 8 filled cells", full)
	}
	empty := RenderHorizontalBar("x", -5, 10, 8)
	if strings.Contains(empty, "█") {
		t.Errorf("negative value bar = %q, want no filled cells", empty)
	}
	over := RenderHorizontalBar("x", math.Inf(1), 10, 4)
	if strings.Count(over, "█") != 4 {
		t.Errorf("overflow bar = %q, want clamped to 4", over)
	}
}
