// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/theirongolddev/pricecalc/internal/projection"

	"github.com/dustin/go-humanize"
)

// Placeholders shown instead of non-finite engine results.
const (
	Unreachable  = "unreachable"
	NotAvailable = "n/a"
)

// FormatMoney formats an amount with a currency symbol, thousands separators
// and no decimals. e.g., ("₮", 22700000) -> "₮22,700,000"
func FormatMoney(symbol string, amount float64) string {
	if !projection.IsFinite(amount) {
		return NotAvailable
	}
	r := math.Round(amount)
	if r == 0 {
		r = 0 // drop negative zero
	}
	if r < 0 {
		return "-" + symbol + humanize.Commaf(-r)
	}
	return symbol + humanize.Commaf(r)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatCompact shortens large amounts for narrow cells and chart axes.
// e.g., 22700000 -> "22.7M"
func FormatCompact(v float64) string {
	if !projection.IsFinite(v) {
		return NotAvailable
	}
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
	}
}

// FormatMonths renders a breakeven month count.
func FormatMonths(months float64) string {
	if !projection.IsFinite(months) {
		return Unreachable
	}
	if months == 1 {
		return "1 month"
	}
	return humanize.Commaf(months) + " months"
}

// FormatCoverage renders a coverage percentage with one decimal.
func FormatCoverage(pct float64) string {
	if !projection.IsFinite(pct) {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatCount renders a whole-number count such as customers needed.
func FormatCount(v float64) string {
	if !projection.IsFinite(v) {
		return NotAvailable
	}
	return humanize.Commaf(v)
}

// FormatRatio renders a price ratio with at most two decimals.
// e.g., 139.3 -> "139.3x", 1 -> "1x"
func FormatRatio(v float64) string {
	if !projection.IsFinite(v) {
		return NotAvailable
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + "x"
}

// FormatDiscount renders an annual-billing discount.
func FormatDiscount(pct float64) string {
	if !projection.IsFinite(pct) {
		return NotAvailable
	}
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatBilling names the billing mode.
func FormatBilling(annual bool) string {
	if annual {
		return "annual"
	}
	return "monthly"
}
