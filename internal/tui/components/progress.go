package components

import (
	"fmt"
	"math"

	"github.com/theirongolddev/pricecalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForCoverage returns red/orange/yellow/green as frac (share of the
// monthly fixed cost covered) approaches 1.
func ColorForCoverage(frac float64) lipgloss.Color {
	t := theme.Active
	switch {
	case frac >= 1:
		return t.Green
	case frac >= 0.5:
		return t.Yellow
	case frac >= 0.1:
		return t.Orange
	default:
		return t.Red
	}
}

// CoverageBar renders a labeled bar for a coverage percentage (0-100+).
// Values above 100 fill the bar; non-finite values render an empty bar and
// the placeholder text.
func CoverageBar(label string, pct float64, pctText string, labelW, barWidth int) string {
	t := theme.Active

	frac := pct / 100
	if math.IsNaN(frac) || math.IsInf(frac, 0) || frac < 0 {
		frac = 0
	}
	frac = min(frac, 1)
	color := ColorForCoverage(frac)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(frac) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%6s", pctText))
}
