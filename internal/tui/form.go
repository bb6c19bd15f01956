package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/pricecalc/internal/config"
	"github.com/theirongolddev/pricecalc/internal/projection"
	"github.com/theirongolddev/pricecalc/internal/tui/components"
	"github.com/theirongolddev/pricecalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"
)

// errNotNumber is returned for input that cannot be coerced to a number.
var errNotNumber = errors.New("not a number")

type rowKind int

const (
	rowText   rowKind = iota // enter opens a text input
	rowChoice                // enter or space cycles through options
)

// formRow is one editable line of a tab. Rows are rebuilt from App state on
// every render, so they hold no state of their own.
type formRow struct {
	label string
	value string // display text
	raw   string // initial text when editing starts
	kind  rowKind
	apply func(a *App, input string) error
	cycle func(a *App)
}

// editState tracks the shared text input used by every tab.
type editState struct {
	active  bool
	input   textinput.Model
	err     error // last rejected input
	saved   bool  // settings persisted
	saveErr error
}

// parseAmount coerces a money field. Empty input is 0; thousands
// separators and surrounding spaces are ignored.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, nil
	}
	v, err := cast.ToFloat64E(s)
	if err != nil || !projection.IsFinite(v) {
		return 0, fmt.Errorf("%q: %w", s, errNotNumber)
	}
	return v, nil
}

// parseCount coerces a whole-number field, truncating any fraction.
func parseCount(s string) (int, error) {
	v, err := parseAmount(s)
	if err != nil {
		return 0, err
	}
	return cast.ToInt(v), nil
}

// parseMonths coerces the horizon and clamps it to 1..config.MaxMonths.
func parseMonths(s string) (int, error) {
	n, err := parseCount(s)
	if err != nil {
		return 0, err
	}
	return min(max(n, 1), config.MaxMonths), nil
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// nextOf returns the element after cur in opts, wrapping around. An unknown
// cur yields the first option.
func nextOf[T comparable](opts []T, cur T) T {
	for i, o := range opts {
		if o == cur {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

// rows returns the editable rows of the active tab.
func (a App) rows() []formRow {
	switch a.activeTab {
	case components.TabCosts:
		return a.costRows()
	case components.TabTiers:
		return a.tierRows()
	case components.TabProjection:
		return a.projectionRows()
	case components.TabSettings:
		return a.settingsRows()
	}
	return nil
}

func (a App) cursor() int {
	return a.cursors[a.activeTab]
}

func (a *App) moveCursor(delta int) {
	n := len(a.rows())
	if n == 0 {
		return
	}
	a.cursors[a.activeTab] = min(max(a.cursors[a.activeTab]+delta, 0), n-1)
}

// activateRow handles enter/space on the selected row.
func (a App) activateRow(fromSpace bool) (tea.Model, tea.Cmd) {
	rows := a.rows()
	if a.cursor() >= len(rows) {
		return a, nil
	}
	row := rows[a.cursor()]

	if row.kind == rowChoice {
		row.cycle(&a)
		return a, nil
	}
	if fromSpace {
		return a, nil
	}

	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 24
	ti.SetValue(row.raw)
	ti.CursorEnd()
	ti.Focus()

	a.edit.active = true
	a.edit.err = nil
	a.edit.saved = false
	a.edit.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateEditInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.edit.active = false
		rows := a.rows()
		if a.cursor() < len(rows) {
			if err := rows[a.cursor()].apply(&a, a.edit.input.Value()); err != nil {
				a.edit.err = err
				a.log.Debugw("input rejected", "field", rows[a.cursor()].label, "error", err)
			}
		}
		return a, nil
	case "esc":
		a.edit.active = false
		return a, nil
	}

	var cmd tea.Cmd
	a.edit.input, cmd = a.edit.input.Update(msg)
	return a, cmd
}

// renderRows draws rows as a label/value list with the cursor row
// highlighted and the text input in place while editing.
func (a App) renderRows(rows []formRow, cw int) string {
	t := theme.Active

	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.label)+1)
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	innerW := components.CardInnerWidth(cw)

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		label := fmt.Sprintf("%-*s ", labelW, r.label+":")

		if a.edit.active && i == a.cursor() {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(accentStyle.Render(label))
			b.WriteString(a.edit.input.View())
			continue
		}

		if i == a.cursor() {
			line := markerStyle.Render("▸ ") + selectedLabelStyle.Render(label) + selectedStyle.Render(r.value)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad))
			}
			b.WriteString(line)
			continue
		}

		b.WriteString(spaceStyle.Render("  "))
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(r.value))
	}

	if a.edit.err != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		b.WriteString("\n\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("Rejected %s, value kept", a.edit.err)))
	}
	return b.String()
}

// updateScenario applies fn to a copy of the scenario and recomputes.
func (a *App) updateScenario(fn func(s *projection.Scenario)) {
	next := a.scenario.Clone()
	fn(&next)
	a.scenario = next
	a.edit.err = nil
	a.recompute()
}
