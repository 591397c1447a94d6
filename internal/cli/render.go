package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Accent colors for CLI output. The TUI carries the full theme system; plain
// command output keeps a fixed palette that reads on light and dark terminals.
var (
	colorAccent  = lipgloss.Color("#6366F1") // indigo, the default accent
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorIncome  = lipgloss.Color("#10B981")
	colorExpense = lipgloss.Color("#EF4444")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	incomeStyle  = lipgloss.NewStyle().Foreground(colorIncome)
	expenseStyle = lipgloss.NewStyle().Foreground(colorExpense)
)

// RenderTitle renders a section heading.
func RenderTitle(title string) string {
	return "  " + titleStyle.Render(title)
}

// Income colors a cell as income, Expense as expense, Muted as secondary.
func Income(s string) string  { return incomeStyle.Render(s) }
func Expense(s string) string { return expenseStyle.Render(s) }
func Muted(s string) string   { return mutedStyle.Render(s) }

// RenderTable renders headers and rows as a bordered table. The first column
// is left-aligned, the rest right-aligned (they are nearly always amounts).
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true).Foreground(colorAccent)
			}
			if col > 0 {
				return style.Align(lipgloss.Right)
			}
			return style
		})
	return t.String() + "\n"
}

// RenderBarPair renders side-by-side income/expense bars for one chart
// bucket, both scaled against the same maximum.
func RenderBarPair(income, expense, max float64, width int) string {
	return Income(bar(income, max, width)) + " " + Expense(bar(expense, max, width))
}

// RenderShare renders a proportional bar for a category breakdown entry.
func RenderShare(value, max float64, width int) string {
	return titleStyle.Render(bar(value, max, width))
}

func bar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
