package tui

import (
	"fmt"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/ledger"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/components"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reportState struct {
	weekly bool
}

func (a App) updateReports(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "w":
		a.reports.weekly = true
	case "m":
		a.reports.weekly = false
	}
	return a, nil
}

func (a App) renderReportsTab(cw int) string {
	t := theme.Active

	r := ledger.Range{Kind: ledger.RangeMonth}
	scope := "This month"
	if a.reports.weekly {
		r = ledger.Range{Kind: ledger.RangeWeek}
		scope = "Last 7 days"
	}
	filtered := ledger.FilterByRange(a.snap.Khata.Transactions, r, a.today, "")

	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	if len(filtered) == 0 {
		return titleStyle.Render(" Reports — "+scope) + "\n\n " +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No entries in this range.")
	}

	var income, expense float64
	for _, tr := range filtered {
		if tr.Type == model.TypeIncome {
			income += tr.Amount
		} else {
			expense += tr.Amount
		}
	}

	points := ledger.BucketForChart(filtered, a.reports.weekly)
	incomes := make([]float64, len(points))
	expenses := make([]float64, len(points))
	for i, p := range points {
		incomes[i] = p.Income
		expenses[i] = p.Expense
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Reports — " + scope))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, " Income %s   Expense %s   Net %s\n\n",
		lipgloss.NewStyle().Foreground(t.Green).Render(cli.FormatAmount(income)),
		lipgloss.NewStyle().Foreground(t.Red).Render(cli.FormatAmount(expense)),
		cli.FormatSigned(income-expense))

	b.WriteString(" ")
	b.WriteString(components.Sparkline(incomes, t.Green))
	b.WriteString("  income\n ")
	b.WriteString(components.Sparkline(expenses, t.Red))
	b.WriteString("  expense\n")

	breakdown := ledger.CategoryBreakdown(filtered)
	if len(breakdown) > 0 {
		var d strings.Builder
		peak := breakdown[0].Amount
		barW := components.CardInnerWidth(cw) - 34
		if barW < 8 {
			barW = 8
		}
		for _, c := range breakdown {
			fmt.Fprintf(&d, "%-16s %s %s\n",
				truncStr(c.Category, 16),
				components.HBar(c.Amount, peak, barW, t.Red),
				cli.FormatAmount(c.Amount))
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Expenses by category", strings.TrimRight(d.String(), "\n"), cw))
	}

	return strings.TrimRight(b.String(), "\n")
}
