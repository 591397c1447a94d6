package tui

import (
	"fmt"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/ledger"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	k := a.snap.Khata
	months := ledger.BucketByMonth(k.Transactions, k.Loans)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	if len(months) == 0 {
		return titleStyle.Render(" Monthly summary") + "\n\n " +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No entries yet.")
	}

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)
	closeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Monthly summary"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(" %-14s %12s %12s %12s %12s", "Month", "Income", "Expense", "Net", "Closing")))
	b.WriteString("\n")

	// Latest months first on screen.
	for i := len(months) - 1; i >= 0; i-- {
		m := months[i]
		b.WriteString(fmt.Sprintf(" %-14s %12s %12s %12s %12s\n",
			cli.FormatMonth(m.Month),
			incomeStyle.Render(cli.FormatAmount(m.Income)),
			expenseStyle.Render(cli.FormatAmount(m.Expense)),
			cli.FormatSigned(m.FinanceBalance),
			closeStyle.Render(cli.FormatSigned(m.ClosingBalance))))
	}

	return strings.TrimRight(b.String(), "\n")
}
