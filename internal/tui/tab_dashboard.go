package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/ledger"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/loan"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/components"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// dueSoonDays is how far ahead the dashboard warns about loan due dates.
const dueSoonDays = 7

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	k := a.snap.Khata
	totals := ledger.ComputeTotals(k.Transactions, k.Loans, a.today)

	widths := components.LayoutRow(cw, 3)
	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		components.MetricCard("Balance", cli.FormatAmount(totals.Balance), t.TextPrimary, widths[0]),
		components.MetricCard("Income", cli.FormatAmount(totals.Income), t.Green, widths[1]),
		components.MetricCard("Expense", cli.FormatAmount(totals.Expense), t.Red, widths[2]),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		components.MetricCard("Loan taken", cli.FormatAmount(totals.LoanTaken), t.Accent, widths[0]),
		components.MetricCard("Loan given", cli.FormatAmount(totals.LoanGiven), t.Accent, widths[1]),
		components.MetricCard("Today", cli.FormatSigned(totals.TodayIncome-totals.TodayExpense), t.TextPrimary, widths[2]),
	)

	sections := []string{row1, row2}

	if due := a.dueSoonLoans(); len(due) > 0 {
		var b strings.Builder
		warn := lipgloss.NewStyle().Foreground(t.Yellow)
		for _, l := range due {
			fmt.Fprintf(&b, "%s  %s due %s (%s outstanding)\n",
				warn.Render("◆"),
				truncStr(l.Person, 20),
				cli.FormatDate(l.DueDate),
				cli.FormatAmount(loan.Outstanding(l)))
		}
		sections = append(sections, components.ContentCard("Due soon", strings.TrimRight(b.String(), "\n"), cw))
	}

	if note := a.monthNote(cli.ThisMonth()); note != "" {
		sections = append(sections, components.ContentCard(
			cli.FormatMonth(cli.ThisMonth()),
			truncStr(note, components.CardInnerWidth(cw)*3),
			cw))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// dueSoonLoans returns unsettled loans whose due date falls within the
// next dueSoonDays days (overdue ones included).
func (a App) dueSoonLoans() []model.Loan {
	horizon := addDaysTo(a.today, dueSoonDays)
	var due []model.Loan
	for _, l := range a.snap.Khata.Loans {
		if l.Status != model.StatusPending || l.DueDate == "" {
			continue
		}
		if l.DueDate <= horizon {
			due = append(due, l)
		}
	}
	return due
}

func (a App) monthNote(month string) string {
	for _, n := range a.snap.Khata.Notes {
		if n.Month == month {
			return n.Text
		}
	}
	return ""
}

func addDaysTo(date string, days int) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, days).Format("2006-01-02")
}
