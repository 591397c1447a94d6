package tui

import (
	"fmt"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/loan"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/components"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loanState struct {
	cursor      int
	showSettled bool
}

func (a App) visibleLoans() []model.Loan {
	if a.loans.showSettled {
		return a.snap.Khata.Loans
	}
	var out []model.Loan
	for _, l := range a.snap.Khata.Loans {
		if l.Status == model.StatusPending {
			out = append(out, l)
		}
	}
	return out
}

func (a App) selectedLoan() (model.Loan, bool) {
	visible := a.visibleLoans()
	if a.loans.cursor < 0 || a.loans.cursor >= len(visible) {
		return model.Loan{}, false
	}
	return visible[a.loans.cursor], true
}

func (a App) updateLoans(key string) (tea.Model, tea.Cmd) {
	visible := a.visibleLoans()

	switch key {
	case "j", "down":
		if a.loans.cursor < len(visible)-1 {
			a.loans.cursor++
		}
	case "k", "up":
		if a.loans.cursor > 0 {
			a.loans.cursor--
		}
	case "t":
		a.loans.showSettled = !a.loans.showSettled
		a.loans.cursor = 0
	case "a":
		return a.openLoanForm()
	case "p":
		if sel, ok := a.selectedLoan(); ok && sel.Status == model.StatusPending {
			return a.openPayForm(sel)
		}
	case "S":
		if sel, ok := a.selectedLoan(); ok && sel.Status == model.StatusPending {
			a.settleLoan(sel.ID)
		}
	}
	return a, nil
}

func (a *App) settleLoan(id string) {
	for i, l := range a.snap.Khata.Loans {
		if l.ID == id {
			a.snap.Khata.Loans[i] = loan.Settle(l)
			a.persist()
			return
		}
	}
}

func (a App) renderLoansTab(cw, contentH int) string {
	t := theme.Active
	visible := a.visibleLoans()

	scope := "active"
	if a.loans.showSettled {
		scope = "all"
	}
	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	header := titleStyle.Render(fmt.Sprintf(" Loans (%s) — %d", scope, len(visible)))

	if len(visible) == 0 {
		return header + "\n\n " + lipgloss.NewStyle().Foreground(t.TextDim).Render("No loans. Press [a] to record one.")
	}

	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	takenStyle := lipgloss.NewStyle().Foreground(t.Red)
	givenStyle := lipgloss.NewStyle().Foreground(t.Green)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i, l := range visible {
		marker := "  "
		if i == a.loans.cursor {
			marker = selStyle.Render("▶ ")
		}
		dir := takenStyle.Render("took")
		if l.Type == model.LoanGiven {
			dir = givenStyle.Render("gave")
		}
		person := truncStr(l.Person, 18)
		if l.Status != model.StatusPending {
			person = doneStyle.Render(person)
		}
		line := fmt.Sprintf("%s%s %-18s %12s  paid %s / remaining %s",
			marker, dir, person,
			cli.FormatAmount(l.Amount),
			cli.FormatAmount(loan.TotalPaid(l)),
			cli.FormatAmount(loan.Outstanding(l)))
		if l.DueDate != "" && l.Status == model.StatusPending {
			line += dimStyle.Render("  due " + cli.FormatDate(l.DueDate))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Payment detail for the selected loan
	if sel, ok := a.selectedLoan(); ok && len(sel.Payments) > 0 {
		var d strings.Builder
		for _, p := range sel.Payments {
			fmt.Fprintf(&d, "%s  %s  %s\n",
				dimStyle.Render(cli.FormatDate(p.Date)),
				cli.FormatAmount(p.Amount),
				truncStr(p.Note, 30))
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard(
			"Payments — "+truncStr(sel.Person, 24),
			strings.TrimRight(d.String(), "\n"), cw))
	}

	return truncateHeight(strings.TrimRight(b.String(), "\n"), contentH)
}
