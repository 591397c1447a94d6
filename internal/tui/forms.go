package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/loan"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func validAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

func validOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validDate(s)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// ─── Add income/expense ─────────────────────────────────────────

type entryValues struct {
	kind     string
	amount   string
	category string
	date     string
	note     string
}

func (a App) openEntryForm() (tea.Model, tea.Cmd) {
	vals := &entryValues{kind: "expense", date: a.today}

	categories := a.snap.Khata.Categories
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Type").
			Options(huh.NewOption("Expense", "expense"), huh.NewOption("Income", "income")).
			Value(&vals.kind),
		huh.NewSelect[string]().
			Title("Category").
			OptionsFunc(func() []huh.Option[string] {
				want := model.TypeExpense
				if vals.kind == "income" {
					want = model.TypeIncome
				}
				var opts []huh.Option[string]
				for _, c := range categories {
					if c.Type == want {
						opts = append(opts, huh.NewOption(c.Label, c.Label))
					}
				}
				if len(opts) == 0 {
					opts = append(opts, huh.NewOption("(uncategorized)", ""))
				}
				return opts
			}, &vals.kind).
			Value(&vals.category),
		huh.NewInput().Title("Amount").Validate(validAmount).Value(&vals.amount),
		huh.NewInput().Title("Date").Validate(validDate).Value(&vals.date),
		huh.NewInput().Title("Note").Value(&vals.note),
	))
	if a.width > 0 {
		form = form.WithWidth(a.width)
	}

	a.entryVals = vals
	a.entryForm = form
	return a, form.Init()
}

func (a App) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.entryForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.entryForm = f
	}

	if a.entryForm.State == huh.StateCompleted {
		v := a.entryVals
		typ := model.TypeExpense
		if v.kind == "income" {
			typ = model.TypeIncome
		}
		tx := model.Transaction{
			ID:       model.NewID(),
			Amount:   parseFloat(v.amount),
			Category: v.category,
			Date:     strings.TrimSpace(v.date),
			Note:     strings.TrimSpace(v.note),
			Type:     typ,
		}
		a.snap.Khata.Transactions = append([]model.Transaction{tx}, a.snap.Khata.Transactions...)
		a.persist()
		a.entryForm = nil
		a.entryVals = nil
		a.hist.cursor = 0
		return a, nil
	}
	if a.entryForm.State == huh.StateAborted {
		a.entryForm = nil
		a.entryVals = nil
		return a, nil
	}
	return a, cmd
}

// ─── Add loan ───────────────────────────────────────────────────

type loanValues struct {
	kind    string
	person  string
	amount  string
	date    string
	dueDate string
	reason  string
}

func (a App) openLoanForm() (tea.Model, tea.Cmd) {
	vals := &loanValues{kind: string(model.LoanTaken), date: a.today}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Direction").
			Options(
				huh.NewOption("I took money", string(model.LoanTaken)),
				huh.NewOption("I gave money", string(model.LoanGiven)),
			).
			Value(&vals.kind),
		huh.NewInput().Title("Person").Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("required")
			}
			return nil
		}).Value(&vals.person),
		huh.NewInput().Title("Amount").Validate(validAmount).Value(&vals.amount),
		huh.NewInput().Title("Date").Validate(validDate).Value(&vals.date),
		huh.NewInput().Title("Due date (optional)").Validate(validOptionalDate).Value(&vals.dueDate),
		huh.NewInput().Title("Reason").Value(&vals.reason),
	))
	if a.width > 0 {
		form = form.WithWidth(a.width)
	}

	a.loanVals = vals
	a.loanForm = form
	return a, form.Init()
}

func (a App) updateLoanForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.loanForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.loanForm = f
	}

	if a.loanForm.State == huh.StateCompleted {
		v := a.loanVals
		l := model.Loan{
			ID:       model.NewID(),
			Person:   strings.TrimSpace(v.person),
			Amount:   parseFloat(v.amount),
			Date:     strings.TrimSpace(v.date),
			DueDate:  strings.TrimSpace(v.dueDate),
			Reason:   strings.TrimSpace(v.reason),
			Status:   model.StatusPending,
			Type:     model.LoanType(v.kind),
			Payments: []model.LoanPayment{},
		}
		a.snap.Khata.Loans = append([]model.Loan{l}, a.snap.Khata.Loans...)
		a.persist()
		a.loanForm = nil
		a.loanVals = nil
		a.loans.cursor = 0
		return a, nil
	}
	if a.loanForm.State == huh.StateAborted {
		a.loanForm = nil
		a.loanVals = nil
		return a, nil
	}
	return a, cmd
}

// ─── Record payment ─────────────────────────────────────────────

type payValues struct {
	loanID string
	amount string
	date   string
	note   string
}

func (a App) openPayForm(target model.Loan) (tea.Model, tea.Cmd) {
	vals := &payValues{loanID: target.ID, date: a.today}

	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().Title(fmt.Sprintf("Payment — %s (%s remaining)",
			target.Person, cli.FormatAmount(loan.Outstanding(target)))),
		huh.NewInput().Title("Amount").Validate(validAmount).Value(&vals.amount),
		huh.NewInput().Title("Date").Validate(validDate).Value(&vals.date),
		huh.NewInput().Title("Note").Value(&vals.note),
	))
	if a.width > 0 {
		form = form.WithWidth(a.width)
	}

	a.payVals = vals
	a.payForm = form
	return a, form.Init()
}

func (a App) updatePayForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.payForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.payForm = f
	}

	if a.payForm.State == huh.StateCompleted {
		v := a.payVals
		p := model.LoanPayment{
			Amount: parseFloat(v.amount),
			Date:   strings.TrimSpace(v.date),
			Note:   strings.TrimSpace(v.note),
		}
		for i, l := range a.snap.Khata.Loans {
			if l.ID == v.loanID {
				a.snap.Khata.Loans[i] = loan.ApplyPayment(l, p, "", model.NewID)
				break
			}
		}
		a.persist()
		a.payForm = nil
		a.payVals = nil
		return a, nil
	}
	if a.payForm.State == huh.StateAborted {
		a.payForm = nil
		a.payVals = nil
		return a, nil
	}
	return a, cmd
}
