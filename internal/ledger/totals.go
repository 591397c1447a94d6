// Package ledger computes read-only derived views over the transaction and
// loan collections. Every function here is pure and total: it never mutates
// its inputs and empty collections yield zeroed results, not errors.
package ledger

import (
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/loan"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

// Totals is the top-level dashboard aggregate.
type Totals struct {
	Income       float64
	Expense      float64
	LoanTaken    float64 // outstanding principal still owed by the user
	LoanGiven    float64 // outstanding principal still owed to the user
	TodayIncome  float64
	TodayExpense float64
	Balance      float64
}

// ComputeTotals folds all transactions and loans into the dashboard totals.
// today is the current calendar day as YYYY-MM-DD; today's figures use exact
// string equality on the date key. Outstanding loan principal counts only
// PENDING loans: an outstanding taken loan reads as cash in hand, an
// outstanding given loan as cash out, and settled loans do not affect the
// balance at all.
func ComputeTotals(transactions []model.Transaction, loans []model.Loan, today string) Totals {
	var t Totals

	for _, tr := range transactions {
		switch tr.Type {
		case model.TypeIncome:
			t.Income += tr.Amount
			if tr.Date == today {
				t.TodayIncome += tr.Amount
			}
		case model.TypeExpense:
			t.Expense += tr.Amount
			if tr.Date == today {
				t.TodayExpense += tr.Amount
			}
		}
	}

	for _, l := range loans {
		if l.Status != model.StatusPending {
			continue
		}
		switch l.Type {
		case model.LoanTaken:
			t.LoanTaken += loan.Outstanding(l)
		case model.LoanGiven:
			t.LoanGiven += loan.Outstanding(l)
		}
	}

	t.Balance = t.Income - t.Expense + t.LoanTaken - t.LoanGiven
	return t
}
