package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

const today = "2024-01-05"

func tx(typ model.TransactionType, amount float64, date string) model.Transaction {
	return model.Transaction{ID: model.NewID(), Type: typ, Amount: amount, Category: "General", Date: date}
}

func TestComputeTotals_Empty(t *testing.T) {
	got := ComputeTotals(nil, nil, today)
	assert.Equal(t, Totals{}, got)
}

func TestComputeTotals_IncomeExpense(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeIncome, 1000, "2024-01-01"),
		tx(model.TypeExpense, 300, "2024-01-05"),
	}

	got := ComputeTotals(txs, nil, today)
	assert.Equal(t, 1000.0, got.Income)
	assert.Equal(t, 300.0, got.Expense)
	assert.Equal(t, 0.0, got.LoanTaken)
	assert.Equal(t, 0.0, got.LoanGiven)
	assert.Equal(t, 700.0, got.Balance)
}

func TestComputeTotals_TodayUsesExactDateMatch(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeIncome, 1000, "2024-01-01"),
		tx(model.TypeIncome, 50, today),
		tx(model.TypeExpense, 300, today),
		tx(model.TypeExpense, 10, "2024-01-04"),
	}

	got := ComputeTotals(txs, nil, today)
	assert.Equal(t, 50.0, got.TodayIncome)
	assert.Equal(t, 300.0, got.TodayExpense)
}

func TestComputeTotals_PendingLoansCountOutstanding(t *testing.T) {
	loans := []model.Loan{
		{
			ID: "a", Type: model.LoanTaken, Status: model.StatusPending, Amount: 500,
			Payments: []model.LoanPayment{{ID: "p1", Amount: 200, Date: "2024-01-02"}},
		},
		{
			ID: "b", Type: model.LoanGiven, Status: model.StatusPending, Amount: 1000,
			Payments: []model.LoanPayment{},
		},
	}

	got := ComputeTotals(nil, loans, today)
	assert.Equal(t, 300.0, got.LoanTaken)
	assert.Equal(t, 1000.0, got.LoanGiven)
	assert.Equal(t, -700.0, got.Balance)
}

func TestComputeTotals_SettledLoansExcludedEntirely(t *testing.T) {
	loans := []model.Loan{
		// Force-settled with an unpaid remainder: neither principal nor
		// payments count once the status leaves PENDING.
		{
			ID: "a", Type: model.LoanTaken, Status: model.StatusPaid, Amount: 500,
			Payments: []model.LoanPayment{{ID: "p1", Amount: 100}},
		},
		{ID: "b", Type: model.LoanGiven, Status: model.StatusReceived, Amount: 800},
	}

	got := ComputeTotals(nil, loans, today)
	assert.Equal(t, Totals{}, got)
}

func TestComputeTotals_OverpaidPendingClampsAtZero(t *testing.T) {
	loans := []model.Loan{
		{
			ID: "a", Type: model.LoanTaken, Status: model.StatusPending, Amount: 100,
			Payments: []model.LoanPayment{{ID: "p1", Amount: 150}},
		},
	}

	got := ComputeTotals(nil, loans, today)
	assert.Equal(t, 0.0, got.LoanTaken)
}

func TestComputeTotals_BalanceIdentity(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeIncome, 1234.56, "2023-11-01"),
		tx(model.TypeIncome, 78.9, "2024-01-02"),
		tx(model.TypeExpense, 456.78, "2024-01-03"),
	}
	loans := []model.Loan{
		{ID: "a", Type: model.LoanTaken, Status: model.StatusPending, Amount: 900,
			Payments: []model.LoanPayment{{ID: "p1", Amount: 250.25}}},
		{ID: "b", Type: model.LoanGiven, Status: model.StatusPending, Amount: 120},
	}

	got := ComputeTotals(txs, loans, today)
	assert.Equal(t, got.Income-got.Expense+got.LoanTaken-got.LoanGiven, got.Balance)
}
