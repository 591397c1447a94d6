package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

func TestBucketByMonth_Empty(t *testing.T) {
	assert.Empty(t, BucketByMonth(nil, nil))
}

func TestBucketByMonth_AscendingWithClosingBalance(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeExpense, 200, "2024-02-10"),
		tx(model.TypeIncome, 1000, "2024-01-01"),
		tx(model.TypeExpense, 300, "2024-01-15"),
		tx(model.TypeIncome, 400, "2024-02-01"),
	}

	got := BucketByMonth(txs, nil)
	require.Len(t, got, 2)

	jan, feb := got[0], got[1]
	assert.Equal(t, "2024-01", jan.Month)
	assert.Equal(t, 1000.0, jan.Income)
	assert.Equal(t, 300.0, jan.Expense)
	assert.Equal(t, 700.0, jan.FinanceBalance)
	assert.Equal(t, 700.0, jan.ClosingBalance)

	assert.Equal(t, "2024-02", feb.Month)
	assert.Equal(t, 200.0, feb.FinanceBalance)
	assert.Equal(t, 900.0, feb.ClosingBalance, "closing balance is a prefix sum")
}

func TestBucketByMonth_LoanColumnsUsePaymentMonth(t *testing.T) {
	// A loan originated in January with payments spread across later months
	// contributes to the month each payment landed in, not the origination
	// month.
	loans := []model.Loan{
		{
			ID: "a", Type: model.LoanTaken, Status: model.StatusPending,
			Amount: 900, Date: "2024-01-05",
			Payments: []model.LoanPayment{
				{ID: "p1", Amount: 300, Date: "2024-02-11"},
				{ID: "p2", Amount: 100, Date: "2024-03-02"},
			},
		},
		{
			ID: "b", Type: model.LoanGiven, Status: model.StatusPending,
			Amount: 500, Date: "2024-02-01",
			Payments: []model.LoanPayment{
				{ID: "p3", Amount: 50, Date: "2024-02-20"},
			},
		},
	}

	got := BucketByMonth(nil, loans)
	require.Len(t, got, 2)

	feb, mar := got[0], got[1]
	assert.Equal(t, "2024-02", feb.Month)
	assert.Equal(t, 300.0, feb.LoanTaken)
	assert.Equal(t, 50.0, feb.LoanGiven)
	assert.Equal(t, 250.0, feb.LoanBalance)
	assert.Equal(t, 250.0, feb.ClosingBalance)

	assert.Equal(t, "2024-03", mar.Month)
	assert.Equal(t, 100.0, mar.LoanTaken)
	assert.Equal(t, 350.0, mar.ClosingBalance)
}

func TestMonthsBetween(t *testing.T) {
	records := BucketByMonth([]model.Transaction{
		tx(model.TypeIncome, 1, "2024-01-01"),
		tx(model.TypeIncome, 2, "2024-02-01"),
		tx(model.TypeIncome, 3, "2024-03-01"),
	}, nil)

	got := MonthsBetween(records, "2024-02", "2024-03")
	require.Len(t, got, 2)
	assert.Equal(t, "2024-02", got[0].Month)

	assert.Len(t, MonthsBetween(records, "", ""), 3)
	assert.Empty(t, MonthsBetween(records, "2025-01", ""))
}

func TestMonthsOfYear(t *testing.T) {
	records := BucketByMonth([]model.Transaction{
		tx(model.TypeIncome, 1, "2023-12-31"),
		tx(model.TypeIncome, 2, "2024-01-01"),
	}, nil)

	got := MonthsOfYear(records, "2024")
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01", got[0].Month)
}

func TestRangeTotals(t *testing.T) {
	records := []MonthSummary{
		{Month: "2024-01", Income: 100, Expense: 40, LoanTaken: 10, LoanGiven: 5},
		{Month: "2024-02", Income: 50, Expense: 60, LoanTaken: 0, LoanGiven: 20},
	}

	got := RangeTotals(records)
	assert.Equal(t, 150.0, got.Income)
	assert.Equal(t, 100.0, got.Expense)
	assert.Equal(t, 10.0, got.LoanTaken)
	assert.Equal(t, 25.0, got.LoanGiven)
}
