package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

func catTx(typ model.TransactionType, amount float64, date, category string) model.Transaction {
	t := tx(typ, amount, date)
	t.Category = category
	return t
}

func TestFilterByRange_Week(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeExpense, 1, "2024-03-10"), // today
		tx(model.TypeExpense, 2, "2024-03-04"), // 6 days back, still inside
		tx(model.TypeExpense, 3, "2024-03-03"), // 7 days back, outside
		tx(model.TypeExpense, 4, "2024-03-11"), // future, outside
	}

	got := FilterByRange(txs, Range{Kind: RangeWeek}, "2024-03-10", "")
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Amount)
	assert.Equal(t, 2.0, got[1].Amount)
}

func TestFilterByRange_CurrentMonth(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeIncome, 1, "2024-03-01"),
		tx(model.TypeIncome, 2, "2024-03-31"),
		tx(model.TypeIncome, 3, "2024-02-29"),
	}

	got := FilterByRange(txs, Range{Kind: RangeMonth}, "2024-03-10", "")
	assert.Len(t, got, 2)
}

func TestFilterByRange_CustomInclusive(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeIncome, 1, "2024-01-01"),
		tx(model.TypeIncome, 2, "2024-01-15"),
		tx(model.TypeIncome, 3, "2024-01-31"),
		tx(model.TypeIncome, 4, "2024-02-01"),
	}

	got := FilterByRange(txs, Range{Kind: RangeCustom, Start: "2024-01-01", End: "2024-01-31"}, "2024-06-01", "")
	assert.Len(t, got, 3, "both bounds are inclusive")
}

func TestFilterByRange_CategoryFilter(t *testing.T) {
	txs := []model.Transaction{
		catTx(model.TypeExpense, 1, "2024-03-05", "খাবার"),
		catTx(model.TypeExpense, 2, "2024-03-06", "ভাড়া"),
	}

	got := FilterByRange(txs, Range{Kind: RangeMonth}, "2024-03-10", "খাবার")
	require.Len(t, got, 1)
	assert.Equal(t, "খাবার", got[0].Category)

	assert.Len(t, FilterByRange(txs, Range{Kind: RangeMonth}, "2024-03-10", ""), 2)
}

func TestBucketForChart_DailyAndMonthly(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeIncome, 100, "2024-03-02"),
		tx(model.TypeExpense, 40, "2024-03-02"),
		tx(model.TypeExpense, 10, "2024-03-01"),
		tx(model.TypeIncome, 5, "2024-04-01"),
	}

	daily := BucketForChart(txs, true)
	require.Len(t, daily, 3)
	assert.Equal(t, "2024-03-01", daily[0].Key, "ascending key order")
	assert.Equal(t, ChartPoint{Key: "2024-03-02", Income: 100, Expense: 40}, daily[1])

	monthly := BucketForChart(txs, false)
	require.Len(t, monthly, 2)
	assert.Equal(t, ChartPoint{Key: "2024-03", Income: 100, Expense: 50}, monthly[0])
}

func TestCategoryBreakdown_ExpenseOnlyDescending(t *testing.T) {
	txs := []model.Transaction{
		catTx(model.TypeExpense, 30, "2024-03-01", "খাবার"),
		catTx(model.TypeExpense, 70, "2024-03-02", "ভাড়া"),
		catTx(model.TypeExpense, 20, "2024-03-03", "খাবার"),
		catTx(model.TypeIncome, 999, "2024-03-04", "বেতন"),
	}

	got := CategoryBreakdown(txs)
	require.Len(t, got, 2)
	assert.Equal(t, CategoryTotal{Category: "ভাড়া", Amount: 70}, got[0])
	assert.Equal(t, CategoryTotal{Category: "খাবার", Amount: 50}, got[1])
}

func TestDaySpan(t *testing.T) {
	assert.Equal(t, 1, DaySpan("2024-03-01", "2024-03-01"))
	assert.Equal(t, 31, DaySpan("2024-03-01", "2024-03-31"))
	assert.Equal(t, 0, DaySpan("bogus", "2024-03-31"))
}
