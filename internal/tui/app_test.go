package tui

import (
	"testing"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(snap model.Snapshot, saved *model.Snapshot) App {
	a := NewApp(snap, func(s model.Snapshot) error {
		*saved = s
		return nil
	})
	a.today = "2024-06-10"
	return a
}

func TestDueSoonLoans(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Khata.Loans = []model.Loan{
		{ID: "l1", Person: "Rahim", Amount: 500, Status: model.StatusPending, Type: model.LoanTaken, DueDate: "2024-06-12"},
		{ID: "l2", Person: "Karim", Amount: 300, Status: model.StatusPending, Type: model.LoanGiven, DueDate: "2024-07-01"},
		{ID: "l3", Person: "Salma", Amount: 200, Status: model.StatusPaid, Type: model.LoanTaken, DueDate: "2024-06-11"},
		{ID: "l4", Person: "Anwar", Amount: 100, Status: model.StatusPending, Type: model.LoanTaken, DueDate: "2024-06-01"},
	}

	var saved model.Snapshot
	a := testApp(snap, &saved)

	due := a.dueSoonLoans()
	require.Len(t, due, 2)
	// Within 7 days, including overdue; settled and far-future excluded.
	assert.Equal(t, "l1", due[0].ID)
	assert.Equal(t, "l4", due[1].ID)
}

func TestVisibleTransactionsFilter(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Khata.Transactions = []model.Transaction{
		{ID: "t1", Amount: 100, Type: model.TypeIncome, Date: "2024-06-01"},
		{ID: "t2", Amount: 50, Type: model.TypeExpense, Date: "2024-06-02"},
		{ID: "t3", Amount: 25, Type: model.TypeExpense, Date: "2024-06-03"},
	}

	var saved model.Snapshot
	a := testApp(snap, &saved)

	assert.Len(t, a.visibleTransactions(), 3)

	a.hist.filter = histIncome
	income := a.visibleTransactions()
	require.Len(t, income, 1)
	assert.Equal(t, "t1", income[0].ID)

	a.hist.filter = histExpense
	assert.Len(t, a.visibleTransactions(), 2)
}

func TestDeleteTransactionPersists(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Khata.Transactions = []model.Transaction{
		{ID: "t1", Amount: 100, Type: model.TypeIncome, Date: "2024-06-01"},
		{ID: "t2", Amount: 50, Type: model.TypeExpense, Date: "2024-06-02"},
	}

	var saved model.Snapshot
	a := testApp(snap, &saved)

	a.deleteTransaction("t1")

	require.Len(t, a.snap.Khata.Transactions, 1)
	assert.Equal(t, "t2", a.snap.Khata.Transactions[0].ID)
	assert.Len(t, saved.Khata.Transactions, 1)
}

func TestSetMonthNote(t *testing.T) {
	var saved model.Snapshot
	a := testApp(model.DefaultSnapshot(), &saved)

	a.setMonthNote("2024-06", "paid rent early")
	require.Len(t, a.snap.Khata.Notes, 1)
	assert.Equal(t, "paid rent early", a.monthNote("2024-06"))

	a.setMonthNote("2024-06", "updated")
	require.Len(t, a.snap.Khata.Notes, 1)
	assert.Equal(t, "updated", a.monthNote("2024-06"))

	// Clearing removes the record entirely.
	a.setMonthNote("2024-06", "")
	assert.Empty(t, a.snap.Khata.Notes)
}

func TestSettleLoanFromTab(t *testing.T) {
	snap := model.DefaultSnapshot()
	snap.Khata.Loans = []model.Loan{
		{ID: "l1", Person: "Rahim", Amount: 500, Status: model.StatusPending, Type: model.LoanGiven},
	}

	var saved model.Snapshot
	a := testApp(snap, &saved)

	a.settleLoan("l1")
	assert.Equal(t, model.StatusReceived, a.snap.Khata.Loans[0].Status)
	assert.Equal(t, model.StatusReceived, saved.Khata.Loans[0].Status)
}

func TestCycleSettingTheme(t *testing.T) {
	var saved model.Snapshot
	a := testApp(model.DefaultSnapshot(), &saved)

	require.Equal(t, "light", a.snap.Settings.Theme)
	a.cycleSetting(1)
	assert.Equal(t, "dark", a.snap.Settings.Theme)
	a.cycleSetting(1)
	assert.Equal(t, "light", a.snap.Settings.Theme)

	a.cycleSetting(3)
	assert.True(t, a.snap.Settings.ReminderEnabled)
	assert.True(t, saved.Settings.ReminderEnabled)
}

func TestShiftMonth(t *testing.T) {
	assert.Equal(t, "2024-01", shiftMonth("2024-02", -1))
	assert.Equal(t, "2025-01", shiftMonth("2024-12", 1))
	assert.Equal(t, "bogus", shiftMonth("bogus", 1))
}
