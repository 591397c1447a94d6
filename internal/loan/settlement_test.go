package loan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

func seqID() model.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

func takenLoan(amount float64, payments ...model.LoanPayment) model.Loan {
	if payments == nil {
		payments = []model.LoanPayment{}
	}
	return model.Loan{
		ID:       "l1",
		Person:   "Rahim",
		Amount:   amount,
		Date:     "2024-01-10",
		Status:   model.StatusPending,
		Type:     model.LoanTaken,
		Payments: payments,
	}
}

func TestApplyPayment_PartialKeepsPending(t *testing.T) {
	l := takenLoan(500, model.LoanPayment{ID: "p0", Amount: 200, Date: "2024-02-01"})

	require.Equal(t, 300.0, Outstanding(l))

	got := ApplyPayment(l, model.LoanPayment{Amount: 100, Date: "2024-03-01"}, "", seqID())
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, 200.0, Outstanding(got))
	assert.Len(t, got.Payments, 2)
	assert.Equal(t, "p1", got.Payments[1].ID)
}

func TestApplyPayment_ThresholdSettlesTaken(t *testing.T) {
	l := takenLoan(500, model.LoanPayment{ID: "p0", Amount: 200, Date: "2024-02-01"})

	got := ApplyPayment(l, model.LoanPayment{Amount: 300, Date: "2024-03-01"}, "", seqID())
	assert.Equal(t, model.StatusPaid, got.Status)
	assert.Equal(t, 0.0, Outstanding(got))
}

func TestApplyPayment_ThresholdSettlesGivenAsReceived(t *testing.T) {
	l := takenLoan(100)
	l.Type = model.LoanGiven

	got := ApplyPayment(l, model.LoanPayment{Amount: 100, Date: "2024-03-01"}, "", seqID())
	assert.Equal(t, model.StatusReceived, got.Status)
}

func TestApplyPayment_OverpaymentAllowed(t *testing.T) {
	l := takenLoan(500)

	got := ApplyPayment(l, model.LoanPayment{Amount: 900, Date: "2024-03-01"}, "", seqID())
	assert.Equal(t, model.StatusPaid, got.Status)
	assert.Equal(t, 0.0, Outstanding(got), "overpayment must not go negative")
	assert.Equal(t, 900.0, TotalPaid(got))
}

func TestApplyPayment_EditPreservesID(t *testing.T) {
	l := takenLoan(500,
		model.LoanPayment{ID: "p0", Amount: 200, Date: "2024-02-01", Note: "first"},
	)

	got := ApplyPayment(l, model.LoanPayment{Amount: 500, Date: "2024-02-15", Note: "fixed"}, "p0", seqID())
	require.Len(t, got.Payments, 1)
	assert.Equal(t, "p0", got.Payments[0].ID)
	assert.Equal(t, 500.0, got.Payments[0].Amount)
	assert.Equal(t, "fixed", got.Payments[0].Note)
	assert.Equal(t, model.StatusPaid, got.Status)
}

func TestApplyPayment_DoesNotMutateInput(t *testing.T) {
	l := takenLoan(500, model.LoanPayment{ID: "p0", Amount: 200})

	_ = ApplyPayment(l, model.LoanPayment{Amount: 300}, "", seqID())
	assert.Len(t, l.Payments, 1, "input loan must keep its payment list")
	assert.Equal(t, model.StatusPending, l.Status)
}

func TestDeletePayment_RecomputesStatus(t *testing.T) {
	l := takenLoan(500,
		model.LoanPayment{ID: "p0", Amount: 300},
		model.LoanPayment{ID: "p1", Amount: 200},
	)
	l.Status = model.StatusPaid

	got := DeletePayment(l, "p1")
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, 200.0, Outstanding(got))

	got = DeletePayment(got, "p0")
	assert.Empty(t, got.Payments)
	assert.Equal(t, 500.0, Outstanding(got))
}

func TestDeletePayment_UnknownIDIsNoop(t *testing.T) {
	l := takenLoan(500, model.LoanPayment{ID: "p0", Amount: 500})
	l.Status = model.StatusPaid

	got := DeletePayment(l, "missing")
	assert.Len(t, got.Payments, 1)
	assert.Equal(t, model.StatusPaid, got.Status)
}

func TestSettle_ForcesStatusWithoutTouchingPayments(t *testing.T) {
	l := takenLoan(500, model.LoanPayment{ID: "p0", Amount: 100})

	got := Settle(l)
	assert.Equal(t, model.StatusPaid, got.Status)
	assert.Len(t, got.Payments, 1, "settle must not clear payment history")
	assert.Equal(t, 400.0, l.Amount-TotalPaid(got), "remainder stays on record")

	given := takenLoan(500)
	given.Type = model.LoanGiven
	assert.Equal(t, model.StatusReceived, Settle(given).Status)
}

func TestSettle_ThenPaymentMutationRecomputes(t *testing.T) {
	// Force-settlement does not freeze the status: a later payment mutation
	// recomputes it from the sums.
	l := Settle(takenLoan(500, model.LoanPayment{ID: "p0", Amount: 100}))

	got := DeletePayment(l, "p0")
	assert.Equal(t, model.StatusPending, got.Status)
}

func TestRecompute_PrincipalChangeFlipsStatus(t *testing.T) {
	l := takenLoan(100, model.LoanPayment{ID: "p0", Amount: 100})
	l = Recompute(l)
	assert.Equal(t, model.StatusPaid, l.Status)

	// Raising the principal reopens the loan.
	l.Amount = 300
	l = Recompute(l)
	assert.Equal(t, model.StatusPending, l.Status)
}

func TestSettlementInvariant(t *testing.T) {
	// After any payment mutation: status == PENDING iff paid < amount.
	l := takenLoan(1000)
	gen := seqID()

	amounts := []float64{100, 250, 400, 250, 500}
	for _, a := range amounts {
		l = ApplyPayment(l, model.LoanPayment{Amount: a, Date: "2024-05-01"}, "", gen)
		pending := TotalPaid(l) < l.Amount
		assert.Equal(t, pending, l.Status == model.StatusPending,
			"paid=%v amount=%v status=%v", TotalPaid(l), l.Amount, l.Status)
	}

	for _, p := range append([]model.LoanPayment{}, l.Payments...) {
		l = DeletePayment(l, p.ID)
		pending := TotalPaid(l) < l.Amount
		assert.Equal(t, pending, l.Status == model.StatusPending)
	}
}
