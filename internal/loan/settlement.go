// Package loan maintains the relationship between a loan's payments and its
// settlement status. All functions are pure: they take a loan value and
// return the updated loan, never touching the input's payment slice.
package loan

import "github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

// TotalPaid sums the loan's payment amounts.
func TotalPaid(l model.Loan) float64 {
	var paid float64
	for _, p := range l.Payments {
		paid += p.Amount
	}
	return paid
}

// Outstanding is the unpaid principal, clamped at zero so an overpayment
// never reads as a negative balance. Only meaningful while the loan is
// PENDING; settled loans are excluded from outstanding aggregates entirely.
func Outstanding(l model.Loan) float64 {
	remaining := l.Amount - TotalPaid(l)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SettledStatus is the terminal-direction status for the loan's type:
// a repaid TAKEN loan is PAID, a recovered GIVEN loan is RECEIVED.
func SettledStatus(t model.LoanType) model.LoanStatus {
	if t == model.LoanTaken {
		return model.StatusPaid
	}
	return model.StatusReceived
}

// ApplyPayment adds or edits a payment and recomputes the loan's status.
// When existingID is non-empty the matching payment is replaced in place,
// keeping its identifier; otherwise a new payment is appended with an id from
// newID. Overpayment is allowed: the status rule treats paid >= amount as
// settled even if the sum overshoots.
func ApplyPayment(l model.Loan, p model.LoanPayment, existingID string, newID model.IDFunc) model.Loan {
	payments := make([]model.LoanPayment, len(l.Payments))
	copy(payments, l.Payments)

	if existingID != "" {
		for i := range payments {
			if payments[i].ID == existingID {
				p.ID = existingID
				payments[i] = p
				break
			}
		}
	} else {
		p.ID = newID()
		payments = append(payments, p)
	}

	l.Payments = payments
	return Recompute(l)
}

// DeletePayment removes a payment by id and recomputes the loan's status.
// A paid-off loan drops back to PENDING if the remaining payments no longer
// cover the principal; this applies to force-settled loans too, since
// settlement does not freeze future recomputation.
func DeletePayment(l model.Loan, paymentID string) model.Loan {
	payments := make([]model.LoanPayment, 0, len(l.Payments))
	for _, p := range l.Payments {
		if p.ID != paymentID {
			payments = append(payments, p)
		}
	}
	l.Payments = payments
	return Recompute(l)
}

// Settle forces the loan's status to PAID/RECEIVED regardless of how much has
// actually been paid. The payment history is left untouched: any unpaid
// remainder is an implicit write-off and simply stops being counted.
func Settle(l model.Loan) model.Loan {
	l.Status = SettledStatus(l.Type)
	return l
}

// Recompute re-derives the status from the payments-vs-principal relation.
// Callers use it after changing the principal amount directly.
func Recompute(l model.Loan) model.Loan {
	if TotalPaid(l) >= l.Amount {
		l.Status = SettledStatus(l.Type)
	} else {
		l.Status = model.StatusPending
	}
	return l
}
