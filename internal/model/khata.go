// Package model defines the record types that make up a khata (ledger).
package model

// TransactionType classifies a transaction or category as income or expense.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// LoanType says which direction the money went.
type LoanType string

const (
	LoanTaken LoanType = "TAKEN" // money the user borrowed
	LoanGiven LoanType = "GIVEN" // money the user lent out
)

// LoanStatus is the settlement state of a loan.
type LoanStatus string

const (
	StatusPending  LoanStatus = "PENDING"
	StatusPaid     LoanStatus = "PAID"     // a TAKEN loan fully repaid
	StatusReceived LoanStatus = "RECEIVED" // a GIVEN loan fully recovered
)

// Transaction is a single income or expense event.
// Dates are calendar-day strings (YYYY-MM-DD); comparisons are plain string
// equality, there is no timezone handling at this layer.
type Transaction struct {
	ID       string          `json:"id"`
	Amount   float64         `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
	Note     string          `json:"note"`
	Type     TransactionType `json:"type"`
}

// LoanPayment is one partial/installment payment against a loan. It exists
// only inside its owning Loan.
type LoanPayment struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Note   string  `json:"note"`
}

// Loan is a debt obligation with its payment history.
// Payments is always non-nil after Normalize, possibly empty.
type Loan struct {
	ID       string        `json:"id"`
	Person   string        `json:"person"`
	Amount   float64       `json:"amount"`
	Date     string        `json:"date"`
	DueDate  string        `json:"dueDate"`
	Reason   string        `json:"reason"`
	Status   LoanStatus    `json:"status"`
	Type     LoanType      `json:"type"`
	Payments []LoanPayment `json:"payments"`
}

// Category is a user-defined label/type pairing for classifying transactions.
// For merge purposes its identity is the (label, type) pair, not the id.
type Category struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Type  TransactionType `json:"type"`
}

// MonthlyNote is one free-text note per calendar month (YYYY-MM).
// For merge purposes its identity is the month.
type MonthlyNote struct {
	ID    string `json:"id"`
	Month string `json:"month"`
	Text  string `json:"text"`
}

// Khata is the ledger aggregate: everything the user tracks, and the unit of
// backup, export and import.
type Khata struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Transactions []Transaction `json:"transactions"`
	Loans        []Loan        `json:"loans"`
	Notes        []MonthlyNote `json:"notes"`
	Categories   []Category    `json:"categories"`
}
