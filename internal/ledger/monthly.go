package ledger

import (
	"sort"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

// MonthSummary holds one calendar month's figures. The loan columns sum
// payment movement dated in that month, not loan origination amounts.
type MonthSummary struct {
	Month          string // YYYY-MM
	Income         float64
	Expense        float64
	LoanGiven      float64 // payments received back on given loans
	LoanTaken      float64 // payments made on taken loans
	FinanceBalance float64 // income - expense for the month
	LoanBalance    float64 // loanTaken - loanGiven for the month
	ClosingBalance float64 // running net across months, ascending
}

// BucketByMonth groups transactions and loan payments into per-month
// summaries, ordered ascending by month key. ClosingBalance is a prefix sum
// of each month's (income - expense + loanTaken - loanGiven).
func BucketByMonth(transactions []model.Transaction, loans []model.Loan) []MonthSummary {
	months := make(map[string]*MonthSummary)

	bucket := func(month string) *MonthSummary {
		ms, ok := months[month]
		if !ok {
			ms = &MonthSummary{Month: month}
			months[month] = ms
		}
		return ms
	}

	for _, tr := range transactions {
		ms := bucket(monthOf(tr.Date))
		switch tr.Type {
		case model.TypeIncome:
			ms.Income += tr.Amount
		case model.TypeExpense:
			ms.Expense += tr.Amount
		}
	}

	for _, l := range loans {
		for _, p := range l.Payments {
			ms := bucket(monthOf(p.Date))
			switch l.Type {
			case model.LoanGiven:
				ms.LoanGiven += p.Amount
			case model.LoanTaken:
				ms.LoanTaken += p.Amount
			}
		}
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var running float64
	result := make([]MonthSummary, 0, len(keys))
	for _, k := range keys {
		ms := *months[k]
		ms.FinanceBalance = ms.Income - ms.Expense
		ms.LoanBalance = ms.LoanTaken - ms.LoanGiven
		running += ms.Income - ms.Expense + ms.LoanTaken - ms.LoanGiven
		ms.ClosingBalance = running
		result = append(result, ms)
	}
	return result
}

// MonthsBetween keeps summaries whose month falls in [from, to] inclusive.
// Empty bounds are open-ended.
func MonthsBetween(records []MonthSummary, from, to string) []MonthSummary {
	var result []MonthSummary
	for _, r := range records {
		if from != "" && r.Month < from {
			continue
		}
		if to != "" && r.Month > to {
			continue
		}
		result = append(result, r)
	}
	return result
}

// MonthsOfYear keeps summaries belonging to the given YYYY year.
func MonthsOfYear(records []MonthSummary, year string) []MonthSummary {
	var result []MonthSummary
	for _, r := range records {
		if strings.HasPrefix(r.Month, year+"-") {
			result = append(result, r)
		}
	}
	return result
}

// RangeTotals sums the movement columns over a set of month summaries.
// Balance fields are left zero; they are only meaningful per month.
func RangeTotals(records []MonthSummary) MonthSummary {
	var t MonthSummary
	for _, r := range records {
		t.Income += r.Income
		t.Expense += r.Expense
		t.LoanGiven += r.LoanGiven
		t.LoanTaken += r.LoanTaken
	}
	return t
}

// monthOf truncates a YYYY-MM-DD date to its YYYY-MM month key.
func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}
