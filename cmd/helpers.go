package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/ledger"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

func computeTotalsNow(snap model.Snapshot) ledger.Totals {
	return ledger.ComputeTotals(snap.Khata.Transactions, snap.Khata.Loans, cli.Today())
}

// checkDate validates a YYYY-MM-DD flag value, defaulting empty to today.
func checkDate(date string) (string, error) {
	if date == "" {
		return cli.Today(), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return date, nil
}

// checkMonth validates a YYYY-MM flag value, defaulting empty to this month.
func checkMonth(month string) (string, error) {
	if month == "" {
		return cli.ThisMonth(), nil
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return "", fmt.Errorf("invalid month %q, want YYYY-MM", month)
	}
	return month, nil
}

// findTransaction locates a transaction by id or unambiguous id prefix.
func findTransaction(k model.Khata, id string) (int, bool) {
	match := -1
	for i, tr := range k.Transactions {
		if tr.ID == id {
			return i, true
		}
		if strings.HasPrefix(tr.ID, id) {
			if match >= 0 {
				return -1, false // ambiguous prefix
			}
			match = i
		}
	}
	return match, match >= 0
}

// findLoan locates a loan by id or unambiguous id prefix.
func findLoan(k model.Khata, id string) (int, bool) {
	match := -1
	for i, l := range k.Loans {
		if l.ID == id {
			return i, true
		}
		if strings.HasPrefix(l.ID, id) {
			if match >= 0 {
				return -1, false
			}
			match = i
		}
	}
	return match, match >= 0
}

// loansDueSoon returns pending loans due within the next horizonDays days,
// overdue ones included, ordered by due date.
func loansDueSoon(loans []model.Loan, horizonDays int) []model.Loan {
	horizon := time.Now().AddDate(0, 0, horizonDays).Format("2006-01-02")
	var due []model.Loan
	for _, l := range loans {
		if l.Status != model.StatusPending || l.DueDate == "" {
			continue
		}
		if l.DueDate <= horizon {
			due = append(due, l)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].DueDate < due[j].DueDate })
	return due
}

// shortID renders the first 8 characters of an id for listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
