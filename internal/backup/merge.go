package backup

import (
	"sort"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

// Merge combines an imported khata into the current one without duplicating
// or losing records. The merge only ever appends: current records always win,
// and an imported record is dropped when its identity already exists.
//
// Identity keys differ per entity. Transactions and loans use their generated
// id (payments travel with their owning loan and are not merged
// independently). Categories and monthly notes are content-addressed —
// (label, type) and month respectively — because ids generated on another
// device are not comparable for entities the user recreates by hand.
//
// Settings are deliberately not part of the merge; callers keep the current
// side's settings untouched.
func Merge(current, imported model.Khata) model.Khata {
	merged := current

	txIDs := make(map[string]struct{}, len(current.Transactions))
	for _, tr := range current.Transactions {
		txIDs[tr.ID] = struct{}{}
	}
	transactions := append([]model.Transaction{}, current.Transactions...)
	for _, tr := range imported.Transactions {
		if _, ok := txIDs[tr.ID]; ok {
			continue
		}
		transactions = append(transactions, tr)
	}

	loanIDs := make(map[string]struct{}, len(current.Loans))
	for _, l := range current.Loans {
		loanIDs[l.ID] = struct{}{}
	}
	loans := append([]model.Loan{}, current.Loans...)
	for _, l := range imported.Loans {
		if _, ok := loanIDs[l.ID]; ok {
			continue
		}
		loans = append(loans, l)
	}

	type catKey struct {
		label string
		typ   model.TransactionType
	}
	catKeys := make(map[catKey]struct{}, len(current.Categories))
	for _, c := range current.Categories {
		catKeys[catKey{c.Label, c.Type}] = struct{}{}
	}
	categories := append([]model.Category{}, current.Categories...)
	for _, c := range imported.Categories {
		if _, ok := catKeys[catKey{c.Label, c.Type}]; ok {
			continue
		}
		categories = append(categories, c)
	}

	noteMonths := make(map[string]struct{}, len(current.Notes))
	for _, n := range current.Notes {
		noteMonths[n.Month] = struct{}{}
	}
	notes := append([]model.MonthlyNote{}, current.Notes...)
	for _, n := range imported.Notes {
		if _, ok := noteMonths[n.Month]; ok {
			continue
		}
		notes = append(notes, n)
	}

	// Most recent first; stable so same-day records keep their relative order.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})
	sort.SliceStable(loans, func(i, j int) bool {
		return loans[i].Date > loans[j].Date
	})

	merged.Transactions = transactions
	merged.Loans = loans
	merged.Categories = categories
	merged.Notes = notes
	return merged
}
