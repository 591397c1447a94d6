package cmd

import (
	"errors"
	"fmt"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddCategory string
	flagAddDate     string
	flagAddNote     string
)

var addCmd = &cobra.Command{
	Use:   "add (income|expense) AMOUNT",
	Short: "Record an income or expense entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category label (required)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Entry date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&flagAddNote, "note", "", "Free-text note")
	rootCmd.AddCommand(addCmd)
}

func parseEntryType(s string) (model.TransactionType, error) {
	switch s {
	case "income":
		return model.TypeIncome, nil
	case "expense":
		return model.TypeExpense, nil
	default:
		return "", fmt.Errorf("entry type must be income or expense, got %q", s)
	}
}

func parseAmount(s string) (float64, error) {
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v < 0 {
		return 0, errors.New("amount must not be negative")
	}
	return v, nil
}

func runAdd(_ *cobra.Command, args []string) error {
	typ, err := parseEntryType(args[0])
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	if flagAddCategory == "" {
		return errors.New("a category is required, pass --category")
	}
	date, err := checkDate(flagAddDate)
	if err != nil {
		return err
	}

	tr := model.Transaction{
		ID:       model.NewID(),
		Type:     typ,
		Amount:   amount,
		Category: flagAddCategory,
		Date:     date,
		Note:     flagAddNote,
	}

	return mutate(func(snap *model.Snapshot) error {
		// Newest entries go first, like the ledger pages read.
		snap.Khata.Transactions = append([]model.Transaction{tr}, snap.Khata.Transactions...)
		fmt.Printf("  Recorded %s of %s in %s on %s (%s)\n",
			args[0], cli.FormatAmount(amount), flagAddCategory, cli.FormatDate(date), shortID(tr.ID))
		return nil
	})
}
