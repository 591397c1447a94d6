package cmd

import (
	"fmt"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagEditAmount   string
	flagEditCategory string
	flagEditDate     string
	flagEditNote     string
)

var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a recorded income or expense entry",
	Long:  "Edit a transaction in place by id (or unambiguous id prefix).\nOnly the fields passed as flags change.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditAmount, "amount", "", "New amount")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category label")
	editCmd.Flags().StringVar(&flagEditDate, "date", "", "New date YYYY-MM-DD")
	editCmd.Flags().StringVar(&flagEditNote, "note", "", "New note")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	return mutate(func(snap *model.Snapshot) error {
		idx, ok := findTransaction(snap.Khata, args[0])
		if !ok {
			return fmt.Errorf("no transaction matches %q", args[0])
		}
		tr := &snap.Khata.Transactions[idx]

		if cmd.Flags().Changed("amount") {
			amount, err := parseAmount(flagEditAmount)
			if err != nil {
				return err
			}
			tr.Amount = amount
		}
		if cmd.Flags().Changed("category") {
			if flagEditCategory == "" {
				return fmt.Errorf("a category is required")
			}
			tr.Category = flagEditCategory
		}
		if cmd.Flags().Changed("date") {
			date, err := checkDate(flagEditDate)
			if err != nil {
				return err
			}
			tr.Date = date
		}
		if cmd.Flags().Changed("note") {
			tr.Note = flagEditNote
		}

		fmt.Printf("  Updated %s\n", shortID(tr.ID))
		return nil
	})
}
