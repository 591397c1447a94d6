package cmd

import (
	"fmt"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a transaction or loan",
	Long:  "Delete a transaction or loan by id (or unambiguous id prefix).\nDeleting a loan removes its payment history with it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	return mutate(func(snap *model.Snapshot) error {
		if idx, ok := findTransaction(snap.Khata, args[0]); ok {
			id := snap.Khata.Transactions[idx].ID
			snap.Khata.Transactions = append(
				snap.Khata.Transactions[:idx], snap.Khata.Transactions[idx+1:]...)
			fmt.Printf("  Deleted transaction %s\n", shortID(id))
			return nil
		}
		if idx, ok := findLoan(snap.Khata, args[0]); ok {
			l := snap.Khata.Loans[idx]
			snap.Khata.Loans = append(snap.Khata.Loans[:idx], snap.Khata.Loans[idx+1:]...)
			fmt.Printf("  Deleted loan %s (%s, %d payments)\n", shortID(l.ID), l.Person, len(l.Payments))
			return nil
		}
		return fmt.Errorf("nothing matches %q", args[0])
	})
}
