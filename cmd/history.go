package cmd

import (
	"fmt"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/loan"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagHistoryFilter string
	flagHistoryLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded entries, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&flagHistoryFilter, "filter", "f", "all", "all, income, expense, loans or settled")
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 25, "Maximum rows to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	var rows [][]string
	add := func(row []string) {
		if flagHistoryLimit <= 0 || len(rows) < flagHistoryLimit {
			rows = append(rows, row)
		}
	}

	switch flagHistoryFilter {
	case "all", "income", "expense":
		for _, tr := range snap.Khata.Transactions {
			if flagHistoryFilter == "income" && tr.Type != model.TypeIncome {
				continue
			}
			if flagHistoryFilter == "expense" && tr.Type != model.TypeExpense {
				continue
			}
			amount := cli.FormatAmount(tr.Amount)
			if tr.Type == model.TypeIncome {
				amount = cli.Income(amount)
			} else {
				amount = cli.Expense(amount)
			}
			add([]string{
				shortID(tr.ID), cli.FormatDate(tr.Date), string(tr.Type),
				cli.Truncate(tr.Category, 16), amount, cli.Truncate(tr.Note, 24),
			})
		}
	case "loans", "settled":
		for _, l := range snap.Khata.Loans {
			settled := l.Status != model.StatusPending
			if (flagHistoryFilter == "settled") != settled {
				continue
			}
			add([]string{
				shortID(l.ID), cli.FormatDate(l.Date), string(l.Type),
				cli.Truncate(l.Person, 16), cli.FormatAmount(loan.Outstanding(l)),
				cli.Truncate(l.Reason, 24),
			})
		}
	default:
		return fmt.Errorf("unknown filter %q", flagHistoryFilter)
	}

	if len(rows) == 0 {
		fmt.Println("  Nothing recorded yet.")
		return nil
	}

	header := []string{"ID", "Date", "Type", "Category", "Amount", "Note"}
	if flagHistoryFilter == "loans" || flagHistoryFilter == "settled" {
		header = []string{"ID", "Date", "Type", "Person", "Remaining", "Reason"}
	}
	fmt.Print(cli.RenderTable(header, rows))
	return nil
}
