package cmd

import (
	"fmt"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	flagSummaryMonth string
	flagSummaryYear  string
	flagSummaryFrom  string
	flagSummaryTo    string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly summary with closing balances",
	Long: `Per-month income, expense and loan movement with a running closing
balance. Defaults to the current month; --year shows a whole year and
--from/--to an inclusive month range.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagSummaryMonth, "month", "m", "", "Single month YYYY-MM (default: current)")
	summaryCmd.Flags().StringVarP(&flagSummaryYear, "year", "y", "", "Whole year YYYY")
	summaryCmd.Flags().StringVar(&flagSummaryFrom, "from", "", "Range start month YYYY-MM")
	summaryCmd.Flags().StringVar(&flagSummaryTo, "to", "", "Range end month YYYY-MM")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	records := ledger.BucketByMonth(snap.Khata.Transactions, snap.Khata.Loans)

	switch {
	case flagSummaryYear != "":
		records = ledger.MonthsOfYear(records, flagSummaryYear)
	case flagSummaryFrom != "" || flagSummaryTo != "":
		from, to := flagSummaryFrom, flagSummaryTo
		if from != "" {
			if from, err = checkMonth(from); err != nil {
				return err
			}
		}
		if to != "" {
			if to, err = checkMonth(to); err != nil {
				return err
			}
		}
		records = ledger.MonthsBetween(records, from, to)
	default:
		month, err := checkMonth(flagSummaryMonth)
		if err != nil {
			return err
		}
		records = ledger.MonthsBetween(records, month, month)
	}

	if len(records) == 0 {
		fmt.Println("  Nothing recorded in that period.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			cli.FormatMonth(r.Month),
			cli.Income(cli.FormatAmount(r.Income)),
			cli.Expense(cli.FormatAmount(r.Expense)),
			cli.FormatAmount(r.LoanTaken),
			cli.FormatAmount(r.LoanGiven),
			cli.FormatAmount(r.FinanceBalance),
			cli.FormatAmount(r.ClosingBalance),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("Monthly Summary"))
	fmt.Print(cli.RenderTable(
		[]string{"Month", "Income", "Expense", "Loan Taken", "Loan Given", "Net", "Closing"},
		rows,
	))

	totals := ledger.RangeTotals(records)
	fmt.Printf("  Period totals: income %s, expense %s, loan taken %s, loan given %s\n",
		cli.FormatAmount(totals.Income), cli.FormatAmount(totals.Expense),
		cli.FormatAmount(totals.LoanTaken), cli.FormatAmount(totals.LoanGiven))
	return nil
}
