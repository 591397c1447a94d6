package cmd

import (
	"fmt"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/ledger"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagReportRange    string
	flagReportFrom     string
	flagReportTo       string
	flagReportCategory string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Income/expense charts and category breakdown",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportRange, "range", "r", "month", "week, month or custom")
	reportCmd.Flags().StringVar(&flagReportFrom, "from", "", "Custom range start YYYY-MM-DD")
	reportCmd.Flags().StringVar(&flagReportTo, "to", "", "Custom range end YYYY-MM-DD")
	reportCmd.Flags().StringVarP(&flagReportCategory, "category", "c", "", "Restrict to one category")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	today := cli.Today()
	var r ledger.Range
	daily := false
	switch flagReportRange {
	case "week":
		r = ledger.Range{Kind: ledger.RangeWeek}
		daily = true
	case "month":
		r = ledger.Range{Kind: ledger.RangeMonth}
	case "custom":
		from, err := checkDate(flagReportFrom)
		if err != nil {
			return err
		}
		to, err := checkDate(flagReportTo)
		if err != nil {
			return err
		}
		r = ledger.Range{Kind: ledger.RangeCustom, Start: from, End: to}
		daily = ledger.DaySpan(from, to) < 30
	default:
		return fmt.Errorf("unknown range %q, want week, month or custom", flagReportRange)
	}

	filtered := ledger.FilterByRange(snap.Khata.Transactions, r, today, flagReportCategory)
	if len(filtered) == 0 {
		fmt.Println("  No entries in the selected range.")
		return nil
	}

	var income, expense float64
	for _, tr := range filtered {
		if tr.Type == model.TypeIncome {
			income += tr.Amount
		} else {
			expense += tr.Amount
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("Report"))
	fmt.Println()
	fmt.Printf("  Income %s   Expense %s   Balance %s\n\n",
		cli.Income(cli.FormatAmount(income)),
		cli.Expense(cli.FormatAmount(expense)),
		cli.FormatAmount(income-expense))

	points := ledger.BucketForChart(filtered, daily)
	var max float64
	for _, p := range points {
		if p.Income > max {
			max = p.Income
		}
		if p.Expense > max {
			max = p.Expense
		}
	}
	for _, p := range points {
		key := p.Key
		if daily {
			key = cli.FormatDate(p.Key)
		} else {
			key = cli.FormatMonth(p.Key)
		}
		fmt.Printf("  %-14s %s\n", cli.Truncate(key, 14), cli.RenderBarPair(p.Income, p.Expense, max, 16))
	}

	breakdown := ledger.CategoryBreakdown(filtered)
	if len(breakdown) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderTitle("Expenses by category"))
		maxCat := breakdown[0].Amount
		for _, c := range breakdown {
			fmt.Printf("  %-16s %s %s\n",
				cli.Truncate(c.Category, 16),
				cli.RenderShare(c.Amount, maxCat, 14),
				cli.FormatAmount(c.Amount))
		}
	}
	return nil
}
