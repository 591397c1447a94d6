// Package cmd implements the khata CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/config"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/loan"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "khata",
	Short: "Amar Khata — personal income, expense and loan ledger",
	Long:  "Track income, expenses and loans in a local offline khata.\nAll data stays on this device; use export/import for backups.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the khata database (default: XDG data dir)")
}

// openStore opens the snapshot store, honoring --data-dir over the config
// file over the XDG default.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}

	dbPath := config.DBPath(cfg)
	if flagDataDir != "" {
		dbPath = filepath.Join(flagDataDir, "khata.db")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening khata store: %w", err)
	}
	return st, nil
}

// loadState opens the store and loads the current snapshot. A fresh snapshot
// picks up the configured default language.
func loadState() (*store.Store, model.Snapshot, error) {
	st, err := openStore()
	if err != nil {
		return nil, model.Snapshot{}, err
	}

	snap, err := st.Load()
	if err != nil {
		// Unreadable store: fall back to the in-memory default so reads
		// still work; the warning is the only trace.
		fmt.Fprintf(os.Stderr, "  %v\n", err)
	}

	if raw, _ := st.Raw(); raw == nil {
		if cfg, cfgErr := config.Load(); cfgErr == nil && cfg.General.Language != "" {
			snap.Settings.Language = cfg.General.Language
		}
	}

	return st, snap, nil
}

// mutate runs one whole-snapshot transform and persists the result. The save
// is best-effort: a failed write warns on stderr but does not fail the
// command, matching the fire-and-forget persistence contract.
func mutate(fn func(*model.Snapshot) error) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := fn(&snap); err != nil {
		return err
	}

	if err := st.Save(snap); err != nil {
		fmt.Fprintf(os.Stderr, "  warning: changes not persisted: %v\n", err)
	}
	return nil
}

// runDashboard prints the totals overview; it is what a bare `khata` shows.
func runDashboard(_ *cobra.Command, _ []string) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	printDashboard(snap)
	return nil
}

func printDashboard(snap model.Snapshot) {
	totals := computeTotalsNow(snap)

	fmt.Println()
	fmt.Println(cli.RenderTitle(snap.Khata.Name))
	fmt.Println()
	fmt.Printf("  Balance         %s\n", cli.FormatAmount(totals.Balance))
	fmt.Printf("  Income          %s\n", cli.Income(cli.FormatAmount(totals.Income)))
	fmt.Printf("  Expense         %s\n", cli.Expense(cli.FormatAmount(totals.Expense)))
	fmt.Printf("  Loan taken      %s\n", cli.FormatAmount(totals.LoanTaken))
	fmt.Printf("  Loan given      %s\n", cli.FormatAmount(totals.LoanGiven))
	fmt.Println()
	fmt.Printf("  Today           %s   %s\n",
		cli.Income(cli.FormatSigned(totals.TodayIncome)),
		cli.Expense(cli.FormatSigned(-totals.TodayExpense)))

	if due := loansDueSoon(snap.Khata.Loans, 7); len(due) > 0 {
		fmt.Println()
		for _, l := range due {
			if l.Type == model.LoanTaken {
				fmt.Printf("  Due %s: you owe %s %s\n",
					cli.FormatDate(l.DueDate), cli.Truncate(l.Person, 20),
					cli.FormatAmount(loan.Outstanding(l)))
			} else {
				fmt.Printf("  Due %s: %s owes you %s\n",
					cli.FormatDate(l.DueDate), cli.Truncate(l.Person, 20),
					cli.FormatAmount(loan.Outstanding(l)))
			}
		}
	}
	fmt.Println()
	fmt.Println(cli.Muted("  khata tui opens the interactive dashboard; khata --help lists commands."))
}
