package cmd

import (
	"fmt"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var flagNoteMonth string

var noteCmd = &cobra.Command{
	Use:   "note [TEXT...]",
	Short: "Read or write the note for a month",
	Long: `Each calendar month has one free-text note. Without arguments the
month's note is printed; with arguments it is replaced. An empty string
clears it.`,
	RunE: runNote,
}

func init() {
	noteCmd.Flags().StringVarP(&flagNoteMonth, "month", "m", "", "Month YYYY-MM (default: current)")
	rootCmd.AddCommand(noteCmd)
}

func runNote(_ *cobra.Command, args []string) error {
	month, err := checkMonth(flagNoteMonth)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		st, snap, err := loadState()
		if err != nil {
			return err
		}
		defer st.Close()

		for _, n := range snap.Khata.Notes {
			if n.Month == month {
				fmt.Println(cli.RenderTitle(cli.FormatMonth(month)))
				fmt.Println("  " + n.Text)
				return nil
			}
		}
		fmt.Printf("  No note for %s yet.\n", cli.FormatMonth(month))
		return nil
	}

	text := strings.Join(args, " ")
	return mutate(func(snap *model.Snapshot) error {
		for i, n := range snap.Khata.Notes {
			if n.Month == month {
				if text == "" {
					snap.Khata.Notes = append(snap.Khata.Notes[:i], snap.Khata.Notes[i+1:]...)
					fmt.Printf("  Cleared note for %s\n", cli.FormatMonth(month))
					return nil
				}
				snap.Khata.Notes[i].Text = text
				fmt.Printf("  Updated note for %s\n", cli.FormatMonth(month))
				return nil
			}
		}
		if text == "" {
			return nil
		}
		snap.Khata.Notes = append(snap.Khata.Notes, model.MonthlyNote{
			ID:    model.NewID(),
			Month: month,
			Text:  text,
		})
		fmt.Printf("  Saved note for %s\n", cli.FormatMonth(month))
		return nil
	})
}
