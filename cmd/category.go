package cmd

import (
	"fmt"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Manage income/expense categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add (income|expense) LABEL",
	Short: "Add a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryAdd,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete (income|expense) LABEL",
	Short: "Delete a category",
	Long:  "Delete a category by its label and type. Existing transactions keep\ntheir category string; only the selectable label goes away.",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryDelete,
}

func init() {
	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd, categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryList(_ *cobra.Command, _ []string) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	rows := make([][]string, 0, len(snap.Khata.Categories))
	for _, c := range snap.Khata.Categories {
		rows = append(rows, []string{c.Label, string(c.Type)})
	}
	fmt.Print(cli.RenderTable([]string{"Label", "Type"}, rows))
	return nil
}

func runCategoryAdd(_ *cobra.Command, args []string) error {
	typ, err := parseEntryType(args[0])
	if err != nil {
		return err
	}
	label := args[1]
	if label == "" {
		return fmt.Errorf("category label must not be empty")
	}

	return mutate(func(snap *model.Snapshot) error {
		for _, c := range snap.Khata.Categories {
			if c.Label == label && c.Type == typ {
				return fmt.Errorf("category %q (%s) already exists", label, typ)
			}
		}
		snap.Khata.Categories = append(snap.Khata.Categories, model.Category{
			ID:    model.NewID(),
			Label: label,
			Type:  typ,
		})
		fmt.Printf("  Added %s category %q\n", args[0], label)
		return nil
	})
}

func runCategoryDelete(_ *cobra.Command, args []string) error {
	typ, err := parseEntryType(args[0])
	if err != nil {
		return err
	}

	return mutate(func(snap *model.Snapshot) error {
		for i, c := range snap.Khata.Categories {
			if c.Label == args[1] && c.Type == typ {
				snap.Khata.Categories = append(snap.Khata.Categories[:i], snap.Khata.Categories[i+1:]...)
				fmt.Printf("  Deleted %s category %q\n", args[0], args[1])
				return nil
			}
		}
		return fmt.Errorf("no %s category %q", args[0], args[1])
	})
}
