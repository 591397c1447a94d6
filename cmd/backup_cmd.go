package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/backup"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write the khata to a backup file",
	Long:  "Export the full state (settings + khata) as a JSON backup file.\nWithout an argument a date-stamped filename is used.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Merge a backup file into this khata",
	Long: `Import merges: records from the backup that this khata does not have
yet are appended, nothing existing is overwritten or removed, and the
local settings stay as they are. A malformed backup is rejected whole,
leaving the khata untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := st.Raw()
	if err != nil {
		return err
	}
	if data == nil {
		// Nothing persisted yet: export the live (default) snapshot.
		if data, err = backup.Encode(snap); err != nil {
			return err
		}
	}

	name := backup.ExportName(time.Now())
	if len(args) == 1 {
		name = args[0]
	}

	if err := os.WriteFile(name, data, 0o600); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	fmt.Printf("  Exported to %s\n", name)
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}

	// Validate fully before touching live state: a bad file must leave the
	// current khata byte-identical.
	imported, err := backup.Decode(data)
	if err != nil {
		return err
	}

	st, current, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	before := current.Khata
	merged := backup.Merge(current.Khata, imported.Khata)
	current.Khata = merged // settings deliberately untouched

	if err := st.Save(current); err != nil {
		return fmt.Errorf("persisting merged khata: %w", err)
	}

	fmt.Printf("  Imported %s: +%d transactions, +%d loans, +%d categories, +%d notes\n",
		args[0],
		len(merged.Transactions)-len(before.Transactions),
		len(merged.Loans)-len(before.Loans),
		len(merged.Categories)-len(before.Categories),
		len(merged.Notes)-len(before.Notes))
	return nil
}
