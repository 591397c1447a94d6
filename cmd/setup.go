package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/config"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	fmt.Println()
	fmt.Println("  Welcome to Amar Khata!")
	fmt.Println()

	// 1. Khata name
	fmt.Println("  1. Name of your khata (ledger)")
	fmt.Print("     > ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)

	// 2. Language
	fmt.Println("  2. Language")
	fmt.Println("     (1) Bangla [default]")
	fmt.Println("     (2) English")
	fmt.Print("     > ")
	langChoice, _ := reader.ReadString('\n')
	language := "bn"
	if strings.TrimSpace(langChoice) == "2" {
		language = "en"
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Theme")
	fmt.Println("     (1) Light [default]")
	fmt.Println("     (2) Dark")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeName := "light"
	if strings.TrimSpace(themeChoice) == "2" {
		themeName = "dark"
	}
	fmt.Println()

	// 4. Accent color
	fmt.Println("  4. Accent color")
	fmt.Println("     (1) Indigo [default]")
	fmt.Println("     (2) Emerald")
	fmt.Println("     (3) Rose")
	fmt.Println("     (4) Amber")
	fmt.Print("     > ")
	accentChoice, _ := reader.ReadString('\n')
	accent := model.ThemeIndigo
	switch strings.TrimSpace(accentChoice) {
	case "2":
		accent = model.ThemeEmerald
	case "3":
		accent = model.ThemeRose
	case "4":
		accent = model.ThemeAmber
	}

	cfg.General.Language = language
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if err := mutate(func(snap *model.Snapshot) error {
		if name != "" {
			snap.Khata.Name = name
		}
		snap.Settings.Language = language
		snap.Settings.Theme = themeName
		snap.Settings.ThemeColor = accent
		return nil
	}); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `khata setup` anytime to reconfigure, or `khata tui` to start.")
	fmt.Println()

	return nil
}
