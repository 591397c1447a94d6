package cmd

import (
	"fmt"
	"regexp"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show current settings",
	RunE:  runSettings,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Keys: language (bn|en), theme (light|dark),
accent (indigo|emerald|rose|amber|custom), hex (#RRGGBB, used with
accent=custom), reminder (on|off), reminder-time (HH:MM).`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(_ *cobra.Command, _ []string) error {
	st, snap, err := loadState()
	if err != nil {
		return err
	}
	defer st.Close()

	s := snap.Settings
	fmt.Println("  [Settings]")
	fmt.Printf("    Language:  %s\n", s.Language)
	fmt.Printf("    Theme:     %s\n", s.Theme)
	if s.ThemeColor == model.ThemeCustom {
		fmt.Printf("    Accent:    custom (%s)\n", s.CustomHex)
	} else {
		fmt.Printf("    Accent:    %s\n", s.ThemeColor)
	}
	if s.ReminderEnabled {
		fmt.Printf("    Reminder:  on at %s\n", s.ReminderTime)
	} else {
		fmt.Println("    Reminder:  off")
	}
	return nil
}

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func runSettingsSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	return mutate(func(snap *model.Snapshot) error {
		s := &snap.Settings
		switch key {
		case "language":
			if value != "bn" && value != "en" {
				return fmt.Errorf("language must be bn or en")
			}
			s.Language = value
		case "theme":
			if value != "light" && value != "dark" {
				return fmt.Errorf("theme must be light or dark")
			}
			s.Theme = value
		case "accent":
			switch model.ThemeColor(value) {
			case model.ThemeIndigo, model.ThemeEmerald, model.ThemeRose, model.ThemeAmber, model.ThemeCustom:
				s.ThemeColor = model.ThemeColor(value)
			default:
				return fmt.Errorf("accent must be indigo, emerald, rose, amber or custom")
			}
		case "hex":
			if !hexPattern.MatchString(value) {
				return fmt.Errorf("hex must look like #RRGGBB")
			}
			s.CustomHex = value
			s.ThemeColor = model.ThemeCustom
		case "reminder":
			switch value {
			case "on":
				s.ReminderEnabled = true
			case "off":
				s.ReminderEnabled = false
			default:
				return fmt.Errorf("reminder must be on or off")
			}
		case "reminder-time":
			if _, err := time.Parse("15:04", value); err != nil {
				return fmt.Errorf("reminder-time must be HH:MM")
			}
			s.ReminderTime = value
		default:
			return fmt.Errorf("unknown setting %q", key)
		}
		fmt.Printf("  %s = %s\n", key, value)
		return nil
	})
}
