// Package theme defines the color palettes for the khata TUI.
package theme

import (
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (active tab, selection)
	AccentBright lipgloss.Color // Brighter accent for emphasis
	Green        lipgloss.Color // Income
	Red          lipgloss.Color // Expense
	Yellow       lipgloss.Color // Warnings (due soon)
}

// Light is the default light palette, before the accent is applied.
var Light = Theme{
	Name:         "light",
	Background:   lipgloss.Color("#F9FAFB"),
	Surface:      lipgloss.Color("#FFFFFF"),
	Border:       lipgloss.Color("#D1D5DB"),
	TextDim:      lipgloss.Color("#9CA3AF"),
	TextMuted:    lipgloss.Color("#6B7280"),
	TextPrimary:  lipgloss.Color("#111827"),
	Green:        lipgloss.Color("#059669"),
	Red:          lipgloss.Color("#DC2626"),
	Yellow:       lipgloss.Color("#D97706"),
}

// Dark is the dark palette, before the accent is applied.
var Dark = Theme{
	Name:         "dark",
	Background:   lipgloss.Color("#111827"),
	Surface:      lipgloss.Color("#1F2937"),
	Border:       lipgloss.Color("#374151"),
	TextDim:      lipgloss.Color("#4B5563"),
	TextMuted:    lipgloss.Color("#9CA3AF"),
	TextPrimary:  lipgloss.Color("#F9FAFB"),
	Green:        lipgloss.Color("#10B981"),
	Red:          lipgloss.Color("#EF4444"),
	Yellow:       lipgloss.Color("#F59E0B"),
}

// accent holds the base and bright shades of an accent preset.
type accent struct {
	base   lipgloss.Color
	bright lipgloss.Color
}

var accents = map[model.ThemeColor]accent{
	model.ThemeIndigo:  {lipgloss.Color("#6366F1"), lipgloss.Color("#818CF8")},
	model.ThemeEmerald: {lipgloss.Color("#10B981"), lipgloss.Color("#34D399")},
	model.ThemeRose:    {lipgloss.Color("#F43F5E"), lipgloss.Color("#FB7185")},
	model.ThemeAmber:   {lipgloss.Color("#F59E0B"), lipgloss.Color("#FBBF24")},
}

// Active is the theme currently in effect.
var Active = apply(Light, accents[model.ThemeIndigo])

// FromSettings builds a theme from the user's saved appearance settings.
func FromSettings(s model.Settings) Theme {
	base := Light
	if s.Theme == "dark" {
		base = Dark
	}

	ac, ok := accents[s.ThemeColor]
	if !ok {
		if s.ThemeColor == model.ThemeCustom && s.CustomHex != "" {
			ac = accent{lipgloss.Color(s.CustomHex), lipgloss.Color(s.CustomHex)}
		} else {
			ac = accents[model.ThemeIndigo]
		}
	}
	return apply(base, ac)
}

// SetActive switches the active theme to match the given settings.
func SetActive(s model.Settings) {
	Active = FromSettings(s)
}

func apply(base Theme, ac accent) Theme {
	base.Accent = ac.base
	base.AccentBright = ac.bright
	base.BorderAccent = ac.base
	return base
}
