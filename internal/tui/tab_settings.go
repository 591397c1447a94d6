package tui

import (
	"fmt"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/components"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const settingsFieldCount = 4

type settingsState struct {
	cursor int
}

func (a App) updateSettings(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.setting.cursor < settingsFieldCount-1 {
			a.setting.cursor++
		}
	case "k", "up":
		if a.setting.cursor > 0 {
			a.setting.cursor--
		}
	case "enter", " ":
		a.cycleSetting(a.setting.cursor)
	}
	return a, nil
}

// cycleSetting advances the selected field to its next value and persists.
func (a *App) cycleSetting(field int) {
	s := &a.snap.Settings
	switch field {
	case 0: // language
		if s.Language == "bn" {
			s.Language = "en"
		} else {
			s.Language = "bn"
		}
	case 1: // theme
		if s.Theme == "light" {
			s.Theme = "dark"
		} else {
			s.Theme = "light"
		}
	case 2: // accent
		order := []model.ThemeColor{model.ThemeIndigo, model.ThemeEmerald, model.ThemeRose, model.ThemeAmber}
		next := order[0]
		for i, c := range order {
			if c == s.ThemeColor {
				next = order[(i+1)%len(order)]
				break
			}
		}
		s.ThemeColor = next
	case 3: // reminder
		s.ReminderEnabled = !s.ReminderEnabled
	}
	theme.SetActive(*s)
	a.persist()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	s := a.snap.Settings

	accent := string(s.ThemeColor)
	if s.ThemeColor == model.ThemeCustom {
		accent = "custom " + s.CustomHex
	}
	reminder := "off"
	if s.ReminderEnabled {
		reminder = "on at " + s.ReminderTime
	}

	fields := []struct{ label, value string }{
		{"Language", s.Language},
		{"Theme", s.Theme},
		{"Accent", accent},
		{"Daily reminder", reminder},
	}

	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, f := range fields {
		marker := "  "
		if i == a.setting.cursor {
			marker = selStyle.Render("▶ ")
		}
		fmt.Fprintf(&b, "%s%s %s\n",
			marker,
			labelStyle.Render(fmt.Sprintf("%-16s", f.label)),
			valueStyle.Render(f.value))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("Enter cycles the selected value. Reminder time changes via `khata settings set`."))

	return components.ContentCard("Settings", strings.TrimRight(b.String(), "\n"), cw)
}
