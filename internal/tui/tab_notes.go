package tui

import (
	"strings"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/components"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type notesState struct {
	editing bool
	input   textarea.Model
	month   string
}

func newNotesState() notesState {
	ta := textarea.New()
	ta.Placeholder = "Write a note for this month..."
	ta.CharLimit = 2000
	ta.SetHeight(8)
	return notesState{input: ta, month: cli.ThisMonth()}
}

func (a App) updateNotes(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "[":
		a.notes.month = shiftMonth(a.notes.month, -1)
	case "]":
		a.notes.month = shiftMonth(a.notes.month, 1)
	case "e", "enter":
		a.notes.editing = true
		a.notes.input.SetValue(a.monthNote(a.notes.month))
		return a, a.notes.input.Focus()
	}
	return a, nil
}

// updateNoteEditor handles messages while the note textarea is focused.
// Esc saves and closes; an empty note clears the month.
func (a App) updateNoteEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.notes.editing = false
		a.notes.input.Blur()
		a.setMonthNote(a.notes.month, strings.TrimSpace(a.notes.input.Value()))
		return a, nil
	}

	var cmd tea.Cmd
	a.notes.input, cmd = a.notes.input.Update(msg)
	return a, cmd
}

func (a *App) setMonthNote(month, text string) {
	notes := a.snap.Khata.Notes
	for i, n := range notes {
		if n.Month == month {
			if text == "" {
				a.snap.Khata.Notes = append(notes[:i], notes[i+1:]...)
			} else {
				a.snap.Khata.Notes[i].Text = text
			}
			a.persist()
			return
		}
	}
	if text == "" {
		return
	}
	a.snap.Khata.Notes = append(notes, model.MonthlyNote{
		ID:    model.NewID(),
		Month: month,
		Text:  text,
	})
	a.persist()
}

func (a App) renderNotesTab(cw int) string {
	t := theme.Active
	title := cli.FormatMonth(a.notes.month)

	if a.notes.editing {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Render(" Esc saves and closes")
		return components.ContentCard(title, a.notes.input.View(), cw) + "\n" + hint
	}

	body := a.monthNote(a.notes.month)
	if body == "" {
		body = lipgloss.NewStyle().Foreground(t.TextDim).Render("No note for this month. Press [e] to write one.")
	}
	return components.ContentCard(title, body, cw)
}

func shiftMonth(month string, delta int) string {
	m, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return m.AddDate(0, delta, 0).Format("2006-01")
}
