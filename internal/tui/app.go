// Package tui provides the interactive Bubble Tea dashboard for the khata.
package tui

import (
	"fmt"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/components"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SaveFunc persists the snapshot after an in-TUI mutation.
type SaveFunc func(model.Snapshot) error

// App is the root Bubble Tea model.
type App struct {
	snap  model.Snapshot
	save  SaveFunc
	today string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	notice    string

	// Per-tab state
	hist    histState
	loans   loanState
	notes   notesState
	setting settingsState
	reports reportState

	// Modal entry forms (huh). Values live behind pointers so the form's
	// bindings survive Bubble Tea copying the model between updates.
	entryForm *huh.Form
	entryVals *entryValues
	loanForm  *huh.Form
	loanVals  *loanValues
	payForm   *huh.Form
	payVals   *payValues
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the TUI model over a loaded snapshot.
func NewApp(snap model.Snapshot, save SaveFunc) App {
	return App{
		snap:  snap,
		save:  save,
		today: cli.Today(),
		notes: newNotesState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// persist saves the snapshot, surfacing failures in the status line
// instead of crashing the dashboard.
func (a *App) persist() {
	if err := a.save(a.snap); err != nil {
		a.notice = "save failed: " + err.Error()
		return
	}
	a.notice = ""
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.notes.input.SetWidth(components.CardInnerWidth(a.contentWidth()))
		if a.entryForm != nil {
			a.entryForm = a.entryForm.WithWidth(msg.Width)
		}
		if a.loanForm != nil {
			a.loanForm = a.loanForm.WithWidth(msg.Width)
		}
		if a.payForm != nil {
			a.payForm = a.payForm.WithWidth(msg.Width)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Active modal form intercepts all keys
		if a.entryForm != nil {
			return a.updateEntryForm(msg)
		}
		if a.loanForm != nil {
			return a.updateLoanForm(msg)
		}
		if a.payForm != nil {
			return a.updatePayForm(msg)
		}

		// Note editing intercepts all keys
		if a.notes.editing {
			return a.updateNoteEditor(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		// Per-tab keybindings
		switch a.activeTab {
		case tabHistory:
			return a.updateHistory(key)
		case tabLoans:
			return a.updateLoans(key)
		case tabReports:
			return a.updateReports(key)
		case tabNotes:
			return a.updateNotes(key)
		case tabSettings:
			return a.updateSettings(key)
		}
		return a, nil
	}

	// Forward unhandled messages to whichever form is active (cursor blinks)
	if a.entryForm != nil {
		return a.updateEntryForm(msg)
	}
	if a.loanForm != nil {
		return a.updateLoanForm(msg)
	}
	if a.payForm != nil {
		return a.updatePayForm(msg)
	}
	if a.notes.editing {
		return a.updateNoteEditor(msg)
	}
	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabDashboard = iota
	tabHistory
	tabLoans
	tabSummary
	tabReports
	tabNotes
	tabSettings
)

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols), need at least %d.\n", a.width, minTerminalWidth)
	}

	if a.entryForm != nil {
		return a.entryForm.View()
	}
	if a.loanForm != nil {
		return a.loanForm.View()
	}
	if a.payForm != nil {
		return a.payForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}

	header := components.RenderTabBar(a.activeTab, a.width)
	statusBar := components.RenderStatusBar(a.width, a.tabHint(), a.notice)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := a.height - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	cw := a.contentWidth()
	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabLoans:
		content = a.renderLoansTab(cw, contentH)
	case tabSummary:
		content = a.renderSummaryTab(cw)
	case tabReports:
		content = a.renderReportsTab(cw)
	case tabNotes:
		content = a.renderNotesTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) tabHint() string {
	switch a.activeTab {
	case tabHistory:
		return "[a]dd  [f]ilter  [j/k]move  [D]elete"
	case tabLoans:
		return "[a]dd  [p]ay  [S]ettle  [t]oggle settled  [j/k]move"
	case tabReports:
		return "[w]eek  [m]onth"
	case tabNotes:
		return "[e]dit  [[/]]month"
	case tabSettings:
		return "[j/k]move  [enter]change"
	}
	return ""
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"d h l s r n x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move in lists"},
		{"a", "Add entry / loan"},
		{"p", "Record a loan payment"},
		{"S", "Settle selected loan"},
		{"D", "Delete selected entry"},
		{"e", "Edit the month note"},
		{"Enter", "Confirm / Change"},
		{"Esc", "Cancel"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
