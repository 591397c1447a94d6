package tui

import (
	"fmt"
	"strings"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/cli"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/components"
	"github.com/mhsvai/amar-khata-by-mhshahin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type histFilter int

const (
	histAll histFilter = iota
	histIncome
	histExpense
)

func (f histFilter) label() string {
	switch f {
	case histIncome:
		return "income"
	case histExpense:
		return "expense"
	}
	return "all"
}

type histState struct {
	cursor int
	offset int
	filter histFilter
}

func (a App) visibleTransactions() []model.Transaction {
	if a.hist.filter == histAll {
		return a.snap.Khata.Transactions
	}
	want := model.TypeIncome
	if a.hist.filter == histExpense {
		want = model.TypeExpense
	}
	var out []model.Transaction
	for _, tr := range a.snap.Khata.Transactions {
		if tr.Type == want {
			out = append(out, tr)
		}
	}
	return out
}

func (a App) updateHistory(key string) (tea.Model, tea.Cmd) {
	visible := a.visibleTransactions()

	switch key {
	case "j", "down":
		if a.hist.cursor < len(visible)-1 {
			a.hist.cursor++
		}
	case "k", "up":
		if a.hist.cursor > 0 {
			a.hist.cursor--
		}
	case "g":
		a.hist.cursor = 0
		a.hist.offset = 0
	case "G":
		a.hist.cursor = len(visible) - 1
		if a.hist.cursor < 0 {
			a.hist.cursor = 0
		}
	case "f":
		a.hist.filter = (a.hist.filter + 1) % 3
		a.hist.cursor = 0
		a.hist.offset = 0
	case "a":
		return a.openEntryForm()
	case "D":
		if a.hist.cursor < len(visible) {
			a.deleteTransaction(visible[a.hist.cursor].ID)
			if a.hist.cursor > 0 {
				a.hist.cursor--
			}
		}
	}
	return a, nil
}

func (a *App) deleteTransaction(id string) {
	txs := a.snap.Khata.Transactions
	for i, tr := range txs {
		if tr.ID == id {
			a.snap.Khata.Transactions = append(txs[:i], txs[i+1:]...)
			a.persist()
			return
		}
	}
}

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active
	visible := a.visibleTransactions()

	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	header := titleStyle.Render(fmt.Sprintf(" Entries (%s) — %d", a.hist.filter.label(), len(visible)))

	if len(visible) == 0 {
		return header + "\n\n " + lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing here yet. Press [a] to add an entry.")
	}

	// Window the list to the available rows, keeping the cursor visible.
	rows := contentH - 2
	if rows < 1 {
		rows = 1
	}
	offset := a.hist.offset
	if a.hist.cursor < offset {
		offset = a.hist.cursor
	}
	if a.hist.cursor >= offset+rows {
		offset = a.hist.cursor - rows + 1
	}

	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	catStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	end := offset + rows
	if end > len(visible) {
		end = len(visible)
	}
	for i := offset; i < end; i++ {
		tr := visible[i]
		marker := "  "
		if i == a.hist.cursor {
			marker = selStyle.Render("▶ ")
		}
		amount := incomeStyle.Render("+" + cli.FormatAmount(tr.Amount))
		if tr.Type == model.TypeExpense {
			amount = expenseStyle.Render("-" + cli.FormatAmount(tr.Amount))
		}
		line := fmt.Sprintf("%s%s  %-14s %12s  %s",
			marker,
			dateStyle.Render(tr.Date),
			catStyle.Render(truncStr(tr.Category, 14)),
			amount,
			truncStr(tr.Note, components.CardInnerWidth(cw)-46))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
