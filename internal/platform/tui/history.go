package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoc/internal/storage"
)

// History layout constants
const (
	maxHistoryRows = 50 // Rounds loaded into the table
	historyChrome  = 8  // Rows used by title, tally, borders and help
)

// historyView lists the rounds finished in this session.
type historyView struct {
	table  table.Model
	rounds []storage.RoundRecord
	tally  storage.Tally
	avg    float64
	err    error
	width  int
	height int
}

func newHistoryView(width, height int) historyView {
	h := historyView{width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table sized to the view.
func (h *historyView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 8},
		{Title: "Turns", Width: 6},
		{Title: "Board", Width: 13},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(h.height-historyChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes rounds and tally from the store.
func (h *historyView) load(store *storage.Store) {
	h.rounds, h.tally, h.avg, h.err = nil, storage.Tally{}, 0, nil
	if store == nil {
		h.updateTableRows()
		return
	}

	rounds, err := store.RecentRounds(maxHistoryRows)
	if err != nil {
		h.err = err
		h.updateTableRows()
		return
	}
	h.rounds = rounds

	if h.tally, err = store.Tally(); err != nil {
		h.err = err
	}
	if h.avg, err = store.AverageTurns(); err != nil {
		h.err = err
	}
	h.updateTableRows()
}

// resize rebuilds the table for a new terminal size.
func (h *historyView) resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (h *historyView) updateTableRows() {
	total := len(h.rounds)
	rows := make([]table.Row, total)
	for i, r := range h.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", total-i),
			outcomeLabel(r.Outcome),
			fmt.Sprintf("%d", r.Turns),
			strings.ReplaceAll(r.Board, "\n", "/"),
			fmt.Sprintf("%.1fs", r.Duration().Seconds()),
			r.EndedAt.Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h historyView) update(msg tea.Msg) (historyView, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// view renders the tally line and the table.
func (h historyView) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("ROUND HISTORY", h.width)))
	b.WriteString("\n\n")

	tallyLine := fmt.Sprintf("X %d   O %d   draws %d   avg %.1f turns",
		h.tally.XWins, h.tally.OWins, h.tally.Draws, h.avg)
	b.WriteString(centerText(tallyLine, h.width))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(h.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (h historyView) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	if h.err != nil {
		return emptyStyle.Render("History unavailable: " + h.err.Error())
	}
	if len(h.rounds) == 0 {
		return emptyStyle.Render("No rounds finished yet.\nThree in a row ends a round!")
	}
	return h.table.View()
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case storage.OutcomeXWins:
		return "X"
	case storage.OutcomeOWins:
		return "O"
	default:
		return "draw"
	}
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
