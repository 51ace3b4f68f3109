package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoc/internal/core"
	"github.com/vovakirdan/tui-tictactoc/internal/storage"
	"github.com/vovakirdan/tui-tictactoc/internal/tictactoe"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// testModel builds an 80x24 model whose tap clock is controlled by the test.
func testModel(t *testing.T, store *storage.Store, logger *log.Logger) (Model, *time.Time) {
	t.Helper()
	clock := t0
	m := NewModel(core.DefaultConfig(), store, logger)
	m.now = func() time.Time { return clock }
	return m, &clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return nm
}

// clickCell clicks the centre of (row, col) for the 80x24 layout:
// cells are 10x5 with the board's top-left corner at (24, 4).
func clickCell(t *testing.T, m Model, row, col int) Model {
	t.Helper()
	return update(t, m, tea.MouseMsg{
		X:      29 + 11*col,
		Y:      6 + 6*row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

func playXWin(t *testing.T, m Model, clock *time.Time) Model {
	t.Helper()
	moves := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for _, mv := range moves {
		*clock = clock.Add(10 * time.Millisecond)
		m = clickCell(t, m, mv[0], mv[1])
	}
	return m
}

func TestMouseClickPlacesMark(t *testing.T) {
	m, _ := testModel(t, nil, nil)

	m = clickCell(t, m, 0, 0)
	m = clickCell(t, m, 2, 1)

	board := m.game.Round().Board()
	if board.At(0, 0) != tictactoe.X {
		t.Errorf("At(0, 0) = %v, want X", board.At(0, 0))
	}
	if board.At(2, 1) != tictactoe.O {
		t.Errorf("At(2, 1) = %v, want O", board.At(2, 1))
	}
	if m.game.Round().Turns() != 2 {
		t.Errorf("Turns() = %d, want 2", m.game.Round().Turns())
	}
}

func TestMouseIgnoresOtherEvents(t *testing.T) {
	m, _ := testModel(t, nil, nil)

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"release", tea.MouseMsg{X: 29, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{"right button", tea.MouseMsg{X: 29, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
		{"motion", tea.MouseMsg{X: 29, Y: 6, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}},
		{"outside board", tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m = update(t, m, tt.msg)
			if m.game.Round().Turns() != 0 {
				t.Errorf("Turns() = %d after %s, want 0", m.game.Round().Turns(), tt.name)
			}
		})
	}
}

func TestKeyboardCursorPlacesMark(t *testing.T) {
	m, _ := testModel(t, nil, nil)

	// Cursor starts in the centre cell
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.game.Round().Board().At(0, 2); got != tictactoe.X {
		t.Errorf("At(0, 2) = %v, want X", got)
	}

	// Cursor stays on the board
	for i := 0; i < 5; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if row, col := m.game.Cursor(); row != 0 || col != 0 {
		t.Errorf("Cursor() = (%d, %d), want (0, 0)", row, col)
	}
}

func TestFinishedRoundIsSaved(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m, clock := testModel(t, store, nil)
	m = playXWin(t, m, clock)

	// Still resolving: nothing cleared yet
	m = update(t, m, TickMsg(clock.Add(time.Second)))
	if tally, _ := store.Tally(); tally.Rounds() != 0 {
		t.Fatalf("rounds saved before reset = %d, want 0", tally.Rounds())
	}
	if !m.GameState().Resolving {
		t.Error("GameState().Resolving = false, want true")
	}

	m = update(t, m, TickMsg(clock.Add(3*time.Second)))
	if m.GameState().Resolving {
		t.Error("GameState().Resolving = true after reset, want false")
	}
	if m.GameState().XWins != 1 {
		t.Errorf("GameState().XWins = %d, want 1", m.GameState().XWins)
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("saved %d rounds, want 1", len(rounds))
	}
	r := rounds[0]
	if r.Outcome != storage.OutcomeXWins {
		t.Errorf("Outcome = %q, want %q", r.Outcome, storage.OutcomeXWins)
	}
	if r.Turns != 5 {
		t.Errorf("Turns = %d, want 5", r.Turns)
	}
	if r.Board != "XXX\nOO.\n..." {
		t.Errorf("Board = %q", r.Board)
	}
	if r.ID == "" {
		t.Error("saved round has no ID")
	}
}

func TestClicksIgnoredWhileResolving(t *testing.T) {
	m, clock := testModel(t, nil, nil)
	m = playXWin(t, m, clock)

	m = clickCell(t, m, 2, 2)
	if got := m.game.Round().Board().At(2, 2); got != tictactoe.Empty {
		t.Errorf("At(2, 2) = %v while resolving, want empty", got)
	}
	if m.game.Round().Turns() != 5 {
		t.Errorf("Turns() = %d, want 5", m.game.Round().Turns())
	}
}

func TestQuit(t *testing.T) {
	m, _ := testModel(t, nil, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}
	if v := next.View(); v != "" {
		t.Errorf("View() after quit = %q, want empty", v)
	}
}

func TestHistoryToggle(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := testModel(t, store, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showHistory {
		t.Fatal("tab did not open the history")
	}
	if v := m.View(); !strings.Contains(v, "ROUND HISTORY") {
		t.Error("history view missing title")
	}

	// The board does not take clicks behind the history
	m = clickCell(t, m, 0, 0)
	if m.game.Round().Turns() != 0 {
		t.Errorf("Turns() = %d with history open, want 0", m.game.Round().Turns())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHistory {
		t.Error("esc did not close the history")
	}
	if v := m.View(); !strings.Contains(v, "TicTacToc") {
		t.Error("board view missing title")
	}
}

func TestResizeKeepsRound(t *testing.T) {
	m, _ := testModel(t, nil, nil)
	m = clickCell(t, m, 1, 1)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if got := m.game.Round().Board().At(1, 1); got != tictactoe.X {
		t.Errorf("At(1, 1) after resize = %v, want X", got)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, want 120x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
	if b := m.game.BoardRect(); b.Bottom() > 40-helpHeight {
		t.Errorf("board bottom %d overlaps help bar", b.Bottom())
	}
}

func TestTickAdvancesAnimation(t *testing.T) {
	m, clock := testModel(t, nil, nil)
	m = clickCell(t, m, 0, 0)

	m = update(t, m, TickMsg(clock.Add(250*time.Millisecond)))
	if got := m.game.Round().Animation().Progress(0, 0); got != 0.5 {
		t.Errorf("Progress(0, 0) = %v, want 0.5", got)
	}

	m = update(t, m, TickMsg(clock.Add(time.Second)))
	if got := m.game.Round().Animation().Progress(0, 0); got != 1 {
		t.Errorf("Progress(0, 0) = %v, want 1", got)
	}
}

func TestRoundEventsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Prefix: "test"})

	m, clock := testModel(t, nil, logger)
	playXWin(t, m, clock)

	if !strings.Contains(buf.String(), "round won") {
		t.Errorf("log missing round won entry: %q", buf.String())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "X 1", core.ColorGreen)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "X 1") || !strings.Contains(lines[1], "plain") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}
