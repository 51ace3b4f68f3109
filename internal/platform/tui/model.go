package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoc/internal/core"
	"github.com/vovakirdan/tui-tictactoc/internal/storage"
	"github.com/vovakirdan/tui-tictactoc/internal/tictactoe"
)

// helpHeight is the number of rows kept below the board for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for a tic-tac-toe session.
type Model struct {
	game        *tictactoe.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	history     historyView
	showHistory bool
	gameState   core.GameState
	quitting    bool
	now         func() time.Time // Clock for taps; ticks carry their own time
}

// NewModel creates a new Bubble Tea model. store and logger may be nil.
func NewModel(cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	boardH := max(cfg.ScreenH-helpHeight, 0)
	gameCfg := cfg
	gameCfg.ScreenH = boardH

	return Model{
		game:    tictactoe.New(gameCfg, time.Now()),
		screen:  core.NewScreen(cfg.ScreenW, boardH),
		store:   store,
		logger:  logger,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		history: newHistoryView(cfg.ScreenW, cfg.ScreenH),
		now:     time.Now,
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"fps", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("session ended",
			"x_wins", m.gameState.XWins,
			"o_wins", m.gameState.OWins,
			"draws", m.gameState.Draws,
		)
		return m, tea.Quit

	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.history.load(m.store)
		}
		return m, nil
	}

	if m.showHistory {
		if key.Matches(msg, m.keys.Back) {
			m.showHistory = false
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.game.MoveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.game.MoveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.game.MoveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.game.MoveCursor(0, 1)
	case key.Matches(msg, m.keys.Place):
		row, col := m.game.Cursor()
		m.logTap(m.game.TapCursor(m.now()), row, col)
	}

	return m, nil
}

// handleMouse turns a left-button press into a tap on the board.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	res := m.game.TapScreen(msg.X, msg.Y, m.now())
	if res != tictactoe.TapIgnored {
		row, col := m.game.Cursor()
		m.logTap(res, row, col)
	}
	return m, nil
}

// logTap records the outcome of a tap at debug level, and round ends at info.
func (m Model) logTap(res tictactoe.TapResult, row, col int) {
	switch res {
	case tictactoe.TapWon:
		if w, ok := m.game.Round().Winner(); ok {
			m.logger.Info("round won", "player", w, "turns", m.game.Round().Turns())
		}
	case tictactoe.TapDrawn:
		m.logger.Info("round drawn")
	default:
		m.logger.Debug("tap", "result", res, "row", row, "col", col)
	}
}

// handleResize processes window resize events.
// The round is kept; only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	boardH := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, boardH)
	m.game.Resize(msg.Width, boardH)
	m.help.Width = msg.Width
	m.history.resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick advances animations and the pending reset to the frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(now)
	m.gameState = result.State

	if result.NewRound {
		m.logger.Debug("board cleared", "rounds", m.game.Round().Completed())
	}
	m.saveFinished()

	return m, tickCmd(m.config.TickRate)
}

// saveFinished moves cleared rounds into the history store.
func (m Model) saveFinished() {
	for _, s := range m.game.TakeFinished() {
		if m.store == nil {
			continue
		}
		id, err := m.store.SaveRound(storage.RoundRecord{
			Outcome:   string(s.Outcome),
			Turns:     s.Turns,
			Board:     s.Board.String(),
			StartedAt: s.StartedAt,
			EndedAt:   s.EndedAt,
		})
		if err != nil {
			// History is best-effort; play continues regardless
			m.logger.Error("cannot save round", "err", err)
			continue
		}
		m.logger.Debug("round saved", "id", id, "outcome", s.Outcome, "turns", s.Turns)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keys))

	if m.showHistory {
		return m.history.view() + "\n" + helpView
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// GameState returns the tally as of the last frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program.
func Run(cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	model := NewModel(cfg, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the board are taps
	)

	_, err := p.Run()
	return err
}
