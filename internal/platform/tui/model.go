package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game: it maps input to
// commands, delivers scheduled ticks, and draws the game's screen.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	swipe      Swipe
	state      core.GameState
	quitOnBack bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel resets the game for cfg and wraps it in a model.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	// The bottom row holds the help line.
	area := cfg
	area.ScreenH = max(0, cfg.ScreenH-1)
	if err := game.Reset(area); err != nil {
		return GameModel{}, fmt.Errorf("tui: reset %s: %w", game.ID(), err)
	}

	return GameModel{
		game:   game,
		screen: core.NewScreen(area.ScreenW, area.ScreenH),
		store:  store,
		config: cfg,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		state:  game.State(),
	}, nil
}

// Init starts nothing: the first tick is armed by the command that leaves Idle.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		cmd := m.swipe.Handle(msg, m.state.Phase)
		return m.command(cmd, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.state.Running() {
			return m, nil
		}
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.command(m.keys.Command(msg, m.state.Phase), time.Now())
}

// command feeds a command to the game and schedules the first tick if the
// command started a run.
func (m GameModel) command(cmd core.Command, now time.Time) (tea.Model, tea.Cmd) {
	if cmd == core.CommandNone {
		return m, nil
	}
	t, ok := m.game.Input(cmd, now)
	m.sync()
	if !ok {
		return m, nil
	}
	return m, tickCmd(t)
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-1))
	m.help.Width = msg.Width

	if m.screen.Ready() {
		m.game.Resize(m.screen.Width(), m.screen.Height())
	}
	m.sync()
	return m, nil
}

// handleTick delivers a scheduled tick. Until the screen has a drawable area
// the same ticket is re-issued and the game is left untouched.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.screen.Ready() {
		return m, tickCmd(msg.Ticket)
	}

	next, ok := m.game.Tick(msg.Ticket, msg.At)
	m.sync()
	if !ok {
		return m, nil
	}
	return m, tickCmd(next)
}

// sync refreshes the cached state and stores the score once per game over.
func (m *GameModel) sync() {
	m.state = m.game.State()
	if !m.state.GameOver() {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.config.UserID, m.state.Score); err != nil && m.logger != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.screen.Ready() {
		return "loading..."
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewGameModel(game, store, cfg, logger)
	if err != nil {
		return err
	}
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
