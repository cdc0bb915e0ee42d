// Package snake implements the grid game: a snake that steps one cell per
// tick, grows on food and speeds up with the score.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/clock"
	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/session"
)

// Game implements the Snake game.
type Game struct {
	cfg     config.SnakeConfig
	rules   *rules
	machine *session.Machine
}

// New creates a new Snake game. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset loads the configuration and returns the game to Idle.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	scfg, err := config.LoadSnake(cfg.ConfigPath)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(cfg.Difficulty)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&scfg, preset)
	return g.setup(scfg, cfg)
}

func (g *Game) setup(scfg config.SnakeConfig, cfg core.RuntimeConfig) error {
	if err := scfg.Validate(); err != nil {
		return err
	}
	table, err := scfg.Food.Table()
	if err != nil {
		return err
	}

	g.cfg = scfg
	g.rules = newRules(scfg, table, rand.New(rand.NewSource(cfg.Seed)))
	g.machine = session.New(g.Title(), g.rules)
	g.machine.Attach(cfg.Scores, cfg.UserID)
	g.machine.Reset(g.boardFor(cfg.ScreenW, cfg.ScreenH))
	return nil
}

// boardFor converts a terminal size into grid dimensions.
func (g *Game) boardFor(w, h int) core.Board {
	return core.Board{
		W: max(g.cfg.Board.MinCols, w/g.cfg.Board.CellCols),
		H: max(g.cfg.Board.MinRows, h-g.cfg.Board.HUDRows),
	}
}

// Resize recomputes the grid. A changed grid returns the game to Idle.
func (g *Game) Resize(w, h int) {
	g.machine.Resize(g.boardFor(w, h))
}

// Input applies a command.
func (g *Game) Input(cmd core.Command, now time.Time) (clock.Ticket, bool) {
	return g.machine.Input(cmd, now)
}

// Tick runs one step for a delivered ticket.
func (g *Game) Tick(t clock.Ticket, now time.Time) (clock.Ticket, bool) {
	return g.machine.Tick(t, now)
}

// State returns the current phase and score.
func (g *Game) State() core.GameState {
	return g.machine.State()
}
