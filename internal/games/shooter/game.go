// Package shooter implements the side-scrolling shooter: the ship holds the
// left edge, hostiles drift in from the right, and every hit scores a point.
package shooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/clock"
	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/session"
)

// Game implements the Shooter game.
type Game struct {
	cfg     config.ShooterConfig
	rules   *rules
	machine *session.Machine
}

// New creates a new Shooter game. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shooter"
}

// Reset loads the configuration and returns the game to Idle.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	scfg, err := config.LoadShooter(cfg.ConfigPath)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(cfg.Difficulty)
	if err != nil {
		return err
	}
	config.ApplyShooterPreset(&scfg, preset)
	return g.setup(scfg, cfg)
}

func (g *Game) setup(scfg config.ShooterConfig, cfg core.RuntimeConfig) error {
	if err := scfg.Validate(); err != nil {
		return err
	}
	g.cfg = scfg
	g.rules = newRules(scfg, rand.New(rand.NewSource(cfg.Seed)), cfg.TickRate)
	g.machine = session.New(g.Title(), g.rules)
	g.machine.Attach(cfg.Scores, cfg.UserID)
	g.machine.Reset(g.boardFor(cfg.ScreenW, cfg.ScreenH))
	return nil
}

// boardFor converts a terminal size into world pixels.
func (g *Game) boardFor(w, h int) core.Board {
	return core.Board{
		W: max(1, w) * g.cfg.World.ColPx,
		H: max(1, h-g.cfg.World.HUDRows) * g.cfg.World.RowPx,
	}
}

// Resize rescales the world; a running session continues.
func (g *Game) Resize(w, h int) {
	g.machine.Resize(g.boardFor(w, h))
}

// Input applies a command.
func (g *Game) Input(cmd core.Command, now time.Time) (clock.Ticket, bool) {
	return g.machine.Input(cmd, now)
}

// Tick runs one frame for a delivered ticket.
func (g *Game) Tick(t clock.Ticket, now time.Time) (clock.Ticket, bool) {
	return g.machine.Tick(t, now)
}

// State returns the current phase and score.
func (g *Game) State() core.GameState {
	return g.machine.State()
}
