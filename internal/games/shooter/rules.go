package shooter

import (
	"time"

	"github.com/vovakirdan/mini-arcade/internal/clock"
	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
	"github.com/vovakirdan/mini-arcade/internal/session"
	"github.com/vovakirdan/mini-arcade/internal/spawn"
)

// rules is the continuous variant of the session lifecycle.
// Positions are world pixels and every tick advances one frame.
type rules struct {
	cfg     config.ShooterConfig
	src     spawn.Source
	cadence clock.Continuous
	spawner clock.Interval

	board       core.Board
	player      entity.Entity
	projectiles *entity.Store
	hostiles    *entity.Store
	particles   *entity.Particles
}

var _ session.Rules = (*rules)(nil)

func newRules(cfg config.ShooterConfig, src spawn.Source, fps int) *rules {
	return &rules{
		cfg:         cfg,
		src:         src,
		cadence:     clock.FrameRate(fps),
		spawner:     clock.Interval{Every: cfg.Hostiles.SpawnEvery()},
		projectiles: entity.NewStore(),
		hostiles:    entity.NewStore(),
		particles:   entity.NewParticles(cfg.Effects.WorldGravity()),
	}
}

// Layout empties the field and parks the ship at mid height.
func (r *rules) Layout(board core.Board) {
	r.board = board
	r.projectiles.Clear()
	r.hostiles.Clear()
	r.particles.Clear()
	r.player = entity.Entity{
		Pos:  core.Vec{X: r.cfg.Player.X, Y: float64(board.H) / 2},
		Size: core.Vec{X: r.cfg.Player.Width, Y: r.cfg.Player.Height},
		Kind: entity.KindPlayer,
		HP:   1,
	}
	r.clampPlayer()
}

// Begin starts from an empty field; hostiles spawn one interval from now.
func (r *rules) Begin(now time.Time) {
	r.Layout(r.board)
	r.spawner.Reset(now)
}

// Rescale keeps the session and pulls the ship back inside the new field.
func (r *rules) Rescale(board core.Board) bool {
	r.board = board
	r.clampPlayer()
	return false
}

func (r *rules) Promotes(cmd core.Command) bool {
	return cmd == core.CommandFire || cmd == core.CommandStart
}

func (r *rules) Apply(cmd core.Command, _ time.Time) {
	switch cmd {
	case core.CommandUp:
		r.player.Pos.Y -= r.cfg.Player.Step
		r.clampPlayer()
	case core.CommandDown:
		r.player.Pos.Y += r.cfg.Player.Step
		r.clampPlayer()
	case core.CommandFire:
		r.fire()
	}
}

func (r *rules) fire() {
	p := r.cfg.Projectile
	r.projectiles.Add(entity.Entity{
		Pos: core.Vec{
			X: r.player.Pos.X + r.player.Size.X + p.Offset,
			Y: r.player.Pos.Y + r.player.Size.Y/2 - p.Height/2,
		},
		Size: core.Vec{X: p.Width, Y: p.Height},
		Vel:  core.Vec{X: p.Speed},
		Kind: entity.KindProjectile,
		HP:   1,
	})
}

// clampPlayer keeps the ship between the top margin and the bottom edge.
func (r *rules) clampPlayer() {
	bottom := float64(r.board.H) - r.player.Size.Y
	r.player.Pos.Y = core.ClampF(r.player.Pos.Y, r.cfg.Player.TopMargin, max(r.cfg.Player.TopMargin, bottom))
}

// Advance runs one frame: spawn, move, pair hits, check the ship, cull.
func (r *rules) Advance(now time.Time) session.Outcome {
	for range r.spawner.Due(now) {
		r.hostiles.Add(spawn.Hostile(r.src, r.board, r.cfg.Hostiles.Spec()))
	}

	r.projectiles.AdvanceAll(1)
	r.hostiles.AdvanceAll(1)
	r.particles.Step()

	pad := r.cfg.World.CollisionPad
	killed := entity.Collide(r.hostiles, r.projectiles, pad)
	for _, h := range killed {
		r.particles.Add(spawn.Burst(r.src, h.Bounds().Center(), core.ColorBrightYellow, r.cfg.Effects.Spec())...)
	}
	out := session.Outcome{Points: len(killed)}

	ship := r.player.Bounds()
	if r.hostiles.Any(func(h entity.Entity) bool { return core.Overlaps(h.Bounds(), ship, pad) }) {
		out.Ended = true
		return out
	}

	margin := r.cfg.World.CullMargin
	right := float64(r.board.W) + margin
	r.projectiles.Cull(func(e entity.Entity) bool { return e.Pos.X >= right })
	r.hostiles.Cull(func(e entity.Entity) bool { return e.Pos.X+e.Size.X <= -margin })

	return out
}

func (r *rules) Cadence() clock.Cadence {
	return r.cadence
}
