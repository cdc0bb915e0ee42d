package snake

import (
	"slices"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/clock"
	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
	"github.com/vovakirdan/mini-arcade/internal/session"
	"github.com/vovakirdan/mini-arcade/internal/spawn"
)

// rules is the discrete grid variant of the session lifecycle.
// One tick moves the snake exactly one cell.
type rules struct {
	cfg   config.SnakeConfig
	src   spawn.Source
	table spawn.FoodTable
	wrap  bool

	cadence clock.Stepped
	slow    *clock.Window

	board     core.Board // cols x rows
	body      []core.Cell
	heading   core.Heading
	food      spawn.Food
	hasFood   bool
	particles *entity.Particles
}

var _ session.Rules = (*rules)(nil)

func newRules(cfg config.SnakeConfig, table spawn.FoodTable, src spawn.Source) *rules {
	slow := &clock.Window{Length: ms(cfg.Speed.SlowWindowMS)}
	return &rules{
		cfg:   cfg,
		src:   src,
		table: table,
		wrap:  cfg.Board.Boundary == config.BoundaryWrap,
		cadence: clock.Stepped{
			Base:        ms(cfg.Speed.BaseMS),
			Floor:       ms(cfg.Speed.FloorMS),
			PerPoint:    ms(cfg.Speed.PerPointMS),
			SlowPenalty: ms(cfg.Speed.SlowPenaltyMS),
			Slow:        slow,
		},
		slow:      slow,
		heading:   core.NewHeading(core.DirRight),
		particles: entity.NewParticles(cfg.Effects.WorldGravity()),
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Layout places a one-segment snake at the centre heading right.
func (r *rules) Layout(board core.Board) {
	r.board = board
	r.body = append(r.body[:0], core.Cell{Col: board.W / 2, Row: board.H / 2})
	r.heading = core.NewHeading(core.DirRight)
	r.particles.Clear()
	r.slow.Clear()
	r.respawnFood()
}

func (r *rules) Begin(time.Time) {
	r.slow.Clear()
}

// Rescale always asks for a reset: grid coordinates do not survive a resize.
func (r *rules) Rescale(core.Board) bool {
	return true
}

// Promotes accepts Start, Fire, and any direction the snake can turn to.
func (r *rules) Promotes(cmd core.Command) bool {
	switch cmd {
	case core.CommandStart, core.CommandFire:
		return true
	}
	d, ok := cmd.Dir()
	return ok && !d.Reverses(r.heading.Current())
}

func (r *rules) Apply(cmd core.Command, _ time.Time) {
	if d, ok := cmd.Dir(); ok {
		r.heading.Turn(d)
	}
}

// Advance moves the snake one cell and resolves the wall, its own body and
// the food, in that order.
func (r *rules) Advance(now time.Time) session.Outcome {
	r.particles.Step()

	head := r.body[0].Step(r.heading.Commit())
	if !head.In(r.board.W, r.board.H) {
		if !r.wrap {
			return session.Outcome{Ended: true}
		}
		head = head.Wrap(r.board.W, r.board.H)
	}

	// The tail still counts: the head lands before the tail is dropped.
	if slices.Contains(r.body, head) {
		return session.Outcome{Ended: true}
	}

	eating := r.hasFood && head == r.food.Cell

	r.body = slices.Insert(r.body, 0, head)
	if !eating {
		r.body = r.body[:len(r.body)-1]
		return session.Outcome{}
	}

	eaten := r.food
	if eaten.Kind == spawn.FoodSlow {
		r.slow.Open(now)
	}
	center := core.Vec{X: float64(head.Col) + 0.5, Y: float64(head.Row) + 0.5}
	r.particles.Add(spawn.Burst(r.src, center, foodColor(eaten.Kind), r.cfg.Effects.Spec())...)
	r.respawnFood()

	return session.Outcome{Points: r.cfg.Food.PointsFor(eaten.Kind)}
}

// respawnFood replaces the food with a new one on a free cell.
// The consumed cell is always part of the body at this point.
func (r *rules) respawnFood() {
	r.food, r.hasFood = spawn.NewFood(r.src, r.board.W, r.board.H, r.table, func(c core.Cell) bool {
		return slices.Contains(r.body, c)
	})
}

func (r *rules) Cadence() clock.Cadence {
	return r.cadence
}

func foodColor(k spawn.FoodKind) core.Color {
	switch k {
	case spawn.FoodBonus:
		return core.ColorBrightYellow
	case spawn.FoodSlow:
		return core.ColorCyan
	default:
		return core.ColorBrightRed
	}
}
