package snake

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/spawn"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Ticks    uint64
	Phase    core.Phase
	Score    int
	Board    core.Board
	Body     []core.Cell // head first
	Dir      core.Dir
	Food     core.Cell
	FoodKind spawn.FoodKind
	HasFood  bool
	Pending  bool // a tick is scheduled
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	r := g.rules
	body := make([]core.Cell, len(r.body))
	copy(body, r.body)

	return Snapshot{
		Ticks:    g.machine.Ticks(),
		Phase:    g.machine.Phase(),
		Score:    g.machine.Score(),
		Board:    r.board,
		Body:     body,
		Dir:      r.heading.Current(),
		Food:     r.food.Cell,
		FoodKind: r.food.Kind,
		HasFood:  r.hasFood,
		Pending:  g.machine.Pending(),
	}
}

// Head returns the head cell.
func (s Snapshot) Head() core.Cell {
	if len(s.Body) == 0 {
		return core.Cell{}
	}
	return s.Body[0]
}
