// Package spawn produces new entities with randomized attributes.
// Every draw goes through an injected Source so tests can pin the outcome.
package spawn

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
)

// Source is the random generator used by the spawners. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// HostileSpec bounds the randomized attributes of a hostile.
type HostileSpec struct {
	MinSize    float64
	MaxSize    float64
	MinSpeed   float64
	MaxSpeed   float64
	EdgeOffset float64 // distance past the right edge at spawn
	TopMargin  float64
	HP         int
}

// Hostile creates a hostile just past the right edge of the board, moving left.
// Size, speed and vertical placement are uniform within the HostileSpec bounds.
func Hostile(src Source, board core.Board, spec HostileSpec) entity.Entity {
	size := spec.MinSize + src.Float64()*(spec.MaxSize-spec.MinSize)
	y := max(spec.TopMargin, src.Float64()*(float64(board.H)-size-spec.TopMargin))
	speed := spec.MinSpeed + src.Float64()*(spec.MaxSpeed-spec.MinSpeed)

	hp := spec.HP
	if hp <= 0 {
		hp = 1
	}

	return entity.Entity{
		Pos:  core.Vec{X: float64(board.W) + spec.EdgeOffset, Y: y},
		Size: core.Vec{X: size, Y: size},
		Vel:  core.Vec{X: -speed},
		Kind: entity.KindHostile,
		HP:   hp,
	}
}

// BurstSpec describes a particle burst.
type BurstSpec struct {
	Count   int
	Speed   float64 // velocity spread per axis, in source pixels
	Scale   float64 // source pixels per world unit
	MinLife int
	MaxLife int
}

// Burst creates Count particles at a point, each with a random velocity in
// [-Speed/2, Speed/2) per axis and a random lifetime in [MinLife, MaxLife].
func Burst(src Source, at core.Vec, color core.Color, spec BurstSpec) []entity.Particle {
	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}
	span := spec.MaxLife - spec.MinLife + 1
	if span < 1 {
		span = 1
	}

	out := make([]entity.Particle, 0, spec.Count)
	for range spec.Count {
		out = append(out, entity.Particle{
			Pos: at,
			Vel: core.Vec{
				X: (src.Float64() - 0.5) * spec.Speed / scale,
				Y: (src.Float64() - 0.5) * spec.Speed / scale,
			},
			Life:  spec.MinLife + src.Intn(span),
			Color: color,
		})
	}
	return out
}
