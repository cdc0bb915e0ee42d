package entity

import "github.com/vovakirdan/mini-arcade/internal/core"

// Particle is a short-lived visual effect.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Life  int // remaining ticks
	Color core.Color
}

// Particles is the transient-effects pool.
type Particles struct {
	items   []Particle
	gravity float64
}

// NewParticles creates a pool whose particles accelerate downwards by gravity
// every step.
func NewParticles(gravity float64) *Particles {
	return &Particles{gravity: gravity}
}

// Add appends particles to the pool.
func (p *Particles) Add(ps ...Particle) {
	p.items = append(p.items, ps...)
}

// Step moves every particle, applies gravity, ages it by one tick and drops
// the ones whose life ran out.
func (p *Particles) Step() {
	p.items = filter(p.items, func(pt *Particle) bool {
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Vel.Y += p.gravity
		pt.Life--
		return pt.Life > 0
	})
}

// Items returns a copy of the live particles.
func (p *Particles) Items() []Particle {
	out := make([]Particle, len(p.items))
	copy(out, p.items)
	return out
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// Clear removes every particle.
func (p *Particles) Clear() {
	p.items = p.items[:0]
}
