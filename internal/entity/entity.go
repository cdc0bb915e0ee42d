// Package entity holds the transient objects of a running session:
// player, projectiles and hostiles for the shooter, and the particle pool
// shared by both games.
package entity

import "github.com/vovakirdan/mini-arcade/internal/core"

// Kind is the collision category of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindHostile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindHostile:
		return "hostile"
	default:
		return "unknown"
	}
}

// Entity is a moving axis-aligned box.
type Entity struct {
	Pos  core.Vec
	Size core.Vec
	Vel  core.Vec
	Kind Kind
	HP   int
}

// Bounds returns the entity's collision rectangle.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.Size.X, e.Size.Y)
}

// Advance moves the entity by its velocity scaled by dt.
func (e *Entity) Advance(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// Store owns a list of entities between spawn and removal.
type Store struct {
	items []Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends an entity.
func (s *Store) Add(e Entity) {
	s.items = append(s.items, e)
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns a copy of the live entities for read-only use.
func (s *Store) Items() []Entity {
	out := make([]Entity, len(s.items))
	copy(out, s.items)
	return out
}

// Clear removes every entity.
func (s *Store) Clear() {
	s.items = s.items[:0]
}

// AdvanceAll applies each entity's velocity to its position.
func (s *Store) AdvanceAll(dt float64) {
	for i := range s.items {
		s.items[i].Advance(dt)
	}
}

// Cull removes every entity for which pred holds and returns how many went.
func (s *Store) Cull(pred func(Entity) bool) int {
	before := len(s.items)
	s.items = filter(s.items, func(e *Entity) bool { return !pred(*e) })
	return before - len(s.items)
}

// Any reports whether some entity satisfies pred.
func (s *Store) Any(pred func(Entity) bool) bool {
	for _, e := range s.items {
		if pred(e) {
			return true
		}
	}
	return false
}

// Collide pairs hostiles with projectiles and removes each matched pair.
// Hostiles are visited in insertion order; each takes the first unmatched
// projectile that overlaps it, so at most one projectile is spent per hostile.
// Removal happens after the scan, so no entity is skipped or seen twice.
// The destroyed hostiles are returned.
func Collide(hostiles, projectiles *Store, pad float64) []Entity {
	if hostiles.Len() == 0 || projectiles.Len() == 0 {
		return nil
	}

	hitH := make([]bool, hostiles.Len())
	hitP := make([]bool, projectiles.Len())
	var destroyed []Entity

	for i, h := range hostiles.items {
		for j, p := range projectiles.items {
			if hitP[j] {
				continue
			}
			if core.Overlaps(h.Bounds(), p.Bounds(), pad) {
				hitH[i] = true
				hitP[j] = true
				destroyed = append(destroyed, h)
				break
			}
		}
	}

	if len(destroyed) == 0 {
		return nil
	}
	hostiles.items = dropMarked(hostiles.items, hitH)
	projectiles.items = dropMarked(projectiles.items, hitP)
	return destroyed
}

// filter keeps the items for which keep returns true, reusing the backing array.
func filter[T any](items []T, keep func(*T) bool) []T {
	n := 0
	for i := range items {
		if keep(&items[i]) {
			items[n] = items[i]
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}

func dropMarked[T any](items []T, marked []bool) []T {
	n := 0
	for i := range items {
		if !marked[i] {
			items[n] = items[i]
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
