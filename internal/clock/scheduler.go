// Package clock owns tick scheduling for a game session.
//
// The platform drives time: a session arms a Ticket, the platform delivers it
// back after Ticket.Delay, and the session accepts it only if it is still the
// newest one. Cancelling or re-arming bumps the generation, so any tick already
// in flight becomes stale and is dropped. At most one tick is live per session.
package clock

import "time"

// Ticket identifies one scheduled tick.
type Ticket struct {
	Gen   uint64
	Delay time.Duration
}

// Scheduler hands out tickets and validates them on delivery.
// The zero value is ready to use and has nothing pending.
type Scheduler struct {
	gen  uint64
	live bool
}

// Arm schedules the next tick after d and invalidates any earlier ticket.
func (s *Scheduler) Arm(d time.Duration) Ticket {
	s.gen++
	s.live = true
	return Ticket{Gen: s.gen, Delay: d}
}

// Cancel drops the pending tick, if any.
func (s *Scheduler) Cancel() {
	s.gen++
	s.live = false
}

// Accept reports whether t is the live ticket and consumes it.
// A second delivery of the same ticket is rejected.
func (s *Scheduler) Accept(t Ticket) bool {
	if !s.live || t.Gen != s.gen {
		return false
	}
	s.live = false
	return true
}

// Pending reports whether a tick is scheduled.
func (s *Scheduler) Pending() bool {
	return s.live
}

// Generation returns the current ticket generation.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}
