package clock

import "time"

// Interval counts how many periods of Every elapsed since the last due time.
// It is driven by the session's own ticks, so a paused session never spawns.
type Interval struct {
	Every time.Duration
	last  time.Time
}

// Reset restarts the interval at now.
func (iv *Interval) Reset(now time.Time) {
	iv.last = now
}

// Due returns how many periods completed since the last call and advances
// the reference point by that many periods.
func (iv *Interval) Due(now time.Time) int {
	if iv.Every <= 0 {
		return 0
	}
	if iv.last.IsZero() {
		iv.last = now
		return 0
	}
	elapsed := now.Sub(iv.last)
	if elapsed < iv.Every {
		return 0
	}
	n := int(elapsed / iv.Every)
	iv.last = iv.last.Add(time.Duration(n) * iv.Every)
	return n
}
