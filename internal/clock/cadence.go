package clock

import "time"

// Cadence decides the delay before the next tick.
type Cadence interface {
	Next(score int, now time.Time) time.Duration
}

// Continuous ticks at a fixed frame interval.
type Continuous struct {
	Frame time.Duration
}

// FrameRate returns a Continuous cadence for the given ticks per second.
func FrameRate(fps int) Continuous {
	if fps <= 0 {
		fps = 60
	}
	return Continuous{Frame: time.Second / time.Duration(fps)}
}

// Next implements Cadence.
func (c Continuous) Next(int, time.Time) time.Duration {
	return c.Frame
}

// Stepped speeds up as the score grows and slows down while a Window is open.
//
//	delay = max(Floor, Base - score*PerPoint) + SlowPenalty if Slow is active
type Stepped struct {
	Base        time.Duration
	Floor       time.Duration
	PerPoint    time.Duration
	SlowPenalty time.Duration
	Slow        *Window
}

// Next implements Cadence.
func (s Stepped) Next(score int, now time.Time) time.Duration {
	d := max(s.Floor, s.Base-time.Duration(score)*s.PerPoint)
	if s.Slow != nil && s.Slow.Active(now) {
		d += s.SlowPenalty
	}
	return d
}

// Window is a timed effect that stays active for Length after Open.
type Window struct {
	Length time.Duration
	until  time.Time
}

// Open starts or restarts the window at now.
func (w *Window) Open(now time.Time) {
	w.until = now.Add(w.Length)
}

// Active reports whether now falls before the window's expiry.
func (w *Window) Active(now time.Time) bool {
	return !w.until.IsZero() && now.Before(w.until)
}

// Remaining returns how long the window stays open after now.
func (w *Window) Remaining(now time.Time) time.Duration {
	if !w.Active(now) {
		return 0
	}
	return w.until.Sub(now)
}

// Clear closes the window.
func (w *Window) Clear() {
	w.until = time.Time{}
}
