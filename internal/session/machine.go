// Package session implements the Idle → Running → Ended lifecycle shared by
// every game. Game-specific behaviour plugs in through Rules; the Machine owns
// the phase, the score, tick scheduling and the final score report.
package session

import (
	"time"

	"github.com/vovakirdan/mini-arcade/internal/clock"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Outcome is the result of one simulation step.
type Outcome struct {
	Points int  // score gained this tick
	Ended  bool // the session is over
}

// Rules is the per-game strategy driven by the Machine.
type Rules interface {
	// Layout builds the initial Idle state for a board.
	Layout(board core.Board)
	// Begin is called when the session enters Running.
	Begin(now time.Time)
	// Rescale adapts to a new board. Returning true asks for a full reset.
	Rescale(board core.Board) bool
	// Promotes reports whether cmd starts the game from Idle.
	Promotes(cmd core.Command) bool
	// Apply performs the gameplay effect of a command while Running.
	Apply(cmd core.Command, now time.Time)
	// Advance simulates one tick.
	Advance(now time.Time) Outcome
	// Cadence decides the delay between ticks.
	Cadence() clock.Cadence
}

// Machine drives one game session.
type Machine struct {
	name  string
	rules Rules
	sched clock.Scheduler

	phase core.Phase
	score int
	board core.Board
	ticks uint64

	sink   core.ScoreSink
	userID string
}

// New creates a Machine for the named game. Call Reset before use.
func New(name string, rules Rules) *Machine {
	return &Machine{name: name, rules: rules}
}

// Attach sets where the final score goes and under which identity.
// An empty userID disables reporting.
func (m *Machine) Attach(sink core.ScoreSink, userID string) {
	m.sink = sink
	m.userID = userID
}

// Reset returns to Idle with a fresh layout and no pending tick.
func (m *Machine) Reset(board core.Board) {
	m.sched.Cancel()
	m.board = board
	m.phase = core.PhaseIdle
	m.score = 0
	m.ticks = 0
	m.rules.Layout(board)
}

// Resize applies a new board. Rules that cannot rescale are reset to Idle.
func (m *Machine) Resize(board core.Board) {
	if board == m.board {
		return
	}
	if m.rules.Rescale(board) {
		m.Reset(board)
		return
	}
	m.board = board
}

// Input feeds a command into the session. When the command starts the
// simulation, the first tick's ticket is returned with ok set.
func (m *Machine) Input(cmd core.Command, now time.Time) (clock.Ticket, bool) {
	if cmd == core.CommandNone {
		return clock.Ticket{}, false
	}

	switch m.phase {
	case core.PhaseEnded:
		if cmd != core.CommandRestart {
			return clock.Ticket{}, false
		}
		m.rules.Layout(m.board)
		m.score = 0
		m.ticks = 0
		return m.start(now), true

	case core.PhaseIdle:
		if !m.rules.Promotes(cmd) {
			return clock.Ticket{}, false
		}
		t := m.start(now)
		m.rules.Apply(cmd, now)
		return t, true

	default:
		if cmd != core.CommandRestart {
			m.rules.Apply(cmd, now)
		}
		return clock.Ticket{}, false
	}
}

func (m *Machine) start(now time.Time) clock.Ticket {
	m.rules.Begin(now)
	m.phase = core.PhaseRunning
	return m.sched.Arm(m.rules.Cadence().Next(m.score, now))
}

// Tick runs one simulation step for a delivered ticket. Stale tickets and
// ticks outside Running are ignored. The next ticket is returned with ok set
// while the session keeps running.
func (m *Machine) Tick(t clock.Ticket, now time.Time) (clock.Ticket, bool) {
	if !m.sched.Accept(t) || m.phase != core.PhaseRunning {
		return clock.Ticket{}, false
	}

	m.ticks++
	out := m.rules.Advance(now)
	m.score += max(0, out.Points)

	if out.Ended {
		m.phase = core.PhaseEnded
		m.sched.Cancel()
		m.report()
		return clock.Ticket{}, false
	}
	return m.sched.Arm(m.rules.Cadence().Next(m.score, now)), true
}

func (m *Machine) report() {
	if m.sink == nil || m.userID == "" {
		return
	}
	m.sink.Submit(m.name, m.score, m.userID)
}

// Phase returns the current phase.
func (m *Machine) Phase() core.Phase { return m.phase }

// Score returns the current score.
func (m *Machine) Score() int { return m.score }

// Board returns the current board dimensions.
func (m *Machine) Board() core.Board { return m.board }

// Pending reports whether a tick is scheduled.
func (m *Machine) Pending() bool { return m.sched.Pending() }

// Ticks returns the number of ticks simulated since the last start.
func (m *Machine) Ticks() uint64 { return m.ticks }

// State returns the phase and score for the platform.
func (m *Machine) State() core.GameState {
	return core.GameState{Phase: m.phase, Score: m.score}
}
