package session

import (
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/clock"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// scriptRules replays a fixed list of outcomes and records every call.
type scriptRules struct {
	outcomes []Outcome
	reset    bool

	layouts int
	begins  int
	applied []core.Command
}

func (r *scriptRules) Layout(core.Board)       { r.layouts++ }
func (r *scriptRules) Begin(time.Time)         { r.begins++ }
func (r *scriptRules) Rescale(core.Board) bool { return r.reset }
func (r *scriptRules) Cadence() clock.Cadence  { return clock.Continuous{Frame: 16 * time.Millisecond} }
func (r *scriptRules) Apply(cmd core.Command, _ time.Time) {
	r.applied = append(r.applied, cmd)
}

func (r *scriptRules) Promotes(cmd core.Command) bool {
	return cmd == core.CommandStart || cmd == core.CommandFire
}

func (r *scriptRules) Advance(time.Time) Outcome {
	if len(r.outcomes) == 0 {
		return Outcome{}
	}
	o := r.outcomes[0]
	r.outcomes = r.outcomes[1:]
	return o
}

type recordingSink struct {
	calls []string
	score []int
}

func (s *recordingSink) Submit(game string, score int, user string) {
	s.calls = append(s.calls, game+"/"+user)
	s.score = append(s.score, score)
}

func newMachine(outcomes ...Outcome) (*Machine, *scriptRules) {
	r := &scriptRules{outcomes: outcomes}
	m := New("Test", r)
	m.Reset(core.Board{W: 20, H: 10})
	return m, r
}

// run delivers ticks until the machine stops scheduling them.
func run(m *Machine, t clock.Ticket, limit int) clock.Ticket {
	ok := true
	for i := 0; ok && i < limit; i++ {
		t, ok = m.Tick(t, epoch)
	}
	return t
}

func TestIdleIgnoresNonPromotingInput(t *testing.T) {
	m, r := newMachine()

	for _, cmd := range []core.Command{core.CommandNone, core.CommandUp, core.CommandRestart} {
		if _, ok := m.Input(cmd, epoch); ok {
			t.Errorf("%v should not start the session", cmd)
		}
	}
	if m.Phase() != core.PhaseIdle {
		t.Errorf("phase = %v, expected idle", m.Phase())
	}
	if m.Pending() {
		t.Error("idle session should have no pending tick")
	}
	if len(r.applied) != 0 {
		t.Errorf("idle session applied %v", r.applied)
	}
}

func TestPromotionAppliesCommandAfterBegin(t *testing.T) {
	m, r := newMachine()

	tk, ok := m.Input(core.CommandFire, epoch)
	if !ok {
		t.Fatal("Fire should promote from idle")
	}
	if tk.Delay != 16*time.Millisecond {
		t.Errorf("first delay = %v, expected 16ms", tk.Delay)
	}
	if m.Phase() != core.PhaseRunning || !m.Pending() {
		t.Errorf("phase=%v pending=%v, expected running with a tick", m.Phase(), m.Pending())
	}
	if r.begins != 1 || len(r.applied) != 1 || r.applied[0] != core.CommandFire {
		t.Errorf("begins=%d applied=%v, expected Begin then Fire", r.begins, r.applied)
	}
}

func TestTickAccumulatesScore(t *testing.T) {
	m, _ := newMachine(Outcome{Points: 1}, Outcome{}, Outcome{Points: 3})
	tk, _ := m.Input(core.CommandStart, epoch)

	for i := 0; i < 3; i++ {
		var ok bool
		tk, ok = m.Tick(tk, epoch)
		if !ok {
			t.Fatalf("tick %d stopped the session", i)
		}
	}
	if m.Score() != 4 {
		t.Errorf("score = %d, expected 4", m.Score())
	}
	if m.Ticks() != 3 {
		t.Errorf("ticks = %d, expected 3", m.Ticks())
	}
}

func TestEndedLeavesNoPendingTick(t *testing.T) {
	m, _ := newMachine(Outcome{Points: 2}, Outcome{Ended: true})
	tk, _ := m.Input(core.CommandStart, epoch)

	last := run(m, tk, 10)

	if m.Phase() != core.PhaseEnded {
		t.Fatalf("phase = %v, expected ended", m.Phase())
	}
	if m.Pending() {
		t.Error("ended session must not have a pending tick")
	}
	if _, ok := m.Tick(last, epoch); ok {
		t.Error("tick after Ended should be ignored")
	}
	if m.Ticks() != 2 {
		t.Errorf("ticks = %d, expected 2", m.Ticks())
	}
}

func TestStaleTicketRejected(t *testing.T) {
	m, _ := newMachine(Outcome{Points: 1})
	stale, _ := m.Input(core.CommandStart, epoch)

	m.Reset(m.Board())
	fresh, _ := m.Input(core.CommandStart, epoch)

	if _, ok := m.Tick(stale, epoch); ok {
		t.Error("ticket from before the reset should be rejected")
	}
	if m.Score() != 0 {
		t.Errorf("stale tick changed the score to %d", m.Score())
	}
	if _, ok := m.Tick(fresh, epoch); !ok {
		t.Error("fresh ticket should run")
	}
}

func TestRestartOnlyFromEnded(t *testing.T) {
	m, r := newMachine(Outcome{Points: 5, Ended: true})
	tk, _ := m.Input(core.CommandStart, epoch)

	if _, ok := m.Input(core.CommandRestart, epoch); ok {
		t.Error("restart while running should be ignored")
	}
	for _, cmd := range r.applied {
		if cmd == core.CommandRestart {
			t.Error("restart should not reach the rules while running")
		}
	}

	run(m, tk, 5)
	if m.Score() != 5 {
		t.Fatalf("score = %d, expected 5", m.Score())
	}

	if _, ok := m.Input(core.CommandFire, epoch); ok {
		t.Error("only Restart should leave the ended phase")
	}

	layouts := r.layouts
	if _, ok := m.Input(core.CommandRestart, epoch); !ok {
		t.Fatal("restart from ended should schedule a tick")
	}
	if m.Phase() != core.PhaseRunning || m.Score() != 0 {
		t.Errorf("after restart phase=%v score=%d, expected running with 0", m.Phase(), m.Score())
	}
	if r.layouts != layouts+1 {
		t.Error("restart should rebuild the initial layout")
	}
}

func TestReportOnlyWithIdentity(t *testing.T) {
	tests := []struct {
		name  string
		user  string
		calls int
	}{
		{"anonymous", "", 0},
		{"identified", "ann", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sink := &recordingSink{}
			m, _ := newMachine(Outcome{Points: 7}, Outcome{Ended: true})
			m.Attach(sink, tc.user)

			tk, _ := m.Input(core.CommandStart, epoch)
			run(m, tk, 10)

			if len(sink.calls) != tc.calls {
				t.Fatalf("reports = %d, expected %d", len(sink.calls), tc.calls)
			}
			if tc.calls == 1 && (sink.calls[0] != "Test/ann" || sink.score[0] != 7) {
				t.Errorf("report = %s %d, expected Test/ann 7", sink.calls[0], sink.score[0])
			}
		})
	}
}

func TestReportWithoutSink(t *testing.T) {
	m, _ := newMachine(Outcome{Ended: true})
	m.Attach(nil, "ann")
	tk, _ := m.Input(core.CommandStart, epoch)

	if _, ok := m.Tick(tk, epoch); ok {
		t.Error("session should end")
	}
}

func TestResizePolicy(t *testing.T) {
	t.Run("rescale keeps running", func(t *testing.T) {
		m, _ := newMachine()
		m.Input(core.CommandStart, epoch)

		m.Resize(core.Board{W: 40, H: 20})

		if m.Phase() != core.PhaseRunning || !m.Pending() {
			t.Errorf("phase=%v pending=%v, expected running", m.Phase(), m.Pending())
		}
		if m.Board() != (core.Board{W: 40, H: 20}) {
			t.Errorf("board = %+v, expected 40x20", m.Board())
		}
	})

	t.Run("reset returns to idle", func(t *testing.T) {
		m, r := newMachine(Outcome{Points: 3})
		r.reset = true
		tk, _ := m.Input(core.CommandStart, epoch)
		m.Tick(tk, epoch)

		m.Resize(core.Board{W: 40, H: 20})

		if m.Phase() != core.PhaseIdle || m.Pending() || m.Score() != 0 {
			t.Errorf("phase=%v pending=%v score=%d, expected idle/no tick/0", m.Phase(), m.Pending(), m.Score())
		}
	})

	t.Run("same board is a no-op", func(t *testing.T) {
		m, r := newMachine()
		r.reset = true
		layouts := r.layouts
		m.Resize(m.Board())
		if r.layouts != layouts {
			t.Error("resizing to the same board should not reset")
		}
	})
}
