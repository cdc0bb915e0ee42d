package snake

import (
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/clock"
	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/spawn"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type sinkCall struct {
	game  string
	score int
	user  string
}

type recordingSink struct{ calls []sinkCall }

func (s *recordingSink) Submit(game string, score int, user string) {
	s.calls = append(s.calls, sinkCall{game, score, user})
}

// newTestGame builds a game on a 10x8 grid, whose centre is (5, 4).
func newTestGame(t *testing.T, seed int64, mutate func(*config.SnakeConfig)) *Game {
	t.Helper()
	scfg := config.DefaultSnakeConfig()
	if mutate != nil {
		mutate(&scfg)
	}
	g := New()
	if err := g.setup(scfg, core.RuntimeConfig{ScreenW: 20, ScreenH: 9, Seed: seed}); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return g
}

func placeFood(g *Game, c core.Cell, kind spawn.FoodKind) {
	g.rules.food = spawn.Food{Cell: c, Kind: kind}
	g.rules.hasFood = true
}

func start(t *testing.T, g *Game, cmd core.Command) clock.Ticket {
	t.Helper()
	tk, ok := g.Input(cmd, epoch)
	if !ok {
		t.Fatalf("%v should start the game", cmd)
	}
	return tk
}

func step(t *testing.T, g *Game, tk clock.Ticket) clock.Ticket {
	t.Helper()
	next, ok := g.Tick(tk, epoch)
	if !ok && g.State().Running() {
		t.Fatal("running game stopped scheduling ticks")
	}
	return next
}

func TestInitialLayout(t *testing.T) {
	g := newTestGame(t, 1, nil)
	s := g.Snapshot()

	if s.Board != (core.Board{W: 10, H: 8}) {
		t.Errorf("board = %+v, expected 10x8", s.Board)
	}
	if len(s.Body) != 1 || s.Head() != (core.Cell{Col: 5, Row: 4}) {
		t.Errorf("body = %v, expected one segment at (5, 4)", s.Body)
	}
	if s.Dir != core.DirRight {
		t.Errorf("dir = %v, expected right", s.Dir)
	}
	if s.Phase != core.PhaseIdle || s.Pending {
		t.Errorf("phase=%v pending=%v, expected idle with no tick", s.Phase, s.Pending)
	}
	if !s.HasFood || s.Food == s.Head() {
		t.Errorf("food %+v should exist off the snake", s.Food)
	}
}

func TestMinimumBoard(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Resize(4, 3)
	if b := g.Snapshot().Board; b != (core.Board{W: 10, H: 8}) {
		t.Errorf("board = %+v, expected the 10x8 minimum", b)
	}

	g.Resize(80, 25)
	if b := g.Snapshot().Board; b != (core.Board{W: 40, H: 24}) {
		t.Errorf("board = %+v, expected 40x24", b)
	}
}

func TestConsumptionScenario(t *testing.T) {
	g := newTestGame(t, 99, nil)
	placeFood(g, core.Cell{Col: 6, Row: 4}, spawn.FoodNormal)

	tk := start(t, g, core.CommandStart)
	step(t, g, tk)

	s := g.Snapshot()
	want := []core.Cell{{Col: 6, Row: 4}, {Col: 5, Row: 4}}
	if !slices.Equal(s.Body, want) {
		t.Errorf("body = %v, expected %v", s.Body, want)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, expected 1", s.Score)
	}
	if !s.HasFood {
		t.Fatal("fresh food should be drawn")
	}
	if s.Food == (core.Cell{Col: 6, Row: 4}) || slices.Contains(s.Body, s.Food) {
		t.Errorf("fresh food at %+v overlaps the consumed cell or the body", s.Food)
	}
	if g.rules.particles.Len() != 10 {
		t.Errorf("burst = %d particles, expected 10", g.rules.particles.Len())
	}
}

func TestFoodScoreDeltas(t *testing.T) {
	tests := []struct {
		kind      spawn.FoodKind
		points    int
		slow      bool
		nextDelay time.Duration
	}{
		{spawn.FoodNormal, 1, false, 116 * time.Millisecond},
		{spawn.FoodBonus, 3, false, 108 * time.Millisecond},
		{spawn.FoodSlow, 1, true, 176 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			g := newTestGame(t, 5, nil)
			placeFood(g, core.Cell{Col: 6, Row: 4}, tc.kind)

			tk := start(t, g, core.CommandStart)
			if tk.Delay != 120*time.Millisecond {
				t.Errorf("first delay = %v, expected 120ms", tk.Delay)
			}
			next := step(t, g, tk)

			if got := g.State().Score; got != tc.points {
				t.Errorf("score = %d, expected %d", got, tc.points)
			}
			if got := g.rules.slow.Active(epoch); got != tc.slow {
				t.Errorf("slow active = %v, expected %v", got, tc.slow)
			}
			if next.Delay != tc.nextDelay {
				t.Errorf("next delay = %v, expected %v", next.Delay, tc.nextDelay)
			}
		})
	}
}

func TestSlowWindowExpires(t *testing.T) {
	g := newTestGame(t, 5, nil)
	placeFood(g, core.Cell{Col: 6, Row: 4}, spawn.FoodSlow)
	tk := start(t, g, core.CommandStart)
	tk = step(t, g, tk)

	g.rules.hasFood = false
	next, ok := g.Tick(tk, epoch.Add(3*time.Second))
	if !ok {
		t.Fatal("game should keep running")
	}
	if next.Delay != 116*time.Millisecond {
		t.Errorf("delay after the window = %v, expected 116ms", next.Delay)
	}
}

func TestReversalRejected(t *testing.T) {
	g := newTestGame(t, 3, nil)
	g.rules.hasFood = false

	if _, ok := g.Input(core.CommandLeft, epoch); ok {
		t.Error("a reversing direction should not start the game")
	}

	tk := start(t, g, core.CommandRight)
	g.Input(core.CommandLeft, epoch)
	tk = step(t, g, tk)
	if h := g.Snapshot().Head(); h != (core.Cell{Col: 6, Row: 4}) {
		t.Errorf("head = %+v, reversal should be ignored", h)
	}

	// Up is accepted; Left in the same tick still reverses the last move.
	g.Input(core.CommandUp, epoch)
	g.Input(core.CommandLeft, epoch)
	step(t, g, tk)
	if h := g.Snapshot().Head(); h != (core.Cell{Col: 6, Row: 3}) {
		t.Errorf("head = %+v, expected (6, 3)", h)
	}
}

func TestWallEndsGame(t *testing.T) {
	g := newTestGame(t, 3, nil)
	g.rules.hasFood = false
	tk := start(t, g, core.CommandStart)

	for i := 0; i < 4; i++ {
		tk = step(t, g, tk)
	}
	if h := g.Snapshot().Head(); h != (core.Cell{Col: 9, Row: 4}) {
		t.Fatalf("head = %+v, expected (9, 4) at the edge", h)
	}

	if _, ok := g.Tick(tk, epoch); ok {
		t.Error("leaving the board should end the game")
	}
	s := g.Snapshot()
	if s.Phase != core.PhaseEnded || s.Pending {
		t.Errorf("phase=%v pending=%v, expected ended with no tick", s.Phase, s.Pending)
	}
	if s.Head() != (core.Cell{Col: 9, Row: 4}) {
		t.Errorf("the illegal move must not be committed, head = %+v", s.Head())
	}
}

func TestWrapMode(t *testing.T) {
	g := newTestGame(t, 3, func(c *config.SnakeConfig) { c.Board.Boundary = config.BoundaryWrap })
	g.rules.hasFood = false
	tk := start(t, g, core.CommandStart)

	for i := 0; i < 5; i++ {
		tk = step(t, g, tk)
	}
	s := g.Snapshot()
	if s.Phase != core.PhaseRunning {
		t.Fatalf("phase = %v, wrap mode should keep running", s.Phase)
	}
	if s.Head() != (core.Cell{Col: 0, Row: 4}) {
		t.Errorf("head = %+v, expected to wrap to (0, 4)", s.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 3, nil)
	g.rules.hasFood = false
	tk := start(t, g, core.CommandStart)

	g.rules.body = []core.Cell{
		{Col: 5, Row: 4}, {Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 4}, {Col: 6, Row: 3},
	}
	if _, ok := g.Tick(tk, epoch); ok {
		t.Error("moving into the body should end the game")
	}
	if g.State().Phase != core.PhaseEnded {
		t.Errorf("phase = %v, expected ended", g.State().Phase)
	}
}

func TestMovingIntoTailEnds(t *testing.T) {
	g := newTestGame(t, 3, nil)
	g.rules.hasFood = false
	tk := start(t, g, core.CommandStart)

	body := []core.Cell{{Col: 5, Row: 4}, {Col: 5, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 4}}
	g.rules.body = slices.Clone(body)
	if _, ok := g.Tick(tk, epoch); ok {
		t.Error("stepping onto the tail cell should end the game")
	}
	if g.State().Phase != core.PhaseEnded {
		t.Errorf("phase = %v, expected ended", g.State().Phase)
	}
	if s := g.Snapshot(); !slices.Equal(s.Body, body) {
		t.Errorf("body = %v, expected it unchanged at %v", s.Body, body)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	play := func() Snapshot {
		g := newTestGame(t, 12345, func(c *config.SnakeConfig) { c.Board.Boundary = config.BoundaryWrap })
		tk := start(t, g, core.CommandStart)
		now := epoch
		for i := 0; i < 200 && g.State().Running(); i++ {
			switch i % 17 {
			case 3:
				g.Input(core.CommandDown, now)
			case 9:
				g.Input(core.CommandLeft, now)
			case 12:
				g.Input(core.CommandUp, now)
			case 15:
				g.Input(core.CommandRight, now)
			}
			now = now.Add(tk.Delay)
			tk, _ = g.Tick(tk, now)
		}
		return g.Snapshot()
	}

	s1, s2 := play(), play()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestResizeResetsToIdle(t *testing.T) {
	g := newTestGame(t, 7, nil)
	placeFood(g, core.Cell{Col: 6, Row: 4}, spawn.FoodNormal)
	tk := start(t, g, core.CommandStart)
	step(t, g, tk)

	g.Resize(40, 21)

	s := g.Snapshot()
	if s.Phase != core.PhaseIdle || s.Pending || s.Score != 0 {
		t.Errorf("phase=%v pending=%v score=%d, expected a fresh idle game", s.Phase, s.Pending, s.Score)
	}
	if s.Board != (core.Board{W: 20, H: 20}) || s.Head() != (core.Cell{Col: 10, Row: 10}) || len(s.Body) != 1 {
		t.Errorf("board=%+v body=%v, expected a new layout on 20x20", s.Board, s.Body)
	}
	if _, ok := g.Tick(tk, epoch); ok {
		t.Error("ticket from before the resize should be stale")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 3, nil)
	g.rules.hasFood = false
	tk := start(t, g, core.CommandStart)
	for g.State().Running() {
		tk, _ = g.Tick(tk, epoch)
	}

	if _, ok := g.Input(core.CommandUp, epoch); ok {
		t.Error("directions should not leave the ended phase")
	}
	tk, ok := g.Input(core.CommandRestart, epoch)
	if !ok {
		t.Fatal("restart should start a new session")
	}
	s := g.Snapshot()
	if s.Phase != core.PhaseRunning || s.Score != 0 || s.Head() != (core.Cell{Col: 5, Row: 4}) {
		t.Errorf("restart state = %+v", s)
	}
	if tk.Delay != 120*time.Millisecond {
		t.Errorf("restart delay = %v, expected 120ms", tk.Delay)
	}
}

func TestScoreReporting(t *testing.T) {
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
			g := New()
			err := g.setup(config.DefaultSnakeConfig(), core.RuntimeConfig{
				ScreenW: 20, ScreenH: 9, Seed: 1, UserID: tc.user, Scores: sink,
			})
			if err != nil {
				t.Fatal(err)
			}
			placeFood(g, core.Cell{Col: 6, Row: 4}, spawn.FoodBonus)

			tk := start(t, g, core.CommandStart)
			for g.State().Running() {
				g.rules.hasFood = g.rules.hasFood && g.State().Score == 0
				tk, _ = g.Tick(tk, epoch)
			}

			if len(sink.calls) != tc.calls {
				t.Fatalf("reports = %d, expected %d", len(sink.calls), tc.calls)
			}
			if tc.calls == 1 && sink.calls[0] != (sinkCall{"Snake", 3, "ann"}) {
				t.Errorf("report = %+v, expected Snake/3/ann", sink.calls[0])
			}
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1, nil)

	g.Render(core.NewScreen(0, 0))

	screen := core.NewScreen(20, 9)
	g.Render(screen)
	if !strings.Contains(screen.String(), "SNAKE") {
		t.Error("idle frame should show the title overlay")
	}

	g.rules.hasFood = false
	tk := start(t, g, core.CommandStart)
	step(t, g, tk)
	screen.Clear()
	g.Render(screen)
	if got := screen.Get(6*2, 1+4); got != '█' {
		t.Errorf("head cell = %q, expected a filled block", got)
	}
	if !strings.HasPrefix(screen.Row(0), "SNAKE  Score: 0") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}

func TestResetRejectsUnknownDifficulty(t *testing.T) {
	g := New()
	if err := g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 9, Difficulty: "nightmare"}); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
