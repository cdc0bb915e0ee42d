package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		phase core.Phase
		want  core.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.PhaseRunning, core.CommandUp},
		{"w", runeKey('w'), core.PhaseRunning, core.CommandUp},
		{"s", runeKey('s'), core.PhaseRunning, core.CommandDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.PhaseRunning, core.CommandLeft},
		{"d", runeKey('d'), core.PhaseIdle, core.CommandRight},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace}, core.PhaseRunning, core.CommandFire},
		{"space in idle", tea.KeyMsg{Type: tea.KeySpace}, core.PhaseIdle, core.CommandFire},
		{"space restarts after game over", tea.KeyMsg{Type: tea.KeySpace}, core.PhaseEnded, core.CommandRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.PhaseIdle, core.CommandStart},
		{"r", runeKey('r'), core.PhaseEnded, core.CommandRestart},
		{"unbound", runeKey('x'), core.PhaseRunning, core.CommandNone},
		{"quit is not a command", runeKey('q'), core.PhaseRunning, core.CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Command(tc.msg, tc.phase); got != tc.want {
				t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name         string
		fromX, fromY int
		toX, toY     int
		phase        core.Phase
		want         core.Command
	}{
		{"drag right", 10, 5, 16, 5, core.PhaseRunning, core.CommandRight},
		{"drag left", 10, 5, 4, 6, core.PhaseRunning, core.CommandLeft},
		{"drag down", 10, 5, 11, 8, core.PhaseRunning, core.CommandDown},
		{"drag up", 10, 5, 10, 2, core.PhaseRunning, core.CommandUp},
		{"short horizontal drag is a click", 10, 5, 13, 5, core.PhaseIdle, core.CommandStart},
		{"click", 10, 5, 10, 5, core.PhaseIdle, core.CommandStart},
		{"click after game over", 10, 5, 10, 5, core.PhaseEnded, core.CommandRestart},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s Swipe
			if got := s.Handle(mouse(tea.MouseActionPress, tc.fromX, tc.fromY), tc.phase); got != core.CommandNone {
				t.Fatalf("press produced %v", got)
			}
			if got := s.Handle(mouse(tea.MouseActionRelease, tc.toX, tc.toY), tc.phase); got != tc.want {
				t.Errorf("release = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSwipeReleaseWithoutPress(t *testing.T) {
	var s Swipe
	if got := s.Handle(mouse(tea.MouseActionRelease, 3, 3), core.PhaseIdle); got != core.CommandNone {
		t.Errorf("stray release = %v, expected None", got)
	}
}
