package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Frames per second for continuous games (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	UserID     string // Reporting identity; empty means anonymous
	ConfigPath string // Custom game config YAML, empty for the search path
	Difficulty string // Difficulty preset name, empty for the config default

	// Scores receives the final score of every ended session played by an
	// identified user. May be nil.
	Scores ScoreSink
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ScoreSink accepts finalized scores. Implementations must not block the caller.
type ScoreSink interface {
	Submit(gameName string, score int, userID string)
}

// Phase is the macro state of a game session.
type Phase int

const (
	PhaseIdle    Phase = iota // waiting for a start command
	PhaseRunning              // simulating
	PhaseEnded                // game over, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase Phase
	Score int
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseEnded
}

// Running reports whether the session is simulating.
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning
}
