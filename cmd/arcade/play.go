package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move (snake: steer, shooter: up/down)
  Space        - Fire (restart after game over)
  Enter/Click  - Start
  Mouse drag   - Swipe to steer
  R            - Restart (after game over)
  Esc/B        - Leave (when not running)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start and gentler ramp
  normal - Config defaults
  hard   - Faster start and steeper ramp
  fixed  - No speed-up with score

Examples:
  arcade play shooter
  arcade play snake --difficulty easy
  arcade play snake --config ./my-snake.yaml
  arcade play shooter --user ann --report-url https://scores.example.com/api`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+presetNames())
}

func presetNames() string {
	s := ""
	for i, p := range config.Presets() {
		if i > 0 {
			s += ", "
		}
		s += string(p)
	}
	return s
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	a, err := newApp("arcade", false)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.runtimeConfig()
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty

	a.logger.Info("starting game", "game", gameID, "user", cfg.UserID, "difficulty", cfg.Difficulty)
	if err := tui.Run(game, a.store, cfg, a.logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
