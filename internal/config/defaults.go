package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultShooterConfig returns the default Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: ShooterWorld{
			ColPx:        8,
			RowPx:        16,
			HUDRows:      1,
			CullMargin:   50,
			CollisionPad: 0,
		},
		Player: ShooterPlayer{
			X:         40,
			Width:     22,
			Height:    22,
			Step:      18,
			TopMargin: 4,
		},
		Projectile: ShooterProjectile{
			Width:  8,
			Height: 8,
			Speed:  8,
			Offset: 4,
		},
		Hostiles: ShooterHostiles{
			MinSize:      22,
			MaxSize:      40,
			MinSpeed:     2,
			MaxSpeed:     5,
			EdgeOffset:   10,
			TopMargin:    8,
			HP:           1,
			SpawnEveryMS: 900,
		},
		Effects: BurstConfig{
			Count:   10,
			Speed:   4,
			Scale:   1,
			MinLife: 40,
			MaxLife: 69,
			Gravity: 0.12,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			MinCols:  10,
			MinRows:  8,
			HUDRows:  1,
			CellCols: 2, // terminal cells are about twice as tall as wide
			Boundary: BoundaryLethal,
		},
		Speed: SnakeSpeed{
			BaseMS:        120,
			FloorMS:       50,
			PerPointMS:    4,
			SlowPenaltyMS: 60,
			SlowWindowMS:  3000,
		},
		Food: SnakeFood{
			Weights: []FoodWeight{
				{Kind: "normal", P: 0.84},
				{Kind: "slow", P: 0.08},
				{Kind: "bonus", P: 0.08},
			},
			Points: map[string]int{
				"normal": 1,
				"bonus":  3,
				"slow":   1,
			},
		},
		Effects: BurstConfig{
			Count:   10,
			Speed:   4,
			Scale:   28, // source pixels per grid cell
			MinLife: 40,
			MaxLife: 69,
			Gravity: 0.12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
