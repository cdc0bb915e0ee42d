package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// The shooter has no score ramp, so fixed behaves like normal.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hostiles.SpawnEveryMS = 1200
		cfg.Hostiles.MaxSpeed = 4
	case DifficultyHard:
		cfg.Hostiles.SpawnEveryMS = 650
		cfg.Hostiles.MinSpeed = 3
		cfg.Hostiles.MaxSpeed = 6
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseMS = 150
		cfg.Speed.PerPointMS = 3
	case DifficultyHard:
		cfg.Speed.BaseMS = 100
		cfg.Speed.FloorMS = 40
		cfg.Speed.PerPointMS = 5
	case DifficultyFixed:
		cfg.Speed.PerPointMS = 0
	}
}
