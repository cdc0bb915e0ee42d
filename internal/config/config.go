// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/spawn"
)

// Boundary modes for the snake board edge.
const (
	BoundaryLethal = "lethal"
	BoundaryWrap   = "wrap"
)

// ShooterConfig contains all configuration for the Shooter game.
// Distances are world pixels; speeds are pixels per tick.
type ShooterConfig struct {
	World      ShooterWorld      `yaml:"world"`
	Player     ShooterPlayer     `yaml:"player"`
	Projectile ShooterProjectile `yaml:"projectile"`
	Hostiles   ShooterHostiles   `yaml:"hostiles"`
	Effects    BurstConfig       `yaml:"effects"`
}

// ShooterWorld maps the terminal grid onto the pixel world.
type ShooterWorld struct {
	ColPx        int     `yaml:"col_px"`        // world pixels per terminal column
	RowPx        int     `yaml:"row_px"`        // world pixels per terminal row
	HUDRows      int     `yaml:"hud_rows"`      // rows reserved for the score line
	CullMargin   float64 `yaml:"cull_margin"`   // distance past the edge before removal
	CollisionPad float64 `yaml:"collision_pad"` // padding added to both boxes
}

// ShooterPlayer defines the player ship.
type ShooterPlayer struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Step      float64 `yaml:"step"`       // vertical move per key press
	TopMargin float64 `yaml:"top_margin"` // closest the ship gets to the top edge
}

// ShooterProjectile defines the player's shots.
type ShooterProjectile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Offset float64 `yaml:"offset"` // gap between the ship's nose and a new shot
}

// ShooterHostiles defines enemy spawning.
type ShooterHostiles struct {
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	EdgeOffset   float64 `yaml:"edge_offset"`
	TopMargin    float64 `yaml:"top_margin"`
	HP           int     `yaml:"hp"`
	SpawnEveryMS int     `yaml:"spawn_every_ms"`
}

// SpawnEvery returns the spawn interval.
func (h ShooterHostiles) SpawnEvery() time.Duration {
	return time.Duration(h.SpawnEveryMS) * time.Millisecond
}

// Spec converts the config into spawner bounds.
func (h ShooterHostiles) Spec() spawn.HostileSpec {
	return spawn.HostileSpec{
		MinSize:    h.MinSize,
		MaxSize:    h.MaxSize,
		MinSpeed:   h.MinSpeed,
		MaxSpeed:   h.MaxSpeed,
		EdgeOffset: h.EdgeOffset,
		TopMargin:  h.TopMargin,
		HP:         h.HP,
	}
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board   SnakeBoard  `yaml:"board"`
	Speed   SnakeSpeed  `yaml:"speed"`
	Food    SnakeFood   `yaml:"food"`
	Effects BurstConfig `yaml:"effects"`
}

// SnakeBoard defines the grid.
type SnakeBoard struct {
	MinCols  int    `yaml:"min_cols"`
	MinRows  int    `yaml:"min_rows"`
	HUDRows  int    `yaml:"hud_rows"`
	CellCols int    `yaml:"cell_cols"` // terminal columns per grid cell
	Boundary string `yaml:"boundary"`  // "lethal" or "wrap"
}

// SnakeSpeed defines the step cadence in milliseconds.
type SnakeSpeed struct {
	BaseMS        int `yaml:"base_ms"`
	FloorMS       int `yaml:"floor_ms"`
	PerPointMS    int `yaml:"per_point_ms"`
	SlowPenaltyMS int `yaml:"slow_penalty_ms"`
	SlowWindowMS  int `yaml:"slow_window_ms"`
}

// SnakeFood defines collectible kinds and their rewards.
type SnakeFood struct {
	Weights []FoodWeight   `yaml:"weights"` // cumulative table, order matters
	Points  map[string]int `yaml:"points"`
}

// FoodWeight is one row of the food probability table.
type FoodWeight struct {
	Kind string  `yaml:"kind"`
	P    float64 `yaml:"p"`
}

// Table converts the weights into a spawner table.
func (f SnakeFood) Table() (spawn.FoodTable, error) {
	table := make(spawn.FoodTable, 0, len(f.Weights))
	for _, w := range f.Weights {
		kind, err := spawn.ParseFoodKind(w.Kind)
		if err != nil {
			return nil, fmt.Errorf("config: food weights: %w", err)
		}
		table = append(table, spawn.Weight{Kind: kind, P: w.P})
	}
	return table, nil
}

// PointsFor returns the score awarded for a kind. Unlisted kinds are worth 1.
func (f SnakeFood) PointsFor(kind spawn.FoodKind) int {
	if p, ok := f.Points[kind.String()]; ok {
		return p
	}
	return 1
}

// BurstConfig defines the particle burst played on a kill or a meal.
type BurstConfig struct {
	Count   int     `yaml:"count"`
	Speed   float64 `yaml:"speed"`
	Scale   float64 `yaml:"scale"` // source pixels per world unit
	MinLife int     `yaml:"min_life"`
	MaxLife int     `yaml:"max_life"`
	Gravity float64 `yaml:"gravity"` // source pixels per tick squared
}

// WorldGravity returns the gravity in world units.
func (b BurstConfig) WorldGravity() float64 {
	if b.Scale <= 0 {
		return b.Gravity
	}
	return b.Gravity / b.Scale
}

// Spec converts the config into spawner parameters.
func (b BurstConfig) Spec() spawn.BurstSpec {
	return spawn.BurstSpec{
		Count:   b.Count,
		Speed:   b.Speed,
		Scale:   b.Scale,
		MinLife: b.MinLife,
		MaxLife: b.MaxLife,
	}
}

// Validate rejects configurations the shooter cannot run with.
func (c ShooterConfig) Validate() error {
	var errs []error
	if c.World.ColPx <= 0 || c.World.RowPx <= 0 {
		errs = append(errs, errors.New("world.col_px and world.row_px must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Projectile.Speed <= 0 {
		errs = append(errs, errors.New("projectile.speed must be positive"))
	}
	if c.Hostiles.MinSize <= 0 || c.Hostiles.MaxSize < c.Hostiles.MinSize {
		errs = append(errs, errors.New("hostiles size range is invalid"))
	}
	if c.Hostiles.MinSpeed <= 0 || c.Hostiles.MaxSpeed < c.Hostiles.MinSpeed {
		errs = append(errs, errors.New("hostiles speed range is invalid"))
	}
	if c.Hostiles.SpawnEveryMS <= 0 {
		errs = append(errs, errors.New("hostiles.spawn_every_ms must be positive"))
	}
	errs = append(errs, c.Effects.validate()...)
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: shooter: %w", err)
	}
	return nil
}

// Validate rejects configurations the snake cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Board.MinCols < 2 || c.Board.MinRows < 2 {
		errs = append(errs, errors.New("board minimum must be at least 2x2"))
	}
	if c.Board.CellCols <= 0 {
		errs = append(errs, errors.New("board.cell_cols must be positive"))
	}
	if c.Board.Boundary != BoundaryLethal && c.Board.Boundary != BoundaryWrap {
		errs = append(errs, fmt.Errorf("unknown boundary %q", c.Board.Boundary))
	}
	if c.Speed.BaseMS <= 0 || c.Speed.FloorMS <= 0 {
		errs = append(errs, errors.New("speed.base_ms and speed.floor_ms must be positive"))
	}
	if c.Speed.PerPointMS < 0 || c.Speed.SlowPenaltyMS < 0 || c.Speed.SlowWindowMS < 0 {
		errs = append(errs, errors.New("speed adjustments must not be negative"))
	}
	if len(c.Food.Weights) == 0 {
		errs = append(errs, errors.New("food.weights must not be empty"))
	}
	if _, err := c.Food.Table(); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, c.Effects.validate()...)
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: snake: %w", err)
	}
	return nil
}

func (b BurstConfig) validate() []error {
	var errs []error
	if b.Count < 0 {
		errs = append(errs, errors.New("effects.count must not be negative"))
	}
	if b.MaxLife < b.MinLife {
		errs = append(errs, errors.New("effects life range is invalid"))
	}
	return errs
}
