package spawn

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// FoodKind is the type of a collectible.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodBonus
	FoodSlow
)

// String returns the config name of the kind.
func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "normal"
	case FoodBonus:
		return "bonus"
	case FoodSlow:
		return "slow"
	default:
		return "unknown"
	}
}

// ParseFoodKind converts a config name into a FoodKind.
func ParseFoodKind(s string) (FoodKind, error) {
	switch s {
	case "normal":
		return FoodNormal, nil
	case "bonus":
		return FoodBonus, nil
	case "slow":
		return FoodSlow, nil
	}
	return FoodNormal, fmt.Errorf("spawn: unknown food kind %q", s)
}

// Food is the single active collectible on the grid.
type Food struct {
	Cell core.Cell
	Kind FoodKind
}

// Weight is one row of a FoodTable.
type Weight struct {
	Kind FoodKind
	P    float64
}

// FoodTable is a cumulative-probability table. Rows are walked in order
// against a single uniform sample, so the weights are slices of [0, 1), not
// independent events.
type FoodTable []Weight

// DefaultFoodTable returns Normal 84%, Slow 8%, Bonus 8%.
func DefaultFoodTable() FoodTable {
	return FoodTable{
		{Kind: FoodNormal, P: 0.84},
		{Kind: FoodSlow, P: 0.08},
		{Kind: FoodBonus, P: 0.08},
	}
}

// Pick maps a uniform sample u in [0, 1) to a kind. A sample equal to a
// cumulative threshold belongs to the row below it.
// Samples beyond the table total fall to the last row.
func (t FoodTable) Pick(u float64) FoodKind {
	if len(t) == 0 {
		return FoodNormal
	}
	acc := 0.0
	for _, w := range t {
		acc = roundWeight(acc + w.P)
		if u <= acc {
			return w.Kind
		}
	}
	return t[len(t)-1].Kind
}

// roundWeight drops float noise from a running sum, so 0.84+0.08 is 0.92.
func roundWeight(p float64) float64 {
	return math.Round(p*1e9) / 1e9
}

// Total returns the sum of all weights.
func (t FoodTable) Total() float64 {
	sum := 0.0
	for _, w := range t {
		sum += w.P
	}
	return sum
}

// NewFood draws a kind from the table, then a uniformly random cell among the
// cells of a cols x rows board that blocked rejects. ok is false when every
// cell is blocked.
func NewFood(src Source, cols, rows int, table FoodTable, blocked func(core.Cell) bool) (Food, bool) {
	kind := table.Pick(src.Float64())

	free := make([]core.Cell, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := core.Cell{Col: col, Row: row}
			if blocked == nil || !blocked(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Food{Cell: core.Cell{Col: -1, Row: -1}, Kind: kind}, false
	}

	return Food{Cell: free[src.Intn(len(free))], Kind: kind}, true
}
