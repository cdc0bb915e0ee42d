// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec is a 2D vector in world units (pixels for the shooter, cells for the grid).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Inflate grows the rectangle by pad on every side.
func (r Rect) Inflate(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether a and b intersect once both are widened by pad.
// Touching edges count as overlap. The result is symmetric in a and b.
func Overlaps(a, b Rect, pad float64) bool {
	a = a.Inflate(pad)
	b = b.Inflate(pad)

	// No overlap if one rect is completely to the left, right, above, or below
	if a.Right() < b.X || a.X > b.Right() {
		return false
	}
	if a.Bottom() < b.Y || a.Y > b.Bottom() {
		return false
	}
	return true
}

// Board holds the playfield dimensions: columns/rows for the grid game,
// world pixels for the shooter.
type Board struct {
	W, H int
}

// Cell is a discrete grid coordinate.
type Cell struct {
	Col, Row int
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Dir) Cell {
	return Cell{Col: c.Col + d.X, Row: c.Row + d.Y}
}

// In reports whether the cell lies inside a cols x rows board.
func (c Cell) In(cols, rows int) bool {
	return c.Col >= 0 && c.Col < cols && c.Row >= 0 && c.Row < rows
}

// Wrap folds the cell back onto a cols x rows torus.
func (c Cell) Wrap(cols, rows int) Cell {
	return Cell{Col: mod(c.Col, cols), Row: mod(c.Row, rows)}
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	return ((a % n) + n) % n
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
