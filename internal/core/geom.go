// Package core provides fundamental types and utilities shared by the runner
// simulation and its adapters. It contains no terminal or window dependencies
// so game logic stays pure and testable.
package core

// Rect is an integer rectangle in screen cells, used by the terminal renderer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned box in world units (pixels of the virtual viewport).
// Y grows downward, matching screen conventions.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and other intersect on both axes.
// Touching edges count as overlap.
func (r RectF) Overlaps(other RectF) bool {
	return Overlaps(r, other)
}

// Overlaps reports whether a and b intersect on both axes. The comparisons are
// inclusive, so boxes that share an edge or a corner overlap.
func Overlaps(a, b RectF) bool {
	if a.Right() < b.X || a.X > b.Right() {
		return false
	}
	if a.Bottom() < b.Y || a.Y > b.Bottom() {
		return false
	}
	return true
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
