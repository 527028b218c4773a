// Package core provides fundamental types and utilities shared by the simulation
// and the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world units.
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

// Overlaps reports whether the two boxes share a region of strictly positive
// area. Boxes that only touch along an edge or a corner do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() &&
		other.X < r.Right() &&
		r.Y < other.Bottom() &&
		other.Y < r.Bottom()
}

// Inset returns the rectangle shrunk by d on every side.
// The result never has negative dimensions.
func (r Rect) Inset(d float64) Rect {
	w := r.W - 2*d
	h := r.H - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + d, Y: r.Y + d, W: w, H: h}
}

// WithinSpan reports whether the horizontal extent of r lies inside [lo, hi].
func (r Rect) WithinSpan(lo, hi float64) bool {
	return r.X >= lo && r.Right() <= hi
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
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
