// Package core provides fundamental types shared by the sprite packages:
// integer geometry in pixel space, a character screen buffer and the runtime
// configuration passed to terminal front-ends. It has no external
// dependencies so the parsing and playback code stays pure and testable.
package core

import "fmt"

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle in pixels, top-left origin.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// String formats the rectangle as "(x,y wxh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Sub returns the componentwise difference s - other.
func (s Size) Sub(other Size) Size {
	return Size{W: s.W - other.W, H: s.H - other.H}
}

// String formats the size as "wxh".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
