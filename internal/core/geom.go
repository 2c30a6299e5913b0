// Package core provides fundamental types and utilities shared by the game and
// its host. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

// Vec is a 2D vector in scene units. Scene space is y-up with the origin at the
// bottom-left corner, matching the physics collaborator.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned rectangle in scene space described by its center and size.
// Scene nodes are positioned by their center, so this is the natural form for
// bodies and bars.
type Box struct {
	Center Vec
	Size   Vec
}

// NewBox creates a box centered at (cx, cy) with the given dimensions.
func NewBox(cx, cy, w, h float64) Box {
	return Box{Center: Vec{X: cx, Y: cy}, Size: Vec{X: w, Y: h}}
}

// MinX returns the left edge.
func (b Box) MinX() float64 { return b.Center.X - b.Size.X/2 }

// MaxX returns the right edge.
func (b Box) MaxX() float64 { return b.Center.X + b.Size.X/2 }

// MinY returns the bottom edge.
func (b Box) MinY() float64 { return b.Center.Y - b.Size.Y/2 }

// MaxY returns the top edge.
func (b Box) MaxY() float64 { return b.Center.Y + b.Size.Y/2 }

// Intersects returns true if the two boxes overlap with non-zero area.
// Boxes that merely share an edge do not intersect; the physics edge loop
// applies the same rule to the scene boundary.
func (b Box) Intersects(other Box) bool {
	if b.MinX() >= other.MaxX() || other.MinX() >= b.MaxX() {
		return false
	}
	if b.MinY() >= other.MaxY() || other.MinY() >= b.MaxY() {
		return false
	}
	return true
}

// Rect represents an axis-aligned rectangle in screen cells (y-down).
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
