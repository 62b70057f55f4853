// Package core provides fundamental types and utilities shared by the simulation
// and the terminal host. It contains no external dependencies (especially no
// Bubble Tea) to keep simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// AngleTo returns the angle in radians of the direction from a to b.
func AngleTo(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// FromAngle returns a vector of the given length pointing at angle (radians).
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Bounds is an axis-aligned world rectangle with float coordinates.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBounds returns the rectangle [0,w] x [0,h] shrunk by margin on every side.
func NewBounds(w, h, margin float64) Bounds {
	return Bounds{MinX: margin, MinY: margin, MaxX: w - margin, MaxY: h - margin}
}

// Clamp restricts p to lie inside the bounds.
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{X: ClampF(p.X, b.MinX, b.MaxX), Y: ClampF(p.Y, b.MinY, b.MaxY)}
}

// ContainsOpen reports whether p is strictly inside the bounds.
func (b Bounds) ContainsOpen(p Vec2) bool {
	return p.X > b.MinX && p.X < b.MaxX && p.Y > b.MinY && p.Y < b.MaxY
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
