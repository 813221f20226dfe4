// Package geom provides the small 2D vector and rectangle types shared by the
// map-space, world-space and screen-space code.
package geom

import (
	"fmt"
	"math"
)

// Vec2 is a 2D point or size in float64 space
type Vec2 struct {
	X, Y float64
}

// Zero is the origin
var Zero = Vec2{}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies componentwise
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Neg returns -v
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Half returns v * 0.5
func (v Vec2) Half() Vec2 {
	return v.Scale(0.5)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ApproxEqual compares componentwise within eps
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// String formats the vector the way the debug log prints it
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Clamp clamps val into [lo, hi]
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampInt clamps val into [lo, hi]
func ClampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
