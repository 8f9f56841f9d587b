package physics

import "math"

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing at the given angle in radians.
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos, Y: sin}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns the squared magnitude of v.
// Use this when comparing distances to avoid the sqrt cost.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns v scaled to unit length.
// A zero vector normalizes to the zero vector, never NaN.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate returns o rotated by the angle of v, where v is treated as
// a unit rotation (cos, sin). Equivalent to complex multiplication.
func (v Vec2) Rotate(o Vec2) Vec2 {
	return Vec2{
		X: v.X*o.X - v.Y*o.Y,
		Y: v.Y*o.X + v.X*o.Y,
	}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
