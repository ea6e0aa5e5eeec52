package eightball

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec2 is a pair of IEEE-754 doubles representing a point or a free vector
// in the plane. It is a pure value type: every operation returns a new
// Vec2 rather than mutating a receiver.
type Vec2 struct {
	X, Y float64
}

// Origin is the zero vector.
var Origin = Vec2{}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v / s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Dot returns the inner product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// CrossSquared returns (v_x*other_y - v_y*other_x)^2, the square of the
// scalar (2-D) cross product. Squaring sidesteps a sign convention that
// the collision kernel never needs to resolve.
func (v Vec2) CrossSquared(other Vec2) float64 {
	c := v.X*other.Y - v.Y*other.X
	return c * c
}

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Magnitude returns the Euclidean norm of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The caller is responsible for
// ensuring v is non-zero; dividing by a zero magnitude yields {NaN, NaN}.
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Magnitude())
}

// EqualWithinULP reports whether a and b are equal to within n units in
// the last place, per gonum's bit-pattern-distance definition.
func EqualWithinULP(a, b float64, n uint) bool {
	return floats.EqualWithinULP(a, b, n)
}

// Equal reports whether v and other are equal to within n ULP,
// componentwise.
func (v Vec2) Equal(other Vec2, n uint) bool {
	return EqualWithinULP(v.X, other.X, n) && EqualWithinULP(v.Y, other.Y, n)
}

// BitwiseEqual reports exact (bit-for-bit) equality, the freshness test
// a scheduled event's witness velocity must pass against live state.
func (v Vec2) BitwiseEqual(other Vec2) bool {
	return math.Float64bits(v.X) == math.Float64bits(other.X) &&
		math.Float64bits(v.Y) == math.Float64bits(other.Y)
}
