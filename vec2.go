package ik

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane. Positions are represented by [Point].
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Mag returns the magnitude of the vector.
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// Mag2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Mag].
func (v Vec2) Mag2() float64 {
	return v.Dot(v)
}

// Heading returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x) and lies in (−π, π].
//
// The zero vector has a heading of 0, whatever the signs of its zeros.
func (v Vec2) Heading() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
//
// Thus, in a y-down coordinate system (as is common for graphics),
// it is a clockwise rotation, and in y-up (traditional for math), it
// is anti-clockwise.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// SetMag rescales v in place to magnitude mag, keeping its heading, and
// returns v. A zero vector has a heading of 0 and becomes ⟨mag, 0⟩.
func (v *Vec2) SetMag(mag float64) *Vec2 {
	y, x := math.Sincos(v.Heading())
	v.X = x * mag
	v.Y = y * mag
	return v
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}
