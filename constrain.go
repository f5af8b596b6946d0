package ik

import "math"

// NormalizeAngle reduces th into the half-open interval (−π, π].
//
// The reduction is exact and takes constant time for any finite input. −π
// maps to π. NaN and infinities yield NaN.
func NormalizeAngle(th float64) float64 {
	// Remainder returns a value in [−π, π].
	r := math.Remainder(th, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// AngleDiff returns the signed difference a − b along the shortest way
// around the circle, in (−π, π].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(a - b)
}

// ConstrainAngle keeps angle within maxDiff radians of targetAngle.
//
// If the shortest difference between angle and targetAngle exceeds maxDiff,
// the result is targetAngle rotated by maxDiff toward angle. Otherwise angle
// is returned as given, without being normalized. A maxDiff of π or more
// never constrains anything.
func ConstrainAngle(angle, targetAngle, maxDiff float64) float64 {
	diff := AngleDiff(angle, targetAngle)
	if math.Abs(diff) > maxDiff {
		return targetAngle + math.Copysign(maxDiff, diff)
	}
	return angle
}

// ConstrainDistance returns the point on the ray from anchor through point
// that lies exactly distance away from anchor.
//
// When point and anchor coincide the direction is undefined and anchor is
// returned.
func ConstrainDistance(point, anchor Point, distance float64) Point {
	d := point.Sub(anchor)
	mag := d.Mag()
	if mag == 0 {
		return anchor
	}
	return anchor.Translate(d.Div(mag).Mul(distance))
}
