package ik

import "math"

// Circle is a disc around Center. Joints render as circles, and every FABRIK
// step projects a joint onto the circle of radius linkSize around its
// neighbor.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies within the circle, including its boundary.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Mag2() <= c.Radius*c.Radius
}

// Project returns the point on the circle's perimeter that lies on the ray
// from the center through pt. See [ConstrainDistance].
func (c Circle) Project(pt Point) Point {
	return ConstrainDistance(pt, c.Center, c.Radius)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}
