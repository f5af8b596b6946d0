package ik

// Line represents a line segment. A chain's links are lines between adjacent
// joints.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Mag()
}

// Heading returns the heading of the direction from P0 to P1.
func (l Line) Heading() float64 {
	return l.P1.Sub(l.P0).Heading()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the point on the segment closest to pt and its squared
// distance from pt.
func (l Line) Nearest(pt Point) (Point, float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return l.P0, pt.Sub(l.P0).Mag2()
	} else if dotp >= dSquared {
		return l.P1, pt.Sub(l.P1).Mag2()
	} else {
		near := l.Eval(dotp / dSquared)
		return near, pt.Sub(near).Mag2()
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}
