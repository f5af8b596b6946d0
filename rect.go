package ik

// Rect is an axis-aligned rectangle. Canvases use it to bound the cells a
// link or joint can touch.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r but with
// non-negative width and height.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contains reports whether pt lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Inflate returns a new rectangle with width added to the left and right edges and
// height added to the top and bottom edges.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}
