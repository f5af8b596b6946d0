package render

import (
	"image/color"
	"math"

	"honnef.co/go/ik"
)

// Cell is one character cell of a Grid.
type Cell struct {
	Filled bool
	Color  color.Color
}

// Grid is a Canvas that rasterizes into a buffer of character cells.
//
// Drawing happens in world coordinates; the view transform maps world
// coordinates to cell coordinates, where cell (x, y) covers [x, x+1) × [y, y+1).
// A cell is filled when its center, mapped back into the world, is covered
// by a shape. Shapes thinner than a cell are widened to half a cell so that
// they stay visible.
type Grid struct {
	w, h  int
	view  ik.Affine
	inv   ik.Affine
	bg    color.Color
	cells []Cell
}

// Fit returns a view transform that stretches world over a grid of
// cols × rows cells.
func Fit(world ik.Rect, cols, rows int) ik.Affine {
	world = world.Abs()
	return ik.Translate(ik.Vec(-world.X0, -world.Y0)).
		ThenScale(float64(cols)/world.Width(), float64(rows)/world.Height())
}

// NewGrid returns a w × h grid cleared to black.
func NewGrid(w, h int, view ik.Affine) *Grid {
	g := &Grid{}
	g.Resize(w, h, view)
	return g
}

// Resize changes the grid's size and view transform and clears it.
func (g *Grid) Resize(w, h int, view ik.Affine) {
	w = max(w, 0)
	h = max(h, 0)
	g.w, g.h = w, h
	g.view = view
	g.inv = view.Invert()
	if cap(g.cells) >= w*h {
		g.cells = g.cells[:w*h]
	} else {
		g.cells = make([]Cell, w*h)
	}
	if g.bg == nil {
		g.bg = color.Black
	}
	g.Clear(g.bg)
}

func (g *Grid) Size() (int, int) { return g.w, g.h }

func (g *Grid) View() ik.Affine { return g.view }

func (g *Grid) Background() color.Color { return g.bg }

// Clear empties every cell and sets the background color.
func (g *Grid) Clear(bg color.Color) {
	g.bg = bg
	for i := range g.cells {
		g.cells[i] = Cell{Color: bg}
	}
}

// Cell returns the cell at (x, y). Cells outside the grid are empty.
func (g *Grid) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return Cell{Color: g.bg}
	}
	return g.cells[y*g.w+x]
}

func (g *Grid) set(x, y int, clr color.Color) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = Cell{Filled: true, Color: clr}
}

// halfCell returns half the larger world-space extent of a cell.
func (g *Grid) halfCell() float64 {
	ux := ik.Vec(g.inv.N0, g.inv.N1).Mag()
	uy := ik.Vec(g.inv.N2, g.inv.N3).Mag()
	return max(ux, uy) / 2
}

// cover calls fn with the world-space center of every cell whose center
// might lie in the world-space rectangle r.
func (g *Grid) cover(r ik.Rect, fn func(x, y int, center ik.Point)) {
	box := g.view.TransformRectBoundingBox(r)
	// clamp before converting, huge coordinates overflow int
	box = ik.Rect{
		X0: clamp(box.X0, 0, float64(g.w)),
		Y0: clamp(box.Y0, 0, float64(g.h)),
		X1: clamp(box.X1, 0, float64(g.w)),
		Y1: clamp(box.Y1, 0, float64(g.h)),
	}
	x0 := int(math.Floor(box.X0))
	y0 := int(math.Floor(box.Y0))
	x1 := min(int(math.Ceil(box.X1)), g.w-1)
	y1 := min(int(math.Ceil(box.Y1)), g.h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(x, y, ik.Pt(float64(x)+0.5, float64(y)+0.5).Transform(g.inv))
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// mark fills the cell containing the world-space point pt.
func (g *Grid) mark(pt ik.Point, clr color.Color) {
	c := pt.Transform(g.view)
	g.set(int(math.Floor(c.X)), int(math.Floor(c.Y)), clr)
}

func (g *Grid) StrokeLine(l ik.Line, width float64, clr color.Color) {
	if l.IsNaN() || l.IsInf() || g.w == 0 || g.h == 0 {
		return
	}
	r := max(width/2, g.halfCell())
	g.cover(l.BoundingBox().Inflate(r, r), func(x, y int, center ik.Point) {
		if _, distSq := l.Nearest(center); distSq <= r*r {
			g.set(x, y, clr)
		}
	})
	g.mark(l.P0, clr)
	g.mark(l.P1, clr)
}

func (g *Grid) FillCircle(c ik.Circle, clr color.Color) {
	if c.IsNaN() || c.IsInf() || g.w == 0 || g.h == 0 {
		return
	}
	disc := ik.Circle{Center: c.Center, Radius: max(math.Abs(c.Radius), g.halfCell())}
	g.cover(disc.BoundingBox(), func(x, y int, center ik.Point) {
		if disc.Contains(center) {
			g.set(x, y, clr)
		}
	})
	g.mark(c.Center, clr)
}
