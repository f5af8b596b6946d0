// Package render draws chains onto a Canvas.
package render

import (
	"image/color"

	"honnef.co/go/ik"
)

// Canvas is a drawing surface in world coordinates.
type Canvas interface {
	// StrokeLine strokes l with round caps.
	StrokeLine(l ik.Line, width float64, clr color.Color)
	FillCircle(c ik.Circle, clr color.Color)
}

type Style struct {
	LinkWidth   float64
	JointRadius float64
	LinkColor   color.Color
	JointColor  color.Color
}

// DefaultStyle draws white links 8 wide and green joints of radius 16.
var DefaultStyle = Style{
	LinkWidth:   8,
	JointRadius: 16,
	LinkColor:   color.White,
	JointColor:  color.RGBA{0x16, 0x70, 0x3d, 0xff},
}

// DrawChain strokes every link of c and then fills every joint, both in joint
// order, so that joints are drawn on top of links. It does not modify c.
func DrawChain(cv Canvas, c *ik.Chain, st Style) {
	for l := range c.Links() {
		cv.StrokeLine(l, st.LinkWidth, st.LinkColor)
	}
	for _, pt := range c.All() {
		cv.FillCircle(ik.Circle{Center: pt, Radius: st.JointRadius}, st.JointColor)
	}
}
