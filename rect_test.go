package ik

import (
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 2), Pt(4, 8))
	diff(t, Rect{4, 2, 10, 8}, r)
	if w, h := r.Width(), r.Height(); w != 6 || h != 6 {
		t.Errorf("got size %vx%v, want 6x6", w, h)
	}
	if !r.Contains(Pt(4, 2)) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(Pt(10, 5)) {
		t.Error("right edge should be exclusive")
	}
}

func TestRectUnionInflate(t *testing.T) {
	a := Rect{0, 0, 2, 2}
	b := Rect{5, -1, 6, 1}
	diff(t, Rect{0, -1, 6, 2}, a.Union(b))
	diff(t, Rect{-1, -0.5, 3, 2.5}, a.Inflate(1, 0.5))
}
