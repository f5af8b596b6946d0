package ik

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{-3 * math.Pi, math.Pi},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{2 * math.Pi, 0},
		{1.5 * math.Pi, -0.5 * math.Pi},
	}
	for _, tt := range tests {
		assertClose(t, NormalizeAngle(tt.in), tt.want, 1e-12)
	}

	// Far away from the principal range.
	for _, th := range []float64{1e6, -1e6, 12345.678, 1e15, -1e300} {
		got := NormalizeAngle(th)
		if got <= -math.Pi || got > math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v, outside (−π, π]", th, got)
		}
		if math.Abs(th) < 1e7 {
			assertClose(t, math.Sin(got), math.Sin(th), 1e-6)
			assertClose(t, math.Cos(got), math.Cos(th), 1e-6)
		}
	}

	if !math.IsNaN(NormalizeAngle(math.Inf(1))) {
		t.Error("NormalizeAngle(+Inf) should be NaN")
	}
}

func TestAngleDiff(t *testing.T) {
	assertClose(t, AngleDiff(0.1, -0.1), 0.2, 1e-12)
	assertClose(t, AngleDiff(math.Pi-0.1, -math.Pi+0.1), -0.2, 1e-12)
	assertClose(t, AngleDiff(-math.Pi+0.1, math.Pi-0.1), 0.2, 1e-12)
}

func TestConstrainAngle(t *testing.T) {
	// within bounds: returned unchanged, even when not normalized
	if got := ConstrainAngle(0.2, 0, 0.5); got != 0.2 {
		t.Errorf("got %v, want 0.2", got)
	}
	if got := ConstrainAngle(0.2+4*math.Pi, 0, 0.5); got != 0.2+4*math.Pi {
		t.Errorf("got %v, want %v", got, 0.2+4*math.Pi)
	}
	if got := ConstrainAngle(1, 1, 0); got != 1 {
		t.Errorf("got %v, want 1", got)
	}

	// clamped to the near edge of the cone
	assertClose(t, ConstrainAngle(1, 0, 0.5), 0.5, 0)
	assertClose(t, ConstrainAngle(-1, 0, 0.5), -0.5, 0)
	// wraps around instead of going the long way
	assertClose(t, ConstrainAngle(-math.Pi+0.1, math.Pi-0.5, 0.2), math.Pi-0.3, 1e-12)
	assertClose(t, ConstrainAngle(math.Pi-0.1, -math.Pi+0.5, 0.2), -math.Pi+0.3, 1e-12)
}

func TestConstrainAngleBound(t *testing.T) {
	for _, maxDiff := range []float64{0, 0.1, 1, math.Pi / 2, math.Pi, 2 * math.Pi} {
		for target := -7.0; target <= 7; target += 0.7 {
			for angle := -10.0; angle <= 10; angle += 0.3 {
				raw := AngleDiff(angle, target)
				got := ConstrainAngle(angle, target, maxDiff)
				if d := math.Abs(AngleDiff(got, target)); d > maxDiff+1e-9 {
					t.Fatalf("ConstrainAngle(%v, %v, %v) = %v, deviates by %v", angle, target, maxDiff, got, d)
				}
				if math.Abs(raw) <= maxDiff && got != angle {
					t.Fatalf("ConstrainAngle(%v, %v, %v) = %v, want angle unchanged", angle, target, maxDiff, got)
				}
			}
		}
	}
}

func TestConstrainDistance(t *testing.T) {
	anchor := Pt(3, -2)
	for _, pt := range []Point{
		Pt(10, 0),
		Pt(3, -2.0000001),
		Pt(-1000, 500),
		Pt(3.5, 1e6),
	} {
		for _, d := range []float64{0.5, 10, 1e4} {
			got := ConstrainDistance(pt, anchor, d)
			if got.IsNaN() || got.IsInf() {
				t.Fatalf("ConstrainDistance(%s, %s, %v) = %s", pt, anchor, d, got)
			}
			assertClose(t, got.Distance(anchor), d, 1e-9*d)
			// same direction as the original offset
			want := pt.Sub(anchor)
			have := got.Sub(anchor)
			if have.Dot(want) <= 0 {
				t.Errorf("ConstrainDistance(%s, %s, %v) = %s, not on the ray", pt, anchor, d, got)
			}
			assertClose(t, AngleDiff(have.Heading(), want.Heading()), 0, 1e-9)
		}
	}
}

func TestConstrainDistanceTiny(t *testing.T) {
	got := ConstrainDistance(Pt(1e-300, 1e-300), Pt(0, 0), 10)
	diff(t, Pt(10/math.Sqrt2, 10/math.Sqrt2), got, approx)
}

func TestConstrainDistanceDegenerate(t *testing.T) {
	a := Pt(4, 5)
	got := ConstrainDistance(a, a, 10)
	diff(t, a, got)
	if got.IsNaN() {
		t.Error("got NaN")
	}
}
