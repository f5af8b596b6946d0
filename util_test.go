package ik

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpApprox(1e-9)

func cmpApprox(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Mag(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); !(d <= epsilon) {
		t.Errorf("got %v, want %v (±%v)", got, want, epsilon)
	}
}

// deviation returns how far the heading of l strays from th, measured along
// the shortest way around the circle.
func (l Line) deviation(th float64) float64 {
	return math.Abs(AngleDiff(l.Heading(), th))
}
