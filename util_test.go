package conic

import (
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

var approxFloat = cmpopts.EquateApprox(tolerance, tolerance)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon Float) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertApprox(t *testing.T, name string, got, want Float) {
	t.Helper()
	if d := abs(got - want); d > tolerance*max(1, abs(want)) {
		t.Errorf("got %s = %g, expected %g", name, got, want)
	}
}

// assertAngle compares two angles modulo π.
func assertAngle(t *testing.T, got, want Float) {
	t.Helper()
	d := got - want
	for d < 0 {
		d += Pi
	}
	for d >= Pi {
		d -= Pi
	}
	if min(d, Pi-d) > tolerance {
		t.Errorf("got angle %g, expected %g (mod π)", got, want)
	}
}

func params(e Ellipse) [6]Float {
	A, B, C, D, E, F := e.Parameters()
	return [6]Float{A, B, C, D, E, F}
}
