package spacecurve

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

// approx compares floats, and thereby points, vectors and samples, with an
// absolute tolerance.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertNearVec(t *testing.T, got, want Vec3, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}
