package spacecurve

import (
	"testing"
)

var exampleControlPoints = []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0), Pt(0, 1, 0)}

func TestOrthonormalize(t *testing.T) {
	c, err := EvalBezier(exampleControlPoints, 8)
	if err != nil {
		t.Fatal(err)
	}
	if c.IsOrthonormal(1e-6) {
		t.Fatal("expected the curvature frames to not be orthonormal")
	}

	o := Orthonormalize(c)
	if len(o) != len(c) {
		t.Fatalf("got %d samples, want %d", len(o), len(c))
	}
	if !o.IsOrthonormal(1e-12) {
		t.Errorf("frames are not orthonormal: %v", o)
	}
	for i := range o {
		diff(t, c[i].V, o[i].V)
		assertNearVec(t, o[i].T, c[i].T, 1e-12)
		// The normal stays on the same side of the tangent.
		if o[i].N.Dot(c[i].N) <= 0 {
			t.Errorf("sample %d: normal %s flipped relative to %s", i, o[i].N, c[i].N)
		}
	}

	assertNearVec(t, o[0].N, Vec(0, 1, 0), 1e-12)
	assertNearVec(t, o[0].B, Vec(0, 0, 1), 1e-12)
}

func TestOrthonormalizeDegenerate(t *testing.T) {
	in := Curve{
		// No tangent at all.
		{V: Pt(1, 2, 3)},
		// A tangent, but no normal.
		{V: Pt(0, 0, 0), T: Vec(0, 0, 2)},
		// A normal parallel to the tangent.
		{V: Pt(0, 0, 0), T: Vec(1, 0, 0), N: Vec(-3, 0, 0)},
	}
	out := Orthonormalize(in)
	diff(t, in[0], out[0])
	for _, s := range out[1:] {
		if !s.IsOrthonormal(1e-12) {
			t.Errorf("frame of %v is not orthonormal", s)
		}
	}
	diff(t, Vec(0, 0, 1), out[1].T)
}

func TestParallelTransportStraight(t *testing.T) {
	points := []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0)}
	c, err := EvalBezier(points, 4)
	if err != nil {
		t.Fatal(err)
	}
	// A straight line has no curvature normal.
	for _, s := range c {
		diff(t, Vec3{}, s.N)
	}

	pt := ParallelTransport(c, Vec(0, 0, 1))
	for _, s := range pt {
		assertNearVec(t, s.T, Vec(1, 0, 0), 1e-12)
		assertNearVec(t, s.N, Vec(0, 1, 0), 1e-12)
		assertNearVec(t, s.B, Vec(0, 0, 1), 1e-12)
	}

	// The seed is parallel to the tangent, so some other perpendicular
	// direction is chosen, and then kept.
	pt = ParallelTransport(c, Vec(1, 0, 0))
	if !pt.IsOrthonormal(1e-12) {
		t.Fatalf("frames are not orthonormal: %v", pt)
	}
	for _, s := range pt[1:] {
		assertNearVec(t, s.B, pt[0].B, 1e-12)
	}
}

func TestParallelTransportSpatial(t *testing.T) {
	points := []Point{
		Pt(0, 0, 0), Pt(1, 0, 1), Pt(2, 1, 0), Pt(3, 0, 1),
		Pt(4, -1, 2), Pt(5, 0, 1), Pt(6, 1, 0),
	}
	c, err := EvalBezier(points, 32)
	if err != nil {
		t.Fatal(err)
	}
	pt := ParallelTransport(c, Vec(0, 0, 1))
	if len(pt) != len(c) {
		t.Fatalf("got %d samples, want %d", len(pt), len(c))
	}
	if !pt.IsOrthonormal(1e-9) {
		t.Errorf("frames are not orthonormal")
	}
	for i := range pt {
		diff(t, c[i].V, pt[i].V)
		assertNearVec(t, pt[i].T, c[i].T, 1e-12)
		if i > 0 {
			if d := pt[i].B.Dot(pt[i-1].B); d < 0.5 {
				t.Errorf("binormal rotates abruptly between samples %d and %d: %s, %s", i-1, i, pt[i-1].B, pt[i].B)
			}
		}
	}
}

func TestParallelTransportGaps(t *testing.T) {
	in := Curve{
		{V: Pt(0, 0, 0), T: Vec(1, 0, 0)},
		{V: Pt(1, 0, 0)},
		{V: Pt(2, 0, 0), T: Vec(1, 0, 0)},
	}
	want := Curve{
		{V: Pt(0, 0, 0), T: Vec(1, 0, 0), N: Vec(0, 1, 0), B: Vec(0, 0, 1)},
		{V: Pt(1, 0, 0), N: Vec(0, 1, 0), B: Vec(0, 0, 1)},
		{V: Pt(2, 0, 0), T: Vec(1, 0, 0), N: Vec(0, 1, 0), B: Vec(0, 0, 1)},
	}
	diff(t, want, ParallelTransport(in, Vec(0, 0, 1)))

	if got := ParallelTransport(nil, Vec(0, 0, 1)); len(got) != 0 {
		t.Errorf("got %d samples for an empty curve", len(got))
	}
}
