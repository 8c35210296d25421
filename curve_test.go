package spacecurve

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(0.0, 0.0, 0.0)), []float64{0.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, 0.0)), []float64{})
}

func TestBox(t *testing.T) {
	b := NewBoxFromPoints(Pt(3, 0, -1), Pt(1, 2, 1))
	diff(t, Box{Pt(1, 0, -1), Pt(3, 2, 1)}, b)
	diff(t, Vec(2, 2, 2), b.Size())
	diff(t, Pt(2, 1, 0), b.Center())

	if !b.Contains(Pt(1, 0, -1)) || !b.Contains(Pt(2, 1, 0)) {
		t.Error("expected box to contain its corner and its center")
	}
	if b.Contains(Pt(0, 1, 0)) {
		t.Error("expected box to not contain an outside point")
	}

	diff(t, Box{Pt(0, -1, -2), Pt(4, 3, 2)}, b.Inflate(1))
	diff(t, Box{Pt(1, -5, -1), Pt(3, 2, 1)}, b.UnionPoint(Pt(2, -5, 0)))
	diff(t, Box{Pt(1, 0, -1), Pt(3, 2, 4)}, b.Union(Box{Pt(2, 1, 0), Pt(2, 1, 4)}))
}

func TestEmptyBox(t *testing.T) {
	e := EmptyBox()
	if !e.IsEmpty() {
		t.Fatal("expected empty box to be empty")
	}
	if e.Contains(Pt(0, 0, 0)) {
		t.Error("expected empty box to contain nothing")
	}

	b := Box{Pt(1, 2, 3), Pt(4, 5, 6)}
	diff(t, b, e.Union(b))
	diff(t, Box{Pt(1, 2, 3), Pt(1, 2, 3)}, e.UnionPoint(Pt(1, 2, 3)))

	var c Curve
	diff(t, e, c.BoundingBox())
}

func TestCurveMeasures(t *testing.T) {
	c := Curve{{V: Pt(0, 0, 0)}, {V: Pt(3, 4, 0)}, {V: Pt(3, 4, -12)}}
	if l := c.Length(); l != 17 {
		t.Errorf("got length %v, want 17", l)
	}
	diff(t, Box{Pt(0, 0, -12), Pt(3, 4, 0)}, c.BoundingBox())

	var pts []Point
	for pt := range c.Points() {
		pts = append(pts, pt)
		if len(pts) == 2 {
			break
		}
	}
	diff(t, []Point{Pt(0, 0, 0), Pt(3, 4, 0)}, pts)
}

func TestSampleFrame(t *testing.T) {
	s := Sample{
		V: Pt(1, 2, 3),
		T: Vec(0, 0, 1),
		N: Vec(1, 0, 0),
		B: Vec(0, 1, 0),
	}
	if !s.IsOrthonormal(0) {
		t.Fatalf("expected %v to be orthonormal", s)
	}
	m := s.Frame()
	// The local z axis is the tangent, and the local origin is the sample.
	diff(t, Pt(1, 2, 5), Pt(0, 0, 2).Transform(m))
	diff(t, Pt(4, 2, 3), Pt(3, 0, 0).Transform(m))
	diff(t, Pt(1, 3, 3), Pt(0, 1, 0).Transform(m))

	s.B = s.B.Negate()
	if s.IsOrthonormal(1e-9) {
		t.Error("expected a left-handed frame to not be orthonormal")
	}
}
