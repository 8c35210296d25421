package spacecurve

var _ ParametricCurve = QuadBez{}

// QuadBez is a quadratic Bézier segment. Cubic Béziers differentiate into
// quadratic ones, which is where this package mostly uses them.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}
