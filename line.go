package spacecurve

// Line represents a line segment. The second derivative of a cubic Bézier
// is one, with its points interpreted as vectors.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ ParametricCurve = Line{}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }
