package spacecurve

import "math"

var _ ParametricCurve = Circle{}
var _ Arclener = Circle{}

// Circle is a circle in the plane z = Center.Z, traversed counterclockwise
// when viewed from +z.
type Circle struct {
	Center Point
	Radius float64
}

// angle maps t ∈ [0, 1] onto [0, 2π].
func (c Circle) angle(t float64) float64 {
	return 2 * math.Pi * t
}

func (c Circle) Eval(t float64) Point {
	sin, cos := math.Sincos(c.angle(t))
	return c.Center.Translate(Vec3{cos, sin, 0}.Mul(c.Radius))
}

func (c Circle) Start() Point { return c.Eval(0) }
func (c Circle) End() Point   { return c.Eval(1) }

// Sample returns the position and the exact frame at t. The tangent points
// along the direction of travel, the normal points towards the center and
// the binormal is +z.
func (c Circle) Sample(t float64) Sample {
	sin, cos := math.Sincos(c.angle(t))
	return Sample{
		V: c.Center.Translate(Vec3{cos, sin, 0}.Mul(c.Radius)),
		T: Vec3{-sin, cos, 0},
		N: Vec3{-cos, -sin, 0},
		B: Vec3{0, 0, 1},
	}
}

// Arclen returns the circumference.
func (c Circle) Arclen(accuracy float64) float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) BoundingBox() Box {
	r := math.Abs(c.Radius)
	return Box{
		Min: c.Center.Translate(Vec3{-r, -r, 0}),
		Max: c.Center.Translate(Vec3{r, r, 0}),
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

// EvalCircle evaluates a circle of the given radius around the origin at
// steps+1 angles 2πi/steps, i = 0..steps, so the last sample closes the
// circle. Every sample has an exact right-handed orthonormal frame.
//
// EvalCircle returns an empty curve if steps is less than 1.
func EvalCircle(radius float64, steps int) Curve {
	if steps < 1 {
		return Curve{}
	}
	c := Circle{Radius: radius}
	out := make(Curve, steps+1)
	for i := range out {
		out[i] = c.Sample(float64(i) / float64(steps))
	}
	return out
}
