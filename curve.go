package spacecurve

import (
	"math"
	"sort"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 6 to support cubic Béziers in three dimensions, which have up to
// two extrema per axis.
const MaxExtrema = 6

// DefaultAccuracy is a default value for methods that take an accuracy
// argument.
const DefaultAccuracy = 1e-6

// ParametricCurve describes a curve parametrized by a scalar.
//
// If the result is interpreted as a point, this represents a curve. But the
// result can be interpreted as a vector as well, which is how derivatives of
// curves are represented.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float64) float64
}

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the parameters of the extrema of the curve along each
	// axis.
	//
	// Only extrema within the interior of the curve count. They are reported
	// in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// BoundingBox returns the smallest axis-aligned box that encloses the curve
// in the range [0, 1].
func BoundingBox(c interface {
	Extremer
	ParametricCurve
}) Box {
	bbox := NewBoxFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// extrema collects the interior roots of the per-axis derivative quadratics
// described by the Bézier control differences d0, d1, d2.
func extrema(d0, d1, d2 Vec3) ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	oneCoord(d0.Z, d1.Z, d2.Z)
	sort.Float64s(out[:outN])
	return out, outN
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, it returns the root ignoring the
// quadratic term. In the degenerate case where all coefficients are zero, a
// single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1 * sc1 overflowed. Find one root using sc1 x + x² = 0, the
		// other as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
