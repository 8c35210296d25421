package spacecurve

import (
	"math"
)

var _ ParametricCurve = CubicBez{}
var _ Arclener = CubicBez{}
var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier segment in 3D space.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the Bernstein form
//
//	B(t) = (1-t)³p0 + 3t(1-t)²p1 + 3t²(1-t)p2 + t³p3
//
// B(0) is exactly P0 and B(1) is exactly P3.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(cb.P0).Mul(mt * mt * mt)
	b := Vec3(cb.P1).Mul(mt * mt * 3.0)
	c := Vec3(cb.P2).Mul(mt * 3.0)
	d := Vec3(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Differentiate returns the derivative of the cubic, which is a quadratic
// Bézier whose points are to be interpreted as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Deriv returns the first derivative B'(t).
func (c CubicBez) Deriv(t float64) Vec3 {
	return Vec3(c.Differentiate().Eval(t))
}

// Deriv2 returns the second derivative B''(t).
func (c CubicBez) Deriv2(t float64) Vec3 {
	return Vec3(c.Differentiate().Differentiate().Eval(t))
}

// Sample evaluates the position and the frame at t.
//
// The tangent is the normalized first derivative and the normal is the
// normalized second derivative. The binormal is their cross product and is
// not normalized again, so the frame is only orthonormal where the second
// derivative happens to be perpendicular to the first. Use [Orthonormalize]
// or [ParallelTransport] on the evaluated curve for exact frames.
//
// Where a derivative vanishes, the corresponding vector is zero.
func (c CubicBez) Sample(t float64) Sample {
	return newSample(c.Eval(t), c.Deriv(t), c.Deriv2(t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	return extrema(c.P1.Sub(c.P0), c.P2.Sub(c.P1), c.P3.Sub(c.P2))
}

func (c CubicBez) BoundingBox() Box {
	return BoundingBox(c)
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		est += wi * (ddNorm2 / dNorm2)
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec3, dm1 Vec3, dm2 Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}
