package spacecurve

import (
	"fmt"
	"math"
)

// Point is a position in 3D space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point) Translate(o Vec3) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Transform applies m to pt, treating pt as a homogeneous point with w = 1.
func (pt Point) Transform(m Mat4) Point {
	return m.MulVec4(Vec4FromPoint(pt, 1)).Point()
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec3(pt).Lerp(Vec3(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
