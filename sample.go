package spacecurve

import (
	"iter"
	"math"
)

// Sample is one point of a discretized curve, together with the local frame
// at that point.
type Sample struct {
	// V is the position.
	V Point
	// T is the unit tangent.
	T Vec3
	// N is the normal.
	N Vec3
	// B is the binormal, T × N.
	B Vec3
}

// newSample computes the frame from the first and second derivative d1 and
// d2. Derivatives no longer than 1e-12 give zero vectors.
func newSample(v Point, d1, d2 Vec3) Sample {
	t := d1.unitOrZero()
	n := d2.unitOrZero()
	return Sample{V: v, T: t, N: n, B: t.Cross(n)}
}

// Curve is a discretized curve. Samples are ordered by increasing parameter,
// with the samples of one segment preceding those of the next.
//
// Curves are produced whole by one of the evaluators and are not modified
// afterwards; the functions that refine frames return new curves.
type Curve []Sample

// Points returns an iterator over the positions of the samples.
func (c Curve) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, s := range c {
			if !yield(s.V) {
				return
			}
		}
	}
}

// Length returns the length of the polyline through all samples.
func (c Curve) Length() float64 {
	var l float64
	for i := 1; i < len(c); i++ {
		l += c[i].V.Distance(c[i-1].V)
	}
	return l
}

// BoundingBox returns the smallest box containing all sample positions. The
// box of an empty curve is [EmptyBox].
func (c Curve) BoundingBox() Box {
	bbox := EmptyBox()
	for pt := range c.Points() {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// IsOrthonormal reports whether every sample's frame is a right-handed
// orthonormal basis, within tol.
func (c Curve) IsOrthonormal(tol float64) bool {
	for _, s := range c {
		if !s.IsOrthonormal(tol) {
			return false
		}
	}
	return true
}

// IsOrthonormal reports whether T, N and B are unit length, pairwise
// orthogonal, and satisfy B = T × N, all within tol.
func (s Sample) IsOrthonormal(tol float64) bool {
	near := func(a, b float64) bool { return math.Abs(a-b) <= tol }
	return near(s.T.Hypot(), 1) &&
		near(s.N.Hypot(), 1) &&
		near(s.B.Hypot(), 1) &&
		near(s.T.Dot(s.N), 0) &&
		near(s.T.Dot(s.B), 0) &&
		near(s.N.Dot(s.B), 0) &&
		s.T.Cross(s.N).Sub(s.B).Hypot() <= tol
}

// Frame returns the frame of s as a matrix with columns N, B, T and V. It
// maps the local axes x, y and z onto the normal, binormal and tangent and
// the local origin onto the sample position.
func (s Sample) Frame() Mat4 {
	return NewMat4FromCols(
		Vec4FromVec3(s.N, 0),
		Vec4FromVec3(s.B, 0),
		Vec4FromVec3(s.T, 0),
		Vec4FromPoint(s.V, 1),
	)
}
