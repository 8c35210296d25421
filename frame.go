package spacecurve

import "math"

// Orthonormalize returns a copy of c whose frames are exactly orthonormal.
//
// For every sample, the normal is made perpendicular to the tangent by
// Gram-Schmidt and the binormal is recomputed as T × N. If the normal is
// missing or parallel to the tangent, an arbitrary perpendicular direction is
// used instead. Samples without a tangent are copied unchanged.
func Orthonormalize(c Curve) Curve {
	out := make(Curve, len(c))
	for i, s := range c {
		t := s.T.unitOrZero()
		if t.IsZero() {
			out[i] = s
			continue
		}
		n := s.N.Sub(t.Mul(s.N.Dot(t))).unitOrZero()
		if n.IsZero() {
			n = perpendicular(t)
		}
		out[i] = Sample{V: s.V, T: t, N: n, B: t.Cross(n)}
	}
	return out
}

// ParallelTransport returns a copy of c with frames that rotate minimally
// along the curve, starting from the binormal seed.
//
// Each sample's normal is computed as B' × T and its binormal as T × N,
// where B' is the binormal of the previous sample. This avoids the flips of
// the curvature-based normal at inflection points and on straight parts of
// the curve, where the second derivative vanishes.
//
// The seed is projected onto the plane perpendicular to the first tangent.
// If it is zero or parallel to that tangent, the binormal of the first
// sample is used, and failing that, an arbitrary perpendicular direction.
// Samples without a tangent keep the previous sample's normal and binormal.
func ParallelTransport(c Curve, seed Vec3) Curve {
	out := make(Curve, len(c))
	if len(c) == 0 {
		return out
	}

	var prevB Vec3
	for i, s := range c {
		t := s.T.unitOrZero()
		if t.IsZero() {
			out[i] = Sample{V: s.V}
			if i > 0 {
				out[i].N, out[i].B = out[i-1].N, out[i-1].B
			}
			continue
		}
		if prevB.IsZero() {
			prevB = initialBinormal(t, seed, s.B)
		}
		n := prevB.Cross(t).unitOrZero()
		if n.IsZero() {
			// The tangent turned onto the previous binormal.
			n = perpendicular(t)
		}
		b := t.Cross(n)
		out[i] = Sample{V: s.V, T: t, N: n, B: b}
		prevB = b
	}
	return out
}

func initialBinormal(t Vec3, candidates ...Vec3) Vec3 {
	for _, b := range candidates {
		if b := b.Sub(t.Mul(b.Dot(t))).unitOrZero(); !b.IsZero() {
			return b
		}
	}
	return t.Cross(perpendicular(t))
}

// perpendicular returns a unit vector perpendicular to the unit vector t,
// built from the coordinate axis least aligned with t.
func perpendicular(t Vec3) Vec3 {
	ax, ay, az := math.Abs(t.X), math.Abs(t.Y), math.Abs(t.Z)
	var axis Vec3
	switch {
	case ax <= ay && ax <= az:
		axis = Vec3{1, 0, 0}
	case ay <= az:
		axis = Vec3{0, 1, 0}
	default:
		axis = Vec3{0, 0, 1}
	}
	return t.Cross(axis).Normalize()
}
