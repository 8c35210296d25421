package spacecurve

// BsplineBasis maps the four control points of a uniform cubic B-spline
// window onto the power basis (1, t, t², t³). Row i holds the polynomial
// coefficients of the blending function of control point i.
var BsplineBasis = NewMat4FromRows(
	Vec4{1.0 / 6, -1.0 / 2, 1.0 / 2, -1.0 / 6},
	Vec4{2.0 / 3, 0, -1, 1.0 / 2},
	Vec4{1.0 / 6, 1.0 / 2, 1.0 / 2, -1.0 / 2},
	Vec4{0, 0, 0, 1.0 / 6},
)

// BezierBasis maps the four control points of a cubic Bézier onto the power
// basis (1, t, t², t³), in the same layout as [BsplineBasis].
var BezierBasis = NewMat4FromRows(
	Vec4{1, -3, 3, -1},
	Vec4{0, 3, -6, 3},
	Vec4{0, 0, 3, -3},
	Vec4{0, 0, 0, 1},
)

// bsplineToBezier is the change of basis from B-spline control points to
// Bézier control points, BsplineBasis * BezierBasis⁻¹.
var bsplineToBezier = func() Mat4 {
	inv, ok := BezierBasis.Invert()
	if !ok {
		panic("Bézier basis is singular")
	}
	return BsplineBasis.Mul(inv)
}()

// geometry returns the geometry matrix of four control points, one point per
// column and a homogeneous coordinate of 0.
func geometry(p0, p1, p2, p3 Point) Mat4 {
	return NewMat4FromCols(
		Vec4FromPoint(p0, 0),
		Vec4FromPoint(p1, 0),
		Vec4FromPoint(p2, 0),
		Vec4FromPoint(p3, 0),
	)
}

// EvalBspline evaluates a uniform cubic B-spline.
//
// Every window of four consecutive control points, points[j] through
// points[j+3], describes one span of the curve, computed as
//
//	M(t) = G * BsplineBasis * (1, t, t², t³)
//
// where G is the geometry matrix of the window. Each span contributes
// steps+1 samples at t = i/steps, and spans are emitted in increasing j, so
// the result has (len(points)-3)*(steps+1) samples. Tangents and normals
// come from the analytic first and second derivative of the same cubic, with
// the same conventions as [EvalBezier].
//
// An [*InvalidInputError] is returned if there are fewer than 4 control
// points or if steps is less than 1.
func EvalBspline(points []Point, steps int) (Curve, error) {
	if len(points) < 4 {
		return nil, &InvalidInputError{
			Op:     "EvalBspline",
			Points: len(points),
			Steps:  steps,
			Reason: "need at least 4 control points",
		}
	}
	if err := checkSteps("EvalBspline", len(points), steps); err != nil {
		return nil, err
	}

	out := make(Curve, 0, (len(points)-3)*(steps+1))
	for j := 0; j+3 < len(points); j++ {
		coeffs := geometry(points[j], points[j+1], points[j+2], points[j+3]).Mul(BsplineBasis)
		out = appendPolynomial(out, coeffs, steps)
	}
	return out, nil
}

// appendPolynomial samples the cubic whose power basis coefficients are the
// columns of coeffs.
func appendPolynomial(dst Curve, coeffs Mat4, steps int) Curve {
	for i := range steps + 1 {
		t := float64(i) / float64(steps)
		v := coeffs.MulVec4(Vec4{1, t, t * t, t * t * t}).Point()
		d1 := coeffs.MulVec4(Vec4{0, 1, 2 * t, 3 * t * t}).Vec3()
		d2 := coeffs.MulVec4(Vec4{0, 0, 2, 6 * t}).Vec3()
		dst = append(dst, newSample(v, d1, d2))
	}
	return dst
}

// BsplineToBezier converts the control polygon of a uniform cubic B-spline
// into the control points of the equivalent piecewise cubic Bézier curve.
//
// A B-spline with m ≥ 4 control points has m-3 spans; the result has
// 3(m-3)+1 points and can be passed to [EvalBezier], which then produces the
// same positions as [EvalBspline] up to rounding.
func BsplineToBezier(points []Point) ([]Point, error) {
	if len(points) < 4 {
		return nil, &InvalidInputError{
			Op:     "BsplineToBezier",
			Points: len(points),
			Reason: "need at least 4 control points",
		}
	}

	out := make([]Point, 0, 3*(len(points)-3)+1)
	for j := 0; j+3 < len(points); j++ {
		bez := geometry(points[j], points[j+1], points[j+2], points[j+3]).Mul(bsplineToBezier)
		if j == 0 {
			out = append(out, bez.C0.Point())
		}
		// Adjacent spans share an endpoint; keep the one computed by the
		// previous span.
		out = append(out, bez.C1.Point(), bez.C2.Point(), bez.C3.Point())
	}
	return out, nil
}
