package spacecurve

import (
	"iter"
)

// EvalCubic evaluates a single cubic Bézier segment at steps+1 uniformly
// spaced parameters t = i/steps, i = 0..steps. The first and last samples lie
// exactly on c.P0 and c.P3.
//
// Frames are computed as described for [CubicBez.Sample]. EvalCubic panics if
// steps is less than 1.
func EvalCubic(c CubicBez, steps int) Curve {
	if steps < 1 {
		panic("EvalCubic called with fewer than 1 step")
	}
	return appendCubic(make(Curve, 0, steps+1), c, steps)
}

func appendCubic(dst Curve, c CubicBez, steps int) Curve {
	for i := range steps + 1 {
		dst = append(dst, c.Sample(float64(i)/float64(steps)))
	}
	return dst
}

// EvalBezier evaluates a piecewise cubic Bézier curve.
//
// The control points describe n ≥ 1 segments that share their endpoints, so
// len(points) must be 3n+1. Segment k is made of points[3k] through
// points[3k+3]. Each segment contributes steps+1 samples, in order, so the
// result has n*(steps+1) samples and the shared endpoints appear twice.
//
// An [*InvalidInputError] is returned if the number of control points is not
// of the form 3n+1 or if steps is less than 1. Degenerate segments, such as
// ones with coincident control points, are not errors; they produce zero
// tangents or normals where the derivatives vanish.
//
// Frames are only meaningful across segment boundaries if the curve is G1
// continuous there.
func EvalBezier(points []Point, steps int) (Curve, error) {
	if len(points) < 4 || (len(points)-1)%3 != 0 {
		return nil, &InvalidInputError{
			Op:     "EvalBezier",
			Points: len(points),
			Steps:  steps,
			Reason: "need 3n+1 control points",
		}
	}
	if err := checkSteps("EvalBezier", len(points), steps); err != nil {
		return nil, err
	}

	n := (len(points) - 1) / 3
	out := make(Curve, 0, n*(steps+1))
	for _, seg := range BezierSegments(points) {
		out = appendCubic(out, seg, steps)
	}
	return out, nil
}

// BezierSegments yields the cubic segments of a 3n+1 control point chain,
// together with their index. Segment k is made of points[3k] through
// points[3k+3]. Trailing points that do not complete a segment are ignored.
func BezierSegments(points []Point) iter.Seq2[int, CubicBez] {
	return func(yield func(int, CubicBez) bool) {
		for k, i := 0, 0; i+3 < len(points); k, i = k+1, i+3 {
			if !yield(k, CubicBez{points[i], points[i+1], points[i+2], points[i+3]}) {
				return
			}
		}
	}
}
