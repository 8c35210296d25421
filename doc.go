// Package spacecurve evaluates parametric curves in 3D space and discretizes
// them into samples that carry a local coordinate frame.
//
// # Evaluators
//
// Three evaluators turn control points into a [Curve], a slice of [Sample]
// values ordered by curve parameter:
//
//   - [EvalBezier] evaluates piecewise cubic Béziers given as 3n+1 control
//     points, segments sharing their endpoints.
//   - [EvalBspline] evaluates uniform cubic B-splines, one span per window of
//     four consecutive control points, via a change of basis.
//   - [EvalCircle] evaluates a circle in closed form. Its frames are exact,
//     which makes it useful as a reference.
//
// Each segment or span is sampled at steps+1 uniformly spaced parameters
// t = i/steps, so the endpoints of Bézier segments are reproduced exactly.
// Invalid control point counts are reported as [*InvalidInputError], which
// matches [ErrInvalidInput].
//
// # Frames
//
// Every sample carries a tangent T, normal N and binormal B. The evaluators
// compute T and N by normalizing the first and second derivative and set
// B = T × N. This is the classical Frenet-style frame, but N is not made
// perpendicular to T, so the frame is only orthonormal where the second
// derivative happens to be perpendicular to the first (as it is for
// circles). Where a derivative vanishes, for example on straight segments or
// at coincident control points, the affected vectors are zero.
//
// Two functions compute exact frames from an evaluated curve:
// [Orthonormalize] fixes up each sample independently, and
// [ParallelTransport] propagates a binormal along the curve, which avoids
// sudden flips of the frame.
//
// # Primitives
//
// [Point], [Vec3], [Vec4] and [Mat4] are small immutable value types. The
// segment types [CubicBez], [QuadBez], [Line] and [Circle] implement
// [ParametricCurve]; derivatives of Béziers are again Béziers of lower
// degree (see [CubicBez.Differentiate]).
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Uniform B-splines] in the same primer, for the change of basis
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Uniform B-splines]: https://pomax.github.io/bezierinfo/#bsplines
package spacecurve
