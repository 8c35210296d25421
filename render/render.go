// Package render draws evaluated curves through an abstract graphics
// context.
//
// A [Context] is a small immediate-mode drawing interface in the style of
// fixed-function graphics pipelines: it has a current color, line width and
// model matrix, and it draws line strips and line lists in model space. Changes
// to that state are scoped by [Context.Save], which returns a [State] that
// reinstates the saved state when restored.
package render

import (
	"image/color"
	"slices"

	"honnef.co/go/spacecurve"
)

// State is a saved graphics state, as returned by [Context.Save].
type State interface {
	// Restore reinstates the state that was current when it was saved,
	// discarding everything saved after it. Restoring a state a second time,
	// or one that an earlier Restore discarded, has no effect.
	Restore()
}

// Context is the graphics context that curves are drawn through.
type Context interface {
	// Save saves the current color, line width and matrix. Callers should
	// defer the returned state's Restore method.
	Save() State
	SetColor(c color.NRGBA)
	// SetLineWidth sets the width of lines, in device units. It is not
	// affected by the current matrix.
	SetLineWidth(w float32)
	// MultMatrix post-multiplies the current matrix with m, so that m is
	// applied to points before the previous matrix.
	MultMatrix(m spacecurve.Mat4)
	// LineStrip draws a connected polyline through pts.
	LineStrip(pts []spacecurve.Point)
	// Lines draws independent lines between pts[0] and pts[1], pts[2] and
	// pts[3], and so on. A trailing unpaired point is ignored.
	Lines(pts []spacecurve.Point)
}

var (
	CurveColor    = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	NormalColor   = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	BinormalColor = color.NRGBA{0x00, 0xFF, 0x00, 0xFF}
	TangentColor  = color.NRGBA{0x00, 0x00, 0xFF, 0xFF}
)

var axes = [...]struct {
	color color.NRGBA
	end   spacecurve.Point
}{
	{NormalColor, spacecurve.Pt(1, 0, 0)},
	{BinormalColor, spacecurve.Pt(0, 1, 0)},
	{TangentColor, spacecurve.Pt(0, 0, 1)},
}

// Draw draws c into ctx.
//
// If frameSize is not negative, the curve is drawn as a 1 unit wide line
// strip in [CurveColor] through all sample positions. If frameSize is not
// zero, the frame of every sample is drawn as three lines of length
// |frameSize| starting at the sample position: the normal in [NormalColor],
// the binormal in [BinormalColor] and the tangent in [TangentColor]. A
// negative frameSize thus draws only the frames.
//
// The state of ctx is the same after Draw returns as it was before.
func Draw(ctx Context, c spacecurve.Curve, frameSize float32) {
	st := ctx.Save()
	defer st.Restore()

	ctx.SetColor(CurveColor)
	ctx.SetLineWidth(1)
	if frameSize >= 0 {
		ctx.LineStrip(slices.Collect(c.Points()))
	}

	if frameSize == 0 {
		return
	}
	size := float64(frameSize)
	if size < 0 {
		size = -size
	}
	scale := spacecurve.Scale4(size, size, size)
	for _, s := range c {
		drawFrame(ctx, s.Frame().Mul(scale))
	}
}

func drawFrame(ctx Context, m spacecurve.Mat4) {
	st := ctx.Save()
	defer st.Restore()

	ctx.MultMatrix(m)
	origin := spacecurve.Pt(0, 0, 0)
	for _, axis := range axes {
		ctx.SetColor(axis.color)
		ctx.Lines([]spacecurve.Point{origin, axis.end})
	}
}
