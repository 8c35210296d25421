package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/spacecurve"
	"honnef.co/go/spacecurve/render"
)

var red = color.NRGBA{0xFF, 0, 0, 0xFF}

func unitBox() spacecurve.Box {
	return spacecurve.Box{Min: spacecurve.Pt(-1, -1, -1), Max: spacecurve.Pt(1, 1, 1)}
}

func TestProject(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	c := New(img, ViewXY.Matrix(), unitBox())

	// The margin is 5 pixels on each side, leaving 90 pixels for 2 units.
	for _, tc := range []struct {
		pt   spacecurve.Point
		x, y float64
	}{
		{spacecurve.Pt(0, 0, 0), 50, 50},
		{spacecurve.Pt(1, 1, 0), 95, 5},
		{spacecurve.Pt(-1, -1, 0), 5, 95},
		{spacecurve.Pt(1, 0, 7), 95, 50},
	} {
		x, y := c.Project(tc.pt)
		assert.InDelta(t, tc.x, x, 1e-9, "%s", tc.pt)
		assert.InDelta(t, tc.y, y, 1e-9, "%s", tc.pt)
	}

	c.MultMatrix(spacecurve.Scale4(0.5, 0.5, 0.5))
	x, y := c.Project(spacecurve.Pt(2, 2, 0))
	assert.InDelta(t, 95, x, 1e-9)
	assert.InDelta(t, 5, y, 1e-9)
}

func TestProjectAspect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	bounds := spacecurve.Box{Min: spacecurve.Pt(0, 0, 0), Max: spacecurve.Pt(4, 1, 0)}
	c := New(img, ViewXY.Matrix(), bounds)

	// The width limits the scale: (200 - 10) / 4 pixels per unit.
	x0, y0 := c.Project(bounds.Min)
	x1, y1 := c.Project(bounds.Max)
	assert.InDelta(t, 190, x1-x0, 1e-9)
	assert.InDelta(t, -47.5, y1-y0, 1e-9)
	assert.InDelta(t, 100, (x0+x1)/2, 1e-9)
	assert.InDelta(t, 50, (y0+y1)/2, 1e-9)
}

func TestViews(t *testing.T) {
	pt := spacecurve.Pt(1, 2, 3)
	assert.Equal(t, spacecurve.Pt(1, 2, 3), pt.Transform(ViewXY.Matrix()))
	assert.Equal(t, spacecurve.Pt(1, 3, -2), pt.Transform(ViewXZ.Matrix()))
	assert.Equal(t, spacecurve.Pt(2, 3, 1), pt.Transform(ViewYZ.Matrix()))

	for _, v := range []View{ViewXY, ViewXZ, ViewYZ} {
		got, err := ParseView(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseView("zx")
	assert.Error(t, err)
}

func TestStroke(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	c := New(img, ViewXY.Matrix(), unitBox())
	c.SetColor(red)
	c.SetLineWidth(4)
	c.Lines([]spacecurve.Point{spacecurve.Pt(-1, 0, 0), spacecurve.Pt(1, 0, 0)})

	// The line covers y in [48, 52] and x in [3, 97].
	for _, x := range []int{5, 30, 50, 94} {
		got := img.RGBAAt(x, 50)
		assert.Greater(t, got.R, uint8(250), "pixel (%d, 50)", x)
		assert.Greater(t, got.A, uint8(250), "pixel (%d, 50)", x)
		assert.Zero(t, got.G)
	}
	assert.Equal(t, color.RGBA{}, img.RGBAAt(50, 20))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(50, 60))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 50))
}

func TestLineStripOffImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := New(img, ViewXY.Matrix(), unitBox())
	c.LineStrip([]spacecurve.Point{spacecurve.Pt(100, 100, 0), spacecurve.Pt(200, 100, 0)})
	c.LineStrip([]spacecurve.Point{spacecurve.Pt(0, 0, 0)})
	assert.Equal(t, make([]uint8, len(img.Pix)), img.Pix)
}

func TestSaveRestore(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := New(img, ViewXY.Matrix(), unitBox())
	before := c.cur

	st := c.Save()
	c.SetColor(red)
	c.SetLineWidth(3)
	c.MultMatrix(spacecurve.Translate4(spacecurve.Vec(1, 1, 1)))
	inner := c.Save()
	c.SetLineWidth(9)

	// Restoring the outer state discards the inner one.
	st.Restore()
	assert.Equal(t, before, c.cur)
	assert.Empty(t, c.stack)

	inner.Restore()
	st.Restore()
	assert.Equal(t, before, c.cur)
}

func TestRestoreDiscardedState(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := New(img, ViewXY.Matrix(), unitBox())
	green := color.NRGBA{0, 0xFF, 0, 0xFF}
	blue := color.NRGBA{0, 0, 0xFF, 0xFF}

	s1 := c.Save()
	s2 := c.Save()
	s1.Restore()

	// New saves refill the depths s2 used to occupy.
	c.SetColor(red)
	s3 := c.Save()
	c.SetColor(green)
	c.Save()
	c.SetColor(blue)

	s2.Restore()
	assert.Equal(t, blue, c.cur.color)
	assert.Len(t, c.stack, 2)

	s3.Restore()
	assert.Equal(t, red, c.cur.color)
	assert.Empty(t, c.stack)

	s1.Restore()
	s3.Restore()
	assert.Equal(t, red, c.cur.color)
}

func TestDrawCurve(t *testing.T) {
	curve := spacecurve.EvalCircle(1, 32)
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	c := New(img, ViewXY.Matrix(), curve.BoundingBox())
	c.Fill(color.Black)
	render.Draw(c, curve, 0.2)

	// The circle passes through the middle of the right edge, the center
	// stays black.
	x, y := c.Project(spacecurve.Pt(1, 0, 0))
	edge := img.RGBAAt(int(x), int(y))
	assert.NotEqual(t, color.RGBA{0, 0, 0, 0xFF}, edge)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xFF}, img.RGBAAt(32, 32))

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
