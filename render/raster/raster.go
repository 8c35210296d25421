// Package raster implements [render.Context] in software, drawing onto an
// [*image.RGBA] with an orthographic projection.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
	"honnef.co/go/spacecurve"
	"honnef.co/go/spacecurve/render"
)

var _ render.Context = (*Canvas)(nil)

// View selects which world axes map onto the horizontal and vertical axes of
// the image.
type View int

const (
	// ViewXY looks down the z axis.
	ViewXY View = iota
	// ViewXZ looks along the y axis, with z pointing up.
	ViewXZ
	// ViewYZ looks along the x axis, with z pointing up.
	ViewYZ
)

func (v View) String() string {
	switch v {
	case ViewXY:
		return "xy"
	case ViewXZ:
		return "xz"
	case ViewYZ:
		return "yz"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView parses the names returned by [View.String].
func ParseView(s string) (View, error) {
	for _, v := range [...]View{ViewXY, ViewXZ, ViewYZ} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown view %q, want one of xy, xz, yz", s)
}

// Matrix returns the view transform. It maps the chosen world axes onto x
// and y, and the remaining axis onto z, keeping the system right-handed.
func (v View) Matrix() spacecurve.Mat4 {
	switch v {
	case ViewXY:
		return spacecurve.Identity4
	case ViewXZ:
		return spacecurve.NewMat4FromRows(
			spacecurve.V4(1, 0, 0, 0),
			spacecurve.V4(0, 0, 1, 0),
			spacecurve.V4(0, -1, 0, 0),
			spacecurve.V4(0, 0, 0, 1),
		)
	case ViewYZ:
		return spacecurve.NewMat4FromRows(
			spacecurve.V4(0, 1, 0, 0),
			spacecurve.V4(0, 0, 1, 0),
			spacecurve.V4(1, 0, 0, 0),
			spacecurve.V4(0, 0, 0, 1),
		)
	default:
		panic(fmt.Sprintf("invalid view %d", int(v)))
	}
}

// Margin is the fraction of the smaller image side that is kept free around
// the fitted bounds.
const Margin = 0.05

type state struct {
	color color.NRGBA
	width float32
	m     spacecurve.Mat4
}

// Canvas is a [render.Context] that rasterizes lines onto an image.
//
// Lines are projected orthographically: the view matrix is applied, then the
// z coordinate is dropped. Lines are drawn in the order they are issued, with
// no depth testing.
type Canvas struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	proj  spacecurve.Mat4
	cur   state
	stack []*savedState
}

// New returns a canvas drawing onto img. The projection is chosen so that
// bounds, as seen through view, is centered in the image and as large as
// possible while keeping a margin and the aspect ratio. An empty bounds
// box maps the world origin onto the image center at a scale of 1.
func New(img *image.RGBA, view spacecurve.Mat4, bounds spacecurve.Box) *Canvas {
	r := img.Bounds()
	return &Canvas{
		img:  img,
		ras:  vector.NewRasterizer(r.Dx(), r.Dy()),
		proj: fit(view, bounds, r),
		cur: state{
			color: render.CurveColor,
			width: 1,
			m:     spacecurve.Identity4,
		},
	}
}

func fit(view spacecurve.Mat4, bounds spacecurve.Box, r image.Rectangle) spacecurve.Mat4 {
	w, h := float64(r.Dx()), float64(r.Dy())
	scale := 1.0
	center := spacecurve.Pt(0, 0, 0)
	if !bounds.IsEmpty() {
		ext := spacecurve.EmptyBox()
		for i := range 8 {
			corner := bounds.Min
			if i&1 != 0 {
				corner.X = bounds.Max.X
			}
			if i&2 != 0 {
				corner.Y = bounds.Max.Y
			}
			if i&4 != 0 {
				corner.Z = bounds.Max.Z
			}
			ext = ext.UnionPoint(corner.Transform(view))
		}
		center = ext.Center()

		pad := 2 * Margin * min(w, h)
		size := ext.Size()
		switch {
		case size.X > 0 && size.Y > 0:
			scale = min((w-pad)/size.X, (h-pad)/size.Y)
		case size.X > 0:
			scale = (w - pad) / size.X
		case size.Y > 0:
			scale = (h - pad) / size.Y
		}
	}

	// Image coordinates grow downwards.
	return spacecurve.Translate4(spacecurve.Vec(float64(r.Min.X)+w/2, float64(r.Min.Y)+h/2, 0)).
		Mul(spacecurve.Scale4(scale, -scale, scale)).
		Mul(spacecurve.Translate4(spacecurve.Point{}.Sub(center))).
		Mul(view)
}

// Image returns the image the canvas draws onto.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Fill sets every pixel of the image to col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Project returns the image coordinates that pt, given in the canvas's
// current model space, is drawn at.
func (c *Canvas) Project(pt spacecurve.Point) (x, y float64) {
	p := pt.Transform(c.proj.Mul(c.cur.m))
	return p.X, p.Y
}

type savedState struct {
	c     *Canvas
	depth int
	saved state
}

// Restore is a no-op unless s is still on the stack at its own depth. Once
// s has been popped, a later Save at the same depth pushes a different entry.
func (s *savedState) Restore() {
	c := s.c
	if len(c.stack) <= s.depth || c.stack[s.depth] != s {
		return
	}
	c.cur = s.saved
	c.stack = c.stack[:s.depth]
}

func (c *Canvas) Save() render.State {
	s := &savedState{c: c, depth: len(c.stack), saved: c.cur}
	c.stack = append(c.stack, s)
	return s
}

func (c *Canvas) SetColor(col color.NRGBA) { c.cur.color = col }

func (c *Canvas) SetLineWidth(w float32) { c.cur.width = w }

func (c *Canvas) MultMatrix(m spacecurve.Mat4) { c.cur.m = c.cur.m.Mul(m) }

func (c *Canvas) LineStrip(pts []spacecurve.Point) {
	if len(pts) < 2 {
		return
	}
	m := c.proj.Mul(c.cur.m)
	prev := pt2(pts[0].Transform(m))
	for _, pt := range pts[1:] {
		p := pt2(pt.Transform(m))
		c.stroke(prev, p)
		prev = p
	}
}

func (c *Canvas) Lines(pts []spacecurve.Point) {
	m := c.proj.Mul(c.cur.m)
	for i := 0; i+1 < len(pts); i += 2 {
		c.stroke(pt2(pts[i].Transform(m)), pt2(pts[i+1].Transform(m)))
	}
}

type vec2 struct{ x, y float32 }

func pt2(pt spacecurve.Point) vec2 {
	return vec2{float32(pt.X), float32(pt.Y)}
}

func (v vec2) isFinite() bool {
	return !math32.IsNaN(v.x) && !math32.IsNaN(v.y) && !math32.IsInf(v.x, 0) && !math32.IsInf(v.y, 0)
}

// stroke draws the line from a to b as a quad of the current width, with
// square caps.
func (c *Canvas) stroke(a, b vec2) {
	if !a.isFinite() || !b.isFinite() || c.cur.width <= 0 {
		return
	}
	hw := c.cur.width / 2
	dx, dy := b.x-a.x, b.y-a.y
	l := math32.Hypot(dx, dy)
	if l == 0 {
		// Draw a square dot.
		dx, dy, l = 1, 0, 1
	}
	// Unit direction and unit normal, scaled to half the width.
	ux, uy := dx/l*hw, dy/l*hw
	nx, ny := -uy, ux

	quad := [4]vec2{
		{a.x - ux + nx, a.y - uy + ny},
		{b.x + ux + nx, b.y + uy + ny},
		{b.x + ux - nx, b.y + uy - ny},
		{a.x - ux - nx, a.y - uy - ny},
	}

	// Only rasterize the part of the image that the quad covers.
	minX, minY := quad[0].x, quad[0].y
	maxX, maxY := minX, minY
	for _, p := range quad[1:] {
		minX, minY = math32.Min(minX, p.x), math32.Min(minY, p.y)
		maxX, maxY = math32.Max(maxX, p.x), math32.Max(maxY, p.y)
	}
	r := image.Rect(
		int(math32.Floor(minX)), int(math32.Floor(minY)),
		int(math32.Ceil(maxX)), int(math32.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	c.ras.Reset(r.Dx(), r.Dy())
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	c.ras.MoveTo(quad[0].x-ox, quad[0].y-oy)
	for _, p := range quad[1:] {
		c.ras.LineTo(p.x-ox, p.y-oy)
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, r, image.NewUniform(c.cur.color), image.Point{})
}
