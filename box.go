package spacecurve

import (
	"fmt"
	"math"
)

// Box is an axis-aligned box in 3D space.
type Box struct {
	Min Point
	Max Point
}

// NewBoxFromPoints returns the box with the extents of p0 and p1, ensuring
// that all of its sides are non-negative.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{p0, p1}.Abs()
}

// EmptyBox returns a box that contains nothing and that acts as the identity
// for [Box.Union] and [Box.UnionPoint].
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Point{inf, inf, inf},
		Max: Point{-inf, -inf, -inf},
	}
}

func (b Box) String() string {
	return fmt.Sprintf("%s–%s", b.Min, b.Max)
}

// Abs returns a new box with the same extents as b, but ensuring that all
// sides are non-negative.
func (b Box) Abs() Box {
	return Box{
		Min: Point{min(b.Min.X, b.Max.X), min(b.Min.Y, b.Max.Y), min(b.Min.Z, b.Max.Z)},
		Max: Point{max(b.Min.X, b.Max.X), max(b.Min.Y, b.Max.Y), max(b.Min.Z, b.Max.Z)},
	}
}

// IsEmpty reports whether the box contains no points at all.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether pt lies inside the box. Points on the boundary
// count as inside.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)},
		Max: Point{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)},
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// [EmptyBox], yields their enclosing box.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		Min: Point{min(b.Min.X, pt.X), min(b.Min.Y, pt.Y), min(b.Min.Z, pt.Z)},
		Max: Point{max(b.Max.X, pt.X), max(b.Max.Y, pt.Y), max(b.Max.Z, pt.Z)},
	}
}

// Inflate returns a box that extends d further along every axis in both
// directions.
func (b Box) Inflate(d float64) Box {
	v := Vec3{d, d, d}
	return Box{b.Min.Translate(v.Negate()), b.Max.Translate(v)}
}
