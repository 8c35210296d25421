package spacecurve

import (
	"fmt"
	"math"
)

// Vec4 is a vector in homogeneous coordinates.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 returns the vector ⟨x, y, z, w⟩.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Vec4FromPoint extends pt with the homogeneous coordinate w.
func Vec4FromPoint(pt Point, w float64) Vec4 {
	return Vec4{pt.X, pt.Y, pt.Z, w}
}

// Vec4FromVec3 extends v with the homogeneous coordinate w.
func Vec4FromVec3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec4) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v.X, v.Y, v.Z, v.W)
}

// Component returns the i-th component of v, with X at index 0.
func (v Vec4) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(fmt.Sprintf("component index %d out of range", i))
	}
}

func (v Vec4) withComponent(i int, f float64) Vec4 {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	case 3:
		v.W = f
	default:
		panic(fmt.Sprintf("component index %d out of range", i))
	}
	return v
}

func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Mul(f float64) Vec4 {
	return Vec4{v.X * f, v.Y * f, v.Z * f, v.W * f}
}

// Point drops the homogeneous coordinate without dividing by it.
func (v Vec4) Point() Point {
	return Point{v.X, v.Y, v.Z}
}

// Vec3 drops the homogeneous coordinate.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Mat4 is a 4×4 matrix, stored as four columns.
//
// Matrices act on column vectors, so that (A * B) * v == A * (B * v). Like
// all other types in this package, Mat4 is an immutable value; methods that
// "modify" a matrix return a new one.
type Mat4 struct {
	// Fields instead of an array because Go applies SROA to structs but not
	// to arrays.

	C0, C1, C2, C3 Vec4
}

// Identity4 is the 4×4 identity matrix.
var Identity4 = Mat4{
	Vec4{1, 0, 0, 0},
	Vec4{0, 1, 0, 0},
	Vec4{0, 0, 1, 0},
	Vec4{0, 0, 0, 1},
}

// NewMat4FromCols returns the matrix with the given columns.
func NewMat4FromCols(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{c0, c1, c2, c3}
}

// NewMat4FromRows returns the matrix with the given rows.
func NewMat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{r0, r1, r2, r3}.Transpose()
}

// Scale4 returns a matrix scaling x, y and z independently.
func Scale4(x, y, z float64) Mat4 {
	return Mat4{
		Vec4{x, 0, 0, 0},
		Vec4{0, y, 0, 0},
		Vec4{0, 0, z, 0},
		Vec4{0, 0, 0, 1},
	}
}

// Translate4 returns a matrix translating points by v.
func Translate4(v Vec3) Mat4 {
	m := Identity4
	m.C3 = Vec4FromVec3(v, 1)
	return m
}

// Col returns the i-th column.
func (m Mat4) Col(i int) Vec4 {
	switch i {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	case 3:
		return m.C3
	default:
		panic(fmt.Sprintf("column index %d out of range", i))
	}
}

// Row returns the i-th row.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{
		m.C0.Component(i),
		m.C1.Component(i),
		m.C2.Component(i),
		m.C3.Component(i),
	}
}

// At returns the element in the given row and column.
func (m Mat4) At(row, col int) float64 {
	return m.Col(col).Component(row)
}

// WithCol returns a copy of m with the i-th column replaced by c.
func (m Mat4) WithCol(i int, c Vec4) Mat4 {
	switch i {
	case 0:
		m.C0 = c
	case 1:
		m.C1 = c
	case 2:
		m.C2 = c
	case 3:
		m.C3 = c
	default:
		panic(fmt.Sprintf("column index %d out of range", i))
	}
	return m
}

// WithRow returns a copy of m with the i-th row replaced by r.
func (m Mat4) WithRow(i int, r Vec4) Mat4 {
	m.C0 = m.C0.withComponent(i, r.X)
	m.C1 = m.C1.withComponent(i, r.Y)
	m.C2 = m.C2.withComponent(i, r.Z)
	m.C3 = m.C3.withComponent(i, r.W)
	return m
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// MulVec4 computes m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return m.C0.Mul(v.X).
		Add(m.C1.Mul(v.Y)).
		Add(m.C2.Mul(v.Z)).
		Add(m.C3.Mul(v.W))
}

// Mul computes m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mat4{
		m.MulVec4(o.C0),
		m.MulVec4(o.C1),
		m.MulVec4(o.C2),
		m.MulVec4(o.C3),
	}
}

// Invert returns the inverse of m, computed by Gauss-Jordan elimination with
// partial pivoting. The boolean result is false if m is singular.
func (m Mat4) Invert() (Mat4, bool) {
	var a [4][8]float64
	for r := range 4 {
		for c := range 4 {
			a[r][c] = m.At(r, c)
		}
		a[r][4+r] = 1
	}

	for col := range 4 {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-15 {
			return Mat4{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]

		inv := 1 / a[col][col]
		for c := range 8 {
			a[col][c] *= inv
		}
		for r := range 4 {
			if r == col || a[r][col] == 0 {
				continue
			}
			f := a[r][col]
			for c := range 8 {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	var out Mat4
	for r := range 4 {
		out = out.WithRow(r, Vec4{a[r][4], a[r][5], a[r][6], a[r][7]})
	}
	return out, true
}

func (m Mat4) String() string {
	return fmt.Sprintf("[%v %v %v %v]", m.Row(0), m.Row(1), m.Row(2), m.Row(3))
}
