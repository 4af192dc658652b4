package numeric

import (
	"errors"
	"math"
)

// ErrSingular is returned when inverting a matrix whose determinant is 0.
var ErrSingular = errors.New("matrix is singular")

type Vec3 [3]float64
type Mat3 [3][3]float64

// Dot3 is the dot product of two 3-vectors.
func Dot3(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Norm returns the euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(Dot3(v, v))
}

// Dist3 is the euclidean distance between a and b.
func Dist3(a, b Vec3) float64 {
	return Norm3(a[0]-b[0], a[1]-b[1], a[2]-b[2])
}

// MulVec returns m·v.
func (m *Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{Dot3(m[0], v), Dot3(m[1], v), Dot3(m[2], v)}
}

// RowSums returns the sum of each row of m.
func (m *Mat3) RowSums() Vec3 {
	return Vec3{
		m[0][0] + m[0][1] + m[0][2],
		m[1][0] + m[1][1] + m[1][2],
		m[2][0] + m[2][1] + m[2][2],
	}
}

// Mul returns the matrix product m·o.
func (m *Mat3) Mul(o *Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Inverse computes the inverse of m from its cofactors.
func (m *Mat3) Inverse() (Mat3, error) {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	x := e*i - h*f
	y := f*g - d*i
	z := d*h - g*e
	det := a*x + b*y + c*z
	if det == 0 {
		return Mat3{}, ErrSingular
	}
	return Mat3{
		{x / det, (c*h - b*i) / det, (b*f - c*e) / det},
		{y / det, (a*i - c*g) / det, (d*c - a*f) / det},
		{z / det, (g*b - a*h) / det, (a*e - d*b) / det},
	}, nil
}
