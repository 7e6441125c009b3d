package ellipse

import "math"

// Mat2 describes a 2×2 linear map via coefficients.
//
// If the coefficients are (n0, n1, n2, n3), then the resulting transformation
// represents this matrix:
//
//	| n0 n2 |
//	| n1 n3 |
//
// That is, the coefficients are stored in column-major order, matching the
// first four entries of an SVG matrix() transform. The idea is that
// (A * B) * v == A * (B * v).
type Mat2 struct {
	N0, N1, N2, N3 float64
}

// Identity is the identity transform.
var Identity = Mat2{1, 0, 0, 1}

// Scale creates a linear map representing non-uniform scaling with different
// scale values for x and y.
func Scale(x, y float64) Mat2 {
	return Mat2{x, 0, 0, y}
}

// Rotate creates a linear map representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate(th float64) Mat2 {
	sin, cos := math.Sincos(th)
	return Mat2{cos, sin, -sin, cos}
}

// Skew creates a linear map representing a skew.
//
// The x and y parameters represent skew factors for the horizontal and
// vertical directions, respectively.
func Skew(x, y float64) Mat2 {
	return Mat2{1, y, x, 1}
}

// NewMat2 creates a new linear map from an array of coefficients in
// column-major order. Alternatively, you can initialize the fields of [Mat2]
// manually.
func NewMat2(n [4]float64) Mat2 {
	return Mat2{n[0], n[1], n[2], n[3]}
}

// Coefficients returns the coefficients of the map in column-major order.
func (m Mat2) Coefficients() [4]float64 {
	return [4]float64{m.N0, m.N1, m.N2, m.N3}
}

func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m.N0*o.N0 + m.N2*o.N1,
		m.N1*o.N0 + m.N3*o.N1,
		m.N0*o.N2 + m.N2*o.N3,
		m.N1*o.N2 + m.N3*o.N3,
	}
}

// Apply applies the linear map to the vector v.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m.N0*v.X + m.N2*v.Y,
		Y: m.N1*v.X + m.N3*v.Y,
	}
}

// Determinant returns the determinant of the map. A map with a zero
// determinant collapses the plane onto a line or point; applying one to an
// ellipse drives a radius to zero, which [Ellipse.IsDegenerate] detects.
func (m Mat2) Determinant() float64 {
	return m.N0*m.N3 - m.N1*m.N2
}
