package ellipse

import (
	"fmt"
	"math"
)

// DefaultPrecision is the number of decimal digits of tolerance used by
// [New]: radii and eigenvalue gaps smaller than 10^-DefaultPrecision are
// treated as zero.
const DefaultPrecision = 7

const degreesPerRadian = 180 / math.Pi

// Ellipse is an ellipse centered at the origin: the image of the unit circle
// under scale(Radii.X, Radii.Y) followed by rotation by Angle degrees.
//
// The fields may be read freely. [Ellipse.Transform] and [Ellipse.Normalize]
// mutate Radii and Angle in place, leaving them in canonical form:
// non-negative radii, Angle in [0, 90), and Angle forced to 0 with equal
// radii when the ellipse is within Epsilon of a circle. Radii and Angle set
// by hand need not be canonical; Normalize will reduce them.
type Ellipse struct {
	// Radii holds the semi-axis lengths (rx, ry).
	Radii Vec2
	// Angle is the rotation of the x-radius axis, in degrees.
	Angle float64
	// Epsilon is the tolerance below which radii, eigenvalue differences,
	// and eigenvector components are treated as zero. The operations never
	// change it.
	Epsilon float64
}

// New returns an ellipse with the given radii and axis rotation in degrees,
// using [DefaultPrecision]. The radii may be negative or zero; they are not
// canonicalized until [Ellipse.Transform] or [Ellipse.Normalize] runs.
func New(radii Vec2, angle float64) *Ellipse {
	return NewWithPrecision(radii, angle, DefaultPrecision)
}

// NewWithPrecision is like [New] but classifies degenerate and circular cases
// with a tolerance of 10^-precision.
func NewWithPrecision(radii Vec2, angle float64, precision int) *Ellipse {
	return &Ellipse{
		Radii:   radii,
		Angle:   angle,
		Epsilon: math.Pow(10, -float64(precision)),
	}
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("Ellipse(%g, %g, %g°)", e.Radii.X, e.Radii.Y, e.Angle)
}

// IsDegenerate reports whether either radius is within Epsilon of zero, i.e.
// whether the ellipse has collapsed to a segment or point. Singular
// transforms produce degenerate ellipses rather than errors; this predicate
// is how callers detect that.
func (e *Ellipse) IsDegenerate() bool {
	return math.Abs(e.Radii.X) <= e.Epsilon || math.Abs(e.Radii.Y) <= e.Epsilon
}

// IsInf reports whether any parameter is infinite.
func (e *Ellipse) IsInf() bool {
	return e.Radii.IsInf() || math.IsInf(e.Angle, 0)
}

// IsNaN reports whether any parameter is NaN. Non-finite inputs to
// [Ellipse.Transform] or [Ellipse.Normalize] propagate instead of being
// reported; use this to check for them.
func (e *Ellipse) IsNaN() bool {
	return e.Radii.IsNaN() || math.IsNaN(e.Angle)
}

// Transform replaces the ellipse with its image under the linear map m,
// recomputing canonical radii and angle. It returns e.
//
// The image of an ellipse under a linear map is again an ellipse, but m
// composed with the ellipse's own unit-circle map is generally not of the
// scale-then-rotate form, so the parameters cannot be read off directly.
// They are recovered from the eigen-decomposition of the composed map's
// quadratic form: the eigenvalues are the squared semi-axis lengths and an
// eigenvector gives the axis direction.
func (e *Ellipse) Transform(m Mat2) *Ellipse {
	sin, cos := math.Sincos(e.Angle / degreesPerRadian)
	rx, ry := e.Radii.Splat()

	// The composed map m · rotate(Angle) · scale(Radii), taking the unit
	// circle to the transformed ellipse.
	a := rx * (m.N0*cos + m.N2*sin)
	b := rx * (m.N1*cos + m.N3*sin)
	c := ry * (-m.N0*sin + m.N2*cos)
	d := ry * (-m.N1*sin + m.N3*cos)

	// The diagonal of the quadratic form S = M·Mᵗ. The off-diagonal entry
	// L = a·b + c·d is only needed in the general case below.
	j := a*a + c*c
	k := b*b + d*d

	// Difference of the eigenvalues of S. The product under the root is the
	// factored form of the discriminant (J−K)² + 4L²; expanding it would
	// cancel catastrophically for near-circular ellipses.
	diff := math.Sqrt(((a-d)*(a-d) + (c+b)*(c+b)) * ((a+d)*(a+d) + (c-b)*(c-b)))

	// Mean of the eigenvalues of S.
	mean := (j + k) / 2

	switch {
	case diff <= e.Epsilon:
		// The eigenvalues coincide: a circle. Any angle parameterizes it, so
		// pick 0.
		r := math.Sqrt(mean)
		e.Radii = Vec(r, r)
		e.Angle = 0
	case math.Abs(diff-math.Abs(j-k)) <= e.Epsilon:
		// S is diagonal within tolerance, so the axes of the transformed
		// ellipse already lie on the coordinate axes.
		e.Radii = Vec(math.Sqrt(j), math.Sqrt(k))
		e.Angle = 0
	default:
		l := a*b + c*d
		l1 := mean + diff/2
		l2 := mean - diff/2

		if math.Abs(l) <= e.Epsilon && math.Abs(l1-k) <= e.Epsilon {
			// The major axis lies on the y axis, which the angle formula
			// below would report as 90°. Fold that to 0° by exchanging the
			// radii instead.
			e.Radii = Vec(math.Sqrt(l2), math.Sqrt(l1))
			e.Angle = 0
		} else {
			// The axis direction is an eigenvector of S for l1, satisfying
			// both (l1−J)·x = L·y and L·x = (l1−K)·y. Either equation yields
			// the angle; take the one whose denominator is larger in
			// magnitude, as the other is ill-conditioned near the axis-
			// aligned and circular boundaries. Do not collapse this into a
			// single formula: the two ratios diverge numerically near the
			// branch point.
			var t float64
			if math.Abs(l) > math.Abs(l1-k) {
				t = (l1 - j) / l
			} else {
				t = l / (l1 - k)
			}
			angle := math.Atan(t) * degreesPerRadian
			if angle >= 0 {
				e.Radii = Vec(math.Sqrt(l1), math.Sqrt(l2))
				e.Angle = angle
			} else {
				// atan reported the minor axis; exchange the radii to keep
				// the angle in [0, 90).
				e.Radii = Vec(math.Sqrt(l2), math.Sqrt(l1))
				e.Angle = angle + 90
			}
		}
	}

	return e
}

// Normalize reduces the parameters to canonical form: non-negative radii,
// angle in [0, 90), and a forced circle (equal radii, angle 0) when the radii
// are within Epsilon of each other. If v is non-zero, the ellipse is then
// additionally scaled up, isotropically, by exactly as much as needed for v
// to lie on or inside it; if v already lies inside, or v is the zero vector,
// the radii are left alone. It returns e.
//
// The scaling step is what SVG arc handling needs when an arc's radii are too
// small to span its endpoints.
func (e *Ellipse) Normalize(v Vec2) *Ellipse {
	e.Radii = Vec(math.Abs(e.Radii.X), math.Abs(e.Radii.Y))

	if math.Abs(e.Radii.X-e.Radii.Y) <= e.Epsilon {
		// A circle within tolerance; the angle carries no information.
		r := (e.Radii.X + e.Radii.Y) / 2
		e.Radii = Vec(r, r)
		e.Angle = 0
	} else {
		e.Angle = math.Mod(e.Angle, 180)
		if e.Angle < 0 {
			e.Angle += 180
		}
		if e.Angle >= 90 {
			// Rotating by 90 more degrees is the same ellipse with the radii
			// exchanged.
			e.Radii = Vec(e.Radii.Y, e.Radii.X)
			e.Angle -= 90
		}
	}

	if v.X == 0 && v.Y == 0 {
		return e
	}

	if k := e.scaleFor(v); k > 1 {
		e.Radii = e.Radii.Mul(k)
	}
	return e
}

// Contains reports whether v lies on or inside the ellipse, within Epsilon.
// An ellipse with a zero radius contains nothing.
func (e *Ellipse) Contains(v Vec2) bool {
	// Map v into the frame where the ellipse is the unit circle and check
	// against the circle there.
	return e.unitFrame(v).Hypot2() <= (1+e.Epsilon)*(1+e.Epsilon)
}

// scaleFor returns the factor by which v exceeds the ellipse boundary. A
// result of 1 puts v exactly on the boundary.
func (e *Ellipse) scaleFor(v Vec2) float64 {
	return e.unitFrame(v).Hypot()
}

// unitFrame maps v into the frame in which the ellipse is the unit circle:
// rotation by the negated angle, then division by the radii.
func (e *Ellipse) unitFrame(v Vec2) Vec2 {
	sin, cos := math.Sincos(-e.Angle / degreesPerRadian)
	return Vec(
		(v.X*cos-v.Y*sin)/e.Radii.X,
		(v.X*sin+v.Y*cos)/e.Radii.Y,
	)
}
