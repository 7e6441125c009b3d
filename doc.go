// Package ellipse tracks how an origin-centered ellipse deforms under 2×2
// linear transforms, maintaining a canonical parameterization the whole way.
//
// An [Ellipse] is described by three parameters: the two semi-axis lengths
// and the rotation of the x-radius axis in degrees. It is the image of the
// unit circle under scale(rx, ry) followed by rotation by the angle. This is
// the parameterization used by SVG elliptical-arc segments, and the intended
// consumer is path and arc code that needs to know what an arc's radii and
// axis rotation become after a matrix() transform has been applied to it.
//
// The two operations are [Ellipse.Transform], which applies an arbitrary
// [Mat2] and recovers the canonical parameters of the resulting ellipse from
// the eigen-decomposition of its quadratic form, and [Ellipse.Normalize],
// which reduces the parameters to canonical form (non-negative radii, angle
// in [0, 90), circles collapsed to angle 0) and can additionally grow the
// ellipse just enough to contain a reference vector, as required when
// validating arc radii against an endpoint.
//
// Near-circular, near-axis-aligned, and near-degenerate configurations are
// classified against a tolerance fixed at construction time, because the
// eigenvector direction (and with it the recovered angle) is meaningless when
// the eigenvalues coincide. A transform can legitimately collapse the ellipse
// to a segment or point; [Ellipse.IsDegenerate] is the way to detect that, as
// no operation reports errors.
//
// Both operations mutate the receiver and return it, so calls chain:
//
//	e := ellipse.New(ellipse.Vec(40, 20), 15)
//	e.Transform(ellipse.Rotate(math.Pi / 6)).Normalize(ellipse.Vec2{})
//
// The package is purely computational. It performs no I/O and allocates
// nothing beyond its fixed-size values; concurrent use of distinct Ellipse
// values is safe, concurrent mutation of a shared one is not.
package ellipse
