// Package axisrot rotates a point about an arbitrary axis by decomposing the
// rotation into a translation, two aligning rotations, the rotation itself
// about X, and the inverse of the alignment.
//
// Every stage is a pure function of the previous stage's Snapshot, so a viewer
// can run the chain once per frame and show any prefix of it.
package axisrot

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"axisviz/internal/geom"
)

// ErrDegenerateAxis is returned when the two axis points are too close to
// define a direction.
var ErrDegenerateAxis = errors.New("degenerate axis")

// Axis is the line through P1 and P2, directed from P1 to P2.
type Axis struct {
	P1, P2 geom.Vec3
}

// NewAxis validates p1 and p2 and returns the axis through them.
func NewAxis(p1, p2 geom.Vec3) (Axis, error) {
	if err := ValidateAxis(p1, p2); err != nil {
		return Axis{}, err
	}
	return Axis{P1: p1, P2: p2}, nil
}

// ValidateAxis rejects axes whose endpoints coincide. The pipeline itself
// would quietly rotate about X in that case.
func ValidateAxis(p1, p2 geom.Vec3) error {
	if geom.IsDegenerate(p2.Sub(p1)) {
		return errors.Wrapf(ErrDegenerateAxis, "P1 %v and P2 %v coincide", p1, p2)
	}
	return nil
}

func (a Axis) Direction() geom.Vec3 {
	return a.P2.Sub(a.P1)
}

// Unit is the normalized direction, falling back to +X for a degenerate axis.
func (a Axis) Unit() geom.Vec3 {
	return geom.Normalize(a.Direction())
}

// Contains reports whether p lies on the (infinite) axis line within tol.
func (a Axis) Contains(p geom.Vec3, tol float64) bool {
	v := p.Sub(a.P1)
	return geom.Length(geom.Cross(a.Unit(), v)) <= tol
}

// Decompose returns the angles that align the axis with +X: alpha around Z
// and then beta around Y, together with the unit axis direction.
func Decompose(p1, p2 geom.Vec3) (alpha, beta float64, unit geom.Vec3) {
	unit = geom.Normalize(p2.Sub(p1))
	d, alpha := azimuth(unit)
	return alpha, elevation(unit, d), unit
}

// azimuth returns the length of unit projected on the XY plane and its angle
// from +X. An axis parallel to Z has no azimuth; alpha is 0 then.
func azimuth(unit geom.Vec3) (d, alpha float64) {
	d = math.Hypot(unit.X(), unit.Y())
	if d > geom.Epsilon {
		alpha = math.Atan2(unit.Y(), unit.X())
	}
	return d, alpha
}

func elevation(unit geom.Vec3, d float64) float64 {
	return math.Atan2(unit.Z(), d)
}

// Matrix is the whole decomposition as a single transform.
func Matrix(axis Axis, theta float64) geom.Mat4 {
	alpha, beta, _ := Decompose(axis.P1, axis.P2)
	return geom.Compose(
		geom.Translation(axis.P1),
		geom.RotationZ(alpha),
		geom.RotationY(-beta),
		geom.RotationX(theta),
		geom.RotationY(beta),
		geom.RotationZ(-alpha),
		geom.Translation(axis.P1.Mul(-1)),
	)
}

// Rodrigues rotates p by theta about axis with the closed form
// v cos + (k x v) sin + k (k . v)(1 - cos).
func Rodrigues(p geom.Vec3, axis Axis, theta float64) geom.Vec3 {
	k := axis.Unit()
	v := p.Sub(axis.P1)
	s, c := math.Sincos(theta)

	r := v.Mul(c).
		Add(geom.Cross(k, v).Mul(s)).
		Add(k.Mul(geom.Dot(k, v) * (1 - c)))
	return r.Add(axis.P1)
}

// RodriguesMatrix is Rodrigues as a homogeneous transform.
func RodriguesMatrix(axis Axis, theta float64) geom.Mat4 {
	return geom.Compose(
		geom.Translation(axis.P1),
		mgl64.HomogRotate3D(theta, axis.Unit()),
		geom.Translation(axis.P1.Mul(-1)),
	)
}
