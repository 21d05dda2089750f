// Package geom holds the vector and homogeneous matrix helpers shared by the
// camera and the axis rotation pipeline. Vectors and matrices are the mgl64
// types; everything here is a pure function.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the magnitude below which a vector has no usable direction.
const Epsilon = 1e-10

type Vec3 = mgl64.Vec3

var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// Length returns the euclidean length of v.
func Length(v Vec3) float64 {
	return v.Len()
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 {
	return a.Dot(b)
}

// Cross returns a x b.
func Cross(a, b Vec3) Vec3 {
	return a.Cross(b)
}

// Normalize returns v scaled to unit length. A vector shorter than Epsilon has
// no direction and normalizes to UnitX; callers that care must check
// IsDegenerate first.
func Normalize(v Vec3) Vec3 {
	if IsDegenerate(v) {
		return UnitX
	}
	return v.Normalize()
}

// IsDegenerate reports whether v is too short to define a direction.
func IsDegenerate(v Vec3) bool {
	return v.Len() < Epsilon
}

// ApproxEqual compares a and b component-wise with an absolute tolerance.
func ApproxEqual(a, b Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// RotateX rotates v around the X axis
func RotateX(v Vec3, angle float64) Vec3 {
	return Apply(RotationX(angle), v)
}

// RotateY rotates v around the Y axis
func RotateY(v Vec3, angle float64) Vec3 {
	return Apply(RotationY(angle), v)
}

// RotateZ rotates v around the Z axis
func RotateZ(v Vec3, angle float64) Vec3 {
	return Apply(RotationZ(angle), v)
}
