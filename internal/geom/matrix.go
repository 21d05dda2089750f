package geom

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a column-major homogeneous transform. Every constructor below and
// Apply share that layout.
type Mat4 = mgl64.Mat4

// Identity returns the 4x4 identity.
func Identity() Mat4 {
	return mgl64.Ident4()
}

// Translation moves points by t.
func Translation(t Vec3) Mat4 {
	return mgl64.Translate3D(t[0], t[1], t[2])
}

// RotationX rotates counter-clockwise around +X (y toward z).
func RotationX(angle float64) Mat4 {
	return mgl64.HomogRotate3DX(angle)
}

// RotationY rotates counter-clockwise around +Y (z toward x).
func RotationY(angle float64) Mat4 {
	return mgl64.HomogRotate3DY(angle)
}

// RotationZ rotates counter-clockwise around +Z (x toward y).
func RotationZ(angle float64) Mat4 {
	return mgl64.HomogRotate3DZ(angle)
}

// Compose multiplies the matrices left to right, so the last one is applied
// to a point first.
func Compose(ms ...Mat4) Mat4 {
	out := Identity()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}

// Apply transforms p as the homogeneous vector (x, y, z, 1) and drops w.
func Apply(m Mat4, p Vec3) Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// ApplyAll transforms every point in ps with m.
func ApplyAll(m Mat4, ps []Vec3) []Vec3 {
	out := make([]Vec3, len(ps))
	for i, p := range ps {
		out[i] = Apply(m, p)
	}
	return out
}
