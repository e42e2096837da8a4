package core

// ShadingFrame is an orthonormal basis (t, b, n) built from a world
// normal. Invariants: unit length on all three axes, mutually
// orthogonal. The local z-axis is the normal; cosines of angles to the
// normal are simply local.Z. Per spec.md §3/§4.1.
type ShadingFrame struct {
	N, T, B Vec3
}

// NewShadingFrame constructs the frame from a (not necessarily
// normalized) world normal: t is proportional to (n.Z, 0, -n.X), except
// when both n.X and n.Z are (numerically) zero, where that vector would
// vanish and (n.Y, -n.X, 0) is used instead.
func NewShadingFrame(worldNormal Vec3) ShadingFrame {
	n := worldNormal.Normalize()

	var t Vec3
	if isZero(n.X) && isZero(n.Z) {
		t = Vec3{n.Y, -n.X, 0}.Normalize()
	} else {
		t = Vec3{n.Z, 0, -n.X}.Normalize()
	}
	b := Cross(n, t)
	return ShadingFrame{N: n, T: t, B: b}
}

func isZero(x float32) bool {
	const eps = 1e-7
	return x > -eps && x < eps
}

func (f ShadingFrame) ToLocal(worldVec Vec3) Vec3 {
	return Vec3{Dot(f.T, worldVec), Dot(f.B, worldVec), Dot(f.N, worldVec)}
}

func (f ShadingFrame) ToWorld(localVec Vec3) Vec3 {
	return f.T.Scale(localVec.X).Add(f.B.Scale(localVec.Y)).Add(f.N.Scale(localVec.Z))
}
