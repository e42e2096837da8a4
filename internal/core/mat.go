package core

import "math"

// Vec4 is used only as the homogeneous-coordinate intermediate when a
// Vec3 is pushed through a Mat4.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a row-major 4x4 matrix, matching spec.md's "flat 16-element
// row-major" scene-file transform encoding.
type Mat4 struct {
	M [4][4]float32
}

func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}
	return m
}

// Mat4FromRowMajor builds a Mat4 from a flat 16-element row-major slice.
func Mat4FromRowMajor(v [16]float32) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.M[r][c] = v[r*4+c]
		}
	}
	return m
}

func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a.M[r][k] * b.M[k][c]
			}
			out.M[r][c] = s
		}
	}
	return out
}

func (a Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z + a.M[0][3]*v.W,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z + a.M[1][3]*v.W,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z + a.M[2][3]*v.W,
		W: a.M[3][0]*v.X + a.M[3][1]*v.Y + a.M[3][2]*v.Z + a.M[3][3]*v.W,
	}
}

// TransformPoint applies the matrix to a point (w=1) and divides out w.
func (a Mat4) TransformPoint(p Vec3) Vec3 {
	v := a.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if v.W != 0 && v.W != 1 {
		return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
	}
	return Vec3{v.X, v.Y, v.Z}
}

// TransformVector applies the matrix to a direction (w=0): no translation.
func (a Mat4) TransformVector(d Vec3) Vec3 {
	v := a.MulVec4(Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v.X, v.Y, v.Z}
}

// Inverse computes the general 4x4 inverse via cofactor expansion. Scene
// transforms are always affine and invertible in practice; a singular
// matrix returns the identity rather than propagating NaNs through the
// renderer.
func (a Mat4) Inverse() Mat4 {
	m := a.M
	var inv [4][4]float32

	cof := func(m [4][4]float32, r, c int) float32 {
		var sub [3][3]float32
		si := 0
		for i := 0; i < 4; i++ {
			if i == r {
				continue
			}
			sj := 0
			for j := 0; j < 4; j++ {
				if j == c {
					continue
				}
				sub[si][sj] = m[i][j]
				sj++
			}
			si++
		}
		det3 := sub[0][0]*(sub[1][1]*sub[2][2]-sub[1][2]*sub[2][1]) -
			sub[0][1]*(sub[1][0]*sub[2][2]-sub[1][2]*sub[2][0]) +
			sub[0][2]*(sub[1][0]*sub[2][1]-sub[1][1]*sub[2][0])
		if (r+c)%2 != 0 {
			det3 = -det3
		}
		return det3
	}

	var cofactors [4][4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			cofactors[r][c] = cof(m, r, c)
		}
	}

	det := m[0][0]*cofactors[0][0] + m[0][1]*cofactors[0][1] + m[0][2]*cofactors[0][2] + m[0][3]*cofactors[0][3]
	if det == 0 {
		return Identity4()
	}
	invDet := 1 / det

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			inv[r][c] = cofactors[c][r] * invDet // adjugate = transpose of cofactor matrix
		}
	}
	return Mat4{M: inv}
}

// Translate, Scale4 and RotateX/Y/Z build the elementary transforms the
// JSON scene-file's `to_world` transform list composes, in the order
// listed, per spec.md §6.
func Translate(t Vec3) Mat4 {
	m := Identity4()
	m.M[0][3] = t.X
	m.M[1][3] = t.Y
	m.M[2][3] = t.Z
	return m
}

func Scale4(s Vec3) Mat4 {
	m := Identity4()
	m.M[0][0] = s.X
	m.M[1][1] = s.Y
	m.M[2][2] = s.Z
	return m
}

func RotateX(deg float32) Mat4 {
	r := float64(deg) * math.Pi / 180
	c, s := float32(math.Cos(r)), float32(math.Sin(r))
	m := Identity4()
	m.M[1][1], m.M[1][2] = c, -s
	m.M[2][1], m.M[2][2] = s, c
	return m
}

func RotateY(deg float32) Mat4 {
	r := float64(deg) * math.Pi / 180
	c, s := float32(math.Cos(r)), float32(math.Sin(r))
	m := Identity4()
	m.M[0][0], m.M[0][2] = c, s
	m.M[2][0], m.M[2][2] = -s, c
	return m
}

func RotateZ(deg float32) Mat4 {
	r := float64(deg) * math.Pi / 180
	c, s := float32(math.Cos(r)), float32(math.Sin(r))
	m := Identity4()
	m.M[0][0], m.M[0][1] = c, -s
	m.M[1][0], m.M[1][1] = s, c
	return m
}

// LookAt builds the camera-to-world matrix for a camera positioned at
// eye, looking toward target, with the given world-space up hint. The
// resulting camera space matches Pinhole/ThinLens's convention: camera
// looks down -z, +y is up, +x is to the camera's left-to-right.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize() // camera -z axis
	right := Cross(forward, up).Normalize()
	trueUp := Cross(right, forward)

	var m Mat4
	m.M[0][0], m.M[0][1], m.M[0][2], m.M[0][3] = right.X, trueUp.X, -forward.X, eye.X
	m.M[1][0], m.M[1][1], m.M[1][2], m.M[1][3] = right.Y, trueUp.Y, -forward.Y, eye.Y
	m.M[2][0], m.M[2][1], m.M[2][2], m.M[2][3] = right.Z, trueUp.Z, -forward.Z, eye.Z
	m.M[3][0], m.M[3][1], m.M[3][2], m.M[3][3] = 0, 0, 0, 1
	return m
}

// Perspective builds a right-handed perspective projection with the
// given horizontal field of view (degrees) and near/far planes. The
// cameras do not use it; they build rays from the field of view directly.
func Perspective(fovXDeg, near, far float32) Mat4 {
	fov := float64(fovXDeg) * math.Pi / 180
	invTan := float32(1 / math.Tan(fov/2))
	m := Identity4()
	m.M[0][0] = invTan
	m.M[1][1] = invTan
	m.M[2][2] = far / (far - near)
	m.M[2][3] = -far * near / (far - near)
	m.M[3][2] = 1
	m.M[3][3] = 0
	return m
}
