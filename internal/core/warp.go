package core

import "math"

const (
	Pi      = math.Pi
	TwoPi   = 2 * math.Pi
	InvPi   = 1 / math.Pi
	Inv2Pi  = 1 / (2 * math.Pi)
	Inv4Pi  = 1 / (4 * math.Pi)
)

// SampleUniformDisk maps two uniform samples to a point on the unit
// disk by the concentric-free polar method of spec.md §4.1: returns the
// point and its pdf (1/pi inside the disk, else the caller should treat
// boundary as 0).
func SampleUniformDisk(u1, u2 float32) (Vec2, float32) {
	sqrtX := sqrtf(u1)
	angle := u2 * TwoPi
	return Vec2{
		X: sqrtX * float32(math.Cos(float64(angle))),
		Y: sqrtX * float32(math.Sin(float64(angle))),
	}, float32(InvPi)
}

func UniformDiskPdf(p Vec2) float32 {
	if p.Len2() > 1 {
		return 0
	}
	return float32(InvPi)
}

// SampleUniformSphere follows spec.md §4.1's theta=acos(1-2*xi1).
func SampleUniformSphere(u1, u2 float32) (Vec3, float32) {
	phi := TwoPi * float64(u2)
	theta := math.Acos(float64(1 - 2*u1))
	sinT, cosT := math.Sincos(theta)
	return Vec3{
		X: float32(sinT * math.Cos(phi)),
		Y: float32(sinT * math.Sin(phi)),
		Z: float32(cosT),
	}, float32(Inv4Pi)
}

func UniformSpherePdf() float32 { return float32(Inv4Pi) }

// SampleUniformHemisphere follows spec.md §4.1's theta=acos(1-xi1), local
// z being the hemisphere axis.
func SampleUniformHemisphere(u1, u2 float32) (Vec3, float32) {
	phi := TwoPi * float64(u2)
	theta := math.Acos(float64(1 - u1))
	sinT, cosT := math.Sincos(theta)
	return Vec3{
		X: float32(sinT * math.Cos(phi)),
		Y: float32(sinT * math.Sin(phi)),
		Z: float32(cosT),
	}, float32(Inv2Pi)
}

func UniformHemispherePdf(v Vec3) float32 {
	if v.Z <= 0 {
		return 0
	}
	return float32(Inv2Pi)
}

// SampleCosineHemisphere lifts a uniform disk sample by
// z=sqrt(1-x^2-y^2), per spec.md §4.1 (Malley's method).
func SampleCosineHemisphere(u1, u2 float32) (Vec3, float32) {
	xy, _ := SampleUniformDisk(u1, u2)
	z := sqrtf(1 - xy.Len2())
	return Vec3{X: xy.X, Y: xy.Y, Z: z}, z * float32(InvPi)
}

func CosineHemispherePdf(v Vec3) float32 {
	if v.Z <= 0 {
		return 0
	}
	return v.Z * float32(InvPi)
}

// SampleBeckmannNormal draws a microfacet normal from the Beckmann
// distribution with roughness alpha, per spec.md §4.1.
func SampleBeckmannNormal(u1, u2, alpha float32) (Vec3, float32) {
	phi := TwoPi * float64(u1)
	theta := math.Atan(math.Sqrt(float64(-alpha*alpha) * math.Log(float64(1-u2))))
	sinT, cosT := math.Sincos(theta)
	v := Vec3{
		X: float32(sinT * math.Cos(phi)),
		Y: float32(sinT * math.Sin(phi)),
		Z: float32(cosT),
	}
	return v, BeckmannNormalPdf(v, alpha)
}

// BeckmannNormalPdf is the Beckmann normal-distribution pdf restricted
// to the upper hemisphere (vec.Z <= 0 has zero density).
func BeckmannNormalPdf(v Vec3, alpha float32) float32 {
	if v.Z <= 0 {
		return 0
	}
	alpha2 := alpha * alpha
	tanTheta2 := (v.X*v.X + v.Y*v.Y) / (v.Z * v.Z)
	cosTheta3 := v.Z * v.Z * v.Z
	return float32(InvPi) * expf(-tanTheta2/alpha2) / (alpha2 * cosTheta3)
}

func expf(x float32) float32 { return float32(math.Exp(float64(x))) }
