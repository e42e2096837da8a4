// Package bsdf implements the surface scattering models of spec.md §5:
// Diffuse, Mirror, Dielectric, Conductor, Microfacet, OrenNayar and the
// TwoSided wrapper, plus the Fresnel and microfacet helper math they
// share. Every type satisfies shape.BSDF structurally.
package bsdf

import (
	"math"

	"go-pathtracer/internal/core"
)

// reflect mirrors wi about the local shading normal (local z axis):
// (x, y, -z), matching the local-frame reflection convention where wi
// points toward the surface and the result points away from it.
func reflect(wi core.Vec3) core.Vec3 {
	return core.Vec3{X: wi.X, Y: wi.Y, Z: -wi.Z}
}

// refract computes the refracted direction given v, the direction
// pointing away from the surface (local frame, arbitrary hemisphere),
// and etaRatio = eta_v_side / eta_far_side. The local shading normal
// (0,0,1) is flipped to v's hemisphere internally. ok is false on total
// internal reflection.
func refract(v core.Vec3, etaRatio float32) (wt core.Vec3, ok bool) {
	n := core.Vec3{X: 0, Y: 0, Z: 1}
	if v.Z < 0 {
		n = n.Neg()
	}
	cosI := core.Dot(v, n)
	sin2I := maxf(0, 1-cosI*cosI)
	sin2T := etaRatio * etaRatio * sin2I
	if sin2T >= 1 {
		return core.Vec3{}, false
	}
	cosT := sqrtf(1 - sin2T)
	wt = v.Neg().Scale(etaRatio).Add(n.Scale(etaRatio*cosI - cosT))
	return wt, true
}

// fresnelDielectric is the unpolarized Fresnel reflectance for a
// dielectric interface, cosThetaI measured against the normal on the
// incident side. etaI and etaT are the incident/transmitted indices of
// refraction.
func fresnelDielectric(cosThetaI, etaI, etaT float32) float32 {
	cosI := clamp(cosThetaI, -1, 1)
	if cosI < 0 {
		etaI, etaT = etaT, etaI
		cosI = -cosI
	}

	sinThetaI := sqrtf(maxf(0, 1-cosI*cosI))
	sinThetaT := etaI / etaT * sinThetaI
	if sinThetaT >= 1 {
		return 1 // total internal reflection
	}
	cosThetaT := sqrtf(maxf(0, 1-sinThetaT*sinThetaT))

	rParl := (etaT*cosI - etaI*cosThetaT) / (etaT*cosI + etaI*cosThetaT)
	rPerp := (etaI*cosI - etaT*cosThetaT) / (etaI*cosI + etaT*cosThetaT)
	return (rParl*rParl + rPerp*rPerp) / 2
}

// fresnelConductor is the Shirley-derivation unpolarized Fresnel
// reflectance for a conductor with complex IOR eta - i*k, evaluated
// per color channel.
func fresnelConductor(cosThetaI float32, eta, k core.Vec3) core.Vec3 {
	cosI := clamp(cosThetaI, 0, 1)
	cos2 := cosI * cosI
	sin2 := 1 - cos2

	conductorChannel := func(eta, k float32) float32 {
		eta2 := eta * eta
		k2 := k * k
		t0 := eta2 - k2 - sin2
		a2plusb2 := sqrtf(maxf(0, t0*t0+4*eta2*k2))
		t1 := a2plusb2 + cos2
		a := sqrtf(maxf(0, (a2plusb2+t0)/2))
		t2 := 2 * a * cosI
		rs := (t1 - t2) / (t1 + t2)

		t3 := cos2*a2plusb2 + sin2*sin2
		t4 := t2 * sin2
		rp := rs * (t3 - t4) / (t3 + t4)
		return (rs + rp) / 2
	}

	return core.Vec3{
		X: conductorChannel(eta.X, k.X),
		Y: conductorChannel(eta.Y, k.Y),
		Z: conductorChannel(eta.Z, k.Z),
	}
}

// g1Beckmann is the Smith masking-shadowing term's rational
// approximation used by the original renderer, avoiding the erf call:
// saturates to 1 once b is large enough that the microfacet is
// effectively unoccluded. wh is the half-vector the microfacet normal
// was sampled around; a wv/wh pair on opposite sides of the macro
// surface (v·wh)/v.z ≤ 0 contributes nothing (backfacing microfacet).
func g1Beckmann(wv, wh core.Vec3, alpha float32) float32 {
	cosTheta := wv.Z
	if cosTheta <= 0 {
		return 0
	}
	if core.Dot(wv, wh)/cosTheta <= 0 {
		return 0
	}
	b := 1 / (alpha * cosTheta)
	if b >= 1.6 {
		return 1
	}
	return (3.535*b + 2.181*b*b) / (1 + 2.276*b + 2.577*b*b)
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}
