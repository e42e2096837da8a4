package bsdf

import "go-pathtracer/internal/core"

// Dielectric is a smooth refractive interface (glass, water): at each
// sample it stochastically picks reflection or refraction weighted by
// the Fresnel reflectance. Both branches are discrete and carry pdf 0 —
// the Fresnel weighting is baked into the branch probability rather
// than tracked as a pdf (spec.md §5).
type Dielectric struct {
	IOR float32 // index of refraction of the medium behind the surface
}

func NewDielectric(ior float32) *Dielectric { return &Dielectric{IOR: ior} }

func (d *Dielectric) Sample(wi core.Vec3, uv core.Vec2, sampler core.Sampler) (wo, weight core.Vec3, pdf float32) {
	v := wi.Neg() // direction pointing away from the surface
	entering := v.Z > 0

	etaI, etaT := float32(1.0), d.IOR
	if !entering {
		etaI, etaT = etaT, etaI
	}

	cosI := absf(v.Z)
	reflectance := fresnelDielectric(cosI, etaI, etaT)

	if sampler.Sample1D() <= reflectance {
		return reflect(wi), core.One3, 0
	}

	etaRatio := etaI / etaT
	wt, ok := refract(v, etaRatio)
	if !ok {
		// Total internal reflection: fall back to the mirror branch.
		return reflect(wi), core.One3, 0
	}

	scale := etaRatio * etaRatio
	return wt, core.Vec3{X: scale, Y: scale, Z: scale}, 0
}

func (d *Dielectric) Pdf(wi, wo core.Vec3) float32 { return 0 }

func (d *Dielectric) Eval(wi, wo core.Vec3, uv core.Vec2) core.Vec3 { return core.Vec3{} }

func (d *Dielectric) IsDiscrete(frontside bool) bool { return true }

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
