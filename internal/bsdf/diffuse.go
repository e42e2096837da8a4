package bsdf

import "go-pathtracer/internal/core"

// Diffuse is a Lambertian reflector: f = rho/pi, cosine-hemisphere
// sampled. All directions here are in the local shading frame, with wi
// pointing into the surface (local_wi.z < 0 on a front hit) per
// spec.md §5's shading convention.
type Diffuse struct {
	Albedo core.Vec3
}

func NewDiffuse(albedo core.Vec3) *Diffuse { return &Diffuse{Albedo: albedo} }

func (d *Diffuse) Sample(wi core.Vec3, uv core.Vec2, sampler core.Sampler) (wo, weight core.Vec3, pdf float32) {
	if wi.Z >= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	wo, pdf = core.SampleCosineHemisphere(sampler.Sample1D(), sampler.Sample1D())
	if pdf <= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	weight = d.Albedo // cosine-hemisphere sampling cancels the cos/pi factor against the pdf
	return wo, weight, pdf
}

func (d *Diffuse) Pdf(wi, wo core.Vec3) float32 {
	if wi.Z >= 0 {
		return 0
	}
	return core.CosineHemispherePdf(wo)
}

func (d *Diffuse) Eval(wi, wo core.Vec3, uv core.Vec2) core.Vec3 {
	flippedWi := wi.Neg()
	if flippedWi.Z <= 0 || wo.Z <= 0 {
		return core.Vec3{}
	}
	return d.Albedo.Scale(float32(core.InvPi))
}

func (d *Diffuse) IsDiscrete(frontside bool) bool { return false }
