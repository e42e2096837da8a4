package bsdf

import (
	"math"

	"go-pathtracer/internal/core"
)

// OrenNayar is the rough-diffuse reflectance model: a Lambertian base
// corrected for microfacet shadowing/masking at grazing angles,
// parameterized by a roughness angle in degrees (spec.md §5).
type OrenNayar struct {
	Albedo     core.Vec3
	SigmaDeg   float32
	a, b       float32
}

func NewOrenNayar(albedo core.Vec3, sigmaDeg float32) *OrenNayar {
	sigma := sigmaDeg * float32(math.Pi) / 180
	sigma2 := sigma * sigma
	return &OrenNayar{
		Albedo:   albedo,
		SigmaDeg: sigmaDeg,
		a:        1 - sigma2/(2*(sigma2+0.33)),
		b:        0.45 * sigma2 / (sigma2 + 0.09),
	}
}

func (o *OrenNayar) Sample(wi core.Vec3, uv core.Vec2, sampler core.Sampler) (wo, weight core.Vec3, pdf float32) {
	if wi.Z >= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	wo, pdf = core.SampleCosineHemisphere(sampler.Sample1D(), sampler.Sample1D())
	if pdf <= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	weight = o.Eval(wi, wo, uv).Scale(wo.Z / pdf)
	return wo, weight, pdf
}

func (o *OrenNayar) Pdf(wi, wo core.Vec3) float32 {
	if wi.Z >= 0 {
		return 0
	}
	return core.CosineHemispherePdf(wo)
}

func (o *OrenNayar) Eval(wi, wo core.Vec3, uv core.Vec2) core.Vec3 {
	wiFlipped := wi.Neg()
	if wiFlipped.Z <= 0 || wo.Z <= 0 {
		return core.Vec3{}
	}

	cosThetaI, cosThetaO := wiFlipped.Z, wo.Z
	sinThetaI := sqrtf(maxf(0, 1-cosThetaI*cosThetaI))
	sinThetaO := sqrtf(maxf(0, 1-cosThetaO*cosThetaO))

	maxCos := float32(0)
	if sinThetaI > 1e-4 && sinThetaO > 1e-4 {
		cosPhiI, sinPhiI := wiFlipped.X/sinThetaI, wiFlipped.Y/sinThetaI
		cosPhiO, sinPhiO := wo.X/sinThetaO, wo.Y/sinThetaO
		dCos := cosPhiI*cosPhiO + sinPhiI*sinPhiO
		maxCos = maxf(0, dCos)
	}

	var sinAlpha, tanBeta float32
	if cosThetaI > cosThetaO {
		sinAlpha, tanBeta = sinThetaO, sinThetaI/cosThetaI
	} else {
		sinAlpha, tanBeta = sinThetaI, sinThetaO/cosThetaO
	}

	scale := o.a + o.b*maxCos*sinAlpha*tanBeta
	return o.Albedo.Scale(float32(core.InvPi) * scale)
}

func (o *OrenNayar) IsDiscrete(frontside bool) bool { return false }
