package bsdf

import "go-pathtracer/internal/core"

// Microfacet mixes a Beckmann specular lobe and a Lambertian diffuse
// lobe, the specular weight fixed at ks = 1 - max(kd) so energy stays
// conserved between the two (spec.md §5).
type Microfacet struct {
	Kd    core.Vec3
	Alpha float32
	InIOR float32
	ExIOR float32
	ks    float32
}

func NewMicrofacet(kd core.Vec3, alpha, inIOR, exIOR float32) *Microfacet {
	ks := 1 - kd.MaxComponent()
	if ks < 0 {
		ks = 0
	}
	return &Microfacet{Kd: kd, Alpha: alpha, InIOR: inIOR, ExIOR: exIOR, ks: ks}
}

func (m *Microfacet) Sample(wi core.Vec3, uv core.Vec2, sampler core.Sampler) (wo, weight core.Vec3, pdf float32) {
	if wi.Z >= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	wiFlipped := wi.Neg()

	if sampler.Sample1D() < m.ks {
		wh, _ := core.SampleBeckmannNormal(sampler.Sample1D(), sampler.Sample1D(), m.Alpha)
		cosWh := core.Dot(wiFlipped, wh)
		wo = wh.Scale(2 * cosWh).Sub(wiFlipped)
	} else {
		wo, _ = core.SampleCosineHemisphere(sampler.Sample1D(), sampler.Sample1D())
	}
	if wo.Z <= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}

	pdf = m.Pdf(wi, wo)
	if pdf <= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	f := m.Eval(wi, wo, uv)
	weight = f.Scale(wo.Z / pdf)
	return wo, weight, pdf
}

func (m *Microfacet) Pdf(wi, wo core.Vec3) float32 {
	if wi.Z >= 0 || wo.Z <= 0 {
		return 0
	}
	wiFlipped := wi.Neg()
	wh := wiFlipped.Add(wo).Normalize()

	pdfWh := core.BeckmannNormalPdf(wh, m.Alpha)
	cosWhWo := core.Dot(wh, wo)
	if cosWhWo <= 0 {
		return (1 - m.ks) * core.CosineHemispherePdf(wo)
	}
	jacobian := 1 / (4 * cosWhWo)
	return m.ks*pdfWh*jacobian + (1-m.ks)*core.CosineHemispherePdf(wo)
}

func (m *Microfacet) Eval(wi, wo core.Vec3, uv core.Vec2) core.Vec3 {
	if wi.Z >= 0 || wo.Z <= 0 {
		return core.Vec3{}
	}
	wiFlipped := wi.Neg()
	wh := wiFlipped.Add(wo).Normalize()

	diffuse := m.Kd.Scale(float32(core.InvPi))
	if m.ks <= 0 {
		return diffuse
	}

	cosI := wiFlipped.Z
	cosO := wo.Z
	if cosI <= 0 || cosO <= 0 || wh.Z <= 0 {
		return diffuse
	}

	pdfWh := core.BeckmannNormalPdf(wh, m.Alpha)
	d := pdfWh / wh.Z

	cosWhWi := core.Dot(wh, wiFlipped)
	fr := fresnelDielectric(cosWhWi, m.ExIOR, m.InIOR)
	g1i := g1Beckmann(wiFlipped, wh, m.Alpha)
	g1o := g1Beckmann(wo, wh, m.Alpha)

	specular := d * fr * g1i * g1o / (4 * cosI * cosO)
	return diffuse.Add(core.Vec3{X: specular, Y: specular, Z: specular})
}

func (m *Microfacet) IsDiscrete(frontside bool) bool { return false }
