package light

import "go-pathtracer/internal/core"

// PointLight is a delta light at a fixed position: I/d² falloff,
// never directly hit by a ray (spec.md §6).
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

func (p *PointLight) SampleDirectContribution(hitPos core.Vec3, sampler core.Sampler) (DirectSample, bool) {
	toLight := p.Position.Sub(hitPos)
	d2 := toLight.Len2()
	if d2 <= 0 {
		return DirectSample{}, false
	}
	radiance := p.Intensity.Scale(1 / d2)
	return DirectSample{
		Radiance: radiance,
		Point:    p.Position,
		Normal:   core.Vec3{}, // unused: PdfSolidAngle is always 0 for a delta light
		PdfArea:  1,
	}, true
}

// PdfSolidAngle is always 0: a delta light can never be hit by chance
// via BSDF sampling, so it never needs an MIS weight.
func (p *PointLight) PdfSolidAngle(hitPos, lightPos, lightNormal core.Vec3) float32 { return 0 }

// Radiance is 0: a point light has no surface, so a ray can never
// intersect it directly.
func (p *PointLight) Radiance(hitPos, lightPos, lightNormal core.Vec3) core.Vec3 { return core.Vec3{} }

func (p *PointLight) Power() float32 {
	return core.Luminance(p.Intensity) * 4 * float32(core.Pi)
}

func (p *PointLight) IsDelta() bool    { return true }
func (p *PointLight) IsEnvLight() bool { return false }
