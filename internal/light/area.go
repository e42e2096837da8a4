package light

import (
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/shape"
)

// AreaLight binds an emitted radiance to a shape: every point on the
// shape's front face (the side the geometric/shading normal points
// toward) emits Le uniformly (spec.md §6).
type AreaLight struct {
	Shape shape.Shape
	Le    core.Vec3
}

func NewAreaLight(s shape.Shape, le core.Vec3) *AreaLight {
	return &AreaLight{Shape: s, Le: le}
}

func (a *AreaLight) SampleDirectContribution(hitPos core.Vec3, sampler core.Sampler) (DirectSample, bool) {
	point, normal, pdfArea := a.Shape.SamplePoint(sampler)
	if pdfArea <= 0 {
		return DirectSample{}, false
	}
	if core.Dot(normal, hitPos.Sub(point)) <= 0 {
		return DirectSample{}, false // sampled the back face
	}
	return DirectSample{
		Radiance: a.Le,
		Point:    point,
		Normal:   normal,
		PdfArea:  pdfArea,
	}, true
}

func (a *AreaLight) PdfSolidAngle(hitPos, lightPos, lightNormal core.Vec3) float32 {
	return a.Shape.PdfSolidAngle(hitPos, lightPos, lightNormal)
}

// Radiance is Le on the front face, zero on the back face (spec.md §6).
func (a *AreaLight) Radiance(hitPos, lightPos, lightNormal core.Vec3) core.Vec3 {
	if core.Dot(lightNormal, hitPos.Sub(lightPos)) <= 0 {
		return core.Vec3{}
	}
	return a.Le
}

func (a *AreaLight) Power() float32 {
	return core.Luminance(a.Le) * a.Shape.Area() * float32(core.Pi)
}

func (a *AreaLight) IsDelta() bool    { return false }
func (a *AreaLight) IsEnvLight() bool { return false }
