package light

import "go-pathtracer/internal/core"

// ConstantEnvLight is a uniform-radiance environment: every escaping
// ray returns the same Le regardless of direction (spec.md §6). Direct
// sampling still needs *some* distribution to draw a direction from,
// so it samples the sphere uniformly.
type ConstantEnvLight struct {
	Le          core.Vec3
	sceneRadius float32
}

func NewConstantEnvLight(le core.Vec3) *ConstantEnvLight {
	return &ConstantEnvLight{Le: le}
}

// SetSceneRadius must be called once the scene's bounding radius is
// known (Scene.build), before this light is sampled.
func (c *ConstantEnvLight) SetSceneRadius(r float32) { c.sceneRadius = r }

func (c *ConstantEnvLight) SampleDirectContribution(hitPos core.Vec3, sampler core.Sampler) (DirectSample, bool) {
	dir, pdfDir := core.SampleUniformSphere(sampler.Sample1D(), sampler.Sample1D())
	point, normal := envSamplePoint(hitPos, dir, c.sceneRadius)
	return DirectSample{
		Radiance: c.Le,
		Point:    point,
		Normal:   normal,
		PdfArea:  areaPdfForDirection(pdfDir, c.sceneRadius),
	}, true
}

func (c *ConstantEnvLight) PdfSolidAngle(hitPos, lightPos, lightNormal core.Vec3) float32 {
	d2 := hitPos.Sub(lightPos).Len2()
	cosTheta := core.Dot(lightNormal, hitPos.Sub(lightPos).Normalize())
	if cosTheta <= 0 {
		return 0
	}
	pdfA := areaPdfForDirection(core.UniformSpherePdf(), c.sceneRadius)
	return pdfA * d2 / cosTheta
}

func (c *ConstantEnvLight) Radiance(hitPos, lightPos, lightNormal core.Vec3) core.Vec3 { return c.Le }

func (c *ConstantEnvLight) Power() float32 {
	return core.Luminance(c.Le) * 4 * float32(core.Pi) * float32(core.Pi) * c.sceneRadius * c.sceneRadius
}

func (c *ConstantEnvLight) IsDelta() bool    { return false }
func (c *ConstantEnvLight) IsEnvLight() bool { return true }

func (c *ConstantEnvLight) RadianceForMiss(dir core.Vec3) core.Vec3 { return c.Le }

func (c *ConstantEnvLight) PdfDirection(dir core.Vec3) float32 { return core.UniformSpherePdf() }
