// Package light implements the light sources of spec.md §6: Point,
// Area (bound to a shape.Shape), and the environment lights
// (ConstantEnv, and the importance-sampled ImageEnv). It also provides
// the uniform Selector the integrator uses to pick a light for
// next-event estimation.
package light

import "go-pathtracer/internal/core"

// DirectSample is the result of sampling a light for next-event
// estimation: the emitted radiance along the sampled direction, the
// point and normal used to express the sample's pdf in area measure
// (for env lights these are a synthetic point/normal placed on a
// sphere of scene-radius size around the shading point, see EnvLight),
// and the pdf itself in area measure.
type DirectSample struct {
	Radiance core.Vec3
	Point    core.Vec3
	Normal   core.Vec3
	PdfArea  float32
}

// Light is the common contract every light source satisfies
// (spec.md §6).
type Light interface {
	// SampleDirectContribution draws one light sample visible from
	// hitPos, without performing the visibility test (the integrator
	// casts the shadow ray). ok is false if the light cannot
	// contribute (e.g. sampled point faces away).
	SampleDirectContribution(hitPos core.Vec3, sampler core.Sampler) (DirectSample, bool)

	// PdfSolidAngle converts the area-measure sampling pdf at
	// (lightPos, lightNormal) into the solid-angle measure as seen from
	// hitPos: pdf_ω = pdf_A * d²/|cosθ| (GLOSSARY). Used when a BSDF
	// sample happens to hit this light directly, for the MIS weight.
	PdfSolidAngle(hitPos, lightPos, lightNormal core.Vec3) float32

	// Radiance is the emitted radiance toward hitPos from a point
	// (lightPos, lightNormal) on the light; zero if that side doesn't
	// emit.
	Radiance(hitPos, lightPos, lightNormal core.Vec3) core.Vec3

	// Power is the total emitted power. Light selection does not use
	// it; the Selector picks uniformly.
	Power() float32

	IsDelta()    bool
	IsEnvLight() bool
}

// EnvLight is implemented additionally by lights with no finite
// position (ConstantEnv, ImageEnv): a path whose ray escapes the scene
// queries the environment directly by direction rather than by a
// sampled point.
type EnvLight interface {
	Light

	// RadianceForMiss is the radiance returned along a ray that left
	// the scene without hitting any geometry.
	RadianceForMiss(dir core.Vec3) core.Vec3

	// PdfDirection is the solid-angle pdf of sampling dir via
	// SampleDirectContribution. The path integrator adds escaped BSDF
	// samples without an MIS weight, so it does not call this.
	PdfDirection(dir core.Vec3) float32

	// SetSceneRadius supplies the scene's bounding radius, computed
	// once by Scene.build, which the synthetic area-pdf placement
	// (envSamplePoint) needs.
	SetSceneRadius(r float32)
}

// envSamplePoint and areaPdfForDirection let env lights reuse
// the same area-measure DirectSample.PdfArea field as finite lights: a
// synthetic sample point is placed at hitPos + dir*2*sceneRadius with
// normal -dir, so the generic d²/cosθ conversion run by PdfSolidAngle
// recovers the true direction pdf exactly (cosθ=1, d²=4*sceneRadius²).
func envSamplePoint(hitPos, dir core.Vec3, sceneRadius float32) (point, normal core.Vec3) {
	point = hitPos.Add(dir.Scale(2 * sceneRadius))
	normal = dir.Neg()
	return point, normal
}

func areaPdfForDirection(pdfDir, sceneRadius float32) float32 {
	denom := 4 * sceneRadius * sceneRadius
	if denom <= 0 {
		return 0
	}
	return pdfDir / denom
}
