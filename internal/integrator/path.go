package integrator

import (
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/scenegraph"
	"go-pathtracer/internal/shape"
)

// PathIntegrator is the full Monte Carlo path tracer: next-event
// estimation combined with BSDF sampling via the balance heuristic, and
// Russian-roulette path termination (spec.md §8).
type PathIntegrator struct {
	MaxDepth int
	RRDepth  int
}

func NewPathIntegrator(maxDepth, rrDepth int) *PathIntegrator {
	return &PathIntegrator{MaxDepth: maxDepth, RRDepth: rrDepth}
}

func (p *PathIntegrator) Li(ray core.Ray, scene *scenegraph.Scene, sampler core.Sampler) core.Vec3 {
	var L core.Vec3
	throughput := core.One3
	fromSpecular := true
	prevBSDFPdf := float32(1)

	for depth := 0; ; depth++ {
		info, hit := scene.RayIntersect(ray, 1e30)
		if !hit {
			contrib := scene.EnvRadianceForMiss(ray.D)
			if !contrib.IsZero() {
				L = L.Add(throughput.Mul(contrib))
			}
			return L
		}

		hitShape := info.Hit
		if hitShape.IsLight() {
			emitter := hitShape.Emitter()
			le := emitter.Radiance(ray.O, info.P, info.Frame.N)
			if !le.IsZero() {
				if depth == 0 || fromSpecular {
					L = L.Add(throughput.Mul(le))
				} else {
					pdfSolid := emitter.PdfSolidAngle(ray.O, info.P, info.Frame.N)
					weight := balanceHeuristic(prevBSDFPdf, scene.PickLightPdf()*pdfSolid)
					L = L.Add(throughput.Mul(le).Scale(weight))
				}
			}
			return L
		}

		if depth >= p.MaxDepth {
			return L
		}

		bsdf := hitShape.BSDF()
		if bsdf == nil {
			return L
		}
		localWi := info.Frame.ToLocal(ray.D)
		frontside := localWi.Z < 0

		if !bsdf.IsDiscrete(frontside) {
			L = L.Add(throughput.Mul(sampleDirectLighting(scene, info, localWi, bsdf, sampler)))
		}

		if !fromSpecular && depth >= p.RRDepth {
			survival := clamp01(throughput.MaxComponent())
			if survival <= 0 {
				return L
			}
			if sampler.Sample1D() > survival {
				return L
			}
			throughput = throughput.Scale(1 / survival)
		}

		localWo, weight, pdf := bsdf.Sample(localWi, info.UV, sampler)
		if pdf <= 0 && !bsdf.IsDiscrete(frontside) {
			return L
		}
		if weight.IsZero() {
			return L
		}

		throughput = throughput.Mul(weight)
		fromSpecular = bsdf.IsDiscrete(frontside)
		prevBSDFPdf = pdf
		if fromSpecular {
			prevBSDFPdf = 1 // a discrete bounce can never be hit again via light sampling
		}

		worldWo := info.Frame.ToWorld(localWo)
		ray = core.NewRay(info.P, worldWo)
	}
}

// sampleDirectLighting draws one light via next-event estimation and
// returns its MIS-weighted (or, for a delta or environment light,
// unweighted) contribution. Returns zero if the light is occluded,
// faces away, or the BSDF has no reflectance toward it.
func sampleDirectLighting(scene *scenegraph.Scene, info shape.RayIntersectInfo, localWi core.Vec3, bsdf shape.BSDF, sampler core.Sampler) core.Vec3 {
	picked, pickPdf := scene.PickLight(sampler.Sample1D())
	if picked == nil || pickPdf <= 0 {
		return core.Vec3{}
	}

	ds, ok := picked.SampleDirectContribution(info.P, sampler)
	if !ok || ds.Radiance.IsZero() || ds.PdfArea <= 0 {
		return core.Vec3{}
	}

	toLight := ds.Point.Sub(info.P)
	dist := toLight.Len()
	if dist <= 0 {
		return core.Vec3{}
	}
	lightDir := toLight.Scale(1 / dist)
	localWo := info.Frame.ToLocal(lightDir)

	fr := bsdf.Eval(localWi, localWo, info.UV)
	if fr.IsZero() {
		return core.Vec3{}
	}

	shadowRay := core.NewRay(info.P, lightDir)
	if _, blocked := scene.RayIntersect(shadowRay, dist-shadowEpsilon); blocked {
		return core.Vec3{}
	}

	cosSurface := absf(localWo.Z)
	contrib := fr.Mul(ds.Radiance).Scale(cosSurface)

	if picked.IsDelta() {
		return contrib.Scale(1 / (ds.PdfArea * pickPdf))
	}

	// ds.PdfArea is in area measure; convert to solid angle the same
	// way PdfSolidAngle does, so it is directly comparable to the
	// BSDF's solid-angle pdf for the balance heuristic.
	d2 := dist * dist
	cosLight := absf(core.Dot(ds.Normal.Normalize(), lightDir))
	if cosLight <= 1e-8 {
		return core.Vec3{}
	}
	pdfSolidSample := ds.PdfArea * d2 / cosLight

	if picked.IsEnvLight() {
		return contrib.Scale(1 / (pdfSolidSample * pickPdf))
	}

	bsdfPdf := bsdf.Pdf(localWi, localWo)
	weight := balanceHeuristic(pdfSolidSample, bsdfPdf)

	return contrib.Scale(weight / (pdfSolidSample * pickPdf))
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
