package integrator

import (
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/scenegraph"
)

// DepthIntegrator visualizes ray parameter t on the first hit, useful
// for sanity-checking the acceleration structure (spec.md §8).
type DepthIntegrator struct{}

func (DepthIntegrator) Li(ray core.Ray, scene *scenegraph.Scene, sampler core.Sampler) core.Vec3 {
	info, hit := scene.RayIntersect(ray, 1e30)
	if !hit {
		return core.Vec3{}
	}
	return core.Vec3{X: info.T, Y: info.T, Z: info.T}
}

// UVIntegrator visualizes the surface texture coordinate of the first
// hit.
type UVIntegrator struct{}

func (UVIntegrator) Li(ray core.Ray, scene *scenegraph.Scene, sampler core.Sampler) core.Vec3 {
	info, hit := scene.RayIntersect(ray, 1e30)
	if !hit {
		return core.Vec3{}
	}
	return core.Vec3{X: info.UV.X, Y: info.UV.Y, Z: 0}
}

// HitPosIntegrator visualizes the world-space position of the first
// hit.
type HitPosIntegrator struct{}

func (HitPosIntegrator) Li(ray core.Ray, scene *scenegraph.Scene, sampler core.Sampler) core.Vec3 {
	info, hit := scene.RayIntersect(ray, 1e30)
	if !hit {
		return core.Vec3{}
	}
	return info.P
}

// NormalIntegrator visualizes the shading normal of the first hit,
// remapped from [-1,1] to [0,1] the way a normal-map preview usually
// displays it.
type NormalIntegrator struct{}

func (NormalIntegrator) Li(ray core.Ray, scene *scenegraph.Scene, sampler core.Sampler) core.Vec3 {
	info, hit := scene.RayIntersect(ray, 1e30)
	if !hit {
		return core.Vec3{}
	}
	n := info.Frame.N
	return core.Vec3{X: n.X*0.5 + 0.5, Y: n.Y*0.5 + 0.5, Z: n.Z*0.5 + 0.5}
}

// DirectIntegrator is a single-bounce slice of PathIntegrator: emission
// on the first hit plus one next-event-estimation sample, with no
// further indirect bounces. Useful for isolating NEE correctness from
// the rest of the path tracer.
type DirectIntegrator struct{}

func (DirectIntegrator) Li(ray core.Ray, scene *scenegraph.Scene, sampler core.Sampler) core.Vec3 {
	info, hit := scene.RayIntersect(ray, 1e30)
	if !hit {
		return scene.EnvRadianceForMiss(ray.D)
	}

	hitShape := info.Hit
	var L core.Vec3
	if hitShape.IsLight() {
		L = L.Add(hitShape.Emitter().Radiance(ray.O, info.P, info.Frame.N))
	}

	bsdf := hitShape.BSDF()
	if bsdf == nil {
		return L
	}
	localWi := info.Frame.ToLocal(ray.D)
	if bsdf.IsDiscrete(localWi.Z < 0) {
		return L
	}
	return L.Add(sampleDirectLighting(scene, info, localWi, bsdf, sampler))
}
