// Package shape implements the scene's geometric primitives: triangles
// and triangle meshes, the Shape abstraction the acceleration
// structures and integrator operate over, and the two ray/triangle
// intersection algorithms (Möller-Trumbore and watertight) named in
// spec.md §4.4.
package shape

import "go-pathtracer/internal/core"

// BSDF is the subset of the bsdf package's contract a Shape needs. It
// is declared here, not imported from package bsdf, so that concrete
// BSDF implementations can be assigned to a Shape without shape ever
// importing bsdf — avoiding the back-reference cycle spec.md §9 calls
// out between the light-transport layers.
type BSDF interface {
	Sample(wi core.Vec3, uv core.Vec2, sampler core.Sampler) (wo, weight core.Vec3, pdf float32)
	Pdf(wi, wo core.Vec3) float32
	Eval(wi, wo core.Vec3, uv core.Vec2) core.Vec3
	IsDiscrete(frontside bool) bool
}

// Emitter is the subset of the light package's AreaLight contract a
// Shape needs to report itself as a light source. Same structural-typing
// trick as BSDF above.
type Emitter interface {
	Radiance(hitPos, lightPos, lightNormalWorld core.Vec3) core.Vec3
	PdfSolidAngle(hitPos, lightPos, lightNormalWorld core.Vec3) float32
}

// RayIntersectInfo is the result of a successful Shape.RayIntersect:
// world hit point, shading frame, ray parameter, texture coordinate,
// and a back-pointer to the hit shape. Per spec.md §3.
type RayIntersectInfo struct {
	P     core.Vec3
	Frame core.ShadingFrame
	T     float32
	UV    core.Vec2
	Hit   Shape
}

// DefaultRayIntersectInfo returns the "no hit yet" sentinel: T = +inf.
func DefaultRayIntersectInfo() RayIntersectInfo {
	return RayIntersectInfo{T: inf}
}

const inf = float32(1e30)

// Shape is the abstract entity of spec.md §3: bounding box, area,
// sampleable point, per-ray intersection, and the solid-angle pdf of a
// (hit_pos, shape_pos, shape_normal) triple. A Shape whose Emitter is
// non-nil *is* a light.
type Shape interface {
	AABB() core.AABB
	Area() float32
	SamplePoint(sampler core.Sampler) (point, normal core.Vec3, areaPdf float32)
	RayIntersect(r core.Ray, maxT float32) (RayIntersectInfo, bool)
	PdfSolidAngle(hitPos, shapePos, shapeNormal core.Vec3) float32

	BSDF() BSDF
	Emitter() Emitter
	IsLight() bool
}
