// Package scenegraph owns the fully-built scene the integrator renders
// against: the shape list and its top-level accelerator, the light
// list and its uniform selector, the optional environment light,
// and the camera (spec.md §3).
package scenegraph

import (
	"go-pathtracer/internal/accel"
	"go-pathtracer/internal/camera"
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/light"
	"go-pathtracer/internal/shape"
)

// Scene is immutable once built: every shape is referenced by the
// scene accelerator, every light (including the environment light, if
// present) is referenced by the selector, and the bounding radius is
// derived from the accelerator's root AABB.
type Scene struct {
	Shapes   []shape.Shape
	Lights   []light.Light
	EnvLight light.EnvLight // nil if the scene has no environment light
	Camera   camera.Camera

	accel    *accel.SceneBVH
	selector *light.Selector
	bbox     core.AABB
	radius   float32
}

// NewScene builds the scene: constructs the scene-level BVH over
// shapes, computes the bounding radius, threads it into the
// environment light (if any), and builds the light selector over
// lights ∪ {envLight}.
func NewScene(shapes []shape.Shape, lights []light.Light, envLight light.EnvLight, cam camera.Camera) *Scene {
	s := &Scene{Shapes: shapes, Lights: lights, EnvLight: envLight, Camera: cam}
	s.build()
	return s
}

func (s *Scene) build() {
	s.accel = accel.BuildSceneBVH(s.Shapes)
	s.bbox = s.accel.AABB()
	s.radius = s.bbox.Max.Sub(s.bbox.Min).Len() / 2

	allLights := s.Lights
	if s.EnvLight != nil {
		s.EnvLight.SetSceneRadius(s.radius)
		allLights = append(append([]light.Light(nil), s.Lights...), s.EnvLight)
	}
	s.selector = light.NewSelector(allLights)
}

// RayIntersect traces a ray through the scene accelerator.
func (s *Scene) RayIntersect(r core.Ray, maxT float32) (shape.RayIntersectInfo, bool) {
	return s.accel.RayIntersect(r, maxT)
}

// Radius is half the diagonal of the scene's bounding box, used to
// place the synthetic sample point environment lights report through
// the ordinary area-measure Light interface.
func (s *Scene) Radius() float32 { return s.radius }

// BBox is the scene's world-space bounding box.
func (s *Scene) BBox() core.AABB { return s.bbox }

// PickLight draws one light (possibly the environment light) uniformly
// for next-event estimation, returning it with its pick pdf.
func (s *Scene) PickLight(u float32) (light.Light, float32) {
	return s.selector.Pick(u)
}

// PickLightPdf is the selection probability any single light has.
func (s *Scene) PickLightPdf() float32 {
	return s.selector.PickPdf()
}

// LightCount is the number of lights the selector draws from,
// including the environment light if present.
func (s *Scene) LightCount() int { return s.selector.Count() }

// EnvRadianceForMiss returns the environment's radiance along a ray
// that escaped the scene, or zero if there is no environment light.
func (s *Scene) EnvRadianceForMiss(dir core.Vec3) core.Vec3 {
	if s.EnvLight == nil {
		return core.Vec3{}
	}
	return s.EnvLight.RadianceForMiss(dir)
}

// TotalPower sums the emitted power of every light, a cheap scene-scale
// diagnostic. Nothing in the loader or CLI logs it.
func (s *Scene) TotalPower() float32 {
	var total float32
	for _, l := range s.Lights {
		total += l.Power()
	}
	if s.EnvLight != nil {
		total += s.EnvLight.Power()
	}
	return total
}
