package accel

import (
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/shape"
)

// SceneBVH is the top-level BVH over shape references (spec.md §4.5).
type SceneBVH struct {
	bvh *BVH[shape.Shape, shape.RayIntersectInfo]
}

// BuildSceneBVH builds the scene-level accelerator over the given
// shapes. After Build, every shape is referenced by the returned
// accelerator (spec.md §3's Scene invariant).
func BuildSceneBVH(shapes []shape.Shape) *SceneBVH {
	bvh := Build(shapes, Accessor[shape.Shape, shape.RayIntersectInfo]{
		AABB:   func(s shape.Shape) core.AABB { return s.AABB() },
		Center: func(s shape.Shape) core.Vec3 { return s.AABB().Centroid() },
		Intersect: func(s shape.Shape, r core.Ray, maxT float32) (shape.RayIntersectInfo, float32, bool) {
			info, ok := s.RayIntersect(r, maxT)
			return info, info.T, ok
		},
	})
	return &SceneBVH{bvh: bvh}
}

func (s *SceneBVH) AABB() core.AABB { return s.bvh.AABB() }

// RayIntersect returns the closest hit across the whole scene.
func (s *SceneBVH) RayIntersect(r core.Ray, maxT float32) (shape.RayIntersectInfo, bool) {
	info, _, ok := s.bvh.RayIntersect(r, maxT)
	return info, ok
}
