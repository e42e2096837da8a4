package accel

import (
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/shape"
)

// triHit is the per-triangle intersection payload threaded through the
// generic BVH/Octree: which triangle, and its barycentric coordinates.
type triHit struct {
	Tri  int
	U, V float32
}

// meshBVHAdapter and meshOctreeAdapter satisfy shape.TriangleMeshAccel
// so TriangleMesh never imports package accel directly.
type meshBVHAdapter struct {
	bvh *BVH[int, triHit]
	box core.AABB
}

func (a *meshBVHAdapter) RayIntersect(r core.Ray, maxT float32) (int, float32, float32, float32, bool) {
	hit, t, ok := a.bvh.RayIntersect(r, maxT)
	if !ok {
		return 0, 0, 0, 0, false
	}
	return hit.Tri, hit.U, hit.V, t, true
}

func (a *meshBVHAdapter) AABB() core.AABB { return a.box }

type meshOctreeAdapter struct {
	oct *Octree[triHit]
	box core.AABB
}

func (a *meshOctreeAdapter) RayIntersect(r core.Ray, maxT float32) (int, float32, float32, float32, bool) {
	hit, t, ok := a.oct.RayIntersect(r, maxT)
	if !ok {
		return 0, 0, 0, 0, false
	}
	return hit.Tri, hit.U, hit.V, t, true
}

func (a *meshOctreeAdapter) AABB() core.AABB { return a.box }

func triIntersector(m *shape.TriangleMesh) func(tri int, r core.Ray, maxT float32) (triHit, float32, bool) {
	return func(tri int, r core.Ray, maxT float32) (triHit, float32, bool) {
		a, b, c := meshVertices(m, tri)
		var u, v, t float32
		var ok bool
		if m.Algorithm == shape.MollerTrumbore {
			u, v, t, ok = shape.IntersectMollerTrumbore(r, a, b, c, maxT)
		} else {
			u, v, t, ok = shape.IntersectWatertight(r, a, b, c, maxT)
		}
		if !ok {
			return triHit{}, 0, false
		}
		return triHit{Tri: tri, U: u, V: v}, t, true
	}
}

func meshVertices(m *shape.TriangleMesh, tri int) (a, b, c core.Vec3) {
	idx := m.Indices[tri]
	return m.Positions[idx[0]], m.Positions[idx[1]], m.Positions[idx[2]]
}

// BuildMeshBVH builds a per-mesh triangle BVH (SAH) and wires it into
// the mesh via TriangleMesh.SetAccel.
func BuildMeshBVH(m *shape.TriangleMesh) {
	n := m.TriangleCount()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	intersect := triIntersector(m)
	bvh := Build(indices, Accessor[int, triHit]{
		AABB:      m.TriAABB,
		Center:    m.TriCentroid,
		Intersect: intersect,
	})
	m.SetAccel(&meshBVHAdapter{bvh: bvh, box: bvh.AABB()})
}

// BuildMeshOctree builds the octree alternative (spec.md §4.6) and
// wires it into the mesh.
func BuildMeshOctree(m *shape.TriangleMesh) {
	intersect := triIntersector(m)
	oct := BuildOctree(m.TriangleCount(), m.AABB(), MeshPrimitiveAccessor[triHit]{
		AABB:      m.TriAABB,
		Center:    m.TriCentroid,
		Intersect: intersect,
	})
	m.SetAccel(&meshOctreeAdapter{oct: oct, box: oct.AABB()})
}
