package shape

import (
	"math"

	"go-pathtracer/internal/core"
)

// IntersectAlgorithm selects which ray/triangle test TriangleMesh uses.
// Watertight is the default per spec.md §4.4.
type IntersectAlgorithm int

const (
	Watertight IntersectAlgorithm = iota
	MollerTrumbore
)

// TriangleMeshAccel abstracts the mesh-level acceleration structure
// (BVH or octree, see package accel) so TriangleMesh does not need to
// import it directly; accel implementations satisfy this interface
// structurally.
type TriangleMeshAccel interface {
	RayIntersect(r core.Ray, maxT float32) (triIndex int, u, v, t float32, hit bool)
	AABB() core.AABB
}

// TriangleMesh holds ordered arrays of positions, optional normals,
// optional texture coordinates, and triangle vertex-index triples.
// Individual Triangles are produced on demand — they are views, not
// owned entities. Per spec.md §3.
type TriangleMesh struct {
	Positions []core.Vec3
	Normals   []core.Vec3 // optional, len 0 if absent
	UVs       []core.Vec2 // optional, len 0 if absent
	Indices   [][3]int32  // one triple per triangle

	Algorithm IntersectAlgorithm

	bsdf    BSDF
	emitter Emitter

	aabb       core.AABB
	totalArea  float32
	areaDistr  *core.Distribution1D
	accel      TriangleMeshAccel
}

// NewTriangleMesh builds the derived data (AABB, per-triangle area
// distribution) but does not build the acceleration structure; call
// SetAccel once package accel has built one, so shape never imports
// accel.
func NewTriangleMesh(positions []core.Vec3, normals []core.Vec3, uvs []core.Vec2, indices [][3]int32) *TriangleMesh {
	m := &TriangleMesh{
		Positions: positions,
		Normals:   normals,
		UVs:       uvs,
		Indices:   indices,
		Algorithm: Watertight,
		aabb:      core.EmptyAABB,
	}

	weights := make([]float32, len(indices))
	for i := range indices {
		a, b, c := m.vertices(i)
		area := triangleArea(a, b, c)
		weights[i] = area
		m.totalArea += area
		m.aabb = core.Merge(m.aabb, core.NewAABB(a, b))
		m.aabb = core.Merge(m.aabb, core.NewAABB(m.aabb.Min, c))
	}
	m.areaDistr = core.NewDistribution1D(weights)
	return m
}

func (m *TriangleMesh) SetAccel(a TriangleMeshAccel)  { m.accel = a }
func (m *TriangleMesh) SetBSDF(b BSDF)                { m.bsdf = b }
func (m *TriangleMesh) SetEmitter(e Emitter)          { m.emitter = e }
func (m *TriangleMesh) BSDF() BSDF                    { return m.bsdf }
func (m *TriangleMesh) Emitter() Emitter              { return m.emitter }
func (m *TriangleMesh) IsLight() bool                 { return m.emitter != nil }
func (m *TriangleMesh) AABB() core.AABB               { return m.aabb }
func (m *TriangleMesh) Area() float32                 { return m.totalArea }
func (m *TriangleMesh) TriangleCount() int             { return len(m.Indices) }

func triangleArea(a, b, c core.Vec3) float32 {
	return 0.5 * core.Cross(b.Sub(a), c.Sub(a)).Len()
}

func (m *TriangleMesh) vertices(tri int) (a, b, c core.Vec3) {
	idx := m.Indices[tri]
	return m.Positions[idx[0]], m.Positions[idx[1]], m.Positions[idx[2]]
}

// TriAABB and TriCentroid satisfy package accel's primitive-accessor
// contract (aabb(p), center(p)) for the mesh-level BVH/octree.
func (m *TriangleMesh) TriAABB(tri int) core.AABB {
	a, b, c := m.vertices(tri)
	box := core.NewAABB(a, b)
	return core.Merge(box, core.NewAABB(c, c))
}

func (m *TriangleMesh) TriCentroid(tri int) core.Vec3 {
	a, b, c := m.vertices(tri)
	return a.Add(b).Add(c).Scale(1.0 / 3.0)
}

// RayIntersect intersects the mesh's acceleration structure and builds
// the full RayIntersectInfo (shading frame from the interpolated vertex
// normal if present, else the geometric normal; UVs interpolated or
// barycentric, wrapped into [0,1)).
func (m *TriangleMesh) RayIntersect(r core.Ray, maxT float32) (RayIntersectInfo, bool) {
	if m.accel == nil {
		return RayIntersectInfo{}, false
	}
	triIdx, u, v, t, ok := m.accel.RayIntersect(r, maxT)
	if !ok {
		return RayIntersectInfo{}, false
	}

	idx := m.Indices[triIdx]
	p0, p1, p2 := m.Positions[idx[0]], m.Positions[idx[1]], m.Positions[idx[2]]
	w := 1 - u - v

	p := r.At(t)

	var normal core.Vec3
	if len(m.Normals) > 0 {
		n0, n1, n2 := m.Normals[idx[0]], m.Normals[idx[1]], m.Normals[idx[2]]
		normal = n0.Scale(w).Add(n1.Scale(u)).Add(n2.Scale(v))
	} else {
		normal = core.Cross(p1.Sub(p0), p2.Sub(p0))
	}

	var uv core.Vec2
	if len(m.UVs) > 0 {
		uv0, uv1, uv2 := m.UVs[idx[0]], m.UVs[idx[1]], m.UVs[idx[2]]
		uv = core.Vec2{
			X: wrap01(w*uv0.X + u*uv1.X + v*uv2.X),
			Y: wrap01(w*uv0.Y + u*uv1.Y + v*uv2.Y),
		}
	} else {
		uv = core.Vec2{X: wrap01(u), Y: wrap01(v)}
	}

	return RayIntersectInfo{
		P:     p,
		Frame: core.NewShadingFrame(normal),
		T:     t,
		UV:    uv,
		Hit:   m,
	}, true
}

func wrap01(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}

// SamplePoint samples a triangle proportionally to area, then a
// barycentric point uniformly within it. Returns the world point,
// world normal, and the area-measure pdf 1/totalArea (spec.md §8
// property 4).
func (m *TriangleMesh) SamplePoint(sampler core.Sampler) (core.Vec3, core.Vec3, float32) {
	triIdx, _ := m.areaDistr.Sample(sampler.Sample1D())
	u1, u2 := sampler.Sample1D(), sampler.Sample1D()

	su := float32(math.Sqrt(float64(u1)))
	b0 := 1 - su
	b1 := u2 * su

	a, b, c := m.vertices(triIdx)
	p := a.Scale(b0).Add(b.Scale(b1)).Add(c.Scale(1 - b0 - b1))

	var n core.Vec3
	idx := m.Indices[triIdx]
	if len(m.Normals) > 0 {
		n0, n1, n2 := m.Normals[idx[0]], m.Normals[idx[1]], m.Normals[idx[2]]
		n = n0.Scale(b0).Add(n1.Scale(b1)).Add(n2.Scale(1 - b0 - b1)).Normalize()
	} else {
		n = core.Cross(b.Sub(a), c.Sub(a)).Normalize()
	}

	if m.totalArea <= 0 {
		return p, n, 0
	}
	return p, n, 1 / m.totalArea
}

// PdfSolidAngle converts the mesh's area-measure pdf to solid angle:
// pdf_ω = pdf_A * d^2 / |n·ω| (GLOSSARY).
func (m *TriangleMesh) PdfSolidAngle(hitPos, shapePos, shapeNormal core.Vec3) float32 {
	if m.totalArea <= 0 {
		return 0
	}
	toHit := hitPos.Sub(shapePos)
	d2 := toHit.Len2()
	if d2 <= 0 {
		return 0
	}
	cosTheta := core.Dot(shapeNormal.Normalize(), toHit.Normalize())
	if cosTheta <= 0 {
		cosTheta = -cosTheta
	}
	if cosTheta <= 1e-6 {
		return 0
	}
	pdfArea := 1 / m.totalArea
	return pdfArea * d2 / cosTheta
}
