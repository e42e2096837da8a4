package accel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pathtracer/internal/core"
	"go-pathtracer/internal/shape"
)

func randomTriangleSoup(n int, seed int64) *shape.TriangleMesh {
	rnd := rand.New(rand.NewSource(seed))
	positions := make([]core.Vec3, 0, n*3)
	indices := make([][3]int32, 0, n)
	for i := 0; i < n; i++ {
		cx := (rnd.Float32()*2 - 1) * 5
		cy := (rnd.Float32()*2 - 1) * 5
		cz := (rnd.Float32()*2 - 1) * 5
		base := core.Vec3{X: cx, Y: cy, Z: cz}
		a := base.Add(core.Vec3{X: rnd.Float32() * 0.3, Y: 0, Z: 0})
		b := base.Add(core.Vec3{X: 0, Y: rnd.Float32() * 0.3, Z: 0})
		c := base.Add(core.Vec3{X: 0, Y: 0, Z: rnd.Float32() * 0.3})
		idx := int32(len(positions))
		positions = append(positions, a, b, c)
		indices = append(indices, [3]int32{idx, idx + 1, idx + 2})
	}
	return shape.NewTriangleMesh(positions, nil, nil, indices)
}

func naiveIntersect(m *shape.TriangleMesh, r core.Ray, maxT float32) (int, float32, bool) {
	bestT := maxT
	bestIdx := -1
	for i := 0; i < m.TriangleCount(); i++ {
		idx := m.Indices[i]
		a, b, c := m.Positions[idx[0]], m.Positions[idx[1]], m.Positions[idx[2]]
		_, _, t, ok := shape.IntersectWatertight(r, a, b, c, bestT)
		if ok {
			bestT = t
			bestIdx = i
		}
	}
	return bestIdx, bestT, bestIdx >= 0
}

func TestMeshBVHMatchesNaiveScan(t *testing.T) {
	mesh := randomTriangleSoup(200, 7)
	BuildMeshBVH(mesh)

	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		origin := core.Vec3{X: (rnd.Float32()*2 - 1) * 8, Y: (rnd.Float32()*2 - 1) * 8, Z: -20}
		target := core.Vec3{X: (rnd.Float32()*2 - 1) * 6, Y: (rnd.Float32()*2 - 1) * 6, Z: (rnd.Float32()*2 - 1) * 6}
		r := core.NewRay(origin, target.Sub(origin))

		wantIdx, wantT, wantOk := naiveIntersect(mesh, r, 1e6)
		info, gotOk := mesh.RayIntersect(r, 1e6)

		require.Equal(t, wantOk, gotOk)
		if wantOk {
			assert.InDelta(t, wantT, info.T, 1e-2)
			_ = wantIdx
		}
	}
}

func TestMeshOctreeMatchesNaiveScan(t *testing.T) {
	mesh := randomTriangleSoup(150, 11)
	BuildMeshOctree(mesh)

	rnd := rand.New(rand.NewSource(21))
	for i := 0; i < 150; i++ {
		origin := core.Vec3{X: (rnd.Float32()*2 - 1) * 8, Y: (rnd.Float32()*2 - 1) * 8, Z: -20}
		target := core.Vec3{X: (rnd.Float32()*2 - 1) * 6, Y: (rnd.Float32()*2 - 1) * 6, Z: (rnd.Float32()*2 - 1) * 6}
		r := core.NewRay(origin, target.Sub(origin))

		_, wantT, wantOk := naiveIntersect(mesh, r, 1e6)
		info, gotOk := mesh.RayIntersect(r, 1e6)

		require.Equal(t, wantOk, gotOk)
		if wantOk {
			assert.InDelta(t, wantT, info.T, 1e-2)
		}
	}
}
