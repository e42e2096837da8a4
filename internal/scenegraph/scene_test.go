package scenegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pathtracer/internal/accel"
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/light"
	"go-pathtracer/internal/shape"
)

func unitTriangleMesh() *shape.TriangleMesh {
	positions := []core.Vec3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	m := shape.NewTriangleMesh(positions, nil, nil, [][3]int32{{0, 1, 2}})
	accel.BuildMeshBVH(m)
	return m
}

func TestSceneBuildComputesRadius(t *testing.T) {
	mesh := unitTriangleMesh()
	scene := NewScene([]shape.Shape{mesh}, nil, nil, nil)
	require.Greater(t, scene.Radius(), float32(0))
}

func TestSceneIncludesEnvLightInSelector(t *testing.T) {
	mesh := unitTriangleMesh()
	env := light.NewConstantEnvLight(core.One3)
	scene := NewScene([]shape.Shape{mesh}, nil, env, nil)
	assert.Equal(t, 1, scene.LightCount())
	assert.Greater(t, env.Power(), float32(0)) // scene radius threaded through
}

func TestSceneRayIntersectHitsMesh(t *testing.T) {
	mesh := unitTriangleMesh()
	scene := NewScene([]shape.Shape{mesh}, nil, nil, nil)
	r := core.NewRay(core.Vec3{X: 0, Y: 0, Z: -5}, core.Vec3{X: 0, Y: 0, Z: 1})
	_, ok := scene.RayIntersect(r, 1e6)
	assert.True(t, ok)
}
