package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pathtracer/internal/accel"
	"go-pathtracer/internal/camera"
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/integrator"
	"go-pathtracer/internal/scenegraph"
	"go-pathtracer/internal/shape"
)

func testScene() *scenegraph.Scene {
	positions := []core.Vec3{
		{X: -10, Y: -10, Z: 0},
		{X: 10, Y: -10, Z: 0},
		{X: 0, Y: 10, Z: 0},
	}
	mesh := shape.NewTriangleMesh(positions, nil, nil, [][3]int32{{0, 1, 2}})
	accel.BuildMeshBVH(mesh)

	camToWorld := core.Identity4()
	cam := camera.NewPinhole(camToWorld, 60, 8, 6)
	return scenegraph.NewScene([]shape.Shape{mesh}, nil, nil, cam)
}

func TestRenderFillsEveryPixel(t *testing.T) {
	scene := testScene()
	job := NewJob(8, 6)
	integ := integrator.DepthIntegrator{}

	err := Render(context.Background(), job, scene, integ, Options{
		Width: 8, Height: 6, SamplesPerPixel: 2, Seed: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, job.RowsDone())
}

func TestRenderIsDeterministicForFixedSeed(t *testing.T) {
	scene := testScene()
	integ := integrator.DepthIntegrator{}

	jobA := NewJob(4, 4)
	require.NoError(t, Render(context.Background(), jobA, scene, integ, Options{Width: 4, Height: 4, SamplesPerPixel: 4, Seed: 7}))

	jobB := NewJob(4, 4)
	require.NoError(t, Render(context.Background(), jobB, scene, integ, Options{Width: 4, Height: 4, SamplesPerPixel: 4, Seed: 7}))

	assert.Equal(t, jobA.Image.Pixels, jobB.Image.Pixels)
}
