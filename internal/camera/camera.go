// Package camera implements the two camera models of spec.md §7:
// Pinhole and ThinLens. Both share the single sample_ray(x, y, sampler)
// signature (pixel-continuous raster coordinates plus a sampler) even
// though Pinhole never draws from the sampler — unifying the two
// models behind one interface was an open question in spec.md §9,
// resolved here in favor of the signature the integrator's per-sample
// loop can call uniformly.
package camera

import (
	"math"

	"go-pathtracer/internal/core"
)

// Camera generates a world-space ray for a raster sample.
type Camera interface {
	SampleRay(x, y float32, sampler core.Sampler) core.Ray
}

// Pinhole is an ideal point-aperture camera: camToWorld places the
// camera (looking down -z, +y up in camera space) in the scene; the
// image plane sits at camera-space z=-1 with half-extents derived from
// the horizontal field of view and the aspect ratio.
type Pinhole struct {
	camToWorld              core.Mat4
	halfWidth, halfHeight   float32
	width, height           int
}

// NewPinhole builds a pinhole camera with the given horizontal field of
// view (degrees) and raster resolution.
func NewPinhole(camToWorld core.Mat4, fovXDeg float32, width, height int) *Pinhole {
	halfWidth := float32(math.Tan(float64(fovXDeg) * math.Pi / 360))
	halfHeight := halfWidth * float32(height) / float32(width)
	return &Pinhole{
		camToWorld: camToWorld,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		width:      width,
		height:     height,
	}
}

// localDirection is the unnormalized camera-space ray direction for
// raster coordinate (x, y): the image plane at z=-1, y flipped so row 0
// is the top of the image.
func (p *Pinhole) localDirection(x, y float32) core.Vec3 {
	ndcX := (x/float32(p.width))*2 - 1
	ndcY := 1 - (y/float32(p.height))*2
	return core.Vec3{X: ndcX * p.halfWidth, Y: ndcY * p.halfHeight, Z: -1}
}

func (p *Pinhole) SampleRay(x, y float32, sampler core.Sampler) core.Ray {
	origin := p.camToWorld.TransformPoint(core.Vec3{})
	dir := p.camToWorld.TransformVector(p.localDirection(x, y))
	return core.NewRay(origin, dir)
}

// ThinLens adds a finite circular aperture and a focal plane to the
// pinhole model: rays are distributed over a lens disk and re-aimed so
// every such ray still passes through the same focus point the ideal
// pinhole ray would have hit at FocalDistance (spec.md §7).
type ThinLens struct {
	Pinhole
	LensRadius    float32
	FocalDistance float32
}

func NewThinLens(camToWorld core.Mat4, fovXDeg float32, width, height int, lensRadius, focalDistance float32) *ThinLens {
	return &ThinLens{
		Pinhole:       *NewPinhole(camToWorld, fovXDeg, width, height),
		LensRadius:    lensRadius,
		FocalDistance: focalDistance,
	}
}

func (t *ThinLens) SampleRay(x, y float32, sampler core.Sampler) core.Ray {
	localDir := t.localDirection(x, y)
	// Scale the ideal pinhole direction so its endpoint lands exactly on
	// the focal plane at camera-space z = -FocalDistance.
	focusScale := t.FocalDistance / -localDir.Z
	focusPoint := localDir.Scale(focusScale)

	lens, _ := core.SampleUniformDisk(sampler.Sample1D(), sampler.Sample1D())
	lensOrigin := core.Vec3{X: lens.X * t.LensRadius, Y: lens.Y * t.LensRadius, Z: 0}

	newDir := focusPoint.Sub(lensOrigin)
	worldOrigin := t.camToWorld.TransformPoint(lensOrigin)
	worldDir := t.camToWorld.TransformVector(newDir)
	return core.NewRay(worldOrigin, worldDir)
}
