// Package render drives the integrator across the image plane. Where
// the teacher's ProgressiveRenderer (rt/renderer.go) advanced one
// scanline per ebiten Update() call on a single goroutine, this
// package fans the same per-scanline work out across an errgroup
// worker pool (spec.md §10's parallel-rendering requirement) and
// reports progress through a shared atomic counter any viewer —
// ebiten-based or not — can poll.
package render

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"go-pathtracer/internal/core"
	"go-pathtracer/internal/imageio"
	"go-pathtracer/internal/integrator"
	"go-pathtracer/internal/scenegraph"
)

// Options configures a render pass.
type Options struct {
	Width, Height   int
	SamplesPerPixel int
	Seed            uint64
	Workers         int // 0 sets no limit: every row gets its own goroutine
}

// Job owns the framebuffer and progress state for one render pass. A
// Job is safe to read concurrently with Render running: each worker
// goroutine owns a disjoint set of rows, so framebuffer writes never
// race, and RowsDone is updated with atomics.
type Job struct {
	Image    *imageio.Image
	rowsDone atomic.Int64
	height   int
}

// RowsDone reports how many scanlines have completed so far.
func (j *Job) RowsDone() int { return int(j.rowsDone.Load()) }

// Height is the total scanline count, for computing progress fractions.
func (j *Job) Height() int { return j.height }

// NewJob allocates the framebuffer for a render of the given size.
func NewJob(width, height int) *Job {
	return &Job{Image: imageio.NewImage(width, height), height: height}
}

// Render runs integ over scene's camera rays into job.Image, fanning
// scanlines out across a worker pool. It returns the first worker
// error, if any (errgroup cancels the remaining workers' context on
// first failure, though the integrator itself never returns an error
// today — this keeps the door open for one that validates scene state
// lazily per-ray).
func Render(ctx context.Context, job *Job, scene *scenegraph.Scene, integ integrator.Integrator, opts Options) error {
	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	width, height := job.Image.Width, job.Image.Height
	spp := opts.SamplesPerPixel
	if spp < 1 {
		spp = 1
	}

	for y := 0; y < height; y++ {
		row := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			renderRow(job, scene, integ, row, width, spp, opts.Seed)
			job.rowsDone.Add(1)
			return nil
		})
	}

	return g.Wait()
}

func renderRow(job *Job, scene *scenegraph.Scene, integ integrator.Integrator, y, width, spp int, seed uint64) {
	for x := 0; x < width; x++ {
		pixelIndex := uint64(y*width + x)
		sampler := core.NewPCG32Sampler(seed, pixelIndex)

		var sum core.Vec3
		for s := 0; s < spp; s++ {
			px := float32(x) + sampler.Sample1D()
			py := float32(y) + sampler.Sample1D()
			ray := scene.Camera.SampleRay(px, py, sampler)
			sum = sum.Add(integ.Li(ray, scene, sampler))
		}
		job.Image.Set(x, y, sum.Scale(1/float32(spp)))
	}
}
