package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-pathtracer/internal/core"
)

func TestPinholeCenterRayPointsForward(t *testing.T) {
	cam := NewPinhole(core.Identity4(), 90, 100, 100)
	r := cam.SampleRay(50, 50, nil)
	dir := r.D
	assert.InDelta(t, 0, dir.X, 1e-4)
	assert.InDelta(t, 0, dir.Y, 1e-4)
	assert.Less(t, dir.Z, float32(0))
}

func TestPinholeLeftEdgePointsNegativeX(t *testing.T) {
	cam := NewPinhole(core.Identity4(), 90, 100, 100)
	r := cam.SampleRay(0, 50, nil)
	assert.Less(t, r.D.X, float32(0))
}

func TestThinLensCenterRayMatchesPinholeDirectionAtOrigin(t *testing.T) {
	tl := NewThinLens(core.Identity4(), 60, 80, 80, 0, 5)
	sampler := newFixedSampler(0.5, 0.5)
	r := tl.SampleRay(40, 40, sampler)
	assert.InDelta(t, 0, r.O.X, 1e-4)
	assert.InDelta(t, 0, r.O.Y, 1e-4)

	want := NewPinhole(core.Identity4(), 60, 80, 80).SampleRay(40, 40, nil).D
	assert.InDelta(t, want.X, r.D.X, 1e-4)
	assert.InDelta(t, want.Y, r.D.Y, 1e-4)
	assert.InDelta(t, want.Z, r.D.Z, 1e-4)
}

type fixedSampler struct {
	values []float32
	i      int
}

func newFixedSampler(v ...float32) *fixedSampler { return &fixedSampler{values: v} }

func (f *fixedSampler) Sample1D() float32 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}
