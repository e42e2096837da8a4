package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarpPdfsMatchSampledPoint(t *testing.T) {
	sampler := NewPCG32Sampler(123, 1)
	for i := 0; i < 256; i++ {
		u1, u2 := sampler.Sample1D(), sampler.Sample1D()

		p, pdf := SampleUniformDisk(u1, u2)
		assert.InDelta(t, pdf, UniformDiskPdf(p), 1e-3)

		v, pdf := SampleUniformSphere(u1, u2)
		assert.InDelta(t, pdf, UniformSpherePdf(), 1e-3)
		assert.InDelta(t, float32(1), v.Len(), 1e-3)

		v, pdf = SampleUniformHemisphere(u1, u2)
		assert.InDelta(t, pdf, UniformHemispherePdf(v), 1e-3)

		v, pdf = SampleCosineHemisphere(u1, u2)
		assert.InDelta(t, pdf, CosineHemispherePdf(v), 1e-3)

		v, pdf = SampleBeckmannNormal(u1, u2, 0.3)
		assert.InDelta(t, pdf, BeckmannNormalPdf(v, 0.3), 1e-3)
	}
}

func TestShadingFrameOrthonormal(t *testing.T) {
	normals := []Vec3{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}, {1, 1, 1}, {-1, 2, -3}}
	for _, n := range normals {
		f := NewShadingFrame(n)
		assert.InDelta(t, float32(1), f.T.Len(), 1e-4)
		assert.InDelta(t, float32(1), f.B.Len(), 1e-4)
		assert.InDelta(t, float32(1), f.N.Len(), 1e-4)
		assert.InDelta(t, float32(0), Dot(f.T, f.N), 1e-4)
		assert.InDelta(t, float32(0), Dot(f.B, f.N), 1e-4)
		assert.InDelta(t, float32(0), Dot(f.T, f.B), 1e-4)

		world := Vec3{0.3, -0.4, 0.8}
		roundtrip := f.ToWorld(f.ToLocal(world))
		assert.InDelta(t, world.X, roundtrip.X, 1e-4)
		assert.InDelta(t, world.Y, roundtrip.Y, 1e-4)
		assert.InDelta(t, world.Z, roundtrip.Z, 1e-4)
	}
}

func TestDistribution1DSamplesProportionally(t *testing.T) {
	d := NewDistribution1D([]float32{1, 3})
	assert.InDelta(t, float32(0.25), d.Pdf(0), 1e-6)
	assert.InDelta(t, float32(0.75), d.Pdf(1), 1e-6)

	idx, _ := d.Sample(0.1)
	assert.Equal(t, 0, idx)
	idx, _ = d.Sample(0.9)
	assert.Equal(t, 1, idx)
}
