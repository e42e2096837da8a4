package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pathtracer/internal/core"
)

func TestPointLightInverseSquareFalloff(t *testing.T) {
	p := NewPointLight(core.Vec3{X: 0, Y: 2, Z: 0}, core.Vec3{X: 10, Y: 10, Z: 10})
	sample, ok := p.SampleDirectContribution(core.Vec3{}, nil)
	require.True(t, ok)
	assert.InDelta(t, 10.0/4.0, sample.Radiance.X, 1e-4)
	assert.Equal(t, float32(0), p.PdfSolidAngle(core.Vec3{}, sample.Point, sample.Normal))
}

func TestSelectorUniformPick(t *testing.T) {
	lights := []Light{
		NewPointLight(core.Vec3{}, core.One3),
		NewPointLight(core.Vec3{}, core.One3),
		NewPointLight(core.Vec3{}, core.One3),
	}
	sel := NewSelector(lights)
	assert.Equal(t, float32(1.0/3.0), sel.PickPdf())

	_, pdf := sel.Pick(0.999)
	assert.Equal(t, float32(1.0/3.0), pdf)
}

func TestConstantEnvRadianceIsDirectionIndependent(t *testing.T) {
	c := NewConstantEnvLight(core.Vec3{X: 1, Y: 2, Z: 3})
	c.SetSceneRadius(10)
	a := c.RadianceForMiss(core.Vec3{X: 1, Y: 0, Z: 0})
	b := c.RadianceForMiss(core.Vec3{X: 0, Y: 1, Z: 0})
	assert.Equal(t, a, b)
}

func TestImageEnvRoundTripsDirection(t *testing.T) {
	const w, h = 8, 4
	pixels := make([]core.Vec3, w*h)
	for i := range pixels {
		pixels[i] = core.Vec3{X: 1, Y: 1, Z: 1}
	}
	// A bright spot away from the poles, where the spherical round trip
	// is well conditioned.
	pixels[2*w+3] = core.Vec3{X: 100, Y: 100, Z: 100}

	env := NewImageEnvLight(w, h, pixels)
	env.SetSceneRadius(5)

	theta := (float32(2) + 0.5) / h * float32(core.Pi)
	phi := (float32(3) + 0.5) / w * 2 * float32(core.Pi)
	dir := directionFromSpherical(theta, phi)

	got := env.RadianceForMiss(dir)
	assert.InDelta(t, 100, got.X, 1e-3)

	pdf := env.PdfDirection(dir)
	assert.Greater(t, pdf, float32(0))
}

func TestImageEnvPdfDirectionIsPositive(t *testing.T) {
	const w, h = 4, 4
	pixels := make([]core.Vec3, w*h)
	for i := range pixels {
		pixels[i] = core.Vec3{X: 1, Y: 1, Z: 1}
	}
	env := NewImageEnvLight(w, h, pixels)
	env.SetSceneRadius(1)
	for _, d := range []core.Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: -1}} {
		assert.Greater(t, env.PdfDirection(d), float32(0))
	}
}
