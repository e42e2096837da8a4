package bsdf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-pathtracer/internal/core"
)

func TestFresnelDielectricNormalIncidence(t *testing.T) {
	eta := float32(1.5)
	got := fresnelDielectric(1, 1.0, eta)
	want := float32(math.Pow(float64((eta-1)/(eta+1)), 2))
	assert.InDelta(t, want, got, 1e-4)
}

func TestFresnelDielectricTotalInternalReflection(t *testing.T) {
	// Grazing ray from inside a denser medium into air must fully reflect.
	got := fresnelDielectric(0.05, 1.5, 1.0)
	assert.InDelta(t, float32(1.0), got, 1e-3)
}

func TestFresnelConductorWithinUnitRange(t *testing.T) {
	for cos := float32(0.1); cos <= 1.0; cos += 0.1 {
		f := fresnelConductor(cos, Gold.Eta, Gold.K)
		assert.GreaterOrEqual(t, f.X, float32(0))
		assert.LessOrEqual(t, f.X, float32(1.01))
	}
}

func TestDiffuseEvalMatchesLambert(t *testing.T) {
	d := NewDiffuse(core.Vec3{X: 0.8, Y: 0.8, Z: 0.8})
	wi := core.Vec3{X: 0, Y: 0, Z: -1}
	wo := core.Vec3{X: 0, Y: 0, Z: 1}
	f := d.Eval(wi, wo, core.Vec2{})
	assert.InDelta(t, 0.8/math.Pi, float64(f.X), 1e-5)
}

func TestDiffuseBacksideIsZero(t *testing.T) {
	d := NewDiffuse(core.One3)
	wi := core.Vec3{X: 0, Y: 0, Z: -1}
	wo := core.Vec3{X: 0, Y: 0, Z: -1} // below the hemisphere
	f := d.Eval(wi, wo, core.Vec2{})
	assert.True(t, f.IsZero())
}

func TestMirrorIsDiscreteWithZeroPdf(t *testing.T) {
	m := NewMirror()
	assert.True(t, m.IsDiscrete(true))
	assert.Equal(t, float32(0), m.Pdf(core.Vec3{Z: -1}, core.Vec3{Z: 1}))
}

func TestMirrorReflectsStraightBack(t *testing.T) {
	m := NewMirror()
	wo, weight, pdf := m.Sample(core.Vec3{X: 0, Y: 0, Z: -1}, core.Vec2{}, nil)
	assert.InDelta(t, float32(1), wo.Z, 1e-6)
	assert.Equal(t, core.One3, weight)
	assert.Equal(t, float32(0), pdf)
}

func TestTwoSidedFlipsOnBackHit(t *testing.T) {
	ts := NewTwoSided(NewDiffuse(core.One3))
	frontWi := core.Vec3{X: 0, Y: 0, Z: -1}
	backWi := core.Vec3{X: 0, Y: 0, Z: 1}
	frontWo := core.Vec3{X: 0, Y: 0, Z: 1}
	backWo := core.Vec3{X: 0, Y: 0, Z: -1}

	fFront := ts.Eval(frontWi, frontWo, core.Vec2{})
	fBack := ts.Eval(backWi, backWo, core.Vec2{})
	assert.InDelta(t, fFront.X, fBack.X, 1e-6)
}

func TestOrenNayarReducesNearLambertAtZeroRoughness(t *testing.T) {
	on := NewOrenNayar(core.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, 0)
	wi := core.Vec3{X: 0, Y: 0, Z: -1}
	wo := core.Vec3{X: 0, Y: 0, Z: 1}
	f := on.Eval(wi, wo, core.Vec2{})
	assert.InDelta(t, 0.5/math.Pi, float64(f.X), 1e-4)
}

func TestMicrofacetKsFromAlbedo(t *testing.T) {
	m := NewMicrofacet(core.Vec3{X: 0.3, Y: 0.3, Z: 0.3}, 0.1, 1.5, 1.0)
	assert.InDelta(t, float32(0.7), m.ks, 1e-6)
}

func TestConductorReflectsAboutNormal(t *testing.T) {
	c := NewConductor(Gold)
	wi := core.Vec3{X: 0.3, Y: 0, Z: -0.9}
	wo, weight, pdf := c.Sample(wi, core.Vec2{}, nil)
	assert.InDelta(t, wi.X, wo.X, 1e-6)
	assert.InDelta(t, -wi.Z, wo.Z, 1e-6)
	assert.Equal(t, float32(0), pdf)
	assert.Greater(t, weight.X, float32(0))
}
