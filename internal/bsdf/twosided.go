package bsdf

import (
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/shape"
)

// TwoSided makes an otherwise one-sided BSDF shade both faces of a
// surface: a hit on the back face has both wi and wo mirrored through
// the shading plane before being handed to the wrapped BSDF, so the
// wrapped BSDF only ever sees front-facing directions (spec.md §5).
type TwoSided struct {
	Front shape.BSDF
	Back  shape.BSDF
}

// NewTwoSided wraps a single BSDF for use on both faces.
func NewTwoSided(b shape.BSDF) *TwoSided {
	return &TwoSided{Front: b, Back: b}
}

func flipZ(v core.Vec3) core.Vec3 { return core.Vec3{X: v.X, Y: v.Y, Z: -v.Z} }

func (t *TwoSided) Sample(wi core.Vec3, uv core.Vec2, sampler core.Sampler) (wo, weight core.Vec3, pdf float32) {
	frontside := wi.Z < 0
	if frontside {
		return t.Front.Sample(wi, uv, sampler)
	}
	wo, weight, pdf = t.Back.Sample(flipZ(wi), uv, sampler)
	return flipZ(wo), weight, pdf
}

func (t *TwoSided) Pdf(wi, wo core.Vec3) float32 {
	if wi.Z < 0 {
		return t.Front.Pdf(wi, wo)
	}
	return t.Back.Pdf(flipZ(wi), flipZ(wo))
}

func (t *TwoSided) Eval(wi, wo core.Vec3, uv core.Vec2) core.Vec3 {
	if wi.Z < 0 {
		return t.Front.Eval(wi, wo, uv)
	}
	return t.Back.Eval(flipZ(wi), flipZ(wo), uv)
}

func (t *TwoSided) IsDiscrete(frontside bool) bool {
	if frontside {
		return t.Front.IsDiscrete(true)
	}
	return t.Back.IsDiscrete(true)
}
