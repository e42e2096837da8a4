package bsdf

import "go-pathtracer/internal/core"

// Mirror is a perfect specular reflector: a single discrete direction,
// unit weight, zero pdf (spec.md §5).
type Mirror struct{}

func NewMirror() *Mirror { return &Mirror{} }

func (m *Mirror) Sample(wi core.Vec3, uv core.Vec2, sampler core.Sampler) (wo, weight core.Vec3, pdf float32) {
	return reflect(wi), core.One3, 0
}

func (m *Mirror) Pdf(wi, wo core.Vec3) float32 { return 0 }

func (m *Mirror) Eval(wi, wo core.Vec3, uv core.Vec2) core.Vec3 { return core.Vec3{} }

func (m *Mirror) IsDiscrete(frontside bool) bool { return true }
