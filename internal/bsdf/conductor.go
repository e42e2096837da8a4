package bsdf

import "go-pathtracer/internal/core"

// Conductor is a perfectly smooth metal: a single reflected direction
// weighted by the Fresnel-conductor reflectance at the tabulated
// complex IOR (spec.md §5).
type Conductor struct {
	IOR ConductorIOR
}

func NewConductor(ior ConductorIOR) *Conductor { return &Conductor{IOR: ior} }

func (c *Conductor) Sample(wi core.Vec3, uv core.Vec2, sampler core.Sampler) (wo, weight core.Vec3, pdf float32) {
	cosI := -wi.Z
	if cosI <= 0 {
		return core.Vec3{}, core.Vec3{}, 0
	}
	weight = fresnelConductor(cosI, c.IOR.Eta, c.IOR.K)
	return reflect(wi), weight, 0
}

func (c *Conductor) Pdf(wi, wo core.Vec3) float32 { return 0 }

func (c *Conductor) Eval(wi, wo core.Vec3, uv core.Vec2) core.Vec3 { return core.Vec3{} }

func (c *Conductor) IsDiscrete(frontside bool) bool { return true }
