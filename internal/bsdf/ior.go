package bsdf

import "go-pathtracer/internal/core"

// ConductorIOR holds tabulated complex index of refraction (eta - i*k)
// at RGB wavelengths for a named conductor (spec.md §5's conductor
// table).
type ConductorIOR struct {
	Eta core.Vec3
	K   core.Vec3
}

// Tabulated conductors, spec.md §5.
var (
	Gold = ConductorIOR{
		Eta: core.Vec3{X: 0.143036, Y: 0.375307, Z: 1.442045},
		K:   core.Vec3{X: 3.982997, Y: 2.385556, Z: 1.603359},
	}
	Silver = ConductorIOR{
		Eta: core.Vec3{X: 0.155276, Y: 0.116728, Z: 0.138388},
		K:   core.Vec3{X: 4.828354, Y: 3.122222, Z: 2.146901},
	}
	Aluminium = ConductorIOR{
		Eta: core.Vec3{X: 1.657501, Y: 0.880405, Z: 0.521244},
		K:   core.Vec3{X: 9.223811, Y: 6.269502, Z: 4.837004},
	}
	Copper = ConductorIOR{
		Eta: core.Vec3{X: 0.201005, Y: 0.923750, Z: 1.102215},
		K:   core.Vec3{X: 3.913262, Y: 2.453045, Z: 2.142090},
	}
)

// ConductorByName resolves one of the tabulated conductors by its
// material name as it appears in a scene file ("Au", "Ag", "Al", "Cu").
// ok is false for an unrecognized name.
func ConductorByName(name string) (ConductorIOR, bool) {
	switch name {
	case "Au", "gold":
		return Gold, true
	case "Ag", "silver":
		return Silver, true
	case "Al", "aluminium", "aluminum":
		return Aluminium, true
	case "Cu", "copper":
		return Copper, true
	default:
		return ConductorIOR{}, false
	}
}
