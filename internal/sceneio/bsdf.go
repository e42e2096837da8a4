package sceneio

import (
	"fmt"

	"go-pathtracer/internal/bsdf"
	"go-pathtracer/internal/shape"
)

func buildBSDF(spec *BSDFSpec) (shape.BSDF, error) {
	if spec == nil {
		return nil, nil
	}

	switch spec.Type {
	case "diffuse":
		return bsdf.NewDiffuse(vec3FromPtr(spec.Albedo)), nil
	case "mirror":
		return bsdf.NewMirror(), nil
	case "dielectric":
		return bsdf.NewDielectric(spec.IOR), nil
	case "conductor":
		ior, ok := bsdf.ConductorByName(spec.Conductor)
		if !ok {
			return nil, fmt.Errorf("unknown conductor %q", spec.Conductor)
		}
		return bsdf.NewConductor(ior), nil
	case "microfacet":
		inIOR, exIOR := spec.InIOR, spec.ExIOR
		if inIOR <= 0 {
			inIOR = 1.5
		}
		if exIOR <= 0 {
			exIOR = 1.0
		}
		return bsdf.NewMicrofacet(vec3FromPtr(spec.Kd), spec.Alpha, inIOR, exIOR), nil
	case "orennayar":
		return bsdf.NewOrenNayar(vec3FromPtr(spec.Albedo), spec.Sigma), nil
	case "twosided":
		inner, err := buildBSDF(spec.Inner)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, fmt.Errorf("twosided bsdf requires an inner bsdf")
		}
		return bsdf.NewTwoSided(inner), nil
	default:
		return nil, fmt.Errorf("unsupported bsdf type %q", spec.Type)
	}
}
