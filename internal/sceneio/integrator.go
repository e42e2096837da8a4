package sceneio

import (
	"fmt"

	"go-pathtracer/internal/integrator"
)

// RenderSettings carries the parameters the integrator type doesn't
// own directly (spp, and path's max depth) back to the caller,
// since integrator.Integrator's Li signature has no room for them.
type RenderSettings struct {
	SamplesPerPixel int
	MaxDepth        int
}

func buildIntegrator(spec IntegratorSpec) (integrator.Integrator, RenderSettings, error) {
	settings := RenderSettings{SamplesPerPixel: spec.SPP, MaxDepth: spec.DepthMax}
	if settings.SamplesPerPixel <= 0 {
		settings.SamplesPerPixel = 1
	}

	switch spec.Type {
	case "depth":
		return integrator.DepthIntegrator{}, settings, nil
	case "uv":
		return integrator.UVIntegrator{}, settings, nil
	case "hitpos":
		return integrator.HitPosIntegrator{}, settings, nil
	case "normal":
		return integrator.NormalIntegrator{}, settings, nil
	case "direct":
		return integrator.DirectIntegrator{}, settings, nil
	case "path":
		if spec.DepthMax <= 0 {
			return nil, settings, fmt.Errorf("path integrator requires a positive depth_max")
		}
		settings.MaxDepth = spec.DepthMax
		return integrator.NewPathIntegrator(spec.DepthMax, spec.DepthRR), settings, nil
	default:
		return nil, settings, fmt.Errorf("unsupported integrator type %q", spec.Type)
	}
}
