package sceneio

import (
	"fmt"

	"go-pathtracer/internal/imageio"
	"go-pathtracer/internal/light"
)

func buildLight(spec LightSpec) (light.Light, light.EnvLight, error) {
	switch spec.Type {
	case "point":
		if spec.Position == nil || spec.Intensity == nil {
			return nil, nil, fmt.Errorf("point light requires pos and intensity")
		}
		return light.NewPointLight(vec3FromPtr(spec.Position), vec3FromPtr(spec.Intensity)), nil, nil

	case "constant-env":
		if spec.Radiance == nil {
			return nil, nil, fmt.Errorf("constant-env light requires radiance")
		}
		env := light.NewConstantEnvLight(vec3FromPtr(spec.Radiance))
		return nil, env, nil

	case "image-env":
		if spec.Path == "" {
			return nil, nil, fmt.Errorf("image-env light requires a path")
		}
		w, h, pixels, err := imageio.LoadEquirectangular(spec.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading image-env %q: %w", spec.Path, err)
		}
		env := light.NewImageEnvLight(w, h, pixels)
		return nil, env, nil

	default:
		return nil, nil, fmt.Errorf("unsupported light type %q", spec.Type)
	}
}
