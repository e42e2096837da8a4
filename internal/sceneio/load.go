package sceneio

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"go-pathtracer/internal/integrator"
	"go-pathtracer/internal/light"
	"go-pathtracer/internal/scenegraph"
	"go-pathtracer/internal/shape"
)

// LoadedScene is everything Load produces: the renderable scene plus
// the rendering parameters the scene file itself carries.
type LoadedScene struct {
	Scene         *scenegraph.Scene
	Integrator    integrator.Integrator
	Settings      RenderSettings
	Width, Height int
}

// Load parses path as a JSON scene description and builds the full
// renderable scene graph, logging each stage the way the teacher's
// asset-loading code reports progress (zap.Logger), per spec.md §6/§7:
// a malformed file, an unsupported type, or a missing mesh are all
// fatal input errors returned here rather than recovered from.
func Load(path string, logger *zap.Logger) (*LoadedScene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var file SceneFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}

	integ, settings, err := buildIntegrator(file.Integrator)
	if err != nil {
		return nil, err
	}
	logger.Info("integrator loaded", zap.String("type", file.Integrator.Type), zap.Int("spp", settings.SamplesPerPixel))

	cam, err := buildCamera(file.Camera)
	if err != nil {
		return nil, err
	}
	logger.Info("camera loaded", zap.String("type", file.Camera.Type), zap.Int("width", file.Camera.Width), zap.Int("height", file.Camera.Height))

	var shapes []shape.Shape
	var lights []light.Light
	var envLight light.EnvLight

	for _, spec := range file.Shapes {
		s, areaLight, err := buildShape(spec)
		if err != nil {
			return nil, fmt.Errorf("loading shape %q: %w", spec.Path, err)
		}
		shapes = append(shapes, s)
		if areaLight != nil {
			lights = append(lights, areaLight)
		}
		logger.Info("shape loaded", zap.String("type", spec.Type), zap.String("path", spec.Path), zap.Int("triangles", s.TriangleCount()))
	}

	for _, spec := range file.Lights {
		l, env, err := buildLight(spec)
		if err != nil {
			return nil, fmt.Errorf("loading light %q: %w", spec.Type, err)
		}
		if l != nil {
			lights = append(lights, l)
		}
		if env != nil {
			if envLight != nil {
				return nil, fmt.Errorf("scene defines more than one environment light")
			}
			envLight = env
		}
		logger.Info("light loaded", zap.String("type", spec.Type))
	}

	scene := scenegraph.NewScene(shapes, lights, envLight, cam)
	logger.Info("scene built", zap.Int("shapes", len(shapes)), zap.Int("lights", scene.LightCount()), zap.Float32("radius", scene.Radius()))

	return &LoadedScene{
		Scene: scene, Integrator: integ, Settings: settings,
		Width: file.Camera.Width, Height: file.Camera.Height,
	}, nil
}
