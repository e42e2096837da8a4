package sceneio

import (
	"fmt"

	"go-pathtracer/internal/camera"
	"go-pathtracer/internal/core"
)

func buildCamera(spec CameraSpec) (camera.Camera, error) {
	if spec.Width <= 0 || spec.Height <= 0 || spec.FOV <= 0 {
		return nil, fmt.Errorf("camera requires positive width, height and fov")
	}

	camToWorld, err := cameraToWorld(spec)
	if err != nil {
		return nil, err
	}

	switch spec.Type {
	case "", "pinhole":
		return camera.NewPinhole(camToWorld, spec.FOV, spec.Width, spec.Height), nil
	case "thinlens":
		return camera.NewThinLens(camToWorld, spec.FOV, spec.Width, spec.Height, spec.LensRadius, spec.FocalDistance), nil
	default:
		return nil, fmt.Errorf("unsupported camera type %q", spec.Type)
	}
}

func cameraToWorld(spec CameraSpec) (core.Mat4, error) {
	if len(spec.Transform) > 0 {
		return parseTransform(spec.Transform)
	}
	if spec.Pos == nil || spec.Dir == nil {
		return core.Mat4{}, fmt.Errorf("camera requires either a transform or pos/dir(/up)")
	}
	pos := vec3FromPtr(spec.Pos)
	target := pos.Add(vec3FromPtr(spec.Dir))
	up := core.Vec3{Y: 1}
	if spec.Up != nil {
		up = vec3FromPtr(spec.Up)
	}
	return core.LookAt(pos, target, up), nil
}
