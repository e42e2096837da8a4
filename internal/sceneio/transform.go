package sceneio

import (
	"encoding/json"
	"fmt"

	"go-pathtracer/internal/core"
)

// parseTransform decodes a to_world/transform field: either a flat
// 16-element row-major array, or a list of {type, value|degree}
// objects composed in declaration order (spec.md §6). A nil/empty raw
// message is the identity.
func parseTransform(raw json.RawMessage) (core.Mat4, error) {
	if len(raw) == 0 {
		return core.Identity4(), nil
	}

	var flat [16]float32
	if err := json.Unmarshal(raw, &flat); err == nil {
		return core.Mat4FromRowMajor(flat), nil
	}

	var ops []transformOp
	if err := json.Unmarshal(raw, &ops); err != nil {
		return core.Mat4{}, fmt.Errorf("transform must be a 16-element array or a list of transform ops: %w", err)
	}

	m := core.Identity4()
	for _, op := range ops {
		var step core.Mat4
		switch op.Type {
		case "translate":
			step = core.Translate(vec3FromPtr(op.Value))
		case "scale":
			step = core.Scale4(vec3FromPtr(op.Value))
		case "rotate_x":
			step = core.RotateX(op.Degree)
		case "rotate_y":
			step = core.RotateY(op.Degree)
		case "rotate_z":
			step = core.RotateZ(op.Degree)
		default:
			return core.Mat4{}, fmt.Errorf("unsupported transform op %q", op.Type)
		}
		// Declaration order is application order: the first-listed op
		// acts on the point first, so it composes as the innermost
		// (rightmost) matrix.
		m = step.Mul(m)
	}
	return m, nil
}

func vec3FromPtr(v *[3]float32) core.Vec3 {
	if v == nil {
		return core.Vec3{}
	}
	return core.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
