package sceneio

import (
	"fmt"
	"path/filepath"

	"go-pathtracer/internal/accel"
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/light"
	"go-pathtracer/internal/meshio"
	"go-pathtracer/internal/shape"
)

// buildShape loads or constructs the shape's geometry, applies its
// to_world transform, attaches its BSDF, and — if it carries an
// arealight block — wires it to a light.AreaLight the caller adds to
// the scene's light list. Mesh-level acceleration defaults to the
// octree for small files (below octreeTriangleThreshold) and the BVH
// otherwise, since the octree's fixed-capacity leaves make it cheaper
// to build but worse on very large meshes (spec.md §4.6).
const octreeTriangleThreshold = 2000

func buildShape(spec ShapeSpec) (*shape.TriangleMesh, *light.AreaLight, error) {
	toWorld, err := parseTransform(spec.ToWorld)
	if err != nil {
		return nil, nil, err
	}

	data, err := loadMeshData(spec)
	if err != nil {
		return nil, nil, err
	}
	if len(data.Indices) == 0 {
		return nil, nil, fmt.Errorf("shape %q has no triangles", spec.Path)
	}

	transformMeshData(data, toWorld)

	mesh := shape.NewTriangleMesh(data.Positions, data.Normals, data.UVs, data.Indices)
	if len(data.Indices) > octreeTriangleThreshold {
		accel.BuildMeshBVH(mesh)
	} else {
		accel.BuildMeshOctree(mesh)
	}

	bsdfImpl, err := buildBSDF(spec.BSDF)
	if err != nil {
		return nil, nil, err
	}
	mesh.SetBSDF(bsdfImpl)

	var areaLight *light.AreaLight
	if spec.AreaLight != nil {
		areaLight = light.NewAreaLight(mesh, vec3From(spec.AreaLight.Radiance))
		mesh.SetEmitter(areaLight)
	}

	return mesh, areaLight, nil
}

func loadMeshData(spec ShapeSpec) (*meshio.MeshData, error) {
	switch spec.Type {
	case "obj":
		return meshio.LoadOBJ(spec.Path)
	case "ply":
		return meshio.LoadPLY(spec.Path)
	case "triangle":
		if spec.Vertices == nil {
			return nil, fmt.Errorf("triangle shape requires a vertices field")
		}
		v := *spec.Vertices
		return &meshio.MeshData{
			Positions: []core.Vec3{vec3From(v[0]), vec3From(v[1]), vec3From(v[2])},
			Indices:   [][3]int32{{0, 1, 2}},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported shape type %q (path %s)", spec.Type, filepath.Base(spec.Path))
	}
}

func transformMeshData(data *meshio.MeshData, toWorld core.Mat4) {
	for i, p := range data.Positions {
		data.Positions[i] = toWorld.TransformPoint(p)
	}
	if len(data.Normals) == 0 {
		return
	}
	normalMatrix := transposeLinearPart(toWorld.Inverse())
	for i, n := range data.Normals {
		data.Normals[i] = normalMatrix.TransformVector(n).Normalize()
	}
}

// transposeLinearPart transposes the upper-left 3x3 (rotation/scale)
// block of m, leaving translation untouched — the standard normal-
// transform correction for non-uniform scale, applied via
// TransformVector so translation never enters regardless.
func transposeLinearPart(m core.Mat4) core.Mat4 {
	out := m
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[r][c] = m.M[c][r]
		}
	}
	return out
}

func vec3From(v [3]float32) core.Vec3 {
	return core.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
