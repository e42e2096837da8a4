// Package meshio loads triangulated mesh files (Wavefront OBJ, binary
// and ASCII PLY) into the flat position/normal/uv/index buffers
// shape.NewTriangleMesh expects, grounded in the teacher's OBJ loader
// (rt/obj_loader.go) and, for PLY, the original source's plymesh.cpp
// fan-triangulation approach.
package meshio

import "go-pathtracer/internal/core"

// MeshData is the intermediate, un-accelerated form every loader in
// this package produces. Normals and UVs are nil when the file didn't
// carry them — shape.NewTriangleMesh falls back to face normals.
type MeshData struct {
	Positions []core.Vec3
	Normals   []core.Vec3
	UVs       []core.Vec2
	Indices   [][3]int32
}
