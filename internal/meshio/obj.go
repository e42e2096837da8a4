package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-pathtracer/internal/core"
)

// LoadOBJ parses a Wavefront OBJ file: vertex positions, optional
// normals and texture coordinates, and faces (triangulated by fan if
// they carry more than three vertices), the same per-line scanning
// style as the teacher's LoadOBJ (rt/obj_loader.go), extended with
// vn/vt and the v/vt/vn face-reference triplet OBJ actually allows.
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	var positions, normals []core.Vec3
	var uvs []core.Vec2

	type faceKey struct {
		p, t, n int
	}
	vertexCache := map[faceKey]int32{}

	var outPositions []core.Vec3
	var outNormals []core.Vec3
	var outUVs []core.Vec2
	var indices [][3]int32

	resolveVertex := func(p, t, n int) int32 {
		key := faceKey{p, t, n}
		if idx, ok := vertexCache[key]; ok {
			return idx
		}
		idx := int32(len(outPositions))
		outPositions = append(outPositions, positions[p])
		if n >= 0 && n < len(normals) {
			outNormals = append(outNormals, normals[n])
		} else if normals != nil {
			outNormals = append(outNormals, core.Vec3{})
		}
		if t >= 0 && t < len(uvs) {
			outUVs = append(outUVs, uvs[t])
		} else if uvs != nil {
			outUVs = append(outUVs, core.Vec2{})
		}
		vertexCache[key] = idx
		return idx
	}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return nil, fmt.Errorf("invalid vertex at line %d", lineNum)
			}
			x, e1 := strconv.ParseFloat(parts[1], 32)
			y, e2 := strconv.ParseFloat(parts[2], 32)
			z, e3 := strconv.ParseFloat(parts[3], 32)
			if e1 != nil || e2 != nil || e3 != nil {
				return nil, fmt.Errorf("invalid vertex coordinates at line %d", lineNum)
			}
			positions = append(positions, core.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})

		case "vn":
			if len(parts) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(parts[1], 32)
			y, _ := strconv.ParseFloat(parts[2], 32)
			z, _ := strconv.ParseFloat(parts[3], 32)
			normals = append(normals, core.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})

		case "vt":
			if len(parts) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(parts[1], 32)
			v, _ := strconv.ParseFloat(parts[2], 32)
			uvs = append(uvs, core.Vec2{X: float32(u), Y: float32(v)})

		case "f":
			if len(parts) < 4 {
				continue
			}
			faceVerts := make([]int32, 0, len(parts)-1)
			for i := 1; i < len(parts); i++ {
				p, t, n, err := parseFaceRef(parts[i], len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("%w at line %d", err, lineNum)
				}
				faceVerts = append(faceVerts, resolveVertex(p, t, n))
			}
			for i := 1; i+1 < len(faceVerts); i++ {
				indices = append(indices, [3]int32{faceVerts[0], faceVerts[i], faceVerts[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ file: %w", err)
	}

	return &MeshData{Positions: outPositions, Normals: outNormals, UVs: outUVs, Indices: indices}, nil
}

// parseFaceRef parses one OBJ face vertex reference: "v", "v/vt", or
// "v/vt/vn" (vt may be empty, "v//vn"). Indices are 1-based in the
// file and may be negative (counted from the end); both are converted
// to 0-based. A missing component is returned as -1.
func parseFaceRef(ref string, numPos, numUV, numNormal int) (p, t, n int, err error) {
	fields := strings.Split(ref, "/")
	p, err = resolveIndex(fields[0], numPos)
	if err != nil {
		return 0, 0, 0, err
	}
	t, n = -1, -1
	if len(fields) > 1 && fields[1] != "" {
		t, err = resolveIndex(fields[1], numUV)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	if len(fields) > 2 && fields[2] != "" {
		n, err = resolveIndex(fields[2], numNormal)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return p, t, n, nil
}

func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", s)
	}
	if idx < 0 {
		idx = count + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("face index %d out of bounds", idx)
	}
	return idx, nil
}
