package meshio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go-pathtracer/internal/core"
)

type plyProperty struct {
	name     string
	listType string // "" for a scalar property, else the count type (e.g. "uchar")
	dataType string
}

type plyElement struct {
	name       string
	count      int
	properties []plyProperty
}

// LoadPLY parses a Stanford PLY file (ASCII or binary_little_endian),
// reading the "vertex" element's x/y/z (and nx/ny/nz, if present) and
// the "face" element's vertex_indices/vertex_index list, fan-
// triangulating polygons the same way the original source's PLY
// loader does (original_source/src/shapes/plymesh.cpp).
func LoadPLY(filename string) (*MeshData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	format, elements, err := parsePLYHeader(r)
	if err != nil {
		return nil, err
	}

	var positions, normals []core.Vec3
	var faces [][]int32
	hasNormals := false

	for _, el := range elements {
		switch el.name {
		case "vertex":
			hasNormals = hasProperty(el, "nx") && hasProperty(el, "ny") && hasProperty(el, "nz")
			positions = make([]core.Vec3, el.count)
			if hasNormals {
				normals = make([]core.Vec3, el.count)
			}
			for i := 0; i < el.count; i++ {
				values, err := readPLYElement(r, format, el)
				if err != nil {
					return nil, err
				}
				positions[i] = core.Vec3{X: values["x"], Y: values["y"], Z: values["z"]}
				if hasNormals {
					normals[i] = core.Vec3{X: values["nx"], Y: values["ny"], Z: values["nz"]}
				}
			}
		case "face":
			faces = make([][]int32, el.count)
			for i := 0; i < el.count; i++ {
				idx, err := readPLYFace(r, format, el)
				if err != nil {
					return nil, err
				}
				faces[i] = idx
			}
		default:
			if err := skipPLYElement(r, format, el); err != nil {
				return nil, err
			}
		}
	}

	var indices [][3]int32
	for _, face := range faces {
		if len(face) < 3 {
			continue
		}
		for i := 1; i+1 < len(face); i++ {
			indices = append(indices, [3]int32{face[0], face[i], face[i+1]})
		}
	}

	return &MeshData{Positions: positions, Normals: normals, Indices: indices}, nil
}

func hasProperty(el plyElement, name string) bool {
	for _, p := range el.properties {
		if p.name == name {
			return true
		}
	}
	return false
}

func parsePLYHeader(r *bufio.Reader) (format string, elements []plyElement, err error) {
	line, err := r.ReadString('\n')
	if err != nil || strings.TrimSpace(line) != "ply" {
		return "", nil, fmt.Errorf("not a PLY file")
	}

	var current *plyElement
	for {
		line, err = r.ReadString('\n')
		if err != nil {
			return "", nil, fmt.Errorf("unexpected end of PLY header: %w", err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "comment":
			continue
		case "format":
			format = fields[1]
		case "element":
			if current != nil {
				elements = append(elements, *current)
			}
			count, _ := strconv.Atoi(fields[2])
			current = &plyElement{name: fields[1], count: count}
		case "property":
			if current == nil {
				continue
			}
			if fields[1] == "list" {
				current.properties = append(current.properties, plyProperty{
					name: fields[4], listType: fields[2], dataType: fields[3],
				})
			} else {
				current.properties = append(current.properties, plyProperty{
					name: fields[2], dataType: fields[1],
				})
			}
		case "end_header":
			if current != nil {
				elements = append(elements, *current)
			}
			return format, elements, nil
		}
	}
}

func readPLYElement(r *bufio.Reader, format string, el plyElement) (map[string]float32, error) {
	values := map[string]float32{}
	if format == "ascii" {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		for i, p := range el.properties {
			if i >= len(fields) {
				break
			}
			f, _ := strconv.ParseFloat(fields[i], 32)
			values[p.name] = float32(f)
		}
		return values, nil
	}

	for _, p := range el.properties {
		v, err := readBinaryScalar(r, p.dataType)
		if err != nil {
			return nil, err
		}
		values[p.name] = v
	}
	return values, nil
}

func readPLYFace(r *bufio.Reader, format string, el plyElement) ([]int32, error) {
	if format == "ascii" {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, nil
		}
		n, _ := strconv.Atoi(fields[0])
		idx := make([]int32, 0, n)
		for i := 0; i < n && i+1 < len(fields); i++ {
			v, _ := strconv.Atoi(fields[i+1])
			idx = append(idx, int32(v))
		}
		return idx, nil
	}

	listProp := el.properties[0] // "vertex_indices"/"vertex_index" is the only list property in a face element
	count, err := readBinaryCount(r, listProp.listType)
	if err != nil {
		return nil, err
	}
	idx := make([]int32, count)
	for i := 0; i < count; i++ {
		v, err := readBinaryScalar(r, listProp.dataType)
		if err != nil {
			return nil, err
		}
		idx[i] = int32(v)
	}
	return idx, nil
}

func skipPLYElement(r *bufio.Reader, format string, el plyElement) error {
	for i := 0; i < el.count; i++ {
		if format == "ascii" {
			if _, err := r.ReadString('\n'); err != nil {
				return err
			}
			continue
		}
		for _, p := range el.properties {
			if p.listType != "" {
				count, err := readBinaryCount(r, p.listType)
				if err != nil {
					return err
				}
				for j := 0; j < count; j++ {
					if _, err := readBinaryScalar(r, p.dataType); err != nil {
						return err
					}
				}
			} else if _, err := readBinaryScalar(r, p.dataType); err != nil {
				return err
			}
		}
	}
	return nil
}

func readBinaryCount(r *bufio.Reader, typ string) (int, error) {
	v, err := readBinaryScalar(r, typ)
	return int(v), err
}

func readBinaryScalar(r io.Reader, typ string) (float32, error) {
	switch typ {
	case "char", "int8":
		var v int8
		err := binary.Read(r, binary.LittleEndian, &v)
		return float32(v), err
	case "uchar", "uint8":
		var v uint8
		err := binary.Read(r, binary.LittleEndian, &v)
		return float32(v), err
	case "short", "int16":
		var v int16
		err := binary.Read(r, binary.LittleEndian, &v)
		return float32(v), err
	case "ushort", "uint16":
		var v uint16
		err := binary.Read(r, binary.LittleEndian, &v)
		return float32(v), err
	case "int", "int32":
		var v int32
		err := binary.Read(r, binary.LittleEndian, &v)
		return float32(v), err
	case "uint", "uint32":
		var v uint32
		err := binary.Read(r, binary.LittleEndian, &v)
		return float32(v), err
	case "float", "float32":
		var v float32
		err := binary.Read(r, binary.LittleEndian, &v)
		return v, err
	case "double", "float64":
		var v float64
		err := binary.Read(r, binary.LittleEndian, &v)
		return float32(v), err
	default:
		return 0, fmt.Errorf("unsupported PLY property type %q", typ)
	}
}
