package meshio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleOBJ = `# a single triangle, plus a quad to exercise fan triangulation
v -1 -1 0
v 1 -1 0
v 0 1 0
v -1 1 0
f 1 2 3
f 1 2 3 4
`

func TestLoadOBJTriangulatesFacesAndResolvesVertices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte(triangleOBJ), 0644))

	mesh, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Len(t, mesh.Positions, 4)
	assert.Len(t, mesh.Indices, 3) // 1 triangle + 1 quad fan-triangulated into 2
}

func TestLoadOBJRejectsBadVertexLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 1 2\n"), 0644))

	_, err := LoadOBJ(path)
	assert.Error(t, err)
}

const triangleASCIIPLY = `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
end_header
-1 -1 0
1 -1 0
0 1 0
3 0 1 2
`

func TestLoadPLYAsciiParsesVertexAndFace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.ply")
	require.NoError(t, os.WriteFile(path, []byte(triangleASCIIPLY), 0644))

	mesh, err := LoadPLY(path)
	require.NoError(t, err)
	assert.Len(t, mesh.Positions, 3)
	require.Len(t, mesh.Indices, 1)
	assert.Equal(t, [3]int32{0, 1, 2}, mesh.Indices[0])
}
