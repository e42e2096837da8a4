package sceneio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const minimalScene = `{
  "integrator": {"type": "path", "spp": 4, "depth_rr": 3, "depth_max": 8},
  "camera": {
    "type": "pinhole",
    "pos": [0, 0, 5],
    "dir": [0, 0, -1],
    "up": [0, 1, 0],
    "width": 16, "height": 12, "fov": 40
  },
  "shape": [
    {
      "type": "triangle",
      "vertices": [[-5,-5,0], [5,-5,0], [0,5,0]],
      "bsdf": {"type": "diffuse", "albedo": [0.8, 0.8, 0.8]}
    },
    {
      "type": "triangle",
      "vertices": [[-1,4,-1], [1,4,-1], [0,4,1]],
      "arealight": {"radiance": [10, 10, 10]}
    }
  ],
  "light": [
    {"type": "constant-env", "radiance": [0.1, 0.1, 0.2]}
  ]
}`

func TestLoadParsesMinimalScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(minimalScene), 0644))

	loaded, err := Load(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, len(loaded.Scene.Shapes))
	assert.Equal(t, 2, loaded.Scene.LightCount()) // area light + constant env
	assert.Equal(t, 4, loaded.Settings.SamplesPerPixel)
}

func TestLoadRejectsUnknownIntegrator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	bad := `{"integrator": {"type": "bogus"}, "camera": {"pos":[0,0,0],"dir":[0,0,-1],"width":4,"height":4,"fov":40}, "shape": []}`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	_, err := Load(path, zap.NewNop())
	assert.Error(t, err)
}

func TestParseTransformComposesInDeclarationOrder(t *testing.T) {
	raw := []byte(`[{"type": "translate", "value": [1,0,0]}, {"type": "scale", "value": [2,2,2]}]`)
	m, err := parseTransform(raw)
	require.NoError(t, err)

	// translate-then-scale: point (0,0,0) -> translate -> (1,0,0) -> scale -> (2,0,0)
	p := m.TransformPoint(vec3From([3]float32{0, 0, 0}))
	assert.InDelta(t, 2, p.X, 1e-5)
}
