package imageio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pathtracer/internal/core"
)

func TestToneMappedRGBAAppliesGamma(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, core.Vec3{X: 1, Y: 1, Z: 1})
	img.Set(1, 0, core.Vec3{X: 0, Y: 0, Z: 0})
	img.Set(0, 1, core.Vec3{X: 0.25, Y: 0.25, Z: 0.25})

	out := img.ToneMappedRGBA()
	white := out.RGBAAt(0, 0)
	black := out.RGBAAt(1, 0)

	assert.Greater(t, white.R, black.R)
	// sqrt(0.25) = 0.5 -> 0.5*255 rounded = 128.
	assert.Equal(t, uint8(128), out.RGBAAt(0, 1).R)
}

func TestWriteEXRProducesValidMagicAndSize(t *testing.T) {
	img := NewImage(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, core.Vec3{X: float32(x), Y: float32(y), Z: 1})
		}
	}

	path := filepath.Join(t.TempDir(), "out.exr")
	require.NoError(t, WriteEXR(path, img))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x01, 0x31, 0x2f, 0x76}, data[0:4])
	// 313-byte header + 3*8 offset table + 3 chunks of (4+4+4*3*4) bytes.
	assert.Equal(t, 313+3*8+3*56, len(data))
}

func TestBilinearWrapsAtEdges(t *testing.T) {
	tex := &Texture{Width: 2, Height: 1, Pixels: []core.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}}
	c := tex.Bilinear(0, 0)
	assert.InDelta(t, 1, c.X, 1e-5)
}
