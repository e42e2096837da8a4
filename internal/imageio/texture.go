package imageio

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"go-pathtracer/internal/core"
)

// Texture is a decoded, linear-light image usable both as a surface
// texture (bilinear UV lookup) and as the backing pixel buffer for an
// equirectangular environment map, grounded in the teacher's RtwImage
// (rt/rtw_image.go). Loading understands whatever image.Decode does:
// PNG and JPEG from the standard library, plus BMP and TIFF wired in
// from golang.org/x/image so scene authors aren't limited to PNG/JPEG
// for HDRI-style environment plates exported by other tools.
type Texture struct {
	Width, Height int
	Pixels        []core.Vec3
}

// LoadTexture decodes an image file from disk and converts it to a
// linear-light pixel buffer, undoing the assumed sRGB gamma encoding
// the way RtwImage.Load does for 8-bit sources.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := decoded.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tex := &Texture{Width: w, Height: h, Pixels: make([]core.Vec3, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := decoded.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tex.Pixels[y*w+x] = core.Vec3{
				X: srgbToLinear(float32(r) / 65535),
				Y: srgbToLinear(float32(g) / 65535),
				Z: srgbToLinear(float32(b) / 65535),
			}
		}
	}
	return tex, nil
}

func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64((c+0.055)/1.055), 2.4))
}

// Bilinear samples the texture at normalized UV coordinates, wrapping
// both axes (the common convention for tiled surface textures).
func (t *Texture) Bilinear(u, v float32) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{X: 1, Y: 0, Z: 1} // magenta: missing-texture tell, matches RtwImage's fallback
	}

	fx := wrap01(u) * float32(t.Width)
	fy := wrap01(v) * float32(t.Height)

	x0 := int(math.Floor(float64(fx)))
	y0 := int(math.Floor(float64(fy)))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x1 := (x0 + 1) % t.Width
	y1 := (y0 + 1) % t.Height
	x0 %= t.Width
	y0 %= t.Height

	c00 := t.at(x0, y0)
	c10 := t.at(x1, y0)
	c01 := t.at(x0, y1)
	c11 := t.at(x1, y1)

	top := c00.Scale(1 - tx).Add(c10.Scale(tx))
	bot := c01.Scale(1 - tx).Add(c11.Scale(tx))
	return top.Scale(1 - ty).Add(bot.Scale(ty))
}

func (t *Texture) at(x, y int) core.Vec3 {
	return t.Pixels[y*t.Width+x]
}

func wrap01(x float32) float32 {
	x -= float32(math.Floor(float64(x)))
	if x < 0 {
		x += 1
	}
	return x
}

// LoadEquirectangular loads an image file to feed light.NewImageEnvLight,
// returning its raw width/height/pixel buffer without any resampling.
func LoadEquirectangular(path string) (width, height int, pixels []core.Vec3, err error) {
	tex, err := LoadTexture(path)
	if err != nil {
		return 0, 0, nil, err
	}
	return tex.Width, tex.Height, tex.Pixels, nil
}
