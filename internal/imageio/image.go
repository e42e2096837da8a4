// Package imageio holds the renderer's framebuffer, its EXR writer, and
// the texture/environment-map loaders (Texture) that feed
// light.ImageEnvLight (spec.md §6, §10).
package imageio

import (
	"image"
	"image/color"
	"math"

	"go-pathtracer/internal/core"
)

// Image is a linear-light RGB framebuffer, the unit of exchange between
// internal/render and the EXR writer or the live ebiten viewer.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
}

func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

func (img *Image) Set(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// ToneMappedRGBA renders the framebuffer to an 8-bit gamma-2 (square
// root, not the sRGB curve) image for display or PNG preview, matching
// the teacher's sqrt-gamma ToRGB
// tonemap (rt/color.go).
func (img *Image) ToneMappedRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			out.Set(x, y, color.RGBA{
				R: toneMapChannel(c.X),
				G: toneMapChannel(c.Y),
				B: toneMapChannel(c.Z),
				A: 255,
			})
		}
	}
	return out
}

func toneMapChannel(v float32) uint8 {
	g := float32(math.Sqrt(float64(clamp01(v))))
	return uint8(clamp01(g)*255 + 0.5)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
