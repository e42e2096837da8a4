package light

import (
	"math"

	"go-pathtracer/internal/core"
)

// ImageEnvLight is a latitude-longitude HDRI environment, importance
// sampled by a Distribution2D built over sinθ-weighted texel luminance
// so that dim texels near the poles (where a texel subtends less solid
// angle) are drawn proportionally less often (spec.md §6). This is the
// only environment-light variant the renderer keeps: the legacy
// non-importance-sampled environment map is not carried forward.
type ImageEnvLight struct {
	width, height int
	pixels        []core.Vec3 // row-major, row 0 at theta=0 (north pole)
	distribution  *core.Distribution2D
	avgLuminance  float32
	sceneRadius   float32
}

func NewImageEnvLight(width, height int, pixels []core.Vec3) *ImageEnvLight {
	weights := make([]float32, width*height)
	var weightedLum, sinSum float32
	for row := 0; row < height; row++ {
		theta := (float32(row) + 0.5) / float32(height) * float32(core.Pi)
		sinTheta := float32(math.Sin(float64(theta)))
		for col := 0; col < width; col++ {
			lum := core.Luminance(pixels[row*width+col])
			weights[row*width+col] = lum * sinTheta
			weightedLum += lum * sinTheta
			sinSum += sinTheta
		}
	}
	avg := float32(0)
	if sinSum > 0 {
		avg = weightedLum / sinSum
	}
	return &ImageEnvLight{
		width:        width,
		height:       height,
		pixels:       pixels,
		distribution: core.NewDistribution2D(weights, width, height),
		avgLuminance: avg,
	}
}

func (e *ImageEnvLight) SetSceneRadius(r float32) { e.sceneRadius = r }

func directionFromSpherical(theta, phi float32) core.Vec3 {
	sinT, cosT := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	sinP, cosP := float32(math.Sin(float64(phi))), float32(math.Cos(float64(phi)))
	return core.Vec3{X: sinT * cosP, Y: cosT, Z: sinT * sinP}
}

func sphericalFromDirection(dir core.Vec3) (theta, phi float32) {
	d := dir.Normalize()
	theta = float32(math.Acos(float64(clampf(d.Y, -1, 1))))
	phi = float32(math.Atan2(float64(d.Z), float64(d.X)))
	if phi < 0 {
		phi += 2 * float32(core.Pi)
	}
	return theta, phi
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func (e *ImageEnvLight) texelIndices(theta, phi float32) (row, col int) {
	row = int(theta / float32(core.Pi) * float32(e.height))
	col = int(phi / (2 * float32(core.Pi)) * float32(e.width))
	if row < 0 {
		row = 0
	}
	if row >= e.height {
		row = e.height - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= e.width {
		col = e.width - 1
	}
	return row, col
}

// solidAnglePdf converts a density over the (u,v)∈[0,1]² texel-space
// measure into the solid-angle measure at the given row: the lat-long
// parameterization has Jacobian dω = 2π²·sinθ·du·dv (spec.md §6).
func (e *ImageEnvLight) solidAnglePdf(row int, uvPdf float32) float32 {
	theta := (float32(row) + 0.5) / float32(e.height) * float32(core.Pi)
	sinTheta := float32(math.Sin(float64(theta)))
	if sinTheta <= 0 {
		return 0
	}
	return uvPdf / (2 * float32(core.Pi) * float32(core.Pi) * sinTheta)
}

func (e *ImageEnvLight) SampleDirectContribution(hitPos core.Vec3, sampler core.Sampler) (DirectSample, bool) {
	row, col, uvPdf := e.distribution.SampleContinuous(sampler.Sample1D(), sampler.Sample1D())
	pdfDir := e.solidAnglePdf(row, uvPdf)
	if pdfDir <= 0 {
		return DirectSample{}, false
	}

	theta := (float32(row) + 0.5) / float32(e.height) * float32(core.Pi)
	phi := (float32(col) + 0.5) / float32(e.width) * 2 * float32(core.Pi)
	dir := directionFromSpherical(theta, phi)

	point, normal := envSamplePoint(hitPos, dir, e.sceneRadius)
	return DirectSample{
		Radiance: e.pixels[row*e.width+col],
		Point:    point,
		Normal:   normal,
		PdfArea:  areaPdfForDirection(pdfDir, e.sceneRadius),
	}, true
}

func (e *ImageEnvLight) PdfSolidAngle(hitPos, lightPos, lightNormal core.Vec3) float32 {
	dir := lightPos.Sub(hitPos).Normalize()
	return e.PdfDirection(dir)
}

func (e *ImageEnvLight) Radiance(hitPos, lightPos, lightNormal core.Vec3) core.Vec3 {
	dir := lightPos.Sub(hitPos).Normalize()
	return e.RadianceForMiss(dir)
}

func (e *ImageEnvLight) RadianceForMiss(dir core.Vec3) core.Vec3 {
	theta, phi := sphericalFromDirection(dir)
	row, col := e.texelIndices(theta, phi)
	return e.pixels[row*e.width+col]
}

func (e *ImageEnvLight) PdfDirection(dir core.Vec3) float32 {
	theta, phi := sphericalFromDirection(dir)
	row, col := e.texelIndices(theta, phi)
	return e.solidAnglePdf(row, e.distribution.Pdf(row, col))
}

func (e *ImageEnvLight) Power() float32 {
	return e.avgLuminance * 4 * float32(core.Pi) * float32(core.Pi) * e.sceneRadius * e.sceneRadius
}

func (e *ImageEnvLight) IsDelta() bool    { return false }
func (e *ImageEnvLight) IsEnvLight() bool { return true }
