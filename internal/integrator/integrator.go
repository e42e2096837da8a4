// Package integrator implements the light-transport estimators of
// spec.md §8: the multiple-importance-sampled path tracer (next-event
// estimation combined with BSDF sampling via the balance heuristic,
// Russian-roulette termination) and a family of single-purpose debug
// integrators (depth, uv, hitpos, normal, direct) that share its
// per-ray intersection plumbing.
package integrator

import (
	"go-pathtracer/internal/core"
	"go-pathtracer/internal/scenegraph"
)

// Integrator estimates the radiance arriving along a camera ray.
type Integrator interface {
	Li(ray core.Ray, scene *scenegraph.Scene, sampler core.Sampler) core.Vec3
}

const shadowEpsilon = 1e-3

// balanceHeuristic is the two-strategy balance heuristic weight for
// pdfA's strategy, spec.md §8: w = pdfA / (pdfA + pdfB).
func balanceHeuristic(pdfA, pdfB float32) float32 {
	if pdfA+pdfB <= 0 {
		return 0
	}
	return pdfA / (pdfA + pdfB)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
