package core

import "sort"

// Distribution1D implements discrete piecewise-constant inverse-CDF
// sampling over a nonnegative weight vector, per spec.md §3.
type Distribution1D struct {
	weights []float32
	cdf     []float32 // len(weights)+1, cdf[0] == 0
	total   float32
}

func NewDistribution1D(weights []float32) *Distribution1D {
	d := &Distribution1D{weights: append([]float32(nil), weights...)}
	d.cdf = make([]float32, len(weights)+1)
	var sum float32
	for i, w := range weights {
		sum += w
		d.cdf[i+1] = sum
	}
	d.total = sum
	if sum > 0 {
		for i := range d.cdf {
			d.cdf[i] /= sum
		}
	}
	return d
}

// Sample returns the first index whose cdf exceeds u, via binary
// search, plus the per-sample pdf (the normalized weight of that index).
func (d *Distribution1D) Sample(u float32) (int, float32) {
	n := len(d.weights)
	if n == 0 {
		return 0, 0
	}
	idx := sort.Search(n, func(i int) bool { return d.cdf[i+1] > u })
	if idx >= n {
		idx = n - 1
	}
	return idx, d.Pdf(idx)
}

// Pdf returns the normalized weight of index i.
func (d *Distribution1D) Pdf(i int) float32 {
	if d.total <= 0 {
		return 0
	}
	return d.weights[i] / d.total
}

func (d *Distribution1D) Count() int { return len(d.weights) }

// Distribution2D composes a marginal Distribution1D over rows with one
// conditional Distribution1D per row, used for latitude-longitude
// environment-map importance sampling (spec.md §4.8).
type Distribution2D struct {
	conditional []*Distribution1D
	marginal    *Distribution1D
	width       int
	height      int
}

// NewDistribution2D builds the 2D distribution from a row-major weight
// function. height rows, width columns per row.
func NewDistribution2D(weights []float32, width, height int) *Distribution2D {
	d := &Distribution2D{width: width, height: height}
	d.conditional = make([]*Distribution1D, height)
	marginalWeights := make([]float32, height)
	for y := 0; y < height; y++ {
		row := weights[y*width : (y+1)*width]
		d.conditional[y] = NewDistribution1D(row)
		var rowSum float32
		for _, w := range row {
			rowSum += w
		}
		marginalWeights[y] = rowSum
	}
	d.marginal = NewDistribution1D(marginalWeights)
	return d
}

// SampleContinuous draws (u,v) texel coordinates plus the combined pdf
// (row pdf times column-within-row pdf), then returns integer texel
// indices for the caller to place within-texel jitter.
func (d *Distribution2D) SampleContinuous(u1, u2 float32) (row, col int, pdf float32) {
	row, rowPdf := d.marginal.Sample(u2)
	col, colPdf := d.conditional[row].Sample(u1)
	return row, col, rowPdf * colPdf * float32(d.width*d.height)
}

// Pdf returns the joint density (per unit area in [0,1]^2) at a given
// texel.
func (d *Distribution2D) Pdf(row, col int) float32 {
	return d.marginal.Pdf(row) * d.conditional[row].Pdf(col) * float32(d.width*d.height)
}
