package peaksearch

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// components holds the decomposition curves produced by convolving the
// kernel matrix with the raw counts. All slices have one entry per
// channel.
type components struct {
	peakPlusBkg []float64
	bkg         []float64
	signal      []float64
	noise       []float64
	snr         []float64
}

// convolve applies the kernel matrix to the counts and derives the
// decomposition curves. The positive kernel part extracts peak plus
// continuum, the negative part the continuum alone, and the full
// zero-sum kernel the net signal. Noise follows Poisson counting
// statistics: the variance of a weighted sum of independent counts is
// the counts weighted by the squared kernel.
func (m *FWHMModel) convolve(edges, counts []float64) *components {
	n := len(counts)
	if n == 0 {
		return &components{
			peakPlusBkg: []float64{},
			bkg:         []float64{},
			signal:      []float64{},
			noise:       []float64{},
			snr:         []float64{},
		}
	}

	kernels := m.kernelMatrix(edges)

	squared := mat.NewDense(n, n, nil)
	squared.Apply(func(_, _ int, v float64) float64 { return v * v }, kernels.full)

	c := &components{
		peakPlusBkg: mulVec(kernels.pos, counts),
		bkg:         mulVec(kernels.neg, counts),
		signal:      mulVec(kernels.full, counts),
		noise:       mulVec(squared, counts),
	}

	for i := range c.noise {
		c.noise[i] = math.Sqrt(c.noise[i])
	}

	// SNR is defined as zero wherever the propagated noise vanishes
	c.snr = make([]float64, n)
	for i := range c.snr {
		if c.noise[i] > 0 {
			c.snr[i] = c.signal[i] / c.noise[i]
		}
	}

	return c
}

// mulVec returns a*x as a plain slice
func mulVec(a mat.Matrix, x []float64) []float64 {
	var out mat.VecDense
	out.MulVec(a, mat.NewVecDense(len(x), x))

	result := make([]float64, len(x))
	for i := range result {
		result[i] = out.AtVec(i)
	}
	return result
}
