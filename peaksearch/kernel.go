package peaksearch

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// gaussianDerivative evaluates the first derivative of an unnormalized
// Gaussian with the given mean and spread at t.
func gaussianDerivative(t, mean, sigma float64) float64 {
	z := (t - mean) / sigma
	return -(t - mean) * math.Exp(-z*z/2)
}

// kernel evaluates the deconvolution kernel centered at channel position x
// over every channel interval defined by edges (length N+1, unit-width
// half-open channels). Each entry is the boundary difference of the
// Gaussian derivative across the interval, which integrates a local
// peak-versus-background response: positive near x, negative in the
// flanking continuum region, summing to near zero overall.
func (m *FWHMModel) kernel(x float64, edges []float64) []float64 {
	sigma := m.sigma(x)
	kern := make([]float64, len(edges)-1)
	for i := range kern {
		kern[i] = gaussianDerivative(edges[i], x, sigma) - gaussianDerivative(edges[i+1], x, sigma)
	}
	return kern
}

// kernelSet holds the assembled kernel matrix and its split parts.
// pos carries the non-negative entries, neg the magnitudes of the
// non-positive entries after per-column rescaling, so full = pos - neg.
type kernelSet struct {
	full *mat.Dense
	pos  *mat.Dense
	neg  *mat.Dense
}

// kernelMatrix assembles the NxN kernel matrix for the given channel
// edges: column i is the kernel centered at edges[i]. Each column's
// negative lobe is rescaled to carry the same total mass as its positive
// lobe, making the kernel zero-sum so the background estimate is not
// biased by the overall count level. A column whose negative lobe has no
// in-range mass (a degenerate, very narrow kernel) is left unscaled
// rather than dividing by zero.
func (m *FWHMModel) kernelMatrix(edges []float64) *kernelSet {
	n := len(edges) - 1

	pos := mat.NewDense(n, n, nil)
	neg := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		kern := m.kernel(edges[j], edges)
		for i, v := range kern {
			if v > 0 {
				pos.Set(i, j, v)
			} else {
				neg.Set(i, j, -v)
			}
		}
	}

	// Balance each column's negative lobe against its positive lobe
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		posSum := floats.Sum(mat.Col(col, j, pos))
		negSum := floats.Sum(mat.Col(col, j, neg))
		if negSum == 0 {
			continue
		}
		scale := posSum / negSum
		for i := 0; i < n; i++ {
			neg.Set(i, j, neg.At(i, j)*scale)
		}
	}

	full := mat.NewDense(n, n, nil)
	full.Sub(pos, neg)

	return &kernelSet{full: full, pos: pos, neg: neg}
}
