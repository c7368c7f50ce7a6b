package spectrum

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Smooth returns a low-pass filtered copy of the counts, useful for
// continuum inspection and display. The cutoff is the fraction of the
// spectral bandwidth to keep, in (0, 1]; frequency bins above the cutoff
// are zeroed before inverse transforming. The spectrum itself is not
// modified, and the result is floored at zero since counts are
// non-negative.
func (s *Spectrum) Smooth(cutoff float64) ([]float64, error) {
	if cutoff <= 0 || cutoff > 1 {
		return nil, fmt.Errorf("cutoff must be in (0, 1], got %g", cutoff)
	}

	n := len(s.counts)
	if n == 0 {
		return []float64{}, nil
	}

	// mjibson/go-dsp handles all sizes, including non-power-of-2
	spec := fft.FFTReal(s.counts)
	keep := int(cutoff * float64(n/2))

	for k := range spec {
		// fold the upper half onto its negative-frequency magnitude
		freq := k
		if k > n/2 {
			freq = n - k
		}
		if freq > keep {
			spec[k] = 0
		}
	}

	out := fft.IFFT(spec)
	smoothed := make([]float64, n)
	for i, c := range out {
		smoothed[i] = math.Max(real(c), 0)
	}

	return smoothed, nil
}
