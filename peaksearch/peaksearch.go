package peaksearch

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/spectral-go/gammasift/logging"
	"github.com/spectral-go/gammasift/spectrum"
)

// Options configures a peak search
type Options struct {
	RefX    float64 `json:"ref_x"`     // Reference channel for the FWHM model
	RefFWHM float64 `json:"ref_fwhm"`  // Expected FWHM at RefX, in channels
	FWHMAt0 float64 `json:"fwhm_at_0"` // Expected FWHM at channel 0
	MinSNR  float64 `json:"min_snr"`   // Minimum SNR for a reported peak
}

// DefaultOptions returns sensible defaults for a peak search. RefX and
// RefFWHM have no universal default and must be set from the detector's
// width calibration.
func DefaultOptions() Options {
	return Options{
		FWHMAt0: 1.0,
		MinSNR:  2.0,
	}
}

// Validate checks the options for a usable width calibration
func (o Options) Validate() error {
	if o.RefX <= 0 {
		return fmt.Errorf("ref_x must be positive, got %g", o.RefX)
	}
	if o.RefFWHM <= 0 {
		return fmt.Errorf("ref_fwhm must be positive, got %g", o.RefFWHM)
	}
	return nil
}

// Result holds the spectrum decomposition and the located peaks. All
// slices are aligned to the spectrum channels except PeaksIdx and
// FWHMGuess, which are aligned to each other. A Result is immutable
// once returned; treat the slices as read-only.
type Result struct {
	PeakPlusBkg []float64 `json:"peak_plus_bkg"` // Positive kernel part applied to counts
	Bkg         []float64 `json:"bkg"`           // Estimated continuum
	Signal      []float64 `json:"signal"`        // Net signal above continuum
	Noise       []float64 `json:"noise"`         // Propagated counting noise
	SNR         []float64 `json:"snr"`           // Signal-to-noise ratio, clipped at zero
	PeaksIdx    []int     `json:"peaks_idx"`     // Channels flagged as peaks, ascending
	FWHMGuess   []float64 `json:"fwhm_guess"`    // Expected FWHM at each flagged channel
}

// Len returns the number of channels the decomposition covers
func (r *Result) Len() int {
	return len(r.SNR)
}

// Search decomposes the spectrum into continuum and signal components and
// locates candidate peaks. The spectrum is read-only and never modified;
// repeated calls with the same inputs produce identical results.
func Search(spec *spectrum.Spectrum, opts Options) (*Result, error) {
	if spec == nil {
		return nil, fmt.Errorf("spectrum cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	model, err := NewFWHMModel(opts.RefX, opts.RefFWHM, opts.FWHMAt0)
	if err != nil {
		return nil, err
	}

	counts := spec.Counts()
	logger := logging.WithFields(logging.Fields{
		"component": "peaksearch",
		"channels":  len(counts),
		"min_snr":   opts.MinSNR,
	})
	logger.Debug("Starting kernel deconvolution")

	comps := model.convolve(channelEdges(spec), counts)

	// Only the non-negative part of the SNR curve is meaningful for
	// peak picking
	clipped := make([]float64, len(comps.snr))
	for i, v := range comps.snr {
		if v > 0 {
			clipped[i] = v
		}
	}

	peaks := findPeaks(clipped, opts.MinSNR)
	fwhmGuess := make([]float64, len(peaks))
	for i, idx := range peaks {
		fwhmGuess[i] = model.eval(float64(idx))
	}

	logger.Debug("Peak search completed", logging.Fields{
		"peaks_found": len(peaks),
	})

	return &Result{
		PeakPlusBkg: comps.peakPlusBkg,
		Bkg:         comps.bkg,
		Signal:      comps.signal,
		Noise:       comps.noise,
		SNR:         clipped,
		PeaksIdx:    peaks,
		FWHMGuess:   fwhmGuess,
	}, nil
}

// KernelMatrix assembles the full NxN deconvolution kernel matrix for the
// spectrum, with column i holding the kernel centered at channel i. It is
// exposed so callers can inspect or render the kernel; Search builds the
// same matrix internally.
func KernelMatrix(spec *spectrum.Spectrum, opts Options) (*mat.Dense, error) {
	if spec == nil {
		return nil, fmt.Errorf("spectrum cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if spec.Len() == 0 {
		return nil, fmt.Errorf("spectrum has no channels")
	}

	model, err := NewFWHMModel(opts.RefX, opts.RefFWHM, opts.FWHMAt0)
	if err != nil {
		return nil, err
	}

	return model.kernelMatrix(channelEdges(spec)).full, nil
}

// channelEdges builds synthetic unit-width channel boundaries: each
// channel's left edge plus one closing edge past the last channel.
func channelEdges(spec *spectrum.Spectrum) []float64 {
	channels := spec.Channels()
	if len(channels) == 0 {
		return []float64{}
	}
	return append(channels, channels[len(channels)-1]+1)
}
