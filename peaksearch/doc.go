// Package peaksearch locates statistically significant peaks in a count
// spectrum and decomposes it into continuum and signal components using a
// Gaussian kernel deconvolution.
//
// A position-dependent zero-sum kernel, whose width follows an expected
// FWHM model, is assembled into an NxN matrix and applied to the raw
// counts. This yields the peak-plus-background, background, signal and
// noise curves, and a per-channel signal-to-noise ratio. Candidate peaks
// are the local maxima of the clipped SNR curve above a configurable
// threshold.
//
// Typical usage:
//
//	spec, _ := spectrum.New(counts)
//	opts := peaksearch.DefaultOptions()
//	opts.RefX = 420
//	opts.RefFWHM = 6
//	result, err := peaksearch.Search(spec, opts)
//	// result.PeaksIdx holds candidate peak channels,
//	// result.SNR, result.Bkg, result.Signal the decomposition curves.
//
// The search is a pure, deterministic transform: it never modifies the
// spectrum, and repeated calls with the same inputs produce identical
// results.
package peaksearch
