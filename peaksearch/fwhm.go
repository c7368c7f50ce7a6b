package peaksearch

import (
	"fmt"
	"math"
)

// fwhmToSigma converts a Gaussian FWHM to its standard deviation
// (2*sqrt(2*ln 2) rounded as in the reference detector literature).
const fwhmToSigma = 2.355

// FWHMModel predicts the expected full-width-half-maximum of a peak at a
// given channel position. Peak width in most detector systems grows
// roughly with the square root of the channel, so the model is anchored
// by the width at channel zero and the width at one reference channel:
//
//	fwhm(x) = (refFWHM / sqrt(refX)) * sqrt(x) + fwhmAt0
//
// Note that fwhm(refX) only equals refFWHM when fwhmAt0 is zero; the
// model is kept in this exact form for compatibility with existing
// calibrations.
type FWHMModel struct {
	refX    float64
	refFWHM float64
	fwhmAt0 float64
}

// NewFWHMModel creates a width model from a reference channel refX with
// expected width refFWHM, and the expected width fwhmAt0 at channel zero.
func NewFWHMModel(refX, refFWHM, fwhmAt0 float64) (*FWHMModel, error) {
	if refX <= 0 {
		return nil, fmt.Errorf("reference channel must be positive, got %g", refX)
	}
	if refFWHM <= 0 {
		return nil, fmt.Errorf("reference FWHM must be positive, got %g", refFWHM)
	}

	return &FWHMModel{
		refX:    refX,
		refFWHM: refFWHM,
		fwhmAt0: fwhmAt0,
	}, nil
}

// At returns the expected FWHM at channel position x.
// Negative positions are outside the model domain and rejected rather
// than propagated as NaN.
func (m *FWHMModel) At(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("channel position must be non-negative, got %g", x)
	}
	return m.eval(x), nil
}

// eval computes the model without the domain check. Internal callers pass
// channel edges, which are non-negative by construction.
func (m *FWHMModel) eval(x float64) float64 {
	return (m.refFWHM/math.Sqrt(m.refX))*math.Sqrt(x) + m.fwhmAt0
}

// sigma returns the Gaussian standard deviation matching the expected
// FWHM at x.
func (m *FWHMModel) sigma(x float64) float64 {
	return m.eval(x) / fwhmToSigma
}
