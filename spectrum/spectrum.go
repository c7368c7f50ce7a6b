package spectrum

import (
	"fmt"
	"math"
)

// Spectrum holds an ordered count spectrum indexed by integer channel,
// optionally calibrated to physical units (e.g. keV). Counts and energies
// are owned by the Spectrum after construction and must not be modified
// by callers.
type Spectrum struct {
	counts   []float64
	energies []float64
	xUnits   string
}

// New creates an uncalibrated spectrum from raw channel counts.
// Counts must be finite and non-negative. A zero-length spectrum is valid.
func New(counts []float64) (*Spectrum, error) {
	if err := validateCounts(counts); err != nil {
		return nil, err
	}

	return &Spectrum{
		counts: counts,
		xUnits: "channel",
	}, nil
}

// NewCalibrated creates a spectrum with an energy calibration mapping each
// channel to a physical x-value with the given unit label.
func NewCalibrated(counts, energies []float64, xUnits string) (*Spectrum, error) {
	if err := validateCounts(counts); err != nil {
		return nil, err
	}
	if len(energies) != len(counts) {
		return nil, fmt.Errorf("energies length %d does not match counts length %d", len(energies), len(counts))
	}
	for i, e := range energies {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("energy at channel %d is not finite", i)
		}
	}
	if xUnits == "" {
		xUnits = "energy"
	}

	return &Spectrum{
		counts:   counts,
		energies: energies,
		xUnits:   xUnits,
	}, nil
}

func validateCounts(counts []float64) error {
	if counts == nil {
		return fmt.Errorf("counts cannot be nil")
	}
	for i, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("count at channel %d is not finite", i)
		}
		if c < 0 {
			return fmt.Errorf("count at channel %d is negative: %g", i, c)
		}
	}
	return nil
}

// Len returns the number of channels
func (s *Spectrum) Len() int {
	return len(s.counts)
}

// Counts returns the raw counts per channel. The returned slice is the
// spectrum's backing store; treat it as read-only.
func (s *Spectrum) Counts() []float64 {
	return s.counts
}

// Channels returns the channel axis 0..N-1 as floats
func (s *Spectrum) Channels() []float64 {
	channels := make([]float64, len(s.counts))
	for i := range channels {
		channels[i] = float64(i)
	}
	return channels
}

// Energies returns the calibrated x-axis, or nil if the spectrum is
// uncalibrated. Treat the returned slice as read-only.
func (s *Spectrum) Energies() []float64 {
	return s.energies
}

// Calibrated reports whether an energy calibration is present
func (s *Spectrum) Calibrated() bool {
	return s.energies != nil
}

// XUnits returns the x-axis unit label ("channel" when uncalibrated)
func (s *Spectrum) XUnits() string {
	return s.xUnits
}
