package spectrum

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds summary statistics of a count spectrum
type Stats struct {
	Channels   int     `json:"channels"`    // Number of channels
	Total      float64 `json:"total"`       // Total counts across all channels
	Min        float64 `json:"min"`         // Minimum channel count
	Max        float64 `json:"max"`         // Maximum channel count
	MaxChannel int     `json:"max_channel"` // Channel holding the maximum count
	Mean       float64 `json:"mean"`        // Mean counts per channel
	Variance   float64 `json:"variance"`    // Sample variance of counts
	Centroid   float64 `json:"centroid"`    // Count-weighted mean channel
}

// Summary computes summary statistics over the spectrum counts using gonum
func (s *Spectrum) Summary() Stats {
	n := len(s.counts)
	if n == 0 {
		return Stats{}
	}

	stats := Stats{
		Channels:   n,
		Total:      floats.Sum(s.counts),
		Min:        floats.Min(s.counts),
		Max:        floats.Max(s.counts),
		MaxChannel: floats.MaxIdx(s.counts),
		Mean:       stat.Mean(s.counts, nil),
	}
	if n >= 2 {
		stats.Variance = stat.Variance(s.counts, nil)
	}

	// Count-weighted centroid; undefined for an empty (all-zero) spectrum
	if stats.Total > 0 {
		stats.Centroid = stat.Mean(s.Channels(), s.counts)
	}

	return stats
}
