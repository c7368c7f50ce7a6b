package peaksearch

// findPeaks locates local maxima in the (already clipped) SNR curve whose
// height exceeds minSNR, returning their channel indices in ascending
// order. A maximum must be strictly greater than the values on either
// side; boundary channels have only one neighbor and are never maxima.
// A plateau of equal values bounded by strictly smaller neighbors
// resolves to its center index (rounding left), so a flat top is
// reported once.
func findPeaks(snr []float64, minSNR float64) []int {
	peaks := []int{}
	n := len(snr)

	i := 1
	for i < n-1 {
		if snr[i] > snr[i-1] {
			// scan ahead across a possible plateau
			ahead := i + 1
			for ahead < n-1 && snr[ahead] == snr[i] {
				ahead++
			}
			if snr[ahead] < snr[i] {
				mid := (i + ahead - 1) / 2
				if snr[mid] > minSNR {
					peaks = append(peaks, mid)
				}
				i = ahead
				continue
			}
		}
		i++
	}

	return peaks
}
