// Package scaler normalizes subsequence windows of a time series.
//
// The only scaler shipped today is MeanVariance: per channel across the
// window's time steps, shift to mean 0 and scale to unit variance. It is
// stateless and safe for concurrent use; every window is normalized
// independently with no cross-window state.
package scaler

import "math"

// MeanVariance scales each channel of a window to zero mean and unit
// variance across the window's time steps.
//
// The divisor is the population standard deviation, not the sample one.
// A zero-variance channel keeps divisor 1: the channel is centered at 0
// and otherwise left unscaled, so constant windows stay finite.
type MeanVariance struct{}

// Scale normalizes window in place. The window holds m time steps of d
// channels, flattened time-major (len(window) == m*d).
func (MeanVariance) Scale(window []float64, m, d int) {
	for c := 0; c < d; c++ {
		var mean float64
		for t := 0; t < m; t++ {
			mean += window[t*d+c]
		}
		mean /= float64(m)

		var variance float64
		for t := 0; t < m; t++ {
			diff := window[t*d+c] - mean
			variance += diff * diff
		}
		variance /= float64(m)

		std := math.Sqrt(variance)
		if std == 0 {
			std = 1
		}
		for t := 0; t < m; t++ {
			window[t*d+c] = (window[t*d+c] - mean) / std
		}
	}
}
