package scaler_test

import (
	"math"
	"testing"

	"github.com/go-tsmining/tsmp/scaler"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

// moments returns the population mean and variance of channel c of a
// time-major window.
func moments(window []float64, m, d, c int) (mean, variance float64) {
	for t := 0; t < m; t++ {
		mean += window[t*d+c]
	}
	mean /= float64(m)
	for t := 0; t < m; t++ {
		diff := window[t*d+c] - mean
		variance += diff * diff
	}
	variance /= float64(m)

	return mean, variance
}

// TestMeanVariance_SingleChannel verifies mean 0 and population variance 1.
func TestMeanVariance_SingleChannel(t *testing.T) {
	w := []float64{0, 1, 3, 2, 9, 1}
	scaler.MeanVariance{}.Scale(w, len(w), 1)

	mean, variance := moments(w, len(w), 1, 0)
	assert.InDelta(t, 0.0, mean, eps, "mean must be 0 after scaling")
	assert.InDelta(t, 1.0, variance, eps, "population variance must be 1 after scaling")
}

// TestMeanVariance_PerChannel checks channels are normalized independently.
func TestMeanVariance_PerChannel(t *testing.T) {
	// 3 time steps, 2 channels, time-major
	w := []float64{1, 100, 2, 300, 3, 500}
	scaler.MeanVariance{}.Scale(w, 3, 2)

	for c := 0; c < 2; c++ {
		mean, variance := moments(w, 3, 2, c)
		assert.InDelta(t, 0.0, mean, eps, "channel %d mean", c)
		assert.InDelta(t, 1.0, variance, eps, "channel %d variance", c)
	}
}

// TestMeanVariance_ZeroVariance confirms a constant channel is centered and
// left unscaled (divisor 1), never NaN or Inf.
func TestMeanVariance_ZeroVariance(t *testing.T) {
	w := []float64{7, 7, 7, 7}
	scaler.MeanVariance{}.Scale(w, 4, 1)

	for i, v := range w {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value %d must stay finite", i)
		assert.Equal(t, 0.0, v, "constant window centers to exactly 0")
	}
}

// TestMeanVariance_ShiftInvariance: adding a constant to every value must
// not change the scaled window.
func TestMeanVariance_ShiftInvariance(t *testing.T) {
	a := []float64{0, 1, 3, 2}
	b := []float64{5, 6, 8, 7}
	scaler.MeanVariance{}.Scale(a, 4, 1)
	scaler.MeanVariance{}.Scale(b, 4, 1)

	for i := range a {
		assert.InDelta(t, a[i], b[i], eps, "scaled values at %d must agree", i)
	}
}
