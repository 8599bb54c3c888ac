package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqualAcceptsRoundoff(t *testing.T) {
	// Hann(5) computed two ways.
	want := []float64{0, 0.5, 1, 0.5, 0}
	got := make([]float64, 5)
	for i := range got {
		got[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/4)
	}
	RequireSliceNearlyEqual(t, got, want, 1e-15)
	RequireSliceNearlyEqual(t, nil, []float64{}, 0)
}

func TestRequireFiniteAcceptsWindowSamples(t *testing.T) {
	RequireFinite(t, []float64{0, 1e-300, 0.5, 1, math.MaxFloat64})
	RequireFinite(t, nil)
}

func TestRequireSymmetricWindows(t *testing.T) {
	// odd length with a centre sample, even length with a roundoff tail
	RequireSymmetric(t, []float64{0.08, 0.54, 1, 0.54, 0.08}, 0)
	RequireSymmetric(t, []float64{0.25, 0.75, 0.75, 0.25 + 1e-16}, 1e-15)
	RequireSymmetric(t, []float64{0.3}, 0)
	RequireSymmetric(t, nil, 0)
}
