package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t when got and want differ in length or when
// any pair differs by more than eps. The report names the worst sample and
// how many samples were out of tolerance.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}

	worst, bad := -1, 0
	worstDiff := 0.0
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff <= eps && !math.IsNaN(diff) {
			continue
		}
		bad++
		if worst < 0 || diff > worstDiff {
			worst, worstDiff = i, diff
		}
	}
	if bad > 0 {
		t.Fatalf("%d/%d samples off by more than %g; worst w[%d]=%v, want %v",
			bad, len(got), eps, worst, got[worst], want[worst])
	}
}

// RequireFinite fails t on the first NaN or Inf sample.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("w[%d]=%v is not finite", i, v)
		}
	}
}

// RequireSymmetric fails t unless w[i] and w[N-1-i] agree within eps for
// every i.
func RequireSymmetric(t *testing.T, w []float64, eps float64) {
	t.Helper()
	n := len(w)
	for i := range n / 2 {
		if diff := math.Abs(w[i] - w[n-1-i]); diff > eps || math.IsNaN(diff) {
			t.Fatalf("w[%d]=%v and w[%d]=%v differ by %g (eps %g)", i, w[i], n-1-i, w[n-1-i], diff, eps)
		}
	}
}
