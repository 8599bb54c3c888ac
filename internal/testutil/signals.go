// Package testutil holds the reference blocks and assertions shared by the
// window and spectrum tests.
package testutil

import "math/rand/v2"

// Ones returns the rectangular window of length n.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Impulse returns a block of length n with a single 1 at pos. A pos outside
// the block leaves it all zero.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// Noise returns n reproducible samples uniform in [-1, 1) from a PCG stream
// keyed by seed.
func Noise(seed uint64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*rng.Float64() - 1
	}
	return out
}
