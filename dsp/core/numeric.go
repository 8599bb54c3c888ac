// Package core holds the small numeric helpers shared by the window and
// spectrum packages.
package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
//
// Both endpoints are reproduced exactly and the grid is mirror-symmetric:
// out[i] and out[n-1-i] are computed from the same distance to the nearer
// endpoint. A single point sits at the midpoint.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = lo + (hi-lo)/2
		return out
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		j := n - 1 - i
		if i <= j {
			out[i] = lo + float64(i)*step
		} else {
			out[i] = hi - float64(j)*step
		}
	}

	return out
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}
