// Package special provides the special functions needed by parametric windows.
package special

import "math"

// BesselI0 returns the modified Bessel function of the first kind, order 0.
//
// The power series sum_k ((x/2)^k / k!)^2 has only positive terms, so it is
// accurate over the whole range where I0 is finite (|x| < ~713). Beyond that
// the result is +Inf.
func BesselI0(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	ax := math.Abs(x)
	if ax > maxArgument {
		return math.Inf(1)
	}

	half := ax / 2
	sum := 1.0
	term := 1.0
	for k := 1; k < maxIterations; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*seriesEpsilon {
			break
		}
	}
	return sum
}

const (
	maxArgument   = 713.0
	maxIterations = 2000
	seriesEpsilon = 1e-17
)
