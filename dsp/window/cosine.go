package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-window/dsp/core"
	"github.com/cwbudde/algo-window/dsp/poly"
)

// Multiple-angle tables a0..am for a0 - a1*cos(t) + a2*cos(2t) - ...
var (
	hannCoeffs            = []float64{0.5, 0.5}
	hammingCoeffs         = []float64{0.54, 0.46}
	blackmanCoeffs        = []float64{0.42, 0.5, 0.08}
	exactBlackmanCoeffs   = []float64{7938.0 / 18608.0, 9240.0 / 18608.0, 1430.0 / 18608.0}
	blackmanHarrisCoeffs  = []float64{0.35875, 0.48829, 0.14128, 0.01168}
	blackmanNuttallCoeffs = []float64{0.3635819, 0.4891775, 0.1365995, 0.0106411}
	nuttallCoeffs         = []float64{0.355768, 0.487396, 0.144232, 0.012604}
	flatTopCoeffs         = []float64{0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368}
	bartlettHannCoeffs    = []float64{0.62, 0.38}
)

// bartlettHannSlope scales the |k/(N-1) - 1/2| term of the Bartlett-Hann window.
const bartlettHannSlope = 0.48

func fixedCosineSum(a []float64) generator {
	return func(n int, _ []float64, _ *config) ([]float64, error) {
		return cosineSum(n, a)
	}
}

func explicitCosineSum(n int, params []float64, _ *config) ([]float64, error) {
	return cosineSum(n, params)
}

// blackmanGen is the one-parameter generalized Blackman window
// a = [(1-alpha)/2, 1/2, alpha/2]; alpha = 0.16 gives the classic Blackman.
func blackmanGen(n int, params []float64, _ *config) ([]float64, error) {
	alpha := params[0]
	return cosineSum(n, []float64{(1 - alpha) / 2, 0.5, alpha / 2})
}

func bartlettHann(n int, _ []float64, _ *config) ([]float64, error) {
	out, err := cosineSum(n, bartlettHannCoeffs)
	if err != nil || n == 1 {
		return out, err
	}

	// k/(N-1) - 1/2 == x/2 for x on [-1, 1]
	for i, x := range core.Linspace(-1, 1, n) {
		out[i] -= bartlettHannSlope * math.Abs(x) / 2
	}
	return out, nil
}

// cosineSum evaluates sum_i (-1)^i a_i cos(i*2*pi*k/(N-1)) for k = 0..N-1.
//
// The multiple-angle table is converted to powers of cos(theta) once, so
// each sample costs one cosine and a Horner evaluation. The first half is
// mirrored onto the second so the result is exactly symmetric. N=1 is 1.
func cosineSum(n int, a []float64) ([]float64, error) {
	c, err := poly.MultipleAngleToPower(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArity, err)
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out, nil
	}

	step := 2 * math.Pi / float64(n-1)
	for k := 0; k <= (n-1)/2; k++ {
		v := poly.Horner(c, math.Cos(step*float64(k)))
		out[k] = v
		out[n-1-k] = v
	}

	return out, nil
}
