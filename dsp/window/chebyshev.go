package window

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-window/dsp/poly"
	"github.com/cwbudde/algo-window/dsp/spectrum"
)

// dolphChebyshev builds the window whose sidelobes all sit at -at dB by
// sampling T_{N-1}(beta*cos(pi*k/N)) on the unit circle and transforming
// back to the time domain.
func dolphChebyshev(n int, params []float64, _ *config) ([]float64, error) {
	at := params[0]
	if at <= 0 {
		return nil, fmt.Errorf("%w: chebyshev attenuation must be > 0 dB: %v", ErrInvalidConfiguration, at)
	}

	if n == 1 {
		return []float64{1}, nil
	}

	order := n - 1
	beta := math.Cosh(math.Acosh(math.Pow(10, at/20)) / float64(order))

	p := make([]complex128, n)
	for k := range p {
		x := beta * math.Cos(math.Pi*float64(k)/float64(n))
		p[k] = complex(poly.Chebyshev(order, x), 0)
		if n%2 == 0 {
			// half-sample shift so the even-length window is centred
			p[k] *= cmplx.Exp(complex(0, math.Pi*float64(k)/float64(n)))
		}
	}

	bins := spectrum.DFT(p)

	out := make([]float64, n)
	if n%2 == 1 {
		h := (n + 1) / 2
		for i := 0; i < h; i++ {
			v := real(bins[i])
			out[h-1+i] = v
			out[h-1-i] = v
		}
	} else {
		h := n / 2
		for i := 1; i <= h; i++ {
			v := real(bins[i])
			out[h-1+i] = v
			out[h-i] = v
		}
	}

	peak := floats.Max(out)
	if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("%w: chebyshev window did not normalise (peak %v)", ErrNumericDegeneracy, peak)
	}
	floats.Scale(1/peak, out)

	return out, nil
}
