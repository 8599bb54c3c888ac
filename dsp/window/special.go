package window

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-window/dsp/core"
)

// kaiser evaluates I0(beta*pi*sqrt(1-x^2)) / I0(beta*pi) on x in [-1, 1].
// beta is the Kaiser alpha; the pi factor is applied here.
func kaiser(n int, params []float64, cfg *config) ([]float64, error) {
	beta := params[0]
	if beta < 0 {
		return nil, fmt.Errorf("%w: kaiser beta must be >= 0: %v", ErrInvalidConfiguration, beta)
	}

	i0 := cfg.besselI0
	den := i0(beta * math.Pi)
	if den == 0 || math.IsInf(den, 0) || math.IsNaN(den) {
		return nil, fmt.Errorf("%w: I0(%v) is not usable: %v", ErrNumericDegeneracy, beta*math.Pi, den)
	}

	return mapGrid(core.Linspace(-1, 1, n), func(x float64) float64 {
		return i0(beta*math.Pi*math.Sqrt(math.Max(0, 1-x*x))) / den
	}), nil
}

// dpss returns the zeroth discrete prolate spheroidal sequence for the
// time-half-bandwidth product nw, scaled to a peak of 1.
func dpss(n int, params []float64, cfg *config) ([]float64, error) {
	nw := params[0]
	if nw <= 0 {
		return nil, fmt.Errorf("%w: dpss NW must be > 0: %v", ErrInvalidConfiguration, nw)
	}
	if n == 1 {
		return []float64{1}, nil
	}

	w := nw / float64(n)
	if w >= 0.5 {
		return nil, fmt.Errorf("%w: dpss NW must be < N/2: %v", ErrInvalidConfiguration, nw)
	}

	diag := make([]float64, n)
	off := make([]float64, n-1)
	c := math.Cos(2 * math.Pi * w)
	for k := range diag {
		d := float64(n-1)/2 - float64(k)
		diag[k] = d * d * c
	}
	for k := 1; k < n; k++ {
		off[k-1] = float64(k*(n-k)) / 2
	}

	v, err := cfg.eigensolver(diag, off)
	if err != nil {
		return nil, fmt.Errorf("dpss eigensolver: %w", err)
	}
	if len(v) != n {
		return nil, fmt.Errorf("%w: eigensolver returned %d entries, want %d", ErrNumericDegeneracy, len(v), n)
	}

	out := make([]float64, n)
	for k := range out {
		out[k] = (v[k] + v[n-1-k]) / 2
	}

	peak := floats.Max(out)
	if trough := floats.Min(out); -trough > peak {
		peak = trough
	}
	if peak == 0 {
		return nil, fmt.Errorf("%w: dpss eigenvector is antisymmetric", ErrNumericDegeneracy)
	}
	floats.Scale(1/peak, out)

	return out, nil
}
