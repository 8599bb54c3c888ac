package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-window/dsp/core"
)

// Closed-form windows. Each maps an abscissa grid to samples; the symmetric
// grids are x on [-1, 1], x on [-1/2, 1/2] or t on [0, pi], and a single
// sample always sits at the grid centre.

func mapGrid(grid []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = f(x)
	}
	return out
}

func unitGrid(n int) []float64 { return core.Linspace(-1, 1, n) }

func rectangular(n int, _ []float64, _ *config) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// triangular scales the grid by (N-1)/N so the end samples are 1/N, not 0.
func triangular(n int, _ []float64, _ *config) ([]float64, error) {
	scale := float64(n-1) / float64(n)
	return mapGrid(unitGrid(n), func(x float64) float64 {
		return 1 - math.Abs(x*scale)
	}), nil
}

func bartlett(n int, _ []float64, _ *config) ([]float64, error) {
	return mapGrid(unitGrid(n), func(x float64) float64 {
		return 1 - math.Abs(x)
	}), nil
}

func welch(n int, _ []float64, _ *config) ([]float64, error) {
	return mapGrid(unitGrid(n), func(x float64) float64 {
		return 1 - x*x
	}), nil
}

func cosine(n int, _ []float64, _ *config) ([]float64, error) {
	return mapGrid(core.Linspace(0, math.Pi, n), math.Sin), nil
}

func cosAlpha(n int, params []float64, _ *config) ([]float64, error) {
	alpha := params[0]
	if alpha < 0 {
		return nil, fmt.Errorf("%w: cos_alpha exponent must be >= 0: %v", ErrInvalidConfiguration, alpha)
	}
	return mapGrid(core.Linspace(0, math.Pi, n), func(t float64) float64 {
		return math.Pow(math.Max(0, math.Sin(t)), alpha)
	}), nil
}

func bohman(n int, _ []float64, _ *config) ([]float64, error) {
	return mapGrid(unitGrid(n), func(x float64) float64 {
		ax := math.Abs(x)
		return (1-ax)*math.Cos(math.Pi*ax) + math.Sin(math.Pi*ax)/math.Pi
	}), nil
}

func cauchy(n int, params []float64, _ *config) ([]float64, error) {
	alpha := params[0]
	return mapGrid(unitGrid(n), func(x float64) float64 {
		v := alpha * x
		return 1 / (1 + v*v)
	}), nil
}

func exponential(n int, params []float64, _ *config) ([]float64, error) {
	tau := params[0]
	if tau <= 0 {
		return nil, fmt.Errorf("%w: exponential time constant must be > 0: %v", ErrInvalidConfiguration, tau)
	}
	return mapGrid(unitGrid(n), func(x float64) float64 {
		return math.Exp(-math.Abs(x) / tau)
	}), nil
}

func poisson(n int, params []float64, _ *config) ([]float64, error) {
	alpha := params[0]
	return mapGrid(unitGrid(n), func(x float64) float64 {
		return math.Exp(-alpha * math.Abs(x))
	}), nil
}

func gaussian(n int, params []float64, _ *config) ([]float64, error) {
	alpha := params[0]
	return mapGrid(unitGrid(n), func(x float64) float64 {
		v := alpha * x
		return math.Exp(-0.5 * v * v)
	}), nil
}

func hannPoisson(n int, params []float64, _ *config) ([]float64, error) {
	alpha := params[0]
	return mapGrid(unitGrid(n), func(x float64) float64 {
		return 0.5 * (1 + math.Cos(math.Pi*x)) * math.Exp(-alpha*math.Abs(x))
	}), nil
}

func lanczos(n int, _ []float64, _ *config) ([]float64, error) {
	out := mapGrid(unitGrid(n), sinc)
	if n%2 == 1 {
		// the grid centre may miss 0 by an ulp
		out[n/2] = 1
	}
	return out, nil
}

func parzen(n int, _ []float64, _ *config) ([]float64, error) {
	return mapGrid(unitGrid(n), func(x float64) float64 {
		ax := math.Abs(x)
		if ax <= 0.5 {
			return 1 - 6*ax*ax*(1-ax)
		}
		d := 1 - ax
		return 2 * d * d * d
	}), nil
}

// parzenOctave follows Octave's parzenwin: the distance from the centre is
// normalised by N/2 rather than (N-1)/2, so the end samples are not zero.
func parzenOctave(n int, _ []float64, _ *config) ([]float64, error) {
	m := float64(n - 1)
	half := float64(n) / 2

	out := make([]float64, n)
	for k := range out {
		d := math.Abs(float64(k) - m/2)
		r := d / half
		if d <= m/4 {
			out[k] = 1 - 6*r*r + 6*r*r*r
		} else {
			e := 1 - r
			out[k] = 2 * e * e * e
		}
	}
	return out, nil
}

func tukey(n int, params []float64, _ *config) ([]float64, error) {
	alpha := params[0]
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: tukey alpha must be in [0,1]: %v", ErrInvalidConfiguration, alpha)
	}
	if alpha == 0 {
		return rectangular(n, nil, nil)
	}

	flat := (1 - alpha) / 2
	return mapGrid(core.Linspace(-0.5, 0.5, n), func(x float64) float64 {
		ax := math.Abs(x)
		if ax <= flat {
			return 1
		}
		return 0.5 * (1 + math.Cos(2*math.Pi/alpha*(ax-flat)))
	}), nil
}

// hannMatlab is MATLAB's hann without the zero end points: the phase runs
// over 2*pi*(k+1)/(N+1), k = 0..N-1.
func hannMatlab(n int, _ []float64, _ *config) ([]float64, error) {
	step := 2 * math.Pi / float64(n+1)
	out := make([]float64, n)
	for k := 0; k <= (n-1)/2; k++ {
		v := 0.5 * (1 - math.Cos(step*float64(k+1)))
		out[k] = v
		out[n-1-k] = v
	}
	return out, nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
