package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-window/dsp/core"
)

// DefaultMinBins is the minimum zero-padded length used by [FrequencyResponse].
const DefaultMinBins = 1000

// ErrEmptyInput is returned when a transform is requested for no samples.
var ErrEmptyInput = errors.New("spectrum: input must not be empty")

// ResponseOption configures [FrequencyResponse].
type ResponseOption func(*responseConfig)

type responseConfig struct {
	minBins int
}

func defaultResponseConfig() responseConfig {
	return responseConfig{minBins: DefaultMinBins}
}

// WithMinBins sets the minimum number of DFT bins. Non-positive values keep
// the default.
func WithMinBins(n int) ResponseOption {
	return func(cfg *responseConfig) {
		if n > 0 {
			cfg.minBins = n
		}
	}
}

// Response holds the DFT of a zero-padded window.
type Response struct {
	bins      []complex128
	windowLen int
}

// FrequencyResponse zero-pads samples on the right to the next power of two
// that is at least max(minBins, len(samples)) and returns its forward DFT.
func FrequencyResponse(samples []float64, opts ...ResponseOption) (Response, error) {
	if len(samples) == 0 {
		return Response{}, ErrEmptyInput
	}

	cfg := defaultResponseConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fftSize := nextPowerOf2(max(cfg.minBins, len(samples)))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, s := range samples {
		padded[i] = complex(s, 0)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, padded); err != nil {
		return Response{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return Response{bins: bins, windowLen: len(samples)}, nil
}

// Len returns the number of DFT bins.
func (r Response) Len() int { return len(r.bins) }

// WindowLen returns the length of the window before zero padding.
func (r Response) WindowLen() int { return r.windowLen }

// Bins returns a copy of the complex DFT bins in raw order.
func (r Response) Bins() []complex128 {
	return append([]complex128(nil), r.bins...)
}

// Magnitude returns |X[k]| in raw DFT order (index 0 is DC).
func (r Response) Magnitude() []float64 {
	return Magnitude(r.bins)
}

// Shifted returns |X[k]| in centred order (index 0 is -Nyquist).
func (r Response) Shifted() []float64 {
	return Shift(Magnitude(r.bins))
}

// Phase returns arg(X[k]) in radians in centred order, matching [Response.Shifted].
func (r Response) Phase() []float64 {
	return Shift(Phase(r.bins))
}

// MagnitudeDB returns the raw-order power in dB relative to the strongest bin.
func (r Response) MagnitudeDB() []float64 {
	pw := Power(r.bins)
	peak := 0.0
	for _, p := range pw {
		peak = max(peak, p)
	}
	if peak == 0 {
		peak = 1
	}
	for i, p := range pw {
		pw[i] = core.LinearPowerToDB(p / peak)
	}
	return pw
}

// DFT returns the unnormalised forward DFT of x for any length.
func DFT(x []complex128) []complex128 {
	if len(x) == 0 {
		return nil
	}
	return fourier.NewCmplxFFT(len(x)).Coefficients(nil, x)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
