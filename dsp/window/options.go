package window

import (
	"github.com/cwbudde/algo-window/internal/special"
	"github.com/cwbudde/algo-window/internal/tridiag"
)

// BesselI0Func evaluates the modified Bessel function of the first kind, order 0.
type BesselI0Func func(x float64) float64

// EigensolverFunc returns the eigenvector of the largest eigenvalue of the
// symmetric tridiagonal matrix with main diagonal diag and off-diagonal off.
type EigensolverFunc func(diag, off []float64) ([]float64, error)

// Option configures window generation.
type Option func(*config)

type config struct {
	besselI0    BesselI0Func
	eigensolver EigensolverFunc
	invert      bool
	dcRemoval   bool
}

func defaultConfig() config {
	return config{
		besselI0:    special.BesselI0,
		eigensolver: tridiag.DominantEigenvector,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithBesselI0 replaces the Bessel backend used by the Kaiser window.
// Passing nil makes Kaiser generation fail with ErrMissingDependency.
func WithBesselI0(fn BesselI0Func) Option {
	return func(c *config) {
		c.besselI0 = fn
	}
}

// WithEigensolver replaces the eigensolver backend used by the DPSS window.
// Passing nil makes DPSS generation fail with ErrMissingDependency.
func WithEigensolver(fn EigensolverFunc) Option {
	return func(c *config) {
		c.eigensolver = fn
	}
}

// WithInvert inverts coefficients (1 - w[n]).
func WithInvert() Option {
	return func(c *config) {
		c.invert = true
	}
}

// WithDCRemoval subtracts mean after window generation.
func WithDCRemoval() Option {
	return func(c *config) {
		c.dcRemoval = true
	}
}
