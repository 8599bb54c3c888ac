package window

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Generate returns the samples of the window described by spec.
//
// A periodic window of length N is the symmetric window of length N+1 with its
// last sample dropped. Size 0 yields an empty, non-nil slice.
func Generate(spec Spec, opts ...Option) ([]float64, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	if err := checkBackends(spec.kind, &cfg); err != nil {
		return nil, err
	}

	n := spec.size
	if spec.periodic {
		n++
	}

	out, err := symmetric(spec.kind, n, spec.params[:spec.nparams], &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec, err)
	}

	if spec.periodic {
		out = out[:spec.size]
	}

	postProcess(out, cfg)

	return out, nil
}

// Samples builds a Spec and generates it in one call.
func Samples(kind Kind, size int, periodic bool, params ...float64) ([]float64, error) {
	spec, err := NewSpec(kind, size, periodic, params...)
	if err != nil {
		return nil, err
	}
	return Generate(spec)
}

// Apply multiplies buf in-place by the window described by spec.
func Apply(spec Spec, buf []float64, opts ...Option) error {
	if spec.size != len(buf) {
		return fmt.Errorf("%w: spec size %d does not match buffer length %d", ErrInvalidSize, spec.size, len(buf))
	}

	coeffs, err := Generate(spec, opts...)
	if err != nil {
		return err
	}

	if len(buf) > 0 {
		vecmath.MulBlockInPlace(buf, coeffs)
	}

	return nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength(len(samples), len(coeffs))
	}

	out := make([]float64, len(samples))
	if len(out) > 0 {
		vecmath.MulBlock(out, samples, coeffs)
	}

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength(len(samples), len(coeffs))
	}

	if len(samples) > 0 {
		vecmath.MulBlockInPlace(samples, coeffs)
	}

	return nil
}

func symmetric(k Kind, n int, params []float64, cfg *config) ([]float64, error) {
	if n == 0 {
		// parameters are checked by the generator, so N=0 runs it at N=1
		if _, err := kinds[k].gen(1, params, cfg); err != nil {
			return nil, err
		}
		return []float64{}, nil
	}
	return kinds[k].gen(n, params, cfg)
}

func checkBackends(k Kind, cfg *config) error {
	switch {
	case k == KindKaiser && cfg.besselI0 == nil:
		return fmt.Errorf("%w: kaiser needs a Bessel I0 backend", ErrMissingDependency)
	case k == KindDPSS && cfg.eigensolver == nil:
		return fmt.Errorf("%w: dpss needs a tridiagonal eigensolver backend", ErrMissingDependency)
	}
	return nil
}

func postProcess(coeffs []float64, cfg config) {
	if len(coeffs) == 0 {
		return
	}

	if cfg.invert {
		for i := range coeffs {
			coeffs[i] = 1 - coeffs[i]
		}
	}

	if cfg.dcRemoval {
		floats.AddConst(-floats.Sum(coeffs)/float64(len(coeffs)), coeffs)
	}
}

func errMismatchedLength(a, b int) error {
	return fmt.Errorf("%w: samples and coefficients must have same length: %d != %d", ErrInvalidSize, a, b)
}
