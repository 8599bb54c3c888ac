package window

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-window/dsp/poly"
)

// maxParams is the largest arity in the catalog (blackman_gen5).
const maxParams = poly.MaxTerms

// Spec fully determines a window's samples. It is immutable and comparable,
// so it can be used as a map key.
type Spec struct {
	kind     Kind
	size     int
	periodic bool
	params   [maxParams]float64
	nparams  int
}

// NewSpec validates and builds a Spec.
func NewSpec(kind Kind, size int, periodic bool, params ...float64) (Spec, error) {
	if !kind.Valid() {
		return Spec{}, fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
	}
	if err := validateLength(size); err != nil {
		return Spec{}, err
	}
	if err := validateArity(kind, len(params)); err != nil {
		return Spec{}, err
	}
	if err := validatePeriodic(kind, periodic); err != nil {
		return Spec{}, err
	}
	for i, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Spec{}, fmt.Errorf("%w: %s parameter %d is not finite: %v", ErrInvalidConfiguration, kind, i, p)
		}
	}

	s := Spec{kind: kind, size: size, periodic: periodic, nparams: len(params)}
	copy(s.params[:], params)
	return s, nil
}

// Kind returns the window kind.
func (s Spec) Kind() Kind { return s.kind }

// Size returns the number of samples.
func (s Spec) Size() int { return s.size }

// Periodic reports whether the periodic form is requested.
func (s Spec) Periodic() bool { return s.periodic }

// Params returns a copy of the kind parameters.
func (s Spec) Params() []float64 {
	return append([]float64(nil), s.params[:s.nparams]...)
}

func (s Spec) String() string {
	var b strings.Builder
	b.WriteString(s.kind.String())
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(s.size))
	for _, p := range s.params[:s.nparams] {
		b.WriteString(", ")
		b.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	b.WriteByte(')')
	if s.periodic {
		b.WriteString(" periodic")
	}
	return b.String()
}

func (s Spec) validate() error {
	_, err := NewSpec(s.kind, s.size, s.periodic, s.params[:s.nparams]...)
	return err
}

// DefaultSpec builds a Spec using the catalog defaults of kind. Kinds without
// defaults (the explicit N-term cosine sums) return ErrInvalidArity.
func DefaultSpec(kind Kind, size int, periodic bool) (Spec, error) {
	if !kind.Valid() {
		return Spec{}, fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
	}
	return NewSpec(kind, size, periodic, kinds[kind].defaults...)
}
