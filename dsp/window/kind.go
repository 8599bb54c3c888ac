package window

import (
	"fmt"
	"strings"
)

// Kind identifies a window function.
type Kind int

const (
	KindRectangular Kind = iota
	KindTriangular
	KindBartlett
	KindWelch
	KindCosine
	KindCosAlpha
	KindBohman
	KindCauchy
	KindExponential
	KindPoisson
	KindGaussian
	KindHannPoisson
	KindLanczos
	KindParzen
	KindParzenOctave
	KindTukey
	KindHann
	KindHannMatlab
	KindHamming
	KindBlackman
	KindExactBlackman
	KindBlackmanHarris
	KindBlackmanNuttall
	KindNuttall
	KindFlatTop
	KindBartlettHann
	KindBlackmanGen
	KindBlackmanGen3
	KindBlackmanGen4
	KindBlackmanGen5
	KindChebyshev
	KindKaiser
	KindDPSS

	numKinds
)

// Family groups kinds by how their samples are produced.
type Family int

const (
	FamilyClosedForm Family = iota
	FamilyCosineSum
	FamilyChebyshev
	FamilySpecial
)

func (f Family) String() string {
	switch f {
	case FamilyClosedForm:
		return "closed-form"
	case FamilyCosineSum:
		return "cosine-sum"
	case FamilyChebyshev:
		return "chebyshev"
	case FamilySpecial:
		return "special"
	default:
		return "unknown"
	}
}

// KindInfo describes a catalog entry.
type KindInfo struct {
	Kind   Kind
	Name   string
	Family Family
	// Arity is the exact number of parameters the kind takes.
	Arity int
	// Periodic reports whether the kind has a periodic (DFT-even) form.
	Periodic bool
	// Defaults holds conventional parameter values, len(Defaults) == Arity
	// when the kind has sensible defaults and nil otherwise.
	Defaults []float64
	// Coefficients is the static multiple-angle table of fixed cosine-sum
	// kinds, a0..am in a0 - a1*cos(t) + a2*cos(2t) - ...
	Coefficients []float64
}

type generator func(n int, params []float64, cfg *config) ([]float64, error)

type kindDef struct {
	name     string
	family   Family
	arity    int
	periodic bool
	defaults []float64
	coeffs   []float64
	gen      generator
}

var kinds = [numKinds]kindDef{
	KindRectangular:  {name: "rectangular", family: FamilyClosedForm, periodic: true, gen: rectangular},
	KindTriangular:   {name: "triangular", family: FamilyClosedForm, periodic: true, gen: triangular},
	KindBartlett:     {name: "bartlett", family: FamilyClosedForm, periodic: true, gen: bartlett},
	KindWelch:        {name: "welch", family: FamilyClosedForm, periodic: true, gen: welch},
	KindCosine:       {name: "cosine", family: FamilyClosedForm, periodic: true, gen: cosine},
	KindCosAlpha:     {name: "cos_alpha", family: FamilyClosedForm, arity: 1, periodic: true, defaults: []float64{2}, gen: cosAlpha},
	KindBohman:       {name: "bohman", family: FamilyClosedForm, periodic: true, gen: bohman},
	KindCauchy:       {name: "cauchy", family: FamilyClosedForm, arity: 1, periodic: true, defaults: []float64{3}, gen: cauchy},
	KindExponential:  {name: "exponential", family: FamilyClosedForm, arity: 1, periodic: true, defaults: []float64{1}, gen: exponential},
	KindPoisson:      {name: "poisson", family: FamilyClosedForm, arity: 1, periodic: true, defaults: []float64{2}, gen: poisson},
	KindGaussian:     {name: "gaussian", family: FamilyClosedForm, arity: 1, periodic: true, defaults: []float64{2.5}, gen: gaussian},
	KindHannPoisson:  {name: "hann_poisson", family: FamilyClosedForm, arity: 1, periodic: true, defaults: []float64{2}, gen: hannPoisson},
	KindLanczos:      {name: "lanczos", family: FamilyClosedForm, periodic: true, gen: lanczos},
	KindParzen:       {name: "parzen", family: FamilyClosedForm, periodic: true, gen: parzen},
	KindParzenOctave: {name: "parzen_octave", family: FamilyClosedForm, gen: parzenOctave},
	KindTukey:        {name: "tukey", family: FamilyClosedForm, arity: 1, periodic: true, defaults: []float64{0.5}, gen: tukey},
	KindHann:         {name: "hann", family: FamilyCosineSum, periodic: true, coeffs: hannCoeffs, gen: fixedCosineSum(hannCoeffs)},
	KindHannMatlab:   {name: "hann_matlab", family: FamilyClosedForm, gen: hannMatlab},
	KindHamming:      {name: "hamming", family: FamilyCosineSum, periodic: true, coeffs: hammingCoeffs, gen: fixedCosineSum(hammingCoeffs)},
	KindBlackman:     {name: "blackman", family: FamilyCosineSum, periodic: true, coeffs: blackmanCoeffs, gen: fixedCosineSum(blackmanCoeffs)},
	KindExactBlackman: {
		name: "exact_blackman", family: FamilyCosineSum, periodic: true,
		coeffs: exactBlackmanCoeffs, gen: fixedCosineSum(exactBlackmanCoeffs),
	},
	KindBlackmanHarris: {
		name: "blackman_harris", family: FamilyCosineSum, periodic: true,
		coeffs: blackmanHarrisCoeffs, gen: fixedCosineSum(blackmanHarrisCoeffs),
	},
	KindBlackmanNuttall: {
		name: "blackman_nuttall", family: FamilyCosineSum, periodic: true,
		coeffs: blackmanNuttallCoeffs, gen: fixedCosineSum(blackmanNuttallCoeffs),
	},
	KindNuttall: {name: "nuttall", family: FamilyCosineSum, periodic: true, coeffs: nuttallCoeffs, gen: fixedCosineSum(nuttallCoeffs)},
	KindFlatTop: {name: "flattop", family: FamilyCosineSum, periodic: true, coeffs: flatTopCoeffs, gen: fixedCosineSum(flatTopCoeffs)},
	KindBartlettHann: {
		name: "bartlett_hann", family: FamilyCosineSum, periodic: true,
		coeffs: bartlettHannCoeffs, gen: bartlettHann,
	},
	KindBlackmanGen:  {name: "blackman_gen", family: FamilyCosineSum, arity: 1, periodic: true, defaults: []float64{0.16}, gen: blackmanGen},
	KindBlackmanGen3: {name: "blackman_gen3", family: FamilyCosineSum, arity: 3, periodic: true, gen: explicitCosineSum},
	KindBlackmanGen4: {name: "blackman_gen4", family: FamilyCosineSum, arity: 4, periodic: true, gen: explicitCosineSum},
	KindBlackmanGen5: {name: "blackman_gen5", family: FamilyCosineSum, arity: 5, periodic: true, gen: explicitCosineSum},
	KindChebyshev:    {name: "chebyshev", family: FamilyChebyshev, arity: 1, defaults: []float64{100}, gen: dolphChebyshev},
	KindKaiser:       {name: "kaiser", family: FamilySpecial, arity: 1, periodic: true, defaults: []float64{3}, gen: kaiser},
	KindDPSS:         {name: "dpss", family: FamilySpecial, arity: 1, defaults: []float64{3}, gen: dpss},
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Info returns the catalog entry for k.
func (k Kind) Info() (KindInfo, error) {
	if !k.Valid() {
		return KindInfo{}, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}

	d := kinds[k]
	return KindInfo{
		Kind:         k,
		Name:         d.name,
		Family:       d.family,
		Arity:        d.arity,
		Periodic:     d.periodic,
		Defaults:     append([]float64(nil), d.defaults...),
		Coefficients: append([]float64(nil), d.coeffs...),
	}, nil
}

// Catalog returns every supported kind in catalog order.
func Catalog() []KindInfo {
	out := make([]KindInfo, 0, numKinds)
	for k := range numKinds {
		info, _ := k.Info()
		out = append(out, info)
	}
	return out
}

// Filter returns the catalog entries whose name contains substr,
// ignoring case. An empty substr matches everything.
func Filter(substr string) []KindInfo {
	needle := normalizeName(substr)

	var out []KindInfo
	for _, info := range Catalog() {
		if strings.Contains(info.Name, needle) {
			out = append(out, info)
		}
	}
	return out
}

// ParseKind resolves a catalog name. Matching ignores case and treats '-' and
// '_' as equivalent.
func ParseKind(name string) (Kind, error) {
	needle := normalizeName(name)
	for k := range numKinds {
		if kinds[k].name == needle {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, name)
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
