package window

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-window/dsp/core"
	"github.com/cwbudde/algo-window/dsp/spectrum"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// ProcessingGain is 1 / ENBW.
	ProcessingGain float64
	// ScallopLoss is |W(1/2 bin)| / |W(0)|.
	ScallopLoss float64
	// ScallopLossdB is ScallopLoss in dB (<= 0 for any sensible window).
	ScallopLossdB float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
}

// EquivalentNoiseBandwidth returns the ENBW in bins: N*sum(w^2)/sum(w)^2.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := floats.Sum(coeffs)
	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * floats.Dot(coeffs, coeffs) / (sum * sum), nil
}

// CoherentGain returns the mean of the window samples.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	return floats.Sum(coeffs) / float64(len(coeffs)), nil
}

// ProcessingGain returns 1 / ENBW.
func ProcessingGain(coeffs []float64) (float64, error) {
	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return 0, err
	}

	return 1 / enbw, nil
}

// ScallopingLoss returns the amplitude ratio between a tone half a bin off a
// DFT bin centre and a tone on the centre, |W(0.5/N)| / |W(0)|, with W the
// DTFT of the window. Half a bin is the worst case: any other offset lies
// closer to one of the two neighbouring bins.
func ScallopingLoss(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	dc, err := spectrum.MagnitudeAt(coeffs, 0)
	if err != nil {
		return 0, err
	}
	if dc == 0 {
		return 0, errZeroCoherentGain
	}

	half, err := spectrum.MagnitudeAt(coeffs, 0.5/float64(len(coeffs)))
	if err != nil {
		return 0, err
	}

	return half / dc, nil
}

// ScallopingLossDB returns [ScallopingLoss] in dB.
func ScallopingLossDB(coeffs []float64) (float64, error) {
	sl, err := ScallopingLoss(coeffs)
	if err != nil {
		return 0, err
	}

	return core.LinearToDB(sl), nil
}

// Analyze computes spectral properties of the given window coefficients
// using numerical DTFT evaluation.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	d := newDTFT(coeffs)

	// DC reference: |DTFT(0)|^2
	dcRef := d.magSq(0)
	if dcRef == 0 {
		return Analysis{}, errZeroCoherentGain
	}

	coherentGain, err := CoherentGain(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	scallop, err := ScallopingLoss(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	firstMin := searchFirstMinimum(d, n)

	return Analysis{
		CoherentGain:      coherentGain,
		ENBW:              enbw,
		ProcessingGain:    1 / enbw,
		ScallopLoss:       scallop,
		ScallopLossdB:     core.LinearToDB(scallop),
		Bandwidth3dB:      searchBandwidth(d, dcRef, n),
		HighestSidelobedB: searchHighestSidelobe(d, dcRef, firstMin, n),
		FirstMinimumBins:  firstMin,
	}, nil
}

var (
	errEmptyCoeffs      = fmt.Errorf("%w: window coefficients must not be empty", ErrInvalidSize)
	errZeroCoherentGain = fmt.Errorf("%w: window coherent gain is zero", ErrNumericDegeneracy)
)

// dtft evaluates |DTFT(f)|^2 of a fixed block at normalised frequencies in
// [0, 0.5], retuning a single Goertzel filter for every frequency.
type dtft struct {
	coeffs []float64
	g      *spectrum.Goertzel
}

func newDTFT(coeffs []float64) *dtft {
	g, _ := spectrum.NewGoertzel(0)
	return &dtft{coeffs: coeffs, g: g}
}

func (d *dtft) magSq(freq float64) float64 {
	if err := d.g.SetFrequency(core.Clamp(freq, 0, 0.5)); err != nil {
		return 0
	}
	d.g.ProcessBlock(d.coeffs)
	return math.Max(0, d.g.Power())
}

// searchBandwidth finds the 3dB (half-power) main lobe width in bins
// using binary search on the DTFT magnitude response.
func searchBandwidth(d *dtft, dcRef float64, n int) float64 {
	nf := float64(n)
	invRef := 1.0 / dcRef

	// The -3dB point is where |H(f)|^2/|H(0)|^2 = 0.5.
	lo := 0.0
	hi := 0.5
	for range 80 {
		mid := (lo + hi) / 2
		val := d.magSq(mid) * invRef
		if val > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	// Bandwidth is two-sided: from -f to +f.
	return 2 * lo * nf
}

// searchFirstMinimum finds the first spectral null position in bins
// by scanning from DC outward for the first local minimum.
func searchFirstMinimum(d *dtft, n int) float64 {
	nf := float64(n)
	// Coarse scan: step = 1/8 of a bin in normalised frequency.
	step := 1.0 / (nf * 8)

	dcVal := d.magSq(0)
	prev := dcVal
	coarseMinFreq := step
	// Require descent to at least 10% of DC before looking for a turn-around,
	// to avoid false positives in flat-top windows where the main lobe
	// has a wide plateau.
	threshold := dcVal * 0.1

	for freq := step; freq < 0.5; freq += step {
		val := d.magSq(freq)
		if prev < threshold && val > prev {
			coarseMinFreq = freq - step
			break
		}
		prev = val
	}

	// Refine with golden-section search around the coarse minimum.
	a := math.Max(0, coarseMinFreq-2*step)
	b := math.Min(0.5, coarseMinFreq+2*step)

	const phi = 0.6180339887498949 // (sqrt(5)-1)/2
	x1 := b - phi*(b-a)
	x2 := a + phi*(b-a)
	for range 80 {
		if d.magSq(x1) < d.magSq(x2) {
			b = x2
		} else {
			a = x1
		}
		x1 = b - phi*(b-a)
		x2 = a + phi*(b-a)
	}
	return (a + b) / 2 * nf
}

// searchHighestSidelobe finds the peak sidelobe level in dB relative to DC.
func searchHighestSidelobe(d *dtft, dcRef, firstMinBins float64, n int) float64 {
	nf := float64(n)
	startFreq := firstMinBins / nf
	step := 1.0 / (nf * 8)

	peakVal := 0.0
	peakFreq := startFreq

	for freq := startFreq; freq < 0.5; freq += step {
		val := d.magSq(freq)
		if val > peakVal {
			peakVal = val
			peakFreq = freq
		}
	}

	// Refine around peak with finer step.
	fineStep := step / 32
	refinedPeak := peakVal
	for freq := peakFreq - step; freq <= peakFreq+step; freq += fineStep {
		if freq < 0 || freq > 0.5 {
			continue
		}
		refinedPeak = math.Max(refinedPeak, d.magSq(freq))
	}

	if refinedPeak <= 0 {
		return math.Inf(-1)
	}
	return core.LinearPowerToDB(refinedPeak / dcRef)
}
