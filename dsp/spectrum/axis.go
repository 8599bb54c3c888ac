package spectrum

import (
	"errors"
	"fmt"
	"strings"
)

// Unit selects how a DFT bin index is expressed on a frequency axis.
type Unit int

const (
	// UnitNyquist is frequency relative to Nyquist, in [-1, 1).
	UnitNyquist Unit = iota
	// UnitSample is cycles per sample, in [-0.5, 0.5).
	UnitSample
	// UnitBin is in bins of the unpadded window (1 bin = 1/N cycles/sample).
	UnitBin
)

// ErrUnknownUnit is returned for unit names other than nyquist, sample and bin.
var ErrUnknownUnit = errors.New("spectrum: unknown frequency unit")

func (u Unit) String() string {
	switch u {
	case UnitNyquist:
		return "nyquist"
	case UnitSample:
		return "sample"
	case UnitBin:
		return "bin"
	default:
		return "unknown"
	}
}

// ParseUnit resolves "nyquist", "sample" or "bin".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nyquist":
		return UnitNyquist, nil
	case "sample":
		return UnitSample, nil
	case "bin":
		return UnitBin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// BinToUnit converts a (possibly fractional or negative) bin index of an
// fftSize-point DFT of a windowLen-sample window into the given unit.
func BinToUnit(unit Unit, bin float64, fftSize, windowLen int) (float64, error) {
	if fftSize <= 0 {
		return 0, fmt.Errorf("spectrum: fftSize must be > 0: %d", fftSize)
	}

	cycles := bin / float64(fftSize)
	switch unit {
	case UnitNyquist:
		return 2 * cycles, nil
	case UnitSample:
		return cycles, nil
	case UnitBin:
		if windowLen <= 0 {
			return 0, fmt.Errorf("spectrum: windowLen must be > 0: %d", windowLen)
		}
		return cycles * float64(windowLen), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownUnit, int(unit))
	}
}

// Axis returns the frequency of every index of a centred ([Shift]-ordered)
// fftSize-point spectrum.
func Axis(unit Unit, fftSize, windowLen int) ([]float64, error) {
	if fftSize <= 0 {
		return nil, fmt.Errorf("spectrum: fftSize must be > 0: %d", fftSize)
	}

	out := make([]float64, fftSize)
	for i := range out {
		v, err := BinToUnit(unit, float64(i-fftSize/2), fftSize, windowLen)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Axis returns the centred frequency axis matching [Response.Shifted].
func (r Response) Axis(unit Unit) ([]float64, error) {
	return Axis(unit, r.Len(), r.windowLen)
}
