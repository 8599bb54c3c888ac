//nolint:funcorder
package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates the DTFT magnitude of a block at one frequency.
//
// Frequencies are normalised to cycles per sample and may fall between DFT
// bins, which makes the filter usable for off-bin measurements such as
// scalloping loss. The analyzer is stateful: Power and Magnitude describe all
// samples processed since construction or the last SetFrequency.
type Goertzel struct {
	frequency float64
	coeff     float64
	s0, s1    float64
}

// NewGoertzel creates an analyzer for the normalised frequency in [0, 0.5].
func NewGoertzel(frequency float64) (*Goertzel, error) {
	if err := checkFrequency(frequency); err != nil {
		return nil, err
	}

	g := &Goertzel{frequency: frequency}
	g.updateCoeff()

	return g, nil
}

func (g *Goertzel) updateCoeff() {
	g.coeff = 2 * math.Cos(2*math.Pi*g.frequency)
}

func (g *Goertzel) reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns |X(f)|^2 over the processed samples.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X(f)| over the processed samples.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// SetFrequency updates the target frequency and resets the state.
func (g *Goertzel) SetFrequency(frequency float64) error {
	if err := checkFrequency(frequency); err != nil {
		return err
	}

	g.frequency = frequency
	g.updateCoeff()
	g.reset()

	return nil
}

// MagnitudeAt returns |sum x[n] e^{-i 2 pi f n}| for a normalised frequency f.
func MagnitudeAt(x []float64, frequency float64) (float64, error) {
	g, err := NewGoertzel(frequency)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(x)

	return g.Magnitude(), nil
}

func checkFrequency(frequency float64) error {
	if frequency < 0 || frequency > 0.5 || math.IsNaN(frequency) {
		return fmt.Errorf("goertzel: frequency must be between 0 and 0.5 cycles/sample: %v", frequency)
	}
	return nil
}
