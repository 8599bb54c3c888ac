package poly

import (
	"errors"
	"fmt"
)

// MaxTerms is the largest number of cosine terms the transform supports.
const MaxTerms = 5

// ErrArity is returned for coefficient slices with fewer than one or more
// than MaxTerms entries.
var ErrArity = errors.New("poly: coefficient count must be in [1, 5]")

// MultipleAngleToPower converts alternating-sign multiple-angle coefficients
//
//	a0 - a1*cos(t) + a2*cos(2t) - a3*cos(3t) + a4*cos(4t)
//
// into power coefficients c0 + c1*u + c2*u^2 + c3*u^3 + c4*u^4 with u = cos(t).
// The result has the same length as a.
func MultipleAngleToPower(a []float64) ([]float64, error) {
	if err := checkArity(len(a)); err != nil {
		return nil, err
	}

	var m [MaxTerms]float64
	copy(m[:], a)

	// cos(2t) = 2u^2 - 1, cos(3t) = 4u^3 - 3u, cos(4t) = 8u^4 - 8u^2 + 1
	c := [MaxTerms]float64{
		m[0] - m[2] + m[4],
		-m[1] + 3*m[3],
		2*m[2] - 8*m[4],
		-4 * m[3],
		8 * m[4],
	}

	return append([]float64(nil), c[:len(a)]...), nil
}

// PowerToMultipleAngle is the inverse of [MultipleAngleToPower].
func PowerToMultipleAngle(c []float64) ([]float64, error) {
	if err := checkArity(len(c)); err != nil {
		return nil, err
	}

	var p [MaxTerms]float64
	copy(p[:], c)

	var a [MaxTerms]float64
	a[4] = p[4] / 8
	a[3] = -p[3] / 4
	a[2] = (p[2] + 8*a[4]) / 2
	a[1] = 3*a[3] - p[1]
	a[0] = p[0] + a[2] - a[4]

	return append([]float64(nil), a[:len(c)]...), nil
}

// Horner evaluates c0 + c1*u + ... + cn*u^n.
func Horner(c []float64, u float64) float64 {
	sum := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum*u + c[i]
	}
	return sum
}

func checkArity(n int) error {
	if n < 1 || n > MaxTerms {
		return fmt.Errorf("%w: got %d", ErrArity, n)
	}
	return nil
}
