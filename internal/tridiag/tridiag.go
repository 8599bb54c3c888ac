// Package tridiag solves the symmetric tridiagonal eigenproblems behind the
// DPSS window.
package tridiag

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when the off-diagonal does not have len(diag)-1 entries.
	ErrShape = errors.New("tridiag: off-diagonal must have len(diag)-1 entries")
	// ErrNoConvergence is returned when the eigen decomposition fails.
	ErrNoConvergence = errors.New("tridiag: eigen decomposition did not converge")
)

// DominantEigenvector returns the unit-norm eigenvector belonging to the
// largest eigenvalue of the symmetric tridiagonal matrix with main diagonal
// diag and sub/super diagonal off.
func DominantEigenvector(diag, off []float64) ([]float64, error) {
	n := len(diag)
	if n == 0 {
		return nil, nil
	}
	if len(off) != n-1 {
		return nil, fmt.Errorf("%w: diag=%d off=%d", ErrShape, n, len(off))
	}

	a := mat.NewSymDense(n, nil)
	for i, d := range diag {
		a.SetSym(i, i, d)
		if i > 0 {
			a.SetSym(i, i-1, off[i-1])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(a, true); !ok {
		return nil, ErrNoConvergence
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	return mat.Col(nil, floats.MaxIdx(values), &vectors), nil
}
