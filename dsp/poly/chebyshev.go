package poly

// Chebyshev evaluates the Chebyshev polynomial of the first kind T_n(x).
//
// The three-term recurrence T_k = 2x*T_{k-1} - T_{k-2} is used instead of the
// cos/cosh closed forms so the result is real and accurate for |x| > 1.
// Negative orders follow T_{-n} = T_n.
func Chebyshev(n int, x float64) float64 {
	if n < 0 {
		n = -n
	}

	switch n {
	case 0:
		return 1
	case 1:
		return x
	}

	prev, cur := 1.0, x
	for k := 2; k <= n; k++ {
		prev, cur = cur, 2*x*cur-prev
	}
	return cur
}

// ChebyshevSlice evaluates T_n at every element of xs.
func ChebyshevSlice(n int, xs []float64) []float64 {
	if xs == nil {
		return nil
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Chebyshev(n, x)
	}
	return out
}
