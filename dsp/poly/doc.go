// Package poly provides the polynomial machinery behind cosine-sum windows.
//
// A finite cosine sum a0 - a1*cos(t) + a2*cos(2t) - a3*cos(3t) + a4*cos(4t)
// can be rewritten as a polynomial in u = cos(t). Evaluating the polynomial
// with Horner's scheme needs a single cosine per sample instead of one per
// term. [MultipleAngleToPower] and [PowerToMultipleAngle] convert between the
// two coefficient bases; [Chebyshev] evaluates Chebyshev polynomials of the
// first kind with the three-term recurrence, which stays exact outside [-1, 1].
package poly
