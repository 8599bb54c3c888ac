// Package spectrum provides the frequency-domain view of window functions.
//
// [FrequencyResponse] zero-pads a sample sequence, runs a forward FFT and
// wraps the bins in a [Response] that exposes both the raw DFT ordering and
// the centred ordering used for display. [Axis] and [BinToUnit] translate bin
// indices into normalised frequency units. [Goertzel] evaluates the DTFT at a
// single, possibly fractional, frequency.
package spectrum
