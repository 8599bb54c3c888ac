// Package window generates and analyzes DSP window functions.
//
// A window is described by a [Spec]: a [Kind] from the closed catalog, a
// length, the kind's parameters and the symmetric/periodic choice. [Generate]
// maps a Spec to its samples. Periodic windows of length N are the first N
// samples of the symmetric window of length N+1.
//
// Cosine-sum windows (Hann, Hamming, the Blackman family, flat-top, ...) are
// evaluated as a polynomial in cos(theta) after converting their published
// coefficient tables with [poly.MultipleAngleToPower]. The Dolph-Chebyshev
// window is built from Chebyshev polynomials and an inverse DFT. Kaiser and
// DPSS windows delegate to pluggable numeric backends and fail with
// [ErrMissingDependency] when a backend is withheld.
//
// [EquivalentNoiseBandwidth], [CoherentGain], [ProcessingGain],
// [ScallopingLoss] and [Analyze] derive spectral figures from any sample
// sequence.
package window
