// Package analysis provides spectral tools for sampled orbits.
//
//   - [SpeedSpectrum]: amplitude spectrum of |v| over one period
//   - [DominantHarmonic]: strongest non-DC harmonic of a spectrum
//   - [HarmonicRatio]: energy above the fundamental relative to it
//
// A sequence produced by orbit.Generate covers exactly one period, so bin k
// of the spectrum is the k-th harmonic of the orbital frequency. Circular
// orbits have a flat speed and an empty spectrum above DC; eccentric orbits
// leak power into higher harmonics as e grows.
package analysis
