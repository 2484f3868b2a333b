// Package analysis provides frequency analysis of sampled trajectories.
//
//   - [PowerSpectrum]: magnitude spectrum of a real signal
//   - [DominantFrequency]: strongest non-DC frequency of a sampled signal
//   - [SampleAxis]: one coordinate of a particle's position over time
//
// A harmonic trajectory with angular frequency wh should show its peak at
// wh/2π:
//
//	data := analysis.SampleAxis(p, analysis.AxisX, 0, 0.01, 1024)
//	f, _ := analysis.DominantFrequency(data, 0.01)
package analysis
