package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/trajectory"
)

var ErrTooShort = errors.New("analysis: need at least 4 samples")

// PowerSpectrum returns the magnitudes of the first len(data)/2 bins of the
// discrete Fourier transform of data.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// Window removes the mean of data and applies a Hann window, returning a new
// slice. Fewer than two samples have no window shape and come back with
// only the mean removed.
func Window(data []float64) []float64 {
	n := len(data)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	mean := stat.Mean(data, nil)
	if n < 2 {
		for i, v := range data {
			out[i] = v - mean
		}
		return out
	}
	for i, v := range data {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		out[i] = (v - mean) * w
	}
	return out
}

// DominantFrequency returns the frequency in hertz of the largest non-DC bin
// of the windowed spectrum of data sampled every dt.
func DominantFrequency(data []float64, dt float64) (float64, error) {
	if len(data) < 4 {
		return 0, ErrTooShort
	}
	if !(dt > 0) {
		return 0, fmt.Errorf("analysis: sample interval must be positive, got %v", dt)
	}

	ps := PowerSpectrum(Window(data))

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	return float64(maxIdx) / (float64(len(data)) * dt), nil
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis accepts "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("analysis: unknown axis %q", s)
}

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

// SampleAxis samples one position coordinate of p at t0, t0+dt, ... for n samples.
func SampleAxis(p trajectory.Particle, axis Axis, t0, dt float64, n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		x := p.Position(t0 + float64(i)*dt)
		switch axis {
		case AxisX:
			data[i] = x.X
		case AxisY:
			data[i] = x.Y
		default:
			data[i] = x.Z
		}
	}
	return data
}
