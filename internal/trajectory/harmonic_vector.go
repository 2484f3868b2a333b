package trajectory

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidParameter indicates a NaN or infinite trajectory parameter.
var ErrInvalidParameter = errors.New("trajectory: parameter is NaN or infinite")

// HarmonicVector is the time-varying vector
//
//	f(t) = F0 + F1·τ + F2·τ² + exp(We·τ)·[F3·cos(Wh·τ) + F4·sin(Wh·τ)],  τ = t − T0
//
// It is a plain value; copies are independent.
type HarmonicVector struct {
	T0 float64 `yaml:"t0" json:"t0"`

	F0 r3.Vec `yaml:"f0" json:"f0"`
	F1 r3.Vec `yaml:"f1" json:"f1"`
	F2 r3.Vec `yaml:"f2" json:"f2"`
	F3 r3.Vec `yaml:"f3" json:"f3"`
	F4 r3.Vec `yaml:"f4" json:"f4"`

	// We is the exponential growth (positive) or decay (negative) rate.
	We float64 `yaml:"we" json:"we"`
	// Wh is the angular frequency of the oscillation.
	Wh float64 `yaml:"wh" json:"wh"`
}

func (h HarmonicVector) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{{"t0", h.T0}, {"we", h.We}, {"wh", h.Wh}} {
		if !finite(p.v) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidParameter, p.name, p.v)
		}
	}
	for i, f := range []r3.Vec{h.F0, h.F1, h.F2, h.F3, h.F4} {
		if !finite(f.X) || !finite(f.Y) || !finite(f.Z) {
			return fmt.Errorf("%w: f%d = %v", ErrInvalidParameter, i, f)
		}
	}
	return nil
}

// At evaluates the vector at time t.
func (h HarmonicVector) At(t float64) r3.Vec {
	tau := t - h.T0
	poly := r3.Add(h.F0, r3.Add(r3.Scale(tau, h.F1), r3.Scale(tau*tau, h.F2)))

	s, c := math.Sincos(h.Wh * tau)
	osc := r3.Scale(math.Exp(h.We*tau), r3.Add(r3.Scale(c, h.F3), r3.Scale(s, h.F4)))

	return r3.Add(poly, osc)
}

// Derivative returns the exact time derivative.
//
// The polynomial part differentiates term by term. For the oscillation,
//
//	d/dt exp(We·τ)·[F3·c + F4·s] = exp(We·τ)·[(We·F3 + Wh·F4)·c + (We·F4 − Wh·F3)·s]
//
// so only F3 and F4 change.
func (h HarmonicVector) Derivative() HarmonicVector {
	return HarmonicVector{
		T0: h.T0,
		F0: h.F1,
		F1: r3.Scale(2, h.F2),
		F2: r3.Vec{},
		F3: r3.Add(r3.Scale(h.We, h.F3), r3.Scale(h.Wh, h.F4)),
		F4: r3.Sub(r3.Scale(h.We, h.F4), r3.Scale(h.Wh, h.F3)),
		We: h.We,
		Wh: h.Wh,
	}
}

// IsOscillating reports whether the oscillatory coefficients are non-zero.
func (h HarmonicVector) IsOscillating() bool {
	return h.F3 != (r3.Vec{}) || h.F4 != (r3.Vec{})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
