// Package vector provides the fixed-dimension real vectors read from and
// written to flat state vectors.
//
// A [Vector] has value semantics: every operation returns a new vector and
// leaves its operands untouched. Operations on vectors of different
// dimension panic, matching the behaviour of gonum's floats package.
package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

type Vector struct {
	x []float64
}

// New copies components into a new vector.
func New(components ...float64) Vector {
	x := make([]float64, len(components))
	copy(x, components)
	return Vector{x: x}
}

// Zero returns the zero vector of dimension n.
func Zero(n int) Vector {
	return Vector{x: make([]float64, n)}
}

func FromR3(p r3.Vec) Vector {
	return Vector{x: []float64{p.X, p.Y, p.Z}}
}

func (v Vector) Dim() int { return len(v.x) }

func (v Vector) At(i int) float64 { return v.x[i] }

// Components returns a copy of the vector's components.
func (v Vector) Components() []float64 {
	c := make([]float64, len(v.x))
	copy(c, v.x)
	return c
}

// R3 converts a 3-dimensional vector to an r3.Vec.
func (v Vector) R3() r3.Vec {
	if len(v.x) != 3 {
		panic(fmt.Sprintf("vector: R3 of %d-dimensional vector", len(v.x)))
	}
	return r3.Vec{X: v.x[0], Y: v.x[1], Z: v.x[2]}
}

func (v Vector) Add(w Vector) Vector {
	return Vector{x: floats.AddTo(make([]float64, len(v.x)), v.x, w.x)}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{x: floats.SubTo(make([]float64, len(v.x)), v.x, w.x)}
}

func (v Vector) Scale(f float64) Vector {
	return Vector{x: floats.ScaleTo(make([]float64, len(v.x)), f, v.x)}
}

// Mean returns the pairwise mean (v+w)/2.
func (v Vector) Mean(w Vector) Vector {
	return v.Add(w).Scale(0.5)
}

// Magnitude2 returns the squared Euclidean magnitude.
func (v Vector) Magnitude2() float64 {
	return floats.Dot(v.x, v.x)
}

func (v Vector) Equal(w Vector) bool {
	return len(v.x) == len(w.x) && floats.Equal(v.x, w.x)
}

// IsValid reports whether no component is NaN or infinite.
func (v Vector) IsValid() bool {
	for _, c := range v.x {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	return fmt.Sprint(v.x)
}
