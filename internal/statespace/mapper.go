package statespace

import (
	"errors"
	"fmt"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/vector"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrOutOfRange indicates a state vector too short for a mapper's range.
	ErrOutOfRange = errors.New("statespace: state vector too short for mapper range")

	// ErrDimensionMismatch indicates a value whose dimension differs from the mapper's.
	ErrDimensionMismatch = errors.New("statespace: dimension mismatch between value and mapper")
)

// Mapper converts between values of type T and a range of a state vector.
type Mapper[T any] interface {
	// Dimension is the number of state-vector entries the mapper reads and writes.
	Dimension() int

	// ToObject reads the value stored in state. It does not modify state.
	ToObject(state []float64) (T, error)

	// FromVector adds the components of v into acc.
	FromVector(acc []float64, v T) error

	// IsValidForDimension reports whether the mapper's range fits within a
	// state vector of length n.
	IsValidForDimension(n int) bool
}

type Slice struct {
	offset int
	dim    int
}

var _ Mapper[vector.Vector] = Slice{}

// NewSlice maps the entries [offset, offset+dim) to a vector of dimension dim.
func NewSlice(offset, dim int) (Slice, error) {
	if offset < 0 {
		return Slice{}, fmt.Errorf("statespace: negative offset %d", offset)
	}
	if dim <= 0 {
		return Slice{}, fmt.Errorf("statespace: dimension must be positive, got %d", dim)
	}
	return Slice{offset: offset, dim: dim}, nil
}

func (s Slice) Offset() int    { return s.offset }
func (s Slice) Dimension() int { return s.dim }

func (s Slice) IsValidForDimension(n int) bool {
	return s.offset+s.dim <= n
}

func (s Slice) ToObject(state []float64) (vector.Vector, error) {
	if !s.IsValidForDimension(len(state)) {
		return vector.Vector{}, s.rangeError(len(state))
	}
	return vector.New(state[s.offset : s.offset+s.dim]...), nil
}

func (s Slice) FromVector(acc []float64, v vector.Vector) error {
	if v.Dim() != s.dim {
		return fmt.Errorf("%w: value has %d components, mapper %d", ErrDimensionMismatch, v.Dim(), s.dim)
	}
	if !s.IsValidForDimension(len(acc)) {
		return s.rangeError(len(acc))
	}
	for i := 0; i < s.dim; i++ {
		acc[s.offset+i] += v.At(i)
	}
	return nil
}

func (s Slice) rangeError(n int) error {
	return fmt.Errorf("%w: need [%d,%d), have length %d", ErrOutOfRange, s.offset, s.offset+s.dim, n)
}

// Point3 maps three consecutive entries to a spatial vector.
type Point3 struct {
	offset int
}

var _ Mapper[r3.Vec] = Point3{}

func NewPoint3(offset int) (Point3, error) {
	if offset < 0 {
		return Point3{}, fmt.Errorf("statespace: negative offset %d", offset)
	}
	return Point3{offset: offset}, nil
}

func (p Point3) Offset() int    { return p.offset }
func (p Point3) Dimension() int { return 3 }

func (p Point3) IsValidForDimension(n int) bool {
	return p.offset+3 <= n
}

func (p Point3) ToObject(state []float64) (r3.Vec, error) {
	if !p.IsValidForDimension(len(state)) {
		return r3.Vec{}, fmt.Errorf("%w: need [%d,%d), have length %d", ErrOutOfRange, p.offset, p.offset+3, len(state))
	}
	s := state[p.offset:]
	return r3.Vec{X: s[0], Y: s[1], Z: s[2]}, nil
}

func (p Point3) FromVector(acc []float64, v r3.Vec) error {
	if !p.IsValidForDimension(len(acc)) {
		return fmt.Errorf("%w: need [%d,%d), have length %d", ErrOutOfRange, p.offset, p.offset+3, len(acc))
	}
	a := acc[p.offset:]
	a[0] += v.X
	a[1] += v.Y
	a[2] += v.Z
	return nil
}
