// Package statespace maps physically typed vectors onto contiguous ranges of
// a flat state vector.
//
// A state vector holds every degree of freedom of a mechanical system at one
// instant. A [Mapper] owns no state vector itself: it knows which indices
// belong to one physical quantity and converts between that range and a
// typed value.
//
//   - [Slice]: a range mapped to a [vector.Vector]
//   - [Point3]: a 3-entry range mapped to an r3.Vec
//   - [Layout]: allocates consecutive, non-overlapping ranges
//   - [BufferPool]: zeroed gradient buffers for solver inner loops
//
// Writes through a mapper are additive, so several contributions to the same
// buffer superpose:
//
//	l := statespace.NewLayout()
//	pos, vel := l.Vector(3), l.Vector(3)
//	grad := make([]float64, l.Len())
//	_ = pos.FromVector(grad, g)
//
// # Thread Safety
//
// Mappers are immutable and may be shared between goroutines. Buffers are
// not synchronised; give each goroutine its own and combine them with
// [Accumulate].
package statespace
