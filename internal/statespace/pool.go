package statespace

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// BufferPool recycles zeroed gradient buffers of one length.
type BufferPool struct {
	pool sync.Pool
	size int
}

func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]float64, size)
			},
		},
	}
}

// Get returns a zeroed buffer of the pool's length.
func (p *BufferPool) Get() []float64 {
	return p.pool.Get().([]float64)
}

// Put zeroes buf and returns it to the pool. Buffers of the wrong length are
// dropped.
func (p *BufferPool) Put(buf []float64) {
	if len(buf) == p.size {
		for i := range buf {
			buf[i] = 0
		}
		p.pool.Put(buf)
	}
}

// Accumulate adds every src buffer into dst. dst is left untouched if any
// length differs.
func Accumulate(dst []float64, src ...[]float64) error {
	for i, s := range src {
		if len(s) != len(dst) {
			return fmt.Errorf("%w: buffer %d has length %d, want %d", ErrDimensionMismatch, i, len(s), len(dst))
		}
	}
	for _, s := range src {
		floats.Add(dst, s)
	}
	return nil
}
