package statespace

// Layout hands out consecutive, non-overlapping mappers.
// The zero value is an empty layout ready for use.
type Layout struct {
	n int
}

func NewLayout() *Layout {
	return &Layout{}
}

// Vector allocates the next dim entries and returns a mapper for them.
// It panics if dim is not positive.
func (l *Layout) Vector(dim int) Slice {
	s, err := NewSlice(l.n, dim)
	if err != nil {
		panic(err)
	}
	l.n += dim
	return s
}

// Len is the state-vector length covering every range allocated so far.
func (l *Layout) Len() int { return l.n }
