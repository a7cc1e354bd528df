// Package perm generates permutations of a value set.
package perm

// Permutations lazily yields every ordering of a set of values, using the
// iterative form of Heap's algorithm. The first ordering is the input order.
type Permutations[T any] struct {
	values  []T
	c       []int
	i       int
	started bool
}

// Of creates a new generator for the given values. values is not modified.
func Of[T any](values []T) *Permutations[T] {
	p := &Permutations[T]{
		values: make([]T, len(values)),
		c:      make([]int, len(values)),
	}
	copy(p.values, values)
	return p
}

// Next returns the next ordering. The returned slice is a fresh copy.
// Returns false once all orderings have been produced.
func (p *Permutations[T]) Next() ([]T, bool) {
	if !p.started {
		p.started = true
		if len(p.values) == 0 {
			return nil, false
		}
		return p.current(), true
	}

	for p.i < len(p.values) {
		if p.c[p.i] < p.i {
			j := 0
			if p.i%2 == 1 {
				j = p.c[p.i]
			}
			p.values[j], p.values[p.i] = p.values[p.i], p.values[j]

			p.c[p.i]++
			p.i = 0
			return p.current(), true
		}

		p.c[p.i] = 0
		p.i++
	}

	return nil, false
}

func (p *Permutations[T]) current() []T {
	out := make([]T, len(p.values))
	copy(out, p.values)
	return out
}

// Count returns the number of orderings of n distinct values.
func Count(n int) int {
	v := 1
	for i := 2; i <= n; i++ {
		v *= i
	}
	return v
}
