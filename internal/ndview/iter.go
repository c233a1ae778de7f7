package ndview

import "iter"

// All yields (linear index, element pointer) pairs over [0, Len()) in storage
// order. Each pass reads the buffer afresh, so mutations made through any
// alias are visible.
func (v View[T, S]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range v.data {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}

// Backward is All in reverse storage order.
func (v View[T, S]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}

// Values yields element values in storage order.
func (v View[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}
