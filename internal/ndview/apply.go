package ndview

import (
	"cmp"
	"slices"
	"sync"

	"github.com/born-ml/views/internal/parallel"
)

// Apply calls fn for every reachable element with its linear index.
// With a parallel cfg the index range is split into disjoint chunks, so fn
// sees each element exactly once; Apply returns after all chunks finish.
// fn must not touch elements other than the one it is given.
func Apply[T any, S Shape](v View[T, S], cfg parallel.Config, fn func(i int, x *T)) {
	data := v.data
	parallel.Range(len(data), cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i, &data[i])
		}
	})
}

// Reduce folds every element into an accumulator, one per chunk, then merges
// the chunk results in storage order.
func Reduce[T, A any, S Shape](v View[T, S], cfg parallel.Config, init func() A, step func(acc A, x T) A, merge func(a, b A) A) A {
	data := v.data
	var (
		mu    sync.Mutex
		parts []chunk[A]
	)
	parallel.Range(len(data), cfg, func(lo, hi int) {
		acc := init()
		for _, x := range data[lo:hi] {
			acc = step(acc, x)
		}
		mu.Lock()
		parts = append(parts, chunk[A]{lo: lo, acc: acc})
		mu.Unlock()
	})
	slices.SortFunc(parts, func(a, b chunk[A]) int { return cmp.Compare(a.lo, b.lo) })

	result := init()
	for _, p := range parts {
		result = merge(result, p.acc)
	}
	return result
}

type chunk[A any] struct {
	lo  int
	acc A
}
