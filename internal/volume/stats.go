package volume

import (
	"github.com/born-ml/views/internal/ndview"
	"github.com/born-ml/views/internal/parallel"
)

type extremes[T Sample] struct {
	lo, hi T
	set    bool
}

func (e extremes[T]) add(x T) extremes[T] {
	if !e.set {
		return extremes[T]{lo: x, hi: x, set: true}
	}
	e.lo = min(e.lo, x)
	e.hi = max(e.hi, x)
	return e
}

func (e extremes[T]) merge(o extremes[T]) extremes[T] {
	if !o.set {
		return e
	}
	return e.add(o.lo).add(o.hi)
}

// MinMax returns the smallest and largest sample of v.
// ok is false when v is empty.
func MinMax[T Sample, S ndview.Shape](v ndview.View[T, S], cfg parallel.Config) (lo, hi T, ok bool) {
	e := ndview.Reduce(v, cfg,
		func() extremes[T] { return extremes[T]{} },
		extremes[T].add,
		extremes[T].merge,
	)
	return e.lo, e.hi, e.set
}
