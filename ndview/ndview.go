// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndview

import (
	"github.com/born-ml/views/internal/ndview"
	"github.com/born-ml/views/internal/parallel"
)

// Shape constrains extents to fixed-size arrays of rank 1 to MaxRank.
// Index 0 is the fastest-varying axis.
type Shape = ndview.Shape

// MaxRank is the highest rank a View can carry.
const MaxRank = ndview.MaxRank

// View is a non-owning, fixed-rank view over a contiguous buffer.
//
// Example:
//
//	v, _ := ndview.New(buf, [4]int{3, 32, 32, 8})
//	x, _ := v.Get([4]int{0, 5, 5, 2})
type View[T any, S Shape] = ndview.View[T, S]

// View1 is a rank-1 view. It has no cross-section.
type View1[T any] = ndview.View1[T]

// View2 is a rank-2 view; CrossSection returns a View1.
type View2[T any] = ndview.View2[T]

// View3 is a rank-3 view; CrossSection returns a View2.
type View3[T any] = ndview.View3[T]

// View4 is a rank-4 view; CrossSection returns a View3.
type View4[T any] = ndview.View4[T]

// ParallelConfig controls how Apply and Reduce split work across goroutines.
type ParallelConfig = parallel.Config

// Errors returned by views.
var (
	ErrSizeMismatch = ndview.ErrSizeMismatch
	ErrOutOfRange   = ndview.ErrOutOfRange
	ErrBadShape     = ndview.ErrBadShape
)

// New creates a view over all of buf.
func New[T any, S Shape](buf []T, ext S) (View[T, S], error) {
	return ndview.New(buf, ext)
}

// NewWithLength creates a view over the first length elements of buf.
func NewWithLength[T any, S Shape](buf []T, length int, ext S) (View[T, S], error) {
	return ndview.NewWithLength(buf, length, ext)
}

// FromPointer creates a view over length elements of foreign memory at p.
// The caller guarantees the memory stays valid while the view is in use.
func FromPointer[T any, S Shape](p *T, length int, ext S) (View[T, S], error) {
	return ndview.FromPointer(p, length, ext)
}

// New1 creates a rank-1 view.
func New1[T any](buf []T, ext [1]int) (View1[T], error) { return ndview.New1(buf, ext) }

// New2 creates a rank-2 view with extents (width, height).
func New2[T any](buf []T, ext [2]int) (View2[T], error) { return ndview.New2(buf, ext) }

// New3 creates a rank-3 view with extents (width, height, depth).
func New3[T any](buf []T, ext [3]int) (View3[T], error) { return ndview.New3(buf, ext) }

// New4 creates a rank-4 view.
func New4[T any](buf []T, ext [4]int) (View4[T], error) { return ndview.New4(buf, ext) }

// NumElements returns the product of ext; ok is false on int overflow.
func NumElements[S Shape](ext S) (n int, ok bool) {
	return ndview.NumElements(ext)
}

// Strides returns the per-axis element distance for ext.
func Strides[S Shape](ext S) []int {
	return ndview.Strides(ext)
}

// DefaultParallelConfig returns a config sized to the number of CPUs.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Sequential returns a config that runs Apply and Reduce on the caller's goroutine.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}

// Apply calls fn once for every element of v, with its linear index.
func Apply[T any, S Shape](v View[T, S], cfg ParallelConfig, fn func(i int, x *T)) {
	ndview.Apply(v, cfg, fn)
}

// Reduce folds v chunk by chunk and merges the results in storage order.
func Reduce[T, A any, S Shape](v View[T, S], cfg ParallelConfig, init func() A, step func(acc A, x T) A, merge func(a, b A) A) A {
	return ndview.Reduce(v, cfg, init, step, merge)
}
