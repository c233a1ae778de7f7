package ndview

import "iter"

// View1 is a rank-1 view. It has no cross-section.
type View1[T any] struct {
	View[T, [1]int]
}

// View2 is a rank-2 view with extents (width, height).
type View2[T any] struct {
	View[T, [2]int]
}

// View3 is a rank-3 view with extents (width, height, depth).
type View3[T any] struct {
	View[T, [3]int]
}

// View4 is a rank-4 view.
type View4[T any] struct {
	View[T, [4]int]
}

// New1 creates a rank-1 view over buf.
func New1[T any](buf []T, ext [1]int) (View1[T], error) {
	v, err := New(buf, ext)
	return View1[T]{v}, err
}

// New2 creates a rank-2 view over buf.
func New2[T any](buf []T, ext [2]int) (View2[T], error) {
	v, err := New(buf, ext)
	return View2[T]{v}, err
}

// New3 creates a rank-3 view over buf.
func New3[T any](buf []T, ext [3]int) (View3[T], error) {
	v, err := New(buf, ext)
	return View3[T]{v}, err
}

// New4 creates a rank-4 view over buf.
func New4[T any](buf []T, ext [4]int) (View4[T], error) {
	v, err := New(buf, ext)
	return View4[T]{v}, err
}

// CrossSection fixes the height axis to k and returns row k.
func (v View2[T]) CrossSection(k int) (View1[T], error) {
	data, err := v.section(k)
	if err != nil {
		return View1[T]{}, err
	}
	return View1[T]{View[T, [1]int]{data: data, ext: [1]int{v.ext[0]}}}, nil
}

// CrossSection fixes the depth axis to k and returns plane k.
func (v View3[T]) CrossSection(k int) (View2[T], error) {
	data, err := v.section(k)
	if err != nil {
		return View2[T]{}, err
	}
	return View2[T]{View[T, [2]int]{data: data, ext: [2]int{v.ext[0], v.ext[1]}}}, nil
}

// CrossSection fixes axis 3 to k and returns the rank-3 block at k.
func (v View4[T]) CrossSection(k int) (View3[T], error) {
	data, err := v.section(k)
	if err != nil {
		return View3[T]{}, err
	}
	return View3[T]{View[T, [3]int]{data: data, ext: [3]int{v.ext[0], v.ext[1], v.ext[2]}}}, nil
}

// Sections yields every row in order of the height coordinate.
func (v View2[T]) Sections() iter.Seq2[int, View1[T]] {
	return func(yield func(int, View1[T]) bool) {
		for k := 0; k < v.ext[1]; k++ {
			s, err := v.CrossSection(k)
			if err != nil || !yield(k, s) {
				return
			}
		}
	}
}

// Sections yields every plane in order of the depth coordinate.
func (v View3[T]) Sections() iter.Seq2[int, View2[T]] {
	return func(yield func(int, View2[T]) bool) {
		for k := 0; k < v.ext[2]; k++ {
			s, err := v.CrossSection(k)
			if err != nil || !yield(k, s) {
				return
			}
		}
	}
}

// Sections yields every rank-3 block in order of the axis 3 coordinate.
func (v View4[T]) Sections() iter.Seq2[int, View3[T]] {
	return func(yield func(int, View3[T]) bool) {
		for k := 0; k < v.ext[3]; k++ {
			s, err := v.CrossSection(k)
			if err != nil || !yield(k, s) {
				return
			}
		}
	}
}
