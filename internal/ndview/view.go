// Package ndview provides non-owning, fixed-rank views over contiguous buffers.
package ndview

import (
	"fmt"
	"reflect"
	"unsafe"
)

// View presents a contiguous buffer as an N-dimensional array.
//
// The view borrows the buffer: it never allocates, copies or frees elements,
// and the buffer must stay valid for as long as the view (or any
// cross-section taken from it) is in use. Copying a View copies only its
// header. Extents are ordered from the fastest-varying axis (0) to the
// slowest (R-1).
type View[T any, S Shape] struct {
	data []T // borrowed; len == cap == number of reachable elements
	ext  S
}

// New creates a view over all of buf.
// Fails with ErrSizeMismatch when the extents need more than len(buf) elements.
func New[T any, S Shape](buf []T, ext S) (View[T, S], error) {
	return NewWithLength(buf, len(buf), ext)
}

// NewWithLength creates a view over the first length elements of buf.
func NewWithLength[T any, S Shape](buf []T, length int, ext S) (View[T, S], error) {
	if length < 0 || length > len(buf) {
		return View[T, S]{}, viewErrorf("New", ErrSizeMismatch, "length %d with buffer of %d", length, len(buf))
	}
	n, err := validateShape(ext)
	if err != nil {
		return View[T, S]{}, err
	}
	if n > length {
		return View[T, S]{}, viewErrorf("New", ErrSizeMismatch, "extents %v need %d elements, have %d", ext, n, length)
	}
	return View[T, S]{data: buf[:length:length], ext: ext}, nil
}

// FromPointer creates a view over foreign memory starting at p.
// The caller guarantees that p addresses at least length valid elements.
func FromPointer[T any, S Shape](p *T, length int, ext S) (View[T, S], error) {
	if length < 0 || (p == nil && length > 0) {
		return View[T, S]{}, viewErrorf("FromPointer", ErrBadShape, "pointer %p with length %d", p, length)
	}
	if p == nil {
		return NewWithLength[T](nil, 0, ext)
	}
	//nolint:gosec // unsafe.Slice over caller-provided memory, length is the caller's contract
	return NewWithLength(unsafe.Slice(p, length), length, ext)
}

// Rank returns the number of axes.
func (v View[T, S]) Rank() int {
	return len(v.ext)
}

// Extents returns a copy of the per-axis element counts.
func (v View[T, S]) Extents() S {
	return v.ext
}

// Len returns the number of elements reachable through the view.
func (v View[T, S]) Len() int {
	return len(v.data)
}

// SizeInBytes returns Len multiplied by the width of one element.
func (v View[T, S]) SizeInBytes() int {
	var zero T
	return len(v.data) * int(unsafe.Sizeof(zero))
}

// IsEmpty reports whether the view reaches no elements.
func (v View[T, S]) IsEmpty() bool {
	return len(v.data) == 0
}

// Data returns the borrowed buffer for interop with flat-buffer APIs.
// Writes through the returned slice are visible through the view.
func (v View[T, S]) Data() []T {
	return v.data
}

// Bytes returns the reachable elements reinterpreted as raw bytes.
// WARNING: Direct access to underlying memory. The slice aliases the buffer.
func (v View[T, S]) Bytes() []byte {
	if len(v.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy conversion, bounded by SizeInBytes()
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.data[0])), v.SizeInBytes())
}

// Offset linearizes coords into an index of Data.
// Each axis contributes its coordinate times the product of all lower extents.
func (v View[T, S]) Offset(coords S) (int, error) {
	return v.offset("Offset", coords)
}

func (v View[T, S]) offset(method string, coords S) (int, error) {
	index, stride := 0, 1
	for i := 0; i < len(coords); i++ {
		if coords[i] < 0 || coords[i] >= v.ext[i] {
			return 0, viewErrorf(method, ErrOutOfRange, "coordinate %d on axis %d with extent %d", coords[i], i, v.ext[i])
		}
		index += coords[i] * stride
		stride *= v.ext[i]
	}
	if index >= len(v.data) {
		return 0, viewErrorf(method, ErrOutOfRange, "linear index %d with length %d", index, len(v.data))
	}
	return index, nil
}

// At returns a pointer to the element at coords.
// Repeated calls with the same coords alias the same element.
func (v View[T, S]) At(coords S) (*T, error) {
	idx, err := v.offset("At", coords)
	if err != nil {
		return nil, err
	}
	return &v.data[idx], nil
}

// Get returns a copy of the element at coords.
func (v View[T, S]) Get(coords S) (T, error) {
	idx, err := v.offset("Get", coords)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.data[idx], nil
}

// Set stores x at coords.
func (v View[T, S]) Set(coords S, x T) error {
	idx, err := v.offset("Set", coords)
	if err != nil {
		return err
	}
	v.data[idx] = x
	return nil
}

// Front returns a pointer to the element at linear index 0.
func (v View[T, S]) Front() (*T, error) {
	if len(v.data) == 0 {
		return nil, viewErrorf("Front", ErrOutOfRange, "empty view")
	}
	return &v.data[0], nil
}

// Back returns a pointer to the element at linear index Len()-1.
func (v View[T, S]) Back() (*T, error) {
	if len(v.data) == 0 {
		return nil, viewErrorf("Back", ErrOutOfRange, "empty view")
	}
	return &v.data[len(v.data)-1], nil
}

// Fill stores x in every reachable element.
func (v View[T, S]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// String implements fmt.Stringer for easy debugging.
func (v View[T, S]) String() string {
	return fmt.Sprintf("ndview.View[%s]%v(len=%d)", reflect.TypeFor[T](), v.ext, len(v.data))
}

// section returns the contiguous block of elements whose highest-axis
// coordinate equals k. The block starts at the linear index of (0, ..., 0, k).
func (v View[T, S]) section(k int) ([]T, error) {
	r := len(v.ext)
	if r < 2 {
		panic("ndview: cross-section of a rank-1 view")
	}
	if k < 0 || k >= v.ext[r-1] {
		return nil, viewErrorf("CrossSection", ErrOutOfRange, "slice %d with highest extent %d", k, v.ext[r-1])
	}
	n := 1
	for i := 0; i < r-1; i++ {
		n *= v.ext[i]
	}
	base := k * n
	return v.data[base : base+n : base+n], nil
}
