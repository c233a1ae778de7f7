package ndview

import "math/bits"

// MaxRank is the highest rank a View can carry.
const MaxRank = 8

// Shape is the set of extents types a View can be instantiated with.
// Each is a fixed-size array, so the rank of a view is part of its type.
// Index 0 is always the fastest-varying axis.
type Shape interface {
	~[1]int | ~[2]int | ~[3]int | ~[4]int | ~[5]int | ~[6]int | ~[7]int | ~[8]int
}

// NumElements returns the product of all extents.
// ok is false when an extent is negative or the product does not fit in an int.
func NumElements[S Shape](ext S) (n int, ok bool) {
	n = 1
	for i := 0; i < len(ext); i++ {
		if ext[i] < 0 {
			return 0, false
		}
		hi, lo := bits.Mul64(uint64(n), uint64(ext[i])) //nolint:gosec // non-negative, checked above
		if hi != 0 || lo > uint64(maxInt) {
			return 0, false
		}
		n = int(lo) //nolint:gosec // bounded by maxInt above
	}
	return n, true
}

// Strides returns the element distance between neighbours along each axis:
// stride[0] = 1 and stride[i] = ext[0]*...*ext[i-1].
func Strides[S Shape](ext S) []int {
	strides := make([]int, len(ext))
	stride := 1
	for i := 0; i < len(ext); i++ {
		strides[i] = stride
		stride *= ext[i]
	}
	return strides
}

// validateShape checks every extent is non-negative and returns their product.
func validateShape[S Shape](ext S) (int, error) {
	for i := 0; i < len(ext); i++ {
		if ext[i] < 0 {
			return 0, viewErrorf("New", ErrBadShape, "extent %d is %d", i, ext[i])
		}
	}
	n, ok := NumElements(ext)
	if !ok {
		return 0, viewErrorf("New", ErrSizeMismatch, "extents %v overflow int", ext)
	}
	return n, nil
}

const maxInt = int(^uint(0) >> 1)
