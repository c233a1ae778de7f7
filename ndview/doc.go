// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndview presents contiguous buffers as N-dimensional arrays without
// copying or owning them.
//
// # Overview
//
// A View borrows a slice and addresses it with multi-index coordinates:
//   - Fixed rank as part of the type (View[T, [3]int], View3[T], ...)
//   - Mixed-radix linearization with axis 0 varying fastest
//   - Bounds-checked access returning pointers into the buffer
//   - Rank-reducing cross-sections that alias the parent buffer
//
// # Basic Usage
//
//	buf := make([]float32, 64*64*16)
//	vol, err := ndview.New3(buf, [3]int{64, 64, 16})  // width, height, depth
//	if err != nil {
//	    return err
//	}
//
//	p, err := vol.At([3]int{10, 20, 3})  // &buf[10 + 20*64 + 3*64*64]
//	*p = 1
//
//	plane, err := vol.CrossSection(3)    // View2[float32] over depth 3
//
// # Linearization
//
// The element at coords lives at
//
//	coords[0] + coords[1]*ext[0] + coords[2]*ext[0]*ext[1] + ...
//
// so fixing the highest axis selects one contiguous block, which is what
// CrossSection returns.
//
// # Ownership
//
// Views never allocate or free. The buffer must outlive every view and every
// cross-section derived from it. Copying a View copies only its header.
// Views carry no locking: concurrent writers need external synchronization.
//
// # Errors
//
// Construction fails with ErrSizeMismatch when the extents need more elements
// than the buffer holds, or ErrBadShape for negative extents. Access and
// cross-section fail with ErrOutOfRange. Match them with errors.Is.
package ndview
