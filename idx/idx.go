// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package idx reads and writes IDX files (the MNIST array format) as ndview views.
//
// IDX lists dimensions outermost first; views list extents fastest first, so
// a (60000, 28, 28) image file is viewed as extents (28, 28, 60000) and each
// image is one CrossSection:
//
//	a, err := idx.Open("train-images-idx3-ubyte")
//	images, err := idx.View3[uint8](a)
//	first, err := images.CrossSection(0)  // View2[uint8] (cols, rows)
package idx

import (
	"io"

	"github.com/born-ml/views/internal/idx"
	"github.com/born-ml/views/ndview"
)

// Array is a decoded IDX file.
type Array = idx.Array

// DataType is the IDX element type code.
type DataType = idx.DataType

// Element constrains the Go types IDX data decodes into.
type Element = idx.Element

// Element type codes.
const (
	Uint8   DataType = idx.Uint8
	Int8    DataType = idx.Int8
	Int16   DataType = idx.Int16
	Int32   DataType = idx.Int32
	Float32 DataType = idx.Float32
	Float64 DataType = idx.Float64
)

// Errors returned by this package.
var (
	ErrFormat   = idx.ErrFormat
	ErrDataType = idx.ErrDataType
	ErrRank     = idx.ErrRank
)

// Open reads the IDX file at path.
func Open(path string) (*Array, error) { return idx.Open(path) }

// Read decodes an IDX stream.
func Read(r io.Reader) (*Array, error) { return idx.Read(r) }

// Values returns the decoded elements in storage order.
func Values[T Element](a *Array) ([]T, error) { return idx.Values[T](a) }

// View1 views a rank-1 array.
func View1[T Element](a *Array) (ndview.View1[T], error) { return idx.View1[T](a) }

// View2 views a rank-2 array as (cols, rows).
func View2[T Element](a *Array) (ndview.View2[T], error) { return idx.View2[T](a) }

// View3 views a rank-3 array as (cols, rows, n).
func View3[T Element](a *Array) (ndview.View3[T], error) { return idx.View3[T](a) }

// View4 views a rank-4 array with its dims reversed.
func View4[T Element](a *Array) (ndview.View4[T], error) { return idx.View4[T](a) }

// Write encodes v as an IDX stream.
func Write[T Element, S ndview.Shape](w io.Writer, v ndview.View[T, S]) error {
	return idx.Write(w, v)
}
