// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package volume loads DICOM pixel data and exposes it as ndview views.
//
// Example:
//
//	vol, err := volume.Load("ct.dcm")
//	if err != nil {
//	    return err
//	}
//	frame, err := volume.Frame[uint16](vol, 0)  // View3: (samples, columns, rows)
//	lo, hi, _ := volume.MinMax(frame.View, ndview.DefaultParallelConfig())
package volume

import (
	"github.com/born-ml/views/internal/volume"
	"github.com/born-ml/views/ndview"
)

// Volume is an owned, contiguous copy of every frame of a pixel data element.
type Volume = volume.Volume

// Geometry describes the layout of uncompressed pixel data.
type Geometry = volume.Geometry

// Sample constrains the element types samples can be viewed as.
type Sample = volume.Sample

// FrameSource supplies uncompressed frames by index.
type FrameSource = volume.FrameSource

// Errors returned by this package.
var (
	ErrEncapsulated = volume.ErrEncapsulated
	ErrFrameSize    = volume.ErrFrameSize
	ErrSampleType   = volume.ErrSampleType
	ErrGeometry     = volume.ErrGeometry
)

// Load parses a DICOM file into a Volume.
// Compressed transfer syntaxes fail with ErrEncapsulated.
func Load(path string) (*Volume, error) {
	return volume.Load(path)
}

// New copies the frames of src into a Volume laid out per geom.
func New(geom Geometry, src FrameSource) (*Volume, error) {
	return volume.New(geom, src)
}

// Samples views the whole volume with extents geom.Extents().
func Samples[T Sample](v *Volume) (ndview.View4[T], error) {
	return volume.Samples[T](v)
}

// Frame returns frame i as a rank-3 view.
func Frame[T Sample](v *Volume, i int) (ndview.View3[T], error) {
	return volume.Frame[T](v, i)
}

// MinMax returns the extreme samples of v; ok is false when v is empty.
func MinMax[T Sample, S ndview.Shape](v ndview.View[T, S], cfg ndview.ParallelConfig) (lo, hi T, ok bool) {
	return volume.MinMax(v, cfg)
}
