// Package volume exposes DICOM pixel data as N-dimensional views.
//
// A Volume owns one contiguous buffer holding every frame back to back.
// Samples views that buffer as (samples, columns, rows, frames) so a frame is
// a cross-section of the highest axis.
package volume

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/born-ml/views/internal/ndview"
)

var (
	// ErrEncapsulated is returned for compressed pixel data, which must be
	// decoded before it can be viewed.
	ErrEncapsulated = errors.New("volume: encapsulated pixel data")

	// ErrFrameSize indicates a frame whose length disagrees with the geometry.
	ErrFrameSize = errors.New("volume: frame size mismatch")

	// ErrSampleType indicates a sample type whose width is not BitsAllocated
	// or whose signedness disagrees with the pixel representation.
	ErrSampleType = errors.New("volume: sample type does not match pixel data")

	// ErrGeometry indicates a geometry with non-positive dimensions.
	ErrGeometry = errors.New("volume: invalid geometry")
)

// Sample is the set of element types pixel samples can be viewed as.
type Sample interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32
}

// Geometry describes the layout of uncompressed pixel data.
type Geometry struct {
	Columns       int  // Width of a frame in pixels.
	Rows          int  // Height of a frame in pixels.
	Samples       int  // Samples per pixel (1 for grayscale, 3 for RGB).
	Frames        int  // Number of frames.
	BitsAllocated int  // Storage bits per sample: 8, 16 or 32.
	Signed        bool // Pixel representation is two's complement.
	Planar        bool // Samples stored plane by plane instead of interleaved.
}

// Validate checks that every dimension is positive and BitsAllocated is a
// whole number of bytes.
func (g Geometry) Validate() error {
	if g.Columns <= 0 || g.Rows <= 0 || g.Samples <= 0 || g.Frames <= 0 {
		return fmt.Errorf("%w: %dx%d, %d samples, %d frames", ErrGeometry, g.Columns, g.Rows, g.Samples, g.Frames)
	}
	switch g.BitsAllocated {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%w: bits allocated %d", ErrGeometry, g.BitsAllocated)
	}
	return nil
}

// FrameBytes returns the byte length of one uncompressed frame.
func (g Geometry) FrameBytes() int {
	return g.Columns * g.Rows * g.Samples * (g.BitsAllocated / 8)
}

// Extents returns the rank-4 extents of the volume, fastest axis first.
func (g Geometry) Extents() [4]int {
	if g.Planar {
		return [4]int{g.Columns, g.Rows, g.Samples, g.Frames}
	}
	return [4]int{g.Samples, g.Columns, g.Rows, g.Frames}
}

// FrameSource supplies uncompressed frames by index.
// Pixel data returned by imaging.CreatePixelData satisfies it.
type FrameSource interface {
	FrameCount() int
	GetFrame(frameIndex int) ([]byte, error)
}

// Volume is a contiguous, owned copy of all frames of a pixel data element.
type Volume struct {
	geom Geometry
	data []byte
}

// New copies every frame of src into a single buffer laid out per geom.
func New(geom Geometry, src FrameSource) (*Volume, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if n := src.FrameCount(); n != geom.Frames {
		return nil, fmt.Errorf("%w: source has %d frames, geometry %d", ErrFrameSize, n, geom.Frames)
	}

	frameBytes := geom.FrameBytes()
	data := make([]byte, frameBytes*geom.Frames)
	for i := 0; i < geom.Frames; i++ {
		frame, err := src.GetFrame(i)
		if err != nil {
			return nil, fmt.Errorf("volume: failed to get frame %d: %w", i, err)
		}
		// Odd-length frames carry one padding byte.
		if len(frame) != frameBytes && len(frame) != frameBytes+1 {
			return nil, fmt.Errorf("%w: frame %d has %d bytes, want %d", ErrFrameSize, i, len(frame), frameBytes)
		}
		copy(data[i*frameBytes:], frame[:frameBytes])
	}
	return &Volume{geom: geom, data: data}, nil
}

// Geometry returns the layout of the volume.
func (v *Volume) Geometry() Geometry {
	return v.geom
}

// Bytes returns the raw little-endian sample bytes of all frames.
func (v *Volume) Bytes() []byte {
	return v.data
}

// Samples views the volume as T samples with extents Geometry().Extents().
// The view aliases the volume's buffer and is valid while the volume is.
// Samples are read in host byte order; DICOM native data is little-endian.
func Samples[T Sample](v *Volume) (ndview.View4[T], error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if width*8 != v.geom.BitsAllocated {
		return ndview.View4[T]{}, fmt.Errorf("%w: %d-bit type for %d bits allocated", ErrSampleType, width*8, v.geom.BitsAllocated)
	}
	if signed := isSigned[T](); signed != v.geom.Signed {
		return ndview.View4[T]{}, fmt.Errorf("%w: signed=%v type for signed=%v pixel data", ErrSampleType, signed, v.geom.Signed)
	}
	n := len(v.data) / width
	//nolint:gosec // unsafe.Pointer reinterpretation of the owned byte buffer, bounded by len(v.data)
	view, err := ndview.FromPointer((*T)(unsafe.Pointer(&v.data[0])), n, v.geom.Extents())
	if err != nil {
		return ndview.View4[T]{}, err
	}
	return ndview.View4[T]{View: view}, nil
}

func isSigned[T Sample]() bool {
	var zero T
	return zero-1 < zero
}

// Frame returns frame i as a rank-3 view.
func Frame[T Sample](v *Volume, i int) (ndview.View3[T], error) {
	all, err := Samples[T](v)
	if err != nil {
		return ndview.View3[T]{}, err
	}
	return all.CrossSection(i)
}
