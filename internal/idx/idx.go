// Package idx reads and writes IDX files (the MNIST array format) as ndview views.
//
// An IDX file is a 4-byte magic number (0, 0, type code, rank), rank
// big-endian uint32 dimensions listed outermost first, then the elements in
// big-endian row-major order. The outermost IDX dimension is therefore the
// slowest-varying ndview axis: a file of dims (N, 28, 28) is viewed with
// extents (28, 28, N).
package idx

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/views/internal/ndview"
	"github.com/born-ml/views/internal/parallel"
)

var (
	// ErrFormat indicates a malformed header.
	ErrFormat = errors.New("idx: invalid format")

	// ErrDataType indicates a request for a Go type that does not match the file.
	ErrDataType = errors.New("idx: data type mismatch")

	// ErrRank indicates a request for a view whose rank does not match the file.
	ErrRank = errors.New("idx: rank mismatch")
)

const (
	// maxElements bounds the element count an untrusted header may declare.
	maxElements = 1 << 31

	// readChunk is the most payload buffered ahead of data actually read.
	readChunk = 1 << 20
)

// Array is a decoded IDX file. It owns its element buffer; views returned
// by View1..View4 borrow it.
type Array struct {
	dtype DataType
	dims  []int // outermost first, as stored in the file
	data  any   // []T for the T matching dtype
}

// DType returns the element type of the array.
func (a *Array) DType() DataType {
	return a.dtype
}

// Dims returns the dimensions outermost first, as stored in the file.
func (a *Array) Dims() []int {
	return append([]int(nil), a.dims...)
}

// Extents returns the dimensions fastest-varying first, as ndview orders them.
func (a *Array) Extents() []int {
	ext := make([]int, len(a.dims))
	for i, d := range a.dims {
		ext[len(a.dims)-1-i] = d
	}
	return ext
}

// Open reads the IDX file at path.
func Open(path string) (*Array, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(bufio.NewReader(file))
}

// Read decodes an IDX stream.
func Read(r io.Reader) (*Array, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic[0] != 0 || magic[1] != 0 {
		return nil, fmt.Errorf("%w: magic %x", ErrFormat, magic)
	}
	dtype := DataType(magic[2])
	rank := int(magic[3])
	if dtype.Size() == 0 {
		return nil, fmt.Errorf("%w: unknown type code 0x%02x", ErrFormat, magic[2])
	}
	if rank == 0 || rank > ndview.MaxRank {
		return nil, fmt.Errorf("%w: rank %d", ErrFormat, rank)
	}

	dims := make([]int, rank)
	count := 1
	for i := range dims {
		var d uint32
		if err := binary.Read(r, binary.BigEndian, &d); err != nil {
			return nil, fmt.Errorf("failed to read dimension %d: %w", i, err)
		}
		dims[i] = int(d)
		count *= dims[i]
		if count > maxElements {
			return nil, fmt.Errorf("%w: dimensions %v too large", ErrFormat, dims[:i+1])
		}
	}

	raw, err := readPayload(r, count*dtype.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to read %d elements: %w", count, err)
	}

	a := &Array{dtype: dtype, dims: dims}
	switch dtype {
	case Uint8:
		a.data = raw
	case Int8:
		a.data = decode(raw, 1, func(b []byte) int8 { return int8(b[0]) })
	case Int16:
		a.data = decode(raw, 2, func(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) })
	case Int32:
		a.data = decode(raw, 4, func(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) })
	case Float32:
		a.data = decode(raw, 4, func(b []byte) float32 { return math.Float32frombits(binary.BigEndian.Uint32(b)) })
	case Float64:
		a.data = decode(raw, 8, func(b []byte) float64 { return math.Float64frombits(binary.BigEndian.Uint64(b)) })
	}
	return a, nil
}

// readPayload reads exactly n bytes. The buffer grows with the data received,
// so a header claiming more than the stream holds fails without allocating n.
func readPayload(r io.Reader, n int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(min(n, readChunk))
	for buf.Len() < n {
		if _, err := io.CopyN(&buf, r, int64(min(n-buf.Len(), readChunk))); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decode[T Element](raw []byte, size int, conv func([]byte) T) []T {
	out := make([]T, len(raw)/size)
	parallel.Range(len(out), parallel.DefaultConfig(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = conv(raw[i*size : (i+1)*size])
		}
	})
	return out
}

// Values returns the decoded elements in storage order.
func Values[T Element](a *Array) ([]T, error) {
	data, ok := a.data.([]T)
	if !ok {
		return nil, fmt.Errorf("%w: file holds %s, requested %s", ErrDataType, a.dtype, dataTypeOf[T]())
	}
	return data, nil
}

func checkRank(a *Array, rank int) error {
	if len(a.dims) != rank {
		return fmt.Errorf("%w: file has rank %d, requested %d", ErrRank, len(a.dims), rank)
	}
	return nil
}

// View1 views a rank-1 array.
func View1[T Element](a *Array) (ndview.View1[T], error) {
	data, err := Values[T](a)
	if err == nil {
		err = checkRank(a, 1)
	}
	if err != nil {
		return ndview.View1[T]{}, err
	}
	return ndview.New1(data, [1]int{a.dims[0]})
}

// View2 views a rank-2 array; file dims (rows, cols) become extents (cols, rows).
func View2[T Element](a *Array) (ndview.View2[T], error) {
	data, err := Values[T](a)
	if err == nil {
		err = checkRank(a, 2)
	}
	if err != nil {
		return ndview.View2[T]{}, err
	}
	return ndview.New2(data, [2]int{a.dims[1], a.dims[0]})
}

// View3 views a rank-3 array; file dims (n, rows, cols) become extents
// (cols, rows, n), so CrossSection(i) is item i.
func View3[T Element](a *Array) (ndview.View3[T], error) {
	data, err := Values[T](a)
	if err == nil {
		err = checkRank(a, 3)
	}
	if err != nil {
		return ndview.View3[T]{}, err
	}
	return ndview.New3(data, [3]int{a.dims[2], a.dims[1], a.dims[0]})
}

// View4 views a rank-4 array with its dims reversed.
func View4[T Element](a *Array) (ndview.View4[T], error) {
	data, err := Values[T](a)
	if err == nil {
		err = checkRank(a, 4)
	}
	if err != nil {
		return ndview.View4[T]{}, err
	}
	return ndview.New4(data, [4]int{a.dims[3], a.dims[2], a.dims[1], a.dims[0]})
}

// Write encodes v as an IDX stream. Only the first product(extents) elements
// are written.
func Write[T Element, S ndview.Shape](w io.Writer, v ndview.View[T, S]) error {
	ext := v.Extents()
	rank := len(ext)
	header := make([]byte, 4+4*rank)
	header[2] = byte(dataTypeOf[T]())
	header[3] = byte(rank)
	count := 1
	for i := 0; i < rank; i++ {
		if uint64(ext[i]) > math.MaxUint32 {
			return fmt.Errorf("%w: extent %d does not fit in uint32", ErrFormat, ext[i])
		}
		// outermost dimension first
		binary.BigEndian.PutUint32(header[4+4*(rank-1-i):], uint32(ext[i])) //nolint:gosec // checked above
		count *= ext[i]
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, v.Data()[:count]); err != nil {
		return fmt.Errorf("failed to write elements: %w", err)
	}
	return bw.Flush()
}
