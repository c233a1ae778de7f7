package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/cocosip/go-dicom/pkg/dicom/dataset"
	"github.com/cocosip/go-dicom/pkg/dicom/element"
	"github.com/cocosip/go-dicom/pkg/dicom/tag"
	"github.com/cocosip/go-dicom/pkg/dicom/vr"
	"github.com/cocosip/go-dicom/pkg/dicom/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSignedCT writes a 2x2, two-frame signed 16-bit file with samples -4..3.
func writeSignedCT(t *testing.T) string {
	t.Helper()
	ds := dataset.New()
	pixels := make([]byte, 8*2)
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint16(pixels[2*i:], uint16(int16(i-4)))
	}
	for _, e := range []element.Element{
		element.NewUnsignedShort(tag.Rows, []uint16{2}),
		element.NewUnsignedShort(tag.Columns, []uint16{2}),
		element.NewUnsignedShort(tag.SamplesPerPixel, []uint16{1}),
		element.NewUnsignedShort(tag.BitsAllocated, []uint16{16}),
		element.NewUnsignedShort(tag.BitsStored, []uint16{16}),
		element.NewUnsignedShort(tag.HighBit, []uint16{15}),
		element.NewUnsignedShort(tag.PixelRepresentation, []uint16{1}),
		element.NewString(tag.PhotometricInterpretation, vr.CS, []string{"MONOCHROME2"}),
		element.NewIntegerStringFromInt(tag.NumberOfFrames, []int{2}),
		element.NewOtherWord(tag.PixelData, pixels),
	} {
		require.NoError(t, ds.Add(e))
	}

	path := filepath.Join(t.TempDir(), "ct.dcm")
	require.NoError(t, writer.WriteFile(path, ds))
	return path
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "ndview "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "inspect")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"train"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "train")
}

func TestRun_InspectArgs(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run([]string{"inspect"}, &out))
	require.Error(t, run([]string{"inspect", "testdata/missing.dcm"}, &out))
}

func TestRun_Inspect(t *testing.T) {
	path := writeSignedCT(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"inspect", path}, &out))
	assert.Equal(t,
		"columns=2 rows=2 samples=1 frames=2 bitsAllocated=16 signed=true planar=false\n"+
			"extents=[1 2 2 2] bytes=16\n"+
			"frame 0: min=-4 max=-1\n"+
			"frame 1: min=0 max=3\n",
		out.String())

	out.Reset()
	require.NoError(t, run([]string{"inspect", "-frames", "1", path}, &out))
	assert.Contains(t, out.String(), "frame 0: min=-4 max=-1\n... 1 more frames\n")
}

func TestRun_IDX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.idx1-ubyte")
	data := []byte{0, 0, 0x08, 1, 0, 0, 0, 3, 7, 2, 1}
	require.NoError(t, os.WriteFile(path, data, 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"idx", path}, &out))
	assert.Equal(t, "type=uint8 dims=[3] extents=[3] elements=3\n", out.String())

	require.Error(t, run([]string{"idx"}, &out))
}
