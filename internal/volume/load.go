package volume

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/dicom/parser"
	"github.com/cocosip/go-dicom/pkg/imaging"
)

// Load parses a DICOM file and copies its uncompressed pixel data into a Volume.
func Load(path string) (*Volume, error) {
	res, err := parser.ParseFile(path, parser.WithReadOption(parser.ReadAll))
	if err != nil {
		return nil, fmt.Errorf("volume: parse %s: %w", path, err)
	}

	pd, err := imaging.CreatePixelData(res.Dataset)
	if err != nil {
		return nil, fmt.Errorf("volume: pixel data %s: %w", path, err)
	}
	if pd.IsEncapsulated() {
		return nil, fmt.Errorf("%w: %s", ErrEncapsulated, path)
	}

	info := pd.Info
	geom := Geometry{
		Columns:       int(info.Width),
		Rows:          int(info.Height),
		Samples:       int(info.SamplesPerPixel),
		Frames:        pd.FrameCount(),
		BitsAllocated: int(info.BitsAllocated),
		Signed:        info.PixelRepresentation != 0,
		Planar:        info.PlanarConfiguration != 0,
	}
	return New(geom, pd)
}
