// Package main provides the ndview CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/views/idx"
	"github.com/born-ml/views/ndview"
	"github.com/born-ml/views/volume"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("ndview: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "ndview %s\n", version)
		return nil
	case "inspect":
		return inspect(args[1:], out)
	case "idx":
		return inspectIDX(args[1:], out)
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "ndview - N-dimensional views over DICOM pixel data")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version                    Show version")
	fmt.Fprintln(out, "  inspect [-frames N] FILE   Print DICOM geometry and per-frame sample range")
	fmt.Fprintln(out, "  idx FILE                   Print IDX element type and extents")
}

func inspect(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(out)
	maxFrames := fs.Int("frames", 8, "Max frames to report (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("inspect: expected one file, got %d", fs.NArg())
	}

	vol, err := volume.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	geom := vol.Geometry()
	fmt.Fprintf(out, "columns=%d rows=%d samples=%d frames=%d bitsAllocated=%d signed=%v planar=%v\n",
		geom.Columns, geom.Rows, geom.Samples, geom.Frames, geom.BitsAllocated, geom.Signed, geom.Planar)
	fmt.Fprintf(out, "extents=%v bytes=%d\n", geom.Extents(), len(vol.Bytes()))

	switch {
	case geom.BitsAllocated == 8 && geom.Signed:
		return frameRanges[int8](vol, *maxFrames, out)
	case geom.BitsAllocated == 8:
		return frameRanges[uint8](vol, *maxFrames, out)
	case geom.BitsAllocated == 16 && geom.Signed:
		return frameRanges[int16](vol, *maxFrames, out)
	case geom.BitsAllocated == 16:
		return frameRanges[uint16](vol, *maxFrames, out)
	case geom.Signed:
		return frameRanges[int32](vol, *maxFrames, out)
	default:
		return frameRanges[uint32](vol, *maxFrames, out)
	}
}

// frameRanges prints the sample range of each frame, walking cross-sections
// of the volume view.
func frameRanges[T volume.Sample](vol *volume.Volume, limit int, out io.Writer) error {
	all, err := volume.Samples[T](vol)
	if err != nil {
		return err
	}
	cfg := ndview.DefaultParallelConfig()
	for i, frame := range all.Sections() {
		if limit > 0 && i >= limit {
			fmt.Fprintf(out, "... %d more frames\n", all.Extents()[3]-limit)
			break
		}
		lo, hi, _ := volume.MinMax(frame.View, cfg)
		fmt.Fprintf(out, "frame %d: min=%v max=%v\n", i, lo, hi)
	}
	return nil
}

func inspectIDX(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("idx: expected one file, got %d", len(args))
	}
	a, err := idx.Open(args[0])
	if err != nil {
		return err
	}
	n := 1
	for _, d := range a.Dims() {
		n *= d
	}
	fmt.Fprintf(out, "type=%s dims=%v extents=%v elements=%d\n", a.DType(), a.Dims(), a.Extents(), n)
	return nil
}
