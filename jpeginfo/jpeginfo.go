package main

// Report structural metadata of JPEG files without decoding them.

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	jpegparse "github.com/TobyBridle/jpeg-parser"
)

func formatInfo(name string, meta *jpegparse.Metadata, depth, components, mode bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File (%s) ", name)
	if id := meta.AppID(); id != "" {
		fmt.Fprintf(&b, "%s ", id)
	}
	fmt.Fprintf(&b, "%dx%d", meta.Width, meta.Height)
	if components {
		fmt.Fprintf(&b, ", %d components", meta.Components)
	}
	if depth {
		fmt.Fprintf(&b, ", %d-bit", meta.Precision)
	}
	if mode {
		fmt.Fprintf(&b, ", %s", meta.Frame)
	}
	return b.String()
}

// listMPFImages parses each further image a MPF index refers to. The
// index offsets are relative to the TIFF header inside the MPF
// segment; offset 0 denotes the primary image, already reported.
func listMPFImages(reader io.ReadSeeker, meta *jpegparse.Metadata) error {
	if meta.MPF == nil {
		return nil
	}
	images, err := jpegparse.ParseMPFIndex(meta.MPF)
	if err != nil {
		return err
	}
	for i, img := range images {
		if img.Offset == 0 {
			continue
		}
		pos := meta.MPFOffset + int64(img.Offset)
		if _, err := reader.Seek(pos, io.SeekStart); err != nil {
			return err
		}
		sub, err := jpegparse.Parse(reader)
		if err != nil {
			return fmt.Errorf("MPF image %d: %w", i+1, err)
		}
		fmt.Printf("  MPF image %d at offset %d: %dx%d, %s\n",
			i+1, pos, sub.Width, sub.Height, sub.Frame)
	}
	return nil
}

func processFile(path string, depth, components, mode, mpf bool) error {
	reader, err := os.Open(path)
	if err != nil {
		return err
	}
	defer reader.Close()
	opts := &jpegparse.Options{CaptureApp: true, CaptureMPF: mpf}
	meta, err := jpegparse.ParseWithOptions(reader, opts)
	if err != nil {
		return err
	}
	fmt.Println(formatInfo(filepath.Base(path), meta, depth, components, mode))
	if mpf {
		return listMPFImages(reader, meta)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	depth := flag.Bool("depth", false, "also print the sample precision")
	components := flag.Bool("components", false, "also print the component count")
	mode := flag.Bool("mode", false, "also print the frame coding mode")
	mpf := flag.Bool("mpf", false, "list further images referenced by an MPF index")
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-depth] [-components] [-mode] [-mpf] file...\n",
			filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	failed := false
	for _, path := range flag.Args() {
		if err := processFile(path, *depth, *components, *mode, *mpf); err != nil {
			log.Printf("%s: %v", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
