package main

// Print the marker layout of a JPEG file: names, offsets and segment
// lengths, with entropy-coded data reported as opaque runs.

import (
	"fmt"
	"io"
	"log"
	"os"

	jpegparse "github.com/TobyBridle/jpeg-parser"
)

// scanImage prints the layout of a single image. A file using the MPF
// extensions can contain multiple images; the captured MPF segment and
// the offset of its TIFF header are returned, if found.
func scanImage(reader io.Reader) ([]byte, int64, error) {
	scanner, err := jpegparse.NewScanner(reader, &jpegparse.Options{CaptureMPF: true})
	if err != nil {
		return nil, 0, err
	}
	fmt.Println("SOI")
	var mpfSegment []byte
	mpfOffset := int64(0)
	for {
		seg, err := scanner.Next()
		if err != nil {
			return nil, 0, err
		}
		switch {
		case seg.Marker == 0:
			fmt.Printf("%d bytes of image data\n", seg.Length)
		case seg.Marker.StandsAlone():
			fmt.Println(seg.Marker)
			if seg.Marker == jpegparse.EOI {
				return mpfSegment, mpfOffset, nil
			}
		case seg.Marker == jpegparse.APP0+2 && jpegparse.HasMPFHeader(seg.Data):
			fmt.Printf("%s, %d bytes at offset %d (MPF segment)\n",
				seg.Marker, seg.Length, seg.Offset)
			if mpfSegment == nil {
				mpfSegment = seg.Data[jpegparse.MPFHeaderSize:]
				// The TIFF header sits past the marker, the
				// length field and the MPF header.
				mpfOffset = seg.Offset + 4 + jpegparse.MPFHeaderSize
			}
		default:
			fmt.Printf("%s, %d bytes at offset %d\n", seg.Marker, seg.Length, seg.Offset)
		}
	}
}

func scanMPFImages(reader io.ReadSeeker, mpfSegment []byte, mpfOffset int64) error {
	images, err := jpegparse.ParseMPFIndex(mpfSegment)
	if err != nil {
		return err
	}
	for i, img := range images {
		if img.Offset == 0 {
			continue
		}
		pos := mpfOffset + int64(img.Offset)
		fmt.Printf("MPF image %d at offset %d, size %d\n", i+1, pos, img.Size)
		if _, err := reader.Seek(pos, io.SeekStart); err != nil {
			return err
		}
		if _, _, err := scanImage(reader); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	log.SetFlags(0)
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s file\n", os.Args[0])
		return
	}
	reader, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer reader.Close()
	mpfSegment, mpfOffset, err := scanImage(reader)
	if err != nil {
		log.Fatal(err)
	}
	if mpfSegment != nil {
		if err := scanMPFImages(reader, mpfSegment, mpfOffset); err != nil {
			log.Fatal(err)
		}
	}
}
