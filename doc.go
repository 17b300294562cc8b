/*
Package jpegparse extracts structural metadata from JPEG streams
without decoding pixel data: pixel dimensions, component count, sample
precision, the frame coding mode and the marker layout. Segments are
read forward only and entropy-coded scan data is skipped rather than
buffered, so memory use is bounded by the largest captured segment,
not by the file.

Example: print the dimensions of a file.

	package main

	import (
		"fmt"
		"os"

		jpegparse "github.com/TobyBridle/jpeg-parser"
	)

	func main() {
		if len(os.Args) != 2 {
			fmt.Printf("Usage: %s file\n", os.Args[0])
			return
		}
		in, err := os.Open(os.Args[1])
		if err != nil {
			panic(err)
		}
		meta, err := jpegparse.Parse(in)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%dx%d, %d components, %d-bit, %s\n",
			meta.Width, meta.Height, meta.Components,
			meta.Precision, meta.Frame)
	}

Example: print the markers and segment lengths.

	package main

	import (
		"fmt"
		"io"
		"os"

		jpegparse "github.com/TobyBridle/jpeg-parser"
	)

	func main() {
		if len(os.Args) != 2 {
			fmt.Printf("Usage: %s file\n", os.Args[0])
			return
		}
		in, err := os.Open(os.Args[1])
		if err != nil {
			panic(err)
		}
		scanner, err := jpegparse.NewScanner(in, nil)
		if err != nil {
			panic(err)
		}
		for {
			seg, err := scanner.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				panic(err)
			}
			fmt.Printf("%s, %d bytes\n", seg.Marker, seg.Length)
		}
	}
*/
package jpegparse
