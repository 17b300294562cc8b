package jpegparse

import (
	"bytes"
	"errors"

	tiff "github.com/garyhouston/tiff66"
)

// MPF header, as found in a JPEG APP2 segment.
var mpfHeader = []byte("MPF\000")

// Size of a MPF header.
const MPFHeaderSize = 4

// HasMPFHeader reports whether an APP2 payload starts with a
// Multi-Picture Format header.
func HasMPFHeader(buf []byte) bool {
	return len(buf) >= MPFHeaderSize && bytes.Equal(buf[:MPFHeaderSize], mpfHeader)
}

// Tags in the MPF Index IFD.
const (
	MPFVersion        = 0xB000
	MPFNumberOfImages = 0xB001
	MPFEntry          = 0xB002
	MPFImageUIDList   = 0xB003
	MPFTotalFrames    = 0xB004
)

// MPFImage locates one image of a multi-picture file. Offset is
// relative to the TIFF header inside the MPF segment, whose absolute
// position Metadata.MPFOffset records; the primary image is denoted
// by offset 0.
type MPFImage struct {
	Offset uint32
	Size   uint32
}

// ParseMPFIndex decodes the TIFF structure that follows the MPF header
// and returns the images its index lists. buf must start at the TIFF
// header, as captured in Metadata.MPF.
func ParseMPFIndex(buf []byte) ([]MPFImage, error) {
	valid, order, ifdpos := tiff.GetHeader(buf)
	if !valid {
		return nil, errors.New("invalid TIFF header in MPF segment")
	}
	node, err := tiff.GetIFDTree(buf, order, ifdpos, tiff.MPFIndexSpace)
	if err != nil {
		return nil, err
	}
	if node.GetSpace() != tiff.MPFIndexSpace {
		return nil, errors.New("MPF segment doesn't contain an index")
	}
	var declared uint32
	var images []MPFImage
	for _, f := range node.Fields {
		switch f.Tag {
		case MPFNumberOfImages:
			declared = f.Long(0, order)
		case MPFEntry:
			// Each entry is four longs: attributes, size, offset
			// and dependent image numbers. Trust the smaller of
			// the declared image count and what the entry field
			// actually holds, so a malformed index can neither
			// over-allocate nor index past the field data.
			n := f.Count / 4
			if declared < n {
				n = declared
			}
			images = make([]MPFImage, n)
			for i := range images {
				images[i].Size = f.Long(uint32(i)*4+1, order)
				images[i].Offset = f.Long(uint32(i)*4+2, order)
			}
		}
	}
	return images, nil
}
