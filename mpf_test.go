package jpegparse

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasMPFHeader(t *testing.T) {
	require.True(t, HasMPFHeader([]byte("MPF\x00II*\x00")))
	require.False(t, HasMPFHeader([]byte("ICC_PROFILE\x00")))
	require.False(t, HasMPFHeader([]byte("MP")))
	require.False(t, HasMPFHeader(nil))
}

func TestParseMPFIndexInvalidHeader(t *testing.T) {
	_, err := ParseMPFIndex([]byte{0x01, 0x02, 0x03, 0x04})
	require.Error(t, err)
}

// mpfIndexTIFF builds a big-endian TIFF structure holding an MPF index
// with the given (size, offset) image entries.
func mpfIndexTIFF(images []MPFImage) []byte {
	return mpfIndexTIFFDeclaring(uint32(len(images)), images)
}

// mpfIndexTIFFDeclaring is mpfIndexTIFF with the MPFNumberOfImages
// value chosen independently of the entries actually written.
func mpfIndexTIFFDeclaring(declared uint32, images []MPFImage) []byte {
	var buf bytes.Buffer
	be := binary.BigEndian

	// TIFF header: byte order, magic, offset of the first IFD.
	buf.WriteString("MM")
	binary.Write(&buf, be, uint16(42))
	binary.Write(&buf, be, uint32(8))

	// IFD with two fields.
	binary.Write(&buf, be, uint16(2))

	// MPFNumberOfImages: LONG, count 1, inline value.
	binary.Write(&buf, be, uint16(MPFNumberOfImages))
	binary.Write(&buf, be, uint16(4)) // LONG
	binary.Write(&buf, be, uint32(1))
	binary.Write(&buf, be, declared)

	// MPFEntry: four longs per image, stored after the IFD.
	dataPos := uint32(8 + 2 + 2*12 + 4)
	binary.Write(&buf, be, uint16(MPFEntry))
	binary.Write(&buf, be, uint16(4)) // LONG
	binary.Write(&buf, be, uint32(4*len(images)))
	binary.Write(&buf, be, dataPos)

	// No further IFDs.
	binary.Write(&buf, be, uint32(0))

	for _, img := range images {
		binary.Write(&buf, be, uint32(0)) // attributes
		binary.Write(&buf, be, img.Size)
		binary.Write(&buf, be, img.Offset)
		binary.Write(&buf, be, uint32(0)) // dependent images
	}
	return buf.Bytes()
}

func TestParseMPFIndex(t *testing.T) {
	want := []MPFImage{
		{Offset: 0, Size: 1000},
		{Offset: 5000, Size: 2000},
	}
	images, err := ParseMPFIndex(mpfIndexTIFF(want))
	require.NoError(t, err)
	require.Equal(t, want, images)
}

func TestParseMPFIndexTruncatedEntries(t *testing.T) {
	// The index declares three images but the entry field only holds
	// one; the walk must stop at the data that is actually there.
	buf := mpfIndexTIFFDeclaring(3, []MPFImage{{Offset: 0, Size: 100}})
	images, err := ParseMPFIndex(buf)
	require.NoError(t, err)
	require.Equal(t, []MPFImage{{Offset: 0, Size: 100}}, images)
}

func TestParseMPFIndexDeclaresFewerEntries(t *testing.T) {
	// Extra entries past the declared count are ignored.
	buf := mpfIndexTIFFDeclaring(1, []MPFImage{
		{Offset: 0, Size: 100},
		{Offset: 5000, Size: 2000},
	})
	images, err := ParseMPFIndex(buf)
	require.NoError(t, err)
	require.Equal(t, []MPFImage{{Offset: 0, Size: 100}}, images)
}

func TestParseCapturesMPFSegment(t *testing.T) {
	index := mpfIndexTIFF([]MPFImage{{Offset: 0, Size: 100}})
	payload := append([]byte("MPF\x00"), index...)
	in := stream(soi,
		rawSegment(APP0+2, payload...),
		rawSegment(SOF0, sof0Payload...),
		eoi)

	meta, err := ParseWithOptions(bytes.NewReader(in), &Options{CaptureMPF: true})
	require.NoError(t, err)
	require.Equal(t, index, meta.MPF)
	// SOI, then marker and length bytes, then the MPF header.
	require.Equal(t, int64(2+4+MPFHeaderSize), meta.MPFOffset)

	// Without the option the segment is skipped.
	meta, err = Parse(bytes.NewReader(in))
	require.NoError(t, err)
	require.Nil(t, meta.MPF)
}
