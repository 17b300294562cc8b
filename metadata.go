package jpegparse

import (
	"bytes"
	"io"
	"strings"
)

// FrameMode describes the coding process declared by the SOFn subtype.
type FrameMode int

const (
	FrameUnknown FrameMode = iota
	FrameBaseline
	FrameExtended
	FrameProgressive
	FrameLossless
)

var frameModeNames = []string{
	FrameUnknown:     "unknown",
	FrameBaseline:    "baseline",
	FrameExtended:    "extended",
	FrameProgressive: "progressive",
	FrameLossless:    "lossless",
}

func (f FrameMode) String() string {
	if f < 0 || int(f) >= len(frameModeNames) {
		return "unknown"
	}
	return frameModeNames[f]
}

// frameMode classifies a SOFn marker by its coding class. SOF4, SOF8
// and SOF12 are not frame markers, so every remaining subtype with
// low bits 00 is baseline SOF0.
func frameMode(m Marker) FrameMode {
	switch (m - SOF0) & 3 {
	case 0:
		return FrameBaseline
	case 1:
		return FrameExtended
	case 2:
		return FrameProgressive
	default:
		return FrameLossless
	}
}

// Metadata is the structural record extracted from a JPEG stream.
// Width, Height, Components, Precision and Frame are only meaningful
// once a frame header has been seen; Complete reports that. Zero
// dimensions are surfaced as-is, since some encoders emit them for
// placeholder frames.
type Metadata struct {
	Width      int
	Height     int
	Components int
	Precision  int
	Frame      FrameMode

	// App is the raw payload of the first APP0 or APP1 segment, when
	// captured via Options.CaptureApp.
	App []byte

	// MPF is the raw APP2 payload following the MPF header, and
	// MPFOffset the absolute stream offset of the TIFF header inside
	// it, when captured via Options.CaptureMPF.
	MPF       []byte
	MPFOffset int64
}

// Complete reports whether a frame header has been decoded.
func (m *Metadata) Complete() bool {
	return m.Frame != FrameUnknown
}

// AppID returns the identifier at the head of the captured APP
// payload, uppercased: "JFIF" for JFIF files, "EXIF" for Exif. Empty
// when no APP segment was captured.
func (m *Metadata) AppID() string {
	id := m.App
	if len(id) > 5 {
		id = id[:5]
	}
	if i := bytes.IndexByte(id, 0); i >= 0 {
		id = id[:i]
	}
	return strings.ToUpper(string(id))
}

// applyFrameHeader decodes a SOFn payload. The first frame header
// wins; later ones are ignored so multi-frame files stay
// deterministic.
func (m *Metadata) applyFrameHeader(marker Marker, payload []byte) error {
	if m.Complete() {
		return nil
	}
	if len(payload) < 6 {
		return ErrMalformedMarker
	}
	m.Precision = int(payload[0])
	m.Height = int(payload[1])<<8 + int(payload[2])
	m.Width = int(payload[3])<<8 + int(payload[4])
	m.Components = int(payload[5])
	m.Frame = frameMode(marker)
	return nil
}

// Parse scans a JPEG stream up to EOI and returns its structural
// metadata. The stream is read forward exactly once; entropy-coded
// scan data is skipped, never buffered. On failure the returned record
// holds whatever had been captured up to that point.
func Parse(r io.Reader) (*Metadata, error) {
	return ParseWithOptions(r, nil)
}

// ParseWithOptions is Parse with segment capture options.
func ParseWithOptions(r io.Reader, opts *Options) (*Metadata, error) {
	scanner, err := NewScanner(r, opts)
	if err != nil {
		return nil, err
	}
	meta := new(Metadata)
	for {
		seg, err := scanner.Next()
		if err != nil {
			return meta, err
		}
		switch {
		case seg.Marker.IsSOF():
			if err := meta.applyFrameHeader(seg.Marker, seg.Data); err != nil {
				return meta, &ScanError{Offset: seg.Offset, Err: err}
			}
		case seg.Marker == EOI:
			if !meta.Complete() {
				return meta, &ScanError{Offset: seg.Offset, Err: ErrNoFrameHeader}
			}
			return meta, nil
		case seg.Marker == APP0 || seg.Marker == APP0+1:
			if meta.App == nil && seg.Data != nil {
				meta.App = seg.Data
			}
		case seg.Marker == APP0+2:
			if meta.MPF == nil && HasMPFHeader(seg.Data) {
				meta.MPF = seg.Data[MPFHeaderSize:]
				// Marker and length bytes precede the payload.
				meta.MPFOffset = seg.Offset + 4 + MPFHeaderSize
			}
		}
	}
}
