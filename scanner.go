package jpegparse

import (
	"errors"
	"io"
)

// Options selects which segment payloads the scanner retains beyond
// what skipping requires. The zero value captures nothing.
type Options struct {
	// CaptureApp keeps the payloads of APP0 and APP1 segments, where
	// JFIF and Exif identifiers live.
	CaptureApp bool

	// CaptureMPF keeps the payloads of APP2 segments so that callers
	// can look for Multi-Picture Format data.
	CaptureMPF bool
}

// Segment is a transient view of one marker and, for the few kinds the
// scanner decodes or captures, its payload. Data is nil for segments
// that were skipped. A Segment with Marker 0 describes a run of
// entropy-coded scan data; Length is then the size of the run,
// restart markers and stuffing bytes included.
type Segment struct {
	Marker Marker
	Offset int64 // stream offset of the marker's 0xFF prefix
	Length int   // payload length in bytes (length field minus 2)
	Data   []byte
}

// Scanner walks the marker segments of a JPEG stream. It reads forward
// only; entropy-coded scan data and uninteresting payloads are
// discarded without buffering, so peak memory is bounded by the
// largest captured segment, not by the stream.
type Scanner struct {
	cur        *cursor
	opts       Options
	inScan     bool
	done       bool
	hasPending bool
	pending    Marker
	pendingOff int64
}

// NewScanner locates the SOI marker. Bytes before it are discarded;
// if the stream ends first, the input is not a JPEG.
func NewScanner(r io.Reader, opts *Options) (*Scanner, error) {
	s := &Scanner{cur: newCursor(r)}
	if opts != nil {
		s.opts = *opts
	}
	if err := s.seekSOI(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scanner) seekSOI() error {
	prev := byte(0)
	for {
		b, err := s.cur.readByte()
		if err != nil {
			return &ScanError{Offset: s.cur.offset(), Err: ErrNotJPEG}
		}
		if prev == 0xFF && b == byte(SOI) {
			return nil
		}
		prev = b
	}
}

// Next returns the next segment. After a SOS segment, the following
// call skips the entropy-coded data and reports it as a pseudo-segment
// with Marker 0; the marker that ended the scan is returned by the
// call after that. Once EOI has been returned, Next reports io.EOF.
func (s *Scanner) Next() (Segment, error) {
	if s.done {
		return Segment{}, io.EOF
	}
	if s.inScan {
		s.inScan = false
		return s.skipScanData()
	}
	var marker Marker
	var off int64
	if s.hasPending {
		marker, off = s.pending, s.pendingOff
		s.hasPending = false
	} else {
		var err error
		marker, off, err = s.readMarker()
		if err != nil {
			return Segment{}, err
		}
	}
	return s.segment(marker, off)
}

// readMarker locates the next marker. Runs of 0xFF bytes before the
// marker byte are fill and collapse into the marker's prefix; an
// FF 00 pair outside entropy-coded data is likewise discarded as fill.
// A non-FF byte where a marker is required is a protocol violation.
func (s *Scanner) readMarker() (Marker, int64, error) {
	for {
		off := s.cur.offset()
		b, err := s.cur.readByte()
		if err != nil {
			return 0, 0, s.truncated(err)
		}
		if b != 0xFF {
			return 0, 0, &ScanError{Offset: off, Err: ErrMalformedMarker}
		}
		m, err := s.cur.readByte()
		if err != nil {
			return 0, 0, s.truncated(err)
		}
		for m == 0xFF {
			m, err = s.cur.readByte()
			if err != nil {
				return 0, 0, s.truncated(err)
			}
		}
		if m == 0 {
			// FF 00 between segments, skipped as fill.
			continue
		}
		return Marker(m), s.cur.offset() - 2, nil
	}
}

// segment reads or skips the body of one recognized marker.
func (s *Scanner) segment(marker Marker, off int64) (Segment, error) {
	seg := Segment{Marker: marker, Offset: off}
	if marker.StandsAlone() {
		if marker == EOI {
			s.done = true
		}
		return seg, nil
	}
	length, err := s.readLength()
	if err != nil {
		return Segment{}, err
	}
	seg.Length = length
	if marker.IsSOF() || s.captures(marker) {
		seg.Data, err = s.cur.readExact(length)
		if err != nil {
			return Segment{}, s.truncated(err)
		}
	} else if err := s.cur.skip(int64(length)); err != nil {
		return Segment{}, s.truncated(err)
	}
	if marker == SOS {
		// The entropy-coded data that follows has no declared length.
		s.inScan = true
	}
	return seg, nil
}

// readLength reads a segment length field and returns the payload
// size. The field value includes its own two bytes.
func (s *Scanner) readLength() (int, error) {
	buf, err := s.cur.readExact(2)
	if err != nil {
		return 0, s.truncated(err)
	}
	n := int(buf[0])<<8 + int(buf[1]) - 2
	if n < 0 {
		return 0, &ScanError{Offset: s.cur.offset(), Err: ErrMalformedMarker}
	}
	return n, nil
}

// skipScanData advances past entropy-coded data one byte at a time
// without buffering it. FF 00 stuffing, fill bytes and restart markers
// belong to the data; the first genuine marker ends the run and is
// held back for the next call.
func (s *Scanner) skipScanData() (Segment, error) {
	seg := Segment{Offset: s.cur.offset()}
	for {
		b, err := s.cur.readByte()
		if err != nil {
			return Segment{}, s.truncated(err)
		}
		if b != 0xFF {
			seg.Length++
			continue
		}
		m, err := s.cur.peekByte()
		if err != nil {
			return Segment{}, s.truncated(err)
		}
		switch {
		case m == 0x00:
			// Escaped 0xFF data byte.
			_, _ = s.cur.readByte()
			seg.Length += 2
		case m == 0xFF:
			// Fill byte; the next 0xFF stays in place as a
			// potential marker prefix.
			seg.Length++
		case Marker(m).IsRST():
			_, _ = s.cur.readByte()
			seg.Length += 2
		default:
			_, _ = s.cur.readByte()
			s.pending = Marker(m)
			s.pendingOff = s.cur.offset() - 2
			s.hasPending = true
			return seg, nil
		}
	}
}

func (s *Scanner) captures(m Marker) bool {
	switch m {
	case APP0, APP0 + 1:
		return s.opts.CaptureApp
	case APP0 + 2:
		return s.opts.CaptureMPF
	}
	return false
}

func (s *Scanner) truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrTruncated
	}
	return &ScanError{Offset: s.cur.offset(), Err: err}
}
