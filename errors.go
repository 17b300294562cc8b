package jpegparse

import (
	"errors"
	"fmt"
)

// Terminal parse failures. Each one is definitive for its input; the
// scanner never retries.
var (
	// ErrNotJPEG means the stream ended before a SOI marker was found.
	ErrNotJPEG = errors.New("SOI marker not found")

	// ErrTruncated means the stream ended inside a segment or inside
	// entropy-coded scan data.
	ErrTruncated = errors.New("truncated JPEG stream")

	// ErrMalformedMarker means a marker was expected but the bytes at
	// that position cannot be read as one.
	ErrMalformedMarker = errors.New("malformed marker")

	// ErrNoFrameHeader means EOI was reached without any SOFn segment.
	ErrNoFrameHeader = errors.New("no frame header before EOI")
)

// ScanError carries the byte offset at which a parse failure was
// detected. It unwraps to one of the sentinel errors above or to the
// underlying I/O error.
type ScanError struct {
	Offset int64
	Err    error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
