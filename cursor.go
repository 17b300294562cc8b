package jpegparse

import "io"

// cursor is a forward-only view over a byte stream with a one-byte
// lookahead slot. It tracks the absolute offset of the next unread
// byte for error reporting and never retains data the caller hasn't
// asked for.
type cursor struct {
	r       io.Reader
	pos     int64
	peeked  bool
	next    byte
	scratch [1]byte
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: r}
}

// offset returns the number of bytes consumed so far.
func (c *cursor) offset() int64 {
	return c.pos
}

// readByte consumes and returns the next byte.
func (c *cursor) readByte() (byte, error) {
	if c.peeked {
		c.peeked = false
		c.pos++
		return c.next, nil
	}
	if _, err := io.ReadFull(c.r, c.scratch[:]); err != nil {
		return 0, err
	}
	c.pos++
	return c.scratch[0], nil
}

// peekByte returns the next byte without consuming it.
func (c *cursor) peekByte() (byte, error) {
	if !c.peeked {
		if _, err := io.ReadFull(c.r, c.scratch[:]); err != nil {
			return 0, err
		}
		c.next = c.scratch[0]
		c.peeked = true
	}
	return c.next, nil
}

// readExact reads exactly n bytes into a fresh buffer. A short stream
// yields io.ErrUnexpectedEOF, or io.EOF if nothing was read at all.
func (c *cursor) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	fill := buf
	if c.peeked && n > 0 {
		buf[0] = c.next
		c.peeked = false
		c.pos++
		fill = buf[1:]
	}
	m, err := io.ReadFull(c.r, fill)
	c.pos += int64(m)
	if err != nil {
		if err == io.EOF && len(fill) < n {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

// skip discards n bytes without buffering them, so skipping large
// regions stays O(1) in memory. Seekable sources are advanced in
// place; everything else is drained into io.Discard.
func (c *cursor) skip(n int64) error {
	if n > 0 && c.peeked {
		c.peeked = false
		c.pos++
		n--
	}
	if n == 0 {
		return nil
	}
	if s, ok := c.r.(io.Seeker); ok {
		return c.seekForward(s, n)
	}
	m, err := io.CopyN(io.Discard, c.r, n)
	c.pos += m
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// seekForward advances a seekable source without reading the skipped
// bytes. The end of the stream is probed first, since seeking past it
// succeeds silently and a short skip must still report how much was
// available.
func (c *cursor) seekForward(s io.Seeker, n int64) error {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if end-cur < n {
		c.pos += end - cur
		return io.ErrUnexpectedEOF
	}
	if _, err := s.Seek(cur+n, io.SeekStart); err != nil {
		return err
	}
	c.pos += n
	return nil
}
