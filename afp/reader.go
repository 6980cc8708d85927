// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

import "io"

// source reads structured fields sequentially from an underlying byte
// stream, tracking the current byte offset so fatal errors can be annotated
// with the start of the offending field.
type source struct {
	r   io.Reader
	pos int64
}

func newSource(r io.Reader) *source {
	return &source{r: r}
}

// position returns the number of bytes already consumed from the stream.
func (s *source) position() int64 {
	return s.pos
}

// readBytes reads exactly n bytes. It returns (nil, io.EOF) if the stream is
// exhausted before any byte of this read was consumed (a clean end of
// stream), or a *ParseError of kind KindEndOfFile if some but not all of the
// requested bytes were available (an unexpected end of file mid-field).
func (s *source) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(s.r, buf)
	s.pos += int64(read)
	if read == 0 && err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, errEndOfFile("unexpected end of file while reading %d byte(s)", n)
	}
	return buf, nil
}

func (s *source) readByte() (byte, error) {
	b, err := s.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *source) readUbin(n int) (uint64, error) {
	b, err := s.readBytes(n)
	if err != nil {
		return 0, err
	}
	return decodeUbin(b), nil
}

func decodeUbin(b []byte) uint64 {
	var u uint64
	for _, c := range b {
		u = (u << 8) + uint64(c)
	}
	return u
}

// --- Buffer-level primitives, operating on an in-memory byte slice with an
// explicit offset, mirroring the parse_* family of the source parser. These
// back the syntax interpreter (syntax.go), not the top-level stream reader.

// parseBytes reads n bytes from data starting at offset. n == 0 means
// "consume the rest of the buffer". Returns (nil, false, nil) if offset is
// at or past the end of the buffer (no data available, used for optional
// trailing parameters); returns a KindEndOfStream *ParseError if some but
// not all of the requested bytes are available.
func parseBytes(data []byte, n, offset int) ([]byte, bool, error) {
	if n == 0 {
		n = len(data) - offset
	}
	if offset >= len(data) {
		return nil, false, nil
	}
	if offset+n > len(data) {
		return nil, false, errEndOfStream("out of data while parsing %d byte(s) from offset %d", n, offset)
	}
	return data[offset : offset+n], true, nil
}

func parseUbin(data []byte, n, offset int) (uint64, bool, error) {
	b, ok, err := parseBytes(data, n, offset)
	if !ok || err != nil {
		return 0, ok, err
	}
	return decodeUbin(b), true, nil
}

func parseCode(data []byte, n, offset int) (uint64, bool, error) {
	return parseUbin(data, n, offset)
}

func parseSbin(data []byte, n, offset int) (int64, bool, error) {
	u, ok, err := parseUbin(data, n, offset)
	if !ok || err != nil {
		return 0, ok, err
	}
	i := int64(u)
	if u&(1<<uint(n*8-1)) != 0 {
		i -= int64(1) << uint(n*8)
	}
	return i, true, nil
}

func parseChars(data []byte, n, offset int) (string, bool, error) {
	b, ok, err := parseBytes(data, n, offset)
	if !ok || err != nil {
		return "", ok, err
	}
	s, err := decodeEBCDIC(b)
	if err != nil {
		return "", false, errEndOfStream("invalid EBCDIC text at offset %d: %v", offset, err)
	}
	return s, true, nil
}
