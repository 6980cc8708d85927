// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

import "io"

// Stream pulls structured fields one at a time out of an AFP byte stream.
// It is finite: Next returns (nil, nil) once the underlying reader is
// exhausted at a field boundary, and the same error that Next returned is
// returned again on every subsequent call.
type Stream struct {
	src     *source
	cfg     Config
	fieldNo int
	err     error
	done    bool
}

// NewStream wraps r, ready to decode structured fields under cfg.
func NewStream(r io.Reader, cfg Config) *Stream {
	return &Stream{src: newSource(r), cfg: cfg, fieldNo: 1}
}

// Next decodes and returns the next structured field. It returns (nil, nil)
// at a clean end of stream. A non-nil error is annotated with the 1-based
// ordinal and start offset of the field being decoded when it failed, and
// ends the stream: no further field will be produced.
func (s *Stream) Next() (*Record, error) {
	if s.done {
		return nil, s.err
	}

	fieldStart := s.src.position()
	record, err := readStructuredField(s.src, s.cfg)
	if err != nil {
		s.done = true
		s.err = err.(*ParseError).withField(s.fieldNo, fieldStart)
		return nil, s.err
	}
	if record == nil {
		s.done = true
		return nil, nil
	}

	s.fieldNo++
	return record, nil
}

// Load eagerly decodes every structured field in r under cfg, stopping at
// the first fatal error (if any) and returning everything decoded so far
// alongside it.
func Load(r io.Reader, cfg Config) ([]*Record, error) {
	stream := NewStream(r, cfg)
	var records []*Record
	for {
		record, err := stream.Next()
		if err != nil {
			return records, err
		}
		if record == nil {
			return records, nil
		}
		records = append(records, record)
	}
}
