// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

import "fmt"

// Exception is a non-fatal parse condition accumulated in Record.Exceptions
// when a Config is in lenient mode. Exceptions are not stored as a record
// value: "_exceptions" does not appear among a record's Keys.
type Exception struct {
	Code    byte
	Message string
}

// Record is an ordered name-to-value mapping, the decoded shape of a
// structured field, a triplet, a repeating group or a PTOCA control
// sequence. Iteration order follows first appearance, matching the order
// fields were produced by the syntax being interpreted.
type Record struct {
	names    []string
	values   map[string]any
	counters map[string]int

	Exceptions []Exception
}

func newRecord() *Record {
	return &Record{values: map[string]any{}, counters: map[string]int{}}
}

// set stores value under name, uniquifying it as name-2, name-3, ... if name
// was already used in this record. Returns the name actually used.
func (r *Record) set(name string, value any) string {
	if _, used := r.values[name]; !used {
		r.counters[name] = 1
		r.values[name] = value
		r.names = append(r.names, name)
		return name
	}
	r.counters[name]++
	unique := fmt.Sprintf("%s-%d", name, r.counters[name])
	r.values[unique] = value
	r.names = append(r.names, unique)
	return unique
}

func (r *Record) addException(e *ParseError) {
	r.Exceptions = append(r.Exceptions, Exception{Code: e.Code, Message: e.Message})
}

// Keys returns the parameter names in the order they were decoded.
func (r *Record) Keys() []string {
	return r.names
}

// Value returns the raw decoded value for name, which is one of: uint64,
// int64, byte, []byte, string, or []*Record, depending on the parameter's
// data type.
func (r *Record) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Uint returns the decoded value for name as an unsigned integer. Valid for
// code, ubin and single-byte byte parameters.
func (r *Record) Uint(name string) (uint64, bool) {
	v, ok := r.values[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case uint64:
		return n, true
	case byte:
		return uint64(n), true
	}
	return 0, false
}

// Int returns the decoded value for name as a signed integer. Valid for sbin
// parameters.
func (r *Record) Int(name string) (int64, bool) {
	v, ok := r.values[name]
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	return n, ok
}

// Byte returns the decoded value for name as a single byte. Valid for byte
// parameters with length 1.
func (r *Record) Byte(name string) (byte, bool) {
	v, ok := r.values[name]
	if !ok {
		return 0, false
	}
	n, ok := v.(byte)
	return n, ok
}

// Bytes returns the decoded value for name as a byte sequence. Valid for
// byte parameters with length != 1.
func (r *Record) Bytes(name string) ([]byte, bool) {
	v, ok := r.values[name]
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

// Text returns the decoded, EBCDIC-decoded and whitespace-trimmed value for
// name. Valid for char parameters.
func (r *Record) Text(name string) (string, bool) {
	v, ok := r.values[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Records returns the nested record list for name. Valid for triplet,
// ptoca and repeating-group parameters.
func (r *Record) Records(name string) ([]*Record, bool) {
	v, ok := r.values[name]
	if !ok {
		return nil, false
	}
	rs, ok := v.([]*Record)
	return rs, ok
}
