// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package afp decodes IBM Advanced Function Presentation structured field
// streams into an ordered, introspectable record sequence.
package afp

import (
	"fmt"
	"strings"
)

// Kind classifies the condition a ParseError describes. See the error kind
// table in the AFP reference documentation for the MO:DCA code each kind
// carries.
type Kind int

const (
	KindOther Kind = iota
	KindEndOfFile
	KindInvalidStructuredField
	KindRequiredParameterMissing
	KindEndOfStream
	KindUnrecognizedStructuredField
	KindPaddingNotImplemented
	KindInvalidTriplet
	KindUnrecognizedTriplet
	KindInvalidControlSequence
	KindUnknownFunction
	KindRepeatingGroup
	KindUnrecognizedIdentifierCode
	KindIncompleteParameter
)

var kindNames = map[Kind]string{
	KindOther:                       "other",
	KindEndOfFile:                   "end-of-file",
	KindInvalidStructuredField:      "invalid-structured-field",
	KindRequiredParameterMissing:    "required-parameter-missing",
	KindEndOfStream:                 "end-of-stream",
	KindUnrecognizedStructuredField: "unrecognized-structured-field",
	KindPaddingNotImplemented:       "padding-not-implemented",
	KindInvalidTriplet:              "invalid-triplet",
	KindUnrecognizedTriplet:         "unrecognized-triplet",
	KindInvalidControlSequence:      "invalid-control-sequence",
	KindUnknownFunction:             "unknown-function",
	KindRepeatingGroup:              "repeating-group",
	KindUnrecognizedIdentifierCode:  "unrecognized-identifier-code",
	KindIncompleteParameter:         "incomplete-parameter",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown-kind"
}

// ParseError is the single error type raised anywhere in this package. It
// carries enough context for a caller to render the MO:DCA-flavoured message
// the format dumps produced by AFP tooling traditionally use.
type ParseError struct {
	Kind    Kind
	Code    byte
	Message string

	hasField  bool
	FieldNo   int
	hasOffset bool
	Offset    int64
}

func newParseError(kind Kind, code byte, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// withField annotates the error with the 1-based field ordinal and the byte
// offset its structured field started at. Called once by the stream driver
// just before a fatal error is surfaced.
func (e *ParseError) withField(fieldNo int, offset int64) *ParseError {
	e.hasField = true
	e.FieldNo = fieldNo
	e.hasOffset = true
	e.Offset = offset
	return e
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Code != 0 {
		fmt.Fprintf(&b, "0x%02X %s", e.Code, e.Message)
	} else {
		b.WriteString(e.Message)
	}
	sep := " -"
	if e.hasField {
		fmt.Fprintf(&b, "%s field %d", sep, e.FieldNo)
		sep = ";"
	}
	if e.hasOffset {
		fmt.Fprintf(&b, "%s start offset %d", sep, e.Offset)
	}
	return b.String()
}

// isKind reports whether err is a *ParseError of the given kind. Used
// internally to catch end-of-stream signals raised by the buffer-level
// readers without depending on message text.
func isKind(err error, kind Kind) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == kind
}

func errEndOfFile(format string, args ...any) *ParseError {
	return newParseError(KindEndOfFile, 0, format, args...)
}

func errInvalidStructuredField(format string, args ...any) *ParseError {
	return newParseError(KindInvalidStructuredField, 0, format, args...)
}

func errRequiredParameterMissing(name string) *ParseError {
	return newParseError(KindRequiredParameterMissing, 0x04, "required parameter missing: %s", name)
}

func errEndOfStream(format string, args ...any) *ParseError {
	return newParseError(KindEndOfStream, 0, format, args...)
}

func errUnrecognizedStructuredField(id uint32) *ParseError {
	return newParseError(KindUnrecognizedStructuredField, 0x10, "unrecognized structured field 0x%06X", id)
}

func errPaddingNotImplemented() *ParseError {
	return newParseError(KindPaddingNotImplemented, 0, "structured field padding is not supported")
}

func errInvalidTriplet(format string, args ...any) *ParseError {
	return newParseError(KindInvalidTriplet, 0, format, args...)
}

func errUnrecognizedTriplet(id byte) *ParseError {
	return newParseError(KindUnrecognizedTriplet, 0x10, "unrecognized triplet 0x%02X", id)
}

func errInvalidControlSequence(format string, args ...any) *ParseError {
	return newParseError(KindInvalidControlSequence, 0, format, args...)
}

func errUnknownFunction(id byte) *ParseError {
	return newParseError(KindUnknownFunction, 0, "unknown function 0x%02X", id)
}

func errRepeatingGroup(format string, args ...any) *ParseError {
	return newParseError(KindRepeatingGroup, 0, format, args...)
}

func errUnrecognizedIdentifierCode(format string, args ...any) *ParseError {
	return newParseError(KindUnrecognizedIdentifierCode, 0x40, format, args...)
}

func errIncompleteParameter(name string) *ParseError {
	return newParseError(KindIncompleteParameter, 0x02, "not enough data to parse parameter %s", name)
}
