// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

import "github.com/mdneale/go-afp/alog"

// Config governs how unrecognized identifiers and malformed-but-recoverable
// records are handled while decoding a stream.
type Config struct {
	// Strict makes a missing mandatory parameter or a short read while
	// decoding one fatal: the offending error is returned and the stream
	// stops producing further records. When false (the default) these two
	// conditions are recorded as an Exception on the record being built; a
	// short read also stops decoding of that record there, while a missing
	// mandatory parameter does not. Either way the stream continues with the
	// next structured field.
	Strict bool

	// AllowUnknownFields lets a structured field whose SFTypeID is not in
	// SFTypes decode with syntaxFieldRaw instead of failing with
	// KindUnrecognizedStructuredField.
	AllowUnknownFields bool

	// AllowUnknownTriplets lets a triplet whose Tid is not in TripletTypes
	// decode with syntaxTripletRaw instead of failing with
	// KindUnrecognizedTriplet.
	AllowUnknownTriplets bool

	// AllowUnknownFunctions lets a PTOCA control sequence whose function ID
	// is not in Functions decode with syntaxFunctionRaw instead of failing
	// with KindUnknownFunction.
	AllowUnknownFunctions bool

	// Logger receives a Warn line for every exception recorded in lenient
	// mode and a Debug line per decoded structured field. It is disabled by
	// default; set it to an alog.Alog built with LogMode(true) to see
	// output.
	Logger alog.Alog
}

// DefaultConfig returns the zero-value Config: lenient decoding (missing
// mandatory parameters and short reads become Exceptions, not fatal
// errors), no unknown identifiers tolerated.
func DefaultConfig() Config {
	return Config{}
}
