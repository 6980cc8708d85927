// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

// FlagExtension reports whether a structured field's FlagByte carries the
// extension bit, i.e. whether it has an ExtLength/ExtData pair following its
// reserved bytes.
func FlagExtension(flagByte byte) bool { return sfiExtFlag(flagByte) }

// FlagSegmented reports whether a structured field's FlagByte marks it as a
// segment of a larger logical field. This package never reassembles
// segments; it is surfaced purely for a caller's own inspection.
func FlagSegmented(flagByte byte) bool { return sfiSegFlag(flagByte) }

// FlagPadding reports whether a structured field's FlagByte carries the
// padding bit. readStructuredField already treats this as fatal, so a
// caller will only ever observe it true via the error that raised.
func FlagPadding(flagByte byte) bool { return sfiPadFlag(flagByte) }
