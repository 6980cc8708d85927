// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

// DataType identifies how a parameter's bytes are decoded.
type DataType int

const (
	TypeCode DataType = iota + 1
	TypeByte
	TypeUbin
	TypeSbin
	TypeChar
	TypeTriplet
	TypePtoca
)

var dataTypeNames = map[DataType]string{
	TypeCode:    "CODE",
	TypeByte:    "BYTE",
	TypeUbin:    "UBIN",
	TypeSbin:    "SBIN",
	TypeChar:    "CHAR",
	TypeTriplet: "TRIPLET",
	TypePtoca:   "PTOCA",
}

func (t DataType) String() string {
	if s, ok := dataTypeNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Preproc is a closed set of markers a parameter descriptor can carry. Most
// are not really preprocessing functions but signals the interpreter acts on
// specially; see syntax.go.
type Preproc int

const (
	PreprocNone Preproc = iota
	PreprocNextGroupLength
	PreprocThisGroupLength
	PreprocSuppressIfNoExtension
	PreprocSetExtensionLength
)

// Parameter is one entry in a Syntax: a fixed- or open-length field within a
// structured field, triplet or control sequence body.
type Parameter struct {
	Offset    int
	Length    int
	Type      DataType
	Name      string
	Mandatory bool
	Preproc   Preproc
}

// Element is one position in a Syntax. Exactly one of Param or Group is
// set: a plain parameter descriptor, or a nested syntax describing a
// repeating group.
type Element struct {
	Param *Parameter
	Group Syntax
}

// Syntax is an ordered list of parameter descriptors and repeating groups,
// the declarative description a structured field, triplet or PTOCA function
// is parsed against.
type Syntax []Element

// field builds a plain parameter Element. Mirrors the ParameterType
// constructor used throughout the source catalogue.
func field(offset, length int, typ DataType, name string, mandatory bool, preproc Preproc) Element {
	return Element{Param: &Parameter{Offset: offset, Length: length, Type: typ, Name: name, Mandatory: mandatory, Preproc: preproc}}
}

// repeat builds a repeating-group Element out of a nested syntax.
func repeat(elems ...Element) Element {
	return Element{Group: Syntax(elems)}
}

// syntaxLength returns the fixed byte length of a syntax if every element is
// a mandatory, fixed-length parameter, or zero if the syntax has any
// optional or open-length parameter (in which case the group must carry its
// own length, e.g. via PreprocThisGroupLength).
func syntaxLength(s Syntax) int {
	length := 0
	for _, el := range s {
		if el.Param == nil {
			return 0
		}
		if !el.Param.Mandatory || el.Param.Length == 0 {
			return 0
		}
		length += el.Param.Length
	}
	return length
}

const (
	sfiExtFlagMask = 0b10000000
	sfiSegFlagMask = 0b00100000
	sfiPadFlagMask = 0b00001000
)

func sfiExtFlag(b byte) bool { return b&sfiExtFlagMask != 0 }
func sfiSegFlag(b byte) bool { return b&sfiSegFlagMask != 0 }
func sfiPadFlag(b byte) bool { return b&sfiPadFlagMask != 0 }

// Parameter names reused as synthetic record keys.
const (
	pnameSFLength    = "SFLength"
	pnameSFTypeID    = "SFTypeID"
	pnameFlagByte    = "FlagByte"
	pnameExtLength   = "ExtLength"
	pnameExtData     = "ExtData"
	pnameTriplets    = "Triplets"
	pnameTLength     = "Tlength"
	pnameTID         = "Tid"
	pnameCSLength    = "LENGTH"
	pnameCSType      = "TYPE"
	pnameRepeatGroup = "RepeatingGroup"
	pnameExceptions  = "_exceptions"
)

// syntaxSFI is the fixed syntax of every Structured Field Introducer.
var syntaxSFI = Syntax{
	field(0, 3, TypeCode, pnameSFTypeID, true, PreprocNone),
	field(3, 1, TypeByte, pnameFlagByte, true, PreprocNone),
	field(4, 2, TypeByte, "Reserved", true, PreprocNone),
	field(6, 1, TypeUbin, pnameExtLength, true, PreprocSuppressIfNoExtension),
	field(7, 0, TypeByte, pnameExtData, true, PreprocSetExtensionLength),
}

// syntaxFieldRaw is used for structured fields with no specific syntax
// (unknown fields in allow-unknown mode).
var syntaxFieldRaw = Syntax{
	field(0, 0, TypeByte, "Data", false, PreprocNone),
}

// syntaxTripletRaw is used for triplets with no specific syntax.
var syntaxTripletRaw = Syntax{
	field(0, 0, TypeByte, "Contents", true, PreprocNone),
}

// syntaxFunctionRaw is used for PTOCA functions with no specific syntax.
var syntaxFunctionRaw = Syntax{
	field(0, 0, TypeByte, "DATA", true, PreprocNone),
}
