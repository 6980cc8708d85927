// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

// Triplet type IDs (1 byte).
const (
	TTCodedGraphicCharacterSetGlobalID byte = 0x01
	TTFullyQualifiedName               byte = 0x02
	TTMODCAInterchangeSet              byte = 0x18
	TTResourceObjectType               byte = 0x21
	TTResourceLocalIdentifier          byte = 0x24
	TTResourceSectionNumber            byte = 0x25
	TTCharacterRotation                byte = 0x26
	TTObjectByteOffset                 byte = 0x2D
	TTAttributeValue                   byte = 0x36
	TTMediumMapPageNumber              byte = 0x56
	TTObjectByteExtent                 byte = 0x57
	TTObjectStructuredFieldOffset      byte = 0x58
	TTObjectStructuredFieldExtent      byte = 0x59
	TTLocalDateAndTimeStamp            byte = 0x62
	TTMediumOrientation                byte = 0x68
	TTAttributeQualifier               byte = 0x80
)

var syntaxTriplet01 = Syntax{
	field(0, 2, TypeCode, "GCSGID", true, PreprocNone),
	field(2, 2, TypeCode, "ID", true, PreprocNone),
}

var syntaxTriplet02 = Syntax{
	field(0, 1, TypeCode, "FQNType", true, PreprocNone),
	field(1, 1, TypeCode, "FQNFmt", true, PreprocNone),
	field(2, 0, TypeChar, "FQName", true, PreprocNone),
}

var syntaxTriplet18 = Syntax{
	field(0, 1, TypeCode, "IStype", true, PreprocNone),
	field(1, 2, TypeCode, "ISid", true, PreprocNone),
}

var syntaxTriplet21 = Syntax{
	field(0, 1, TypeCode, "ObjType", true, PreprocNone),
	field(1, 7, TypeCode, "ConData", true, PreprocNone),
}

var syntaxTriplet24 = Syntax{
	field(0, 1, TypeCode, "ResType", true, PreprocNone),
	field(1, 1, TypeCode, "ResLID", true, PreprocNone),
}

var syntaxTriplet25 = Syntax{
	field(0, 1, TypeCode, "ResSNum", true, PreprocNone),
}

var syntaxTriplet26 = Syntax{
	field(0, 2, TypeCode, "CharRot", true, PreprocNone),
}

var syntaxTriplet2D = Syntax{
	field(0, 4, TypeUbin, "DirByOff", true, PreprocNone),
	field(4, 4, TypeUbin, "DirByHi", false, PreprocNone),
}

var syntaxTriplet36 = Syntax{
	field(0, 2, TypeByte, "Reserved", true, PreprocNone),
	field(2, 0, TypeChar, "AttVal", false, PreprocNone),
}

var syntaxTriplet56 = Syntax{
	field(0, 4, TypeUbin, "PageNum", true, PreprocNone),
}

var syntaxTriplet57 = Syntax{
	field(0, 4, TypeUbin, "ByteExt", true, PreprocNone),
	field(4, 4, TypeUbin, "BytExtHi", true, PreprocNone),
}

var syntaxTriplet58 = Syntax{
	field(0, 4, TypeUbin, "SFOff", true, PreprocNone),
	field(4, 4, TypeUbin, "SFOffHi", false, PreprocNone),
}

var syntaxTriplet59 = Syntax{
	field(0, 4, TypeUbin, "SFExt", true, PreprocNone),
	field(4, 4, TypeUbin, "SFExtHi", false, PreprocNone),
}

var syntaxTriplet62 = Syntax{
	field(0, 1, TypeCode, "StampType", true, PreprocNone),
	field(1, 1, TypeCode, "THunYear", true, PreprocNone),
	field(2, 2, TypeCode, "TenYear", true, PreprocNone),
	field(4, 3, TypeCode, "Day", true, PreprocNone),
	field(7, 2, TypeCode, "Hour", true, PreprocNone),
	field(9, 2, TypeCode, "Minute", true, PreprocNone),
	field(11, 2, TypeCode, "Second", true, PreprocNone),
	field(13, 2, TypeCode, "HundSec", true, PreprocNone),
}

var syntaxTriplet68 = Syntax{
	field(0, 1, TypeCode, "MedOrient", true, PreprocNone),
}

var syntaxTriplet80 = Syntax{
	field(0, 4, TypeUbin, "SeqNum", true, PreprocNone),
	field(4, 4, TypeUbin, "LevNum", true, PreprocNone),
}

// TripletType names a triplet and points at its syntax.
type TripletType struct {
	Name   string
	Syntax Syntax
}

// TripletTypes is the static catalogue of every triplet this package
// understands, keyed by Tid. Triplets not present here are decoded with
// syntaxTripletRaw when the caller's Config allows unknown triplets.
var TripletTypes = map[byte]TripletType{
	TTCodedGraphicCharacterSetGlobalID: {"Coded Graphic Character Set Global Identifier", syntaxTriplet01},
	TTFullyQualifiedName:               {"Fully Qualified Name", syntaxTriplet02},
	TTMODCAInterchangeSet:              {"MO:DCA Interchange Set", syntaxTriplet18},
	TTResourceObjectType:               {"Resource Object Type", syntaxTriplet21},
	TTResourceLocalIdentifier:          {"Resource Local Identifier", syntaxTriplet24},
	TTResourceSectionNumber:            {"Resource Section Number", syntaxTriplet25},
	TTCharacterRotation:                {"Character Rotation", syntaxTriplet26},
	TTObjectByteOffset:                 {"Object Byte Offset", syntaxTriplet2D},
	TTAttributeValue:                   {"Attribute Value", syntaxTriplet36},
	TTMediumMapPageNumber:              {"Medium Map Page Number", syntaxTriplet56},
	TTObjectByteExtent:                 {"Object Byte Extent", syntaxTriplet57},
	TTObjectStructuredFieldOffset:      {"Object Structured Field Offset", syntaxTriplet58},
	TTObjectStructuredFieldExtent:      {"Object Structured Field Extent", syntaxTriplet59},
	TTLocalDateAndTimeStamp:            {"Local Date and Time Stamp", syntaxTriplet62},
	TTMediumOrientation:                {"Medium Orientation", syntaxTriplet68},
	TTAttributeQualifier:               {"Attribute Qualifier", syntaxTriplet80},
}
