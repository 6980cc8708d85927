// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

// Structured field type IDs (3 bytes, high byte 0xD3 - the MO:DCA class
// code).
const (
	SFBAG   uint32 = 0xD3A8C9
	SFBDG   uint32 = 0xD3A8C4
	SFBDI   uint32 = 0xD3A8A7
	SFBDT   uint32 = 0xD3A8A8
	SFBFG   uint32 = 0xD3A8C5
	SFBFM   uint32 = 0xD3A8CD
	SFBMM   uint32 = 0xD3A8CC
	SFBNG   uint32 = 0xD3A8AD
	SFBPG   uint32 = 0xD3A8AF
	SFBPT   uint32 = 0xD3A89B
	SFBRG   uint32 = 0xD3A8C6
	SFBRS   uint32 = 0xD3A8CE
	SFCTC   uint32 = 0xD3A79B
	SFEAG   uint32 = 0xD3A9C9
	SFEDG   uint32 = 0xD3A9C4
	SFEDI   uint32 = 0xD3A9A7
	SFEDT   uint32 = 0xD3A9A8
	SFEFG   uint32 = 0xD3A9C5
	SFEFM   uint32 = 0xD3A9CD
	SFEMM   uint32 = 0xD3A9CC
	SFENG   uint32 = 0xD3A9AD
	SFEPG   uint32 = 0xD3A9AF
	SFEPT   uint32 = 0xD3A99B
	SFERG   uint32 = 0xD3A9C6
	SFERS   uint32 = 0xD3A9CE
	SFIEL   uint32 = 0xD3B2A7
	SFIPO   uint32 = 0xD3AFD8
	SFIPS   uint32 = 0xD3AF5F
	SFMCC   uint32 = 0xD3A288
	SFMCF   uint32 = 0xD3AB8A
	SFMCF1  uint32 = 0xD3B18A
	SFMDD   uint32 = 0xD3A688
	SFMMC   uint32 = 0xD3A788
	SFMPO   uint32 = 0xD3ABD8
	SFNOP   uint32 = 0xD3EEEE
	SFPGD   uint32 = 0xD3A6AF
	SFPGP1  uint32 = 0xD3ACAF
	SFPTD   uint32 = 0xD3B19B
	SFPTD1  uint32 = 0xD3A69B
	SFPTX   uint32 = 0xD3EE9B
	SFTLE   uint32 = 0xD3A090
)

var syntaxFieldBAG = Syntax{
	field(0, 8, TypeChar, "AEGName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBDG = Syntax{
	field(0, 8, TypeChar, "DEGName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBDI = Syntax{
	field(0, 8, TypeChar, "IndxName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBDT = Syntax{
	field(0, 8, TypeChar, "DocName", true, PreprocNone),
	field(8, 2, TypeByte, "Reserved", true, PreprocNone),
	field(10, 0, TypeTriplet, pnameTriplets, true, PreprocNone),
}

var syntaxFieldBFG = Syntax{
	field(0, 8, TypeChar, "FEGName", false, PreprocNone),
}

var syntaxFieldBFM = Syntax{
	field(0, 8, TypeChar, "FMName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBMM = Syntax{
	field(0, 8, TypeChar, "MMName", true, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBNG = Syntax{
	field(0, 8, TypeChar, "PGrpName", true, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBPG = Syntax{
	field(0, 8, TypeChar, "PageName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBPT = Syntax{
	field(0, 8, TypeChar, "PTdoName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBRG = Syntax{
	field(0, 8, TypeChar, "RGrpName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldBRS = Syntax{
	field(0, 8, TypeChar, "RSName", true, PreprocNone),
	field(8, 2, TypeByte, "Reserved", true, PreprocNone),
	field(10, 0, TypeTriplet, pnameTriplets, true, PreprocNone),
}

var syntaxFieldCTC = Syntax{
	field(0, 10, TypeByte, "ConData", true, PreprocNone),
}

var syntaxFieldEAG = Syntax{
	field(0, 8, TypeChar, "AEGName", false, PreprocNone),
}

var syntaxFieldEDG = Syntax{
	field(0, 8, TypeChar, "DEGName", false, PreprocNone),
}

var syntaxFieldEDI = Syntax{
	field(0, 8, TypeChar, "IndxName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldEDT = Syntax{
	field(0, 8, TypeChar, "DocName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldEFG = Syntax{
	field(0, 8, TypeChar, "FEGName", false, PreprocNone),
}

var syntaxFieldEFM = Syntax{
	field(0, 8, TypeChar, "FMName", false, PreprocNone),
}

var syntaxFieldEMM = Syntax{
	field(0, 8, TypeChar, "MMName", false, PreprocNone),
}

var syntaxFieldENG = Syntax{
	field(0, 8, TypeChar, "PGrpName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldEPG = Syntax{
	field(0, 8, TypeChar, "PageName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldEPT = Syntax{
	field(0, 8, TypeChar, "PTdoName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldERG = Syntax{
	field(0, 8, TypeChar, "RGrpName", false, PreprocNone),
	field(8, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldERS = Syntax{
	field(0, 8, TypeChar, "RSName", false, PreprocNone),
}

var syntaxFieldIEL = Syntax{
	field(0, 0, TypeTriplet, pnameTriplets, true, PreprocNone),
}

var syntaxFieldIPO = Syntax{
	field(0, 8, TypeChar, "OvlyName", true, PreprocNone),
	field(8, 3, TypeSbin, "XolOset", true, PreprocNone),
	field(11, 3, TypeSbin, "YolOset", true, PreprocNone),
	field(14, 2, TypeCode, "OvlyOrent", false, PreprocNone),
	field(16, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldIPS = Syntax{
	field(0, 8, TypeChar, "PsegName", true, PreprocNone),
	field(8, 3, TypeSbin, "XpsOset", true, PreprocNone),
	field(11, 3, TypeSbin, "YpsOset", true, PreprocNone),
	field(14, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldMCC = Syntax{
	repeat(
		field(0, 2, TypeUbin, "Startnum", true, PreprocNone),
		field(2, 2, TypeUbin, "Stopnum", true, PreprocNone),
		field(4, 1, TypeByte, "Reserved", true, PreprocNone),
		field(5, 1, TypeCode, "MMCid", true, PreprocNone),
	),
}

var syntaxFieldMCF = Syntax{
	repeat(
		field(0, 2, TypeUbin, "RGLength", true, PreprocThisGroupLength),
		field(2, 0, TypeTriplet, pnameTriplets, true, PreprocNone),
	),
}

var syntaxFieldMCF1 = Syntax{
	field(0, 1, TypeUbin, "RGLength", true, PreprocNextGroupLength),
	field(1, 3, TypeByte, "Reserved", true, PreprocNone),
	repeat(
		field(0, 1, TypeUbin, "CFLid", true, PreprocNone),
		field(1, 1, TypeByte, "Reserved", true, PreprocNone),
		field(2, 1, TypeCode, "Sectid", true, PreprocNone),
		field(3, 1, TypeByte, "Reserved", true, PreprocNone),
		field(4, 8, TypeChar, "CFName", true, PreprocNone),
		field(12, 8, TypeChar, "CPName", true, PreprocNone),
		field(20, 8, TypeChar, "FCSName", true, PreprocNone),
		field(28, 2, TypeCode, "CharRot", false, PreprocNone),
	),
}

var syntaxFieldMDD = Syntax{
	field(0, 1, TypeCode, "XmBase", true, PreprocNone),
	field(1, 1, TypeCode, "YmBase", true, PreprocNone),
	field(2, 2, TypeUbin, "XmUnits", true, PreprocNone),
	field(4, 2, TypeUbin, "YmUnits", true, PreprocNone),
	field(6, 3, TypeUbin, "XmSize", true, PreprocNone),
	field(9, 3, TypeUbin, "YmSize", true, PreprocNone),
	field(12, 1, TypeByte, "MDDFlgs", true, PreprocNone),
	field(13, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldMMC = Syntax{
	field(0, 1, TypeCode, "MMCid", true, PreprocNone),
	field(1, 1, TypeCode, "Constant", true, PreprocNone),
	field(2, 0, TypeByte, "Keywords", false, PreprocNone),
}

var syntaxFieldMPO = Syntax{
	repeat(
		field(0, 2, TypeUbin, "RGLength", true, PreprocThisGroupLength),
		field(2, 0, TypeTriplet, pnameTriplets, true, PreprocNone),
	),
}

var syntaxFieldNOP = Syntax{
	field(0, 0, TypeByte, "UndfData", false, PreprocNone),
}

var syntaxFieldPGD = Syntax{
	field(0, 1, TypeCode, "XpgBase", true, PreprocNone),
	field(1, 1, TypeCode, "YpgBase", true, PreprocNone),
	field(2, 2, TypeUbin, "XpgUnits", true, PreprocNone),
	field(4, 2, TypeUbin, "YpgUnits", true, PreprocNone),
	field(6, 3, TypeUbin, "XpgSize", true, PreprocNone),
	field(9, 3, TypeUbin, "YpgSize", true, PreprocNone),
	field(12, 3, TypeByte, "Reserved", true, PreprocNone),
	field(15, 0, TypeTriplet, pnameTriplets, false, PreprocNone),
}

var syntaxFieldPGP1 = Syntax{
	field(0, 3, TypeUbin, "XmOset", true, PreprocNone),
	field(3, 3, TypeUbin, "YmOset", true, PreprocNone),
}

var syntaxFieldPTD = Syntax{
	field(0, 1, TypeCode, "XPBASE", true, PreprocNone),
	field(1, 1, TypeCode, "YPBASE", true, PreprocNone),
	field(2, 2, TypeUbin, "XPUNITVL", true, PreprocNone),
	field(4, 2, TypeUbin, "YPUNITVL", true, PreprocNone),
	field(6, 3, TypeUbin, "XPEXTENT", true, PreprocNone),
	field(9, 3, TypeUbin, "YPEXTENT", true, PreprocNone),
	field(12, 2, TypeByte, "TEXTFLAGS", false, PreprocNone),
	field(14, 0, TypeByte, "TXTCONDS", false, PreprocNone),
}

var syntaxFieldPTD1 = Syntax{
	field(0, 1, TypeCode, "XptBase", true, PreprocNone),
	field(1, 1, TypeCode, "YptBase", true, PreprocNone),
	field(2, 2, TypeUbin, "XptUnits", true, PreprocNone),
	field(4, 2, TypeUbin, "YptUnits", true, PreprocNone),
	field(6, 2, TypeUbin, "XptSize", true, PreprocNone),
	field(8, 2, TypeUbin, "YptSize", true, PreprocNone),
	field(10, 2, TypeByte, "Reserved", false, PreprocNone),
}

var syntaxFieldPTX = Syntax{
	field(0, 0, TypePtoca, "PTOCAdat", false, PreprocNone),
}

var syntaxFieldTLE = Syntax{
	field(0, 0, TypeTriplet, pnameTriplets, true, PreprocNone),
}

// StructuredFieldType names a structured field and points at its syntax.
type StructuredFieldType struct {
	Abbreviation string
	Name         string
	Syntax       Syntax
}

// SFTypes is the static catalogue of every structured field this package
// understands, keyed by SFTypeID. A field not present here is decoded with
// syntaxFieldRaw when the caller's Config allows unknown fields.
var SFTypes = map[uint32]StructuredFieldType{
	SFBAG:  {"BAG", "Begin Active Environment Group", syntaxFieldBAG},
	SFBDG:  {"BDG", "Begin Document Environment Group", syntaxFieldBDG},
	SFBDI:  {"BDI", "Begin Document Index", syntaxFieldBDI},
	SFBDT:  {"BDT", "Begin Document", syntaxFieldBDT},
	SFBFG:  {"BFG", "Begin Form Environment Group", syntaxFieldBFG},
	SFBFM:  {"BFM", "Begin Form Map", syntaxFieldBFM},
	SFBMM:  {"BMM", "Begin Medium Map", syntaxFieldBMM},
	SFBNG:  {"BNG", "Begin Named Page Group", syntaxFieldBNG},
	SFBPG:  {"BPG", "Begin Page", syntaxFieldBPG},
	SFBPT:  {"BPT", "Begin Presentation Text Object", syntaxFieldBPT},
	SFBRG:  {"BRG", "Begin Resource Group", syntaxFieldBRG},
	SFBRS:  {"BRS", "Begin Resource", syntaxFieldBRS},
	SFCTC:  {"CTC", "Composed Text Control", syntaxFieldCTC},
	SFEAG:  {"EAG", "End Active Environment Group", syntaxFieldEAG},
	SFEDG:  {"EDG", "End Document Environment Group", syntaxFieldEDG},
	SFEDI:  {"EDI", "End Document Index", syntaxFieldEDI},
	SFEDT:  {"EDT", "End Document", syntaxFieldEDT},
	SFEFG:  {"EFG", "End Form Environment Group", syntaxFieldEFG},
	SFEFM:  {"EFM", "End Form Map", syntaxFieldEFM},
	SFEMM:  {"EMM", "End Medium Map", syntaxFieldEMM},
	SFENG:  {"ENG", "End Named Page Group", syntaxFieldENG},
	SFEPG:  {"EPG", "End Page", syntaxFieldEPG},
	SFEPT:  {"EPT", "End Presentation Text Object", syntaxFieldEPT},
	SFERG:  {"ERG", "End Resource Group", syntaxFieldERG},
	SFERS:  {"ERS", "End Resource", syntaxFieldERS},
	SFIEL:  {"IEL", "Index Element", syntaxFieldIEL},
	SFIPO:  {"IPO", "Include Page Overlay", syntaxFieldIPO},
	SFIPS:  {"IPS", "Include Page Segment", syntaxFieldIPS},
	SFMCC:  {"MCC", "Medium Copy Count", syntaxFieldMCC},
	SFMCF:  {"MCF", "Map Coded Font Format 2", syntaxFieldMCF},
	SFMCF1: {"MCF-1", "Map Coded Font Format 1", syntaxFieldMCF1},
	SFMDD:  {"MDD", "Medium Descriptor", syntaxFieldMDD},
	SFMMC:  {"MMC", "Medium Modification Control", syntaxFieldMMC},
	SFMPO:  {"MPO", "Map Page Overlay", syntaxFieldMPO},
	SFNOP:  {"NOP", "No Operation", syntaxFieldNOP},
	SFPGD:  {"PGD", "Page Descriptor", syntaxFieldPGD},
	SFPGP1: {"PGP-1", "Page Position Format 1", syntaxFieldPGP1},
	SFPTD:  {"PTD", "Presentation Text Data Descriptor Format 2", syntaxFieldPTD},
	SFPTD1: {"PTD-1", "Presentation Text Data Descriptor Format 1", syntaxFieldPTD1},
	SFPTX:  {"PTX", "Presentation Text Data", syntaxFieldPTX},
	SFTLE:  {"TLE", "Tag Logical Element", syntaxFieldTLE},
}
