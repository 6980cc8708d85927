// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

import "io"

// sfCarrierControl is the single legal value of a structured field's leading
// carriage control byte.
const sfCarrierControl = 0x5A

// modcaClassCode is the high byte every SFTypeID must carry.
const modcaClassCode = 0xD3

// readStructuredField reads one structured field from src: the carriage
// control byte, the 2-byte length, and the body, then decodes the
// Structured Field Introducer and the field-specific body into a single
// shared Record. It returns (nil, nil) at a clean end of stream.
func readStructuredField(src *source, cfg Config) (*Record, error) {
	control, err := src.readBytes(1)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if control[0] != sfCarrierControl {
		return nil, errInvalidStructuredField("invalid carriage control byte 0x%02X", control[0])
	}

	lengthBytes, err := src.readBytes(2)
	if err != nil {
		if err == io.EOF {
			return nil, errInvalidStructuredField("unexpected end of file while reading structured field length")
		}
		return nil, errInvalidStructuredField("%v", err)
	}
	sfLength := int(decodeUbin(lengthBytes))

	if sfLength < 2 {
		return nil, errInvalidStructuredField("invalid structured field length %d", sfLength)
	}
	body, err := src.readBytes(sfLength - 2)
	if err != nil {
		if err == io.EOF {
			return nil, errInvalidStructuredField("unexpected end of file while reading structured field body")
		}
		return nil, errInvalidStructuredField("%v", err)
	}

	result := newRecord()

	_, _, err = parseSyntax(body, syntaxSFI, cfg, result)
	if err != nil {
		return result, err
	}
	result.set(pnameSFLength, uint64(sfLength))

	sfTypeID, _ := result.Uint(pnameSFTypeID)
	if (sfTypeID>>16)&0xFF != modcaClassCode {
		return result, errUnrecognizedIdentifierCode("structured field type 0x%06X has class code 0x%02X, want 0x%02X", sfTypeID, (sfTypeID>>16)&0xFF, modcaClassCode)
	}

	flagByte, _ := result.Byte(pnameFlagByte)
	if sfiPadFlag(flagByte) {
		return result, errPaddingNotImplemented()
	}

	sfType, known := SFTypes[uint32(sfTypeID)]
	if !known && !cfg.AllowUnknownFields {
		return result, errUnrecognizedStructuredField(uint32(sfTypeID))
	}

	fieldDataStart := 6
	if sfiExtFlag(flagByte) {
		extLength, _ := result.Uint(pnameExtLength)
		fieldDataStart += int(extLength)
	}
	var fieldData []byte
	if fieldDataStart < len(body) {
		fieldData = body[fieldDataStart:]
	}

	syntax := syntaxFieldRaw
	if known {
		syntax = sfType.Syntax
	}

	_, _, err = parseSyntax(fieldData, syntax, cfg, result)
	if err != nil {
		return result, err
	}

	cfg.Logger.Debug("decoded structured field 0x%06X (%d bytes)", sfTypeID, sfLength)
	return result, nil
}
