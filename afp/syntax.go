// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package afp

// parseSyntax walks syntax against data, producing an ordered record of
// decoded parameters. result may be nil, in which case a fresh Record is
// allocated; callers that want an SFI parse and a body parse to share one
// set of uniquification counters (see readStructuredField) pass the same
// Record to both calls.
//
// It returns the record, the number of bytes of data actually consumed (data
// itself is truncated in place when a this-group-length parameter is seen),
// and a fatal error. A missing mandatory parameter or a short read is only
// fatal when cfg.Strict is set; otherwise it is recorded as an Exception on
// result. After a short read the walk stops at that parameter without an
// error; after a missing mandatory parameter it goes on to the next one.
func parseSyntax(data []byte, syntax Syntax, cfg Config, result *Record) (*Record, int, error) {
	if result == nil {
		result = newRecord()
	}

	nextGroupLength := 0
	nextFieldOffset := 0

	for _, el := range syntax {
		if el.Param == nil {
			groups, offset, err := parseRepeatingGroup(data, el.Group, cfg, nextFieldOffset, nextGroupLength)
			if err != nil {
				return result, offset, err
			}
			if len(groups) > 0 {
				result.set(pnameRepeatGroup, groups)
			}
			nextGroupLength = 0
			nextFieldOffset = offset
			continue
		}

		param := el.Param

		switch param.Preproc {
		case PreprocSuppressIfNoExtension:
			flagByte, _ := result.Byte(pnameFlagByte)
			if !sfiExtFlag(flagByte) {
				nextFieldOffset = param.Offset + param.Length
				continue
			}
		case PreprocSetExtensionLength:
			flagByte, _ := result.Byte(pnameFlagByte)
			if !sfiExtFlag(flagByte) {
				nextFieldOffset = param.Offset + param.Length
				continue
			}
			extLength, present := result.Uint(pnameExtLength)
			if present && extLength <= 1 {
				// No extension data follows ExtLength: an empty ExtData.
				result.set(param.Name, []byte{})
				nextFieldOffset = param.Offset
				continue
			}
			extended := *param
			extended.Length = int(extLength) - 1
			param = &extended
		}

		value, ok, derr := decodeParameter(data, param, cfg)
		if derr != nil {
			if isKind(derr, KindEndOfStream) {
				var convErr *ParseError
				if param.Mandatory {
					convErr = errRequiredParameterMissing(param.Name)
				} else {
					convErr = errIncompleteParameter(param.Name)
				}
				if cfg.Strict {
					return result, nextFieldOffset, convErr
				}
				result.addException(convErr)
				cfg.Logger.Warn("parameter %s: %s", param.Name, convErr.Message)
				return result, nextFieldOffset, nil
			}
			return result, nextFieldOffset, derr
		}

		if param.Type == TypeUbin && ok {
			switch param.Preproc {
			case PreprocNextGroupLength:
				v := value.(uint64)
				if v == 0 {
					rgErr := errRepeatingGroup("next group length is zero for %s", param.Name)
					if cfg.Strict {
						return result, nextFieldOffset, rgErr
					}
					result.addException(rgErr)
					cfg.Logger.Warn("%s", rgErr.Message)
				} else {
					nextGroupLength = int(v)
				}
			case PreprocThisGroupLength:
				v := int(value.(uint64))
				if v == 0 || v > len(data) {
					rgErr := errRepeatingGroup("this group length %d invalid for %s", v, param.Name)
					if cfg.Strict {
						return result, nextFieldOffset, rgErr
					}
					result.addException(rgErr)
					cfg.Logger.Warn("%s", rgErr.Message)
				} else {
					data = data[:v]
				}
			}
		}

		if ok {
			result.set(param.Name, value)
			cfg.Logger.Debug("%s = %v", param.Name, value)
		} else if param.Mandatory {
			missErr := errRequiredParameterMissing(param.Name)
			if cfg.Strict {
				return result, nextFieldOffset, missErr
			}
			result.addException(missErr)
			cfg.Logger.Warn("%s", missErr.Message)
		}

		nextFieldOffset = param.Offset + param.Length
	}

	return result, len(data), nil
}

// decodeParameter dispatches on a parameter's data type and reports whether
// a usable value was produced. ok is false (with a nil error) when no data
// was available at this offset; derr is set when the read was short, or when
// a nested triplet/PTOCA/raw decode failed outright.
func decodeParameter(data []byte, param *Parameter, cfg Config) (value any, ok bool, derr error) {
	switch param.Type {
	case TypeCode:
		v, present, err := parseCode(data, param.Length, param.Offset)
		return v, present, err
	case TypeUbin:
		v, present, err := parseUbin(data, param.Length, param.Offset)
		return v, present, err
	case TypeSbin:
		v, present, err := parseSbin(data, param.Length, param.Offset)
		return v, present, err
	case TypeChar:
		v, present, err := parseChars(data, param.Length, param.Offset)
		return v, present, err
	case TypeByte:
		b, present, err := parseBytes(data, param.Length, param.Offset)
		if !present || err != nil {
			return nil, present, err
		}
		if param.Length == 1 && len(b) == 1 {
			return b[0], true, nil
		}
		return b, true, nil
	case TypeTriplet:
		chunk, present, err := parseBytes(data, param.Length, param.Offset)
		if !present || err != nil {
			return nil, present, err
		}
		subs, err := parseTriplets(chunk, cfg)
		if err != nil {
			return nil, false, err
		}
		return subs, len(subs) > 0, nil
	case TypePtoca:
		chunk, present, err := parseBytes(data, param.Length, param.Offset)
		if !present || err != nil {
			return nil, present, err
		}
		subs, err := parsePtoca(chunk, cfg)
		if err != nil {
			return nil, false, err
		}
		return subs, len(subs) > 0, nil
	}
	return nil, false, nil
}

// parseRepeatingGroup carves successive fixed- or self-delimited-length
// slices out of data starting at offset and parses each against groupSyntax.
// groupLength, when nonzero, was set by a preceding next-group-length
// parameter; otherwise it is derived from groupSyntax itself when every
// element of the group is a mandatory fixed-length parameter.
func parseRepeatingGroup(data []byte, groupSyntax Syntax, cfg Config, offset, groupLength int) ([]*Record, int, error) {
	if groupLength == 0 {
		groupLength = syntaxLength(groupSyntax)
	}

	var groups []*Record
	for offset < len(data) {
		var chunk []byte
		if groupLength > 0 {
			end := offset + groupLength
			if end > len(data) {
				end = len(data)
			}
			chunk = data[offset:end]
		} else {
			chunk = data[offset:]
		}
		if len(chunk) == 0 {
			break
		}

		sub, consumed, err := parseSyntax(chunk, groupSyntax, cfg, nil)
		if err != nil {
			return groups, offset, err
		}
		groups = append(groups, sub)
		if consumed <= 0 {
			break
		}
		offset += consumed
	}

	return groups, offset, nil
}

// parseTriplets decodes the TLV triplet stream occupying all of data,
// returning one Record per triplet in encounter order.
func parseTriplets(data []byte, cfg Config) ([]*Record, error) {
	var result []*Record

	p := 0
	for p < len(data) {
		if p+2 > len(data) {
			return result, errInvalidTriplet("truncated triplet header at offset %d", p)
		}
		tlength := int(data[p])
		tid := data[p+1]
		if tlength < 2 {
			return result, errInvalidTriplet("invalid triplet length %d at offset %d", tlength, p)
		}
		if p+tlength > len(data) {
			return result, errInvalidTriplet("triplet length %d exceeds remaining data at offset %d", tlength, p)
		}

		tt, known := TripletTypes[tid]
		if !known && !cfg.AllowUnknownTriplets {
			return result, errUnrecognizedTriplet(tid)
		}

		syntax := syntaxTripletRaw
		if known {
			syntax = tt.Syntax
		}

		content := data[p+2 : p+tlength]
		sub, _, err := parseSyntax(content, syntax, cfg, nil)
		if err != nil {
			return result, err
		}
		sub.set(pnameTLength, uint64(tlength))
		sub.set(pnameTID, uint64(tid))
		result = append(result, sub)

		p += tlength
	}

	return result, nil
}

// ptocaEscape is the 2-byte sequence that introduces the first (unchained)
// control sequence of a PTOCA chain.
var ptocaEscape = [2]byte{0x2B, 0xD3}

// parsePtoca decodes the PTOCA control sequence chain occupying all of
// data, returning one Record per control sequence in encounter order. A
// stream ending mid-chain (its last control sequence still marked chained)
// is fatal.
func parsePtoca(data []byte, cfg Config) ([]*Record, error) {
	var result []*Record

	p := 0
	chained := false
	for p < len(data) {
		if !chained {
			if p+2 > len(data) || data[p] != ptocaEscape[0] || data[p+1] != ptocaEscape[1] {
				return result, errInvalidControlSequence("missing 0x2BD3 escape sequence at offset %d", p)
			}
			p += 2
		}

		if p+2 > len(data) {
			return result, errInvalidControlSequence("truncated control sequence header at offset %d", p)
		}
		length := int(data[p])
		fnID := data[p+1]
		if length < 2 {
			return result, errInvalidControlSequence("invalid control sequence length %d at offset %d", length, p)
		}
		if p+length > len(data) {
			return result, errInvalidControlSequence("control sequence length %d exceeds remaining data at offset %d", length, p)
		}

		fn, known := Functions[fnID]
		if !known && !cfg.AllowUnknownFunctions {
			return result, errUnknownFunction(fnID)
		}

		syntax := syntaxFunctionRaw
		if known {
			syntax = fn.Syntax
		}

		content := data[p+2 : p+length]
		sub, _, err := parseSyntax(content, syntax, cfg, nil)
		if err != nil {
			return result, err
		}
		sub.set(pnameCSLength, uint64(length))
		sub.set(pnameCSType, uint64(fnID))
		result = append(result, sub)

		p += length
		chained = chainedFunction(fnID)
	}

	if chained {
		return result, errInvalidControlSequence("final function is chained")
	}
	return result, nil
}
