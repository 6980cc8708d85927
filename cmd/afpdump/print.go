// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdneale/go-afp/afp"
)

// printLine writes one line of output indented by the given number of
// spaces.
func printLine(out io.Writer, indent int, text string) {
	fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", indent), text)
}

// printStructuredField writes a full decoded structured field: its length,
// type ID (with abbreviation and name when known), flag byte, any extension
// data, and the remaining field-specific parameters.
func printStructuredField(out io.Writer, rec *afp.Record) {
	sfLength, _ := rec.Uint("SFLength")
	printLine(out, 4, fmt.Sprintf("SFLength: %d", sfLength))

	sfTypeID, _ := rec.Uint("SFTypeID")
	description := ""
	if t, known := afp.SFTypes[uint32(sfTypeID)]; known {
		description = fmt.Sprintf(" (%s %s)", t.Abbreviation, t.Name)
	}
	printLine(out, 4, fmt.Sprintf("SFTypeID: 0x%06X%s", sfTypeID, description))

	flagByte, _ := rec.Byte("FlagByte")
	printLine(out, 4, fmt.Sprintf("FlagByte: 0x%02X (extension=%v, segmented=%v)",
		flagByte, afp.FlagExtension(flagByte), afp.FlagSegmented(flagByte)))

	ignore := map[string]bool{
		"SFLength": true, "SFTypeID": true, "FlagByte": true, "Reserved": true,
	}
	if !afp.FlagExtension(flagByte) {
		ignore["ExtLength"] = true
		ignore["ExtData"] = true
	}
	printParams(out, rec, ignore, 4)

	for _, e := range rec.Exceptions {
		printLine(out, 4, fmt.Sprintf("EXCEPTION 0x%02X: %s", e.Code, e.Message))
	}
}

// printParams writes every parameter of rec not named in ignore, recursing
// into the nested record lists a Triplets, RepeatingGroup or PTOCAdat
// parameter carries.
func printParams(out io.Writer, rec *afp.Record, ignore map[string]bool, indent int) {
	for _, name := range rec.Keys() {
		if ignore[name] {
			continue
		}
		switch name {
		case "Triplets":
			printTriplets(out, rec, indent)
		case "RepeatingGroup":
			printRepeatingGroup(out, rec, indent)
		case "PTOCAdat":
			printPtoca(out, rec, indent)
		default:
			v, _ := rec.Value(name)
			printLine(out, indent, fmt.Sprintf("%s: %s", name, formatValue(v)))
		}
	}
}

func printTriplets(out io.Writer, rec *afp.Record, indent int) {
	printLine(out, indent, "Triplets:")
	triplets, _ := rec.Records("Triplets")
	for i, t := range triplets {
		printLine(out, indent+4, fmt.Sprintf("__Triplet %d__", i+1))

		tlength, _ := t.Uint("Tlength")
		printLine(out, indent+4, fmt.Sprintf("Tlength: %d", tlength))

		tid, _ := t.Uint("Tid")
		description := ""
		if tt, known := afp.TripletTypes[byte(tid)]; known {
			description = fmt.Sprintf(" (%s)", tt.Name)
		}
		printLine(out, indent+4, fmt.Sprintf("Tid: 0x%02X%s", tid, description))

		printParams(out, t, map[string]bool{"Tlength": true, "Tid": true}, indent+4)
	}
}

func printRepeatingGroup(out io.Writer, rec *afp.Record, indent int) {
	printLine(out, indent, "RepeatingGroup:")
	groups, _ := rec.Records("RepeatingGroup")
	for i, g := range groups {
		printLine(out, indent+4, fmt.Sprintf("__Group %d__", i+1))
		printParams(out, g, nil, indent+4)
	}
}

func printPtoca(out io.Writer, rec *afp.Record, indent int) {
	printLine(out, indent, "PTOCAdat:")
	fns, _ := rec.Records("PTOCAdat")
	for i, fn := range fns {
		printLine(out, indent+4, fmt.Sprintf("__Function %d__", i+1))

		length, _ := fn.Uint("LENGTH")
		printLine(out, indent+4, fmt.Sprintf("LENGTH: %d", length))

		typ, _ := fn.Uint("TYPE")
		description := ""
		if f, known := afp.Functions[byte(typ)]; known {
			description = fmt.Sprintf(" (%s %s)", f.Abbreviation, f.Name)
		}
		printLine(out, indent+4, fmt.Sprintf("TYPE: 0x%02X%s", typ, description))

		printParams(out, fn, map[string]bool{"LENGTH": true, "TYPE": true}, indent+4)
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case uint64:
		return fmt.Sprintf("%d", t)
	case int64:
		return fmt.Sprintf("%d", t)
	case byte:
		return fmt.Sprintf("0x%02X", t)
	case []byte:
		return fmt.Sprintf("%X", t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
