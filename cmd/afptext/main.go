// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Command afptext reads one or more AFP files and writes, for each page, the
// transparent text and rules it finds along with the inline/baseline
// position they were placed at. It does not attempt to rebuild a visual
// rendering of the page, and only tracks the subset of PTOCA functions that
// affect text placement.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/pflag"

	"github.com/mdneale/go-afp/afp"
)

// textError is returned for a stream that violates the document/page
// nesting this tool assumes (nested documents, an end without a matching
// begin, and so on).
type textError struct{ msg string }

func (e *textError) Error() string { return e.msg }

func textErrorf(format string, args ...interface{}) error {
	return &textError{fmt.Sprintf(format, args...)}
}

// context tracks where in the document/page structure the stream currently
// is, since a PTX field's PTOCA functions are only meaningful relative to
// the page they belong to.
type context struct {
	inDocument bool
	page       *page
}

// placement is one piece of content at a fixed (baseline, inline) position,
// ordered for sorted output the way a reader scans a page: top to bottom,
// then left to right.
type placement struct {
	baseline int64
	inline   int64
	fontLID  uint64
	isText   bool
	text     string
	length   int64
	width    int64
}

// page accumulates placements between a BPG and its matching EPG.
type page struct {
	inline   int64
	baseline int64
	fontLID  uint64
	content  []placement
}

func main() {
	outfile := pflag.StringP("outfile", "o", "", "the filename for the output (defaults to stdout)")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] afp-file [afp-file ...]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() < 1 {
		pflag.Usage()
		os.Exit(2)
	}

	files, err := expandGlobs(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "afptext: error: %s\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "afptext: error: %s\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := textFiles(files, out); err != nil {
		fmt.Fprintf(os.Stderr, "afptext: error: %s\n", err)
		os.Exit(1)
	}
}

func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			files = append(files, pattern)
			continue
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}

func textFiles(files []string, out io.Writer) error {
	for _, filename := range files {
		if len(files) > 1 {
			fmt.Fprintf(out, "File: %s\n", filename)
		}
		if err := textFile(filename, out); err != nil {
			return err
		}
	}
	return nil
}

// textFile decodes a single file, tolerating any structured field, triplet
// or function this package's catalogues don't recognise: the tool only
// cares about the handful of fields and functions that carry text position,
// so there is nothing gained from being strict about the rest.
func textFile(filename string, out io.Writer) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg := afp.Config{
		AllowUnknownFields:    true,
		AllowUnknownTriplets:  true,
		AllowUnknownFunctions: true,
	}

	ctx := &context{}
	stream := afp.NewStream(f, cfg)
	for {
		record, err := stream.Next()
		if err != nil {
			return err
		}
		if record == nil {
			return nil
		}
		if err := processField(record, ctx, out); err != nil {
			return err
		}
	}
}

func processField(rec *afp.Record, ctx *context, out io.Writer) error {
	sfTypeID, _ := rec.Uint("SFTypeID")
	switch uint32(sfTypeID) {
	case afp.SFBDT:
		if ctx.inDocument {
			return textErrorf("stream contains nested documents")
		}
		ctx.inDocument = true
		fmt.Fprintln(out, "================================================================================")
	case afp.SFBPG:
		if ctx.page != nil {
			return textErrorf("stream contains nested pages")
		}
		ctx.page = &page{fontLID: 0xFF}
	case afp.SFPTX:
		functions, _ := rec.Records("PTOCAdat")
		for _, fn := range functions {
			processFunction(fn, ctx.page)
		}
	case afp.SFEPG:
		if ctx.page == nil {
			return textErrorf("end page before begin")
		}
		printPage(ctx.page, out)
		ctx.page = nil
	case afp.SFEDT:
		if !ctx.inDocument {
			return textErrorf("end document before begin")
		}
		ctx.inDocument = false
		fmt.Fprintln(out, "================================================================================")
	}
	return nil
}

func processFunction(fn *afp.Record, p *page) {
	typ, _ := fn.Uint("TYPE")
	switch byte(typ) {
	case afp.FnUnchainedAMI, afp.FnChainedAMI:
		v, _ := fn.Int("DSPLCMNT")
		p.inline = v
	case afp.FnUnchainedAMB, afp.FnChainedAMB:
		v, _ := fn.Int("DSPLCMNT")
		p.baseline = v
	case afp.FnUnchainedRMI, afp.FnChainedRMI:
		v, _ := fn.Int("INCRMENT")
		p.inline += v
	case afp.FnUnchainedRMB, afp.FnChainedRMB:
		v, _ := fn.Int("INCRMENT")
		p.baseline += v
	case afp.FnUnchainedSCFL, afp.FnChainedSCFL:
		v, _ := fn.Uint("LID")
		p.fontLID = v
	case afp.FnUnchainedTRN, afp.FnChainedTRN:
		text, _ := fn.Text("TRNDATA")
		p.content = append(p.content, placement{
			baseline: p.baseline, inline: p.inline, fontLID: p.fontLID,
			isText: true, text: text,
		})
	case afp.FnUnchainedDIR, afp.FnChainedDIR:
		length, _ := fn.Int("RLENGTH")
		width, _ := fn.Int("RWIDTH")
		p.content = append(p.content, placement{
			baseline: p.baseline, inline: p.inline, fontLID: p.fontLID,
			length: length, width: width,
		})
	case afp.FnUnchainedDBR, afp.FnChainedDBR:
		length, _ := fn.Int("RLENGTH")
		width, _ := fn.Int("RWIDTH")
		p.content = append(p.content, placement{
			baseline: p.baseline, inline: p.inline, fontLID: p.fontLID,
			length: length, width: width,
		})
	}
}

func printPage(p *page, out io.Writer) {
	fmt.Fprintln(out, "--------------------------------------------------------------------------------")
	sort.SliceStable(p.content, func(i, j int) bool {
		if p.content[i].baseline != p.content[j].baseline {
			return p.content[i].baseline < p.content[j].baseline
		}
		return p.content[i].inline < p.content[j].inline
	})
	for _, c := range p.content {
		if c.isText {
			fmt.Fprintf(out, "(%4d, %4d): font=%2d, text=%s\n", c.baseline, c.inline, c.fontLID, c.text)
		} else {
			fmt.Fprintf(out, "(%4d, %4d): rule length=%5d, width=%5d\n", c.baseline, c.inline, c.length, c.width)
		}
	}
	fmt.Fprintln(out, "--------------------------------------------------------------------------------")
}
