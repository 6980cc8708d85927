// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Command afpdump reads one or more AFP files and writes a human-readable
// dump of their structured fields.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/mdneale/go-afp/afp"
	"github.com/mdneale/go-afp/alog"
)

func main() {
	var (
		allowUnknownFields    = pflag.Bool("allow-unknown-fields", false, "allow structured fields not supported by the parser in the output")
		allowUnknownFunctions = pflag.Bool("allow-unknown-functions", false, "allow functions not supported by the parser in the output")
		allowUnknownTriplets  = pflag.Bool("allow-unknown-triplets", false, "allow triplets not supported by the parser in the output")
		debug                 = pflag.Bool("debug", false, "print debugging information to stderr")
		outfile               = pflag.StringP("outfile", "o", "", "the filename for the output (defaults to stdout)")
		strict                = pflag.Bool("strict", false, "enable strict parsing - missing mandatory fields are not allowed")
		warn                  = pflag.Bool("warn", false, "print warning information to stderr")
	)
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
		fmt.Fprintf(os.Stderr, "%s: error: %s\n", progName(), err)
		os.Exit(1)
	}

	cfg := afp.Config{
		AllowUnknownFields:    *allowUnknownFields,
		AllowUnknownTriplets:  *allowUnknownTriplets,
		AllowUnknownFunctions: *allowUnknownFunctions,
		Strict:                *strict,
	}
	if *debug {
		cfg.Logger = newLogger(charmlog.DebugLevel)
	} else if *warn {
		cfg.Logger = newLogger(charmlog.WarnLevel)
	}

	out := os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %s\n", progName(), err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := dumpFiles(files, out, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %s\n", progName(), err)
		os.Exit(1)
	}
}

func progName() string {
	return "afpdump"
}

// expandGlobs resolves shell-style globs (including "**") across the given
// patterns, in addition to whatever expansion the invoking shell already
// performed; a pattern matching nothing is passed through literally so a
// bad filename still surfaces the usual "file not found" error.
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

func dumpFiles(files []string, out io.Writer, cfg afp.Config) error {
	for _, filename := range files {
		if len(files) > 1 {
			printLine(out, 0, fmt.Sprintf("__File %s__", filename))
		}
		if err := dumpFile(filename, out, cfg); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(filename string, out io.Writer, cfg afp.Config) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	stream := afp.NewStream(f, cfg)
	fieldNo := 1
	for {
		record, err := stream.Next()
		if err != nil {
			return err
		}
		if record == nil {
			return nil
		}
		printLine(out, 0, fmt.Sprintf("__Structured Field %d__", fieldNo))
		printStructuredField(out, record)
		fieldNo++
	}
}

// newLogger builds an alog.Alog that writes to stderr at the given level,
// enabled (the zero-value Alog stays silent).
func newLogger(level charmlog.Level) alog.Alog {
	a := alog.New(level)
	a.LogMode(true)
	return a
}
