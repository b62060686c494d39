// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Vtreport generates the VectorTree benchmark report.
//
// Usage:
//
//	vtreport [-o report.pdf] [-narrative file] [-html file] [-png dir] [results.csv]
//
// The input is the CSV table written by the VectorTree benchmark
// harness (default benchmark_results.csv). Every row's encoded name
// is decoded into its four test dimensions, timings are converted
// from nanoseconds to microseconds, and the measurements are grouped
// by (operation, object, size tier) with one plotted series per
// container implementation.
//
// The output is a single PDF: the narrative pages first, then one
// chart page per group, numbered from 1 in lexicographic group-key
// order. The run is all or nothing; a single malformed row aborts it
// with a diagnostic naming the row, and no partial document is
// written.
//
// The narrative defaults to the prose built into the binary. An
// alternate narrative file may be supplied with -narrative; blocks
// are separated by lines containing only "%%". The prose refers to
// figures by number, so a narrative written for one input set is only
// meaningful for inputs with the same set of test configurations.
//
// With -html, vtreport additionally writes a standalone HTML
// rendering of the same pages, with the figures as PNG files in a
// directory next to the HTML file. With -png, each figure is also
// written as a PNG into the given directory.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vectortree/vtreport/benchgroup"
	"github.com/vectortree/vtreport/benchreport"
	"github.com/vectortree/vtreport/benchtab"
	"github.com/vectortree/vtreport/benchunit"
)

//go:embed narrative.txt
var defaultNarrative string

// expectedNarrativeBlocks is the number of prose blocks the report
// conventionally opens with. Fewer is a degradation, not an error.
const expectedNarrativeBlocks = 6

var (
	flagOut       = flag.String("o", "report.pdf", "write the report to `file`")
	flagNarrative = flag.String("narrative", "", "read narrative blocks from `file` instead of the built-in prose")
	flagHTML      = flag.String("html", "", "also write an HTML rendering to `file`")
	flagPNG       = flag.String("png", "", "also write each figure as a PNG into `dir`")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: vtreport [options] [benchmark_results.csv]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("vtreport: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
	}
	input := "benchmark_results.csv"
	if flag.NArg() == 1 {
		input = flag.Arg(0)
	}

	groups, err := aggregate(input)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := benchreport.Build(loadNarrative(*flagNarrative), groups)
	if err != nil {
		log.Fatal(err)
	}

	if *flagPNG != "" {
		if err := doc.WritePNGs(*flagPNG); err != nil {
			log.Fatal(err)
		}
	}
	if *flagHTML != "" {
		if err := writeHTML(doc, *flagHTML); err != nil {
			log.Fatal(err)
		}
	}

	// Render fully in memory so the output file appears only once the
	// document is complete.
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*flagOut, buf.Bytes(), 0666); err != nil {
		log.Fatal(err)
	}
}

// aggregate reads the measurement table and returns the sorted
// groups. Any malformed row, and an empty table, are fatal.
func aggregate(file string) ([]benchgroup.Group, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := benchtab.NewReader(f, file)
	g := benchgroup.NewGrouper()
	for r.Scan() {
		res := r.Result()
		g.Add(res.Key, res.Iters, benchunit.NanosToMicros(res.RealTime))
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if g.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", file, benchtab.ErrEmptyInput)
	}
	return g.Groups(), nil
}

// loadNarrative returns the narrative blocks, from file if given,
// otherwise the built-in prose.
func loadNarrative(file string) []string {
	text := defaultNarrative
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}
		text = string(b)
	}
	blocks := splitNarrative(text)
	if len(blocks) < expectedNarrativeBlocks {
		log.Printf("%d narrative blocks, report convention expects %d; continuing with fewer text pages", len(blocks), expectedNarrativeBlocks)
	}
	return blocks
}

// splitNarrative splits prose into blocks on lines containing only
// "%%". Empty blocks are dropped.
func splitNarrative(text string) []string {
	var blocks []string
	var cur []string
	flush := func() {
		b := strings.Trim(strings.Join(cur, "\n"), "\n")
		if strings.TrimSpace(b) != "" {
			blocks = append(blocks, b)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "%%" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

// writeHTML writes the HTML rendering plus its figure images, which
// go into a "<name>_files" directory beside the HTML file.
func writeHTML(doc *benchreport.Document, file string) error {
	imgDir := strings.TrimSuffix(file, filepath.Ext(file)) + "_files"
	if err := doc.WritePNGs(imgDir); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := doc.FormatHTML(&buf, filepath.Base(imgDir)); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0666)
}
