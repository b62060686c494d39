// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab reads the CSV measurement table emitted by the
// VectorTree benchmark harness.
//
// The table must carry a header row naming at least the "name" and
// "real_time" columns. Each data row contributes one measurement: an
// encoded name in the benchname wire format and a raw timing in
// nanoseconds. The reader is strict by design: the first row that
// fails to decode stops the scan and surfaces a positioned error,
// because a silently dropped row would corrupt report completeness
// with no observable symptom.
package benchtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vectortree/vtreport/benchname"
)

// ErrEmptyInput reports a measurement table with zero data rows.
// An empty document is not a meaningful report, so callers treat
// this as fatal.
var ErrEmptyInput = errors.New("input table has no measurement rows")

// A Result is one decoded measurement row.
type Result struct {
	// Key is the decoded test dimensions of this measurement.
	Key benchname.Key

	// Iters is the iteration count from the name's "/N" suffix.
	// This is the benchmark argument (the x-axis value), not the
	// harness's sampling repeat count.
	Iters int

	// RealTime is the raw timing in nanoseconds, exactly as read.
	RealTime float64

	fileName string
	line     int
}

// Pos returns the file name and line number this Result was read from.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// A SyntaxError reports a malformed row at a particular line of a
// measurement table.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
	Err      error // non-nil if the row's name failed to decode
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: %v", e.FileName, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// A Reader reads a measurement table.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next row, Result for the current row, and Err once Scan returns
// false. The Result is reused between rows; callers must copy
// anything they need to retain.
type Reader struct {
	cr       *csv.Reader
	fileName string
	line     int
	err      error

	sawHeader bool
	nameCol   int
	timeCol   int

	result Result
}

// NewReader constructs a reader to parse the measurement table from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{cr: cr, fileName: fileName}
}

func (r *Reader) newSyntaxError(msg string, err error) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg, err}
}

// Scan advances the reader to the next measurement row and reports
// whether one is available. It stops at the first malformed row.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for {
		rec, err := r.cr.Read()
		if err == io.EOF {
			return false
		}
		r.line++
		if err != nil {
			r.err = err
			return false
		}
		if !r.sawHeader {
			if r.err = r.parseHeader(rec); r.err != nil {
				return false
			}
			continue
		}
		if len(rec) <= r.nameCol || len(rec) <= r.timeCol {
			r.err = r.newSyntaxError(fmt.Sprintf("row has %d columns, header has more", len(rec)), nil)
			return false
		}

		name := rec[r.nameCol]
		key, iters, err := benchname.Parse(name)
		if err != nil {
			r.err = r.newSyntaxError("", err)
			return false
		}
		time, err := strconv.ParseFloat(strings.TrimSpace(rec[r.timeCol]), 64)
		if err != nil {
			r.err = r.newSyntaxError(fmt.Sprintf("non-numeric real_time %q", rec[r.timeCol]), nil)
			return false
		}

		r.result = Result{Key: key, Iters: iters, RealTime: time, fileName: r.fileName, line: r.line}
		return true
	}
}

// parseHeader locates the name and real_time columns.
func (r *Reader) parseHeader(rec []string) error {
	r.nameCol, r.timeCol = -1, -1
	for i, col := range rec {
		switch strings.TrimSpace(col) {
		case "name":
			r.nameCol = i
		case "real_time":
			r.timeCol = i
		}
	}
	if r.nameCol < 0 {
		return r.newSyntaxError("header is missing a \"name\" column", nil)
	}
	if r.timeCol < 0 {
		return r.newSyntaxError("header is missing a \"real_time\" column", nil)
	}
	r.sawHeader = true
	return nil
}

// Result returns the current measurement row. The returned Result is
// only valid until the next call to Scan.
func (r *Reader) Result() *Result {
	return &r.result
}

// Err returns the first error encountered by the Reader, other than
// io.EOF.
func (r *Reader) Err() error {
	return r.err
}
