// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"strings"
	"testing"

	"github.com/vectortree/vtreport/benchname"
)

const sampleTable = `name,iterations,real_time,cpu_time,time_unit
BM__emplace_back__type_small__BUFFER_SIZE_1__type_VT/32,1000,1000,990,ns
BM__emplace_back__type_small__BUFFER_SIZE_1__type_std/32,1000,500,495,ns
pop_back__type_large__BUFFER_SIZE_2__type_persistent/1024,10,123456.5,123000,ns
`

func readAll(t *testing.T, input string) ([]Result, error) {
	t.Helper()
	r := NewReader(strings.NewReader(input), "test.csv")
	var results []Result
	for r.Scan() {
		results = append(results, *r.Result())
	}
	return results, r.Err()
}

func TestReader(t *testing.T) {
	results, err := readAll(t, sampleTable)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []struct {
		key  benchname.Key
		iter int
		time float64
		line int
	}{
		{benchname.Key{Operation: "emplace_back", Object: "type_small", SizeTier: "BUFFER_SIZE_1", Container: "type_VT"}, 32, 1000, 2},
		{benchname.Key{Operation: "emplace_back", Object: "type_small", SizeTier: "BUFFER_SIZE_1", Container: "type_std"}, 32, 500, 3},
		{benchname.Key{Operation: "pop_back", Object: "type_large", SizeTier: "BUFFER_SIZE_2", Container: "type_persistent"}, 1024, 123456.5, 4},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d rows, want %d", len(results), len(want))
	}
	for i, w := range want {
		r := results[i]
		if r.Key != w.key || r.Iters != w.iter || r.RealTime != w.time {
			t.Errorf("row %d = %+v, want %+v", i, r, w)
		}
		if file, line := r.Pos(); file != "test.csv" || line != w.line {
			t.Errorf("row %d at %s:%d, want test.csv:%d", i, file, line, w.line)
		}
	}
}

func TestReaderMalformedName(t *testing.T) {
	input := `name,real_time
BM__emplace_back__type_small__BUFFER_SIZE_1__type_VT/32,1000
not_a_benchmark_name,500
BM__pop_back__type_small__BUFFER_SIZE_1__type_VT/32,250
`
	results, err := readAll(t, input)
	// The scan must stop at the malformed row, not skip it.
	if len(results) != 1 {
		t.Errorf("got %d rows before the error, want 1", len(results))
	}
	if err == nil {
		t.Fatal("want error, got none")
	}
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("error %v is not a *SyntaxError", err)
	}
	if serr.FileName != "test.csv" || serr.Line != 3 {
		t.Errorf("error at %s:%d, want test.csv:3", serr.FileName, serr.Line)
	}
	var merr *benchname.MalformedIdentifierError
	if !errors.As(err, &merr) {
		t.Errorf("error %v does not wrap a *MalformedIdentifierError", err)
	}
}

func TestReaderBadTime(t *testing.T) {
	input := `name,real_time
BM__emplace_back__type_small__BUFFER_SIZE_1__type_VT/32,fast
`
	_, err := readAll(t, input)
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SyntaxError, got %v", err)
	}
	if !strings.Contains(serr.Msg, "real_time") {
		t.Errorf("error %v does not mention real_time", serr)
	}
}

func TestReaderMissingColumns(t *testing.T) {
	for _, input := range []string{
		"iterations,real_time\n",
		"name,iterations\n",
	} {
		_, err := readAll(t, input)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("header %q: want *SyntaxError, got %v", input, err)
		}
	}
}

func TestReaderEmpty(t *testing.T) {
	// A header-only table scans cleanly; detecting EmptyInput is the
	// driver's job.
	results, err := readAll(t, "name,real_time\n")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d rows, want 0", len(results))
	}
}
