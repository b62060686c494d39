// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vectortree/vtreport/benchname"
)

type row struct {
	name  string
	iters int
	time  float64
}

func addAll(t *testing.T, g *Grouper, rows []row) {
	t.Helper()
	for _, r := range rows {
		key, _, err := benchname.Parse(r.name + "/0")
		if err != nil {
			t.Fatalf("bad test row %q: %v", r.name, err)
		}
		g.Add(key, r.iters, r.time)
	}
}

func TestGroups(t *testing.T) {
	g := NewGrouper()
	addAll(t, g, []row{
		{"emplace_back__type_small__BUFFER_SIZE_1__type_VT", 32, 1.0},
		{"emplace_back__type_small__BUFFER_SIZE_1__type_std", 32, 0.5},
		{"emplace_back__type_small__BUFFER_SIZE_1__type_VT", 8, 0.2},
		{"pop_back__type_small__BUFFER_SIZE_1__type_VT", 32, 2.0},
	})
	if g.Len() != 4 {
		t.Errorf("Len = %d, want 4", g.Len())
	}

	groups := g.Groups()
	want := []Group{
		{"emplace_back", "type_small", "BUFFER_SIZE_1", []Series{
			{"type_VT", []Point{{8, 0.2}, {32, 1.0}}},
			{"type_std", []Point{{32, 0.5}}},
		}},
		{"pop_back", "type_small", "BUFFER_SIZE_1", []Series{
			{"type_VT", []Point{{32, 2.0}}},
		}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("Groups = %+v, want %+v", groups, want)
	}
}

func TestGroupsOneFigurePerTriple(t *testing.T) {
	g := NewGrouper()
	rows := []row{
		{"traversal__type_large__BUFFER_SIZE_3__type_VT", 1, 1},
		{"traversal__type_large__BUFFER_SIZE_3__type_std", 1, 1},
		{"traversal__type_large__BUFFER_SIZE_2__type_VT", 1, 1},
		{"traversal__type_small__BUFFER_SIZE_3__type_VT", 1, 1},
		{"pop_front__type_large__BUFFER_SIZE_3__type_VT", 1, 1},
	}
	addAll(t, g, rows)
	// One group per distinct (operation, object, size tier) triple.
	if got := len(g.Groups()); got != 4 {
		t.Errorf("got %d groups, want 4", got)
	}
}

func TestGroupsOrderIsInputOrderIndependent(t *testing.T) {
	rows := []row{
		{"emplace_back__type_small__BUFFER_SIZE_1__type_VT", 8, 0.2},
		{"emplace_back__type_small__BUFFER_SIZE_1__type_VT", 32, 1.0},
		{"emplace_back__type_large__BUFFER_SIZE_2__type_std", 256, 3.0},
		{"pop_front__type_small__BUFFER_SIZE_3__type_persistent", 4096, 9.5},
		{"pop_back__type_small__BUFFER_SIZE_1__type_VT", 16, 0.4},
		{"traversal__type_large__BUFFER_SIZE_1__type_std", 32, 0.1},
		{"emplace_back__type_large__BUFFER_SIZE_2__type_VT", 256, 2.0},
	}

	g := NewGrouper()
	addAll(t, g, rows)
	want := g.Groups()

	// Any permutation of the same row set must produce identical
	// group, series, and point ordering.
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]row(nil), rows...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		g := NewGrouper()
		addAll(t, g, shuffled)
		if got := g.Groups(); !reflect.DeepEqual(got, want) {
			t.Fatalf("trial %d: permuted input changed output:\ngot  %+v\nwant %+v", trial, got, want)
		}
	}
}

func TestGroupsDuplicatePointsRetained(t *testing.T) {
	g := NewGrouper()
	addAll(t, g, []row{
		{"emplace_back__type_small__BUFFER_SIZE_1__type_VT", 32, 1.0},
		{"emplace_back__type_small__BUFFER_SIZE_1__type_VT", 32, 1.5},
		{"emplace_back__type_small__BUFFER_SIZE_1__type_VT", 8, 0.2},
	})
	groups := g.Groups()
	if len(groups) != 1 || len(groups[0].Series) != 1 {
		t.Fatalf("unexpected shape %+v", groups)
	}
	// No deduplication or averaging; equal iteration counts keep
	// their Add order after the stable sort.
	want := []Point{{8, 0.2}, {32, 1.0}, {32, 1.5}}
	if got := groups[0].Series[0].Points; !reflect.DeepEqual(got, want) {
		t.Errorf("points = %+v, want %+v", got, want)
	}
}

func TestGroupsPointsNonDecreasing(t *testing.T) {
	g := NewGrouper()
	addAll(t, g, []row{
		{"pop_back__type_large__BUFFER_SIZE_2__type_VT", 1024, 5},
		{"pop_back__type_large__BUFFER_SIZE_2__type_VT", 64, 1},
		{"pop_back__type_large__BUFFER_SIZE_2__type_VT", 256, 2},
		{"pop_back__type_large__BUFFER_SIZE_2__type_VT", 64, 1.1},
	})
	for _, grp := range g.Groups() {
		for _, s := range grp.Series {
			for i := 1; i < len(s.Points); i++ {
				if s.Points[i].Iters < s.Points[i-1].Iters {
					t.Errorf("series %s: points not non-decreasing at %d: %+v", s.Container, i, s.Points)
				}
			}
		}
	}
}

func TestGroupsEmpty(t *testing.T) {
	g := NewGrouper()
	if groups := g.Groups(); len(groups) != 0 {
		t.Errorf("Groups on empty Grouper = %+v, want none", groups)
	}
}
