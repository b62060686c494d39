// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchgroup groups decoded measurements into the ordered
// series consumed by the report assembler.
//
// Measurements group by (operation, object, size tier); within a
// group, one series per container implementation; within a series,
// points order by ascending iteration count. All three levels are
// sorted, never first-seen: figure numbers in the final report derive
// from group order, so the same input set must produce the same
// ordering regardless of row permutation.
package benchgroup

import (
	"sort"

	"github.com/vectortree/vtreport/benchname"
)

// A Point is one measurement: the benchmark's iteration count and
// its timing in microseconds.
type Point struct {
	Iters int
	Time  float64
}

// A Series is the ordered measurements of one container
// implementation within a group.
type Series struct {
	Container string
	Points    []Point
}

// A Group is the unit of aggregation: all measurements sharing an
// operation, object type, and size tier, split into one series per
// container. Each Group becomes one figure page.
type Group struct {
	Operation string
	Object    string
	SizeTier  string
	Series    []Series
}

// Title returns the group's three dimensions in the form used by
// figure titles.
func (g *Group) Title() string {
	return g.Operation + " | " + g.Object + " | " + g.SizeTier
}

type groupKey struct {
	operation, object, sizeTier string
}

// A Grouper accumulates decoded measurements and produces sorted
// Groups. The zero value is not ready for use; call NewGrouper.
type Grouper struct {
	groups map[groupKey]map[string][]Point
	n      int
}

// NewGrouper returns an empty Grouper.
func NewGrouper() *Grouper {
	return &Grouper{groups: make(map[groupKey]map[string][]Point)}
}

// Add records one measurement. time must already be normalized to
// microseconds. Duplicate (key, container, iteration) measurements
// are all retained, in Add order; the pipeline performs no
// statistical smoothing, so collapsing them would silently hide
// repeated rows.
func (g *Grouper) Add(key benchname.Key, iters int, time float64) {
	gk := groupKey{key.Operation, key.Object, key.SizeTier}
	series, ok := g.groups[gk]
	if !ok {
		series = make(map[string][]Point)
		g.groups[gk] = series
	}
	series[key.Container] = append(series[key.Container], Point{iters, time})
	g.n++
}

// Len returns the number of measurements added so far.
func (g *Grouper) Len() int {
	return g.n
}

// Groups returns the accumulated measurements as a sorted slice of
// Groups: groups lexicographic by (operation, object, size tier),
// series alphabetical by container, points ascending by iteration
// count with equal counts kept in Add order. The result is a pure
// function of the added measurement set.
func (g *Grouper) Groups() []Group {
	keys := make([]groupKey, 0, len(g.groups))
	for gk := range g.groups {
		keys = append(keys, gk)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.operation != b.operation {
			return a.operation < b.operation
		}
		if a.object != b.object {
			return a.object < b.object
		}
		return a.sizeTier < b.sizeTier
	})

	groups := make([]Group, 0, len(keys))
	for _, gk := range keys {
		byContainer := g.groups[gk]
		containers := make([]string, 0, len(byContainer))
		for c := range byContainer {
			containers = append(containers, c)
		}
		sort.Strings(containers)

		series := make([]Series, 0, len(containers))
		for _, c := range containers {
			points := append([]Point(nil), byContainer[c]...)
			sort.SliceStable(points, func(i, j int) bool {
				return points[i].Iters < points[j].Iters
			})
			series = append(series, Series{Container: c, Points: points})
		}
		groups = append(groups, Group{gk.operation, gk.object, gk.sizeTier, series})
	}
	return groups
}
