// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport assembles the paginated benchmark report.
//
// A report is a single write-once Document: narrative pages first, in
// the order the prose was supplied, then one figure page per
// aggregated group, numbered from 1 in group order. The narrative
// prose cross-references figures by number, so page emission order is
// part of the report's contract, not a layout detail.
package benchreport

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/vectortree/vtreport/benchgroup"
)

// Title is the report-level banner carried by the first narrative
// page.
const Title = "Benchmark Results Report"

// Page dimensions. Landscape, matching the harness's original report
// geometry.
const (
	pageWidth  = 6.4 * vg.Inch
	pageHeight = 4.8 * vg.Inch
)

type page struct {
	plot *plot.Plot

	// figure is the 1-based figure number, or 0 for a narrative page.
	figure int
	group  benchgroup.Group

	// text is the narrative prose, retained for alternate renderings.
	text string
}

// A Document is an ordered sequence of report pages. Pages accumulate
// through AddNarrativePage and AddFigurePage and are never revisited
// or reordered; WriteTo seals the document.
type Document struct {
	pages   []page
	figures int
	sealed  bool
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return new(Document)
}

// Build assembles a complete Document: one page per narrative block,
// then one figure page per group in the given order.
func Build(narratives []string, groups []benchgroup.Group) (*Document, error) {
	d := NewDocument()
	for _, text := range narratives {
		d.AddNarrativePage(text)
	}
	for _, g := range groups {
		if err := d.AddFigurePage(g); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// AddNarrativePage appends a page carrying the given prose verbatim.
// If it is the document's first page, it also carries the report
// title banner.
func (d *Document) AddNarrativePage(text string) {
	d.mustBeOpen()
	p := plot.New()
	p.HideAxes()
	if len(d.pages) == 0 {
		p.Title.Text = Title
		p.Title.TextStyle.Font.Size = vg.Points(18)
		p.Title.Padding = vg.Points(8)
	}
	p.Add(newTextBlock(text))
	d.pages = append(d.pages, page{plot: p, text: text})
}

// AddFigurePage appends a chart page rendering one group, assigning
// it the next figure number. One line series is drawn per container,
// labeled by container name.
func (d *Document) AddFigurePage(g benchgroup.Group) error {
	d.mustBeOpen()
	n := d.figures + 1
	p, err := newFigurePlot(n, g)
	if err != nil {
		return err
	}
	d.figures = n
	d.pages = append(d.pages, page{plot: p, figure: n, group: g})
	return nil
}

// Len returns the number of pages in the document.
func (d *Document) Len() int {
	return len(d.pages)
}

// Figures returns the number of figure pages in the document.
func (d *Document) Figures() int {
	return d.figures
}

// WriteTo renders every page into a single PDF and writes it to w.
// Writing seals the document: it is a terminal action, and the
// document must not be modified or written again afterwards.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.sealed {
		return 0, errors.New("benchreport: document already finalized")
	}
	if len(d.pages) == 0 {
		return 0, errors.New("benchreport: document has no pages")
	}
	c := vgpdf.New(pageWidth, pageHeight)
	c.EmbedFonts(true)
	for i, pg := range d.pages {
		if i > 0 {
			c.NextPage()
		}
		pg.plot.Draw(draw.New(c))
	}
	d.sealed = true
	return c.WriteTo(w)
}

// mustBeOpen panics if the document has been finalized. Appending to
// a sealed document is a programmer error, not an input error.
func (d *Document) mustBeOpen() {
	if d.sealed {
		panic("benchreport: page added to a finalized document")
	}
}

// figureFileName names the standalone image rendering of a figure
// page, e.g. "figure_03_pop_back__type_small__BUFFER_SIZE_1.png".
func figureFileName(n int, g benchgroup.Group) string {
	return fmt.Sprintf("figure_%02d_%s__%s__%s.png", n, g.Operation, g.Object, g.SizeTier)
}
