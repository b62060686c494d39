// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"io"
	"path"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"

	"github.com/vectortree/vtreport/benchgroup"
	"github.com/vectortree/vtreport/benchunit"
)

var htmlTemplate = template.Must(template.New("report").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 1em auto; }
pre.narrative { white-space: pre-wrap; border-left: 3px solid #ccc; padding-left: 1em; }
section.figure { margin-top: 2em; }
section.figure img { max-width: 100%; border: 1px solid #ddd; }
p.ranges span { margin-right: 1.5em; color: #555; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Narratives -}}
<pre class="narrative">{{.}}</pre>
{{end -}}
{{range .Figures -}}
<section class="figure">
<h2>Figure {{.Num}}: {{.Title}}</h2>
<img src="{{.Img}}" alt="Figure {{.Num}}">
<p class="ranges">{{range .Ranges}}<span>{{.}}</span>{{end}}</p>
</section>
{{end -}}
</body>
</html>
`)))

type htmlFigure struct {
	Num    int
	Title  string
	Img    safehtml.URL
	Ranges []string
}

type htmlReport struct {
	Title      string
	Narratives []string
	Figures    []htmlFigure
}

// FormatHTML writes a standalone HTML rendering of the document to w.
// Figure images are referenced relative to imgDir, which should hold
// the output of WritePNGs. Page content and order are identical to
// the PDF rendering.
func (d *Document) FormatHTML(w io.Writer, imgDir string) error {
	rep := htmlReport{Title: Title}
	for _, pg := range d.pages {
		if pg.figure == 0 {
			rep.Narratives = append(rep.Narratives, pg.text)
			continue
		}
		rep.Figures = append(rep.Figures, htmlFigure{
			Num:    pg.figure,
			Title:  pg.group.Title(),
			Img:    safehtml.URLSanitized(path.Join(imgDir, figureFileName(pg.figure, pg.group))),
			Ranges: seriesRanges(pg.group),
		})
	}
	return htmlTemplate.Execute(w, rep)
}

// seriesRanges summarizes each container's time span, with a common
// scale per series so the two endpoints compare at a glance.
func seriesRanges(g benchgroup.Group) []string {
	var out []string
	for _, s := range g.Series {
		if len(s.Points) == 0 {
			continue
		}
		min, max := s.Points[0].Time, s.Points[0].Time
		for _, pt := range s.Points[1:] {
			if pt.Time < min {
				min = pt.Time
			}
			if pt.Time > max {
				max = pt.Time
			}
		}
		sc := benchunit.CommonScale([]float64{min, max})
		out = append(out, fmt.Sprintf("%s: %sµs to %sµs", s.Container, sc.Format(min), sc.Format(max)))
	}
	return out
}
