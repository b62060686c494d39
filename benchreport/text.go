// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// maxLineRunes is the wrap width of narrative prose, in runes.
const maxLineRunes = 88

// A textBlock is a plot.Plotter that fills the data area with lines
// of prose, top to bottom. It exists so narrative pages go through
// the same page machinery as figure pages.
type textBlock struct {
	lines []string
}

func newTextBlock(s string) *textBlock {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(line, maxLineRunes)...)
	}
	return &textBlock{lines: lines}
}

// Plot implements the plot.Plotter interface.
func (t *textBlock) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.Title.TextStyle
	sty.Font.Size = vg.Points(10)
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YTop

	lineHeight := sty.Font.Size * 1.45
	pad := vg.Points(4)
	y := c.Max.Y - pad
	for _, line := range t.lines {
		if y < c.Min.Y {
			break
		}
		c.FillText(sty, vg.Point{X: c.Min.X + pad, Y: y}, line)
		y -= lineHeight
	}
}

// DataRange implements the plot.DataRanger interface. A text page has
// no data; a unit range keeps the hidden axes well-formed.
func (t *textBlock) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, 0, 1
}

// wrapLine greedily wraps line at the last space before max runes,
// carrying the line's leading indentation onto continuations.
func wrapLine(line string, max int) []string {
	if len([]rune(line)) <= max {
		return []string{line}
	}
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]
	cont := indent + "  "

	var out []string
	cur, empty := indent, true
	for _, w := range strings.Fields(trimmed) {
		cand := cur
		if !empty {
			cand += " "
		}
		cand += w
		if !empty && len([]rune(cand)) > max {
			out = append(out, cur)
			cur = cont + w
			continue
		}
		cur, empty = cand, false
	}
	out = append(out, cur)
	return out
}
