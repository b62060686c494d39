// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vectortree/vtreport/benchgroup"
)

// seriesColors is the palette cycled through the containers of one
// figure.
var seriesColors = []color.NRGBA{
	{0x1F, 0x77, 0xB4, 0xFF}, // blue
	{0xD6, 0x28, 0x28, 0xFF}, // red
	{0x2C, 0xA0, 0x2C, 0xFF}, // green
	{0x94, 0x67, 0xBD, 0xFF}, // purple
	{0xFF, 0x7F, 0x0E, 0xFF}, // orange
}

func seriesColor(i int) color.NRGBA {
	return seriesColors[i%len(seriesColors)]
}

// newFigurePlot renders one group as a multi-series line chart:
// x = iteration count, y = time in microseconds, one line per
// container.
func newFigurePlot(n int, g benchgroup.Group) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Figure %d: %s", n, g.Title())
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = "Iterations"
	p.Y.Label.Text = "Time (µs)"

	grid := plotter.NewGrid()
	p.Add(grid)

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Points(2)

	for i, s := range g.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = float64(pt.Iters)
			xys[j].Y = pt.Time
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("figure %d, series %s: %v", n, s.Container, err)
		}
		c := seriesColor(i)
		line.Color = c
		line.Width = vg.Points(1.5)
		points.Color = c
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(2)
		p.Add(line, points)
		p.Legend.Add(s.Container, line, points)
	}

	return p, nil
}
