// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const pngDPI = 150

// WritePNGs renders every figure page as a standalone PNG under dir,
// creating it if necessary. Narrative pages have no image rendering.
// File names carry the figure number and the three group dimensions.
func (d *Document) WritePNGs(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for _, pg := range d.pages {
		if pg.figure == 0 {
			continue
		}
		c := vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(pageWidth, pageHeight),
			vgimg.UseDPI(pngDPI),
			vgimg.UseBackgroundColor(color.White),
		)}
		pg.plot.Draw(draw.New(c))

		name := filepath.Join(dir, figureFileName(pg.figure, pg.group))
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if _, err := c.WriteTo(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %v", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
