// seehuhn.de/go/contour - contour bands and lines for gridded data
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package plot

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
)

// EncodePNG renders res and writes the image to w in PNG format.
func EncodePNG(w io.Writer, res *contour.Result, opt Options) error {
	img, err := Render(res, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WritePNG renders res into the PNG file fname.
func WritePNG(fname string, res *contour.Result, opt Options) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = EncodePNG(f, res, opt)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// WritePDF writes res as vector graphics to the single-page PDF file fname.
// The page measures opt.Width × opt.Height points.  opt.Backend is ignored.
func WritePDF(fname string, res *contour.Result, opt Options) error {
	ctm, err := deviceMatrix(res, opt)
	if err != nil {
		return err
	}
	w, h := float64(opt.Width), float64(opt.Height)

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if opt.Background != nil {
		if _, _, _, a := opt.Background.RGBA(); a != 0 {
			page.SetFillColor(deviceRGB(opt.Background))
			page.Rectangle(0, 0, w, h)
			page.Fill()
		}
	}

	// Use image coordinates, with the origin in the top-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	if opt.Bands {
		bandGroups(res.Bands, func(group []contour.Band) {
			page.SetFillColor(deviceRGB(group[0].Color))
			n := 0
			for _, b := range group {
				if len(b.Polygon) < 3 {
					continue
				}
				p := apply(ctm, b.Polygon[0])
				page.MoveTo(p.X, p.Y)
				for _, q := range b.Polygon[1:] {
					p = apply(ctm, q)
					page.LineTo(p.X, p.Y)
				}
				page.ClosePath()
				n++
			}
			if n > 0 {
				page.Fill()
			}
		})
	}

	if opt.Lines && opt.LineWidth > 0 {
		page.SetStrokeColor(deviceRGB(lineColor(opt)))
		page.SetLineWidth(opt.LineWidth)
		page.SetLineCap(graphics.LineCapRound)
		n := 0
		for _, l := range res.Lines {
			for _, s := range l.Segments {
				a, b := apply(ctm, s.A), apply(ctm, s.B)
				page.MoveTo(a.X, a.Y)
				page.LineTo(b.X, b.Y)
				n++
			}
		}
		if n > 0 {
			page.Stroke()
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("plot: writing %s: %w", fname, err)
	}
	return nil
}

// deviceRGB converts c to the PDF DeviceRGB colour space.
// Transparency is ignored.
func deviceRGB(c color.Color) pdfcolor.DeviceRGB {
	r, g, b, _ := c.RGBA()
	return pdfcolor.DeviceRGB{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}
