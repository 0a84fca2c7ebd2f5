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
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/raster"
)

func drawNative(img *image.RGBA, res *contour.Result, opt Options, ctm matrix.Matrix) {
	clip := rect.Rect{URx: float64(opt.Width), URy: float64(opt.Height)}
	r := raster.NewRasteriser(clip)

	if opt.Bands {
		// All polygons of one band go into a single path.  Edges shared
		// by neighbouring cells run in opposite directions and cancel, so
		// no seams appear between the cells.
		r.CTM = ctm
		p := &path.Data{}
		bandGroups(res.Bands, func(group []contour.Band) {
			p.Cmds = p.Cmds[:0]
			p.Coords = p.Coords[:0]
			for _, b := range group {
				addPolygon(p, b)
			}
			r.FillNonZero(p, blend(img, group[0].Color))
		})
	}

	if opt.Lines && opt.LineWidth > 0 {
		// Stroke in device space, so that lines keep their width when
		// the axes are scaled differently.
		r.CTM = matrix.Identity
		r.Width = opt.LineWidth
		r.Cap = graphics.LineCapRound
		p := &path.Data{}
		for _, l := range res.Lines {
			for _, s := range l.Segments {
				p.MoveTo(apply(ctm, s.A)).LineTo(apply(ctm, s.B))
			}
		}
		if len(p.Cmds) > 0 {
			r.Stroke(p, blend(img, lineColor(opt)))
		}
	}
}

func addPolygon(p *path.Data, b contour.Band) {
	if len(b.Polygon) < 3 {
		return
	}
	p.MoveTo(b.Polygon[0])
	for _, q := range b.Polygon[1:] {
		p.LineTo(q)
	}
	p.Close()
}

// blend returns an EmitFunc which paints c over img, weighted by the
// coverage.
func blend(img *image.RGBA, c color.Color) raster.EmitFunc {
	r, g, b, a := c.RGBA()
	src := [4]float32{
		float32(r >> 8), float32(g >> 8), float32(b >> 8), float32(a >> 8),
	}
	alpha := float32(a) / 0xffff
	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		for k, cov := range coverage {
			px := img.Pix[off+4*k : off+4*k+4 : off+4*k+4]
			keep := 1 - cov*alpha
			for i := range px {
				px[i] = uint8(min(src[i]*cov+float32(px[i])*keep+0.5, 255))
			}
		}
	}
}

func lineColor(opt Options) color.Color {
	if opt.LineColor == nil {
		return color.Black
	}
	return opt.LineColor
}
