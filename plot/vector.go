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

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

func drawVector(img *image.RGBA, res *contour.Result, opt Options, ctm matrix.Matrix) {
	z := vector.NewRasterizer(opt.Width, opt.Height)

	if opt.Bands {
		bandGroups(res.Bands, func(group []contour.Band) {
			z.Reset(opt.Width, opt.Height)
			for _, b := range group {
				if len(b.Polygon) < 3 {
					continue
				}
				p := apply(ctm, b.Polygon[0])
				z.MoveTo(float32(p.X), float32(p.Y))
				for _, q := range b.Polygon[1:] {
					p = apply(ctm, q)
					z.LineTo(float32(p.X), float32(p.Y))
				}
				z.ClosePath()
			}
			z.Draw(img, img.Bounds(), image.NewUniform(group[0].Color), image.Point{})
		})
	}

	if opt.Lines && opt.LineWidth > 0 {
		// x/image/vector has no stroker; each segment becomes a rectangle
		// extended by half the line width at both ends.
		z.Reset(opt.Width, opt.Height)
		d := opt.LineWidth / 2
		for _, l := range res.Lines {
			for _, s := range l.Segments {
				a, b := apply(ctm, s.A), apply(ctm, s.B)
				v := b.Sub(a)
				n := v.Length()
				if n == 0 {
					continue
				}
				v = v.Mul(d / n)
				w := vec.Vec2{X: -v.Y, Y: v.X}
				a, b = a.Sub(v), b.Add(v)
				quad(z, a.Add(w), b.Add(w), b.Sub(w), a.Sub(w))
			}
		}
		z.Draw(img, img.Bounds(), image.NewUniform(lineColor(opt)), image.Point{})
	}
}

// quad adds a closed quadrilateral.  All quads must have the same
// orientation so that overlapping segments are painted once.
func quad(z *vector.Rasterizer, p0, p1, p2, p3 vec.Vec2) {
	z.MoveTo(float32(p0.X), float32(p0.Y))
	z.LineTo(float32(p1.X), float32(p1.Y))
	z.LineTo(float32(p2.X), float32(p2.Y))
	z.LineTo(float32(p3.X), float32(p3.Y))
	z.ClosePath()
}
