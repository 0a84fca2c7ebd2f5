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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke computes the coverage of the line segments of p, each drawn with
// width r.Width and with cap r.Cap at both ends.  Curves are flattened
// first.  Consecutive segments are not joined; round caps make the joins
// round.  Overlapping segments are painted only once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.outline = r.outline[:0]
	r.rings = r.rings[:0]

	var cur, start vec.Vec2
	drawn := true
	dot := func() {
		if !drawn {
			r.segment(cur, cur)
		}
	}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			dot()
			cur = p.Coords[k]
			start = cur
			drawn = false
			k++
		case path.CmdLineTo:
			r.segment(cur, p.Coords[k])
			cur = p.Coords[k]
			drawn = true
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.segment)
			cur = p.Coords[k+1]
			drawn = true
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.segment)
			cur = p.Coords[k+2]
			drawn = true
			k += 3
		case path.CmdClose:
			if cur != start || !drawn {
				r.segment(cur, start)
			}
			cur = start
			drawn = true
		}
	}
	dot()

	r.edges = r.edges[:0]
	for i, from := range r.rings {
		to := len(r.outline)
		if i+1 < len(r.rings) {
			to = r.rings[i+1]
		}
		r.addRing(r.outline[from:to])
	}
	r.fill(nonZero, emit)
}

// segment appends the outline of the stroked segment from a to b.
// All outlines are oriented counter-clockwise so that the nonzero rule
// forms their union.
func (r *Rasteriser) segment(a, b vec.Vec2) {
	d := r.Width / 2
	from := len(r.outline)

	v := b.Sub(a)
	l := v.Length()
	if l < zeroLength {
		// A segment without direction is drawn only for caps which do not
		// depend on it.
		switch r.Cap {
		case graphics.LineCapRound:
			r.arc(a, d, vec.Vec2{X: 1}, 2*math.Pi)
		case graphics.LineCapSquare:
			r.outline = append(r.outline,
				vec.Vec2{X: a.X - d, Y: a.Y - d},
				vec.Vec2{X: a.X + d, Y: a.Y - d},
				vec.Vec2{X: a.X + d, Y: a.Y + d},
				vec.Vec2{X: a.X - d, Y: a.Y + d})
		default:
			return
		}
		r.rings = append(r.rings, from)
		return
	}

	t := v.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
	}
	r.outline = append(r.outline, a.Sub(n.Mul(d)), b.Sub(n.Mul(d)))
	if r.Cap == graphics.LineCapRound {
		r.arc(b, d, n.Mul(-1), math.Pi)
	}
	r.outline = append(r.outline, b.Add(n.Mul(d)), a.Add(n.Mul(d)))
	if r.Cap == graphics.LineCapRound {
		r.arc(a, d, n, math.Pi)
	}
	r.rings = append(r.rings, from)
}

// arc appends points on a circular arc, starting in direction dir from
// the centre and sweeping counter-clockwise.
func (r *Rasteriser) arc(centre vec.Vec2, radius float64, dir vec.Vec2, sweep float64) {
	rDev := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}))

	n := 1
	if rDev > r.Flatness {
		// the sagitta of a chord spanning angle θ is rDev·(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/rDev)
		n = int(math.Ceil(sweep / step))
	}
	n = max(n, 4)

	for i := range n + 1 {
		phi := sweep * float64(i) / float64(n)
		c, s := math.Cos(phi), math.Sin(phi)
		r.outline = append(r.outline, vec.Vec2{
			X: centre.X + radius*(dir.X*c-dir.Y*s),
			Y: centre.Y + radius*(dir.X*s+dir.Y*c),
		})
	}
}

// zeroLength is the length below which a segment has no direction.
const zeroLength = 1e-10
