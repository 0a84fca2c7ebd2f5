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

// Package raster converts polygons and line segments into anti-aliased
// pixel coverage.
//
// Coverage is computed exactly from the signed area of the outline inside
// each pixel, using cover/area accumulation along scanlines.  Small shapes
// are accumulated in a two-dimensional buffer; large shapes use an active
// edge list and one scanline of buffer.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row.  coverage[k] is the
// fraction of pixel (xMin+k, y) covered by the shape, in [0, 1].
// The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser converts shapes to pixel coverage.
// A Rasteriser can be reused for many shapes; its internal buffers
// grow as needed and are kept between calls.
type Rasteriser struct {
	// CTM maps user coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device area which receives output.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its approximating polygon.
	Flatness float64

	// Width is the stroke width in user coordinates.
	Width float64

	// Cap is used at both ends of every stroked segment.
	Cap graphics.LineCapStyle

	// smallArea is the largest bounding box, in pixels, which is rasterised
	// using the two-dimensional buffer.
	smallArea int

	edges   []edge
	active  []int
	cover   []float32
	area    []float32
	touched []bool
	splits  []float64
	outline []vec.Vec2
	rings   []int
}

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0   float64
	yLo, yHi float64
	dxdy     float64
	dir      float32 // +1 if the edge runs towards larger y, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// NewRasteriser returns a Rasteriser for the given device area, with the
// identity transformation and a stroke width of one unit.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings for a new clip area.
// Buffer capacity is retained.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.smallArea = smallAreaLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.outline = r.outline[:0]
	r.rings = r.rings[:0]
}

// FillNonZero computes the coverage of p under the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.collectPath(p)
	r.fill(nonZero, emit)
}

// FillEvenOdd computes the coverage of p under the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.collectPath(p)
	r.fill(evenOdd, emit)
}

// FillPolygon computes the coverage of a single closed polygon under the
// nonzero winding rule.
func (r *Rasteriser) FillPolygon(poly []vec.Vec2, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.addRing(poly)
	r.fill(nonZero, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

// collectPath flattens p into device space edges.
func (r *Rasteriser) collectPath(p *path.Data) {
	r.edges = r.edges[:0]

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}
}

// addRing adds the closed polygon poly, given in user coordinates.
func (r *Rasteriser) addRing(poly []vec.Vec2) {
	if len(poly) < 2 {
		return
	}
	prev := poly[len(poly)-1]
	for _, p := range poly {
		r.addEdge(prev, p)
		prev = p
	}
}

func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the device space length of the user space vector v.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	a = r.toDevice(a)
	b = r.toDevice(b)
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEps {
		return
	}
	e := edge{
		x0:   a.X,
		y0:   a.Y,
		yLo:  min(a.Y, b.Y),
		yHi:  max(a.Y, b.Y),
		dxdy: (b.X - a.X) / dy,
		dir:  1,
	}
	if dy < 0 {
		e.dir = -1
	}
	r.edges = append(r.edges, e)
}

func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	// Wang's formula
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)))
	n := max(int(math.Ceil(math.Sqrt(3*dev/(4*r.Flatness)))), 1)
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

// bounds returns the pixel range touched by the current edges, clipped.
func (r *Rasteriser) bounds() (x0, x1, y0, y1 int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xLo, xHi := math.Inf(+1), math.Inf(-1)
	yLo, yHi := math.Inf(+1), math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		xa, xb := e.xAt(e.yLo), e.xAt(e.yHi)
		xLo = min(xLo, xa, xb)
		xHi = max(xHi, xa, xb)
		yLo = min(yLo, e.yLo)
		yHi = max(yHi, e.yHi)
	}
	x0 = max(int(math.Floor(xLo)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(xHi))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(yLo)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(yHi))+1, int(r.Clip.URy))
	return x0, x1, y0, y1, x0 < x1 && y0 < y1
}

func (r *Rasteriser) fill(rule fillRule, emit EmitFunc) {
	x0, x1, y0, y1, ok := r.bounds()
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.smallArea {
		r.fillBuffered(x0, x1, y0, y1, rule, emit)
	} else {
		r.fillScanlines(x0, x1, y0, y1, rule, emit)
	}
}

// The coverage of a pixel is accumulated from two per-pixel values:
// cover is the signed vertical extent of all edge pieces inside the pixel
// column, and area is the part of cover which lies to the right of the
// edge inside the pixel.  Summing cover from the left and adding area
// gives the signed area of the shape inside each pixel.

// accumulate adds the contribution of e to pixel row y.
// The buffers cover pixel columns [x0, x1).  Contributions left of x0 are
// collected in the first column.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, x0, x1 int) bool {
	top := max(float64(y), e.yLo)
	bot := min(float64(y+1), e.yHi)
	if bot <= top {
		return false
	}

	xt, xb := e.xAt(top), e.xAt(bot)
	left := int(math.Floor(min(xt, xb)))
	right := int(math.Floor(max(xt, xb)))
	switch {
	case left >= x1:
		return false
	case right < x0 || left == right:
		deposit(cover, area, x0, x1, e.xAt((top+bot)/2), e.dir*float32(bot-top))
		return true
	}

	// split the piece where it crosses vertical pixel boundaries
	r.splits = append(r.splits[:0], top, bot)
	for x := max(left+1, x0); x <= min(right, x1); x++ {
		ys := e.y0 + (float64(x)-e.x0)/e.dxdy
		if ys > top && ys < bot {
			r.splits = append(r.splits, ys)
		}
	}
	slices.Sort(r.splits)
	for i := 1; i < len(r.splits); i++ {
		a, b := r.splits[i-1], r.splits[i]
		if b > a {
			deposit(cover, area, x0, x1, e.xAt((a+b)/2), e.dir*float32(b-a))
		}
	}
	return true
}

func deposit(cover, area []float32, x0, x1 int, x float64, c float32) {
	pix := int(math.Floor(x))
	switch {
	case pix < x0:
		cover[0] += c
		area[0] += c
	case pix < x1:
		k := pix - x0
		cover[k] += c
		area[k] += c * float32(1-(x-float64(pix)))
	}
}

// integrate turns the accumulated values of one row into coverage,
// in place.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		if rule == evenOdd {
			v -= 2 * float32(math.Floor(float64(v/2)))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// trim removes zero coverage from both ends of a row.
func trim(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillBuffered accumulates all rows at once, edge by edge.
func (r *Rasteriser) fillBuffered(x0, x1, y0, y1 int, rule fillRule, emit EmitFunc) {
	w, h := x1-x0, y1-y0
	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	r.touched = slices.Grow(r.touched[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.touched)

	for i := range r.edges {
		e := &r.edges[i]
		from := max(int(math.Floor(e.yLo)), y0)
		to := min(int(math.Floor(e.yHi))+1, y1)
		for y := from; y < to; y++ {
			row := y - y0
			off := row * w
			if r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], x0, x1) {
				r.touched[row] = true
			}
		}
	}

	for row := range h {
		if !r.touched[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w], rule)
		if cov, k := trim(line); len(cov) > 0 {
			emit(y0+row, x0+k, cov)
		}
	}
}

// fillScanlines processes one row at a time, keeping a list of the edges
// which intersect the current row.
func (r *Rasteriser) fillScanlines(x0, x1, y0, y1 int, rule fillRule, emit EmitFunc) {
	w := x1 - x0
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yLo, b.yLo)
	})
	r.active = r.active[:0]
	next := 0

	for y := y0; y < y1; y++ {
		for next < len(r.edges) && r.edges[next].yLo < float64(y+1) {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yHi <= float64(y) {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, r.cover, r.area, x0, x1) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if cov, k := trim(r.cover); len(cov) > 0 {
			emit(y, x0+k, cov)
		}
	}
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEps is the smallest vertical extent of an edge which
	// contributes to coverage.
	horizontalEps = 1e-10

	// smallAreaLimit is the default bounding box area, in pixels, up to
	// which shapes are accumulated in a two-dimensional buffer.
	smallAreaLimit = 65536
)
