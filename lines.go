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

package contour

import "seehuhn.de/go/geom/vec"

// Segment is a piece of a contour line inside one grid cell.
type Segment struct {
	A, B vec.Vec2
}

// cellLines appends the contour segments of cell c at level t to dst.
// Segments are the boundaries of the band regions found by bandTracer.
// The second return value is set if the crossings could not be paired up.
func cellLines(dst []Segment, c *cell, t threshold) ([]Segment, bool) {
	if c.flat() {
		return dst, false
	}

	var pts [4]vec.Vec2
	var crossed [4]bool
	n := 0
	for e := range 4 {
		za, zb := c.z[e], c.z[e+1]
		if t.crossed(za, zb) {
			pts[e] = c.pointOnEdge(e, t.fraction(za, zb))
			crossed[e] = true
			n++
		}
	}

	switch n {
	case 0:
		return dst, false
	case 2:
		var seg [2]vec.Vec2
		k := 0
		for e := range 4 {
			if crossed[e] {
				seg[k] = pts[e]
				k++
			}
		}
		return appendSegment(dst, seg[0], seg[1]), false
	case 4:
		// Saddle.  Cut off the corners which lie on the other side of the
		// level than the centre value.
		centreBelow := t.below(c.centre())
		for k := range 4 {
			if t.below(c.z[k]) != centreBelow {
				dst = appendSegment(dst, pts[(k+3)%4], pts[k])
			}
		}
		return dst, false
	}
	return dst, true
}

// appendSegment appends the segment from a to b, unless it has length zero.
// This happens where the level only touches a corner.
func appendSegment(dst []Segment, a, b vec.Vec2) []Segment {
	if a == b {
		return dst
	}
	return append(dst, Segment{A: a, B: b})
}
