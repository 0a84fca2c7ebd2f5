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

// edgeCrossing returns the fractional position d along an edge from value zs
// to value ze at which the linear interpolant reaches level, and whether this
// is a valid crossing.
//
// Valid crossings satisfy 0 < d <= 1: a level equal to the end value belongs
// to this edge, a level equal to the start value belongs to the previous one.
// An edge with zs == ze == level is reported as crossed at its midpoint.
func edgeCrossing(zs, ze, level float64) (d float64, ok bool) {
	switch {
	case zs != ze:
		d = (level - zs) / (ze - zs)
	case level == zs:
		d = 0.5
	default:
		d = -1
	}
	return d, d > 0 && d <= 1
}

// crossingCount returns the number of cell edges with a valid crossing of
// the level.  It is only used for diagnostics.
func crossingCount(c *cell, level float64) int {
	n := 0
	for e := range 4 {
		if _, ok := edgeCrossing(c.z[e], c.z[e+1], level); ok {
			n++
		}
	}
	return n
}
