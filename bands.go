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

import (
	"slices"

	"seehuhn.de/go/geom/vec"
)

// threshold is a band limit.  Values equal to c count as above the
// threshold, unless closed is set.  This makes the bands [lo, hi)
// half-open, except for the topmost band which is closed, so that every
// value belongs to exactly one band.
type threshold struct {
	c      float64
	closed bool
}

func (t threshold) below(z float64) bool {
	if t.closed {
		return z <= t.c
	}
	return z < t.c
}

// crossed reports whether the edge from za to zb crosses t.
func (t threshold) crossed(za, zb float64) bool {
	return t.below(za) != t.below(zb)
}

// fraction returns the position of the crossing on an edge from za to zb.
// It must only be called if t.crossed(za, zb).
func (t threshold) fraction(za, zb float64) float64 {
	return (t.c - za) / (zb - za)
}

// fillKind tells what a cell contributes to one band.
type fillKind int

const (
	fillNone  fillKind = iota // the band does not cover any area of the cell
	fillFull                  // the whole cell lies inside the band
	fillRings                 // the band covers part of the cell, see cellFill.rings
)

// cellFill is the contribution of one cell to one band.
type cellFill struct {
	kind  fillKind
	rings [][]vec.Vec2

	// anomaly is set if some part of the perimeter could not be joined
	// into a closed ring.
	anomaly bool
}

type side int8

const (
	below  side = -1
	inside side = 0
	above  side = 1
)

// sample is a point on the cell perimeter: either a corner or a point where
// the interpolated value crosses one of the band limits.
type sample struct {
	pt   vec.Vec2
	side side
}

// arc is a maximal stretch of the perimeter inside the band.
type arc struct {
	pts []vec.Vec2
}

// event is the entry into or exit from an arc across one band limit,
// listed in perimeter order.
type event struct {
	arc  int
	exit bool
}

// bandTracer computes band polygons for single cells.
// Its buffers are reused between calls; a bandTracer must not be
// shared between goroutines.
type bandTracer struct {
	lo, hi threshold

	samples  []sample
	arcs     []arc
	loEvents []event
	hiEvents []event
	next     []int
	seen     []bool
}

func (t *bandTracer) side(z float64) side {
	switch {
	case t.lo.below(z):
		return below
	case !t.hi.below(z):
		return above
	default:
		return inside
	}
}

// fill returns the part of cell c which belongs to the band between the
// thresholds lo and hi.
func (t *bandTracer) fill(c *cell, lo, hi threshold) cellFill {
	if c.flat() || !hi.below(c.zMin) || lo.below(c.zMax) {
		return cellFill{kind: fillNone}
	}
	if !lo.below(c.zMin) && hi.below(c.zMax) {
		return cellFill{kind: fillFull}
	}
	t.lo, t.hi = lo, hi

	t.walkPerimeter(c)
	start := slices.IndexFunc(t.samples, func(s sample) bool {
		return s.side != inside
	})
	if start < 0 {
		return cellFill{kind: fillFull}
	}

	t.collectArcs(start)
	if len(t.arcs) == 0 {
		return cellFill{kind: fillNone}
	}

	// The centre value decides how saddles are resolved: chords leave the
	// centre on the same side of each limit as the centre value.
	t.next = slices.Grow(t.next[:0], len(t.arcs))[:len(t.arcs)]
	zc := c.centre()
	ok := t.link(t.loEvents, !lo.below(zc)) && t.link(t.hiEvents, hi.below(zc))

	res := cellFill{kind: fillRings}
	if !ok {
		res.anomaly = true
		return res
	}
	res.rings, res.anomaly = t.rings()
	if len(res.rings) == 0 && !res.anomaly {
		res.kind = fillNone
	}
	return res
}

// walkPerimeter lists the corners of c together with the points where the
// interpolant crosses the band limits, in perimeter order.
func (t *bandTracer) walkPerimeter(c *cell) {
	t.samples = t.samples[:0]
	for e := range 4 {
		za, zb := c.z[e], c.z[e+1]
		t.samples = append(t.samples, sample{pt: c.corner[e], side: t.side(za)})

		hasLo := t.lo.crossed(za, zb)
		hasHi := t.hi.crossed(za, zb)
		var dLo, dHi float64
		if hasLo {
			dLo = t.lo.fraction(za, zb)
		}
		if hasHi {
			dHi = t.hi.fraction(za, zb)
		}

		switch {
		case hasLo && hasHi && dHi < dLo:
			t.addCrossing(c, e, dHi)
			t.addCrossing(c, e, dLo)
		case hasLo && hasHi:
			t.addCrossing(c, e, dLo)
			t.addCrossing(c, e, dHi)
		case hasLo:
			t.addCrossing(c, e, dLo)
		case hasHi:
			t.addCrossing(c, e, dHi)
		}
	}
}

func (t *bandTracer) addCrossing(c *cell, e int, d float64) {
	t.samples = append(t.samples, sample{
		pt:   c.pointOnEdge(e, d),
		side: inside,
	})
}

// collectArcs splits the perimeter into arcs, starting the scan just after
// the outside sample at index start, and records for each band limit the
// points where arcs are entered and left, in perimeter order.
func (t *bandTracer) collectArcs(start int) {
	t.arcs = t.arcs[:0]
	t.loEvents = t.loEvents[:0]
	t.hiEvents = t.hiEvents[:0]

	n := len(t.samples)
	var cur []vec.Vec2
	var entry side
	for k := 1; k <= n; k++ {
		prev := t.samples[(start+k-1)%n]
		s := t.samples[(start+k)%n]
		if s.side == inside {
			if prev.side != inside {
				cur = nil
				entry = prev.side
			}
			cur = append(cur, s.pt)
			continue
		}
		if prev.side != inside {
			continue
		}

		idx := len(t.arcs)
		t.addEvent(entry, event{arc: idx})
		t.addEvent(s.side, event{arc: idx, exit: true})
		t.arcs = append(t.arcs, arc{pts: cur})
	}
}

// addEvent records a crossing between the band and the outside region on
// side s.
func (t *bandTracer) addEvent(s side, ev event) {
	if s == below {
		t.loEvents = append(t.loEvents, ev)
	} else {
		t.hiEvents = append(t.hiEvents, ev)
	}
}

// link pairs every exit in events with an entry across the same limit.
// Exits and entries alternate along the perimeter.  With two crossings the
// pairing is forced.  With four, the chord either cuts off the outside
// stretch following the exit (forward) or closes the arc the exit belongs
// to.
func (t *bandTracer) link(events []event, forward bool) bool {
	n := len(events)
	if n == 0 {
		return true
	}
	if n != 2 && n != 4 {
		return false
	}
	for i, ev := range events {
		if !ev.exit {
			continue
		}
		j := (i + n - 1) % n
		if forward {
			j = (i + 1) % n
		}
		partner := events[j]
		if partner.exit {
			return false
		}
		t.next[ev.arc] = partner.arc
	}
	return true
}

// rings follows arcs and chords until every arc has been used.
// Rings which degenerate to fewer than three distinct points are dropped.
func (t *bandTracer) rings() ([][]vec.Vec2, bool) {
	n := len(t.arcs)
	t.seen = slices.Grow(t.seen[:0], n)[:n]
	clear(t.seen)

	var res [][]vec.Vec2
	anomaly := false
	for first := range n {
		if t.seen[first] {
			continue
		}
		var ring []vec.Vec2
		a := first
		for {
			t.seen[a] = true
			for _, p := range t.arcs[a].pts {
				if len(ring) == 0 || ring[len(ring)-1] != p {
					ring = append(ring, p)
				}
			}
			a = t.next[a]
			if a == first {
				break
			}
			if t.seen[a] {
				anomaly = true
				ring = nil
				break
			}
		}
		for len(ring) > 1 && ring[0] == ring[len(ring)-1] {
			ring = ring[:len(ring)-1]
		}
		if len(ring) >= 3 {
			res = append(res, ring)
		}
	}
	return res, anomaly
}
