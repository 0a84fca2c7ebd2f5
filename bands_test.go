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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// unitCell returns the cell of a 2×2 grid on [0,1]², with corner values
// listed in perimeter order.
func unitCell(t *testing.T, z0, z1, z2, z3 float64) cell {
	t.Helper()
	g, err := NewGrid([]float64{0, 1}, []float64{0, 1}, [][]float64{{z0, z1}, {z3, z2}})
	if err != nil {
		t.Fatal(err)
	}
	return g.cell(0, 0)
}

func polygonArea(p []vec.Vec2) float64 {
	a := 0.0
	for i, v := range p {
		w := p[(i+1)%len(p)]
		a += v.X*w.Y - w.X*v.Y
	}
	return math.Abs(a) / 2
}

// bandArea returns the area of cell c covered by the band between the
// given levels.
func bandArea(t *testing.T, tr *bandTracer, c *cell, lo, hi threshold) float64 {
	t.Helper()
	f := tr.fill(c, lo, hi)
	if f.anomaly {
		t.Errorf("z=%v band [%g, %g]: anomaly", c.z[:4], lo.c, hi.c)
	}
	switch f.kind {
	case fillFull:
		return polygonArea(c.quad())
	case fillRings:
		a := 0.0
		for _, r := range f.rings {
			if len(r) < 3 {
				t.Errorf("z=%v: ring with %d points", c.z[:4], len(r))
			}
			a += polygonArea(r)
		}
		return a
	}
	return 0
}

func TestFillKinds(t *testing.T) {
	var tr bandTracer
	lo, hi := threshold{c: 0}, threshold{c: 10, closed: true}

	c := unitCell(t, 3, 3, 3, 3)
	if f := tr.fill(&c, lo, hi); f.kind != fillNone {
		t.Errorf("flat cell: kind %d, want fillNone", f.kind)
	}

	c = unitCell(t, 0, 0, 10, 10)
	if f := tr.fill(&c, lo, hi); f.kind != fillFull {
		t.Errorf("contained cell: kind %d, want fillFull", f.kind)
	}

	c = unitCell(t, 11, 12, 13, 14)
	if f := tr.fill(&c, lo, hi); f.kind != fillNone {
		t.Errorf("cell above band: kind %d, want fillNone", f.kind)
	}

	c = unitCell(t, 0, 20, 20, 0)
	f := tr.fill(&c, lo, hi)
	if f.kind != fillRings || len(f.rings) != 1 {
		t.Fatalf("partial cell: kind %d with %d rings", f.kind, len(f.rings))
	}
	if a := polygonArea(f.rings[0]); math.Abs(a-0.5) > 1e-12 {
		t.Errorf("partial cell: area %g, want 0.5", a)
	}
}

func TestHalfOpenBands(t *testing.T) {
	var tr bandTracer

	// the upper corners lie exactly on the boundary between the bands
	c := unitCell(t, 0, 0, 5, 5)
	lower := bandArea(t, &tr, &c, threshold{c: 0}, threshold{c: 5})
	upper := bandArea(t, &tr, &c, threshold{c: 5}, threshold{c: 10, closed: true})
	if lower != 1 || upper != 0 {
		t.Errorf("areas %g, %g, want 1, 0", lower, upper)
	}
}

func TestSaddleRings(t *testing.T) {
	var tr bandTracer
	c := unitCell(t, 0, 10, 0, 10)

	f := tr.fill(&c, threshold{c: 0}, threshold{c: 5})
	if f.kind != fillRings || len(f.rings) != 2 {
		t.Fatalf("lower band: kind %d with %d rings, want two rings", f.kind, len(f.rings))
	}
	for _, r := range f.rings {
		if len(r) != 3 || polygonArea(r) != 0.125 {
			t.Errorf("lower band: unexpected ring %v", r)
		}
	}

	f = tr.fill(&c, threshold{c: 5}, threshold{c: 10, closed: true})
	if f.kind != fillRings || len(f.rings) != 1 {
		t.Fatalf("upper band: kind %d with %d rings, want one ring", f.kind, len(f.rings))
	}
	if a := polygonArea(f.rings[0]); a != 0.75 {
		t.Errorf("upper band: area %g, want 0.75", a)
	}
}

// TestCellCoverage checks that the bands tile every cell, for all cells
// with corner values in {0, 1, 2}.
func TestCellCoverage(t *testing.T) {
	levelSets := [][]float64{
		{0, 2},
		{0, 1, 2},
		{0, 0.5, 1, 1.5, 2},
		{0, 0.3, 1.7, 2},
	}
	var tr bandTracer
	for code := range 81 {
		var z [4]float64
		k := code
		for i := range z {
			z[i] = float64(k % 3)
			k /= 3
		}
		c := unitCell(t, z[0], z[1], z[2], z[3])
		if c.flat() {
			continue
		}
		for _, levels := range levelSets {
			total := 0.0
			nb := len(levels) - 1
			for b := range nb {
				lo := threshold{c: levels[b]}
				hi := threshold{c: levels[b+1], closed: b == nb-1}
				total += bandArea(t, &tr, &c, lo, hi)
			}
			if math.Abs(total-1) > 1e-12 {
				t.Errorf("z=%v levels=%v: covered area %g, want 1", z, levels, total)
			}
		}
	}
}

func TestCellLines(t *testing.T) {
	type tc struct {
		name  string
		z     [4]float64
		level threshold
		n     int
	}
	cases := []tc{
		{"flat", [4]float64{5, 5, 5, 5}, threshold{c: 5}, 0},
		{"gradient", [4]float64{0, 0, 10, 10}, threshold{c: 5}, 1},
		{"saddle", [4]float64{0, 10, 0, 10}, threshold{c: 5}, 2},
		{"touching_corner", [4]float64{0, 5, 0, 0}, threshold{c: 5, closed: true}, 0},
		{"corner_on_level", [4]float64{5, 10, 0, 0}, threshold{c: 5}, 1},
		{"bottom_level", [4]float64{0, 0, 10, 10}, threshold{c: 0}, 0},
		{"top_level", [4]float64{0, 0, 10, 10}, threshold{c: 10, closed: true}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := unitCell(t, tc.z[0], tc.z[1], tc.z[2], tc.z[3])
			segs, bad := cellLines(nil, &c, tc.level)
			if bad {
				t.Error("unexpected anomaly")
			}
			if len(segs) != tc.n {
				t.Errorf("got %d segments, want %d: %v", len(segs), tc.n, segs)
			}
		})
	}
}

func TestSaddleDecider(t *testing.T) {
	// centre value 6 lies above the level: the low corners 0 and 2 are
	// cut off
	c := unitCell(t, 0, 12, 2, 10)
	segs, _ := cellLines(nil, &c, threshold{c: 5})
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	want := []Segment{
		{A: vec.Vec2{X: 0.5, Y: 0}, B: vec.Vec2{X: 0, Y: 5.0 / 12}},
		{A: vec.Vec2{X: 0.7, Y: 1}, B: vec.Vec2{X: 1, Y: 1 - 3.0/8}},
	}
	for i := range want {
		if dist(segs[i].A, want[i].A) > 1e-12 || dist(segs[i].B, want[i].B) > 1e-12 {
			t.Errorf("segment %d = %v, want %v", i, segs[i], want[i])
		}
	}
}

func dist(a, b vec.Vec2) float64 {
	return a.Sub(b).Length()
}
