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

package surface

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestLinspace(t *testing.T) {
	cases := []struct {
		start, stop float64
		n           int
		want        []float64
	}{
		{0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{-2, 2, 3, []float64{-2, 0, 2}},
		{3, 7, 1, []float64{3}},
		{3, 7, 0, nil},
		{1, 0, 2, []float64{1, 0}},
	}
	for _, tc := range cases {
		got := Linspace(tc.start, tc.stop, tc.n)
		if !slices.Equal(got, tc.want) {
			t.Errorf("Linspace(%g, %g, %d) = %v, want %v", tc.start, tc.stop, tc.n, got, tc.want)
		}
	}
}

func TestLinspaceEndpoint(t *testing.T) {
	// 0.1 is not representable, so the last value must be set explicitly
	x := Linspace(0, 0.7, 8)
	if x[7] != 0.7 {
		t.Errorf("last value = %.17g, want 0.7", x[7])
	}
}

func TestSample(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{10, 20}
	z, err := Sample("gradient", x, y)
	if err != nil {
		t.Fatal(err)
	}
	if len(z) != 3 || len(z[0]) != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", len(z), len(z[0]))
	}
	if z[2][1] != 22 {
		t.Errorf("z[2][1] = %g, want 22", z[2][1])
	}
}

func TestUnknown(t *testing.T) {
	_, err := Sample("no-such-surface", []float64{0}, []float64{0})
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("got %v, want ErrUnknown", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, name := range names {
		f, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range [][2]float64{{0, 0}, {-2.5, 1.5}, {3, -3}} {
			if v := f(p[0], p[1]); math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s(%g, %g) = %g", name, p[0], p[1], v)
			}
		}
	}
}

func TestPeaksMaximum(t *testing.T) {
	// the maximum near (0, 1.6) is the largest value on the standard domain
	best := math.Inf(-1)
	var bx, by float64
	for _, x := range Linspace(-3, 3, 61) {
		for _, y := range Linspace(-3, 3, 61) {
			if v := Peaks(x, y); v > best {
				best, bx, by = v, x, y
			}
		}
	}
	if math.Abs(bx) > 0.2 || math.Abs(by-1.6) > 0.2 {
		t.Errorf("maximum %g at (%g, %g), want near (0, 1.6)", best, bx, by)
	}
}
