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

package testcases

var degenerateCases = []Case{
	// every sample has the same value
	grid("flat", 4,
		[]float64{3, 3, 3},
		[]float64{3, 3, 3}),

	// a flat patch in the middle of a slope
	grid("flat_patch", 4,
		[]float64{0, 1, 2, 3},
		[]float64{1, 2, 2, 3},
		[]float64{2, 2, 2, 4},
		[]float64{3, 3, 4, 5}),

	// corner values equal to a level
	grid("corner_on_level", 3,
		[]float64{5, 10},
		[]float64{0, 0}),
	grid("touching_corner", 3,
		[]float64{0, 5},
		[]float64{0, 0}),
	grid("edge_on_level", 3,
		[]float64{5, 5},
		[]float64{0, 10}),
	grid("diagonal_on_level", 3,
		[]float64{5, 10},
		[]float64{0, 5}),

	// saddles whose centre value lies above or below the middle level
	grid("saddle_high", 3,
		[]float64{0, 12},
		[]float64{10, 2}),
	grid("saddle_low", 3,
		[]float64{0, 8},
		[]float64{10, -2}),
	grid("double_saddle", 5,
		[]float64{0, 10, 0},
		[]float64{10, 0, 10},
		[]float64{0, 10, 0}),

	// plateaus exactly at level values
	grid("terraces", 3,
		[]float64{0, 0, 5, 5, 10, 10},
		[]float64{0, 0, 5, 5, 10, 10},
		[]float64{0, 0, 5, 5, 10, 10}),

	// tiny differences
	grid("near_flat", 3,
		[]float64{1, 1 + 1e-12},
		[]float64{1 - 1e-12, 1}),
}
