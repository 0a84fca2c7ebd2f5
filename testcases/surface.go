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

import "seehuhn.de/go/contour/surface"

var surfaceCases = []Case{
	sampled("peaks", "peaks", 9, surface.Linspace(-3, 3, 41), surface.Linspace(-3, 3, 41)),
	sampled("ripple", "ripple", 7, surface.Linspace(-6, 6, 60), surface.Linspace(-4, 4, 40)),
	sampled("saddle", "saddle", 11, surface.Linspace(-2, 2, 21), surface.Linspace(-2, 2, 21)),
	sampled("bowl", "bowl", 6, surface.Linspace(-1, 1, 16), surface.Linspace(-1, 1, 16)),
	sampled("plateau", "plateau", 5, surface.Linspace(0, 6, 31), surface.Linspace(0, 6, 31)),
	sampled("steps", "steps", 7, surface.Linspace(0, 3, 13), surface.Linspace(0, 3, 13)),
	sampled("gradient", "gradient", 4, []float64{0, 0.1, 0.5, 2, 2.2}, []float64{-1, 0, 3}),
}
