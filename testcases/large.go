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

// largeCases are big enough for concurrency and benchmarks to matter.
var largeCases = []Case{
	sampled("large_peaks", "peaks", 16, surface.Linspace(-3, 3, 201), surface.Linspace(-3, 3, 201)),
	sampled("large_ripple", "ripple", 24, surface.Linspace(-10, 10, 301), surface.Linspace(-10, 10, 151)),
}
