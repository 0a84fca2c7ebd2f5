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

// Case is a contouring scenario.
type Case struct {
	Name     string      // lowercase a-z and _ only
	X, Y     []float64   // grid axes
	Z        [][]float64 // Z[i][j] is the sample at (X[i], Y[j])
	Contours int         // number of contour levels
}

// grid builds a case from explicit rows of samples on the axes 0, 1, 2, ...
func grid(name string, contours int, z ...[]float64) Case {
	x := make([]float64, len(z))
	for i := range x {
		x[i] = float64(i)
	}
	y := make([]float64, len(z[0]))
	for j := range y {
		y[j] = float64(j)
	}
	return Case{Name: name, X: x, Y: y, Z: z, Contours: contours}
}

// sampled builds a case by evaluating a registered surface.
func sampled(name, surf string, contours int, x, y []float64) Case {
	z, err := surface.Sample(surf, x, y)
	if err != nil {
		panic(err)
	}
	return Case{Name: name, X: x, Y: y, Z: z, Contours: contours}
}
