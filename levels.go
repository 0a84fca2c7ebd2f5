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

// Levels returns n equally spaced values covering [zMin, zMax].
// The first value is exactly zMin and the last exactly zMax.
func Levels(zMin, zMax float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	res := make([]float64, n)
	if n == 1 {
		res[0] = zMin
		return res
	}
	step := (zMax - zMin) / float64(n-1)
	for k := range n {
		res[k] = zMin + float64(k)*step
	}
	res[n-1] = zMax
	return res
}
