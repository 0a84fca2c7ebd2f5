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

package contour_test

import (
	"fmt"

	"seehuhn.de/go/contour"
)

func ExampleRecompute() {
	x := []float64{0, 1}
	y := []float64{0, 1}
	z := [][]float64{
		{0, 10},
		{10, 0},
	}

	res, err := contour.Recompute(x, y, z, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println("levels:", res.Levels)
	for _, entry := range res.Legend() {
		fmt.Printf("band %d [%g, %g] %s\n", entry.Index, entry.Low, entry.High, entry.Color)
	}
	fmt.Println("polygons:", len(res.Bands))
	fmt.Println("segments at level 5:", len(res.Lines[1].Segments))

	// Output:
	// levels: [0 5 10]
	// band 0 [0, 5] #e62e2e
	// band 1 [5, 10] #2ee62e
	// polygons: 3
	// segments at level 5: 2
}
