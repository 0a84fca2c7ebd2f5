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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidGrid indicates that the sample grid cannot be contoured:
	// an axis is too short or not strictly increasing, the z matrix does not
	// match the axes, or a sample is not finite.
	ErrInvalidGrid = errors.New("contour: invalid grid")

	// ErrInvalidConfig indicates an unusable engine setting, for example
	// fewer than two contour levels.
	ErrInvalidConfig = errors.New("contour: invalid configuration")
)

// Grid is a rectilinear grid of scalar samples.
// Z[i][j] is the sample at (X[i], Y[j]).
//
// A Grid is immutable once created by NewGrid.
type Grid struct {
	x, y []float64
	z    [][]float64

	zMin, zMax float64
}

// NewGrid validates and copies the given samples.
// Both axes need at least two strictly increasing values, z must have
// len(x) rows of len(y) finite values each.
func NewGrid(x, y []float64, z [][]float64) (*Grid, error) {
	if err := checkAxis("x", x); err != nil {
		return nil, err
	}
	if err := checkAxis("y", y); err != nil {
		return nil, err
	}
	if len(z) != len(x) {
		return nil, fmt.Errorf("%w: z has %d rows, want %d", ErrInvalidGrid, len(z), len(x))
	}

	g := &Grid{
		x:    append([]float64(nil), x...),
		y:    append([]float64(nil), y...),
		z:    make([][]float64, len(z)),
		zMin: math.Inf(+1),
		zMax: math.Inf(-1),
	}
	for i, row := range z {
		if len(row) != len(y) {
			return nil, fmt.Errorf("%w: z row %d has %d values, want %d",
				ErrInvalidGrid, i, len(row), len(y))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: z[%d][%d] = %g is not finite",
					ErrInvalidGrid, i, j, v)
			}
			g.zMin = min(g.zMin, v)
			g.zMax = max(g.zMax, v)
		}
		g.z[i] = append([]float64(nil), row...)
	}
	return g, nil
}

func checkAxis(name string, v []float64) error {
	if len(v) < 2 {
		return fmt.Errorf("%w: %s axis has %d values, need at least 2",
			ErrInvalidGrid, name, len(v))
	}
	for i, a := range v {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("%w: %s[%d] = %g is not finite", ErrInvalidGrid, name, i, a)
		}
		if i > 0 && !(a > v[i-1]) {
			return fmt.Errorf("%w: %s axis not strictly increasing at index %d",
				ErrInvalidGrid, name, i)
		}
	}
	return nil
}

// Size returns the number of samples along the x and y axes.
func (g *Grid) Size() (n, m int) {
	return len(g.x), len(g.y)
}

// X returns the x coordinate of column i.
func (g *Grid) X(i int) float64 { return g.x[i] }

// Y returns the y coordinate of row j.
func (g *Grid) Y(j int) float64 { return g.y[j] }

// Z returns the sample at (X(i), Y(j)).
func (g *Grid) Z(i, j int) float64 { return g.z[i][j] }

// Range returns the smallest and largest sample value.
func (g *Grid) Range() (zMin, zMax float64) {
	return g.zMin, g.zMax
}

// Bounds returns the rectangle covered by the grid.
func (g *Grid) Bounds() rect.Rect {
	return rect.Rect{
		LLx: g.x[0],
		LLy: g.y[0],
		URx: g.x[len(g.x)-1],
		URy: g.y[len(g.y)-1],
	}
}

// cell is one quad of the grid.
//
// Corners are numbered 0..3 going (xo,yo), (xo,yp), (xp,yp), (xp,yo).
// Edge e runs from corner e to corner e+1, and z repeats corner 0 at the end
// so that z[e] and z[e+1] are the edge's end values for every e.
type cell struct {
	i, j   int
	z      [5]float64
	corner [4]vec.Vec2

	zMin, zMax float64
}

func (g *Grid) cell(i, j int) cell {
	xo, xp := g.x[i], g.x[i+1]
	yo, yp := g.y[j], g.y[j+1]

	c := cell{
		i: i,
		j: j,
		z: [5]float64{g.z[i][j], g.z[i][j+1], g.z[i+1][j+1], g.z[i+1][j], g.z[i][j]},
		corner: [4]vec.Vec2{
			{X: xo, Y: yo},
			{X: xo, Y: yp},
			{X: xp, Y: yp},
			{X: xp, Y: yo},
		},
	}
	c.zMin = min(c.z[0], c.z[1], c.z[2], c.z[3])
	c.zMax = max(c.z[0], c.z[1], c.z[2], c.z[3])
	return c
}

// flat reports whether all four corners share one value.
func (c *cell) flat() bool {
	return c.zMin == c.zMax
}

// centre returns the bilinear value at the middle of the cell.
func (c *cell) centre() float64 {
	return (c.z[0] + c.z[1] + c.z[2] + c.z[3]) / 4
}

// pointOnEdge returns the point at fraction d along edge e.
func (c *cell) pointOnEdge(e int, d float64) vec.Vec2 {
	a := c.corner[e]
	b := c.corner[(e+1)%4]
	switch d {
	case 0:
		return a
	case 1:
		return b
	}
	return vec.Vec2{
		X: a.X + d*(b.X-a.X),
		Y: a.Y + d*(b.Y-a.Y),
	}
}

// quad returns the cell outline.
func (c *cell) quad() []vec.Vec2 {
	return []vec.Vec2{c.corner[0], c.corner[1], c.corner[2], c.corner[3]}
}
