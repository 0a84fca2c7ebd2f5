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

// Package surface provides analytic scalar fields for demonstrations and
// tests, together with helpers to sample them on rectilinear grids.
package surface

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// ErrUnknown is returned for surface names which are not registered.
var ErrUnknown = errors.New("surface: unknown surface")

// Func is a scalar field on the plane.
type Func func(x, y float64) float64

var registry = map[string]Func{
	"flat": func(x, y float64) float64 {
		return 0
	},
	"gradient": func(x, y float64) float64 {
		return x + y
	},
	"saddle": func(x, y float64) float64 {
		return x*x - y*y
	},
	"bowl": func(x, y float64) float64 {
		return x*x + y*y
	},
	"peaks": Peaks,
	"ripple": func(x, y float64) float64 {
		r := math.Hypot(x, y)
		return math.Cos(3*r) * math.Exp(-r/2)
	},
	"plateau": func(x, y float64) float64 {
		return max(-1, min(1, 2*math.Sin(x)*math.Cos(y)))
	},
	"steps": func(x, y float64) float64 {
		return math.Floor(x) + math.Floor(y)
	},
}

// Peaks is a smooth function with two maxima and a minimum, well suited
// for showing contour plots on [-3, 3]×[-3, 3].
func Peaks(x, y float64) float64 {
	return 3*(1-x)*(1-x)*math.Exp(-x*x-(y+1)*(y+1)) -
		10*(x/5-x*x*x-math.Pow(y, 5))*math.Exp(-x*x-y*y) -
		math.Exp(-(x+1)*(x+1)-y*y)/3
}

// Names returns the registered surface names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the surface with the given name.
func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return f, nil
}

// Sample evaluates the named surface on the grid spanned by x and y.
func Sample(name string, x, y []float64) ([][]float64, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Eval(f, x, y), nil
}

// Eval returns z with z[i][j] = f(x[i], y[j]).
func Eval(f Func, x, y []float64) [][]float64 {
	z := make([][]float64, len(x))
	for i, xi := range x {
		row := make([]float64, len(y))
		for j, yj := range y {
			row[j] = f(xi, yj)
		}
		z[i] = row
	}
	return z
}

// Linspace returns n equally spaced values from start to stop inclusive.
// For n == 1 the result is [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	res := make([]float64, n)
	if n == 1 {
		res[0] = start
		return res
	}
	step := (stop - start) / float64(n-1)
	for k := range res {
		res[k] = start + float64(k)*step
	}
	res[n-1] = stop
	return res
}
