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

package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"seehuhn.de/go/contour/surface"
)

// newEvalContext returns the context in which plot attributes are
// evaluated.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"abs":      stdlib.AbsoluteFunc,
			"ceil":     stdlib.CeilFunc,
			"concat":   stdlib.ConcatFunc,
			"floor":    stdlib.FloorFunc,
			"max":      stdlib.MaxFunc,
			"min":      stdlib.MinFunc,
			"pow":      stdlib.PowFunc,
			"range":    stdlib.RangeFunc,
			"reverse":  stdlib.ReverseListFunc,
			"linspace": linspaceFunc,
			"surface":  surfaceFunc,
		},
	}
}

// linspaceFunc returns n equally spaced numbers from start to stop.
var linspaceFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "start", Type: cty.Number},
		{Name: "stop", Type: cty.Number},
		{Name: "n", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.List(cty.Number)),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var start, stop float64
		var n int
		if err := gocty.FromCtyValue(args[0], &start); err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}
		if err := gocty.FromCtyValue(args[1], &stop); err != nil {
			return cty.NilVal, function.NewArgError(1, err)
		}
		if err := gocty.FromCtyValue(args[2], &n); err != nil {
			return cty.NilVal, function.NewArgError(2, err)
		}
		if n < 2 {
			return cty.NilVal, function.NewArgErrorf(2, "need at least 2 points, got %d", n)
		}
		return numberList(surface.Linspace(start, stop, n)), nil
	},
})

// surfaceFunc samples a named analytic surface on the grid spanned by x
// and y.  The result is a list of rows, one per x value.
var surfaceFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
		{Name: "x", Type: cty.List(cty.Number)},
		{Name: "y", Type: cty.List(cty.Number)},
	},
	Type: function.StaticReturnType(cty.List(cty.List(cty.Number))),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var x, y []float64
		if err := gocty.FromCtyValue(args[1], &x); err != nil {
			return cty.NilVal, function.NewArgError(1, err)
		}
		if err := gocty.FromCtyValue(args[2], &y); err != nil {
			return cty.NilVal, function.NewArgError(2, err)
		}
		z, err := surface.Sample(args[0].AsString(), x, y)
		if err != nil {
			return cty.NilVal, function.NewArgError(0, err)
		}

		if len(z) == 0 {
			return cty.ListValEmpty(cty.List(cty.Number)), nil
		}
		rows := make([]cty.Value, len(z))
		for i, row := range z {
			rows[i] = numberList(row)
		}
		return cty.ListVal(rows), nil
	},
})

func numberList(v []float64) cty.Value {
	if len(v) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	vals := make([]cty.Value, len(v))
	for i, x := range v {
		vals[i] = cty.NumberFloatVal(x)
	}
	return cty.ListVal(vals)
}
