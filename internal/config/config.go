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

// Package config loads plot descriptions from HCL files.
//
// A plot file contains one or more plot blocks:
//
//	plot "saddle" {
//	  contours = 7
//	  x = linspace(-2, 2, 41)
//	  y = linspace(-2, 2, 41)
//	  z = surface("saddle", x, y)
//	  output "png" {
//	    path  = "saddle.png"
//	    width = 640
//	  }
//	}
//
// The attributes x and y are evaluated first.  The attribute z may refer
// to their values as the variables x and y.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/internal/ctxlog"
)

// ErrInvalid is returned for plot files which cannot be used.
var ErrInvalid = errors.New("config: invalid plot file")

// Defaults for omitted attributes.
const (
	DefaultContours  = 10
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultLineWidth = 1.0
)

// File is the content of one plot file.
type File struct {
	Plots []*Plot
}

// Plot describes one contour plot.
type Plot struct {
	Name     string
	Contours int

	Saturation float64
	Value      float64

	// Z[i][j] is the sample at (X[i], Y[j]).
	X, Y []float64
	Z    [][]float64

	Outputs []*Output
}

// Output describes one image file written for a plot.
type Output struct {
	Format string // "png" or "pdf"
	Path   string

	Width, Height int
	Bands, Lines  bool
	LineWidth     float64
	Backend       string // "native" or "vector"
}

type hclFile struct {
	Plots []*hclPlot `hcl:"plot,block"`
}

type hclPlot struct {
	Name       string         `hcl:"name,label"`
	Contours   *int           `hcl:"contours,optional"`
	Saturation *float64       `hcl:"saturation,optional"`
	Value      *float64       `hcl:"value,optional"`
	X          hcl.Expression `hcl:"x"`
	Y          hcl.Expression `hcl:"y"`
	Z          hcl.Expression `hcl:"z"`
	Outputs    []*hclOutput   `hcl:"output,block"`
}

type hclOutput struct {
	Format    string   `hcl:"format,label"`
	Path      string   `hcl:"path"`
	Width     *int     `hcl:"width,optional"`
	Height    *int     `hcl:"height,optional"`
	Bands     *bool    `hcl:"bands,optional"`
	Lines     *bool    `hcl:"lines,optional"`
	LineWidth *float64 `hcl:"line_width,optional"`
	Backend   *string  `hcl:"backend,optional"`
}

// Load reads the plot file fname.
// Relative output paths are interpreted relative to the directory
// containing fname.
func Load(ctx context.Context, fname string) (*File, error) {
	src, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	f, err := Parse(ctx, src, fname)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(fname)
	for _, p := range f.Plots {
		for _, o := range p.Outputs {
			if !filepath.IsAbs(o.Path) {
				o.Path = filepath.Join(dir, o.Path)
			}
		}
	}
	return f, nil
}

// Parse decodes a plot file held in memory.  The file name is only used
// in error messages.
func Parse(ctx context.Context, src []byte, fname string) (*File, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hf, diags := parser.ParseHCL(src, fname)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, diags)
	}

	evalCtx := newEvalContext()
	var raw hclFile
	diags = gohcl.DecodeBody(hf.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, diags)
	}
	if len(raw.Plots) == 0 {
		return nil, fmt.Errorf("%w: %s contains no plot blocks", ErrInvalid, fname)
	}

	res := &File{}
	seen := make(map[string]bool)
	for _, rp := range raw.Plots {
		if seen[rp.Name] {
			return nil, fmt.Errorf("%w: duplicate plot %q", ErrInvalid, rp.Name)
		}
		seen[rp.Name] = true

		p, err := decodePlot(rp, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%w: plot %q: %w", ErrInvalid, rp.Name, err)
		}
		logger.Debug("plot decoded",
			"file", fname, "plot", p.Name,
			"grid", fmt.Sprintf("%dx%d", len(p.X), len(p.Y)),
			"outputs", len(p.Outputs))
		res.Plots = append(res.Plots, p)
	}
	return res, nil
}

func decodePlot(rp *hclPlot, evalCtx *hcl.EvalContext) (*Plot, error) {
	p := &Plot{
		Name:       rp.Name,
		Contours:   deref(rp.Contours, DefaultContours),
		Saturation: deref(rp.Saturation, contour.DefaultSaturation),
		Value:      deref(rp.Value, contour.DefaultValue),
	}
	if p.Contours < 2 {
		return nil, fmt.Errorf("contours = %d, need at least 2", p.Contours)
	}
	if !(p.Saturation >= 0 && p.Saturation <= 1) {
		return nil, fmt.Errorf("saturation %g not in [0, 1]", p.Saturation)
	}
	if !(p.Value >= 0 && p.Value <= 1) {
		return nil, fmt.Errorf("value %g not in [0, 1]", p.Value)
	}

	xVal, err := eval(rp.X, evalCtx, cty.List(cty.Number), &p.X)
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	yVal, err := eval(rp.Y, evalCtx, cty.List(cty.Number), &p.Y)
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}

	zCtx := evalCtx.NewChild()
	zCtx.Variables = map[string]cty.Value{
		"x": xVal,
		"y": yVal,
	}
	if _, err := eval(rp.Z, zCtx, cty.List(cty.List(cty.Number)), &p.Z); err != nil {
		return nil, fmt.Errorf("z: %w", err)
	}

	for _, ro := range rp.Outputs {
		o, err := decodeOutput(ro)
		if err != nil {
			return nil, err
		}
		p.Outputs = append(p.Outputs, o)
	}
	return p, nil
}

func decodeOutput(ro *hclOutput) (*Output, error) {
	o := &Output{
		Format:    ro.Format,
		Path:      ro.Path,
		Width:     deref(ro.Width, DefaultWidth),
		Height:    deref(ro.Height, DefaultHeight),
		Bands:     deref(ro.Bands, true),
		Lines:     deref(ro.Lines, true),
		LineWidth: deref(ro.LineWidth, DefaultLineWidth),
		Backend:   deref(ro.Backend, "native"),
	}
	switch o.Format {
	case "png", "pdf":
	default:
		return nil, fmt.Errorf("output %q: unsupported format", o.Format)
	}
	if o.Path == "" {
		return nil, fmt.Errorf("output %q: empty path", o.Format)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("output %q: invalid size %dx%d", o.Format, o.Width, o.Height)
	}
	if !(o.LineWidth >= 0) {
		return nil, fmt.Errorf("output %q: invalid line width %g", o.Format, o.LineWidth)
	}
	switch o.Backend {
	case "native", "vector":
	default:
		return nil, fmt.Errorf("output %q: unknown backend %q", o.Format, o.Backend)
	}
	return o, nil
}

// eval evaluates expr, converts the result to type want and stores it in
// the Go value target points to.  The converted value is returned.
func eval(expr hcl.Expression, ctx *hcl.EvalContext, want cty.Type, target any) (cty.Value, error) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	val, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("%s: value is missing", expr.Range())
	}
	if err := gocty.FromCtyValue(val, target); err != nil {
		return cty.NilVal, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	return val, nil
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
