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

// Package plot draws the bands and lines of a contour.Result into an image.
//
// The data rectangle of the result is mapped onto the image, less a margin,
// with the y axis pointing up.  Bands are painted in the order in which they
// appear in the result, then all contour lines are drawn on top.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// ErrEmpty is returned if a result or an image has zero area.
var ErrEmpty = errors.New("plot: nothing to draw")

// Backend selects the rasteriser used by Render.
type Backend int

const (
	// Native uses the rasteriser from seehuhn.de/go/contour/raster.
	Native Backend = iota

	// Vector uses golang.org/x/image/vector.
	Vector
)

func (b Backend) String() string {
	switch b {
	case Native:
		return "native"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Options control the appearance of a plot.
type Options struct {
	// Width and Height give the image size in pixels.  For PDF output the
	// same numbers are used as the page size in points.
	Width, Height int

	// Margin is the space, in pixels, around the data rectangle.
	Margin int

	Background color.Color

	// Bands and Lines select what is drawn.
	Bands, Lines bool

	// LineWidth is the width of contour lines in pixels.
	LineWidth float64
	LineColor color.Color

	Backend Backend
}

// DefaultOptions returns the settings used when a plot file gives none.
func DefaultOptions() Options {
	return Options{
		Width:      640,
		Height:     480,
		Margin:     8,
		Background: color.White,
		Bands:      true,
		Lines:      true,
		LineWidth:  1,
		LineColor:  color.Black,
		Backend:    Native,
	}
}

// Render draws res into a new image.
func Render(res *contour.Result, opt Options) (*image.RGBA, error) {
	ctm, err := deviceMatrix(res, opt)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	bg := opt.Background
	if bg == nil {
		bg = color.Transparent
	}
	fill(img, bg)

	switch opt.Backend {
	case Native:
		drawNative(img, res, opt, ctm)
	case Vector:
		drawVector(img, res, opt, ctm)
	default:
		return nil, fmt.Errorf("plot: unknown backend %s", opt.Backend)
	}
	return img, nil
}

// deviceMatrix returns the transformation from data coordinates to image
// pixels.
func deviceMatrix(res *contour.Result, opt Options) (matrix.Matrix, error) {
	if res == nil {
		return matrix.Matrix{}, fmt.Errorf("%w: no result", ErrEmpty)
	}
	w := opt.Width - 2*opt.Margin
	h := opt.Height - 2*opt.Margin
	if opt.Margin < 0 || w <= 0 || h <= 0 {
		return matrix.Matrix{}, fmt.Errorf("%w: %dx%d image with margin %d",
			ErrEmpty, opt.Width, opt.Height, opt.Margin)
	}
	b := res.Bounds
	dx, dy := b.URx-b.LLx, b.URy-b.LLy
	if !(dx > 0 && dy > 0) {
		return matrix.Matrix{}, fmt.Errorf("%w: data bounds %v", ErrEmpty, b)
	}

	sx := float64(w) / dx
	sy := float64(h) / dy
	m := float64(opt.Margin)
	return matrix.Matrix{sx, 0, 0, -sy, m - b.LLx*sx, m + b.URy*sy}, nil
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// bandGroups calls yield once for each run of bands with the same index.
func bandGroups(bands []contour.Band, yield func([]contour.Band)) {
	for start := 0; start < len(bands); {
		end := start + 1
		for end < len(bands) && bands[end].Index == bands[start].Index {
			end++
		}
		yield(bands[start:end])
		start = end
	}
}

func fill(img *image.RGBA, c color.Color) {
	r, g, b, a := c.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], px[:])
	}
}
