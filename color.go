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
	"fmt"
	"math"
)

// Default ramp parameters.
const (
	DefaultSaturation = 0.8
	DefaultValue      = 0.9
)

// RGB is an opaque 8-bit colour.
// It implements image/color.Color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the image/color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// Ramp returns n colours obtained by sweeping the hue once around the colour
// wheel at fixed saturation s and value v, both in [0, 1].
// The result only depends on the arguments.
func Ramp(n int, s, v float64) []RGB {
	if n <= 0 {
		return nil
	}
	res := make([]RGB, n)
	for i := range n {
		h := 6 * float64(i) / float64(n)
		fl := math.Floor(h)
		f := h - fl
		k := int(fl) % 6

		r1 := 1.0
		r2 := 1 - s
		r3 := 1 - s*f
		r4 := 1 + s*f - s

		var r, g, b float64
		switch k {
		case 0:
			r, g, b = r1, r4, r2
		case 1:
			r, g, b = r3, r1, r2
		case 2:
			r, g, b = r2, r1, r4
		case 3:
			r, g, b = r2, r3, r1
		case 4:
			r, g, b = r4, r2, r1
		default:
			r, g, b = r1, r2, r3
		}
		res[i] = RGB{R: channel(r, v), G: channel(g, v), B: channel(b, v)}
	}
	return res
}

// channel converts an intensity in [0, 1] to a byte.
// The scale factor 256 maps v=1 onto the next byte up, so clamping is needed.
func channel(c, v float64) uint8 {
	x := math.Round(256 * v * c)
	return uint8(max(0, min(255, x)))
}
