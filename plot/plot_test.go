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

package plot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

var backends = []Backend{Native, Vector}

func compute(t testing.TB, x, y []float64, z [][]float64, nc int) *contour.Result {
	t.Helper()
	res, err := contour.Recompute(x, y, z, nc)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func unitGrid(t testing.TB, z00, z01, z10, z11 float64, nc int) *contour.Result {
	t.Helper()
	return compute(t, []float64{0, 1}, []float64{0, 1},
		[][]float64{{z00, z01}, {z10, z11}}, nc)
}

func options(b Backend) Options {
	opt := DefaultOptions()
	opt.Width, opt.Height = 100, 100
	opt.Margin = 0
	opt.Lines = false
	opt.Backend = b
	return opt
}

// near reports whether the pixel at (x, y) has colour c, up to rounding.
func near(img *image.RGBA, x, y int, c color.Color) bool {
	got := img.RGBAAt(x, y)
	want := color.RGBAModel.Convert(c).(color.RGBA)
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	return d(got.R, want.R) <= 1 && d(got.G, want.G) <= 1 &&
		d(got.B, want.B) <= 1 && d(got.A, want.A) <= 1
}

func TestBackendString(t *testing.T) {
	if Native.String() != "native" || Vector.String() != "vector" {
		t.Errorf("unexpected names %q, %q", Native, Vector)
	}
	if s := Backend(7).String(); s != "Backend(7)" {
		t.Errorf("got %q", s)
	}
}

func TestRenderErrors(t *testing.T) {
	res := unitGrid(t, 0, 0, 10, 10, 2)

	opt := DefaultOptions()
	opt.Width = 10
	opt.Margin = 5
	if _, err := Render(res, opt); !errors.Is(err, ErrEmpty) {
		t.Errorf("margin too large: got %v", err)
	}

	if _, err := Render(nil, DefaultOptions()); !errors.Is(err, ErrEmpty) {
		t.Errorf("nil result: got %v", err)
	}

	opt = DefaultOptions()
	opt.Backend = Backend(9)
	if _, err := Render(res, opt); err == nil {
		t.Error("unknown backend accepted")
	}
}

func TestGradientFill(t *testing.T) {
	res := unitGrid(t, 0, 0, 10, 10, 2)
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			opt := options(b)
			img, err := Render(res, opt)
			if err != nil {
				t.Fatal(err)
			}
			for _, p := range []image.Point{{0, 0}, {50, 50}, {99, 99}, {10, 80}} {
				if !near(img, p.X, p.Y, res.Colors[0]) {
					t.Errorf("pixel %v: got %v, want %v", p, img.RGBAAt(p.X, p.Y), res.Colors[0])
				}
			}
		})
	}
}

func TestMargin(t *testing.T) {
	res := unitGrid(t, 0, 0, 10, 10, 2)
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			opt := options(b)
			opt.Margin = 10
			img, err := Render(res, opt)
			if err != nil {
				t.Fatal(err)
			}
			if !near(img, 2, 2, color.White) || !near(img, 95, 50, color.White) {
				t.Error("margin is not background")
			}
			if !near(img, 50, 50, res.Colors[0]) {
				t.Errorf("centre: got %v", img.RGBAAt(50, 50))
			}
		})
	}
}

// TestSaddleOrientation checks that the y axis points up: the low corners
// of the saddle are at the bottom left and the top right of the image.
func TestSaddleOrientation(t *testing.T) {
	res := unitGrid(t, 0, 10, 10, 0, 3)
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			img, err := Render(res, options(b))
			if err != nil {
				t.Fatal(err)
			}
			probes := []struct {
				x, y, band int
			}{
				{4, 94, 0},
				{95, 4, 0},
				{4, 4, 1},
				{95, 94, 1},
				{49, 49, 1},
			}
			for _, p := range probes {
				if !near(img, p.x, p.y, res.Colors[p.band]) {
					t.Errorf("pixel (%d,%d): got %v, want band %d",
						p.x, p.y, img.RGBAAt(p.x, p.y), p.band)
				}
			}
		})
	}
}

func TestLines(t *testing.T) {
	res := unitGrid(t, 0, 0, 10, 10, 3)
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			opt := options(b)
			opt.Lines = true
			opt.LineWidth = 3
			img, err := Render(res, opt)
			if err != nil {
				t.Fatal(err)
			}
			// The level 5 line runs vertically through the middle.
			for _, y := range []int{10, 50, 90} {
				if !near(img, 49, y, color.Black) || !near(img, 50, y, color.Black) {
					t.Errorf("row %d: no line, got %v", y, img.RGBAAt(49, y))
				}
			}
			if !near(img, 25, 50, res.Colors[0]) || !near(img, 75, 50, res.Colors[1]) {
				t.Error("bands damaged by lines")
			}
		})
	}
}

func TestLinesOnly(t *testing.T) {
	res := unitGrid(t, 0, 0, 10, 10, 3)
	opt := options(Native)
	opt.Bands = false
	opt.Lines = true
	opt.LineWidth = 2
	img, err := Render(res, opt)
	if err != nil {
		t.Fatal(err)
	}
	if !near(img, 25, 50, color.White) {
		t.Errorf("got %v, want background", img.RGBAAt(25, 50))
	}
	if !near(img, 49, 50, color.Black) {
		t.Errorf("got %v, want line", img.RGBAAt(49, 50))
	}
}

// TestBackendsAgree renders every surface scenario with both backends and
// compares the results pixel by pixel.
func TestBackendsAgree(t *testing.T) {
	for _, tc := range testcases.All["surface"] {
		t.Run(tc.Name, func(t *testing.T) {
			res := compute(t, tc.X, tc.Y, tc.Z, tc.Contours)
			opt := options(Native)
			opt.Width, opt.Height = 160, 120
			a, err := Render(res, opt)
			if err != nil {
				t.Fatal(err)
			}
			opt.Backend = Vector
			b, err := Render(res, opt)
			if err != nil {
				t.Fatal(err)
			}

			total, bad := 0, 0
			for i := range a.Pix {
				d := int(a.Pix[i]) - int(b.Pix[i])
				if d < 0 {
					d = -d
				}
				total += d
				if d > 16 {
					bad++
				}
			}
			if mean := float64(total) / float64(len(a.Pix)); mean > 1 {
				t.Errorf("mean difference %.3f", mean)
			}
			if bad*100 > len(a.Pix) {
				t.Errorf("%d of %d channels differ by more than 16", bad, len(a.Pix))
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	res := unitGrid(t, 0, 10, 10, 0, 5)
	opt := DefaultOptions()
	opt.Width, opt.Height = 64, 48

	buf := &bytes.Buffer{}
	if err := EncodePNG(buf, res, opt); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("got size %v", b)
	}
}

func TestWriteFiles(t *testing.T) {
	res := unitGrid(t, 0, 10, 10, 0, 5)
	dir := t.TempDir()

	pngName := filepath.Join(dir, "saddle.png")
	if err := WritePNG(pngName, res, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	pdfName := filepath.Join(dir, "saddle.pdf")
	if err := WritePDF(pdfName, res, DefaultOptions()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(pdfName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("%s does not start with a PDF header", pdfName)
	}
	if _, err := os.Stat(pngName); err != nil {
		t.Error(err)
	}
}

func TestEncodeJSON(t *testing.T) {
	res := unitGrid(t, 0, 10, 10, 0, 3)
	buf := &bytes.Buffer{}
	if err := EncodeJSON(buf, "saddle", res); err != nil {
		t.Fatal(err)
	}

	var got JSONResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "saddle" || len(got.Levels) != 3 {
		t.Errorf("got name %q, levels %v", got.Name, got.Levels)
	}
	if got.Colors[0] != "#e62e2e" {
		t.Errorf("got colour %s", got.Colors[0])
	}
	if len(got.Bands) != 3 || len(got.Lines[1].Segments) != 2 {
		t.Errorf("got %d bands, %d segments at level 5",
			len(got.Bands), len(got.Lines[1].Segments))
	}
	if got.Bands[0].Polygon[0] != point(res.Bands[0].Polygon[0]) {
		t.Error("polygon vertices differ")
	}
}

func BenchmarkRender(b *testing.B) {
	var tc testcases.Case
	for _, c := range testcases.All["large"] {
		if c.Name == "large_peaks" {
			tc = c
		}
	}
	res := compute(b, tc.X, tc.Y, tc.Z, tc.Contours)
	for _, be := range backends {
		b.Run(fmt.Sprintf("backend=%s", be), func(b *testing.B) {
			opt := DefaultOptions()
			opt.Backend = be
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Render(res, opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
