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

// Command genpdf generates reference images for visual review.
// For every test case it writes a PDF and a PNG rendered by package plot.
// With -gs, the PDF is also rendered to PNG using Ghostscript, so that the
// vector and raster output can be compared side by side.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/plot"
	"seehuhn.de/go/contour/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	useGS := flag.Bool("gs", false, "also render the PDFs using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	opt := plot.DefaultOptions()
	opt.Width, opt.Height = 400, 300

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			res, err := contour.Recompute(tc.X, tc.Y, tc.Z, tc.Contours)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := plot.WritePDF(pdfPath, res, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := plot.WritePNG(pngPath, res, opt); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *useGS {
				gsPath := filepath.Join(*outDir, name+"_gs.png")
				if err := renderPNG(pdfPath, gsPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 1 point = 1 pixel, so that the image sizes match
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
