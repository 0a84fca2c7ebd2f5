// Command export computes every test case and writes the results to JSON,
// for comparison with other contouring implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/plot"
	"seehuhn.de/go/contour/testcases"
)

func main() {
	outName := flag.String("o", "testdata/results.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []plot.JSONResult `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			res, err := contour.Recompute(tc.X, tc.Y, tc.Z, tc.Contours)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.TestCases = append(out.TestCases, plot.NewJSONResult(name, res))
		}
	}

	f, err := os.Create(*outName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}
