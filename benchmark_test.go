package contour_test

import (
	"fmt"
	"runtime"
	"testing"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/surface"
)

func BenchmarkRecompute(b *testing.B) {
	sizes := []int{20, 200, 1000}
	workers := []int{1, runtime.GOMAXPROCS(0)}

	for _, size := range sizes {
		x := surface.Linspace(-3, 3, size)
		z := surface.Eval(surface.Peaks, x, x)
		g, err := contour.NewGrid(x, x, z)
		if err != nil {
			b.Fatal(err)
		}
		for _, w := range workers {
			b.Run(fmt.Sprintf("%dx%d/workers=%d", size, size, w), func(b *testing.B) {
				e := contour.NewEngine()
				e.Workers = w
				b.ReportAllocs()
				for b.Loop() {
					if _, err := e.RecomputeGrid(b.Context(), g, 12); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
