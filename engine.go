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
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Engine computes filled contour bands and contour lines.
//
// The zero value is usable but produces a black colour ramp; use NewEngine
// to get the default settings. An Engine holds no state between calls and
// may be used concurrently.
type Engine struct {
	// Saturation and Value select the colour ramp, both in [0, 1].
	Saturation float64
	Value      float64

	// Workers limits the number of goroutines used by one computation.
	// Values of 1 or less process one band or level at a time.
	Workers int

	// Logger receives diagnostics.  If nil, nothing is logged.
	Logger *slog.Logger
}

// NewEngine returns an Engine with the default colour ramp which uses all
// available CPUs.
func NewEngine() *Engine {
	return &Engine{
		Saturation: DefaultSaturation,
		Value:      DefaultValue,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// Band is one filled polygon: the part of grid cell (I, J) where the
// interpolated value lies between Low and High.
type Band struct {
	Index     int
	Low, High float64
	Color     RGB
	I, J      int

	// Polygon is the closed outline.  The last vertex is connected back to
	// the first one.
	Polygon []vec.Vec2
}

// LevelLines holds all contour segments of one level.
type LevelLines struct {
	Level    float64
	Segments []Segment
}

// Result is the output of one computation.
type Result struct {
	// Levels are the contour values, from the smallest to the largest sample.
	Levels []float64

	// Colors has one entry per level.  Band k uses Colors[k].
	Colors []RGB

	// Bands lists the band polygons ordered by band index, then by cell
	// (i-major), then by ring.
	Bands []Band

	// Lines has one entry per level.
	Lines []LevelLines

	// Bounds is the area covered by the grid.
	Bounds rect.Rect

	// Anomalies counts the cells for which a band or a contour line could
	// not be traced unambiguously.
	Anomalies int
}

// NumBands returns the number of bands, one less than the number of levels.
func (r *Result) NumBands() int {
	return max(len(r.Levels)-1, 0)
}

// LegendEntry describes one band for display in a legend.
type LegendEntry struct {
	Index     int
	Low, High float64
	Color     RGB
}

// Legend lists all bands, including bands which did not produce any polygon.
func (r *Result) Legend() []LegendEntry {
	res := make([]LegendEntry, r.NumBands())
	for k := range res {
		res[k] = LegendEntry{
			Index: k,
			Low:   r.Levels[k],
			High:  r.Levels[k+1],
			Color: r.Colors[k],
		}
	}
	return res
}

// Recompute computes bands and lines with the default engine settings.
// Z[i][j] is the sample at (x[i], y[j]).
func Recompute(x, y []float64, z [][]float64, numContours int) (*Result, error) {
	return NewEngine().Recompute(x, y, z, numContours)
}

// Recompute validates the samples and computes bands and lines for
// numContours equally spaced levels.
func (e *Engine) Recompute(x, y []float64, z [][]float64, numContours int) (*Result, error) {
	if err := e.check(numContours); err != nil {
		return nil, err
	}
	g, err := NewGrid(x, y, z)
	if err != nil {
		return nil, err
	}
	return e.RecomputeGrid(context.Background(), g, numContours)
}

// RecomputeGrid computes bands and lines for an already validated grid.
// The computation stops early if ctx is cancelled.
func (e *Engine) RecomputeGrid(ctx context.Context, g *Grid, numContours int) (*Result, error) {
	if err := e.check(numContours); err != nil {
		return nil, err
	}
	logger := e.logger()

	zMin, zMax := g.Range()
	res := &Result{
		Levels: Levels(zMin, zMax, numContours),
		Colors: Ramp(numContours, e.Saturation, e.Value),
		Bounds: g.Bounds(),
		Lines:  make([]LevelLines, numContours),
	}
	for k, c := range res.Levels {
		res.Lines[k].Level = c
	}
	if zMin == zMax {
		logger.DebugContext(ctx, "constant grid, nothing to contour", "z", zMin)
		return res, nil
	}

	nb := numContours - 1
	bands := make([][]Band, nb)
	bandAnomalies := make([]int, nb)
	lineAnomalies := make([]int, numContours)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(e.Workers, 1))
	for k := range nb {
		eg.Go(func() error {
			var err error
			bands[k], bandAnomalies[k], err = e.band(gctx, g, res, k)
			return err
		})
	}
	for k := range numContours {
		eg.Go(func() error {
			var err error
			res.Lines[k].Segments, lineAnomalies[k], err = e.lines(gctx, g, res.Levels[k], k == numContours-1)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, b := range bands {
		total += len(b)
	}
	res.Bands = make([]Band, 0, total)
	for k, b := range bands {
		res.Bands = append(res.Bands, b...)
		res.Anomalies += bandAnomalies[k]
	}
	for _, n := range lineAnomalies {
		res.Anomalies += n
	}

	logger.DebugContext(ctx, "contours computed",
		"levels", numContours,
		"polygons", len(res.Bands),
		"anomalies", res.Anomalies)
	return res, nil
}

func (e *Engine) check(numContours int) error {
	if numContours < 2 {
		return fmt.Errorf("%w: need at least 2 contours, got %d", ErrInvalidConfig, numContours)
	}
	if !(e.Saturation >= 0 && e.Saturation <= 1) {
		return fmt.Errorf("%w: saturation %g not in [0, 1]", ErrInvalidConfig, e.Saturation)
	}
	if !(e.Value >= 0 && e.Value <= 1) {
		return fmt.Errorf("%w: value %g not in [0, 1]", ErrInvalidConfig, e.Value)
	}
	return nil
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// band computes all polygons of band k.
func (e *Engine) band(ctx context.Context, g *Grid, res *Result, k int) ([]Band, int, error) {
	lo := threshold{c: res.Levels[k]}
	hi := threshold{c: res.Levels[k+1], closed: k == res.NumBands()-1}
	col := res.Colors[k]

	var t bandTracer
	var out []Band
	anomalies := 0
	n, m := g.Size()
	for i := range n - 1 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		for j := range m - 1 {
			c := g.cell(i, j)
			f := t.fill(&c, lo, hi)
			switch f.kind {
			case fillFull:
				out = append(out, Band{
					Index: k, Low: lo.c, High: hi.c, Color: col, I: i, J: j,
					Polygon: c.quad(),
				})
			case fillRings:
				for _, ring := range f.rings {
					out = append(out, Band{
						Index: k, Low: lo.c, High: hi.c, Color: col, I: i, J: j,
						Polygon: ring,
					})
				}
			}
			if f.anomaly {
				anomalies++
				e.logger().WarnContext(ctx, "cannot trace band in cell",
					"band", k, "i", i, "j", j,
					"lo", lo.c, "hi", hi.c,
					"lo_crossings", crossingCount(&c, lo.c),
					"hi_crossings", crossingCount(&c, hi.c))
			}
		}
	}
	return out, anomalies, nil
}

// lines computes all contour segments at one level.  Values equal to the
// level count as above it, except for the top level.
func (e *Engine) lines(ctx context.Context, g *Grid, level float64, top bool) ([]Segment, int, error) {
	t := threshold{c: level, closed: top}
	var out []Segment
	anomalies := 0
	n, m := g.Size()
	for i := range n - 1 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		for j := range m - 1 {
			c := g.cell(i, j)
			var bad bool
			out, bad = cellLines(out, &c, t)
			if bad {
				anomalies++
				e.logger().WarnContext(ctx, "ambiguous contour crossings in cell",
					"level", level, "i", i, "j", j,
					"crossings", crossingCount(&c, level))
			}
		}
	}
	return out, anomalies, nil
}
