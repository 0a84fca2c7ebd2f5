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

// Package app connects plot files, the contour engine and the output
// writers.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/internal/config"
	"seehuhn.de/go/contour/internal/ctxlog"
	"seehuhn.de/go/contour/internal/viewer"
	"seehuhn.de/go/contour/plot"
)

// App runs the plots of one plot file.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config

	// view shows the interactive viewer.  Tests replace it.
	view func(context.Context, viewer.Model) error
}

// NewApp returns an App which writes JSON output to outW and log messages
// to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		cfg:    cfg,
		view:   viewer.Run,
	}
}

// Run computes every plot in the plot file and writes the requested
// outputs.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	f, err := config.Load(ctx, a.cfg.PlotPath)
	if err != nil {
		return fmt.Errorf("failed to load plot file: %w", err)
	}
	a.logger.Debug("plot file loaded", "path", a.cfg.PlotPath, "plots", len(f.Plots))

	var first *viewer.Model
	for _, p := range f.Plots {
		g, e, res, err := a.compute(ctx, p)
		if err != nil {
			return fmt.Errorf("plot %q: %w", p.Name, err)
		}

		for _, o := range p.Outputs {
			if err := writeOutput(o, res); err != nil {
				return fmt.Errorf("plot %q: %w", p.Name, err)
			}
			a.logger.Info("output written", "plot", p.Name, "format", o.Format, "path", o.Path)
		}
		if a.cfg.JSON {
			if err := plot.EncodeJSON(a.outW, p.Name, res); err != nil {
				return err
			}
		}

		if a.cfg.View && first == nil {
			m := viewer.New(ctx, p.Name, g, *e, p.Contours)
			first = &m
		}
	}

	if first != nil {
		return a.view(ctx, *first)
	}
	return nil
}

func (a *App) compute(ctx context.Context, p *config.Plot) (*contour.Grid, *contour.Engine, *contour.Result, error) {
	g, err := contour.NewGrid(p.X, p.Y, p.Z)
	if err != nil {
		return nil, nil, nil, err
	}
	e := &contour.Engine{
		Saturation: p.Saturation,
		Value:      p.Value,
		Workers:    a.cfg.Workers,
		Logger:     a.logger.With("plot", p.Name),
	}
	res, err := e.RecomputeGrid(ctx, g, p.Contours)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("plot computed",
		"plot", p.Name,
		"bands", res.NumBands(),
		"polygons", len(res.Bands),
		"anomalies", res.Anomalies)
	return g, e, res, nil
}

func writeOutput(o *config.Output, res *contour.Result) error {
	if err := os.MkdirAll(filepath.Dir(o.Path), 0o755); err != nil {
		return err
	}
	opt := plotOptions(o)
	switch o.Format {
	case "pdf":
		return plot.WritePDF(o.Path, res, opt)
	default:
		return plot.WritePNG(o.Path, res, opt)
	}
}

func plotOptions(o *config.Output) plot.Options {
	opt := plot.DefaultOptions()
	opt.Width, opt.Height = o.Width, o.Height
	opt.Bands = o.Bands
	opt.Lines = o.Lines
	opt.LineWidth = o.LineWidth
	if o.Backend == "vector" {
		opt.Backend = plot.Vector
	}
	return opt
}
