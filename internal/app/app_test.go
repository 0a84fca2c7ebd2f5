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

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/contour/internal/config"
	"seehuhn.de/go/contour/internal/viewer"
	"seehuhn.de/go/contour/plot"
)

const plotFile = `
plot "saddle" {
  contours = 5
  x = linspace(-2, 2, 21)
  y = linspace(-2, 2, 21)
  z = surface("saddle", x, y)
  output "png" {
    path    = "out/saddle.png"
    width   = 120
    height  = 90
    backend = "vector"
  }
  output "pdf" { path = "out/saddle.pdf" }
}

plot "literal" {
  contours = 3
  x = [0, 1]
  y = [0, 1]
  z = [[0, 10], [10, 0]]
}
`

func writePlotFile(t *testing.T, src string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "plot.hcl")
	require.NoError(t, os.WriteFile(fname, []byte(src), 0o644))
	return fname
}

func TestRun(t *testing.T) {
	fname := writePlotFile(t, plotFile)
	cfg, err := NewConfig(Config{PlotPath: fname, JSON: true, LogLevel: "debug", Workers: 2})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, cfg)
	require.NoError(t, a.Run(context.Background()))

	dir := filepath.Dir(fname)
	for _, name := range []string{"saddle.png", "saddle.pdf"} {
		_, err := os.Stat(filepath.Join(dir, "out", name))
		assert.NoError(t, err, name)
	}

	dec := json.NewDecoder(out)
	var names []string
	for {
		var r plot.JSONResult
		err := dec.Decode(&r)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		names = append(names, r.Name)
		if r.Name == "literal" {
			assert.Equal(t, []float64{0, 5, 10}, r.Levels)
			assert.Len(t, r.Lines[1].Segments, 2)
		}
	}
	assert.Equal(t, []string{"saddle", "literal"}, names)

	assert.Contains(t, logs.String(), "plot computed")
	assert.Contains(t, logs.String(), "output written")
	assert.Contains(t, logs.String(), "plot file loaded")
}

func TestRunView(t *testing.T) {
	fname := writePlotFile(t, plotFile)
	cfg, err := NewConfig(Config{PlotPath: fname, View: true, Workers: 1})
	require.NoError(t, err)

	a := NewApp(io.Discard, io.Discard, cfg)
	calls := 0
	a.view = func(ctx context.Context, m viewer.Model) error {
		calls++
		return nil
	}
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestRunErrors(t *testing.T) {
	cfg, err := NewConfig(Config{PlotPath: filepath.Join(t.TempDir(), "missing.hcl"), Workers: 1})
	require.NoError(t, err)
	err = NewApp(io.Discard, io.Discard, cfg).Run(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	fname := writePlotFile(t, `plot "bad" { x = [0, 1]`)
	cfg, err = NewConfig(Config{PlotPath: fname, Workers: 1})
	require.NoError(t, err)
	err = NewApp(io.Discard, io.Discard, cfg).Run(context.Background())
	assert.ErrorIs(t, err, config.ErrInvalid)

	// decreasing axis
	fname = writePlotFile(t, `plot "grid" {
  x = [1, 0]
  y = [0, 1]
  z = [[0, 1], [2, 3]]
}`)
	cfg, err = NewConfig(Config{PlotPath: fname, Workers: 1})
	require.NoError(t, err)
	err = NewApp(io.Discard, io.Discard, cfg).Run(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `plot "grid"`), err.Error())
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{Workers: 1})
	assert.Error(t, err)
	_, err = NewConfig(Config{PlotPath: "a.hcl"})
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger("warn", "json", buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
}
