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
	"encoding/json"
	"io"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// JSONResult is the JSON representation of a contour.Result.
// Points are written as [x, y] pairs and colours as "#rrggbb".
type JSONResult struct {
	Name      string      `json:"name,omitempty"`
	Levels    []float64   `json:"levels"`
	Colors    []string    `json:"colors"`
	Bands     []JSONBand  `json:"bands"`
	Lines     []JSONLevel `json:"lines"`
	Anomalies int         `json:"anomalies,omitempty"`
}

// JSONBand is one band polygon.  Cell holds the grid indices (i, j).
type JSONBand struct {
	Index   int          `json:"index"`
	Cell    [2]int       `json:"cell"`
	Color   string       `json:"color"`
	Polygon [][2]float64 `json:"polygon"`
}

// JSONLevel holds the contour segments of one level.
type JSONLevel struct {
	Level    float64         `json:"level"`
	Segments [][2][2]float64 `json:"segments"`
}

// NewJSONResult converts res for JSON output.
func NewJSONResult(name string, res *contour.Result) JSONResult {
	jr := JSONResult{
		Name:      name,
		Levels:    res.Levels,
		Colors:    make([]string, len(res.Colors)),
		Bands:     make([]JSONBand, len(res.Bands)),
		Lines:     make([]JSONLevel, len(res.Lines)),
		Anomalies: res.Anomalies,
	}
	for k, c := range res.Colors {
		jr.Colors[k] = c.Hex()
	}
	for k, b := range res.Bands {
		jb := JSONBand{
			Index:   b.Index,
			Cell:    [2]int{b.I, b.J},
			Color:   b.Color.Hex(),
			Polygon: make([][2]float64, len(b.Polygon)),
		}
		for i, p := range b.Polygon {
			jb.Polygon[i] = point(p)
		}
		jr.Bands[k] = jb
	}
	for k, l := range res.Lines {
		jl := JSONLevel{
			Level:    l.Level,
			Segments: make([][2][2]float64, len(l.Segments)),
		}
		for i, s := range l.Segments {
			jl.Segments[i] = [2][2]float64{point(s.A), point(s.B)}
		}
		jr.Lines[k] = jl
	}
	return jr
}

// EncodeJSON writes res to w as indented JSON.
func EncodeJSON(w io.Writer, name string, res *contour.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONResult(name, res))
}

func point(p vec.Vec2) [2]float64 {
	return [2]float64{p.X, p.Y}
}
