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

// Package viewer shows a contour plot in the terminal.
//
// Every change of the number of contours or of the colour ramp triggers a
// full recomputation of bands and lines.  Results arriving for an earlier
// setting are discarded.
package viewer

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/contour"
)

const (
	minContours = 2
	maxContours = 64
	rampStep    = 0.1
)

// resultMsg delivers the outcome of a recomputation.
type resultMsg struct {
	seq int
	res *contour.Result
	err error
}

// Model is the bubbletea model of the viewer.
type Model struct {
	ctx   context.Context
	title string
	grid  *contour.Grid

	engine   contour.Engine
	contours int

	// seq identifies the latest recomputation request.
	seq  int
	busy bool
	res  *contour.Result
	err  error

	showBands bool
	showLines bool

	width  int
	height int

	keys keyMap
	help help.Model
}

// New returns a viewer for grid g.  Diagnostics of the engine are not
// logged while the viewer is running.
func New(ctx context.Context, title string, g *contour.Grid, e contour.Engine, contours int) Model {
	e.Logger = nil
	return Model{
		ctx:       ctx,
		title:     title,
		grid:      g,
		engine:    e,
		contours:  max(contours, minContours),
		busy:      true,
		showBands: true,
		showLines: true,
		keys:      defaultKeys,
		help:      help.New(),
	}
}

// Run shows the viewer until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.recompute()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case resultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.busy = false
		m.res, m.err = msg.res, msg.err

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.More):
			if m.contours < maxContours {
				m.contours++
				return m.refresh()
			}
		case key.Matches(msg, m.keys.Fewer):
			if m.contours > minContours {
				m.contours--
				return m.refresh()
			}
		case key.Matches(msg, m.keys.Lines):
			m.showLines = !m.showLines
		case key.Matches(msg, m.keys.Bands):
			m.showBands = !m.showBands
		case key.Matches(msg, m.keys.SatDown):
			if adjust(&m.engine.Saturation, -rampStep) {
				return m.refresh()
			}
		case key.Matches(msg, m.keys.SatUp):
			if adjust(&m.engine.Saturation, rampStep) {
				return m.refresh()
			}
		case key.Matches(msg, m.keys.ValDown):
			if adjust(&m.engine.Value, -rampStep) {
				return m.refresh()
			}
		case key.Matches(msg, m.keys.ValUp):
			if adjust(&m.engine.Value, rampStep) {
				return m.refresh()
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// adjust adds delta to *p, keeping the value in [0, 1].
// It reports whether *p changed.
func adjust(p *float64, delta float64) bool {
	v := min(max(*p+delta, 0), 1)
	if v == *p {
		return false
	}
	*p = v
	return true
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.seq++
	m.busy = true
	return m, m.recompute()
}

func (m Model) recompute() tea.Cmd {
	ctx, g, e, n, seq := m.ctx, m.grid, m.engine, m.contours, m.seq
	return func() tea.Msg {
		res, err := e.RecomputeGrid(ctx, g, n)
		return resultMsg{seq: seq, res: res, err: err}
	}
}
