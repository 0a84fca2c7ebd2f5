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

package viewer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/plot"
)

var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	errorFg   = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(errorFg)
)

// upperHalf is drawn with the upper pixel as foreground and the lower pixel
// as background colour, giving two pixels per character cell.
const upperHalf = "▀"

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" contourx ─ " + m.title + " ")

	status := dimStyle.Render(" " + m.status() + " ")
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))

	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 2)
	legend := m.renderLegend(bodyHeight)
	mapWidth := max(m.width-lipgloss.Width(legend)-1, 8)
	mapView := m.renderMap(mapWidth, bodyHeight)
	mapView = lipgloss.NewStyle().Width(mapWidth).Height(bodyHeight).Render(mapView)

	body := lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", legend)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Render(ui)
}

func (m Model) status() string {
	parts := []string{
		fmt.Sprintf("contours=%d", m.contours),
		fmt.Sprintf("saturation=%.1f", m.engine.Saturation),
		fmt.Sprintf("value=%.1f", m.engine.Value),
	}
	if m.res != nil {
		parts = append(parts, fmt.Sprintf("polygons=%d", len(m.res.Bands)))
		if m.res.Anomalies > 0 {
			parts = append(parts, fmt.Sprintf("anomalies=%d", m.res.Anomalies))
		}
	}
	if m.busy {
		parts = append(parts, "computing")
	}
	return strings.Join(parts, "  ")
}

// renderMap draws the current result into a w×h block of character
// cells.
func (m Model) renderMap(w, h int) string {
	switch {
	case m.err != nil:
		return errStyle.Render(m.err.Error())
	case m.res == nil:
		return dimStyle.Render("computing ...")
	}

	opt := plot.DefaultOptions()
	opt.Width, opt.Height = w, 2*h
	opt.Margin = 0
	opt.Background = color.Black
	opt.LineColor = color.White
	opt.Bands = m.showBands
	opt.Lines = m.showLines
	img, err := plot.Render(m.res, opt)
	if err != nil {
		return errStyle.Render(err.Error())
	}

	sb := &strings.Builder{}
	for row := range h {
		if row > 0 {
			sb.WriteByte('\n')
		}
		y := 2 * row
		for x := 0; x < w; {
			top, bottom := img.RGBAAt(x, y), img.RGBAAt(x, y+1)
			run := 1
			for x+run < w && img.RGBAAt(x+run, y) == top && img.RGBAAt(x+run, y+1) == bottom {
				run++
			}
			style := lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom))
			sb.WriteString(style.Render(strings.Repeat(upperHalf, run)))
			x += run
		}
	}
	return sb.String()
}

// renderLegend lists the bands with their colours, using at most h lines.
func (m Model) renderLegend(h int) string {
	lines := []string{titleStyle.Render("bands")}
	if m.res != nil {
		entries := m.res.Legend()
		// the box border and the title use three lines
		room := max(h-3, 1)
		for k := len(entries) - 1; k >= 0; k-- {
			if len(lines) > room {
				lines = append(lines, dimStyle.Render(fmt.Sprintf("(%d more)", k+1)))
				break
			}
			lines = append(lines, legendLine(entries[k]))
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func legendLine(e contour.LegendEntry) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(e.Color.Hex())).
		Foreground(textColor(e.Color)).
		Render(fmt.Sprintf(" %2d ", e.Index))
	return swatch + fmt.Sprintf(" %9.3g .. %-9.3g", e.Low, e.High)
}

// textColor returns black or white, whichever is easier to read on
// background c.
func textColor(c color.Color) lipgloss.Color {
	cf, _ := colorful.MakeColor(c)
	if l, _, _ := cf.Lab(); l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

func hex(c color.RGBA) lipgloss.Color {
	cf, _ := colorful.MakeColor(c)
	return lipgloss.Color(cf.Hex())
}
