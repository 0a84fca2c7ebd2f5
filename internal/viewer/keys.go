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

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	More, Fewer    key.Binding
	Lines, Bands   key.Binding
	SatDown, SatUp key.Binding
	ValDown, ValUp key.Binding
	Help, Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.More, k.Fewer, k.Lines, k.Bands, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.More, k.Fewer},
		{k.Lines, k.Bands},
		{k.SatDown, k.SatUp, k.ValDown, k.ValUp},
		{k.Help, k.Quit},
	}
}

var defaultKeys = keyMap{
	More: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more contours"),
	),
	Fewer: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "fewer contours"),
	),
	Lines: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "lines"),
	),
	Bands: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bands"),
	),
	SatDown: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "less saturation"),
	),
	SatUp: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "more saturation"),
	),
	ValDown: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "darker"),
	),
	ValUp: key.NewBinding(
		key.WithKeys("V"),
		key.WithHelp("V", "brighter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
