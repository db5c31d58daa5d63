// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme is the set of styles of the demo output.
type Theme struct {
	// Banner is the welcome banner box.
	Banner lipgloss.Style
	// Title is the section title, i.e. "Rome places:".
	Title lipgloss.Style
	// Place is the place name in the lists.
	Place lipgloss.Style
	// Category is the place category.
	Category lipgloss.Style
	// Intro is the strategy introduction line.
	Intro lipgloss.Style
	// Stop is the narration of the single visit.
	Stop lipgloss.Style
	// Summary is the tour summary line.
	Summary lipgloss.Style
	// Muted is the style for the hints, i.e. "Press Enter to continue".
	Muted lipgloss.Style
	Error lipgloss.Style
}

var (
	black  = lipgloss.Color("0")
	red    = lipgloss.Color("1")
	green  = lipgloss.Color("2")
	yellow = lipgloss.Color("3")
	cyan   = lipgloss.AdaptiveColor{Light: "4", Dark: "6"}
	purple = lipgloss.Color("5")
	white  = lipgloss.AdaptiveColor{Light: "0", Dark: "7"}
	gray   = lipgloss.Color("8")
	ltred  = lipgloss.Color("9")
)

// DefaultTheme returns the default demo theme.
func DefaultTheme() Theme {
	return Theme{
		Banner:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(cyan).Padding(0, 2).Bold(true),
		Title:    lipgloss.NewStyle().Foreground(green).Bold(true),
		Place:    lipgloss.NewStyle().Foreground(white),
		Category: lipgloss.NewStyle().Foreground(gray),
		Intro:    lipgloss.NewStyle().Foreground(yellow),
		Stop:     lipgloss.NewStyle().Foreground(white),
		Summary:  lipgloss.NewStyle().Foreground(green).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(gray),
		Error:    lipgloss.NewStyle().Foreground(red).Bold(true),
	}
}

// PlainTheme returns the theme without any styling.
func PlainTheme() Theme {
	return Theme{
		Banner:   lipgloss.NewStyle(),
		Title:    lipgloss.NewStyle(),
		Place:    lipgloss.NewStyle(),
		Category: lipgloss.NewStyle(),
		Intro:    lipgloss.NewStyle(),
		Stop:     lipgloss.NewStyle(),
		Summary:  lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
	}
}

// HuhTheme returns the theme for huh forms.
func HuhTheme() *huh.Theme {
	return ThemeBase16Ext()
}

// ThemeBase16Ext returns a modified Base16 theme based on huh.ThemeBase16.
func ThemeBase16Ext() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(gray)
	t.Focused.Title = t.Focused.Title.Foreground(cyan)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(cyan)
	t.Focused.Description = t.Focused.Description.Foreground(gray)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ltred)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ltred)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(yellow)
	t.Focused.Option = t.Focused.Option.Foreground(white)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(black).Background(green)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(white).Background(purple)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(white).Background(black)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(yellow)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(gray)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(gray)

	return t
}
