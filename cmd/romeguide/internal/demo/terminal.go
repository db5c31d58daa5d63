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

package demo

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rusq/romeguide/cmd/romeguide/internal/ui"
)

// TerminalPrompter is the Prompter for interactive terminals.
type TerminalPrompter struct {
	// Description is shown under the menu title.
	Description string
}

const kSelection = "selection" // selection key

// menuModel is the menu that quits on the escape key.
type menuModel struct {
	form     *huh.Form
	val      int
	finished bool
}

func newMenuModel(title, description string, options []string) *menuModel {
	opts := make([]huh.Option[int], 0, len(options))
	for i, o := range options {
		opts = append(opts, huh.NewOption(o, i+1))
	}
	return &menuModel{
		form: huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Key(kSelection).
					Title(title).
					Description(description).
					Options(opts...),
			),
		).WithTheme(ui.HuhTheme()).WithKeyMap(ui.DefaultHuhKeymap),
	}
}

func (m *menuModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "q":
			m.finished = true
			return m, tea.Quit
		}
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
		cmds = append(cmds, cmd)
	}

	if m.form.State == huh.StateCompleted {
		if v, ok := m.form.Get(kSelection).(int); ok {
			m.val = v
		}
		cmds = append(cmds, tea.Quit)
	}

	return m, tea.Batch(cmds...)
}

func (m *menuModel) View() string {
	if m.finished {
		return ""
	}
	return m.form.View()
}

func (p *TerminalPrompter) Menu(ctx context.Context, title string, options []string) (int, error) {
	m := newMenuModel(title, p.Description, options)
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, err
	}
	if m.finished || m.val == 0 {
		return 0, huh.ErrUserAborted
	}
	return m.val, nil
}

func (p *TerminalPrompter) Number(ctx context.Context, msg string, lo, hi int) (int, error) {
	var resp string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(msg).
			Description(fmt.Sprintf("Enter a number from %d to %d.", lo, hi)).
			Validate(ui.ValidateRange(lo, hi)).
			Value(&resp),
	)).WithTheme(ui.HuhTheme()).WithKeyMap(ui.DefaultHuhKeymap).RunWithContext(ctx); err != nil {
		return 0, err
	}
	return ui.ParseRange(resp, lo, hi)
}

func (p *TerminalPrompter) Pause(ctx context.Context, msg string) error {
	return huh.NewForm(huh.NewGroup(
		huh.NewNote().Title(strings.TrimSpace(msg)).Next(true).NextLabel("Continue"),
	)).WithTheme(ui.HuhTheme()).WithKeyMap(ui.DefaultHuhKeymap).RunWithContext(ctx)
}
