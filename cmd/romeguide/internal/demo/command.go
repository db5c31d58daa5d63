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
	"os"

	"github.com/rusq/romeguide/cmd/romeguide/internal/bootstrap"
	"github.com/rusq/romeguide/cmd/romeguide/internal/golang/base"
	"github.com/rusq/romeguide/cmd/romeguide/internal/ui"
)

var CmdDemo = &base.Command{
	Run:       runDemo,
	UsageLine: "romeguide demo [flags]",
	Short:     "explore the city interactively (default)",
	Long: `
# Demo Command

Demo lets you explore the city interactively: choose the way to walk the
city, the number of places to visit, or compare all three ways side by side.

The interactive menus are shown when running in the terminal, otherwise, or
if -plain flag is given, the questions are asked line by line.  Use Esc or
Ctrl+C to leave.
`,
	PrintFlags: true,
}

var plain bool

func init() {
	CmdDemo.Flag.BoolVar(&plain, "plain", false, "plain line-by-line prompts without colours")
}

func runDemo(ctx context.Context, cmd *base.Command, args []string) error {
	city, err := bootstrap.City()
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}

	var (
		p     Prompter
		theme = ui.PlainTheme()
	)
	if plain || !ui.IsInteractive() {
		p = NewLinePrompter(os.Stdin, os.Stdout)
	} else {
		p = &TerminalPrompter{Description: city.Name()}
		theme = ui.DefaultTheme()
	}

	d, err := New(city, p, os.Stdout, WithTheme(theme))
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	if err := d.Run(ctx); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	return nil
}
