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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rusq/romeguide/cmd/romeguide/internal/ui"
)

//go:generate mockgen -source prompter.go -destination mock_prompter_test.go -package demo -mock_names Prompter=mockPrompter

// Prompter asks the user questions.
type Prompter interface {
	// Menu shows the menu with the title and options, and returns the
	// chosen option number, starting from 1.
	Menu(ctx context.Context, title string, options []string) (int, error)
	// Number asks for the number in the range [lo, hi].
	Number(ctx context.Context, msg string, lo, hi int) (int, error)
	// Pause waits for the user to acknowledge the message.
	Pause(ctx context.Context, msg string) error
}

var (
	msgInvalidChoice = "❌ Invalid choice. Please try again."
	msgNotANumber    = "❌ Please enter a valid number."
)

// LinePrompter is the Prompter that reads the answers line by line.  It is
// used when the terminal is not interactive.  When the input ends, the
// methods return io.EOF.
type LinePrompter struct {
	sc  *bufio.Scanner
	w   io.Writer
	red *color.Color
}

// NewLinePrompter creates a new LinePrompter, that reads answers from r and
// writes the questions to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{
		sc:  bufio.NewScanner(r),
		w:   w,
		red: color.New(color.FgRed),
	}
}

// readLine reads the next line of input.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.sc.Text(), nil
}

func (p *LinePrompter) ask(ctx context.Context, question string) (string, error) {
	fmt.Fprint(p.w, question)
	return p.readLine(ctx)
}

func (p *LinePrompter) Menu(ctx context.Context, title string, options []string) (int, error) {
	for {
		fmt.Fprintln(p.w, title)
		for i, opt := range options {
			fmt.Fprintf(p.w, "%d. %s\n", i+1, opt)
		}
		ans, err := p.ask(ctx, fmt.Sprintf("\nEnter your choice (1-%d): ", len(options)))
		if err != nil {
			return 0, err
		}
		n, err := ui.ParseRange(ans, 1, len(options))
		if err == nil {
			return n, nil
		}
		p.red.Fprintln(p.w, msgInvalidChoice)
		fmt.Fprintln(p.w)
	}
}

func (p *LinePrompter) Number(ctx context.Context, msg string, lo, hi int) (int, error) {
	for {
		ans, err := p.ask(ctx, fmt.Sprintf("%s (%d-%d): ", msg, lo, hi))
		if err != nil {
			return 0, err
		}
		n, err := ui.ParseRange(ans, lo, hi)
		if err == nil {
			return n, nil
		}
		var re ui.RangeError
		if errors.As(err, &re) {
			p.red.Fprintf(p.w, "❌ Please enter a number between %d and %d.\n", re.Lo, re.Hi)
		} else {
			p.red.Fprintln(p.w, msgNotANumber)
		}
	}
}

func (p *LinePrompter) Pause(ctx context.Context, msg string) error {
	_, err := p.ask(ctx, msg)
	return err
}
