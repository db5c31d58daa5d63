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

package format

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rusq/romeguide"
)

var _ Formatter = &Text{}

type Text struct {
	opts options
}

func init() {
	converters[CText] = NewText
}

func NewText(opts ...Option) Formatter {
	var settings options
	for _, fn := range opts {
		fn(&settings)
	}
	return &Text{opts: settings}
}

// Extension returns the file extension for the formatter.
func (txt *Text) Extension() string {
	return ".txt"
}

func (txt *Text) Places(ctx context.Context, w io.Writer, city string, pp []romeguide.Place) error {
	if txt.opts.bare {
		for _, p := range pp {
			if _, err := fmt.Fprintln(w, p.Name); err != nil {
				return fmt.Errorf("writer error: %w", err)
			}
		}
		return nil
	}

	const strFormat = "%s\t%s\t%s\n"
	writer := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(writer, "Places in %s:\n\n", city); err != nil {
		return fmt.Errorf("writer error: %w", err)
	}
	// header
	if _, err := fmt.Fprintf(writer, strFormat, "#", "Name", "Category"); err != nil {
		return fmt.Errorf("writer error: %w", err)
	}
	if _, err := fmt.Fprintf(writer, strFormat, "", "", ""); err != nil {
		return fmt.Errorf("writer error: %w", err)
	}
	// data
	for i, p := range pp {
		if _, err := fmt.Fprintf(writer, strFormat, fmt.Sprint(i+1), p.Name, p.Category); err != nil {
			return fmt.Errorf("writer error: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("writer error: %w", err)
	}
	return nil
}
