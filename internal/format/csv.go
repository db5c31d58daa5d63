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
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rusq/romeguide"
)

type CSV struct {
	opts options
}

type csvOptions struct {
	UseCRLF bool
	Comma   rune
}

func init() {
	converters[CCSV] = NewCSV
}

func NewCSV(opts ...Option) Formatter {
	settings := options{
		csvOptions: csvOptions{
			UseCRLF: false,
			Comma:   ',',
		},
	}
	for _, fn := range opts {
		fn(&settings)
	}
	return &CSV{settings}
}

// CSVComma sets the field delimiter.
func CSVComma(r rune) Option {
	return func(o *options) {
		o.csvOptions.Comma = r
	}
}

// Extension returns the file extension for the formatter.
func (c CSV) Extension() string {
	return ".csv"
}

func (c *CSV) Places(_ context.Context, w io.Writer, city string, pp []romeguide.Place) error {
	csv := c.mkwriter(w)

	if c.opts.bare {
		for _, p := range pp {
			if err := csv.Write([]string{p.Name}); err != nil {
				return err
			}
		}
		csv.Flush()
		return csv.Error()
	}

	if err := csv.Write([]string{"#", "City", "Name", "Category"}); err != nil {
		return err
	}
	for i, p := range pp {
		if err := csv.Write([]string{strconv.Itoa(i + 1), city, p.Name, p.Category}); err != nil {
			return err
		}
	}
	csv.Flush()
	return csv.Error()
}

func (c *CSV) mkwriter(w io.Writer) *csv.Writer {
	csv := csv.NewWriter(w)
	csv.Comma = c.opts.Comma
	csv.UseCRLF = c.opts.UseCRLF
	return csv
}
