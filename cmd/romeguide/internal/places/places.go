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

// Package places implements the "places" command.
package places

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rusq/romeguide"
	"github.com/rusq/romeguide/cmd/romeguide/internal/bootstrap"
	"github.com/rusq/romeguide/cmd/romeguide/internal/cfg"
	"github.com/rusq/romeguide/cmd/romeguide/internal/golang/base"
	"github.com/rusq/romeguide/internal/format"
)

var CmdPlaces = &base.Command{
	Run:        runPlaces,
	UsageLine:  "romeguide places [flags] [filename]",
	Short:      "list places of the city",
	FlagMask:   cfg.OmitSeedFlag,
	PrintFlags: true,
	Long: fmt.Sprintf(`
# Places Command

Places lists the places of the city in the desired format.  The places are
printed on the screen, unless the filename is given.  If the filename has no
extension, the extension of the format is added.

Supported formats:
%s`, formatList()),
}

type options struct {
	listType format.Type
	bare     bool
}

var opts = options{
	listType: format.CText,
}

func init() {
	CmdPlaces.Flag.Var(&opts.listType, "format", fmt.Sprintf("listing format, should be one of: %v", format.All()))
	CmdPlaces.Flag.BoolVar(&opts.bare, "bare", false, "bare output, place names only")
}

// formatList returns the list of supported formats with their descriptions.
func formatList() string {
	var buf strings.Builder
	for _, typ := range format.All() {
		fmt.Fprintf(&buf, "  - %s: %s\n", strings.ToLower(typ.String()), format.Descriptions[typ])
	}
	return buf.String()
}

func runPlaces(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("too many arguments: %v", args)
	}
	city, err := bootstrap.City()
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}

	var filename string
	if len(args) == 1 {
		filename = args[0]
	}
	if err := save(ctx, filename, city, opts.listType, opts.bare); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	return nil
}

// save writes the places of the city to the file filename.  Empty filename
// or "-" is the standard output.
func save(ctx context.Context, filename string, city *romeguide.City, typ format.Type, bare bool) error {
	if filename == "" || filename == "-" {
		return fmtPrint(ctx, os.Stdout, city, typ, bare)
	}
	fmtFn, ok := typ.FormatFunc()
	if !ok {
		return fmt.Errorf("unknown converter type: %s", typ)
	}
	if filepath.Ext(filename) == "" {
		filename += fmtFn().Extension()
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if err := fmtPrint(ctx, f, city, typ, bare); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.InfoContext(ctx, "places saved", "filename", filename, "format", typ)
	return nil
}

// fmtPrint prints the places of the city to w in the format typ.
func fmtPrint(ctx context.Context, w io.Writer, city *romeguide.City, typ format.Type, bare bool) error {
	initFn, ok := typ.FormatFunc()
	if !ok {
		return fmt.Errorf("unknown converter type: %s", typ)
	}
	return initFn(format.WithBareFormat(bare)).Places(ctx, w, city.Name(), city.Places())
}
