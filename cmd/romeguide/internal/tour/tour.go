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

// Package tour implements the non-interactive "tour" and "compare" commands.
package tour

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rusq/romeguide"
	"github.com/rusq/romeguide/cmd/romeguide/internal/bootstrap"
	"github.com/rusq/romeguide/cmd/romeguide/internal/golang/base"
)

var CmdTour = &base.Command{
	Run:        runTour,
	UsageLine:  "romeguide tour [flags] random|app|guide",
	Short:      "take a single tour of the city",
	PrintFlags: true,
	Long: `
# Tour Command

Tour visits the places of the city with the chosen guide and narrates each
visit:

- random (walk):  random order, every place once;
- app (phone):    popular places first;
- guide (local):  the city order, with a tip about each place.

Use -seed flag to repeat the same random walk.
`,
}

var CmdCompare = &base.Command{
	Run:        runCompare,
	UsageLine:  "romeguide compare [flags]",
	Short:      "compare all guides",
	PrintFlags: true,
	Long: `
# Compare Command

Compare takes the tour of the same city with each guide, one after another,
so that the difference is easy to see.
`,
}

type flags struct {
	maxPlaces int
	name      string
}

var (
	tourFlags    = flags{maxPlaces: romeguide.DefMaxPlaces, name: "You"}
	compareFlags = flags{maxPlaces: romeguide.DefMaxPlaces, name: "You"}
)

func init() {
	addFlags(CmdTour, &tourFlags)
	addFlags(CmdCompare, &compareFlags)
}

func addFlags(cmd *base.Command, f *flags) {
	cmd.Flag.IntVar(&f.maxPlaces, "n", f.maxPlaces, "maximum `number` of places to visit")
	cmd.Flag.StringVar(&f.name, "name", f.name, "tourist `name`")
}

var errNoKind = errors.New("guide kind is required, one of: random, app, guide")

func runTour(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errNoKind
	}
	kind, err := romeguide.ParseKind(args[0])
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	city, tourist, err := setup(tourFlags)
	if err != nil {
		return err
	}
	if _, err := tour(os.Stdout, city, tourist, kind, tourFlags.maxPlaces); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	return nil
}

func runCompare(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	city, tourist, err := setup(compareFlags)
	if err != nil {
		return err
	}
	if err := compare(os.Stdout, city, tourist, compareFlags.maxPlaces); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	return nil
}

// setup validates the flags and initialises the city and the tourist.
func setup(f flags) (*romeguide.City, *romeguide.Tourist, error) {
	if f.maxPlaces < 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return nil, nil, fmt.Errorf("%w: %d", romeguide.ErrInvalidMax, f.maxPlaces)
	}
	tourist, err := romeguide.NewTourist(f.name)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return nil, nil, err
	}
	city, err := bootstrap.City()
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return nil, nil, err
	}
	return city, tourist, nil
}

// tour takes the tour of the city with the guide of kind k, and writes the
// narration to w.  It returns the number of visited places.
func tour(w io.Writer, city *romeguide.City, tourist *romeguide.Tourist, k romeguide.Kind, maxPlaces int) (int, error) {
	g, err := city.Guide(k)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(w, "%s starting tour of %s with %s...\n", tourist.Name(), city.Name(), k)
	n, err := tourist.Visit(g, maxPlaces, func(n int, s romeguide.Stop) error {
		_, err := fmt.Fprintf(w, "  %s stop: %s\n  ✅ Visited: %s\n", humanize.Ordinal(n), s.Note, s.Place)
		return err
	})
	if err != nil {
		return n, err
	}
	fmt.Fprintf(w, "%s tour finished! Saw %d places.\n", tourist.Name(), n)
	return n, nil
}

// compare takes the tour with each kind of guide.
func compare(w io.Writer, city *romeguide.City, tourist *romeguide.Tourist, maxPlaces int) error {
	for i, k := range romeguide.Kinds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := k.String()
		fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
		if _, err := tour(w, city, tourist, k, maxPlaces); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}
