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

// Package demo implements the interactive demo of the city guides.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rusq/romeguide"
	"github.com/rusq/romeguide/cmd/romeguide/internal/ui"
)

// maxExplore is the maximum number of places the user can choose to explore.
const maxExplore = 5

var titlecase = cases.Title(language.English)

// method describes the way to explore the city.
type method struct {
	kind  romeguide.Kind
	icon  string
	name  string
	menu  string // menu item description
	intro string // shown when the exploration starts
	short string // shown in comparison
}

var methods = []method{
	{
		kind:  romeguide.KRandomWalk,
		icon:  "🎲",
		name:  "Random Walk",
		menu:  "get lost and discover accidentally",
		intro: "Starting random walk...",
		short: "Chaotic but adventurous!",
	},
	{
		kind:  romeguide.KPhoneApp,
		icon:  "📱",
		name:  "Phone App",
		menu:  "efficient, popular places first",
		intro: "Opening tourist app...",
		short: "Efficient and popular spots first",
	},
	{
		kind:  romeguide.KLocalGuide,
		icon:  "🎭",
		name:  "Local Guide",
		menu:  "insider knowledge & secrets",
		intro: "Meeting your local guide...",
		short: "Insider knowledge and secrets",
	},
}

// stopIcons are shown before the guide narration.
var stopIcons = map[romeguide.Kind]string{
	romeguide.KRandomWalk: "🚶",
	romeguide.KPhoneApp:   "📱",
	romeguide.KLocalGuide: "🎭",
}

// menu choices.
const (
	chRandomWalk = iota + 1
	chPhoneApp
	chLocalGuide
	chCompare
	chExit
)

var menuOptions = []string{
	"🎲 Random Walk (get lost and discover accidentally)",
	"📱 Use Phone App (efficient, popular places first)",
	"🎭 Hire Local Guide (insider knowledge & secrets)",
	"🔄 Compare all three methods",
	"❌ Exit",
}

// Demo is the interactive demo controller.
type Demo struct {
	city    *romeguide.City
	name    string // title-cased city name
	tourist *romeguide.Tourist
	p       Prompter
	w       io.Writer
	theme   ui.Theme
	newID   func() uuid.UUID // tour id generator
}

// Option is the Demo option.
type Option func(*Demo)

// WithTheme sets the output theme.
func WithTheme(t ui.Theme) Option {
	return func(d *Demo) {
		d.theme = t
	}
}

// WithTourist sets the tourist name.  The default is "You".
func WithTourist(t *romeguide.Tourist) Option {
	return func(d *Demo) {
		if t != nil {
			d.tourist = t
		}
	}
}

// New creates a new Demo for the city.  The questions are asked using the
// Prompter p, the output is written to w.
func New(city *romeguide.City, p Prompter, w io.Writer, opts ...Option) (*Demo, error) {
	if city == nil {
		city = romeguide.NewCity("", nil)
	}
	// every guide of the menu must be available.
	for _, k := range romeguide.Kinds {
		if _, err := city.Guide(k); err != nil {
			return nil, err
		}
	}
	tourist, err := romeguide.NewTourist("You")
	if err != nil {
		return nil, err
	}
	d := &Demo{
		city:    city,
		name:    titlecase.String(city.Name()),
		tourist: tourist,
		p:       p,
		w:       w,
		theme:   ui.PlainTheme(),
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// isExit returns true if the error means that the user wants to leave.
func isExit(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}

// Run runs the demo until the user exits, the input ends, or the context is
// cancelled.
func (d *Demo) Run(ctx context.Context) error {
	d.welcome()
	if err := d.mainMenu(ctx); err != nil {
		if isExit(err) {
			slog.Debug("demo interrupted", "reason", err)
			return nil
		}
		return err
	}
	return nil
}

func (d *Demo) welcome() {
	fmt.Fprintln(d.w, d.theme.Banner.Render(fmt.Sprintf("🏛️ Welcome to %s! Let's explore the city together!", d.name)))
	fmt.Fprintln(d.w, strings.Repeat("=", 50))

	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, d.theme.Title.Render(fmt.Sprintf("📍 Places you can visit in %s:", d.name)))
	for i, p := range d.city.Places() {
		fmt.Fprintf(d.w, "   %d. %s %s\n", i+1, d.theme.Place.Render(p.Name), d.theme.Category.Render("("+p.Category+")"))
	}
	fmt.Fprintln(d.w)
}

func (d *Demo) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := d.p.Menu(ctx, fmt.Sprintf("🚶 How would you like to explore %s today?", d.name), menuOptions)
		if err != nil {
			return err
		}
		switch choice {
		case chRandomWalk, chPhoneApp, chLocalGuide:
			err = d.explore(ctx, methods[choice-1])
		case chCompare:
			err = d.compare(ctx)
		case chExit:
			fmt.Fprintf(d.w, "\n👋 Arrivederci! Thanks for visiting %s!\n", d.name)
			return nil
		default:
			// prompters do not return invalid choices, but just in case.
			fmt.Fprintln(d.w, d.theme.Error.Render(msgInvalidChoice))
		}
		if err != nil {
			return err
		}
	}
}

// explore explores the city with the method m.
func (d *Demo) explore(ctx context.Context, m method) error {
	maxPlaces, err := d.p.Number(ctx, "How many places would you like to visit?", 1, min(d.city.Len(), maxExplore))
	if err != nil {
		return err
	}
	g, err := d.city.Guide(m.kind)
	if err != nil {
		return err
	}

	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, d.theme.Intro.Render(m.icon+" "+m.intro))
	fmt.Fprintln(d.w, strings.Repeat("-", 40))

	id := d.newID()
	lg := slog.With("session", id, "kind", m.kind)
	lg.Debug("exploring", "max_places", maxPlaces)
	n, err := d.tourist.Visit(g, maxPlaces, func(n int, s romeguide.Stop) error {
		fmt.Fprintln(d.w)
		fmt.Fprintln(d.w, d.theme.Stop.Render(stopIcons[s.Kind]+" "+s.Note))
		fmt.Fprintf(d.w, "✅ Now visiting: %s\n", s.Place.Name)
		fmt.Fprintf(d.w, "   Type: %s\n", s.Place.Category)
		fmt.Fprintf(d.w, "   Stop: %s of %d\n", humanize.Ordinal(n), maxPlaces)
		if n < maxPlaces && g.HasNext() {
			return d.p.Pause(ctx, "   Press Enter to continue to next place...")
		}
		return nil
	})
	if err != nil {
		return err
	}
	lg.Debug("exploration finished", "visited", n)

	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, d.theme.Summary.Render(fmt.Sprintf("🎉 Tour complete! You visited %d amazing places in %s.", n, d.name)))
	fmt.Fprintln(d.w, "   "+d.theme.Muted.Render("Tour id: "+id.String()))
	return d.backToMenu(ctx)
}

// compare visits the city with all methods.
func (d *Demo) compare(ctx context.Context) error {
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, d.theme.Title.Render("🔍 Comparing all three exploration methods..."))
	fmt.Fprintln(d.w, strings.Repeat("=", 50))

	id := d.newID()
	lg := slog.With("session", id)
	for _, m := range methods {
		g, err := d.city.Guide(m.kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(d.w)
		fmt.Fprintln(d.w, d.theme.Intro.Render(fmt.Sprintf("%s %s (%s):", m.icon, m.name, m.short)))
		n, err := d.tourist.Visit(g, romeguide.DefMaxPlaces, func(_ int, s romeguide.Stop) error {
			fmt.Fprintf(d.w, "   %s %s\n", stopIcons[s.Kind], d.theme.Stop.Render(s.Note))
			return nil
		})
		if err != nil {
			return err
		}
		lg.Debug("compared", "kind", m.kind, "visited", n)
		fmt.Fprintf(d.w, "   → Visited %d places\n", n)
	}

	fmt.Fprintln(d.w)
	fmt.Fprintf(d.w, "💡 Notice: Same %s, completely different experiences!\n", d.name)
	fmt.Fprintln(d.w, d.theme.Muted.Render("Same collection of places, different ways to walk it."))
	fmt.Fprintln(d.w, d.theme.Muted.Render("Comparison id: "+id.String()))
	return d.backToMenu(ctx)
}

func (d *Demo) backToMenu(ctx context.Context) error {
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, strings.Repeat("-", 40))
	if err := d.p.Pause(ctx, "Press Enter to return to main menu..."); err != nil {
		return err
	}
	fmt.Fprintln(d.w)
	return nil
}
