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

package romeguide

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// City holds the places to visit and creates guides for them.  The list of
// places is fixed at creation time.
type City struct {
	name   string
	places []Place
	cfg    config
}

// RomePlaces are the places of Rome.
var RomePlaces = []Place{
	{Name: "Colosseum", Category: "ancient"},
	{Name: "Vatican", Category: "religious"},
	{Name: "Trevi Fountain", Category: "fountain"},
	{Name: "Pantheon", Category: "ancient"},
	{Name: "Spanish Steps", Category: "stairs"},
}

// NewCity creates a new City with the given places.  The places, popular
// places and tips are copied, modifying them after the call does not affect
// the City.  NewCity does
// not validate places, an empty City will fail to create guides with the
// ConstructionError.
func NewCity(name string, places []Place, opts ...Option) *City {
	cfg := defConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	// the City owns its tables, later changes to the defaults or to the
	// option arguments are not visible to it.
	cfg.popular = slices.Clone(cfg.popular)
	cfg.tips = maps.Clone(cfg.tips)
	return &City{
		name:   name,
		places: slices.Clone(places),
		cfg:    cfg,
	}
}

// Rome returns the City of Rome.
func Rome(opts ...Option) *City {
	return NewCity("Rome", RomePlaces, opts...)
}

// Name returns the name of the city.
func (c *City) Name() string {
	return c.name
}

// Len returns the number of places in the city.
func (c *City) Len() int {
	return len(c.places)
}

// Places returns a copy of the list of places.
func (c *City) Places() []Place {
	return slices.Clone(c.places)
}

// RandomWalk returns a new RandomWalk guide.
func (c *City) RandomWalk() (Guide, error) {
	rw, err := NewRandomWalk(c.places, c.cfg.rng)
	if err != nil {
		return nil, err
	}
	return rw, nil
}

// PhoneApp returns a new PhoneApp guide.
func (c *City) PhoneApp() (Guide, error) {
	pa, err := NewPhoneApp(c.places, c.cfg.popular)
	if err != nil {
		return nil, err
	}
	return pa, nil
}

// LocalGuide returns a new LocalGuide.
func (c *City) LocalGuide() (Guide, error) {
	lg, err := NewLocalGuide(c.places, c.cfg.tips, c.cfg.fallbackTip)
	if err != nil {
		return nil, err
	}
	return lg, nil
}

// Guide returns a new guide of the kind k.
func (c *City) Guide(k Kind) (Guide, error) {
	var (
		g   Guide
		err error
	)
	switch k {
	case KRandomWalk:
		g, err = c.RandomWalk()
	case KPhoneApp:
		g, err = c.PhoneApp()
	case KLocalGuide:
		g, err = c.LocalGuide()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	if err != nil {
		slog.Debug("failed to create a guide", "city", c.name, "kind", k, "error", err)
		return nil, err
	}
	return g, nil
}
