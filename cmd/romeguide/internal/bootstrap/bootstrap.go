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

// Package bootstrap contains the helpers that initialise the city for the
// commands from the configuration.
package bootstrap

import (
	"log/slog"

	"github.com/rusq/romeguide"
	"github.com/rusq/romeguide/cmd/romeguide/internal/cfg"
	"github.com/rusq/romeguide/internal/cityfile"
)

// City returns the city to explore.  If the city file is set, the city is
// loaded from it, otherwise it's Rome.  The seed from the configuration is
// applied to the random walks.
func City() (*romeguide.City, error) {
	return CityFrom(cfg.CityFile, cfg.Seed)
}

// CityFrom returns the city defined in the file filename, or Rome if
// filename is empty.
func CityFrom(filename string, seed uint64) (*romeguide.City, error) {
	opts := []romeguide.Option{romeguide.WithSeed(seed)}
	if filename == "" {
		slog.Debug("using the built-in city", "seed", seed)
		return romeguide.Rome(opts...), nil
	}
	c, err := cityfile.Load(filename)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded city", "filename", filename, "city", c.Name, "places", len(c.Places), "seed", seed)
	return c.City(opts...), nil
}
