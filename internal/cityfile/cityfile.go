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

// Package cityfile loads city definitions from YAML or TOML files.
package cityfile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rusq/romeguide"
)

// Format is the city file format.
type Format uint8

const (
	FUnknown Format = iota
	FYAML
	FTOML
)

var (
	ErrUnknownFormat = errors.New("unknown city file format")
	ErrUnknownKeys   = errors.New("unknown keys in city file")
)

// Place is the place definition.
type Place struct {
	Name     string `yaml:"name" toml:"name" validate:"required"`
	Category string `yaml:"category" toml:"category" validate:"required"`
}

// City is the city definition.
type City struct {
	Name        string            `yaml:"name" toml:"name" validate:"required"`
	Places      []Place           `yaml:"places" toml:"places" validate:"required,min=1,unique=Name,dive"`
	Popular     []string          `yaml:"popular,omitempty" toml:"popular,omitempty"`
	Tips        map[string]string `yaml:"tips,omitempty" toml:"tips,omitempty"`
	FallbackTip string            `yaml:"fallback_tip,omitempty" toml:"fallback_tip,omitempty"`
}

// FormatOf returns the format of the file based on its extension.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FYAML
	case ".toml":
		return FTOML
	default:
		return FUnknown
	}
}

// Load reads, parses and validates the city file.
func Load(filename string) (*City, error) {
	format := FormatOf(filename)
	if format == FUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(filename))
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Decode decodes and validates the city definition in the given format.
// Unknown keys are not allowed.
func Decode(r io.Reader, format Format) (*City, error) {
	var c City
	switch format {
	case FYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, err
		}
	case FTOML:
		md, err := toml.NewDecoder(r).Decode(&c)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// City returns the romeguide.City for the definition.  Popular places and
// tips are only overridden if the definition has them.
func (c *City) City(opts ...romeguide.Option) *romeguide.City {
	c.warnUnknown()
	places := make([]romeguide.Place, 0, len(c.Places))
	for _, p := range c.Places {
		places = append(places, romeguide.Place{Name: p.Name, Category: p.Category})
	}
	var cityOpts []romeguide.Option
	if c.Popular != nil {
		cityOpts = append(cityOpts, romeguide.WithPopular(c.Popular...))
	}
	if c.Tips != nil {
		cityOpts = append(cityOpts, romeguide.WithTips(c.Tips))
	}
	cityOpts = append(cityOpts, romeguide.WithFallbackTip(c.FallbackTip))
	return romeguide.NewCity(c.Name, places, append(cityOpts, opts...)...)
}

// warnUnknown logs the popular places and tips that refer to places that are
// not in the city.
func (c *City) warnUnknown() {
	known := make(map[string]bool, len(c.Places))
	for _, p := range c.Places {
		known[p.Name] = true
	}
	for _, name := range c.Popular {
		if !known[name] {
			slog.Warn("popular place is not in the city", "city", c.Name, "place", name)
		}
	}
	for name := range c.Tips {
		if !known[name] {
			slog.Warn("tip for the place that is not in the city", "city", c.Name, "place", name)
		}
	}
}
