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
	"maps"
	"math/rand/v2"
	"slices"
)

// Option is the signature of the option-setting function.
type Option func(*config)

// WithPopular sets the list of the popular places for the PhoneApp, most
// popular first.  Calling it with no names disables the popularity ordering.
func WithPopular(names ...string) Option {
	return func(c *config) {
		c.popular = slices.Clone(names)
	}
}

// WithTips sets the local guide tips.
func WithTips(tips map[string]string) Option {
	return func(c *config) {
		c.tips = maps.Clone(tips)
	}
}

// WithFallbackTip sets the tip for the places that don't have one.  Empty
// value is ignored.
func WithFallbackTip(tip string) Option {
	return func(c *config) {
		if tip != "" {
			c.fallbackTip = tip
		}
	}
}

// WithRand sets the random source for random walks.  Useful for reproducible
// walks.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed is a convenience wrapper around WithRand, that seeds the random
// source with seed.  Zero seed leaves the global random source in place.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		if seed == 0 {
			return
		}
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}
