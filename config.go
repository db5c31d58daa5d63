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

// In this file: city config.

import (
	"math/rand/v2"
)

// config is the option set for the City.
type config struct {
	popular     []string          // popular places, most popular first
	tips        map[string]string // local guide tips by place name
	fallbackTip string            // tip for places without one
	rng         *rand.Rand        // random source for the random walk, nil means global.
}

// defConfig is the default config used when initialising the City.
var defConfig = config{
	popular:     DefaultPopular,
	tips:        DefaultTips,
	fallbackTip: DefaultTip,
}
