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

// Package romeguide demonstrates different ways to walk the same city.
//
// A [City] holds a fixed list of places and hands out guides.  Every guide
// implements the [Guide] interface and visits each place exactly once, but in
// its own order:
//
//   - [RandomWalk] visits places in a random order;
//   - [PhoneApp] visits the popular places first;
//   - [LocalGuide] keeps the original order and shares a tip about each place.
//
// Guides are single use: once exhausted, request a new one from the City.
package romeguide

import (
	"fmt"
	"strings"
)

//go:generate mockgen -source guide.go -destination mock_guide_test.go -package romeguide -mock_names Guide=mockGuide

// Guide walks the places of a city.
type Guide interface {
	// HasNext returns true if there are places left to visit.
	HasNext() bool
	// Next returns the next stop and advances the guide.  If there are no
	// places left, it returns an empty Stop and false.
	Next() (Stop, bool)
}

// Kind is the kind of the guide.
//
//go:generate stringer -type Kind -trimprefix K
type Kind uint8

const (
	KUnknown    Kind = iota // unknown guide
	KRandomWalk             // random walk
	KPhoneApp               // phone app, popular places first
	KLocalGuide             // local guide with tips
)

// Kinds lists all valid guide kinds in menu order.
var Kinds = []Kind{KRandomWalk, KPhoneApp, KLocalGuide}

var kindAliases = map[string]Kind{
	"random":     KRandomWalk,
	"walk":       KRandomWalk,
	"randomwalk": KRandomWalk,
	"app":        KPhoneApp,
	"phone":      KPhoneApp,
	"phoneapp":   KPhoneApp,
	"guide":      KLocalGuide,
	"local":      KLocalGuide,
	"localguide": KLocalGuide,
}

// ParseKind parses the guide kind.  It accepts the short aliases ("random",
// "app", "guide", ...) as well as the kind names, case-insensitive.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return KUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Set implements flag.Value.
func (k *Kind) Set(v string) error {
	kind, err := ParseKind(v)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// cursor is the traversal position shared by all guides.
type cursor struct {
	visited int
	n       int
}

func (c *cursor) hasNext() bool {
	return c.visited < c.n
}

// advance returns the current position and moves the cursor forward.  It
// returns false if the cursor is exhausted.
func (c *cursor) advance() (int, bool) {
	if !c.hasNext() {
		return 0, false
	}
	i := c.visited
	c.visited++
	return i, true
}
