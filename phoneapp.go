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
	"cmp"
	"log/slog"
	"slices"
)

// DefaultPopular is the default list of the most popular places, in the
// order of popularity.
var DefaultPopular = []string{"Colosseum", "Vatican", "Trevi Fountain"}

// PhoneApp visits the popular places first, then the rest of the places in
// their original order.
type PhoneApp struct {
	sorted []Place
	cur    cursor
}

var _ Guide = (*PhoneApp)(nil)

// NewPhoneApp creates a new PhoneApp over places.  popular lists the names of
// the popular places, most popular first.  Places that are not in the popular
// list are considered equal and keep their relative order.
func NewPhoneApp(places []Place, popular []string) (*PhoneApp, error) {
	if len(places) == 0 {
		return nil, &ConstructionError{Kind: KPhoneApp, Err: ErrNoPlaces}
	}
	sorted := slices.Clone(places)
	slices.SortStableFunc(sorted, byPopularity(popular))
	slog.Debug("phone app created", "popular", popular, "places", len(sorted))
	return &PhoneApp{
		sorted: sorted,
		cur:    cursor{n: len(sorted)},
	}, nil
}

// byPopularity returns the comparison function that orders places by their
// position in the popular list.
func byPopularity(popular []string) func(a, b Place) int {
	rank := make(map[string]int, len(popular))
	for i, name := range popular {
		if _, seen := rank[name]; !seen {
			rank[name] = i
		}
	}
	rankOf := func(p Place) int {
		if r, ok := rank[p.Name]; ok {
			return r
		}
		return len(popular)
	}
	return func(a, b Place) int {
		return cmp.Compare(rankOf(a), rankOf(b))
	}
}

func (pa *PhoneApp) HasNext() bool {
	return pa.cur.hasNext()
}

func (pa *PhoneApp) Next() (Stop, bool) {
	i, ok := pa.cur.advance()
	if !ok {
		return Stop{}, false
	}
	p := pa.sorted[i]
	return Stop{
		Place: p,
		Kind:  KPhoneApp,
		Note:  "App suggests: " + p.Name + " (popular destination)",
	}, true
}
