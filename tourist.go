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
	"log/slog"
	"strings"
)

// DefMaxPlaces is the default number of places a tourist visits.
const DefMaxPlaces = 3

// Tourist visits places with the help of a guide.
type Tourist struct {
	name string
}

// VisitFunc is called by Visit for each visited stop.  n is the number of the
// stop, starting from 1.  If it returns an error, the visit stops and Visit
// returns the error.
type VisitFunc func(n int, s Stop) error

// NewTourist creates a new Tourist with the given name.
func NewTourist(name string) (*Tourist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNoName
	}
	return &Tourist{name: name}, nil
}

// Name returns the name of the tourist.
func (t *Tourist) Name() string {
	return t.name
}

// Visit visits at most maxPlaces places with the guide g, calling fn for
// each visited stop.  fn can be nil.  It returns the number of visited places.
// The guide is not reset, so visiting with the exhausted guide visits
// nothing.
func (t *Tourist) Visit(g Guide, maxPlaces int, fn VisitFunc) (int, error) {
	if g == nil {
		return 0, ErrNoGuide
	}
	if maxPlaces <= 0 {
		return 0, ErrInvalidMax
	}
	lg := slog.With("tourist", t.name)
	lg.Debug("starting tour", "max_places", maxPlaces)

	var n int
	for n < maxPlaces && g.HasNext() {
		s, ok := g.Next()
		if !ok {
			// guide claimed to have more, but it doesn't.
			lg.Debug("guide exhausted early", "visited", n)
			break
		}
		n++
		lg.Debug("visited", "n", n, "place", s.Place.Name, "kind", s.Kind)
		if fn != nil {
			if err := fn(n, s); err != nil {
				return n, err
			}
		}
	}
	lg.Debug("tour finished", "visited", n)
	return n, nil
}
