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
	"maps"
)

// DefaultTip is the tip for the places the guide knows nothing about.
const DefaultTip = "Amazing place!"

// DefaultTips are the local guide tips for Rome.
var DefaultTips = map[string]string{
	"Colosseum":      "Visit early morning to avoid crowds!",
	"Vatican":        "The secret passage connects to Castel Sant'Angelo",
	"Trevi Fountain": "Throw coin with right hand over left shoulder",
	"Pantheon":       "The hole in the roof is exactly 9 meters wide",
	"Spanish Steps":  "Best gelato shop is hidden nearby",
}

// LocalGuide visits places in the original order and shares a tip about each
// one of them.
type LocalGuide struct {
	places   []Place
	tips     map[string]string
	fallback string
	cur      cursor
}

var _ Guide = (*LocalGuide)(nil)

// NewLocalGuide creates a new LocalGuide over places.  tips maps the place
// name to the tip, places without a tip get the fallback tip.  If fallback is
// empty, DefaultTip is used.
func NewLocalGuide(places []Place, tips map[string]string, fallback string) (*LocalGuide, error) {
	if len(places) == 0 {
		return nil, &ConstructionError{Kind: KLocalGuide, Err: ErrNoPlaces}
	}
	if fallback == "" {
		fallback = DefaultTip
	}
	slog.Debug("local guide created", "tips", len(tips), "places", len(places))
	return &LocalGuide{
		places:   places,
		tips:     maps.Clone(tips),
		fallback: fallback,
		cur:      cursor{n: len(places)},
	}, nil
}

// Tip returns the tip for the place name.
func (lg *LocalGuide) Tip(name string) string {
	if tip, ok := lg.tips[name]; ok && tip != "" {
		return tip
	}
	return lg.fallback
}

func (lg *LocalGuide) HasNext() bool {
	return lg.cur.hasNext()
}

func (lg *LocalGuide) Next() (Stop, bool) {
	i, ok := lg.cur.advance()
	if !ok {
		return Stop{}, false
	}
	p := lg.places[i]
	return Stop{
		Place: p,
		Kind:  KLocalGuide,
		Note:  "Visit " + p.Name + " - " + lg.Tip(p.Name),
	}, true
}
