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

// In this file: places and stops.

// Place is a place that can be visited.  Places are compared by value, Name
// is unique within a City.
type Place struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (p Place) String() string {
	return p.Name + " (" + p.Category + ")"
}

// Stop is the result of a single visit produced by a Guide.
type Stop struct {
	Place Place
	// Kind is the kind of the guide that produced the stop.
	Kind Kind
	// Note is the guide's narration of the visit.
	Note string
}

// IsZero returns true if the stop is empty, which is what the exhausted
// guide returns.
func (s Stop) IsZero() bool {
	return s == Stop{}
}
