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
	"errors"
	"fmt"
)

var (
	// ErrNoPlaces is returned when a guide is created for an empty list of
	// places.
	ErrNoPlaces = errors.New("places list cannot be empty")
	// ErrUnknownKind is returned for an unknown guide kind.
	ErrUnknownKind = errors.New("unknown guide kind")
	// ErrNoName is returned by NewTourist if the name is empty.
	ErrNoName = errors.New("tourist name cannot be empty")
	// ErrNoGuide is returned by Visit if the guide is nil.
	ErrNoGuide = errors.New("guide cannot be nil")
	// ErrInvalidMax is returned by Visit if the maximum number of places is
	// not positive.
	ErrInvalidMax = errors.New("maximum places must be positive")
)

// ConstructionError is returned by the guide constructors when the guide
// cannot be created.  Err contains the reason, currently it is always
// ErrNoPlaces.
type ConstructionError struct {
	Kind Kind
	Err  error
}

func (ce *ConstructionError) Error() string {
	return fmt.Sprintf("error initialising %s: %s", ce.Kind, ce.Err)
}

func (ce *ConstructionError) Unwrap() error {
	return ce.Err
}

func (ce *ConstructionError) Is(target error) bool {
	return target == ce.Err
}
