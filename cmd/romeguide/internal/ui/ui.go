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

// Package ui contains the common UI elements of the romeguide demo.
package ui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var (
	ErrNotANumber = errors.New("please enter a valid number")
)

// IsInteractive returns true if the program is running in the interactive
// terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd())) && os.Getenv("TERM") != "dumb"
}

// ParseRange parses s as an integer in the range [lo, hi].
func ParseRange(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < lo || n > hi {
		return 0, RangeError{Lo: lo, Hi: hi}
	}
	return n, nil
}

// ValidateRange returns the validation function for huh inputs that accepts
// integers in the range [lo, hi].
func ValidateRange(lo, hi int) func(string) error {
	return func(s string) error {
		_, err := ParseRange(s, lo, hi)
		return err
	}
}

// RangeError is returned when the number is out of range.
type RangeError struct {
	Lo, Hi int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("please enter a number between %d and %d", e.Lo, e.Hi)
}
