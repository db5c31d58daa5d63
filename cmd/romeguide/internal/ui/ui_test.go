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

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		lo, hi  int
		want    int
		wantErr error
	}{
		{"in range", "3", 1, 5, 3, nil},
		{"low bound", "1", 1, 5, 1, nil},
		{"high bound", "5", 1, 5, 5, nil},
		{"spaces", " 2\n", 1, 5, 2, nil},
		{"too low", "0", 1, 5, 0, RangeError{1, 5}},
		{"too high", "6", 1, 5, 0, RangeError{1, 5}},
		{"not a number", "three", 1, 5, 0, ErrNotANumber},
		{"empty", "", 1, 5, 0, ErrNotANumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.s, tt.lo, tt.hi)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRange(t *testing.T) {
	v := ValidateRange(1, 3)
	assert.NoError(t, v("2"))
	assert.EqualError(t, v("4"), "please enter a number between 1 and 3")
	assert.Error(t, v("x"))
}

func TestHuhTheme(t *testing.T) {
	assert.NotNil(t, HuhTheme())
}
