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

package cityfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/romeguide"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"rome.yaml", FYAML},
		{"ROME.YML", FYAML},
		{"dir.d/florence.toml", FTOML},
		{"city.json", FUnknown},
		{"city", FUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOf(tt.filename))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		c, err := Load(filepath.Join("testdata", "rome.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "Rome", c.Name)
		assert.Len(t, c.Places, 5)

		city := c.City()
		assert.Equal(t, romeguide.RomePlaces, city.Places())
	})
	t.Run("toml", func(t *testing.T) {
		c, err := Load(filepath.Join("testdata", "florence.toml"))
		require.NoError(t, err)
		assert.Equal(t, "Florence", c.Name)
		assert.Equal(t, []string{"Uffizi", "Duomo"}, c.Popular)
		assert.Equal(t, "Have a gelato.", c.FallbackTip)
	})
	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load("city.json")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nowhere.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCity_City(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "florence.toml"))
	require.NoError(t, err)
	city := c.City()
	assert.Equal(t, "Florence", city.Name())

	pa, err := city.PhoneApp()
	require.NoError(t, err)
	var got []string
	for pa.HasNext() {
		s, _ := pa.Next()
		got = append(got, s.Place.Name)
	}
	assert.Equal(t, []string{"Uffizi", "Duomo", "Ponte Vecchio"}, got)

	lg, err := city.LocalGuide()
	require.NoError(t, err)
	s, _ := lg.Next()
	assert.Equal(t, "Visit Ponte Vecchio - Go at sunset", s.Note)
	s, _ = lg.Next()
	assert.Equal(t, "Visit Duomo - Have a gelato.", s.Note)
}

func TestCity_City_keepsDefaults(t *testing.T) {
	c := &City{
		Name: "Rome",
		Places: []Place{
			{Name: "Pantheon", Category: "ancient"},
			{Name: "Colosseum", Category: "ancient"},
		},
	}
	lg, err := c.City().LocalGuide()
	require.NoError(t, err)
	s, _ := lg.Next()
	assert.Equal(t, "Visit Pantheon - The hole in the roof is exactly 9 meters wide", s.Note)

	pa, err := c.City().PhoneApp()
	require.NoError(t, err)
	s, _ = pa.Next()
	assert.Equal(t, "Colosseum", s.Place.Name)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		wantTag string // expected failed validation tag
		wantErr bool
	}{
		{
			name:   "valid yaml",
			format: FYAML,
			data:   "name: Test\nplaces:\n  - name: A\n    category: x\n",
		},
		{
			name:    "unknown yaml field",
			format:  FYAML,
			data:    "name: Test\nweather: sunny\nplaces:\n  - name: A\n    category: x\n",
			wantErr: true,
		},
		{
			name:    "unknown toml key",
			format:  FTOML,
			data:    "name = \"Test\"\nweather = \"sunny\"\n[[places]]\nname = \"A\"\ncategory = \"x\"\n",
			wantErr: true,
		},
		{
			name:    "missing places",
			format:  FYAML,
			data:    "name: Test\n",
			wantTag: "required",
			wantErr: true,
		},
		{
			name:    "empty places",
			format:  FYAML,
			data:    "name: Test\nplaces: []\n",
			wantTag: "min",
			wantErr: true,
		},
		{
			name:    "duplicate names",
			format:  FYAML,
			data:    "name: Test\nplaces:\n  - name: A\n    category: x\n  - name: A\n    category: y\n",
			wantTag: "unique",
			wantErr: true,
		},
		{
			name:    "missing category",
			format:  FTOML,
			data:    "name = \"Test\"\n[[places]]\nname = \"A\"\n",
			wantTag: "required",
			wantErr: true,
		},
		{
			name:    "unknown format",
			format:  FUnknown,
			data:    "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.data), tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				assert.NotNil(t, got)
				return
			}
			if tt.wantTag == "" {
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "want ValidationError, got %T: %v", err, err)
			require.Len(t, vErr.Errs, 1)
			assert.Equal(t, tt.wantTag, vErr.Errs[0].Tag())
			assert.Len(t, vErr.Problems(), 1)
			assert.Contains(t, err.Error(), "city validation failed: ")
		})
	}
}

func TestValidationError_Problems(t *testing.T) {
	c := &City{Places: []Place{{Name: "A"}}}
	err := c.Validate()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{
		"name is a required field",
		"category is a required field",
	}, vErr.Problems())
}
