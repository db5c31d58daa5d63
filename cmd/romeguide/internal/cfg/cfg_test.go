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

package cfg

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBaseFlags(t *testing.T) {
	t.Run("all flags are set", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, DefaultFlags)

		err := fs.Parse([]string{
			"-trace", "trace.out",
			"-log", "log.txt",
			"-log-json",
			"-v",
			"-city", "florence.toml",
			"-seed", "42",
		})
		require.NoError(t, err)

		assert.Equal(t, "trace.out", TraceFile)
		assert.Equal(t, "log.txt", LogFile)
		assert.True(t, JsonHandler)
		assert.True(t, Verbose)
		assert.Equal(t, "florence.toml", CityFile)
		assert.Equal(t, uint64(42), Seed)
	})
	t.Run("omit all", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, OmitAll)

		assert.NotNil(t, fs.Lookup("trace"))
		assert.NotNil(t, fs.Lookup("v"))
		assert.Nil(t, fs.Lookup("city"))
		assert.Nil(t, fs.Lookup("seed"))
	})
	t.Run("environment", func(t *testing.T) {
		t.Setenv("ROMEGUIDE_CITY", "paris.yaml")
		t.Setenv("ROMEGUIDE_SEED", "7")
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, DefaultFlags)
		require.NoError(t, fs.Parse(nil))

		assert.Equal(t, "paris.yaml", CityFile)
		assert.Equal(t, uint64(7), Seed)
	})
}

func Test_envSeed(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  uint64
	}{
		{"empty", "", 0},
		{"valid", "12345", 12345},
		{"negative", "-1", 0},
		{"garbage", "rome", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SEED", tt.value)
			assert.Equal(t, tt.want, envSeed("TEST_SEED"))
		})
	}
}
