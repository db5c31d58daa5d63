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

// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/rusq/osenv/v2"
)

var (
	TraceFile   string
	LogFile     string
	JsonHandler bool
	Verbose     bool

	CityFile string // city definition file, YAML or TOML.
	Seed     uint64 // random walk seed, 0 means random.
)

type FlagMask int

const (
	DefaultFlags FlagMask = 0
	OmitCityFlag FlagMask = 1 << iota
	OmitSeedFlag

	OmitAll = OmitCityFlag | OmitSeedFlag
)

// SetBaseFlags sets base flags.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", os.Getenv("TRACE_FILE"), "trace `filename`")
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JsonHandler, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&OmitCityFlag == 0 {
		fs.StringVar(&CityFile, "city", osenv.Value("ROMEGUIDE_CITY", ""), "city definition `file` (YAML or TOML), if not specified,\nthe built-in Rome is used")
	}
	if mask&OmitSeedFlag == 0 {
		fs.Uint64Var(&Seed, "seed", envSeed("ROMEGUIDE_SEED"), "random walk `seed`, the same seed produces the same walk.\n0 means random")
	}

	setDevFlags(fs, mask)
}

// envSeed returns the seed value from the environment variable name.
// Invalid values are ignored.
func envSeed(name string) uint64 {
	v := osenv.Value(name, "")
	if v == "" {
		return 0
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		slog.Warn("invalid seed value in the environment, ignored", "variable", name, "value", v, "error", err)
		return 0
	}
	return seed
}

// SetDebugLevel sets the default log level to debug.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}
