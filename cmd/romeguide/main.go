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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/trace"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rusq/romeguide/cmd/romeguide/internal/cfg"
	"github.com/rusq/romeguide/cmd/romeguide/internal/demo"
	"github.com/rusq/romeguide/cmd/romeguide/internal/golang/base"
	"github.com/rusq/romeguide/cmd/romeguide/internal/golang/help"
	"github.com/rusq/romeguide/cmd/romeguide/internal/places"
	"github.com/rusq/romeguide/cmd/romeguide/internal/tour"
)

// secrets defines the names of the supported secret files that we load our
// environment from.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	base.Usage = mainUsage
	base.Romeguide.Commands = []*base.Command{
		demo.CmdDemo,
		places.CmdPlaces,
		tour.CmdTour,
		tour.CmdCompare,
		CmdVersion,
	}
}

func main() {
	loadSecrets(secrets)

	flag.Usage = base.Usage
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		// no command, start the demo.
		args = []string{demo.CmdDemo.Name()}
	}

	if args[0] == "help" {
		if !help.Help(os.Stdout, args[1:]) {
			base.SetExitStatus(base.SHelpRequested)
		}
		base.Exit()
		return
	}

	cmd, rest := lookup(base.Romeguide, args)
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "romeguide %s: unknown command\nRun 'romeguide help' for usage.\n", strings.Join(args, " "))
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
		return
	}

	if err := invoke(cmd, rest); err != nil {
		msg := fmt.Sprintf("%s %s: %s", base.Romeguide.Name(), cmd.Name(), err)
		if cfg.Verbose {
			msg = fmt.Sprintf("%s %s: %+v", base.Romeguide.Name(), cmd.Name(), err)
		}
		slog.Error(msg)
		base.SetExitStatus(base.SGenericError)
	}
	base.Exit()
}

func mainUsage() {
	help.PrintUsage(os.Stderr, base.Romeguide)
	base.SetExitStatus(base.SInvalidParameters)
	base.Exit()
}

// lookup finds the command for args, descending into the subcommands.  It
// returns the command and the remaining arguments, or nil, if the command is
// not found or is not runnable.
func lookup(root *base.Command, args []string) (*base.Command, []string) {
	cmd := root
BigCmdLoop:
	for len(args) > 0 {
		for _, sub := range cmd.Commands {
			if sub.Name() != args[0] {
				continue
			}
			cmd = sub
			args = args[1:]
			if len(cmd.Commands) > 0 && len(args) > 0 {
				continue BigCmdLoop
			}
			break BigCmdLoop
		}
		return nil, args
	}
	if cmd == root || !cmd.Runnable() {
		return nil, args
	}
	return cmd, args
}

// invoke parses the command flags, initialises the instrumentation and runs
// the command.
func invoke(cmd *base.Command, args []string) error {
	if !cmd.CustomFlags {
		cmd.Flag.Usage = func() { help.Help(os.Stderr, []string{cmd.Name()}) }
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		if err := cmd.Flag.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				base.SetExitStatus(base.SHelpRequested)
				return nil
			}
			base.SetExitStatus(base.SInvalidParameters)
			return err
		}
		args = cmd.Flag.Args()
	}

	if _, err := initLog(cfg.LogFile, cfg.JsonHandler, cfg.Verbose); err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	initDebug()
	stop := initTrace(cfg.TraceFile)
	base.AtExit(stop)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ctx, task := trace.NewTask(ctx, "command")
	defer task.End()

	trace.Log(ctx, "command", fmt.Sprint("Running ", cmd.Name(), " command"))
	slog.DebugContext(ctx, "running command", "command", cmd.Name(), "args", args)
	return cmd.Run(ctx, cmd, args)
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
