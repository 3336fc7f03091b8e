// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/budde25/os/internal/config"
)

const (
	name = "x"

	localConfigFile = ".x-args"

	usageMessage = `Usage of 'x':
    x [flags...] <command> [command flags...]

Examples:
	x doctor -f x.py
	x run -nox
	x -C /path/to/project -debug build -keep-staging

All global flags can also be provided via environment variable X_ARGS:
	X_ARGS="-debug" x run

All global flags can also be provided via file ./.x-args, with one argument
per line.
`
)

type flags struct {
	flagSet *flag.FlagSet

	root       string
	configFile string
	logFile    string
	debug      bool
	version    bool

	command commandSpec
	args    []string
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		root:       ".",
		configFile: config.DefaultFile,
	}

	flags.initFlagset(output)

	return flags
}

// ParseArgs parses the global flags and looks up the command. args must not
// contain the program name.
func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.version {
		return nil
	}

	positionalArgs := f.flagSet.Args()

	if len(positionalArgs) < 1 {
		return f.fail("no command given", nil)
	}

	command, found := lookupCommand(positionalArgs[0])
	if !found {
		return f.fail("unknown command "+positionalArgs[0], nil)
	}

	f.command = command
	f.args = positionalArgs[1:]

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.root,
		"C",
		f.root,
		"project root directory",
	)

	flagSet.StringVar(
		&f.configFile,
		"config",
		f.configFile,
		"project configuration file, relative to the project root",
	)

	flagSet.StringVar(
		&f.logFile,
		"log-file",
		f.logFile,
		"additionally write JSON logs of all levels to this file",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	for _, flagName := range []string{"v", "version"} {
		flagSet.BoolVar(
			&f.version,
			flagName,
			f.version,
			"show version and exit",
		)
	}

	f.flagSet = flagSet
}

func (f *flags) usage() {
	output := f.flagSet.Output()

	fmt.Fprint(output, usageMessage)
	fmt.Fprintln(output, "\nCommands:")

	for _, cmd := range commands {
		fmt.Fprintf(output, "  %-8s %s\n", cmd.name, cmd.summary)
	}

	fmt.Fprintln(output, "\nFlags:")
	f.flagSet.PrintDefaults()
}

func (f *flags) fail(msg string, err error) error {
	e := &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), e.Error())
	f.flagSet.Usage()

	return e
}

// parseCommandArgs parses the arguments of the command and checks the
// resulting flags.
func parseCommandArgs(spec commandSpec, args []string, output io.Writer) (command, error) {
	flagSet := flag.NewFlagSet(name+" "+spec.name, flag.ContinueOnError)
	flagSet.SetOutput(output)

	cmd := spec.new()
	cmd.registerFlags(flagSet)

	fail := func(err error) error {
		e := &ParseArgsError{msg: spec.name, err: err}
		fmt.Fprintln(output, e.Error())
		flagSet.Usage()

		return e
	}

	err := flagSet.Parse(args)
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	if flagSet.NArg() > 0 {
		return nil, fail(fmt.Errorf(
			"unexpected arguments: %s",
			strings.Join(flagSet.Args(), " "),
		))
	}

	err = cmd.check()
	if err != nil {
		return nil, fail(err)
	}

	return cmd, nil
}
