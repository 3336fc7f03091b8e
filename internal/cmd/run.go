// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/budde25/os/internal/exitcode"
	"github.com/budde25/os/internal/qemu"
	"github.com/budde25/os/internal/tool"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(output)

	err = flags.ParseArgs(args[1:])
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func run(ctx context.Context, flags *flags, env environment) error {
	cmd, err := parseCommandArgs(flags.command, flags.args, env.Stderr)
	if err != nil {
		return err
	}

	project, err := loadProject(flags.root, flags.configFile, env)
	if err != nil {
		return err
	}

	slog.Debug("Running command", slog.String("command", flags.command.name))

	return cmd.run(ctx, project)
}

func handleParseArgsError(err error, output io.Writer) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		fmt.Fprintf(output, "Error [%s]: %v\n", name, err)
	}

	return -1
}

func handleRunError(err error, output io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, &ParseArgsError{}):
		return handleParseArgsError(err, output)
	}

	exitCode := -1

	var (
		qemuErr *qemu.CommandError
		execErr *tool.ExecError
	)

	switch {
	case errors.As(err, &qemuErr) && qemuErr.Guest:
		// The guest code is carried as [exitcode.Error].
		if code, ok := exitcode.From(qemuErr); ok {
			exitCode = code
		}
	case qemuErr != nil:
		if qemuErr.ExitCode > 0 {
			exitCode = qemuErr.ExitCode
		}
	case errors.As(err, &execErr):
		if execErr.ExitCode > 0 {
			exitCode = execErr.ExitCode
		}
	}

	// Do not print the error in case the guest ran successfully and properly
	// communicated a non-zero exit code.
	if !errors.Is(err, qemu.ErrGuestNonZeroExitCode) {
		fmt.Fprintf(output, "Error [%s]: %v\n", name, err)
	}

	return exitCode
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	return runWith(ctx, args, defaultEnvironment(cfg))
}

func runWith(ctx context.Context, args []string, env environment) int {
	flags, err := parseArgs(args, env.Stderr)
	if err != nil {
		return handleParseArgsError(err, env.Stderr)
	}

	closeLog, err := setupLogging(env.Stderr, flags.debug, flags.logFile)
	if err != nil {
		return handleRunError(err, env.Stderr)
	}

	defer func() {
		err := closeLog()
		if err != nil {
			fmt.Fprintf(env.Stderr, "Error [%s]: close log file: %v\n", name, err)
		}
	}()

	if flags.version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			return handleRunError(err, env.Stderr)
		}

		fmt.Fprintf(env.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	err = run(ctx, flags, env)

	return handleRunError(err, env.Stderr)
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
