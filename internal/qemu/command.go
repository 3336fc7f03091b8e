// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/budde25/os/internal/exitcode"
	"github.com/budde25/os/internal/tool"
)

// Command is a single QEMU command that can be run.
type Command struct {
	name string
	args []string
}

// NewCommand builds a new [Command] from the given [CommandSpec].
func NewCommand(spec CommandSpec) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	args, err := BuildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, fmt.Errorf("build argument strings: %w", err)
	}

	return &Command{
		name: spec.Executable,
		args: args,
	}, nil
}

// Name returns the QEMU executable name.
func (c *Command) Name() string {
	return c.name
}

// Args returns a copy of the arguments.
func (c *Command) Args() []string {
	return append([]string(nil), c.args...)
}

// String implements [fmt.Stringer].
func (c *Command) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}

// Run runs the QEMU command with the given [tool.Runner] and blocks until QEMU
// terminated.
//
// The guest's isa-debug-exit code is decoded from the exit status. A success
// code or a regular QEMU shutdown return nil. A failure code is returned as
// [CommandError] with Guest set and [ErrGuestNonZeroExitCode]. Anything else
// is a host [CommandError].
func (c *Command) Run(
	ctx context.Context,
	runner tool.Runner,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) error {
	err := runner.Run(ctx, tool.Invocation{
		Name:   c.name,
		Args:   c.args,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err == nil {
		return nil
	}

	var execErr *tool.ExecError
	if !errors.As(err, &execErr) {
		return &CommandError{Err: err, ExitCode: -1}
	}

	code, found := exitcode.FromDebugExit(execErr.ExitCode)
	if !found {
		return &CommandError{Err: err, ExitCode: execErr.ExitCode}
	}

	slog.Debug("Guest exit code", slog.Int("code", code))

	if code == exitcode.DebugExitSuccess {
		return nil
	}

	return &CommandError{
		Err:      fmt.Errorf("%w: %w", ErrGuestNonZeroExitCode, exitcode.Error(code)),
		Guest:    true,
		ExitCode: code,
	}
}
