// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tool

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrNotFound is returned by [LookPath] implementations if an executable
// could not be found. It is [exec.ErrNotFound] so errors of [exec.LookPath]
// match as well.
var ErrNotFound = exec.ErrNotFound

// ExecError wraps any error of an external process run. The process either
// could not be started or terminated with a non-zero exit code.
type ExecError struct {
	// Command is the command line of the failed process.
	Command string

	// ExitCode of the process. It is -1 if the process could not be started
	// or was terminated by a signal.
	ExitCode int

	// Stderr holds the trimmed error output of the process, if it was
	// captured.
	Stderr string

	Err error
}

func newExecError(inv Invocation, err error, stderr string) *ExecError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &ExecError{
		Command:  inv.String(),
		ExitCode: exitCode,
		Stderr:   stderr,
		Err:      err,
	}
}

// Error implements the [error] interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ExecError) Is(other error) bool {
	_, ok := other.(*ExecError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExecError) Unwrap() error {
	return e.Err
}
