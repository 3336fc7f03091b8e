// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tool

import (
	"context"
	"io"
	"strings"
)

// Invocation describes a single external process run.
type Invocation struct {
	// Name of the executable. Resolved via PATH if it contains no path
	// separator.
	Name string

	// Arguments passed to the executable.
	Args []string

	// Working directory. Empty means the current working directory.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Command returns the full command line as slice, executable first.
func (i Invocation) Command() []string {
	return append([]string{i.Name}, i.Args...)
}

// String implements [fmt.Stringer].
func (i Invocation) String() string {
	return strings.Join(i.Command(), " ")
}

// Runner runs an [Invocation] and blocks until the process terminated.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}
