// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tool

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// maxStderrTail limits how much of the error output is kept for [ExecError].
const maxStderrTail = 4096

// ExecRunner runs invocations as child processes with [exec.CommandContext].
//
// The error output of the process is forwarded to [Invocation.Stderr] and the
// last bytes of it are attached to the returned [ExecError].
type ExecRunner struct{}

// Run implements [Runner].
func (ExecRunner) Run(ctx context.Context, inv Invocation) error {
	var stderrBuf tailBuffer

	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout

	cmd.Stderr = &stderrBuf
	if inv.Stderr != nil {
		cmd.Stderr = io.MultiWriter(inv.Stderr, &stderrBuf)
	}

	slog.Debug("Run external command",
		slog.String("command", inv.String()),
		slog.String("dir", inv.Dir))

	err := cmd.Run()
	if err != nil {
		return newExecError(inv, err, strings.TrimSpace(stderrBuf.String()))
	}

	return nil
}

// tailBuffer keeps only the last [maxStderrTail] bytes written to it.
type tailBuffer struct {
	buf bytes.Buffer
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)

	if len(p) > maxStderrTail {
		p = p[len(p)-maxStderrTail:]
	}

	if overflow := t.buf.Len() + len(p) - maxStderrTail; overflow > 0 {
		t.buf.Next(overflow)
	}

	t.buf.Write(p)

	return n, nil
}

func (t *tailBuffer) String() string {
	return t.buf.String()
}
