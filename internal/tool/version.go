// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tool

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

const versionTimeout = 5 * time.Second

// ErrNoVersion is returned if a tool did not print anything for "--version".
var ErrNoVersion = errors.New("no version output")

// Version runs the named tool with "--version" and returns the first
// non-empty output line. Stdout is preferred, some tools print their version
// on stderr only. The tool has [versionTimeout] to answer.
func Version(ctx context.Context, runner Runner, name string) (string, error) {
	var stdout, stderr bytes.Buffer

	ctx, stop := context.WithTimeout(ctx, versionTimeout)
	defer stop()

	err := runner.Run(ctx, Invocation{
		Name:   name,
		Args:   []string{"--version"},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		return "", err
	}

	for _, output := range []*bytes.Buffer{&stdout, &stderr} {
		if line, found := firstLine(output); found {
			return line, nil
		}
	}

	return "", ErrNoVersion
}

func firstLine(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}

	return "", false
}
