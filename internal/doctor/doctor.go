// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package doctor checks the host for the external tools the build depends on.
package doctor

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/budde25/os/internal/tool"
	"golang.org/x/sync/errgroup"
)

// maxParallelProbes limits the number of concurrent version probes.
const maxParallelProbes = 4

// Tool is an executable to check for.
type Tool struct {
	// Label is printed in the report. Falls back to Name if empty.
	Label string

	// Name of the executable looked up in PATH.
	Name string
}

func (t Tool) label() string {
	if t.Label == "" {
		return t.Name
	}

	return t.Label
}

// Result is the outcome of checking a single [Tool].
type Result struct {
	Tool  Tool
	Found bool

	// Path the executable was resolved to. Empty if not found.
	Path string

	// Version is the first line of the version output, if requested and the
	// tool answered.
	Version string
}

// Options for [Check].
type Options struct {
	// LookPath resolves the tools. Default is [tool.SystemLookPath].
	LookPath tool.LookPath

	// Runner is used for version probes. Default is [tool.ExecRunner].
	Runner tool.Runner

	// Versions enables version probes for found tools.
	Versions bool
}

// Check probes all given tools. A tool is found if and only if its name can be
// resolved. Version probe failures are logged and do not fail the check.
//
// The results have the same order as the given tools.
func Check(ctx context.Context, tools []Tool, opts Options) ([]Result, error) {
	if opts.LookPath == nil {
		opts.LookPath = tool.SystemLookPath
	}

	if opts.Runner == nil {
		opts.Runner = tool.ExecRunner{}
	}

	results := make([]Result, len(tools))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelProbes)

	for idx, t := range tools {
		group.Go(func() error {
			results[idx] = probe(ctx, t, opts)
			return ctx.Err()
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("probe tools: %w", err)
	}

	return results, nil
}

func probe(ctx context.Context, t Tool, opts Options) Result {
	result := Result{Tool: t}

	path, err := opts.LookPath(t.Name)
	if err != nil {
		slog.Debug("Tool not found",
			slog.String("name", t.Name),
			slog.Any("error", err))

		return result
	}

	result.Found = true
	result.Path = path

	if !opts.Versions {
		return result
	}

	version, err := tool.Version(ctx, opts.Runner, path)
	if err != nil {
		slog.Warn("Failed to get tool version",
			slog.String("name", t.Name),
			slog.Any("error", err))

		return result
	}

	result.Version = version

	return result
}

// Report writes a human readable report of the results to w.
func Report(w io.Writer, results []Result) error {
	_, err := fmt.Fprintln(w, "Found the following in path")
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	for _, r := range results {
		line := fmt.Sprintf("%s: %t", r.Tool.label(), r.Found)

		if r.Path != "" {
			line += " (" + r.Path + ")"
		}

		if r.Version != "" {
			line += " " + r.Version
		}

		_, err := fmt.Fprintln(w, line)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}

// AllFound returns if every result was found.
func AllFound(results []Result) bool {
	for _, r := range results {
		if !r.Found {
			return false
		}
	}

	return true
}
