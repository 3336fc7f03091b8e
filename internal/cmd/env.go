// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// EnvArgsVariable is the environment variable additional arguments are read
// from.
const EnvArgsVariable = "X_ARGS"

// EnvArgs returns x arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(EnvArgsVariable))
}

// LocalConfigArgs returns x arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may be used
// and are expanded with [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs inserts the arguments of the local config file and the
// environment right after the program name in args. The explicit arguments
// come last, so they take precedence for flags given multiple times.
func MergedArgs(args []string, fsys fs.FS, file string) ([]string, error) {
	if len(args) == 0 {
		return nil, &ParseArgsError{msg: "no program name given"}
	}

	localArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("local config args: %w", err)
	}

	envArgs := EnvArgs()

	merged := make([]string, 0, len(args)+len(localArgs)+len(envArgs))
	merged = append(merged, args[0])
	merged = append(merged, localArgs...)
	merged = append(merged, envArgs...)
	merged = append(merged, args[1:]...)

	return merged, nil
}
