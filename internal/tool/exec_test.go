// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tool_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/budde25/os/internal/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Run(t *testing.T) {
	tests := []struct {
		name             string
		inv              tool.Invocation
		expectedStdout   string
		expectedExitCode int
		expectedStderr   string
		assertErr        require.ErrorAssertionFunc
	}{
		{
			name: "success",
			inv: tool.Invocation{
				Name: "sh",
				Args: []string{"-c", "echo built"},
			},
			expectedStdout: "built\n",
			assertErr:      require.NoError,
		},
		{
			name: "non-zero exit code",
			inv: tool.Invocation{
				Name: "sh",
				Args: []string{"-c", "echo failed >&2; exit 3"},
			},
			expectedExitCode: 3,
			expectedStderr:   "failed",
			assertErr:        require.Error,
		},
		{
			name: "not found",
			inv: tool.Invocation{
				Name: "grub-mkrescue-does-not-exist",
			},
			expectedExitCode: -1,
			assertErr:        require.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer

			tt.inv.Stdout = &stdout

			err := tool.ExecRunner{}.Run(t.Context(), tt.inv)
			tt.assertErr(t, err)

			assert.Equal(t, tt.expectedStdout, stdout.String())

			if err == nil {
				return
			}

			var execErr *tool.ExecError

			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, tt.expectedExitCode, execErr.ExitCode)
			assert.Equal(t, tt.expectedStderr, execErr.Stderr)
			assert.Equal(t, tt.inv.String(), execErr.Command)
		})
	}
}

func TestExecRunner_Run_NotFound(t *testing.T) {
	err := tool.ExecRunner{}.Run(t.Context(), tool.Invocation{
		Name: "grub-mkrescue-does-not-exist",
	})
	require.ErrorIs(t, err, tool.ErrNotFound)
	require.ErrorIs(t, err, &tool.ExecError{})
}

func TestExecRunner_Run_Dir(t *testing.T) {
	dir := t.TempDir()

	var stdout bytes.Buffer

	err := tool.ExecRunner{}.Run(t.Context(), tool.Invocation{
		Name:   "pwd",
		Dir:    dir,
		Stdout: &stdout,
	})
	require.NoError(t, err)

	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	actual, err := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)

	assert.Equal(t, expected, actual)
}

func TestExecRunner_Run_StderrForwarded(t *testing.T) {
	var stderr bytes.Buffer

	err := tool.ExecRunner{}.Run(t.Context(), tool.Invocation{
		Name:   "sh",
		Args:   []string{"-c", "echo warning >&2"},
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Equal(t, "warning\n", stderr.String())
}

func TestExecRunner_Run_StderrTail(t *testing.T) {
	err := tool.ExecRunner{}.Run(t.Context(), tool.Invocation{
		Name: "sh",
		Args: []string{"-c", "head -c 10000 /dev/zero | tr '\\0' a >&2; echo >&2; echo end >&2; exit 1"},
	})

	var execErr *tool.ExecError

	require.ErrorAs(t, err, &execErr)
	assert.LessOrEqual(t, len(execErr.Stderr), 4096)
	assert.True(t, strings.HasSuffix(execErr.Stderr, "aaaa\nend"))
}

func TestInvocation_String(t *testing.T) {
	inv := tool.Invocation{
		Name: "grub-mkrescue",
		Args: []string{"-o", "target/os.iso", "target/isofiles"},
	}

	assert.Equal(t, "grub-mkrescue -o target/os.iso target/isofiles", inv.String())
	assert.Equal(t,
		[]string{"grub-mkrescue", "-o", "target/os.iso", "target/isofiles"},
		inv.Command(),
	)
}

func TestLookPath_Available(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "xorriso")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	t.Setenv("PATH", dir)

	assert.True(t, tool.SystemLookPath.Available("xorriso"))
	assert.False(t, tool.SystemLookPath.Available("grub-mkrescue"))
}
