// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/budde25/os/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "grub.cfg")
	require.NoError(t, os.WriteFile(file, []byte("menuentry"), 0o644))

	tests := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{
			name: "regular file",
			path: file,
		},
		{
			name:        "directory",
			path:        dir,
			expectedErr: sys.ErrNotRegularFile,
		},
		{
			name:        "missing",
			path:        filepath.Join(dir, "missing"),
			expectedErr: fs.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sys.ValidateRegularFile(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "os")
	require.NoError(t, os.WriteFile(src, []byte("kernel"), 0o755))

	t.Run("to file", func(t *testing.T) {
		dst := filepath.Join(dir, "os.bin")
		require.NoError(t, sys.CopyFile(dst, src))

		content, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "kernel", string(content))

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("into directory", func(t *testing.T) {
		dstDir := filepath.Join(dir, "grub")
		require.NoError(t, os.Mkdir(dstDir, 0o755))
		require.NoError(t, sys.CopyFile(dstDir, src))

		assert.FileExists(t, filepath.Join(dstDir, "os"))
	})

	t.Run("missing source", func(t *testing.T) {
		err := sys.CopyFile(filepath.Join(dir, "x"), filepath.Join(dir, "nope"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}
