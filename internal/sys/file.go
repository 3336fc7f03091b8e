// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ValidateRegularFile returns an error if the given path does not exist or is
// not a regular file.
func ValidateRegularFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	return nil
}

// CopyFile copies the regular file src to dst.
//
// If dst is an existing directory, the file is copied into it with the base
// name of src. The permission bits of src are preserved.
func CopyFile(dst, src string) (err error) {
	err = ValidateRegularFile(src)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}

	if stat, statErr := os.Stat(dst); statErr == nil && stat.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	dstFile, err := os.OpenFile(
		dst,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		info.Mode().Perm(),
	)
	if err != nil {
		return fmt.Errorf("open destination: %w", err)
	}

	defer func() {
		err = errors.Join(err, dstFile.Close())
	}()

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	return nil
}
