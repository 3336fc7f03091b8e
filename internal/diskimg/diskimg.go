// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package diskimg creates the blank raw disk image attached to the VM.
package diskimg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/budde25/os/internal/tool"
	"golang.org/x/sys/unix"
)

const mebibyte = 1 << 20

var (
	// ErrInvalidSize is returned if the image size is 0.
	ErrInvalidSize = errors.New("image size must be at least 1 MiB")

	// ErrNoFileSystem is returned if no file system type is given.
	ErrNoFileSystem = errors.New("no file system type given")
)

// Spec describes the image to create.
type Spec struct {
	// Path of the image file. An existing file is overwritten.
	Path string

	// SizeMiB is the image size in MiB.
	SizeMiB uint64

	// FileSystem type. The image is formatted with "mkfs.<FileSystem>".
	FileSystem string
}

// Validate checks the spec for obvious issues.
func (s *Spec) Validate() error {
	switch {
	case s.Path == "":
		return fmt.Errorf("path: %w", os.ErrInvalid)
	case s.SizeMiB == 0:
		return ErrInvalidSize
	case s.FileSystem == "":
		return ErrNoFileSystem
	}

	return nil
}

// MkfsCommand returns the name of the file system creation tool.
func (s *Spec) MkfsCommand() string {
	return "mkfs." + s.FileSystem
}

// Create writes a zero filled image of the requested size, syncs it to disk
// and formats it with the file system creation tool.
func Create(ctx context.Context, runner tool.Runner, spec Spec, stdout, stderr io.Writer) error {
	err := spec.Validate()
	if err != nil {
		return err
	}

	err = writeZeroed(spec.Path, spec.SizeMiB)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}

	slog.Debug("Created blank image",
		slog.String("path", spec.Path),
		slog.Uint64("size_mib", spec.SizeMiB))

	err = runner.Run(ctx, tool.Invocation{
		Name:   spec.MkfsCommand(),
		Args:   []string{spec.Path},
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return fmt.Errorf("format image: %w", err)
	}

	return nil
}

func writeZeroed(path string, sizeMiB uint64) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	// Allocate blocks for real, like dd does, so the image does not fail on
	// a full disk later.
	block := make([]byte, mebibyte)
	for range sizeMiB {
		if _, err := file.Write(block); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	err = unix.Fsync(int(file.Fd()))
	if err != nil {
		return fmt.Errorf("fsync: %w", err)
	}

	return nil
}
