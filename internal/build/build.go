// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/budde25/os/internal/initrd"
	"github.com/budde25/os/internal/sys"
	"github.com/budde25/os/internal/tool"
)

// Builder runs builds with the given [tool.Runner]. Output of the external
// tools is passed to Stdout and Stderr.
type Builder struct {
	Runner tool.Runner
	Stdout io.Writer
	Stderr io.Writer
}

// Build runs all build steps and returns the path of the ISO.
//
// It fails if the compiler fails or if all mastering tools fail. The staging
// directory is removed in any case unless [Spec.KeepStaging] is set.
func (b *Builder) Build(ctx context.Context, spec Spec) (string, error) {
	err := spec.Validate()
	if err != nil {
		return "", err
	}

	err = b.compile(ctx, spec)
	if err != nil {
		return "", fmt.Errorf("compile: %w", err)
	}

	if spec.KeepStaging {
		defer slog.Info("Preserving staging directory",
			slog.String("path", spec.StagingDir))
	} else {
		defer removeStagingDir(spec.StagingDir)
	}

	err = stage(spec)
	if err != nil {
		return "", fmt.Errorf("stage: %w", err)
	}

	err = b.master(ctx, spec)
	if err != nil {
		return "", fmt.Errorf("master iso: %w", err)
	}

	return spec.ISO, nil
}

func (b *Builder) invocation(name string, args ...string) tool.Invocation {
	return tool.Invocation{
		Name:   name,
		Args:   args,
		Stdout: b.Stdout,
		Stderr: b.Stderr,
	}
}

func (b *Builder) compile(ctx context.Context, spec Spec) error {
	inv := b.invocation(spec.Compiler[0], spec.Compiler[1:]...)
	inv.Dir = spec.Root

	return b.Runner.Run(ctx, inv) //nolint:wrapcheck
}

// master tries the mastering tools in order. The first success ends the step.
func (b *Builder) master(ctx context.Context, spec Spec) error {
	err := os.MkdirAll(filepath.Dir(spec.ISO), 0o755)
	if err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	errs := []error{ErrMastering}

	for _, name := range spec.Mastering {
		err := b.Runner.Run(ctx, b.invocation(name, "-o", spec.ISO, spec.StagingDir))
		if err == nil {
			slog.Debug("Mastered ISO",
				slog.String("tool", name),
				slog.String("path", spec.ISO))

			return nil
		}

		// Do not try further tools if the build got cancelled.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(err, ctxErr)
		}

		slog.Warn("Mastering tool failed, trying next",
			slog.String("tool", name),
			slog.Any("error", err))

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// stage populates a fresh staging directory.
func stage(spec Spec) error {
	err := os.RemoveAll(spec.StagingDir)
	if err != nil {
		return fmt.Errorf("clean staging dir: %w", err)
	}

	grubDir := filepath.Join(spec.StagingDir, filepath.Dir(StagedGrubConfig))

	err = os.MkdirAll(grubDir, 0o755)
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}

	err = sys.CopyFile(filepath.Join(spec.StagingDir, StagedKernel), spec.Kernel)
	if err != nil {
		return fmt.Errorf("kernel: %w", err)
	}

	err = sys.CopyFile(filepath.Join(spec.StagingDir, StagedGrubConfig), spec.GrubConfig)
	if err != nil {
		return fmt.Errorf("grub config: %w", err)
	}

	if spec.Initrd != "" {
		err = stageInitrd(filepath.Join(spec.StagingDir, StagedInitrd), spec.Initrd)
		if err != nil {
			return fmt.Errorf("initrd: %w", err)
		}
	}

	return nil
}

func stageInitrd(path, dir string) (err error) {
	stat, err := os.Stat(dir)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.IsDir() {
		return fmt.Errorf("%s: %w", dir, os.ErrInvalid)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	err = initrd.Write(file, os.DirFS(dir))
	if err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}

func removeStagingDir(path string) {
	slog.Debug("Removing staging directory", slog.String("path", path))

	err := os.RemoveAll(path)
	if err != nil {
		slog.Error(
			"Failed to remove staging directory",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}
