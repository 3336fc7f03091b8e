// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build

import (
	"fmt"
	"path/filepath"

	"github.com/budde25/os/internal/sys"
)

// Paths of the staged files relative to the staging directory.
var (
	StagedKernel     = filepath.Join("boot", "os.bin")
	StagedGrubConfig = filepath.Join("boot", "grub", "grub.cfg")
	StagedInitrd     = filepath.Join("boot", "initrd.cpio")
)

// Spec describes a single build. All paths must be absolute.
type Spec struct {
	// Root is the project root the compiler runs in.
	Root string

	// Compiler is the command line of the compiler, executable first.
	Compiler []string

	// Kernel is the binary produced by the compiler.
	Kernel string

	// GrubConfig is the GRUB configuration file to stage.
	GrubConfig string

	// StagingDir is the directory the ISO is mastered from.
	StagingDir string

	// ISO is the output path of the image.
	ISO string

	// Mastering tools tried in order until one succeeds. They are invoked as
	// "<tool> -o <ISO> <StagingDir>".
	Mastering []string

	// Initrd is an optional directory packed as cpio archive into the image.
	Initrd string

	// Protected are additional paths that must not be located in the
	// staging directory, like the project configuration file.
	Protected []string

	// KeepStaging disables removal of the staging directory.
	KeepStaging bool
}

// Validate checks that all required fields are set and that the staging
// directory can be removed without losing any inputs.
func (s *Spec) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"root", s.Root},
		{"kernel", s.Kernel},
		{"grub config", s.GrubConfig},
		{"staging dir", s.StagingDir},
		{"iso", s.ISO},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: no %s", ErrIncompleteSpec, r.name)
		}
	}

	if len(s.Compiler) == 0 || s.Compiler[0] == "" {
		return fmt.Errorf("%w: no compiler", ErrIncompleteSpec)
	}

	if len(s.Mastering) == 0 {
		return fmt.Errorf("%w: no mastering tool", ErrIncompleteSpec)
	}

	return s.validateStagingDir()
}

// validateStagingDir rejects staging directories that contain any of the
// inputs, because the staging directory is removed recursively.
func (s *Spec) validateStagingDir() error {
	type input struct {
		name string
		path string
	}

	inputs := []input{
		{"root", s.Root},
		{"kernel", s.Kernel},
		{"grub config", s.GrubConfig},
		{"initrd", s.Initrd},
	}

	for _, p := range s.Protected {
		inputs = append(inputs, input{"protected path", p})
	}

	for _, in := range inputs {
		if in.path == "" {
			continue
		}

		if sys.IsWithin(s.StagingDir, in.path) {
			return fmt.Errorf("%w: %s %s is in %s",
				ErrUnsafeStagingDir, in.name, in.path, s.StagingDir)
		}
	}

	if sys.IsWithin(s.StagingDir, s.ISO) {
		return fmt.Errorf("%w: iso %s is in %s",
			ErrUnsafeStagingDir, s.ISO, s.StagingDir)
	}

	return nil
}
