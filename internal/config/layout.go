// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "github.com/budde25/os/internal/sys"

// Layout holds all project paths resolved against the project root.
type Layout struct {
	Root       string
	Kernel     string
	GrubConfig string
	StagingDir string
	ISO        string
	DiskImage  string

	// Initrd is empty if no initrd directory is configured.
	Initrd string
}

// Layout resolves all paths of the configuration against root, which must be
// absolute.
func (c *Config) Layout(root string) Layout {
	layout := Layout{
		Root:       root,
		Kernel:     sys.ResolvePath(root, c.KernelPath()),
		GrubConfig: sys.ResolvePath(root, c.ISO.GrubConfig),
		StagingDir: sys.ResolvePath(root, c.ISO.StagingDir),
		ISO:        sys.ResolvePath(root, c.ISO.Output),
		DiskImage:  sys.ResolvePath(root, c.DiskImage.Path),
	}

	if c.ISO.Initrd != "" {
		layout.Initrd = sys.ResolvePath(root, c.ISO.Initrd)
	}

	return layout
}
