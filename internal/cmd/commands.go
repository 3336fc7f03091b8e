// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/budde25/os/internal/diskimg"
	"github.com/budde25/os/internal/doctor"
)

// command is a single subcommand. Flags are registered before parsing and
// checked after parsing.
type command interface {
	registerFlags(flagSet *flag.FlagSet)
	check() error
	run(ctx context.Context, p *project) error
}

type commandSpec struct {
	name    string
	summary string
	new     func() command
}

var commands = []commandSpec{
	{
		name:    "doctor",
		summary: "check for required tools in PATH",
		new:     func() command { return &doctorCommand{} },
	},
	{
		name:    "build",
		summary: "build the kernel and the bootable ISO",
		new:     func() command { return &buildCommand{} },
	},
	{
		name:    "run",
		summary: "build and boot the ISO in QEMU",
		new:     func() command { return &runCommand{} },
	},
	{
		name:    "mkimg",
		summary: "create the blank disk image",
		new:     func() command { return &mkimgCommand{} },
	},
}

func lookupCommand(name string) (commandSpec, bool) {
	idx := slices.IndexFunc(commands, func(c commandSpec) bool {
		return c.name == name
	})
	if idx < 0 {
		return commandSpec{}, false
	}

	return commands[idx], true
}

type doctorCommand struct {
	fileName string
	versions bool
}

func (c *doctorCommand) registerFlags(flagSet *flag.FlagSet) {
	for _, flagName := range []string{"f", "file-name"} {
		flagSet.StringVar(
			&c.fileName,
			flagName,
			c.fileName,
			"file name (required)",
		)
	}

	flagSet.BoolVar(
		&c.versions,
		"versions",
		c.versions,
		"also report the version of found tools",
	)
}

func (c *doctorCommand) check() error {
	if c.fileName == "" {
		return fmt.Errorf("%w: -f/-file-name", ErrFlagRequired)
	}

	return nil
}

func (c *doctorCommand) run(ctx context.Context, p *project) error {
	// Mandatory for compatibility with existing invocations. It does not
	// change the checks.
	slog.Debug("Doctor file name", slog.String("name", c.fileName))

	tools := make([]doctor.Tool, 0, len(p.config.Doctor))
	for _, t := range p.config.Doctor {
		tools = append(tools, doctor.Tool{Label: t.Label, Name: t.Name})
	}

	results, err := doctor.Check(ctx, tools, doctor.Options{
		LookPath: p.env.LookPath,
		Runner:   p.env.Runner,
		Versions: c.versions,
	})
	if err != nil {
		return fmt.Errorf("doctor: %w", err)
	}

	err = doctor.Report(p.env.Stdout, results)
	if err != nil {
		return fmt.Errorf("doctor report: %w", err)
	}

	if !doctor.AllFound(results) {
		slog.Warn("Not all tools found in path")
	}

	return nil
}

// buildFlags are shared by the build and run commands.
type buildFlags struct {
	keepStaging bool
	initrd      string
}

func (f *buildFlags) register(flagSet *flag.FlagSet) {
	flagSet.BoolVar(
		&f.keepStaging,
		"keep-staging",
		f.keepStaging,
		"do not remove the ISO staging directory",
	)

	flagSet.StringVar(
		&f.initrd,
		"initrd",
		f.initrd,
		"directory packed as boot/initrd.cpio, relative to the project root "+
			"(default from config)",
	)
}

type buildCommand struct {
	buildFlags
}

func (c *buildCommand) registerFlags(flagSet *flag.FlagSet) {
	c.buildFlags.register(flagSet)
}

func (*buildCommand) check() error {
	return nil
}

func (c *buildCommand) run(ctx context.Context, p *project) error {
	iso, err := p.build(ctx, c.buildFlags)
	if err != nil {
		return err
	}

	slog.Info("Built ISO", slog.String("path", iso))

	return nil
}

type runCommand struct {
	buildFlags

	noGraphic bool
	disk      string
}

func (c *runCommand) registerFlags(flagSet *flag.FlagSet) {
	c.buildFlags.register(flagSet)

	flagSet.BoolVar(
		&c.noGraphic,
		"nox",
		c.noGraphic,
		"run without graphical output",
	)

	flagSet.StringVar(
		&c.disk,
		"disk",
		c.disk,
		"disk image attached to the VM, relative to the project root "+
			"(default from config)",
	)
}

func (*runCommand) check() error {
	return nil
}

func (c *runCommand) run(ctx context.Context, p *project) error {
	iso, err := p.build(ctx, c.buildFlags)
	if err != nil {
		return err
	}

	disk := p.layout.DiskImage
	if c.disk != "" {
		disk = p.resolve(c.disk)
	}

	_, err = os.Stat(disk)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Disk image missing, create it with 'x mkimg'",
			slog.String("path", disk))
	}

	if !p.env.LookPath.Available(p.config.Qemu.Executable) {
		slog.Warn("QEMU not found in path",
			slog.String("executable", p.config.Qemu.Executable))
	}

	qemuCmd, err := p.qemuCommand(iso, disk, c.noGraphic)
	if err != nil {
		return err
	}

	slog.Debug("QEMU command", slog.String("command", qemuCmd.String()))

	return qemuCmd.Run(ctx, p.env.Runner, p.env.Stdin, p.env.Stdout, p.env.Stderr)
}

type mkimgCommand struct {
	path       string
	sizeMiB    uint64
	fileSystem string
}

func (c *mkimgCommand) registerFlags(flagSet *flag.FlagSet) {
	flagSet.StringVar(
		&c.path,
		"o",
		c.path,
		"output path, relative to the project root (default from config)",
	)

	flagSet.Uint64Var(
		&c.sizeMiB,
		"size",
		c.sizeMiB,
		"image size in MiB (default from config)",
	)

	flagSet.StringVar(
		&c.fileSystem,
		"fs",
		c.fileSystem,
		"file system type passed to mkfs (default from config)",
	)
}

func (*mkimgCommand) check() error {
	return nil
}

func (c *mkimgCommand) run(ctx context.Context, p *project) error {
	spec := diskimg.Spec{
		Path:       p.layout.DiskImage,
		SizeMiB:    p.config.DiskImage.SizeMiB,
		FileSystem: p.config.DiskImage.FileSystem,
	}

	if c.path != "" {
		spec.Path = p.resolve(c.path)
	}

	if c.sizeMiB != 0 {
		spec.SizeMiB = c.sizeMiB
	}

	if c.fileSystem != "" {
		spec.FileSystem = c.fileSystem
	}

	err := diskimg.Create(ctx, p.env.Runner, spec, p.env.Stdout, p.env.Stderr)
	if err != nil {
		return fmt.Errorf("mkimg: %w", err)
	}

	slog.Info("Created disk image", slog.String("path", spec.Path))

	return nil
}
