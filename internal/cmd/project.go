// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/budde25/os/internal/build"
	"github.com/budde25/os/internal/config"
	"github.com/budde25/os/internal/qemu"
	"github.com/budde25/os/internal/sys"
	"github.com/budde25/os/internal/tool"
)

// environment provides everything the commands need from the host.
type environment struct {
	IO

	Runner       tool.Runner
	LookPath     tool.LookPath
	KVMAvailable func() bool
}

func defaultEnvironment(cfg IO) environment {
	return environment{
		IO:           cfg,
		Runner:       tool.ExecRunner{},
		LookPath:     tool.SystemLookPath,
		KVMAvailable: qemu.KVMAvailable,
	}
}

// project is a loaded project configuration with all paths resolved.
type project struct {
	config     config.Config
	configPath string
	layout     config.Layout
	env        environment
}

func loadProject(root, configFile string, env environment) (*project, error) {
	absRoot, err := sys.AbsolutePath(root)
	if err != nil {
		return nil, fmt.Errorf("project root: %w", err)
	}

	configPath := sys.ResolvePath(absRoot, configFile)

	cfg, err := config.Load(
		os.DirFS(filepath.Dir(configPath)),
		filepath.Base(configPath),
	)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	slog.Debug("Loaded project",
		slog.String("root", absRoot),
		slog.String("config", configPath))

	return &project{
		config:     cfg,
		configPath: configPath,
		layout:     cfg.Layout(absRoot),
		env:        env,
	}, nil
}

// resolve resolves a path given on the command line against the project root.
func (p *project) resolve(path string) string {
	return sys.ResolvePath(p.layout.Root, path)
}

func (p *project) buildSpec(flags buildFlags) build.Spec {
	compiler := append(
		[]string{p.config.Compiler.Command},
		p.config.Compiler.Args...,
	)

	initrd := p.layout.Initrd
	if flags.initrd != "" {
		initrd = p.resolve(flags.initrd)
	}

	return build.Spec{
		Root:        p.layout.Root,
		Compiler:    compiler,
		Kernel:      p.layout.Kernel,
		GrubConfig:  p.layout.GrubConfig,
		StagingDir:  p.layout.StagingDir,
		ISO:         p.layout.ISO,
		Mastering:   p.config.ISO.Mastering,
		Initrd:      initrd,
		Protected:   []string{p.configPath},
		KeepStaging: flags.keepStaging,
	}
}

func (p *project) build(ctx context.Context, flags buildFlags) (string, error) {
	builder := build.Builder{
		Runner: p.env.Runner,
		Stdout: p.env.Stdout,
		Stderr: p.env.Stderr,
	}

	iso, err := builder.Build(ctx, p.buildSpec(flags))
	if err != nil {
		return "", fmt.Errorf("build: %w", err)
	}

	return iso, nil
}

func (p *project) qemuCommand(iso, disk string, noGraphic bool) (*qemu.Command, error) {
	extraArgs, err := qemu.ParseArguments(p.config.Qemu.ExtraArgs)
	if err != nil {
		return nil, fmt.Errorf("qemu extra args: %w", err)
	}

	spec := qemu.DefaultCommandSpec(iso)
	spec.Executable = p.config.Qemu.Executable
	spec.DiskImage = disk
	spec.SMP = p.config.Qemu.SMP
	spec.NoGraphic = noGraphic
	spec.DebugExit = qemu.DebugExitDevice{
		IOBase: p.config.Qemu.DebugExit.IOBase,
		IOSize: p.config.Qemu.DebugExit.IOSize,
	}
	spec.ExtraArgs = extraArgs

	if p.config.Qemu.KVM {
		spec.KVM = p.env.KVMAvailable()
		if !spec.KVM {
			slog.Warn("KVM requested but not available, running without")
		}
	}

	cmd, err := qemu.NewCommand(spec)
	if err != nil {
		return nil, fmt.Errorf("new qemu command: %w", err)
	}

	return cmd, nil
}
