// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"path/filepath"

	"github.com/budde25/os/internal/qemu"
)

// DefaultFile is the name of the project configuration file.
const DefaultFile = "x.yaml"

// Config is the complete project configuration.
type Config struct {
	TargetDir string    `yaml:"target_dir"`
	Kernel    Kernel    `yaml:"kernel"`
	Compiler  Compiler  `yaml:"compiler"`
	ISO       ISO       `yaml:"iso"`
	Qemu      Qemu      `yaml:"qemu"`
	DiskImage DiskImage `yaml:"disk_image"`
	Doctor    []Tool    `yaml:"doctor"`
}

// Kernel locates the kernel binary produced by the compiler. It is found at
// <target_dir>/<triple>/<profile>/<name>.
type Kernel struct {
	Triple  string `yaml:"triple"`
	Profile string `yaml:"profile"`
	Name    string `yaml:"name"`
}

// Compiler is the command that builds the kernel. It runs in the project root.
type Compiler struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// ISO configures the bootable image.
type ISO struct {
	// GRUB configuration file copied to boot/grub/grub.cfg.
	GrubConfig string `yaml:"grub_config"`

	// Output path of the image.
	Output string `yaml:"output"`

	// Staging directory the image is mastered from. It is removed after the
	// build.
	StagingDir string `yaml:"staging_dir"`

	// Mastering tools, tried in order until one succeeds.
	Mastering []string `yaml:"mastering"`

	// Optional directory packed as boot/initrd.cpio.
	Initrd string `yaml:"initrd"`
}

// Qemu configures the virtual machine.
type Qemu struct {
	Executable string    `yaml:"executable"`
	SMP        uint64    `yaml:"smp"`
	KVM        bool      `yaml:"kvm"`
	DebugExit  DebugExit `yaml:"debug_exit"`
	ExtraArgs  []string  `yaml:"extra_args"`
}

// DebugExit configures the isa-debug-exit device. An iobase of 0 disables it.
type DebugExit struct {
	IOBase uint16 `yaml:"iobase"`
	IOSize uint16 `yaml:"iosize"`
}

// DiskImage configures the raw disk attached to the VM.
type DiskImage struct {
	Path       string `yaml:"path"`
	SizeMiB    uint64 `yaml:"size_mib"`
	FileSystem string `yaml:"filesystem"`
}

// Tool is an executable checked by the doctor command.
type Tool struct {
	Label string `yaml:"label"`
	Name  string `yaml:"name"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		TargetDir: "target",
		Kernel: Kernel{
			Triple:  "x86_64-os",
			Profile: "debug",
			Name:    "os",
		},
		Compiler: Compiler{
			Command: "cargo",
			Args:    []string{"build"},
		},
		ISO: ISO{
			GrubConfig: "src/arch/x86_64/grub.cfg",
			Output:     "target/os.iso",
			StagingDir: "target/isofiles",
			Mastering:  []string{"grub-mkrescue", "grub2-mkrescue"},
		},
		Qemu: Qemu{
			Executable: qemu.DefaultExecutable,
			SMP:        qemu.DefaultSMP,
			DebugExit: DebugExit{
				IOBase: qemu.DefaultDebugExitIOBase,
				IOSize: qemu.DefaultDebugExitIOSize,
			},
		},
		DiskImage: DiskImage{
			Path:       qemu.DefaultDiskImage,
			SizeMiB:    10,
			FileSystem: "ext2",
		},
		Doctor: []Tool{
			{Label: "grub-mkrescue", Name: "grub-mkrescue"},
			{Label: "xorriso", Name: "xorriso"},
			{Label: "qemu", Name: qemu.DefaultExecutable},
		},
	}
}

// Validate checks that all required values are set.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"target_dir", c.TargetDir},
		{"kernel.triple", c.Kernel.Triple},
		{"kernel.profile", c.Kernel.Profile},
		{"kernel.name", c.Kernel.Name},
		{"compiler.command", c.Compiler.Command},
		{"iso.grub_config", c.ISO.GrubConfig},
		{"iso.output", c.ISO.Output},
		{"iso.staging_dir", c.ISO.StagingDir},
		{"qemu.executable", c.Qemu.Executable},
		{"disk_image.path", c.DiskImage.Path},
		{"disk_image.filesystem", c.DiskImage.FileSystem},
	}

	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.name, msg: "must not be empty"}
		}
	}

	if len(c.ISO.Mastering) == 0 {
		return &ValidationError{Field: "iso.mastering", msg: "must not be empty"}
	}

	if c.Qemu.SMP == 0 {
		return &ValidationError{Field: "qemu.smp", msg: "must be at least 1"}
	}

	if c.DiskImage.SizeMiB == 0 {
		return &ValidationError{Field: "disk_image.size_mib", msg: "must be at least 1"}
	}

	for idx, tool := range c.Doctor {
		if tool.Name == "" {
			return &ValidationError{
				Field: fmt.Sprintf("doctor[%d].name", idx),
				msg:   "must not be empty",
			}
		}
	}

	return nil
}

// KernelPath returns the path of the kernel binary relative to the project
// root.
func (c *Config) KernelPath() string {
	return filepath.Join(
		c.TargetDir,
		c.Kernel.Triple,
		c.Kernel.Profile,
		c.Kernel.Name,
	)
}
