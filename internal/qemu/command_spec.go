// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"strconv"
)

// Defaults matching the kernel's expectations.
const (
	DefaultExecutable = "qemu-system-x86_64"
	DefaultSerial     = "mon:stdio"
	DefaultBootOrder  = "d"
	DefaultSMP        = 1
	DefaultDiskImage  = "fs.img"

	DefaultDebugExitIOBase = 0xf4
	DefaultDebugExitIOSize = 0x04
)

// DebugExitDevice is the isa-debug-exit device the kernel uses to terminate
// QEMU with an exit code.
type DebugExitDevice struct {
	IOBase uint16
	IOSize uint16
}

func (d DebugExitDevice) argument() Argument {
	return RepeatableArg("device",
		"isa-debug-exit",
		fmt.Sprintf("iobase=0x%x", d.IOBase),
		fmt.Sprintf("iosize=0x%02x", d.IOSize),
	)
}

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Path to the bootable ISO image attached as CD-ROM.
	ISO string

	// Path to the raw disk image attached as second drive. Omitted if empty.
	DiskImage string

	// Number of CPUs for the guest.
	SMP uint64

	// Serial backend. The default multiplexes the QEMU monitor with the
	// serial console on stdio.
	Serial string

	// Boot device order, see "-boot order=".
	BootOrder string

	// Disable graphical output. The serial console stays on stdio.
	NoGraphic bool

	// Enable KVM hardware acceleration.
	KVM bool

	// Debug exit device. Omitted if IOBase is 0.
	DebugExit DebugExitDevice

	// ExtraArgs are extra arguments that are passed to the QEMU command.
	// They must not interfere with the essential arguments set by the command
	// itself or an error will be returned by [NewCommand].
	ExtraArgs []Argument
}

// DefaultCommandSpec returns a [CommandSpec] for booting the given ISO with
// all defaults set.
func DefaultCommandSpec(iso string) CommandSpec {
	return CommandSpec{
		Executable: DefaultExecutable,
		ISO:        iso,
		DiskImage:  DefaultDiskImage,
		SMP:        DefaultSMP,
		Serial:     DefaultSerial,
		BootOrder:  DefaultBootOrder,
		DebugExit: DebugExitDevice{
			IOBase: DefaultDebugExitIOBase,
			IOSize: DefaultDebugExitIOSize,
		},
	}
}

// Validate checks that all required fields are set.
func (s *CommandSpec) Validate() error {
	switch {
	case s.Executable == "":
		return &ArgumentError{"no qemu executable given"}
	case s.ISO == "":
		return &ArgumentError{"no iso given"}
	case s.SMP == 0:
		return &ArgumentError{"smp must be at least 1"}
	}

	return nil
}

// arguments compiles the argument list for the QEMU command.
func (s *CommandSpec) arguments() []Argument {
	var args []Argument

	// Only flag that depends on the graphics setting.
	if s.NoGraphic {
		args = append(args, UniqueArg("nographic"))
	}

	if s.Serial != "" {
		args = append(args, RepeatableArg("serial", s.Serial))
	}

	args = append(args, UniqueArg("smp", strconv.FormatUint(s.SMP, 10)))

	if s.BootOrder != "" {
		args = append(args, UniqueArg("boot", "order="+s.BootOrder))
	}

	if s.DiskImage != "" {
		args = append(args, RepeatableArg("drive",
			"file="+escapeOptionValue(s.DiskImage),
			"index=1",
			"media=disk",
			"format=raw",
		))
	}

	if s.DebugExit.IOBase != 0 {
		args = append(args, s.DebugExit.argument())
	}

	if s.KVM {
		args = append(args, UniqueArg("enable-kvm"))
	}

	args = append(args, s.ExtraArgs...)

	// ISO is always last, so it is easy to spot in the logged command line.
	args = append(args, UniqueArg("cdrom", escapeOptionValue(s.ISO)))

	return args
}
