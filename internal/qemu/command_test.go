// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"slices"
	"testing"

	"github.com/budde25/os/internal/exitcode"
	"github.com/budde25/os/internal/qemu"
	"github.com/budde25/os/internal/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultArgs = []string{
	"-serial", "mon:stdio",
	"-smp", "1",
	"-boot", "order=d",
	"-drive", "file=fs.img,index=1,media=disk,format=raw",
	"-device", "isa-debug-exit,iobase=0xf4,iosize=0x04",
	"-cdrom", "/src/os/target/os.iso",
}

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name         string
		modify       func(*qemu.CommandSpec)
		expectedArgs []string
		expectedErr  error
	}{
		{
			name:         "defaults",
			expectedArgs: defaultArgs,
		},
		{
			name: "no graphic",
			modify: func(s *qemu.CommandSpec) {
				s.NoGraphic = true
			},
			expectedArgs: append([]string{"-nographic"}, defaultArgs...),
		},
		{
			name: "kvm and extra args",
			modify: func(s *qemu.CommandSpec) {
				s.KVM = true
				s.ExtraArgs = []qemu.Argument{qemu.UniqueArg("m", "512")}
			},
			expectedArgs: slices.Concat(
				defaultArgs[:len(defaultArgs)-2],
				[]string{"-enable-kvm", "-m", "512"},
				defaultArgs[len(defaultArgs)-2:],
			),
		},
		{
			name: "no disk image",
			modify: func(s *qemu.CommandSpec) {
				s.DiskImage = ""
			},
			expectedArgs: slices.Concat(defaultArgs[:6], defaultArgs[8:]),
		},
		{
			name: "comma in paths",
			modify: func(s *qemu.CommandSpec) {
				s.DiskImage = "disk,format=qcow2.img"
				s.ISO = "/src/a,b/os.iso"
			},
			expectedArgs: slices.Concat(
				defaultArgs[:6],
				[]string{"-drive", "file=disk,,format=qcow2.img,index=1,media=disk,format=raw"},
				defaultArgs[8:10],
				[]string{"-cdrom", "/src/a,,b/os.iso"},
			),
		},
		{
			name: "colliding extra args",
			modify: func(s *qemu.CommandSpec) {
				s.ExtraArgs = []qemu.Argument{qemu.UniqueArg("smp", "4")}
			},
			expectedErr: qemu.ErrArgumentCollision,
		},
		{
			name: "no executable",
			modify: func(s *qemu.CommandSpec) {
				s.Executable = ""
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "no iso",
			modify: func(s *qemu.CommandSpec) {
				s.ISO = ""
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "no cpu",
			modify: func(s *qemu.CommandSpec) {
				s.SMP = 0
			},
			expectedErr: &qemu.ArgumentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := qemu.DefaultCommandSpec("/src/os/target/os.iso")
			if tt.modify != nil {
				tt.modify(&spec)
			}

			cmd, err := qemu.NewCommand(spec)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, "qemu-system-x86_64", cmd.Name())
			assert.Equal(t, tt.expectedArgs, cmd.Args())
		})
	}
}

func TestNewCommand_NoGraphicAddsSingleFlag(t *testing.T) {
	spec := qemu.DefaultCommandSpec("os.iso")

	without, err := qemu.NewCommand(spec)
	require.NoError(t, err)

	spec.NoGraphic = true

	with, err := qemu.NewCommand(spec)
	require.NoError(t, err)

	withArgs := with.Args()
	idx := slices.Index(withArgs, "-nographic")
	require.NotEqual(t, -1, idx)

	assert.Len(t, withArgs, len(without.Args())+1)
	assert.Equal(t, without.Args(), slices.Delete(withArgs, idx, idx+1))
}

func TestCommand_String(t *testing.T) {
	cmd, err := qemu.NewCommand(qemu.DefaultCommandSpec("os.iso"))
	require.NoError(t, err)

	assert.Equal(t,
		"qemu-system-x86_64 -serial mon:stdio -smp 1 -boot order=d "+
			"-drive file=fs.img,index=1,media=disk,format=raw "+
			"-device isa-debug-exit,iobase=0xf4,iosize=0x04 -cdrom os.iso",
		cmd.String(),
	)
}

func TestCommand_Run(t *testing.T) {
	tests := []struct {
		name             string
		runErr           error
		expectedErr      error
		expectedGuest    bool
		expectedExitCode int
	}{
		{
			name: "regular shutdown",
		},
		{
			name: "guest success",
			runErr: &tool.ExecError{
				ExitCode: exitcode.DebugExitStatus(exitcode.DebugExitSuccess),
			},
		},
		{
			name: "guest failure",
			runErr: &tool.ExecError{
				ExitCode: exitcode.DebugExitStatus(exitcode.DebugExitFailure),
			},
			expectedErr:      qemu.ErrGuestNonZeroExitCode,
			expectedGuest:    true,
			expectedExitCode: exitcode.DebugExitFailure,
		},
		{
			name: "host failure",
			runErr: &tool.ExecError{
				ExitCode: 1,
				Err:      assert.AnError,
			},
			expectedErr:      assert.AnError,
			expectedExitCode: 1,
		},
		{
			name:             "other error",
			runErr:           assert.AnError,
			expectedErr:      assert.AnError,
			expectedExitCode: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &tool.Recorder{
				Handler: func(tool.Invocation) error { return tt.runErr },
			}

			cmd, err := qemu.NewCommand(qemu.DefaultCommandSpec("os.iso"))
			require.NoError(t, err)

			err = cmd.Run(t.Context(), recorder, nil, nil, nil)
			require.ErrorIs(t, err, tt.expectedErr)

			require.Len(t, recorder.Invocations(), 1)
			assert.Equal(t, cmd.Args(), recorder.Invocations()[0].Args)

			if tt.expectedErr == nil {
				return
			}

			var cmdErr *qemu.CommandError

			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, tt.expectedGuest, cmdErr.Guest)
			assert.Equal(t, tt.expectedExitCode, cmdErr.ExitCode)
		})
	}
}

func TestCommand_Run_GuestExitCode(t *testing.T) {
	recorder := &tool.Recorder{
		Handler: func(tool.Invocation) error {
			return &tool.ExecError{ExitCode: exitcode.DebugExitStatus(exitcode.DebugExitFailure)}
		},
	}

	cmd, err := qemu.NewCommand(qemu.DefaultCommandSpec("os.iso"))
	require.NoError(t, err)

	err = cmd.Run(t.Context(), recorder, nil, nil, nil)

	code, found := exitcode.From(err)
	assert.True(t, found)
	assert.Equal(t, exitcode.DebugExitFailure, code)
}

func TestCommandError_Error(t *testing.T) {
	assert.Equal(t,
		"qemu host: assert.AnError general error for testing",
		(&qemu.CommandError{Err: assert.AnError}).Error(),
	)
	assert.Equal(t,
		"qemu guest: assert.AnError general error for testing",
		(&qemu.CommandError{Err: assert.AnError, Guest: true}).Error(),
	)
}
