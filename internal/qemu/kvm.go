// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

const kvmDevice = "/dev/kvm"

// KVMAvailable checks if KVM support is available for the x86_64 guest. It
// requires an amd64 host with write access to the KVM device.
func KVMAvailable() bool {
	if runtime.GOARCH != "amd64" {
		return false
	}

	return unix.Access(kvmDevice, unix.W_OK) == nil
}
