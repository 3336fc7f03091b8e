// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running the QEMU command
// that boots the kernel ISO. It expects the required QEMU binary to be present
// on the system.
//
// The guest is expected to communicate test results via the isa-debug-exit
// device. See [exitcode.FromDebugExit] for how QEMU exit statuses are mapped.
package qemu
