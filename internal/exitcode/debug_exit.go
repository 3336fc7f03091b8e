// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

// Values the kernel writes to the isa-debug-exit port.
const (
	DebugExitSuccess = 0x10
	DebugExitFailure = 0x11
)

// FromDebugExit decodes the exit status of QEMU into the value the guest
// wrote to the isa-debug-exit device.
//
// QEMU terminates with status (value << 1) | 1 when the guest writes value to
// the device. So only odd statuses are reported by the device. Status 1 is
// ambiguous, as QEMU uses it for its own errors as well, so it is not
// considered a guest code.
func FromDebugExit(status int) (int, bool) {
	if status <= 1 || status&1 == 0 {
		return 0, false
	}

	return status >> 1, true
}

// DebugExitStatus returns the QEMU exit status for a value written to the
// isa-debug-exit device by the guest.
func DebugExitStatus(value int) int {
	return value<<1 | 1
}
