// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode handles exit codes the kernel communicates through
// QEMU's isa-debug-exit device.
package exitcode
