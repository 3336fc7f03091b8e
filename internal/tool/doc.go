// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package tool runs the external executables all build steps delegate to.
//
// Every step describes the process it wants to run as an [Invocation] and
// hands it to a [Runner]. [ExecRunner] is the implementation used by the CLI.
// Tests substitute a [Recorder] to assert the exact command lines without
// requiring the toolchain to be installed.
package tool
