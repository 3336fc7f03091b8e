// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config provides the project configuration: where the toolchain puts
// its output, which external tools are used and how QEMU is started.
//
// All values have defaults that match the kernel project layout. A YAML file in
// the project root may override any of them. See [Load].
package config
