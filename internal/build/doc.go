// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package build produces the bootable kernel ISO.
//
// A build compiles the kernel, stages it together with the GRUB configuration
// (and an optional initrd) in a staging directory and masters the ISO from the
// staging directory with GRUB's rescue image tool. The staging directory is
// removed afterwards.
package build
