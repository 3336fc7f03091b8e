// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package initrd packs a directory tree into a newc cpio archive. GRUB loads
// the archive as multiboot2 module next to the kernel.
package initrd
