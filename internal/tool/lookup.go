// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tool

import "os/exec"

// LookPath resolves an executable name to its path. It returns an error
// wrapping [ErrNotFound] if the name can not be resolved.
type LookPath func(name string) (string, error)

// SystemLookPath resolves names via the PATH environment variable.
var SystemLookPath LookPath = exec.LookPath

// Available returns if the given name can be resolved by the [LookPath].
func (l LookPath) Available(name string) bool {
	_, err := l(name)
	return err == nil
}
