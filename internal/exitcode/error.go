// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"
	"fmt"
)

// Error is a failure code the guest wrote to the isa-debug-exit device.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("guest exit code %#x", int(e))
}

// Is matches any [Error], regardless of its code.
func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// From returns the guest code carried by err. It returns false if err does
// not wrap an [Error].
func From(err error) (int, bool) {
	var guestErr Error
	if !errors.As(err, &guestErr) {
		return 0, false
	}

	return int(guestErr), true
}
