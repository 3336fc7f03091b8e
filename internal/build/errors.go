// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build

import "errors"

var (
	// ErrMastering is returned if none of the mastering tools succeeded.
	ErrMastering = errors.New("no mastering tool succeeded")

	// ErrIncompleteSpec is returned if a required [Spec] field is empty.
	ErrIncompleteSpec = errors.New("incomplete build spec")

	// ErrUnsafeStagingDir is returned if removing the staging directory would
	// remove project inputs or the ISO.
	ErrUnsafeStagingDir = errors.New("unsafe staging dir")
)
