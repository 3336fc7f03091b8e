// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd implements the x command line interface. It parses global and
// command flags, loads the project configuration and dispatches to the
// doctor, build, run and mkimg commands.
package cmd
