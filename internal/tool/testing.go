// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package tool

import (
	"context"
	"io"
	"sync"
)

// Recorder is a [Runner] that records all invocations instead of running
// them.
//
// For each invocation, Handler is called if set. Its return value is returned
// by [Recorder.Run]. Stdout output can be simulated by writing to
// [Invocation.Stdout] in the Handler.
type Recorder struct {
	Handler func(inv Invocation) error

	mu          sync.Mutex
	invocations []Invocation
}

// Run implements [Runner].
func (r *Recorder) Run(_ context.Context, inv Invocation) error {
	r.mu.Lock()
	r.invocations = append(r.invocations, inv)
	r.mu.Unlock()

	if r.Handler == nil {
		return nil
	}

	return r.Handler(inv)
}

// Invocations returns all recorded invocations.
func (r *Recorder) Invocations() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Invocation(nil), r.invocations...)
}

// Commands returns the command lines of all recorded invocations.
func (r *Recorder) Commands() [][]string {
	invocations := r.Invocations()
	commands := make([][]string, 0, len(invocations))

	for _, inv := range invocations {
		commands = append(commands, inv.Command())
	}

	return commands
}

// Names returns the executable names of all recorded invocations in order.
func (r *Recorder) Names() []string {
	invocations := r.Invocations()
	names := make([]string, 0, len(invocations))

	for _, inv := range invocations {
		names = append(names, inv.Name)
	}

	return names
}

// Output returns a Handler that writes the given string to stdout of every
// invocation.
func Output(s string) func(Invocation) error {
	return func(inv Invocation) error {
		if inv.Stdout != nil {
			_, _ = io.WriteString(inv.Stdout, s)
		}

		return nil
	}
}
