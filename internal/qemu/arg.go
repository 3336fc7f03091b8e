// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strings"
)

// uniqueNames are QEMU options that may be given only once in a command. All
// other names parsed by [ParseArgument] are considered repeatable.
var uniqueNames = []string{
	"boot",
	"cdrom",
	"cpu",
	"enable-kvm",
	"m",
	"machine",
	"nographic",
	"smp",
}

// Argument is a QEMU argument with or without value.
//
// Its name might be marked to be unique in a list of [Argument]s.
type Argument struct {
	name          string
	value         string
	nonUniqueName bool
}

// String implements [fmt.Stringer].
func (a Argument) String() string {
	s := "-" + a.name
	if a.value != "" {
		s += " " + a.value
	}

	return s
}

// escapeOptionValue doubles commas, so value is taken literally within a
// comma separated QEMU option list.
func escapeOptionValue(value string) string {
	return strings.ReplaceAll(value, ",", ",,")
}

// Equal compares the [Argument]s.
//
// If the name is marked unique, only names are
// compared. Otherwise name and value are compared.
func (a Argument) Equal(other Argument) bool {
	if a.name != other.name {
		return false
	}

	if a.nonUniqueName {
		return a.value == other.value
	}

	return true
}

// UniqueArg returns a new [Argument] with the given name that is marked as
// unique and so can be used in an [Argument] list only once. Multiple values
// are joined with ",".
func UniqueArg(name string, value ...string) Argument {
	return Argument{
		name:  name,
		value: strings.Join(value, ","),
	}
}

// RepeatableArg returns a new [Argument] with the given name that is not
// unique and so can be used in an [Argument] list multiple times. Multiple
// values are joined with ",".
func RepeatableArg(name string, value ...string) Argument {
	return Argument{
		name:          name,
		value:         strings.Join(value, ","),
		nonUniqueName: true,
	}
}

// ParseArgument parses a single raw argument of the form "-name value" or
// "-name". Leading dashes are optional. Surrounding whitespace is trimmed and
// the value is everything after the first whitespace.
func ParseArgument(raw string) (Argument, error) {
	raw = strings.TrimSpace(raw)

	name, value, _ := strings.Cut(raw, " ")
	name = strings.TrimLeft(name, "-")
	value = strings.TrimSpace(value)

	if name == "" {
		return Argument{}, fmt.Errorf("%w: %q", ErrArgumentInvalid, raw)
	}

	if slices.Contains(uniqueNames, name) {
		return UniqueArg(name, value), nil
	}

	return RepeatableArg(name, value), nil
}

// ParseArguments parses all given raw arguments with [ParseArgument].
func ParseArguments(raw []string) ([]Argument, error) {
	args := make([]Argument, 0, len(raw))

	for _, r := range raw {
		arg, err := ParseArgument(r)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	return args, nil
}

// BuildArgumentStrings compiles the [Argument]s to into a slice of strings
// which can be used with [exec.Command].
//
// It returns an error if any name uniqueness constraints of any [Argument] is
// violated.
func BuildArgumentStrings(args []Argument) ([]string, error) {
	argString := make([]string, 0, len(args))

	for idx, arg := range args {
		if i := slices.IndexFunc(args[:idx], arg.Equal); i != -1 {
			return nil, fmt.Errorf(
				"%w: %s, %s",
				ErrArgumentCollision,
				arg.String(),
				args[i].String(),
			)
		}

		argString = append(argString, "-"+arg.name)

		if arg.value != "" {
			argString = append(argString, arg.value)
		}
	}

	return argString, nil
}
